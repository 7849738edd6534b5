package main

import (
	"github.com/demensdeum/xboard-job-review-telegram-bot/bot"
)

func main() {
	bot.Start()
}
