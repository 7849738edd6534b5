package bot

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tele "gopkg.in/telebot.v3"

	"github.com/demensdeum/xboard-job-review-telegram-bot/config"
	"github.com/demensdeum/xboard-job-review-telegram-bot/handler"
	"github.com/demensdeum/xboard-job-review-telegram-bot/logging"
	"github.com/demensdeum/xboard-job-review-telegram-bot/review"
	"github.com/demensdeum/xboard-job-review-telegram-bot/telegram"
)

var bot *tele.Bot

// Start loads configuration, wires the review service onto a Telegram
// session and runs the bot until SIGINT/SIGTERM.
func Start() {
	if err := config.LoadConfig(); err != nil {
		slog.Error("failed to load config", "err", err)
		return
	}
	logging.Setup(config.Cfg.LogLevel)

	if config.Cfg.Token == "" {
		slog.Error("bot token is empty, set TELEGRAM_BOT_API_KEY or token in config.yaml")
		return
	}
	if !config.Cfg.ModeratorConfigured() {
		slog.Warn("moderator id is not set, submissions cannot be dispatched for review")
	}

	var err error
	bot, err = tele.NewBot(tele.Settings{
		Token:  config.Cfg.Token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	})
	if err != nil {
		slog.Error("failed to create Telegram session", "err", err)
		return
	}

	transport := telegram.New(bot, handler.MainMenu(), config.Cfg.ModeratorID)
	svc := review.NewService(transport, config.Cfg.ModeratorID, config.Cfg.ChannelID, slog.Default())
	handler.Register(bot, svc)

	go bot.Start()
	slog.Info("bot is now running, press CTRL-C to exit",
		"channel", config.Cfg.ChannelID, "moderator_set", config.Cfg.ModeratorConfigured())

	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	bot.Stop()
}

// GetSession returns the current Telegram session.
func GetSession() *tele.Bot {
	return bot
}
