// Package telegram adapts the Telegram Bot API (via telebot) to the
// review.Transport interface. It is the only package that imports telebot
// besides the handlers, so the review core stays transport-agnostic.
package telegram

import (
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v3"

	"github.com/demensdeum/xboard-job-review-telegram-bot/review"
)

// Transport implements review.Transport on a telebot session.
type Transport struct {
	bot         *tele.Bot
	menu        *tele.ReplyMarkup
	moderatorID int64
}

// New wraps a telebot session. menu, when non-nil, is attached to plain
// messages sent to submitter chats so the main-menu reply keyboard stays
// available; channel sends and the moderator's chat never carry it.
func New(bot *tele.Bot, menu *tele.ReplyMarkup, moderatorID int64) *Transport {
	return &Transport{bot: bot, menu: menu, moderatorID: moderatorID}
}

// menuFor picks the reply keyboard for a plain send: the main menu for
// submitter chats, nothing for channels or the moderator.
func (t *Transport) menuFor(recipient int64) *tele.ReplyMarkup {
	if t.menu == nil || recipient <= 0 || recipient == t.moderatorID {
		return nil
	}
	return t.menu
}

// SendMessage delivers text to a user or channel. Controls render as a
// single inline-keyboard row with the payload as raw callback data.
func (t *Transport) SendMessage(recipient int64, text string, controls ...review.Control) (review.MessageRef, error) {
	var opts []interface{}
	if len(controls) > 0 {
		row := make([]tele.InlineButton, 0, len(controls))
		for _, c := range controls {
			row = append(row, tele.InlineButton{Text: c.Label, Data: c.Data})
		}
		opts = append(opts, &tele.ReplyMarkup{InlineKeyboard: [][]tele.InlineButton{row}})
	} else if menu := t.menuFor(recipient); menu != nil {
		opts = append(opts, menu)
	}

	msg, err := t.bot.Send(tele.ChatID(recipient), text, opts...)
	if err != nil {
		return review.MessageRef{}, err
	}
	return review.MessageRef{
		ChatID:    msg.Chat.ID,
		MessageID: strconv.Itoa(msg.ID),
	}, nil
}

// EditMessage rewrites a previously sent message in place, dropping any
// inline keyboard it carried.
func (t *Transport) EditMessage(ref review.MessageRef, text string) error {
	_, err := t.bot.Edit(tele.StoredMessage{
		MessageID: ref.MessageID,
		ChatID:    ref.ChatID,
	}, text)
	return err
}

// FetchProfile looks a user up through getChat.
func (t *Transport) FetchProfile(userID int64) (review.Profile, error) {
	chat, err := t.bot.ChatByID(userID)
	if err != nil {
		return review.Profile{}, err
	}
	return review.Profile{
		Username:    chat.Username,
		DisplayName: strings.TrimSpace(strings.TrimSpace(chat.FirstName) + " " + strings.TrimSpace(chat.LastName)),
	}, nil
}
