// Package handler binds incoming Telegram updates onto the review service:
// commands, the main-menu reply buttons, free text and the moderator's
// decision callbacks.
package handler

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tele "gopkg.in/telebot.v3"

	"github.com/demensdeum/xboard-job-review-telegram-bot/model"
	"github.com/demensdeum/xboard-job-review-telegram-bot/review"
)

// Main-menu reply-keyboard buttons.
const (
	ButtonLeaveReview   = "✍️ Leave a review"
	ButtonDeleteReviews = "🗑️ Delete my reviews"
	ButtonCancel        = "❌ Cancel"
)

const msgFallback = "I don't understand that. Use the '" + ButtonLeaveReview +
	"' button or the /start command."

// MainMenu builds the persistent reply keyboard shown to submitters.
func MainMenu() *tele.ReplyMarkup {
	menu := &tele.ReplyMarkup{ResizeKeyboard: true}
	menu.Reply(
		menu.Row(menu.Text(ButtonLeaveReview)),
		menu.Row(menu.Text(ButtonDeleteReviews)),
	)
	return menu
}

// Register wires all bot updates onto the review service.
func Register(bot *tele.Bot, svc *review.Service) {
	menu := MainMenu()

	bot.Handle("/start", onStart(menu))
	bot.Handle("/cancel", onCancel(svc))
	bot.Handle(tele.OnText, onText(svc, menu))
	bot.Handle(tele.OnCallback, onCallback(svc))
	bot.Handle(tele.OnMedia, onMedia(svc, menu))
}

func onStart(menu *tele.ReplyMarkup) tele.HandlerFunc {
	return func(c tele.Context) error {
		name := strings.TrimSpace(c.Sender().FirstName)
		if name == "" {
			name = c.Sender().Username
		}
		return c.Send(fmt.Sprintf(
			"Hi, %s! Use the button below to start leaving a review.", name), menu)
	}
}

func onCancel(svc *review.Service) tele.HandlerFunc {
	return func(c tele.Context) error {
		return svc.CancelIntake(c.Sender().ID)
	}
}

func onText(svc *review.Service, menu *tele.ReplyMarkup) tele.HandlerFunc {
	return func(c tele.Context) error {
		sender := c.Sender()
		text := c.Text()

		switch text {
		case ButtonLeaveReview:
			return svc.BeginIntake(sender.ID)
		case ButtonDeleteReviews:
			return svc.RequestPurge(sender.ID, sender.Username)
		case ButtonCancel:
			return svc.CancelIntake(sender.ID)
		}
		if strings.EqualFold(text, "start") {
			return onStart(menu)(c)
		}

		if svc.Phase(sender.ID) == model.PhaseAwaitingContact {
			// Commands never count as contact text; unregistered ones fall
			// through to OnText, so they are filtered here.
			if strings.HasPrefix(text, "/") {
				svc.RePrompt(sender.ID)
				return nil
			}
			return svc.SubmitContact(sender.ID, sender.Username, text)
		}
		return c.Send(msgFallback, menu)
	}
}

// onCallback handles the moderator's decision buttons. The payload encodes
// the action and the submitter id; everything else comes out of the pending
// store during resolution.
func onCallback(svc *review.Service) tele.HandlerFunc {
	return func(c tele.Context) error {
		cb := c.Callback()
		data := strings.TrimPrefix(cb.Data, "\f")

		action, submitterID, err := review.DecodeDecision(data)
		if err != nil {
			slog.Warn("unparseable callback payload", "data", data, "err", err)
			return c.Respond(&tele.CallbackResponse{Text: "Unknown action."})
		}

		ref := review.MessageRef{
			ChatID:    cb.Message.Chat.ID,
			MessageID: strconv.Itoa(cb.Message.ID),
		}
		outcome := svc.Resolve(c.Sender().ID, action, submitterID, ref)
		return c.Respond(&tele.CallbackResponse{Text: outcome.Notice})
	}
}

// onMedia keeps a submitter in AwaitingContact when they send something that
// is not plain text: the intake accepts text only.
func onMedia(svc *review.Service, menu *tele.ReplyMarkup) tele.HandlerFunc {
	return func(c tele.Context) error {
		if svc.Phase(c.Sender().ID) == model.PhaseAwaitingContact {
			svc.RePrompt(c.Sender().ID)
			return nil
		}
		return c.Send(msgFallback, menu)
	}
}
