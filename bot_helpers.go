package main

import (
	"log/slog"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ═══════════════════════════════════════════════════════════════════
//  MESSAGE HELPERS
// ═══════════════════════════════════════════════════════════════════

func safeSend(bot BotAPI, msg tgbotapi.Chattable) {
	if bot == nil {
		return
	}
	if _, err := bot.Send(msg); err != nil {
		slog.Error("Telegram send failed", "err", err)
	}
}

func sendMarkdown(bot BotAPI, chatID int64, text string) {
	if bot == nil {
		return
	}
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = "Markdown"
	if _, err := bot.Send(msg); err != nil {
		slog.Error("Error sending Markdown message. Retrying as plain text", "err", err)
		msg.ParseMode = ""
		safeSend(bot, msg)
	}
}

func editMessage(bot BotAPI, chatID int64, msgID int, text string, keyboard *tgbotapi.InlineKeyboardMarkup) {
	if bot == nil {
		return
	}
	edit := tgbotapi.NewEditMessageText(chatID, msgID, text)
	edit.ParseMode = "Markdown"
	if keyboard != nil {
		edit.ReplyMarkup = keyboard
	}
	if _, err := bot.Send(edit); err != nil {
		slog.Error("Error editing message as Markdown. Retrying as plain text", "err", err)
		edit.ParseMode = ""
		safeSend(bot, edit)
	}
}

// answerCallback acknowledges an inline button tap, optionally with a popup.
func answerCallback(bot BotAPI, queryID, text string) {
	if bot == nil {
		return
	}
	if _, err := bot.Request(tgbotapi.NewCallback(queryID, text)); err != nil {
		slog.Error("Callback ack failed", "err", err)
	}
}
