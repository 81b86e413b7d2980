package main

import (
	"log/slog"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

var cmdRegistry *CommandRegistry

func init() {
	cmdRegistry = SetupCommandRegistry()
}

// handleUpdate is the single entry point for every gateway event. Updates are
// handled one at a time (see main); the catalog store's single-writer
// assumption rests on that.
func handleUpdate(bot BotAPI, update tgbotapi.Update) {
	if update.CallbackQuery != nil {
		handleCallback(bot, update.CallbackQuery)
		return
	}
	msg := update.Message
	if msg == nil || msg.From == nil {
		return
	}
	if msg.IsCommand() {
		handleCommand(bot, msg)
		return
	}
	handleMessage(bot, msg)
}

func handleCommand(bot BotAPI, msg *tgbotapi.Message) {
	if app == nil {
		slog.Error("App context is nil in handleCommand")
		return
	}
	if cmdRegistry.Execute(app, bot, msg) {
		return
	}
	// Only answer unknown commands in private chats; groups see enough noise.
	if msg.Chat.IsPrivate() {
		safeSend(bot, tgbotapi.NewMessage(msg.Chat.ID, "❓ Unknown command. Use /help"))
	}
}

func handleCallback(bot BotAPI, query *tgbotapi.CallbackQuery) {
	if app == nil {
		slog.Error("App context is nil in handleCallback")
		return
	}
	if query == nil || query.From == nil || query.Message == nil {
		return
	}

	data := query.Data
	switch {
	case strings.HasPrefix(data, callbackBuy):
		key := strings.TrimPrefix(data, callbackBuy)
		// Purchases are settled with a human; the button only points the way.
		answerCallback(bot, query.ID, "📬 DM an admin to buy "+key)

	case strings.HasPrefix(data, callbackEdit):
		handleEditStockTap(bot, query, strings.TrimPrefix(data, callbackEdit))
	}
}

// handleEditStockTap opens the edit form for the tapping operator. The form
// prompt goes to their private chat, not the announcement channel.
func handleEditStockTap(bot BotAPI, query *tgbotapi.CallbackQuery, key string) {
	prefill, err := app.Flows.BeginEdit(query.From.ID, key)
	if err != nil {
		answerCallback(bot, query.ID, rejectionText(err))
		return
	}
	answerCallback(bot, query.ID, "")
	sendMarkdown(bot, query.From.ID, editFormText(key, prefill))
}

// handleMessage routes non-command messages: open form submissions in
// private chats, auto-mod everywhere else.
func handleMessage(bot BotAPI, msg *tgbotapi.Message) {
	if app == nil {
		slog.Error("App context is nil in handleMessage")
		return
	}

	if msg.Chat.IsPrivate() {
		if app.Flows.Awaiting(msg.From.ID) {
			handleFormSubmission(bot, msg)
		}
		return
	}

	if app.Config.IsAdmin(msg.From.ID) {
		return
	}
	if reason := app.Spam.Check(msg.From.ID, msg.Text); reason != "" {
		enforceSpamVerdict(bot, msg, reason)
	}
}

func enforceSpamVerdict(bot BotAPI, msg *tgbotapi.Message, reason string) {
	if _, err := bot.Request(tgbotapi.NewDeleteMessage(msg.Chat.ID, msg.MessageID)); err != nil {
		slog.Error("Failed to delete message", "reason", reason, "err", err)
	}
	slog.Info("Auto-mod removed a message", "user", msg.From.ID, "reason", reason)
	sendMarkdown(bot, msg.Chat.ID, "⚠️ "+displayName(msg.From)+", "+reason)
}

func displayName(u *tgbotapi.User) string {
	if u == nil {
		return "there"
	}
	if u.UserName != "" {
		return "@" + u.UserName
	}
	return u.FirstName
}
