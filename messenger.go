package main

import (
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"restockbot/internal/catalog"
)

// Callback data prefixes for the announcement controls.
const (
	callbackBuy  = "buy:"
	callbackEdit = "editstock:"
)

// telegramMessenger adapts the Telegram API to the synchronizer's Messenger
// interface.
type telegramMessenger struct {
	bot BotAPI
}

func (m *telegramMessenger) SendAnnouncement(channel, key string, a catalog.Announcement) (int, error) {
	base, err := channelChat(channel)
	if err != nil {
		return 0, err
	}

	kb := announcementKeyboard(key)
	msg := tgbotapi.MessageConfig{
		BaseChat: base,
		Text:     a.Text(),
	}
	msg.ParseMode = "Markdown"
	msg.ReplyMarkup = kb

	sent, err := m.bot.Send(msg)
	if err != nil {
		return 0, mapTelegramError(err, false)
	}
	return sent.MessageID, nil
}

func (m *telegramMessenger) EditAnnouncement(channel string, messageID int, a catalog.Announcement) error {
	base, err := channelChat(channel)
	if err != nil {
		return err
	}

	// Content only; the Buy/Edit controls on the original message persist.
	edit := tgbotapi.EditMessageTextConfig{
		BaseEdit: tgbotapi.BaseEdit{
			ChatID:          base.ChatID,
			ChannelUsername: base.ChannelUsername,
			MessageID:       messageID,
		},
		Text:      a.Text(),
		ParseMode: "Markdown",
	}
	if _, err := m.bot.Send(edit); err != nil {
		return mapTelegramError(err, true)
	}
	return nil
}

// announcementKeyboard builds the two interactive controls attached to every
// announcement on first publish.
func announcementKeyboard(key string) tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🛒 Buy Now", callbackBuy+key),
			tgbotapi.NewInlineKeyboardButtonData("✏️ Edit Stock", callbackEdit+key),
		),
	)
}

// channelChat resolves the operator-entered channel reference: a public
// @channelname or a numeric chat ID. Anything else is a channel-unavailable
// condition before we even talk to Telegram.
func channelChat(ref string) (tgbotapi.BaseChat, error) {
	ref = strings.TrimSpace(ref)
	if strings.HasPrefix(ref, "@") {
		return tgbotapi.BaseChat{ChannelUsername: ref}, nil
	}
	id, err := strconv.ParseInt(ref, 10, 64)
	if err != nil {
		return tgbotapi.BaseChat{}, fmt.Errorf("%w: bad channel reference %q", catalog.ErrChannelUnavailable, ref)
	}
	return tgbotapi.BaseChat{ChatID: id}, nil
}

// mapTelegramError classifies a Telegram API failure into the sync taxonomy
// so the operator report can say whether the channel or the bound message is
// the problem. Unrecognized failures pass through untouched.
func mapTelegramError(err error, editing bool) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "chat not found"),
		strings.Contains(msg, "chat_id is empty"),
		strings.Contains(msg, "not enough rights"):
		return fmt.Errorf("%w: %v", catalog.ErrChannelUnavailable, err)
	case editing && (strings.Contains(msg, "message to edit not found") ||
		strings.Contains(msg, "message can't be edited")):
		return fmt.Errorf("%w: %v", catalog.ErrMessageUnavailable, err)
	}
	return err
}
