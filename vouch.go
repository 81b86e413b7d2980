package main

import (
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"restockbot/internal/format"
)

// ═══════════════════════════════════════════════════════════════════
//  VOUCHES
// ═══════════════════════════════════════════════════════════════════

type VouchCmd struct{}

const vouchUsage = "Usage: /vouch seller | product | rating 1-5 | comment"

func (c *VouchCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args string) {
	parts := strings.Split(args, "|")
	if len(parts) != 4 {
		safeSend(bot, tgbotapi.NewMessage(msg.Chat.ID, vouchUsage))
		return
	}
	seller := strings.TrimSpace(parts[0])
	product := strings.TrimSpace(parts[1])
	rating, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	comment := strings.TrimSpace(parts[3])
	if seller == "" || product == "" || comment == "" || err != nil {
		safeSend(bot, tgbotapi.NewMessage(msg.Chat.ID, vouchUsage))
		return
	}

	id := strings.ToUpper(uuid.New().String()[:6])
	card := fmt.Sprintf(
		"🧾 *Vouch %s*\n\nSeller: %s\nProduct: %s\nRating: %s\nComment: %s\n\n_from %s_",
		id, seller, product, format.Stars(rating), comment, displayName(msg.From),
	)

	chat, err := channelChat(ctx.Config.VouchChannel)
	if err != nil {
		slog.Error("vouch channel unresolved", "channel", ctx.Config.VouchChannel, "err", err)
		safeSend(bot, tgbotapi.NewMessage(msg.Chat.ID, "❌ The vouch channel is not configured correctly."))
		return
	}
	out := tgbotapi.MessageConfig{BaseChat: chat, Text: card, ParseMode: tgbotapi.ModeMarkdown}
	if _, err := bot.Send(out); err != nil {
		slog.Error("vouch post failed", "err", err)
		safeSend(bot, tgbotapi.NewMessage(msg.Chat.ID, "❌ Could not post the vouch."))
		return
	}
	sendMarkdown(bot, msg.Chat.ID, "✅ Vouch *"+id+"* posted. Thank you!")
}
func (c *VouchCmd) Description() string { return "Post a vouch: /vouch seller | product | rating | comment" }
func (c *VouchCmd) AdminOnly() bool     { return false }
