package main

import (
	"errors"
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"restockbot/internal/catalog"
	"restockbot/internal/flow"
)

// ═══════════════════════════════════════════════════════════════════
//  CATALOG COMMANDS
// ═══════════════════════════════════════════════════════════════════

type RestockCmd struct{}

func (c *RestockCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args string) {
	if err := ctx.Flows.BeginCreate(msg.From.ID); err != nil {
		sendMarkdown(bot, msg.Chat.ID, rejectionText(err))
		return
	}
	sendMarkdown(bot, msg.Chat.ID, createFormText())
}
func (c *RestockCmd) Description() string { return "Publish a restock announcement" }
func (c *RestockCmd) AdminOnly() bool     { return true }

type ProductsCmd struct{}

func (c *ProductsCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args string) {
	all := ctx.Catalog.All()
	if len(all) == 0 {
		sendMarkdown(bot, msg.Chat.ID, "📦 The catalog is empty. Use /restock to add a product.")
		return
	}

	var b strings.Builder
	b.WriteString("📦 *Catalog*\n\n")
	for _, rec := range all {
		total := 0
		for _, v := range rec.Variants {
			total += v.Stock
		}
		announced := "—"
		if rec.Announced() {
			announced = "📣"
		}
		fmt.Fprintf(&b, "%s *%s* — %d variants, %d in stock\n", announced, rec.Key, len(rec.Variants), total)
	}
	sendMarkdown(bot, msg.Chat.ID, b.String())
}
func (c *ProductsCmd) Description() string { return "List catalog products" }
func (c *ProductsCmd) AdminOnly() bool     { return true }

type CancelCmd struct{}

func (c *CancelCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args string) {
	if ctx.Flows.Cancel(msg.From.ID) {
		sendMarkdown(bot, msg.Chat.ID, "🗑 Form discarded.")
		return
	}
	sendMarkdown(bot, msg.Chat.ID, "Nothing to cancel.")
}
func (c *CancelCmd) Description() string { return "Discard the open form" }
func (c *CancelCmd) AdminOnly() bool     { return true }

// ═══════════════════════════════════════════════════════════════════
//  FORM SURFACE
// ═══════════════════════════════════════════════════════════════════

func createFormText() string {
	return "📝 *New product*\n\n" +
		"Fill this in and send it back as one message:\n\n" +
		"```\n" + flow.CreateFormTemplate + "\n```\n" +
		"_One `name,price,stock` line per variant. /cancel to abort._"
}

func editFormText(key, prefill string) string {
	return "✏️ *Edit stock — " + key + "*\n\n" +
		"Send back the updated variant lines:\n\n" +
		"```\n" + prefill + "\n```\n" +
		"_One `name,price,stock` line per variant. /cancel to abort._"
}

// handleFormSubmission finishes an open create/edit flow with the operator's
// reply and reports the outcome to them only.
func handleFormSubmission(bot BotAPI, msg *tgbotapi.Message) {
	res, err := app.Flows.Submit(msg.From.ID, msg.Text)
	if err != nil {
		sendMarkdown(bot, msg.Chat.ID, rejectionText(err))
		return
	}
	sendMarkdown(bot, msg.Chat.ID, publishReport(res))
}

// publishReport words the outcome for the operator, separating "stored and
// announced" from "stored but the announcement sync failed" with a precise,
// recoverable reason.
func publishReport(res flow.Result) string {
	key := res.Record.Key

	if res.SyncErr == nil {
		if res.Created {
			return fmt.Sprintf("✅ *%s* saved and announced.", key)
		}
		return fmt.Sprintf("✅ *%s* saved, announcement updated in place.", key)
	}

	switch {
	case errors.Is(res.SyncErr, catalog.ErrChannelUnavailable):
		return fmt.Sprintf("💾 *%s* saved, but the channel is unreachable — check the channel reference and the bot's rights there.", key)
	case errors.Is(res.SyncErr, catalog.ErrMessageUnavailable):
		return fmt.Sprintf("💾 *%s* saved, but the announcement message is gone (deleted externally). The catalog is up to date; resend manually when ready.", key)
	}
	return fmt.Sprintf("💾 *%s* saved, but announcing failed: `%v`", key, res.SyncErr)
}

func rejectionText(err error) string {
	switch {
	case errors.Is(err, flow.ErrUnauthorized):
		return "🚫 Admins only."
	case errors.Is(err, flow.ErrUnknownProduct):
		return "❓ No such product in the catalog."
	case errors.Is(err, flow.ErrNoSession):
		return "No form is open. Use /restock to start one."
	case errors.Is(err, flow.ErrSessionExpired):
		return "⏱ The form expired — trigger it again."
	case errors.Is(err, flow.ErrMissingName):
		return "⚠️ The `name:` line is missing or empty."
	case errors.Is(err, flow.ErrMissingChannel):
		return "⚠️ The `channel:` line is missing or empty."
	case errors.Is(err, flow.ErrNoVariants):
		return "⚠️ No variant lines found — one `name,price,stock` per line."
	}
	return fmt.Sprintf("❌ %v", err)
}
