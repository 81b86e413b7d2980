package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// ═══════════════════════════════════════════════════════════════════
//  WARN STORE
// ═══════════════════════════════════════════════════════════════════

type Warn struct {
	Reason string    `json:"reason"`
	By     int64     `json:"by"`
	At     time.Time `json:"at"`
}

// WarnStore keeps per-user warnings in a JSON snapshot next to the catalog.
type WarnStore struct {
	mu   sync.Mutex
	path string
	m    map[int64][]Warn
}

func NewWarnStore(path string) *WarnStore {
	s := &WarnStore{path: path, m: make(map[int64][]Warn)}
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	// A corrupt warns file is not worth refusing to start over.
	if err := json.Unmarshal(data, &s.m); err != nil {
		slog.Warn("warns file corrupt, starting fresh", "path", path, "err", err)
		s.m = make(map[int64][]Warn)
	}
	return s
}

func (s *WarnStore) Add(userID int64, w Warn) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m[userID] = append(s.m[userID], w)
	if err := s.save(); err != nil {
		s.m[userID] = s.m[userID][:len(s.m[userID])-1]
		return 0, err
	}
	return len(s.m[userID]), nil
}

func (s *WarnStore) List(userID int64) []Warn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Warn, len(s.m[userID]))
	copy(out, s.m[userID])
	return out
}

func (s *WarnStore) save() error {
	data, err := json.MarshalIndent(s.m, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0644)
}

// ═══════════════════════════════════════════════════════════════════
//  MODERATION COMMANDS
// ═══════════════════════════════════════════════════════════════════

// moderationTarget resolves who a moderation command aims at: the author of
// the replied-to message. Commands without a reply get usage help.
func moderationTarget(bot BotAPI, msg *tgbotapi.Message, usage string) *tgbotapi.User {
	if msg.ReplyToMessage == nil || msg.ReplyToMessage.From == nil {
		safeSend(bot, tgbotapi.NewMessage(msg.Chat.ID, usage))
		return nil
	}
	return msg.ReplyToMessage.From
}

type WarnCmd struct{}

func (c *WarnCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args string) {
	target := moderationTarget(bot, msg, "Reply to a message with /warn <reason>.")
	if target == nil {
		return
	}
	reason := strings.TrimSpace(args)
	if reason == "" {
		reason = "no reason given"
	}
	count, err := ctx.Warns.Add(target.ID, Warn{Reason: reason, By: msg.From.ID, At: time.Now()})
	if err != nil {
		slog.Error("failed to persist warn", "user", target.ID, "err", err)
		safeSend(bot, tgbotapi.NewMessage(msg.Chat.ID, "❌ Could not save the warning."))
		return
	}
	sendMarkdown(bot, msg.Chat.ID, fmt.Sprintf("⚠️ *%s* warned (%d total): %s", displayName(target), count, reason))
}
func (c *WarnCmd) Description() string { return "Warn the replied-to user" }
func (c *WarnCmd) AdminOnly() bool     { return true }

type WarnsCmd struct{}

func (c *WarnsCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args string) {
	target := moderationTarget(bot, msg, "Reply to a message with /warns to list that user's warnings.")
	if target == nil {
		return
	}
	warns := ctx.Warns.List(target.ID)
	if len(warns) == 0 {
		sendMarkdown(bot, msg.Chat.ID, fmt.Sprintf("✅ *%s* has no warnings.", displayName(target)))
		return
	}
	var b strings.Builder
	fmt.Fprintf(&b, "⚠️ *%s* — %d warning(s):\n", displayName(target), len(warns))
	for i, w := range warns {
		fmt.Fprintf(&b, "%d. %s (%s)\n", i+1, w.Reason, w.At.Format("2006-01-02"))
	}
	sendMarkdown(bot, msg.Chat.ID, b.String())
}
func (c *WarnsCmd) Description() string { return "List warnings for the replied-to user" }
func (c *WarnsCmd) AdminOnly() bool     { return true }

type KickCmd struct{}

func (c *KickCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args string) {
	target := moderationTarget(bot, msg, "Reply to a message with /kick.")
	if target == nil {
		return
	}
	ban := tgbotapi.BanChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{ChatID: msg.Chat.ID, UserID: target.ID},
	}
	if _, err := bot.Request(ban); err != nil {
		slog.Error("kick failed", "user", target.ID, "err", err)
		safeSend(bot, tgbotapi.NewMessage(msg.Chat.ID, "❌ Could not kick that user."))
		return
	}
	// Unban right away so the user may rejoin. Ban-then-unban is how
	// Telegram expresses a kick.
	unban := tgbotapi.UnbanChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{ChatID: msg.Chat.ID, UserID: target.ID},
		OnlyIfBanned:     true,
	}
	if _, err := bot.Request(unban); err != nil {
		slog.Warn("unban after kick failed", "user", target.ID, "err", err)
	}
	sendMarkdown(bot, msg.Chat.ID, fmt.Sprintf("👢 *%s* kicked.", displayName(target)))
}
func (c *KickCmd) Description() string { return "Kick the replied-to user" }
func (c *KickCmd) AdminOnly() bool     { return true }

type BanCmd struct{}

func (c *BanCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args string) {
	target := moderationTarget(bot, msg, "Reply to a message with /ban.")
	if target == nil {
		return
	}
	ban := tgbotapi.BanChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{ChatID: msg.Chat.ID, UserID: target.ID},
	}
	if _, err := bot.Request(ban); err != nil {
		slog.Error("ban failed", "user", target.ID, "err", err)
		safeSend(bot, tgbotapi.NewMessage(msg.Chat.ID, "❌ Could not ban that user."))
		return
	}
	sendMarkdown(bot, msg.Chat.ID, fmt.Sprintf("🔨 *%s* banned.", displayName(target)))
}
func (c *BanCmd) Description() string { return "Ban the replied-to user" }
func (c *BanCmd) AdminOnly() bool     { return true }

type MuteCmd struct{}

func (c *MuteCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args string) {
	target := moderationTarget(bot, msg, "Reply to a message with /mute [minutes].")
	if target == nil {
		return
	}
	minutes := 60
	if args != "" {
		if n, err := strconv.Atoi(strings.Fields(args)[0]); err == nil && n > 0 {
			minutes = n
		}
	}
	restrict := tgbotapi.RestrictChatMemberConfig{
		ChatMemberConfig: tgbotapi.ChatMemberConfig{ChatID: msg.Chat.ID, UserID: target.ID},
		UntilDate:        time.Now().Add(time.Duration(minutes) * time.Minute).Unix(),
		Permissions:      &tgbotapi.ChatPermissions{CanSendMessages: false},
	}
	if _, err := bot.Request(restrict); err != nil {
		slog.Error("mute failed", "user", target.ID, "err", err)
		safeSend(bot, tgbotapi.NewMessage(msg.Chat.ID, "❌ Could not mute that user."))
		return
	}
	sendMarkdown(bot, msg.Chat.ID, fmt.Sprintf("🔇 *%s* muted for %d minutes.", displayName(target), minutes))
}
func (c *MuteCmd) Description() string { return "Mute the replied-to user for N minutes (default 60)" }
func (c *MuteCmd) AdminOnly() bool     { return true }
