package main

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func replyCommand(userID, chatID, targetID int64, text string) *tgbotapi.Message {
	msg := commandMessage(userID, chatID, text)
	msg.Chat.Type = "supergroup"
	msg.ReplyToMessage = &tgbotapi.Message{
		From: &tgbotapi.User{ID: targetID, UserName: "offender"},
		Chat: msg.Chat,
	}
	return msg
}

func TestWarnStorePersistsAcrossOpens(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warns.json")

	s := NewWarnStore(path)
	if _, err := s.Add(42, Warn{Reason: "spam", By: 1, At: time.Now()}); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if _, err := s.Add(42, Warn{Reason: "again", By: 1, At: time.Now()}); err != nil {
		t.Fatalf("Add: %v", err)
	}

	reopened := NewWarnStore(path)
	warns := reopened.List(42)
	if len(warns) != 2 {
		t.Fatalf("got %d warns after reopen, want 2", len(warns))
	}
	if warns[0].Reason != "spam" {
		t.Fatalf("first warn = %q", warns[0].Reason)
	}
}

func TestWarnStoreCorruptFileStartsFresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "warns.json")
	writeFile(t, path, "{not json")

	s := NewWarnStore(path)
	if got := s.List(42); len(got) != 0 {
		t.Fatalf("corrupt file yielded %d warns", len(got))
	}
}

func TestWarnCommandCountsUp(t *testing.T) {
	bot := &fakeBot{}
	swapApp(t, newTestAppContext(t, bot))

	handleUpdate(bot, tgbotapi.Update{Message: replyCommand(adminID, -500, memberID, "/warn flooding")})
	handleUpdate(bot, tgbotapi.Update{Message: replyCommand(adminID, -500, memberID, "/warn links")})

	warns := app.Warns.List(memberID)
	if len(warns) != 2 {
		t.Fatalf("got %d warns, want 2", len(warns))
	}
	last := bot.sent[len(bot.sent)-1].(tgbotapi.MessageConfig)
	if !strings.Contains(last.Text, "2 total") {
		t.Fatalf("warn reply missing count: %s", last.Text)
	}
}

func TestWarnWithoutReplyShowsUsage(t *testing.T) {
	bot := &fakeBot{}
	swapApp(t, newTestAppContext(t, bot))

	msg := commandMessage(adminID, -500, "/warn flooding")
	msg.Chat.Type = "supergroup"
	handleUpdate(bot, tgbotapi.Update{Message: msg})

	if len(app.Warns.List(memberID)) != 0 {
		t.Fatalf("warn recorded without a target")
	}
	reply := bot.sent[0].(tgbotapi.MessageConfig)
	if !strings.Contains(reply.Text, "Reply to a message") {
		t.Fatalf("expected usage help, got %s", reply.Text)
	}
}

func TestKickBansThenUnbans(t *testing.T) {
	bot := &fakeBot{}
	swapApp(t, newTestAppContext(t, bot))

	handleUpdate(bot, tgbotapi.Update{Message: replyCommand(adminID, -500, memberID, "/kick")})

	if len(bot.requests) != 2 {
		t.Fatalf("got %d API requests, want ban+unban", len(bot.requests))
	}
	ban, ok := bot.requests[0].(tgbotapi.BanChatMemberConfig)
	if !ok || ban.UserID != memberID {
		t.Fatalf("first request not a ban of the target: %+v", bot.requests[0])
	}
	unban, ok := bot.requests[1].(tgbotapi.UnbanChatMemberConfig)
	if !ok || unban.UserID != memberID || !unban.OnlyIfBanned {
		t.Fatalf("second request not the rejoin-allowing unban: %+v", bot.requests[1])
	}
}

func TestMuteRestrictsForDuration(t *testing.T) {
	bot := &fakeBot{}
	swapApp(t, newTestAppContext(t, bot))

	handleUpdate(bot, tgbotapi.Update{Message: replyCommand(adminID, -500, memberID, "/mute 15")})

	if len(bot.requests) != 1 {
		t.Fatalf("got %d API requests, want 1", len(bot.requests))
	}
	restrict, ok := bot.requests[0].(tgbotapi.RestrictChatMemberConfig)
	if !ok || restrict.UserID != memberID {
		t.Fatalf("not a restriction of the target: %+v", bot.requests[0])
	}
	if restrict.Permissions == nil || restrict.Permissions.CanSendMessages {
		t.Fatalf("mute left sending enabled")
	}
	until := time.Unix(restrict.UntilDate, 0)
	if d := time.Until(until); d < 14*time.Minute || d > 16*time.Minute {
		t.Fatalf("mute window %v, want about 15m", d)
	}
}

func TestModerationRequiresAdmin(t *testing.T) {
	bot := &fakeBot{}
	swapApp(t, newTestAppContext(t, bot))

	handleUpdate(bot, tgbotapi.Update{Message: replyCommand(memberID, -500, adminID, "/ban")})

	if len(bot.requests) != 0 {
		t.Fatalf("non-admin triggered a moderation API call")
	}
}
