package main

import (
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

func TestVouchPostsCardToChannel(t *testing.T) {
	bot := &fakeBot{}
	swapApp(t, newTestAppContext(t, bot))

	msg := commandMessage(memberID, memberID, "/vouch seller1 | 1K Followers | 5 | fast delivery")
	handleUpdate(bot, tgbotapi.Update{Message: msg})

	if len(bot.sent) != 2 {
		t.Fatalf("got %d sends, want card + confirmation", len(bot.sent))
	}
	card := bot.sent[0].(tgbotapi.MessageConfig)
	if card.ChannelUsername != "@vouches" {
		t.Fatalf("card went to %q, want the vouch channel", card.ChannelUsername)
	}
	for _, want := range []string{"seller1", "1K Followers", "fast delivery", "⭐⭐⭐⭐⭐"} {
		if !strings.Contains(card.Text, want) {
			t.Fatalf("card missing %q:\n%s", want, card.Text)
		}
	}
	confirm := bot.sent[1].(tgbotapi.MessageConfig)
	if !strings.Contains(confirm.Text, "posted") {
		t.Fatalf("no confirmation to the voucher: %s", confirm.Text)
	}
}

func TestVouchMalformedShowsUsage(t *testing.T) {
	bot := &fakeBot{}
	swapApp(t, newTestAppContext(t, bot))

	for _, args := range []string{
		"",
		"seller only",
		"seller1 | product | notanumber | comment",
		"seller1 | product | 5",
	} {
		bot.sent = nil
		msg := commandMessage(memberID, memberID, strings.TrimSpace("/vouch "+args))
		handleUpdate(bot, tgbotapi.Update{Message: msg})

		if len(bot.sent) != 1 {
			t.Fatalf("args %q: got %d sends, want usage only", args, len(bot.sent))
		}
		reply := bot.sent[0].(tgbotapi.MessageConfig)
		if !strings.Contains(reply.Text, "Usage:") {
			t.Fatalf("args %q: expected usage help, got %s", args, reply.Text)
		}
	}
}

func TestVouchRatingClamped(t *testing.T) {
	bot := &fakeBot{}
	swapApp(t, newTestAppContext(t, bot))

	msg := commandMessage(memberID, memberID, "/vouch seller1 | product | 9 | great")
	handleUpdate(bot, tgbotapi.Update{Message: msg})

	card := bot.sent[0].(tgbotapi.MessageConfig)
	if strings.Count(card.Text, "⭐") != 5 {
		t.Fatalf("rating 9 not clamped to 5 stars:\n%s", card.Text)
	}
}
