package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"restockbot/internal/catalog"
)

type fakeBot struct {
	sent     []tgbotapi.Chattable
	requests []tgbotapi.Chattable
	nextID   int
	sendErr  error
}

func (b *fakeBot) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	if b.sendErr != nil {
		return tgbotapi.Message{}, b.sendErr
	}
	b.sent = append(b.sent, c)
	b.nextID++
	return tgbotapi.Message{MessageID: b.nextID, Chat: &tgbotapi.Chat{ID: 1}}, nil
}

func (b *fakeBot) Request(c tgbotapi.Chattable) (*tgbotapi.APIResponse, error) {
	b.requests = append(b.requests, c)
	return &tgbotapi.APIResponse{}, nil
}

func testConfig() *Config {
	cfg := &Config{
		BotToken:     "test",
		AdminIDs:     []int64{1},
		VouchChannel: "@vouches",
	}
	cfg.AntiSpam.Enabled = true
	cfg.AntiSpam.BadWords = []string{"scam"}
	applyConfigDefaults(cfg)
	return cfg
}

// newTestAppContext builds an AppContext over a throwaway catalog and warn
// store, with the given bot wired as the outbound messenger.
func newTestAppContext(t *testing.T, bot BotAPI) *AppContext {
	t.Helper()
	dir := t.TempDir()

	store, err := catalog.Open(filepath.Join(dir, "products.json"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	warns := NewWarnStore(filepath.Join(dir, "warns.json"))

	return InitApp(testConfig(), store, warns, &telegramMessenger{bot: bot})
}

func commandMessage(userID, chatID int64, text string) *tgbotapi.Message {
	cmdLen := len(text)
	if i := strings.IndexByte(text, ' '); i >= 0 {
		cmdLen = i
	}
	return &tgbotapi.Message{
		Text:     text,
		From:     &tgbotapi.User{ID: userID},
		Chat:     &tgbotapi.Chat{ID: chatID, Type: "private"},
		Entities: []tgbotapi.MessageEntity{{Type: "bot_command", Offset: 0, Length: cmdLen}},
	}
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
}

func privateText(userID int64, text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Text: text,
		From: &tgbotapi.User{ID: userID},
		Chat: &tgbotapi.Chat{ID: userID, Type: "private"},
	}
}
