package main

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds all configuration from config.json.
type Config struct {
	BotToken string  `json:"bot_token"`
	AdminIDs []int64 `json:"admin_ids"`

	// VouchChannel receives review cards; numeric chat ID or @channelname.
	VouchChannel string `json:"vouch_channel"`

	CatalogFile string `json:"catalog_file"`
	WarnsFile   string `json:"warns_file"`

	FormTTLMinutes int `json:"form_ttl_minutes"`

	KeepAlive struct {
		Enabled bool   `json:"enabled"`
		Addr    string `json:"addr"`
	} `json:"keep_alive"`

	AntiSpam struct {
		Enabled           bool     `json:"enabled"`
		BadWords          []string `json:"bad_words"`
		MessagesPerMinute int      `json:"messages_per_minute"`
		Burst             int      `json:"burst"`
	} `json:"anti_spam"`
}

// loadConfig reads configuration from path with smart defaults. The token may
// come from the BOT_TOKEN env var instead of the file.
func loadConfig(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err == nil {
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing %s: %w", path, err)
		}
	}

	if tok := os.Getenv("BOT_TOKEN"); tok != "" {
		cfg.BotToken = tok
	}
	if cfg.BotToken == "" {
		return nil, fmt.Errorf("bot_token empty: set it in %s or via BOT_TOKEN", path)
	}
	if len(cfg.AdminIDs) == 0 {
		return nil, fmt.Errorf("admin_ids empty in %s: at least one admin is required", path)
	}

	applyConfigDefaults(cfg)
	return cfg, nil
}

// applyConfigDefaults sets sensible defaults for missing configuration.
func applyConfigDefaults(cfg *Config) {
	if cfg.CatalogFile == "" {
		cfg.CatalogFile = "products.json"
	}
	if cfg.WarnsFile == "" {
		cfg.WarnsFile = "warns.json"
	}
	if cfg.FormTTLMinutes <= 0 {
		cfg.FormTTLMinutes = 10
	}
	if cfg.KeepAlive.Addr == "" {
		cfg.KeepAlive.Enabled = true
		cfg.KeepAlive.Addr = ":3000"
	}
	if cfg.AntiSpam.MessagesPerMinute <= 0 {
		cfg.AntiSpam.Enabled = true
		cfg.AntiSpam.MessagesPerMinute = 20
	}
	if cfg.AntiSpam.Burst <= 0 {
		cfg.AntiSpam.Burst = 5
	}
}

// IsAdmin reports whether the user holds the administrative capability.
func (c *Config) IsAdmin(userID int64) bool {
	for _, id := range c.AdminIDs {
		if id == userID {
			return true
		}
	}
	return false
}
