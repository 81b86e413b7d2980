package main

import (
	"time"

	"restockbot/internal/catalog"
	"restockbot/internal/flow"
)

// AppContext holds the application dependencies and state.
type AppContext struct {
	Config    *Config
	Catalog   *catalog.Store
	Flows     *flow.Controller
	Warns     *WarnStore
	Spam      *SpamGuard
	StartTime time.Time
}

// InitApp wires the application context together. The messenger is the
// outbound chat adapter; in tests it runs over a fake bot.
func InitApp(cfg *Config, store *catalog.Store, warns *WarnStore, out catalog.Messenger) *AppContext {
	pub := &catalog.Publisher{Store: store, Out: out}
	ttl := time.Duration(cfg.FormTTLMinutes) * time.Minute

	return &AppContext{
		Config:    cfg,
		Catalog:   store,
		Flows:     flow.NewController(store, pub, cfg.IsAdmin, ttl),
		Warns:     warns,
		Spam:      NewSpamGuard(cfg),
		StartTime: time.Now(),
	}
}
