package main

import (
	"strings"
	"sync"

	"golang.org/x/time/rate"
)

// ═══════════════════════════════════════════════════════════════════
//  ANTI-SPAM
// ═══════════════════════════════════════════════════════════════════

// SpamGuard screens group messages from non-admins: per-user message rate,
// a bad-word list, and Telegram invite links.
type SpamGuard struct {
	enabled  bool
	badWords []string
	limit    rate.Limit
	burst    int

	mu       sync.Mutex
	limiters map[int64]*rate.Limiter
}

func NewSpamGuard(cfg *Config) *SpamGuard {
	words := make([]string, 0, len(cfg.AntiSpam.BadWords))
	for _, w := range cfg.AntiSpam.BadWords {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			words = append(words, w)
		}
	}
	return &SpamGuard{
		enabled:  cfg.AntiSpam.Enabled,
		badWords: words,
		limit:    rate.Limit(float64(cfg.AntiSpam.MessagesPerMinute) / 60.0),
		burst:    cfg.AntiSpam.Burst,
		limiters: make(map[int64]*rate.Limiter),
	}
}

// Check returns a non-empty reason when the message should be removed.
func (g *SpamGuard) Check(userID int64, text string) string {
	if g == nil || !g.enabled {
		return ""
	}

	lower := strings.ToLower(text)
	if strings.Contains(lower, "t.me/joinchat") || strings.Contains(lower, "t.me/+") {
		return "invite links are not allowed"
	}
	for _, w := range g.badWords {
		if strings.Contains(lower, w) {
			return "watch your language"
		}
	}

	g.mu.Lock()
	lim, ok := g.limiters[userID]
	if !ok {
		lim = rate.NewLimiter(g.limit, g.burst)
		g.limiters[userID] = lim
	}
	g.mu.Unlock()
	if !lim.Allow() {
		return "slow down"
	}
	return ""
}
