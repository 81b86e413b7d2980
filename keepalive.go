package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"restockbot/internal/catalog"
)

// ═══════════════════════════════════════════════════════════════════
//  KEEPALIVE HTTP
// ═══════════════════════════════════════════════════════════════════

// newKeepAliveRouter exposes a tiny HTTP surface so uptime monitors can ping
// the bot and ops can peek at the catalog without Telegram.
func newKeepAliveRouter(ctx *AppContext) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Bot is running")
	})
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"uptime":   time.Since(ctx.StartTime).Round(time.Second).String(),
			"products": ctx.Catalog.Len(),
		})
	})
	r.GET("/catalog", func(c *gin.Context) {
		byKey := make(map[string]catalog.ProductRecord)
		for _, rec := range ctx.Catalog.All() {
			byKey[rec.Key] = rec
		}
		c.JSON(http.StatusOK, byKey)
	})

	return r
}

// runKeepAlive serves the keepalive router until ctx is cancelled.
func runKeepAlive(ctx context.Context, appCtx *AppContext, addr string) error {
	srv := &http.Server{Addr: addr, Handler: newKeepAliveRouter(appCtx)}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	slog.Info("keepalive server listening", "addr", addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
