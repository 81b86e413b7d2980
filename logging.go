package main

import (
	"io"
	"log/slog"
	"os"
)

func defaultLogPath() string {
	logPath := os.Getenv("RESTOCKBOT_LOG_FILE")
	if logPath == "" {
		logPath = "restockbot.log"
	}
	return logPath
}

// setupLogger initializes the structured logger: stdout plus a persistent
// log file when one can be opened.
func setupLogger() {
	var out io.Writer = os.Stdout

	logFile, err := os.OpenFile(defaultLogPath(), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err == nil {
		out = io.MultiWriter(os.Stdout, logFile)
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo})
	slog.SetDefault(slog.New(handler))

	if err != nil {
		slog.Warn("Log file unavailable, logging to stdout only", "err", err)
	}
}
