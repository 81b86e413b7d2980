package main

import (
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"

	"restockbot/internal/format"
)

// ═══════════════════════════════════════════════════════════════════
//  STATUS / HELP
// ═══════════════════════════════════════════════════════════════════

type StatusCmd struct{}

func (c *StatusCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args string) {
	var b strings.Builder
	b.WriteString("🤖 *Bot status*\n\n")
	fmt.Fprintf(&b, "Uptime: %s\n", format.FormatDuration(time.Since(ctx.StartTime)))
	fmt.Fprintf(&b, "Products: %d\n", ctx.Catalog.Len())

	if percents, err := cpu.Percent(0, false); err == nil && len(percents) > 0 {
		fmt.Fprintf(&b, "CPU: %.1f%%\n", percents[0])
	} else if err != nil {
		slog.Warn("cpu stats unavailable", "err", err)
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		fmt.Fprintf(&b, "Memory: %.1f%% of %.1f GB\n", vm.UsedPercent, float64(vm.Total)/(1<<30))
	} else {
		slog.Warn("memory stats unavailable", "err", err)
	}
	if info, err := host.Info(); err == nil {
		fmt.Fprintf(&b, "Host: %s (%s), up %s\n", info.Hostname, info.Platform,
			format.FormatDuration(time.Duration(info.Uptime)*time.Second))
	} else {
		slog.Warn("host stats unavailable", "err", err)
	}

	sendMarkdown(bot, msg.Chat.ID, b.String())
}
func (c *StatusCmd) Description() string { return "Bot and host diagnostics" }
func (c *StatusCmd) AdminOnly() bool     { return true }

type HelpCmd struct{}

func (c *HelpCmd) Execute(ctx *AppContext, bot BotAPI, msg *tgbotapi.Message, args string) {
	admin := ctx.Config.IsAdmin(msg.From.ID)

	names := make([]string, 0, len(cmdRegistry.commands))
	for name := range cmdRegistry.commands {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString("📖 *Commands*\n\n")
	for _, name := range names {
		cmd := cmdRegistry.commands[name]
		if cmd.AdminOnly() && !admin {
			continue
		}
		fmt.Fprintf(&b, "/%s — %s\n", name, cmd.Description())
	}
	sendMarkdown(bot, msg.Chat.ID, b.String())
}
func (c *HelpCmd) Description() string { return "Show this help" }
func (c *HelpCmd) AdminOnly() bool     { return false }
