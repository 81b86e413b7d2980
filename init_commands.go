package main

func SetupCommandRegistry() *CommandRegistry {
	r := NewCommandRegistry()

	// Catalog
	r.Register("restock", &RestockCmd{})
	r.Register("products", &ProductsCmd{})
	r.Register("cancel", &CancelCmd{})

	// Moderation
	r.Register("warn", &WarnCmd{})
	r.Register("warns", &WarnsCmd{})
	r.Register("kick", &KickCmd{})
	r.Register("ban", &BanCmd{})
	r.Register("mute", &MuteCmd{})

	// Community
	r.Register("vouch", &VouchCmd{})

	// Ops
	r.Register("status", &StatusCmd{})
	r.Register("start", &HelpCmd{}) // Alias
	r.Register("help", &HelpCmd{})

	return r
}
