package main

import (
	"grosly/internal/config" // Custom import path (Config)
	"grosly/internal/db"     // Custom import path (Database)
)

// Main entry point for migration
func main() {
	cfg := config.LoadConfig() // Load configuration

	db.Migrate(cfg.DSN()) // Connect and run schema migration
}
