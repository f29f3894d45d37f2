package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"nexus-bank/internal/app"
	"nexus-bank/internal/config"
	"nexus-bank/internal/console"
	"nexus-bank/internal/format"
	"nexus-bank/internal/gateway"
	"nexus-bank/internal/usecase"
)

func main() {
	// Define command-line flags
	configFile := flag.String("config", "", "Path to a config file (yaml, json or toml)")
	page := flag.String("page", "", "Deep link of the page to open first, e.g. #dashboard")
	seedFile := flag.String("seed", "", "CSV file with seed users (name,email,password,account_number,balance)")
	flag.Parse()

	v := config.New()
	if *page != "" {
		v.Set("start_page", *page)
	}
	if *seedFile != "" {
		v.Set("seed_file", *seedFile)
	}
	cfg, err := config.Load(v, *configFile)
	if err != nil {
		log.Fatalf("Loading config: %v", err)
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	currency, err := format.NewCurrency(cfg.Currency.Locale, cfg.Currency.Symbol)
	if err != nil {
		log.Fatalf("Creating currency formatter: %v", err)
	}

	// --- Dependency Injection (Wiring the application) ---

	// 1. Create the repository (the outermost layer)
	var repo usecase.UserRepository = gateway.NewSeedUserRepository()
	if cfg.SeedFile != "" {
		repo = gateway.NewCSVUserRepository(cfg.SeedFile)
	}

	// 2. Create the usecases and inject the repository (the core logic layer)
	session := usecase.NewSession(repo, cfg.LoginDelay)
	ledger := usecase.NewLedger(usecase.UUIDGenerator{})

	ctx := context.Background()
	users, err := session.Users(ctx)
	if err != nil {
		log.Fatalf("Loading users: %v", err)
	}
	logger.Info("seed users loaded", "count", len(users), "source", cfg.SeedFile)

	// 3. Create the presentation layer
	view := console.NewView(os.Stdout, currency)
	nav := usecase.NewNavigator(session, ledger, view, cfg.RecentCount)
	bank := app.New(session, ledger, nav, view, currency, logger)
	shell := console.NewShell(bank, view, os.Stdout, logger)

	// --- Run ---
	bank.Start(cfg.StartPage)
	if err := shell.Run(ctx, os.Stdin); err != nil {
		log.Fatalf("Reading commands: %v", err)
	}
}
