package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/dotworks/PixieBot_Go/internal/accrual"
	"github.com/dotworks/PixieBot_Go/internal/bootstrap"
	"github.com/dotworks/PixieBot_Go/internal/catalog"
	"github.com/dotworks/PixieBot_Go/internal/config"
	"github.com/dotworks/PixieBot_Go/internal/database"
	"github.com/dotworks/PixieBot_Go/internal/discord"
	"github.com/dotworks/PixieBot_Go/internal/enchant"
	"github.com/dotworks/PixieBot_Go/internal/forge"
	"github.com/dotworks/PixieBot_Go/internal/gamble"
	"github.com/dotworks/PixieBot_Go/internal/handler"
	"github.com/dotworks/PixieBot_Go/internal/ledger"
	"github.com/dotworks/PixieBot_Go/internal/lootbox"
	"github.com/dotworks/PixieBot_Go/internal/pet"
	"github.com/dotworks/PixieBot_Go/internal/scheduler"
	"github.com/dotworks/PixieBot_Go/internal/server"
	"github.com/dotworks/PixieBot_Go/internal/worker"
)

const (
	shutdownTimeout = 10 * time.Second

	poolMaxIdle = 5 * time.Minute
	poolMaxLife = 30 * time.Minute

	workerCount    = 2
	workerQueueLen = 16
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	bootstrap.SetupLogger(cfg)
	handler.InitValidator()

	connString := cfg.GetDBConnString()
	if err := database.Migrate(connString); err != nil {
		slog.Error("Migrations failed", "error", err)
		os.Exit(1)
	}

	dbPool, err := database.NewPool(connString, database.DefaultMaxConnections, poolMaxIdle, poolMaxLife)
	if err != nil {
		slog.Error("Database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Handlers publish through the resilient publisher so a flaky subscriber
	// never fails a committed request.
	bus, publisher, deadLetter, err := bootstrap.InitializeEventSystem(os.Getenv("EVENT_DEADLETTER_PATH"))
	if err != nil {
		slog.Error("Event system failed", "error", err)
		os.Exit(1)
	}
	bootstrap.RegisterEventHandlers(bus)

	repos := bootstrap.InitializeRepositories(dbPool)

	catalogService, err := catalog.NewService(repos.Catalog)
	if err != nil {
		slog.Error("Catalog failed to load", "error", err)
		os.Exit(1)
	}

	// Role purchases need the Discord backend; without it they fail cleanly
	// at purchase time.
	var roles ledger.RoleGranter
	if granter, err := discord.NewRoleGranter(cfg.DiscordToken, os.Getenv("DISCORD_GUILD_ID")); err != nil {
		slog.Warn("Role granting disabled", "reason", err)
	} else {
		roles = granter
	}

	ledgerService := ledger.NewService(repos.Ledger, catalogService, roles)
	gambleService := gamble.NewService(repos.Ledger)
	lootboxService := lootbox.NewService(repos.Economy)
	forgeService := forge.NewService(repos.Craft, catalogService)
	enchantService := enchant.NewService(repos.Craft, catalogService)
	petService := pet.NewService(repos.Pet)
	accrualService := accrual.NewService(repos.Ledger)
	tracker := accrual.NewTracker(accrualService, publisher)

	// Background jobs: hourly pet growth, per-minute voice accrual ticks.
	pool := worker.NewPool(workerCount, workerQueueLen)
	pool.Start()
	sched := scheduler.New(pool)
	sched.Schedule(bootstrap.GrowthInterval, worker.NewGrowthJob(petService))
	sched.Schedule(bootstrap.VoiceTickInterval, worker.NewVoiceTickJob(tracker))

	srv := server.NewServer(cfg.Port, cfg.APIKey, trustedProxies(), dbPool, server.Services{
		Ledger:  ledgerService,
		Catalog: catalogService,
		Gamble:  gambleService,
		Lootbox: lootboxService,
		Forge:   forgeService,
		Enchant: enchantService,
		Pet:     petService,
		Accrual: accrualService,
		Tracker: tracker,
	}, publisher)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:     srv,
		Scheduler:  sched,
		WorkerPool: pool,
		Tracker:    tracker,
		DeadLetter: deadLetter,
	})
}

// trustedProxies reads the comma-separated TRUSTED_PROXIES list.
func trustedProxies() []string {
	raw := os.Getenv("TRUSTED_PROXIES")
	if raw == "" {
		return nil
	}
	var proxies []string
	for _, p := range strings.Split(raw, ",") {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			proxies = append(proxies, trimmed)
		}
	}
	return proxies
}
