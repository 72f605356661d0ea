package main

import (
	"errors"
	"log/slog"
	"os"

	"github.com/bwmarrin/discordgo"
	"github.com/joho/godotenv"

	"github.com/dotworks/PixieBot_Go/internal/discord"
)

const defaultAPIURL = "http://localhost:8080"

// CommandFactory creates a Discord command and its handler.
// Used to register all available commands in one place.
type CommandFactory func() (*discordgo.ApplicationCommand, discord.CommandHandler)

func main() {
	_ = godotenv.Load()

	setupLogger()

	cfg, err := loadConfig()
	if err != nil {
		slog.Error("Configuration failed", "error", err)
		os.Exit(1)
	}

	bot, err := discord.New(cfg)
	if err != nil {
		slog.Error("Failed to create bot", "error", err)
		os.Exit(1)
	}

	for _, factory := range commandFactories() {
		bot.Registry.Register(factory())
	}

	forceUpdate := os.Getenv("DISCORD_FORCE_COMMAND_UPDATE") == "true"
	if forceUpdate {
		slog.Info("Force command update enabled via environment variable")
	}

	if err := bot.RegisterCommands(bot.Registry, forceUpdate); err != nil {
		slog.Error("Failed to register commands", "error", err)
		// Don't exit - bot can still run if commands are already registered
	}

	if err := bot.Run(); err != nil {
		slog.Error("Bot failed", "error", err)
		os.Exit(1)
	}
}

// commandFactories lists every slash command the bot exposes.
func commandFactories() []CommandFactory {
	return []CommandFactory{
		discord.BalanceCommand,
		discord.InventoryCommand,
		discord.StoreCommand,
		discord.BuyCommand,
		discord.SellCommand,
		discord.GiveCommand,
		discord.GiftCommand,
		discord.GambleCommand,
		discord.LootBoxCommand,
		discord.ForgeStartCommand,
		discord.ForgeCollectCommand,
		discord.ForgeStatusCommand,
		discord.RecipesCommand,
		discord.EnchantCommand,
		discord.EnchantmentsCommand,
		discord.PetsCommand,
		discord.PetBoxCommand,
		discord.PetActivateCommand,
		discord.PetFeedCommand,
		discord.PetRenameCommand,
		discord.PetReleaseCommand,
	}
}

// setupLogger configures structured logging to stdout.
func setupLogger() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	slog.SetDefault(logger)
}

// loadConfig loads and validates Discord bot configuration from environment
// variables. Returns an error if required variables are missing.
func loadConfig() (discord.Config, error) {
	token := os.Getenv("DISCORD_TOKEN")
	if token == "" {
		return discord.Config{}, errors.New("DISCORD_TOKEN is required")
	}

	appID := os.Getenv("DISCORD_APP_ID")
	if appID == "" {
		return discord.Config{}, errors.New("DISCORD_APP_ID is required")
	}

	apiURL := os.Getenv("API_URL")
	if apiURL == "" {
		apiURL = defaultAPIURL
	}
	slog.Info("Configured API URL", "url", apiURL)

	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		slog.Warn("API_KEY not set, discord bot requests may fail")
	}

	return discord.Config{
		Token:  token,
		AppID:  appID,
		APIURL: apiURL,
		APIKey: apiKey,
	}, nil
}
