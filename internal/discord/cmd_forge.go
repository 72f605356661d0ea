package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// ForgeStartCommand returns the forge start command definition and handler
func ForgeStartCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "forge-start",
		Description: "Start crafting an item in the forge",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "recipe",
				Description: "Recipe to craft (see /recipes)",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "minutes",
				Description: "How long to commit the forge (longer raises quality)",
				Required:    true,
				MinValue:    &[]float64{1}[0],
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)
			options := getOptions(i)
			recipe := options[0].StringValue()
			minutes := int(options[1].IntValue())

			result, err := client.StartCraft(user.ID, recipe, minutes)
			if err != nil {
				return "", err
			}

			return fmt.Sprintf("Forging **%s** for **%d minutes**.\nEstimated wait: **%.0f minutes**.\nCome back with `/forge-collect` when it's done!",
				result.Recipe, result.CommittedDuration, result.EstimatedWait), nil
		}, ResponseConfig{Title: "🔨 Forge Lit!", Color: 0xe67e22})
	}

	return cmd, handler
}

// ForgeCollectCommand returns the forge collect command definition and handler
func ForgeCollectCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "forge-collect",
		Description: "Collect your finished craft from the forge",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)
			result, err := client.CollectCraft(user.ID)
			if err != nil {
				return "", err
			}

			var sb strings.Builder
			fmt.Fprintf(&sb, "You forged **%s** (%s quality), worth **%d coins**.\n", result.ItemName, titleCase(result.Quality), result.ItemValue)
			fmt.Fprintf(&sb, "Gained **%d forge XP**", result.XPAwarded)
			if result.LevelsGained > 0 {
				fmt.Fprintf(&sb, " and reached **forge level %d**!", result.NewForgeLevel)
			} else {
				sb.WriteString(".")
			}
			return sb.String(), nil
		}, ResponseConfig{Title: "⚒️ Craft Collected!", Color: 0x2ecc71})
	}

	return cmd, handler
}

// ForgeStatusCommand returns the forge status command definition and handler
func ForgeStatusCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "forge-status",
		Description: "Check on your active forge job",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)
			status, err := client.GetCraftStatus(user.ID)
			if err != nil {
				return "", err
			}

			if status.Ready {
				return fmt.Sprintf("**%s** is ready! Collect it with `/forge-collect`.", status.Recipe), nil
			}
			return fmt.Sprintf("Forging **%s**: %.0f of %.0f minutes elapsed, **%.0f minutes** remaining.",
				status.Recipe, status.ElapsedMinutes, status.EstimatedWait, status.RemainingMinutes), nil
		}, ResponseConfig{Title: "🔥 Forge Status", Color: 0xe67e22})
	}

	return cmd, handler
}

// RecipesCommand returns the recipe listing command definition and handler
func RecipesCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "recipes",
		Description: "List the recipes the forge can craft",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			recipes, err := client.GetRecipes()
			if err != nil {
				return "", err
			}

			if len(recipes) == 0 {
				return "The forge has no recipes loaded.", nil
			}

			var sb strings.Builder
			for _, r := range recipes {
				fmt.Fprintf(&sb, "**%s** - base value %d, at least %d minutes\n", r.Name, r.BaseValue, r.MinimumMinutes)
				if r.Description != "" {
					fmt.Fprintf(&sb, "  %s\n", r.Description)
				}
			}
			return sb.String(), nil
		}, ResponseConfig{Title: "📜 Forge Recipes", Color: 0x95a5a6})
	}

	return cmd, handler
}
