package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// EnchantCommand returns the enchant command definition and handler
func EnchantCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "enchant",
		Description: "Enchant one of your items",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "item",
				Description: "Name of the item to enchant",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "enchantment",
				Description: "Enchantment to apply (random if omitted)",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)
			options := getOptions(i)
			itemName := options[0].StringValue()
			enchantment := ""
			if len(options) > 1 {
				enchantment = options[1].StringValue()
			}

			result, err := client.Enchant(user.ID, itemName, enchantment)
			if err != nil {
				return "", err
			}

			var sb strings.Builder
			fmt.Fprintf(&sb, "Your item became **%s** (%s quality), now worth **%d coins**.\n",
				result.ItemName, titleCase(result.Quality), result.ItemValue)
			fmt.Fprintf(&sb, "Gained **%d enchant XP**", result.XPAwarded)
			if result.LevelsGained > 0 {
				fmt.Fprintf(&sb, " and reached **enchant level %d**!", result.NewEnchantLevel)
			} else {
				sb.WriteString(".")
			}
			return sb.String(), nil
		}, ResponseConfig{Title: "🪄 Enchantment Applied!", Color: 0x8e44ad})
	}

	return cmd, handler
}

// EnchantmentsCommand returns the enchantment listing command definition and handler
func EnchantmentsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "enchantments",
		Description: "List the available enchantments",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			enchantments, err := client.ListEnchantments()
			if err != nil {
				return "", err
			}

			if len(enchantments) == 0 {
				return "No enchantments are loaded.", nil
			}

			var sb strings.Builder
			for _, e := range enchantments {
				fmt.Fprintf(&sb, "**%s** (_%s_)\n", e.Name, e.Suffix)
				if e.Description != "" {
					fmt.Fprintf(&sb, "  %s\n", e.Description)
				}
			}
			return sb.String(), nil
		}, ResponseConfig{Title: "✨ Enchantments", Color: 0x8e44ad})
	}

	return cmd, handler
}
