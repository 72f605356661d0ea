package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// StoreCommand returns the store listing command definition and handler
func StoreCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "store",
		Description: "Browse the item store",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionBoolean,
				Name:        "seasonal",
				Description: "Include seasonal items",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			seasonal := false
			if options := getOptions(i); len(options) > 0 {
				seasonal = options[0].BoolValue()
			}

			items, err := client.GetStore(seasonal)
			if err != nil {
				return "", err
			}

			if len(items) == 0 {
				return "The store is empty right now. Check back later!", nil
			}

			var sb strings.Builder
			for _, item := range items {
				fmt.Fprintf(&sb, "**%s** - %d coins\n", item.Name, item.Cost)
				if item.Description != "" {
					fmt.Fprintf(&sb, "  %s\n", item.Description)
				}
			}
			return sb.String(), nil
		}, ResponseConfig{Title: "🏪 Item Store", Color: 0x9b59b6})
	}

	return cmd, handler
}

// BuyCommand returns the buy command definition and handler
func BuyCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "buy",
		Description: "Buy items from the store",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "item",
				Description: "Name of the item to buy",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "quantity",
				Description: "Quantity (default: 1)",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)
			options := getOptions(i)
			itemName := options[0].StringValue()
			quantity := 1
			if len(options) > 1 {
				quantity = int(options[1].IntValue())
			}

			result, err := client.BuyItem(user.ID, itemName, quantity)
			if err != nil {
				return "", err
			}

			msg := fmt.Sprintf("Bought **%s** × %d for **%d coins**.", result.ItemName, result.Quantity, result.CoinsSpent)
			if result.RoleGranted {
				msg += "\n🎖️ A new role has been granted to you!"
			}
			return msg, nil
		}, ResponseConfig{Title: "💰 Purchase Complete", Color: 0x2ecc71})
	}

	return cmd, handler
}

// SellCommand returns the sell command definition and handler
func SellCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "sell",
		Description: "Sell items back to the store at half price",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "item",
				Description: "Name of the item to sell",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "quantity",
				Description: "Quantity (default: 1)",
				Required:    false,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)
			options := getOptions(i)
			itemName := options[0].StringValue()
			quantity := 1
			if len(options) > 1 {
				quantity = int(options[1].IntValue())
			}

			result, err := client.SellItem(user.ID, itemName, quantity)
			if err != nil {
				return "", err
			}

			return fmt.Sprintf("Sold **%s** × %d for **%d coins**.", result.ItemName, result.ItemsSold, result.CoinsGained), nil
		}, ResponseConfig{Title: "💸 Sale Complete", Color: 0xf39c12})
	}

	return cmd, handler
}
