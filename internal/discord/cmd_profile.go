package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// BalanceCommand returns the balance command definition and handler
func BalanceCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "balance",
		Description: "Show your coin, pouch, and stardust balances",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)
			account, err := client.GetAccount(user.ID)
			if err != nil {
				return "", err
			}

			var sb strings.Builder
			fmt.Fprintf(&sb, "🪙 **Coins:** %d\n", account.Coins)
			fmt.Fprintf(&sb, "👛 **Pixie Pouches:** %d\n", account.PixiePouches)
			fmt.Fprintf(&sb, "✨ **Stardust:** %d\n\n", account.Stardust)
			fmt.Fprintf(&sb, "🔨 Forge level %d · 🪄 Enchant level %d", account.ForgeLevel, account.EnchantLevel)
			return sb.String(), nil
		}, ResponseConfig{Title: "💰 Your Balances", Color: 0xf1c40f})
	}

	return cmd, handler
}

// InventoryCommand returns the inventory command definition and handler
func InventoryCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "inventory",
		Description: "Show the items you own",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)
			items, err := client.GetInventory(user.ID)
			if err != nil {
				return "", err
			}

			if len(items) == 0 {
				return "Your bag is empty. Visit `/store` to buy something!", nil
			}

			var sb strings.Builder
			for _, item := range items {
				fmt.Fprintf(&sb, "**%s** × %d\n", item.Name, item.Quantity)
			}
			return sb.String(), nil
		}, ResponseConfig{Title: "🎒 Your Inventory", Color: 0x3498db})
	}

	return cmd, handler
}
