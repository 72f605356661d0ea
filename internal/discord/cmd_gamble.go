package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// GambleCommand returns the gamble command definition and handler
func GambleCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "gamble",
		Description: "Wager coins on a spin of the wheel",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "stake",
				Description: "Number of coins to wager",
				Required:    true,
				MinValue:    &[]float64{1}[0],
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		stake := getOptions(i)[0].IntValue()

		result, err := client.Gamble(user.ID, stake)
		if err != nil {
			respondFriendlyError(s, i, err.Error())
			return
		}

		var title string
		var color int
		switch result.Tier {
		case "jackpot":
			title = "🎰 JACKPOT!"
			color = 0xf1c40f
		case "big_win":
			title = "🎉 Big Win!"
			color = 0x2ecc71
		case "win", "small_win":
			title = "🎲 You Won!"
			color = 0x27ae60
		default:
			title = "💀 You Lost"
			color = 0xe74c3c
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Staked **%d coins** and hit **%s** (×%d).\n", result.Stake, titleCase(result.Tier), result.Multiplier)
		if result.Winnings > 0 {
			fmt.Fprintf(&sb, "Won **%d coins**!\n", result.Winnings)
		}
		fmt.Fprintf(&sb, "New balance: **%d coins**", result.NewBalance)

		sendEmbed(s, i, createEmbed(title, sb.String(), color, ""))
	}

	return cmd, handler
}

// LootBoxCommand returns the loot box open command definition and handler
func LootBoxCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "lootbox",
		Description: "Open a Mystery Box from your inventory",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		if !deferResponse(s, i) {
			return
		}

		user := getInteractionUser(i)
		result, err := client.OpenBox(user.ID)
		if err != nil {
			respondFriendlyError(s, i, err.Error())
			return
		}

		var sb strings.Builder
		fmt.Fprintf(&sb, "Rarity: **%s**\n\n", titleCase(result.Rarity))
		if result.CoinsGained > 0 {
			fmt.Fprintf(&sb, "🪙 **%d coins**\n", result.CoinsGained)
		}
		if result.PouchesGained > 0 {
			fmt.Fprintf(&sb, "👛 **%d pixie pouches**\n", result.PouchesGained)
		}
		if result.StardustGained > 0 {
			fmt.Fprintf(&sb, "✨ **%d stardust**\n", result.StardustGained)
		}
		if result.ItemGranted != "" {
			fmt.Fprintf(&sb, "🎁 **%s**\n", result.ItemGranted)
		}
		if result.PetGranted != nil {
			fmt.Fprintf(&sb, "🐾 A **%s %s** joined you!\n", titleCase(string(result.PetGranted.Tier)), titleCase(result.PetGranted.Species))
		}

		sendEmbed(s, i, createEmbed("📦 Mystery Box Opened!", sb.String(), 0x9b59b6, ""))
	}

	return cmd, handler
}
