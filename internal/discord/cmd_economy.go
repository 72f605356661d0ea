package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
)

// checkRecipient rejects transfers the backend would have to unwind anyway:
// unresolvable recipients, bot accounts and self-transfers.
func checkRecipient(sender *discordgo.User, recipient *discordgo.User) error {
	if recipient == nil {
		return fmt.Errorf("could not resolve recipient")
	}
	if recipient.Bot {
		return fmt.Errorf("bots don't have pockets")
	}
	if recipient.ID == sender.ID {
		return fmt.Errorf("you can't send things to yourself")
	}
	return nil
}

// GiveCommand returns the coin give command definition and handler
func GiveCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "give",
		Description: "Give coins to another member",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "recipient",
				Description: "Who receives the coins",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "Number of coins to give",
				Required:    true,
				MinValue:    &[]float64{1}[0],
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)
			options := getOptions(i)
			recipient := options[0].UserValue(s)
			amount := options[1].IntValue()

			if err := checkRecipient(user, recipient); err != nil {
				return "", err
			}

			result, err := client.GiveCoins(user.ID, recipient.ID, amount)
			if err != nil {
				return "", err
			}

			return fmt.Sprintf("Gave **%d coins** to <@%s>.\nYou can give **%d** more today.",
				result.Amount, recipient.ID, result.RemainingToday), nil
		}, ResponseConfig{Title: "🎁 Coins Given", Color: 0x2ecc71})
	}

	return cmd, handler
}

// GiftCommand returns the item gift command definition and handler
func GiftCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "gift",
		Description: "Gift one of your items to another member",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "recipient",
				Description: "Who receives the item",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "item",
				Description: "Name of the item to gift",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)
			options := getOptions(i)
			recipient := options[0].UserValue(s)
			itemName := options[1].StringValue()

			if err := checkRecipient(user, recipient); err != nil {
				return "", err
			}

			if err := client.GiftItem(user.ID, recipient.ID, itemName); err != nil {
				return "", err
			}

			return fmt.Sprintf("Sent **%s** to <@%s>.", itemName, recipient.ID), nil
		}, ResponseConfig{Title: "🎁 Item Gifted", Color: 0x2ecc71})
	}

	return cmd, handler
}
