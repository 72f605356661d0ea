package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"
)

// PetsCommand returns the pet listing command definition and handler
func PetsCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "pets",
		Description: "Show all the pets you own",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)
			pets, err := client.ListPets(user.ID)
			if err != nil {
				return "", err
			}

			if len(pets) == 0 {
				return "You don't have any pets yet. Try a Mystery Box!", nil
			}

			var sb strings.Builder
			for _, p := range pets {
				name := p.Name
				if name == "" {
					name = titleCase(p.Species)
				}
				fmt.Fprintf(&sb, "`#%d` **%s** - %s %s, level %.1f", p.ID, name, titleCase(string(p.Tier)), titleCase(p.Species), p.Level)
				if p.IsActive {
					sb.WriteString(" ⭐")
				}
				sb.WriteString("\n")
			}
			return sb.String(), nil
		}, ResponseConfig{Title: "🐾 Your Pets", Color: 0x1abc9c})
	}

	return cmd, handler
}

// PetActivateCommand returns the pet activation command definition and handler
func PetActivateCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "pet-activate",
		Description: "Make one of your pets the active companion",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "pet-id",
				Description: "ID of the pet (see /pets)",
				Required:    true,
				MinValue:    &[]float64{1}[0],
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)
			petID := int(getOptions(i)[0].IntValue())

			pet, err := client.SetActivePet(user.ID, petID)
			if err != nil {
				return "", err
			}

			name := pet.Name
			if name == "" {
				name = titleCase(pet.Species)
			}
			return fmt.Sprintf("**%s** is now your active companion!", name), nil
		}, ResponseConfig{Title: "⭐ Pet Activated", Color: 0x1abc9c})
	}

	return cmd, handler
}

// PetBoxCommand returns the pet box open command definition and handler
func PetBoxCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "pet-box",
		Description: "Open a pet box from your inventory",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "box",
				Description: "Which box to open",
				Required:    true,
				Choices: []*discordgo.ApplicationCommandOptionChoice{
					{Name: "Common Pet Box", Value: "Common Pet Box"},
					{Name: "Rare Pet Box", Value: "Rare Pet Box"},
					{Name: "Legendary Pet Box", Value: "Legendary Pet Box"},
				},
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)
			boxName := getOptions(i)[0].StringValue()

			pet, err := client.OpenPetBox(user.ID, boxName)
			if err != nil {
				return "", err
			}

			msg := fmt.Sprintf("The box creaks open... a **%s %s** appears!",
				titleCase(string(pet.Tier)), titleCase(pet.Species))
			if pet.IsActive {
				msg += "\nIt's your first pet, so it's now your active companion."
			}
			return msg, nil
		}, ResponseConfig{Title: "🎁 Pet Box Opened", Color: 0x1abc9c})
	}

	return cmd, handler
}

// PetFeedCommand returns the pet feed command definition and handler
func PetFeedCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "pet-feed",
		Description: "Feed your active pet one Pet Food",
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)
			result, err := client.FeedPet(user.ID)
			if err != nil {
				return "", err
			}

			return fmt.Sprintf("Your **%s** munched happily and gained **%.1f levels**.\nNow at level **%.1f**.",
				titleCase(result.Species), result.Gain, result.NewLevel), nil
		}, ResponseConfig{Title: "🍖 Nom Nom!", Color: 0x1abc9c})
	}

	return cmd, handler
}

// PetRenameCommand returns the pet rename command definition and handler
func PetRenameCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "pet-rename",
		Description: "Rename one of your pets (uses a Rename Scroll)",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "pet-id",
				Description: "ID of the pet (see /pets)",
				Required:    true,
				MinValue:    &[]float64{1}[0],
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "name",
				Description: "New name for the pet",
				Required:    true,
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)
			options := getOptions(i)
			petID := int(options[0].IntValue())
			name := options[1].StringValue()

			if err := client.RenamePet(user.ID, petID, name); err != nil {
				return "", err
			}
			return fmt.Sprintf("Your pet is now called **%s**!", name), nil
		}, ResponseConfig{Title: "📛 Pet Renamed", Color: 0x1abc9c})
	}

	return cmd, handler
}

// PetReleaseCommand returns the pet release command definition and handler
func PetReleaseCommand() (*discordgo.ApplicationCommand, CommandHandler) {
	cmd := &discordgo.ApplicationCommand{
		Name:        "pet-release",
		Description: "Release one of your pets into the wild",
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "pet-id",
				Description: "ID of the pet (see /pets)",
				Required:    true,
				MinValue:    &[]float64{1}[0],
			},
		},
	}

	handler := func(s *discordgo.Session, i *discordgo.InteractionCreate, client *APIClient) {
		handleEmbedResponse(s, i, func() (string, error) {
			user := getInteractionUser(i)
			petID := int(getOptions(i)[0].IntValue())

			if err := client.RemovePet(user.ID, petID); err != nil {
				return "", err
			}
			return "Your pet scampered off into the wild. Farewell, friend. 👋", nil
		}, ResponseConfig{Title: "🌲 Pet Released", Color: 0x95a5a6})
	}

	return cmd, handler
}
