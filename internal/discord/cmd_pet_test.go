package discord

import (
	"net/http"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func TestPetBoxCommand_Success(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := PetBoxCommand()

	ctx.Mux.HandleFunc("/api/v1/pet/box/open", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		WriteJSON(w, map[string]interface{}{
			"pet_id":    1,
			"species":   "Storm Owl",
			"tier":      "rare",
			"level":     1.0,
			"is_active": true,
		})
	})

	var sentEmbed *discordgo.MessageEmbed
	ctx.CaptureEmbed(&sentEmbed)

	interaction := NewCommandInteraction(cmd.Name,
		&discordgo.ApplicationCommandInteractionDataOption{
			Type: discordgo.ApplicationCommandOptionString, Name: "box", Value: "Rare Pet Box",
		},
	)
	handler(ctx.Session, interaction, ctx.APIClient)

	assert.NotNil(t, sentEmbed, "Should send an embed response")
	if sentEmbed != nil {
		assert.Contains(t, sentEmbed.Title, "Pet Box Opened")
		assert.Contains(t, sentEmbed.Description, "Rare Storm Owl")
		assert.Contains(t, sentEmbed.Description, "active companion")
	}
}

func TestPetBoxCommand_NoBox(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := PetBoxCommand()

	ctx.Mux.HandleFunc("/api/v1/pet/box/open", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"You have no loot boxes"}`))
	})

	var sentContent string
	ctx.CaptureContent(&sentContent)

	interaction := NewCommandInteraction(cmd.Name,
		&discordgo.ApplicationCommandInteractionDataOption{
			Type: discordgo.ApplicationCommandOptionString, Name: "box", Value: "Common Pet Box",
		},
	)
	handler(ctx.Session, interaction, ctx.APIClient)

	assert.Equal(t, MsgNoBoxOwned, sentContent)
}

func TestPetFeedCommand_Success(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := PetFeedCommand()

	ctx.Mux.HandleFunc("/api/v1/pet/feed", func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		WriteJSON(w, map[string]interface{}{
			"pet_id":    3,
			"species":   "moss_sprite",
			"gain":      1.9,
			"new_level": 4.2,
		})
	})

	var sentEmbed *discordgo.MessageEmbed
	ctx.CaptureEmbed(&sentEmbed)

	handler(ctx.Session, NewCommandInteraction(cmd.Name), ctx.APIClient)

	assert.NotNil(t, sentEmbed)
	if sentEmbed != nil {
		assert.Contains(t, sentEmbed.Description, "Moss Sprite")
		assert.Contains(t, sentEmbed.Description, "1.9 levels")
		assert.Contains(t, sentEmbed.Description, "4.2")
	}
}

func TestPetFeedCommand_NoActivePet(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := PetFeedCommand()

	ctx.Mux.HandleFunc("/api/v1/pet/feed", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"error":"You have no active pet"}`))
	})

	var sentContent string
	ctx.CaptureContent(&sentContent)

	handler(ctx.Session, NewCommandInteraction(cmd.Name), ctx.APIClient)

	assert.Equal(t, MsgNoActivePet, sentContent)
}

func TestPetsCommand_MarksActivePet(t *testing.T) {
	ctx := SetupTestContext(t)
	cmd, handler := PetsCommand()

	ctx.Mux.HandleFunc("/api/v1/pet/list", func(w http.ResponseWriter, r *http.Request) {
		WriteJSON(w, map[string]interface{}{
			"data": []map[string]interface{}{
				{"pet_id": 1, "species": "pixie", "tier": "rare", "pet_name": "Glimmer", "level": 3.5, "is_active": true},
				{"pet_id": 2, "species": "toad", "tier": "common", "level": 1.0, "is_active": false},
			},
		})
	})

	var sentEmbed *discordgo.MessageEmbed
	ctx.CaptureEmbed(&sentEmbed)

	handler(ctx.Session, NewCommandInteraction(cmd.Name), ctx.APIClient)

	assert.NotNil(t, sentEmbed)
	if sentEmbed != nil {
		assert.Contains(t, sentEmbed.Description, "Glimmer")
		assert.Contains(t, sentEmbed.Description, "⭐")
		assert.Contains(t, sentEmbed.Description, "Toad", "unnamed pets fall back to their species")
	}
}
