package discord

import (
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// messageCreate reports chat activity to the accrual API. Rewards are
// cooldown-gated server side, so every message is reported.
func (b *Bot) messageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}

	go func() {
		reward, err := b.Client.SendChatMessage(m.Author.ID, len(m.Content))
		if err != nil {
			slog.Warn("Failed to report chat message", "error", err, "user_id", m.Author.ID)
			return
		}
		if reward.Awarded {
			slog.Debug("Chat reward granted", "user_id", m.Author.ID, "coins", reward.Coins)
		}
	}()
}

// voiceStateUpdate translates Discord voice transitions into accrual
// start/update/stop calls. Participant counts come from the guild's
// cached voice states.
func (b *Bot) voiceStateUpdate(s *discordgo.Session, v *discordgo.VoiceStateUpdate) {
	if v.UserID == "" {
		return
	}
	if v.Member != nil && v.Member.User != nil && v.Member.User.Bot {
		return
	}

	eligible := voiceEligible(v.VoiceState)
	wasEligible := voiceEligible(v.BeforeUpdate)
	streaming := v.SelfStream || v.SelfVideo

	go func() {
		switch {
		case eligible && !wasEligible:
			participants := channelParticipants(s, v.GuildID, v.ChannelID)
			if err := b.Client.VoiceStart(v.UserID, participants, streaming); err != nil {
				slog.Warn("Failed to start voice tracking", "error", err, "user_id", v.UserID)
			}
		case eligible:
			participants := channelParticipants(s, v.GuildID, v.ChannelID)
			if err := b.Client.VoiceUpdate(v.UserID, participants, streaming); err != nil {
				slog.Warn("Failed to update voice tracking", "error", err, "user_id", v.UserID)
			}
		case wasEligible:
			if err := b.Client.VoiceStop(v.UserID); err != nil {
				slog.Warn("Failed to stop voice tracking", "error", err, "user_id", v.UserID)
			}
		}
	}()
}

// voiceEligible reports whether a voice state earns accrual: present in a
// channel and neither muted nor deafened, self-inflicted or otherwise.
func voiceEligible(vs *discordgo.VoiceState) bool {
	if vs == nil || vs.ChannelID == "" {
		return false
	}
	return !vs.SelfMute && !vs.SelfDeaf && !vs.Mute && !vs.Deaf
}

// channelParticipants counts users currently in a voice channel.
func channelParticipants(s *discordgo.Session, guildID, channelID string) int {
	guild, err := s.State.Guild(guildID)
	if err != nil {
		return 1
	}

	count := 0
	for _, vs := range guild.VoiceStates {
		if vs.ChannelID == channelID {
			count++
		}
	}
	if count == 0 {
		count = 1
	}
	return count
}
