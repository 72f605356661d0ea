package discord

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/bwmarrin/discordgo"
)

// RoleGranter assigns guild roles to accounts after role-granting purchases.
// Account IDs are Discord user IDs, so the grant is a single REST call.
type RoleGranter struct {
	session *discordgo.Session
	guildID string
}

// NewRoleGranter creates a role granter backed by a Discord session.
// The session is REST-only; no gateway connection is opened.
func NewRoleGranter(token, guildID string) (*RoleGranter, error) {
	if token == "" {
		return nil, errors.New("discord token is required")
	}
	if guildID == "" {
		return nil, errors.New("discord guild ID is required")
	}

	s, err := discordgo.New("Bot " + token)
	if err != nil {
		return nil, fmt.Errorf("error creating Discord session: %w", err)
	}

	return &RoleGranter{session: s, guildID: guildID}, nil
}

// GrantRole assigns the given role to the account's Discord user.
func (g *RoleGranter) GrantRole(ctx context.Context, accountID, roleLinkID string) error {
	if err := g.session.GuildMemberRoleAdd(g.guildID, accountID, roleLinkID, discordgo.WithContext(ctx)); err != nil {
		return fmt.Errorf("failed to grant role %s to %s: %w", roleLinkID, accountID, err)
	}

	slog.Info("Role granted", "account_id", accountID, "role_id", roleLinkID)
	return nil
}
