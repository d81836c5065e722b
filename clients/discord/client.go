package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"printfeed/clients"
)

// DiscordClient implements the clients.DiscordClient query surface on top
// of a live discordgo session. Lookups hit the session's state cache first
// and fall back to the REST API when the cache misses.
type DiscordClient struct {
	session *discordgo.Session
}

// NewDiscordClient creates a new Discord query client around an existing
// session. The session's lifecycle (open/close) is owned by the caller.
func NewDiscordClient(session *discordgo.Session) clients.DiscordClient {
	return &DiscordClient{session: session}
}

func (c *DiscordClient) GetGuildName(guildID string) (string, error) {
	if guild, err := c.session.State.Guild(guildID); err == nil {
		return guild.Name, nil
	}

	guild, err := c.session.Guild(guildID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch guild %s: %w", guildID, err)
	}
	return guild.Name, nil
}

func (c *DiscordClient) GetChannelName(channelID string) (string, error) {
	if channel, err := c.session.State.Channel(channelID); err == nil {
		return channel.Name, nil
	}

	channel, err := c.session.Channel(channelID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch channel %s: %w", channelID, err)
	}
	return channel.Name, nil
}

func (c *DiscordClient) GetMemberRoleIDs(guildID, userID string) ([]string, error) {
	if member, err := c.session.State.Member(guildID, userID); err == nil {
		return member.Roles, nil
	}

	member, err := c.session.GuildMember(guildID, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch member %s in guild %s: %w", userID, guildID, err)
	}
	return member.Roles, nil
}

// IsBroadcastSuppressed treats an @everyone as suppressed when the author
// lacks the mention-everyone permission in the channel, in which case the
// broadcast renders as plain text and notifies nobody.
func (c *DiscordClient) IsBroadcastSuppressed(channelID, authorID string) (bool, error) {
	perms, err := c.session.State.UserChannelPermissions(authorID, channelID)
	if err != nil {
		perms, err = c.session.UserChannelPermissions(authorID, channelID)
		if err != nil {
			return false, fmt.Errorf("failed to resolve permissions for user %s in channel %s: %w", authorID, channelID, err)
		}
	}
	return perms&discordgo.PermissionMentionEveryone == 0, nil
}

func (c *DiscordClient) GetReplyAuthorID(channelID, messageID string) (string, error) {
	message, err := c.session.ChannelMessage(channelID, messageID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch referenced message %s: %w", messageID, err)
	}
	if message.Author == nil {
		return "", fmt.Errorf("referenced message %s has no author", messageID)
	}
	return message.Author.ID, nil
}

func (c *DiscordClient) GetRoleName(guildID, roleID string) (string, error) {
	if role, err := c.session.State.Role(guildID, roleID); err == nil {
		return role.Name, nil
	}

	roles, err := c.session.GuildRoles(guildID)
	if err != nil {
		return "", fmt.Errorf("failed to fetch roles for guild %s: %w", guildID, err)
	}
	for _, role := range roles {
		if role.ID == roleID {
			return role.Name, nil
		}
	}
	return "", fmt.Errorf("role %s not found in guild %s", roleID, guildID)
}
