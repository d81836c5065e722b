package handlers

import (
	"testing"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printfeed/models"
)

func TestMapToRawMessageEvent(t *testing.T) {
	timestamp := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	m := &discordgo.Message{
		ID:              "msg-1",
		ChannelID:       "chan-1",
		GuildID:         "guild-1",
		Content:         "@carol check this out",
		Timestamp:       timestamp,
		Author:          &discordgo.User{ID: "bob-id", Username: "bob"},
		Mentions:        []*discordgo.User{{ID: "carol-id"}},
		MentionRoles:    []string{"role-oncall"},
		MentionEveryone: true,
		MessageReference: &discordgo.MessageReference{
			MessageID: "ref-1",
			ChannelID: "chan-9",
		},
		ReferencedMessage: &discordgo.Message{
			Author: &discordgo.User{ID: "carol-id"},
		},
		Attachments: []*discordgo.MessageAttachment{
			{Filename: "photo.png", URL: "https://cdn.example.com/photo.png"},
		},
	}

	event := mapToRawMessageEvent(m, models.RawEventMessageCreated)

	assert.Equal(t, models.RawEventMessageCreated, event.Kind)
	assert.Equal(t, "guild-1", event.GuildID)
	assert.Equal(t, "chan-1", event.ChannelID)
	assert.Equal(t, "msg-1", event.MessageID)
	assert.Equal(t, "bob-id", event.AuthorID)
	assert.Equal(t, "bob", event.AuthorDisplayName)
	assert.Equal(t, "@carol check this out", event.Content)
	assert.Equal(t, timestamp, event.Timestamp)
	assert.Equal(t, []string{"carol-id"}, event.MentionedUserIDs)
	assert.Equal(t, []string{"role-oncall"}, event.MentionedRoleIDs)
	assert.True(t, event.MentionsEveryone)
	assert.Equal(t, "ref-1", event.ReferencedMessageID)
	assert.Equal(t, "chan-9", event.ReferencedChannelID)
	assert.Equal(t, "carol-id", event.ReferencedAuthorID)
	require.Len(t, event.Attachments, 1)
	assert.Equal(t, "photo.png", event.Attachments[0].Filename)
}

func TestMapToRawMessageEvent_PartialUpdatePayload(t *testing.T) {
	// Embed-unfurl updates arrive without an author; the mapping must not
	// panic and the empty author ID is rejected downstream
	m := &discordgo.Message{
		ID:        "msg-1",
		ChannelID: "chan-1",
	}

	event := mapToRawMessageEvent(m, models.RawEventMessageUpdated)

	assert.Equal(t, models.RawEventMessageUpdated, event.Kind)
	assert.Empty(t, event.AuthorID)
	assert.Empty(t, event.AuthorDisplayName)
}

func TestDisplayName(t *testing.T) {
	testCases := []struct {
		name     string
		message  *discordgo.Message
		expected string
	}{
		{
			name: "guild nickname wins",
			message: &discordgo.Message{
				Author: &discordgo.User{Username: "bob", GlobalName: "Bobby"},
				Member: &discordgo.Member{Nick: "bobcat"},
			},
			expected: "bobcat",
		},
		{
			name: "global name beats username",
			message: &discordgo.Message{
				Author: &discordgo.User{Username: "bob", GlobalName: "Bobby"},
			},
			expected: "Bobby",
		},
		{
			name: "username as fallback",
			message: &discordgo.Message{
				Author: &discordgo.User{Username: "bob"},
			},
			expected: "bob",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, displayName(tc.message))
		})
	}
}
