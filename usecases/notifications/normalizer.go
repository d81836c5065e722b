package notifications

import (
	"context"
	"fmt"
	"log"

	"printfeed/core"
	"printfeed/models"
	"printfeed/utils"
)

// Normalize extracts the immutable NormalizedMessage record from a raw
// event. Total over any structurally valid event; an event missing required
// fields is rejected with core.ErrMalformedEvent. Lookups against the chat
// session are read-only; failures on non-critical fields degrade that field
// instead of failing the event.
func (u *NotificationsUseCase) Normalize(ctx context.Context, event models.RawMessageEvent) (models.NormalizedMessage, error) {
	if event.MessageID == "" || event.ChannelID == "" || event.AuthorID == "" {
		return models.NormalizedMessage{}, fmt.Errorf(
			"%w: event missing message, channel or author ID", core.ErrMalformedEvent)
	}

	msg := models.NormalizedMessage{
		Author: models.MessageAuthor{
			ID:          event.AuthorID,
			DisplayName: event.AuthorDisplayName,
			AvatarURL:   event.AuthorAvatarURL,
		},
		Content:          event.Content,
		CreatedAt:        event.Timestamp,
		MessageID:        event.MessageID,
		ChannelID:        event.ChannelID,
		MentionedUserIDs: event.MentionedUserIDs,
		Attachments:      imageAttachments(event.Attachments),
	}

	if event.GuildID != "" {
		guildName, err := u.discordClient.GetGuildName(event.GuildID)
		if err != nil {
			log.Printf("⚠️ Guild name lookup failed for %s - falling back to ID: %v", event.GuildID, err)
			guildName = event.GuildID
		}
		channelName, err := u.discordClient.GetChannelName(event.ChannelID)
		if err != nil {
			log.Printf("⚠️ Channel name lookup failed for %s - falling back to ID: %v", event.ChannelID, err)
			channelName = event.ChannelID
		}
		msg.Origin = &models.MessageOrigin{
			GuildID:     event.GuildID,
			GuildName:   guildName,
			ChannelName: channelName,
		}
		msg.MentionedRoleIDs = event.MentionedRoleIDs

		if event.MentionsEveryone {
			suppressed, err := u.discordClient.IsBroadcastSuppressed(event.ChannelID, event.AuthorID)
			if err != nil {
				// No suppression info available - proceed with the raw flag
				log.Printf("⚠️ Broadcast suppression lookup failed for channel %s: %v", event.ChannelID, err)
				msg.IsBroadcastMention = true
			} else {
				msg.IsBroadcastMention = !suppressed
			}
		}
	}

	switch {
	case event.ReferencedAuthorID != "":
		repliedTo := event.ReferencedAuthorID
		msg.RepliedToAuthorID = &repliedTo
	case event.ReferencedMessageID != "":
		refChannelID := event.ReferencedChannelID
		if refChannelID == "" {
			refChannelID = event.ChannelID
		}
		authorID, err := u.discordClient.GetReplyAuthorID(refChannelID, event.ReferencedMessageID)
		if err != nil {
			// The reply author only feeds the reply-to-self rule; an
			// unresolvable reference is treated as not-a-reply
			log.Printf("⚠️ Reply author lookup failed for message %s: %v", event.ReferencedMessageID, err)
		} else {
			msg.RepliedToAuthorID = &authorID
		}
	}

	utils.AssertInvariant(
		msg.Origin != nil || (len(msg.MentionedRoleIDs) == 0 && !msg.IsBroadcastMention),
		"direct messages cannot carry role or broadcast mentions")

	return msg, nil
}
