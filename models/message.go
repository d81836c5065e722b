package models

import "time"

// MessageAuthor identifies the sender of a chat message.
type MessageAuthor struct {
	ID          string
	DisplayName string
	// AvatarURL points at the author's avatar image, empty if none is set
	AvatarURL string
}

// MessageOrigin is the guild+channel a message was posted in.
// It is absent (nil pointer) for direct messages.
type MessageOrigin struct {
	GuildID     string
	GuildName   string
	ChannelName string
}

// MessageAttachment references an image attachment on a message.
type MessageAttachment struct {
	Filename string
	URL      string
}

// NormalizedMessage is the immutable record extracted from one raw chat
// event. It carries everything the match filter and receipt formatter need,
// so neither of them has to touch the chat session again.
type NormalizedMessage struct {
	Author    MessageAuthor
	Content   string
	CreatedAt time.Time
	MessageID string
	ChannelID string
	// Origin is nil for direct messages
	Origin           *MessageOrigin
	MentionedUserIDs []string
	// MentionedRoleIDs is only populated for guild messages
	MentionedRoleIDs []string
	// IsBroadcastMention is true when the message invokes @everyone/@here
	// and the broadcast is effective (not suppressed for the author in
	// that channel). Always false for direct messages.
	IsBroadcastMention bool
	// RepliedToAuthorID is nil when the message is not a reply
	RepliedToAuthorID *string
	// Attachments holds the message's image attachments
	Attachments []MessageAttachment
}

// IsDirectMessage returns true when the message was sent outside a guild.
func (m NormalizedMessage) IsDirectMessage() bool {
	return m.Origin == nil
}

// SelfIdentity is the configured account on whose behalf notifications are
// filtered. Role membership is intentionally not stored here - it differs
// per guild and must be resolved at match time.
type SelfIdentity struct {
	UserID string
}
