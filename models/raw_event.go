package models

import "time"

// RawEventKind discriminates the raw chat event variants the listener
// consumes.
type RawEventKind string

const (
	RawEventMessageCreated RawEventKind = "message_created"
	RawEventMessageUpdated RawEventKind = "message_updated"
)

// RawMessageEvent is the strict, validated shape mapped from a chat SDK
// payload before normalization. Fields that the SDK may omit are left at
// their zero value; the normalizer rejects events missing required fields
// instead of allowing silent missing-field access.
type RawMessageEvent struct {
	Kind RawEventKind

	// GuildID is empty for direct messages
	GuildID   string
	ChannelID string
	MessageID string

	AuthorID          string
	AuthorDisplayName string
	AuthorAvatarURL   string

	Content   string
	Timestamp time.Time

	MentionedUserIDs []string
	MentionedRoleIDs []string
	// MentionsEveryone is the raw @everyone/@here flag before channel
	// suppression is applied
	MentionsEveryone bool

	// ReferencedMessageID/ReferencedChannelID are set when the message is
	// a reply; ReferencedAuthorID is set when the SDK attached the
	// referenced message to the event
	ReferencedMessageID string
	ReferencedChannelID string
	ReferencedAuthorID  string

	Attachments []MessageAttachment
}
