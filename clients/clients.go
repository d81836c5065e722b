package clients

import (
	"context"

	"printfeed/models"
)

// DiscordClient defines the read-only query surface the notification
// pipeline needs from the chat session. All methods are lookups - nothing
// here mutates Discord state.
type DiscordClient interface {
	// Guild/channel metadata for the receipt origin line
	GetGuildName(guildID string) (string, error)
	GetChannelName(channelID string) (string, error)

	// GetMemberRoleIDs returns the role IDs the user currently holds in
	// the given guild. Resolved at match time, never cached - role
	// membership can change between events.
	GetMemberRoleIDs(guildID, userID string) ([]string, error)

	// IsBroadcastSuppressed reports whether an @everyone/@here from the
	// given author cannot notify anyone in the given channel.
	IsBroadcastSuppressed(channelID, authorID string) (bool, error)

	// GetReplyAuthorID resolves the author of a referenced message when
	// the reply target was not attached to the event.
	GetReplyAuthorID(channelID, messageID string) (string, error)

	// GetRoleName resolves a role's display name for the receipt footer.
	GetRoleName(guildID, roleID string) (string, error)
}

// PrinterClient defines the outbound printer surface: a single
// connect-and-send operation per receipt job. Best effort - no retries, no
// queueing.
type PrinterClient interface {
	PrintReceipt(ctx context.Context, job models.ReceiptJob) error
}
