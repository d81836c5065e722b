package notifications

import (
	"fmt"
	"strings"

	"printfeed/models"
)

// imageExtensions are the attachment filename suffixes rendered as images
// on the receipt.
var imageExtensions = []string{".jpg", ".jpeg", ".png", ".gif", ".webp", ".bmp"}

// imageAttachments filters a message's attachments down to the ones the
// printer can render.
func imageAttachments(attachments []models.MessageAttachment) []models.MessageAttachment {
	var images []models.MessageAttachment
	for _, att := range attachments {
		name := strings.ToLower(att.Filename)
		for _, ext := range imageExtensions {
			if strings.HasSuffix(name, ext) {
				images = append(images, att)
				break
			}
		}
	}
	return images
}

// EchoLine renders the one-line stdout echo of a matched message, e.g.
// "[Alpha#general] [MENTION] bob: @carol check this out".
func EchoLine(msg models.NormalizedMessage, match models.MatchResult) string {
	tag := echoTag(match.Reason)
	if msg.Origin == nil {
		return fmt.Sprintf("[DM]%s %s: %s", tag, msg.Author.DisplayName, msg.Content)
	}
	return fmt.Sprintf("[%s#%s]%s %s: %s",
		msg.Origin.GuildName, msg.Origin.ChannelName, tag, msg.Author.DisplayName, msg.Content)
}

func echoTag(reason models.MatchReason) string {
	switch reason {
	case models.MatchReasonDirectMention:
		return " [MENTION]"
	case models.MatchReasonReplyToSelf:
		return " [REPLY]"
	case models.MatchReasonRoleMention:
		return " [ROLE]"
	case models.MatchReasonBroadcastMention:
		return " [EVERYONE]"
	default:
		return ""
	}
}
