package notifications

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"printfeed/models"
	"printfeed/utils"
)

const (
	headerLabel     = "* DISCORD NOTIFICATION *"
	bodyPlaceholder = "(no text content)"
	// timestampLayout is fixed-width so receipts line up in the tray
	timestampLayout = "2006-01-02 15:04:05"
)

// Format turns a matched message into a receipt job. Pure and idempotent:
// the same (msg, match, roleName, width) inputs always yield an identical
// job - the timestamp comes from the message, never from the clock.
// roleName labels the footer for role mention matches and may be empty when
// the caller could not resolve it.
func Format(msg models.NormalizedMessage, match models.MatchResult, roleName string, width int) models.ReceiptJob {
	utils.AssertInvariant(width > 0, "receipt width must be positive")

	lines := []models.ReceiptLine{
		models.BoldLine(headerLabel),
	}

	if msg.Author.AvatarURL != "" {
		lines = append(lines, models.ImageLine(msg.Author.AvatarURL, models.ReceiptImageAvatar))
	}

	lines = append(lines, models.BoldLine(msg.Author.DisplayName+mentionBadge(match.Reason)))
	if match.Reason == models.MatchReasonReplyToSelf {
		lines = append(lines, models.TextLine("  Replying to you"))
	}
	lines = append(lines,
		models.TextLine(msg.CreatedAt.Local().Format(timestampLayout)),
		models.TextLine(originLabel(msg)),
		models.TextLine(""),
	)

	for _, bodyLine := range formatBody(msg.Content, width) {
		lines = append(lines, models.TextLine(bodyLine))
	}

	for _, att := range msg.Attachments {
		lines = append(lines,
			models.TextLine(fmt.Sprintf("[Image: %s]", att.Filename)),
			models.ImageLine(att.URL, models.ReceiptImageAttachment),
		)
	}

	lines = append(lines,
		models.TextLine(""),
		models.BoldLine(footerText(match, roleName)),
	)

	return models.ReceiptJob{Lines: lines, Cut: true}
}

// originLabel renders "{guild} / {channel}" or the direct message label.
func originLabel(msg models.NormalizedMessage) string {
	if msg.Origin == nil {
		return "Direct Message"
	}
	return msg.Origin.GuildName + " / " + msg.Origin.ChannelName
}

// mentionBadge is the short marker next to the sender name.
func mentionBadge(reason models.MatchReason) string {
	switch reason {
	case models.MatchReasonDirectMention:
		return " @"
	case models.MatchReasonRoleMention:
		return " @role"
	case models.MatchReasonBroadcastMention:
		return " @everyone"
	default:
		return ""
	}
}

// footerText is the human-readable match reason printed at the bottom of
// the receipt.
func footerText(match models.MatchResult, roleName string) string {
	switch match.Reason {
	case models.MatchReasonDirectMention:
		return "Mentioned you"
	case models.MatchReasonReplyToSelf:
		return "Replied to you"
	case models.MatchReasonRoleMention:
		if roleName == "" {
			roleName = "a role you have"
		}
		return "Role mention: " + roleName
	case models.MatchReasonBroadcastMention:
		return "@everyone"
	case models.MatchReasonDirectMessage:
		return "Direct message"
	default:
		return ""
	}
}

// formatBody converts the message content to plain text and wraps it to the
// printer width. Attachment-only messages get a placeholder line instead of
// a blank body.
func formatBody(content string, width int) []string {
	plain := strings.TrimSpace(utils.ConvertMarkdownToPlain(content))
	if plain == "" {
		return []string{bodyPlaceholder}
	}
	return wrapText(plain, width)
}

// wrapText greedily word-wraps content to the given display width. Words
// wider than a full line are hard-split so pathological tokens (long URLs)
// cannot overflow the paper.
func wrapText(content string, width int) []string {
	var lines []string
	var line string

	for _, word := range strings.Fields(content) {
		for runewidth.StringWidth(word) > width {
			if line != "" {
				lines = append(lines, line)
				line = ""
			}
			head := runewidth.Truncate(word, width, "")
			lines = append(lines, head)
			word = word[len(head):]
		}
		if word == "" {
			continue
		}

		switch {
		case line == "":
			line = word
		case runewidth.StringWidth(line)+1+runewidth.StringWidth(word) <= width:
			line += " " + word
		default:
			lines = append(lines, line)
			line = word
		}
	}
	if line != "" {
		lines = append(lines, line)
	}
	return lines
}
