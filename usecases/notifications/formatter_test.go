package notifications

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"printfeed/models"
)

const testWidth = 48

func textLines(job models.ReceiptJob) []string {
	var texts []string
	for _, line := range job.Lines {
		if line.Kind == models.ReceiptLineText {
			texts = append(texts, line.Text)
		}
	}
	return texts
}

func TestFormat_IsIdempotent(t *testing.T) {
	msg := guildMessage()
	msg.Author.AvatarURL = "https://cdn.example.com/avatar.png"
	msg.Content = "some **bold** message"
	match := models.MatchResult{Reason: models.MatchReasonDirectMention}

	first := Format(msg, match, "", testWidth)
	second := Format(msg, match, "", testWidth)

	assert.Equal(t, first, second, "formatting the same inputs twice must yield identical jobs")
}

func TestFormat_GuildMessageLayout(t *testing.T) {
	msg := guildMessage()
	msg.Author.AvatarURL = "https://cdn.example.com/avatar.png"
	match := models.MatchResult{Reason: models.MatchReasonDirectMention}

	job := Format(msg, match, "", testWidth)

	require.NotEmpty(t, job.Lines)
	assert.True(t, job.Cut, "every receipt ends with a cut instruction")

	header := job.Lines[0]
	assert.Equal(t, models.ReceiptLineText, header.Kind)
	assert.Equal(t, headerLabel, header.Text)
	assert.True(t, header.Bold)

	avatar := job.Lines[1]
	assert.Equal(t, models.ReceiptLineImage, avatar.Kind)
	assert.Equal(t, models.ReceiptImageAvatar, avatar.ImageKind)
	assert.Equal(t, msg.Author.AvatarURL, avatar.ImageURL)

	texts := textLines(job)
	assert.Contains(t, texts, "Alpha / general")
	assert.Contains(t, texts, "bob @")
	assert.Contains(t, texts, "hello there")
	assert.Equal(t, "Mentioned you", texts[len(texts)-1])
}

func TestFormat_NoAvatarOmitsImageLine(t *testing.T) {
	msg := guildMessage()
	match := models.MatchResult{Reason: models.MatchReasonDirectMention}

	job := Format(msg, match, "", testWidth)

	for _, line := range job.Lines {
		assert.NotEqual(t, models.ReceiptLineImage, line.Kind)
	}
}

func TestFormat_DirectMessageOriginAndFooter(t *testing.T) {
	msg := directMessage()
	msg.Content = ""
	match := models.MatchResult{Reason: models.MatchReasonDirectMessage}

	job := Format(msg, match, "", testWidth)

	texts := textLines(job)
	assert.Contains(t, texts, "Direct Message")
	assert.Contains(t, texts, bodyPlaceholder, "empty content renders a placeholder line")
	assert.Equal(t, "Direct message", texts[len(texts)-1])
}

func TestFormat_ReplyIndicatorLine(t *testing.T) {
	msg := guildMessage()
	match := models.MatchResult{Reason: models.MatchReasonReplyToSelf}

	job := Format(msg, match, "", testWidth)

	texts := textLines(job)
	assert.Contains(t, texts, "  Replying to you")
	assert.Equal(t, "Replied to you", texts[len(texts)-1])
}

func TestFormat_AttachmentLines(t *testing.T) {
	msg := guildMessage()
	msg.Attachments = []models.MessageAttachment{
		{Filename: "photo.png", URL: "https://cdn.example.com/photo.png"},
	}
	match := models.MatchResult{Reason: models.MatchReasonDirectMention}

	job := Format(msg, match, "", testWidth)

	texts := textLines(job)
	assert.Contains(t, texts, "[Image: photo.png]")

	var imageURLs []string
	for _, line := range job.Lines {
		if line.Kind == models.ReceiptLineImage {
			imageURLs = append(imageURLs, line.ImageURL)
		}
	}
	assert.Contains(t, imageURLs, "https://cdn.example.com/photo.png")
}

func TestFooterText(t *testing.T) {
	testCases := []struct {
		name     string
		match    models.MatchResult
		roleName string
		expected string
	}{
		{
			name:     "direct mention",
			match:    models.MatchResult{Reason: models.MatchReasonDirectMention},
			expected: "Mentioned you",
		},
		{
			name:     "reply to self",
			match:    models.MatchResult{Reason: models.MatchReasonReplyToSelf},
			expected: "Replied to you",
		},
		{
			name:     "role mention with resolved name",
			match:    models.MatchResult{Reason: models.MatchReasonRoleMention, RoleID: testRoleID},
			roleName: "oncall",
			expected: "Role mention: oncall",
		},
		{
			name:     "role mention with unresolved name",
			match:    models.MatchResult{Reason: models.MatchReasonRoleMention, RoleID: testRoleID},
			expected: "Role mention: a role you have",
		},
		{
			name:     "broadcast mention",
			match:    models.MatchResult{Reason: models.MatchReasonBroadcastMention},
			expected: "@everyone",
		},
		{
			name:     "direct message",
			match:    models.MatchResult{Reason: models.MatchReasonDirectMessage},
			expected: "Direct message",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, footerText(tc.match, tc.roleName))
		})
	}
}

func TestWrapText_ExactWidthIsOneLine(t *testing.T) {
	content := "aaaa bbbbb" // exactly 10 characters
	require.Len(t, content, 10)

	lines := wrapText(content, 10)

	assert.Equal(t, []string{"aaaa bbbbb"}, lines)
}

func TestWrapText_OneCharOverWidthIsTwoLines(t *testing.T) {
	content := "aaaa bbbbbb" // 11 characters
	require.Len(t, content, 11)

	lines := wrapText(content, 10)

	assert.Equal(t, []string{"aaaa", "bbbbbb"}, lines)
}

func TestWrapText_LongWordIsHardSplit(t *testing.T) {
	lines := wrapText("see https://example.com/a/very/long/path ok", 10)

	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 10)
	}
	assert.Equal(t, "see", lines[0])
	assert.Greater(t, len(lines), 3, "the long URL must be split across multiple lines")
}

func TestWrapText_CollapsesRunsOfWhitespace(t *testing.T) {
	lines := wrapText("one   two\nthree", 48)

	assert.Equal(t, []string{"one two three"}, lines)
}

func TestFormatBody_WhitespaceOnlyContentGetsPlaceholder(t *testing.T) {
	assert.Equal(t, []string{bodyPlaceholder}, formatBody("   ", testWidth))
	assert.Equal(t, []string{bodyPlaceholder}, formatBody("", testWidth))
}

func TestFormatBody_StripsMarkdown(t *testing.T) {
	lines := formatBody("this is **important**", testWidth)

	assert.Equal(t, []string{"this is important"}, lines)
	assert.False(t, strings.Contains(strings.Join(lines, " "), "*"))
}
