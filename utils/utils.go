package utils

import (
	"regexp"
)

func AssertInvariant(condition bool, message string) {
	if !condition {
		panic("invariant violated - " + message)
	}
}

// ConvertMarkdownToPlain strips Discord-flavored markdown from a message so
// it renders cleanly on a text-only receipt.
func ConvertMarkdownToPlain(message string) string {
	result := message

	// Step 1: Convert markdown links [text](url) to "text (url)"
	// This must be done first to avoid conflicts with other formatting
	linkRegex := regexp.MustCompile(`\[([^\]]+)\]\(([^)]+)\)`)
	result = linkRegex.ReplaceAllString(result, "$1 ($2)")

	// Step 2: Drop heading markers but keep the heading content
	headingRegex := regexp.MustCompile(`(?m)^#+\s*(.+)$`)
	result = headingRegex.ReplaceAllString(result, "$1")

	// Step 3: Strip emphasis markers: ***text***, **text**, *text*,
	// __text__, _text_, ~~text~~
	emphasisRegex := regexp.MustCompile(`(\*{1,3}|_{1,2}|~~)(.+?)(\*{1,3}|_{1,2}|~~)`)
	result = emphasisRegex.ReplaceAllString(result, "$2")

	// Step 4: Unwrap inline code and code fences
	fenceRegex := regexp.MustCompile("(?s)```(?:[a-zA-Z0-9]*\n)?(.*?)```")
	result = fenceRegex.ReplaceAllString(result, "$1")
	inlineCodeRegex := regexp.MustCompile("`([^`]+)`")
	result = inlineCodeRegex.ReplaceAllString(result, "$1")

	return result
}
