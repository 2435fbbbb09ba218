// pkg/ai/format.go

package ai

import (
	"regexp"
	"strings"
)

var (
	headerRX = regexp.MustCompile(`#{1,3}\s*`)
	linkRX   = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	codeRX   = regexp.MustCompile("`([^`]+)`")
)

// CleanFormatting strips common generative-model markdown artifacts
// (bold, headings, bullet asterisks, links, inline code) so downstream
// display never shows raw markers.
func CleanFormatting(text string) string {
	s := strings.ReplaceAll(text, "**", "")
	s = headerRX.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, "*", "")
	s = linkRX.ReplaceAllString(s, "$1")
	s = codeRX.ReplaceAllString(s, "$1")
	return strings.TrimSpace(s)
}
