package usecase

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

const titleFallback = "Voice Scheduled Meeting"

var durationRe = regexp.MustCompile(`(?i)(\d{1,3})\s?(minutes|min|hours|hrs|hour)`)

// titleKeywords mark where the meeting subject starts in a transcript.
var titleKeywords = []string{"with", "about", "regarding"}

// extractDuration pulls an explicit duration from the transcript.
// Returns 0 when the transcript does not mention one.
func extractDuration(text string) int {
	match := durationRe.FindStringSubmatch(text)
	if match == nil {
		return 0
	}

	value, err := strconv.Atoi(match[1])
	if err != nil {
		return 0
	}

	unit := strings.ToLower(match[2])
	if strings.HasPrefix(unit, "hour") || unit == "hrs" || unit == "hr" {
		return value * 60
	}
	return value
}

// extractTitle derives a meeting title from the transcript. Text after the
// first subject keyword wins; otherwise the leading words are used.
func extractTitle(text string) string {
	lowered := strings.ToLower(text)

	for _, keyword := range titleKeywords {
		if idx := strings.Index(lowered, keyword); idx >= 0 {
			portion := strings.TrimSpace(text[idx+len(keyword):])
			if portion != "" {
				return titleCase(portion)
			}
		}
	}

	head := strings.TrimSpace(text)
	if len(head) > 60 {
		head = strings.TrimSpace(head[:60])
	}
	if head == "" {
		return titleFallback
	}
	return titleCase(head)
}

// titleCase capitalizes the first letter of every word.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, word := range words {
		runes := []rune(word)
		runes[0] = unicode.ToUpper(runes[0])
		words[i] = string(runes)
	}
	return strings.Join(words, " ")
}
