// Package textutil holds the small string and timing helpers the site
// templates and handlers share.
package textutil

import (
	"encoding/json"
	"math"
	"math/rand/v2"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"
)

// Ellipsis is appended to truncated text.
const Ellipsis = "..."

// DefaultWordsPerMinute is the reading speed used by ReadingTime.
const DefaultWordsPerMinute = 200

const idAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"

var (
	slugStrip    = regexp.MustCompile(`[^\w\s-]`)
	slugCollapse = regexp.MustCompile(`[\s_-]+`)
	slugEdges    = regexp.MustCompile(`^-+|-+$`)
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	wordStart    = regexp.MustCompile(`\b\w`)
)

// Slugify converts text into a URL-friendly slug.
//
//	Slugify("Neural Style Transfer!") // "neural-style-transfer"
func Slugify(text string) string {
	s := strings.TrimSpace(strings.ToLower(text))
	s = slugStrip.ReplaceAllString(s, "")
	s = slugCollapse.ReplaceAllString(s, "-")
	return slugEdges.ReplaceAllString(s, "")
}

// Truncate shortens text to at most maxLength characters plus Ellipsis.
// When the cut window has a space at or after 80% of maxLength the text is
// cut there instead, so the last word is not split.
func Truncate(text string, maxLength int) string {
	if maxLength < 0 {
		maxLength = 0
	}
	if utf8.RuneCountInString(text) <= maxLength {
		return text
	}

	cut := []rune(text)[:maxLength]
	lastSpace := -1
	for i := len(cut) - 1; i >= 0; i-- {
		if cut[i] == ' ' {
			lastSpace = i
			break
		}
	}

	if lastSpace > 0 && float64(lastSpace) >= float64(maxLength)*0.8 {
		return string(cut[:lastSpace]) + Ellipsis
	}
	return string(cut) + Ellipsis
}

// ReadingTime estimates whole minutes needed to read text. A non-positive
// rate falls back to DefaultWordsPerMinute. The result is never below 1.
func ReadingTime(text string, wordsPerMinute int) int {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	words := len(strings.Fields(text))
	minutes := int(math.Ceil(float64(words) / float64(wordsPerMinute)))
	return max(1, minutes)
}

// IsValidEmail reports whether email looks like local@domain.tld.
// It is intentionally permissive.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// CapitalizeWords upper-cases the first letter of every word.
func CapitalizeWords(text string) string {
	return wordStart.ReplaceAllStringFunc(text, strings.ToUpper)
}

// SafeParseJSON decodes data into a fresh T and returns fallback when the
// input is not valid JSON for T.
func SafeParseJSON[T any](data string, fallback T) T {
	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		return fallback
	}
	return v
}

const (
	isoDate     = "2006-01-02"
	displayDate = "January 2, 2006"
)

// FormatDate renders t as "January 15, 2024".
func FormatDate(t time.Time) string {
	return t.Format(displayDate)
}

// FormatDateString formats an ISO date (or RFC 3339 timestamp). Input that
// does not parse is returned unchanged.
func FormatDateString(s string) string {
	if t, err := ParseDate(s); err == nil {
		return FormatDate(t)
	}
	return s
}

// ParseDate parses YYYY-MM-DD or an RFC 3339 timestamp.
func ParseDate(s string) (time.Time, error) {
	if t, err := time.Parse(isoDate, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// GenerateID returns a random lowercase alphanumeric id. n <= 0 means 8.
func GenerateID(n int) string {
	if n <= 0 {
		n = 8
	}
	var b strings.Builder
	b.Grow(n)
	for range n {
		b.WriteByte(idAlphabet[rand.IntN(len(idAlphabet))])
	}
	return b.String()
}
