package validators

import (
	"strings"
	"unicode"
)

const (
	maskRune     = '*'
	visibleChars = 4
)

// MaskSensitiveID hides every letter and digit of raw except the last four.
// Separators keep their position, so "123-45-6789" becomes "***-**-6789".
// Values with four or fewer letters and digits are masked completely.
func MaskSensitiveID(raw string) string {
	raw = strings.TrimSpace(raw)
	total := alphanumericCount(raw)

	keepFrom := total - visibleChars
	if total <= visibleChars {
		keepFrom = total
	}

	var b strings.Builder
	b.Grow(len(raw))

	seen := 0
	for _, r := range raw {
		if !isAlphanumeric(r) {
			b.WriteRune(r)
			continue
		}
		if seen < keepFrom {
			b.WriteRune(maskRune)
		} else {
			b.WriteRune(r)
		}
		seen++
	}

	return b.String()
}

func alphanumericCount(s string) int {
	n := 0
	for _, r := range s {
		if isAlphanumeric(r) {
			n++
		}
	}
	return n
}

func isAlphanumeric(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
