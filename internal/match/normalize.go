package match

import "strings"

// Normalize reduces an identifier or display name to its comparison key:
// lowercase, with everything except ASCII letters, digits, and periods
// removed. It is idempotent and never fails; an all-punctuation input
// normalizes to the empty string.
func Normalize(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z',
			r >= '0' && r <= '9',
			r == '.':
			b.WriteRune(r)
		}
	}
	return b.String()
}
