package helper

import (
	"regexp"
	"strings"
	"unicode"
)

// arabicNameRe: Arabic letters, spaces, and the common tatweel/diacritics range.
var arabicNameRe = regexp.MustCompile(`^[\x{0600}-\x{06FF}\x{0750}-\x{077F}\s]+$`)

// IsArabicName reports whether s is a plausible Arabic display name
// (2..100 chars, Arabic script only).
func IsArabicName(s string) bool {
	s = strings.TrimSpace(s)
	if len([]rune(s)) < 2 || len([]rune(s)) > 100 {
		return false
	}
	return arabicNameRe.MatchString(s)
}

// ContainsArabic reports whether s contains at least one Arabic-script rune.
func ContainsArabic(s string) bool {
	for _, r := range s {
		if unicode.Is(unicode.Arabic, r) {
			return true
		}
	}
	return false
}

// NormalizeArabic strips diacritics (tashkeel) and tatweel and unifies
// alef/teh-marbuta/yeh variants so keyword matching is form-insensitive.
func NormalizeArabic(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= 0x064B && r <= 0x065F: // tashkeel
		case r == 0x0640: // tatweel
		case r == 'أ' || r == 'إ' || r == 'آ':
			b.WriteRune('ا')
		case r == 'ة':
			b.WriteRune('ه')
		case r == 'ى':
			b.WriteRune('ي')
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
