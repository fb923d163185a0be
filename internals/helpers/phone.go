package helper

import (
	"regexp"
	"strings"
)

var nonDigitRe = regexp.MustCompile(`\D`)

// NormalizePhone normalizes a phone number to E.164 digits without the plus
// sign. Numbers without a country code are assumed Saudi (+966); a leading
// local zero (05xxxxxxxx) is dropped.
func NormalizePhone(phone string) string {
	digits := nonDigitRe.ReplaceAllString(phone, "")
	if digits == "" {
		return ""
	}

	if strings.HasPrefix(digits, "00") {
		digits = digits[2:]
	}
	if strings.HasPrefix(digits, "966") {
		return digits
	}

	digits = strings.TrimLeft(digits, "0")
	return "966" + digits
}

// ValidatePhone accepts Saudi mobile numbers: 9665XXXXXXXX after
// normalization (12 digits total).
func ValidatePhone(phone string) bool {
	digits := NormalizePhone(phone)
	if len(digits) != 12 {
		return false
	}
	return strings.HasPrefix(digits, "9665")
}

// DisplayPhone renders a normalized number in +966 5X XXX XXXX form.
func DisplayPhone(phone string) string {
	digits := NormalizePhone(phone)
	if len(digits) != 12 {
		return phone
	}
	return "+" + digits[:3] + " " + digits[3:5] + " " + digits[5:8] + " " + digits[8:]
}
