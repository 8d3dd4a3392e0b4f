package utils

import (
	"regexp"
	"strings"
)

// MaxPhoneDigits is the length of an Egyptian mobile number (01XXXXXXXXX)
const MaxPhoneDigits = 11

var egyptianMobile = regexp.MustCompile(`^01[0-9]{9}$`)

// NormalizePhone applies the landing page input mask: digits only, a leading 0
// unless the number already starts with 0 or the 2 country prefix, at most 11 digits.
func NormalizePhone(input string) string {
	var b strings.Builder
	for _, r := range input {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	value := b.String()

	if value != "" && !strings.HasPrefix(value, "0") && !strings.HasPrefix(value, "2") {
		value = "0" + value
	}

	if len(value) > MaxPhoneDigits {
		value = value[:MaxPhoneDigits]
	}

	return value
}

// ValidEgyptianPhone reports whether value is a full mobile number starting with 01
func ValidEgyptianPhone(value string) bool {
	return egyptianMobile.MatchString(value)
}
