// Package phone validates and normalizes team delegate contact numbers.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const defaultRegion = "US"

// IsPhoneNumber reports whether the input parses as a plausible phone number.
// Email addresses and free-text strings are rejected.
func IsPhoneNumber(input string) bool {
	input = strings.TrimSpace(input)
	if input == "" || strings.Contains(input, "@") {
		return false
	}
	parsed, err := phonenumbers.Parse(input, defaultRegion)
	if err != nil {
		return false
	}
	return phonenumbers.IsPossibleNumber(parsed)
}

// Normalize returns the number in E.164 format, or the empty string when the
// input is not a phone number.
func Normalize(input string) string {
	input = strings.TrimSpace(input)
	if !IsPhoneNumber(input) {
		return ""
	}
	parsed, err := phonenumbers.Parse(input, defaultRegion)
	if err != nil {
		return ""
	}
	return phonenumbers.Format(parsed, phonenumbers.E164)
}
