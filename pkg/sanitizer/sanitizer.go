// Package sanitizer normalizes user-supplied form input before local
// validation, so equivalent spellings validate and compare consistently.
package sanitizer

import (
	"strings"
	"unicode"
)

func TrimAndNormalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}

	var result strings.Builder
	var lastWasSpace bool

	for _, r := range s {
		if unicode.IsSpace(r) {
			if !lastWasSpace {
				result.WriteRune(' ')
				lastWasSpace = true
			}
		} else {
			result.WriteRune(r)
			lastWasSpace = false
		}
	}

	return result.String()
}

func NormalizeName(name string) string {
	return TrimAndNormalize(name)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// NormalizePhone strips spacing, dots, dashes and parentheses, keeping a
// single leading plus. It does not validate; the e164 validator tag does.
func NormalizePhone(phone string) string {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ""
	}

	var result strings.Builder
	for i, r := range phone {
		switch {
		case r == '+' && i == 0:
			result.WriteRune(r)
		case unicode.IsDigit(r):
			result.WriteRune(r)
		}
	}
	return result.String()
}
