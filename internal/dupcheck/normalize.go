// Package dupcheck blocks redundant submissions the backend does not
// deduplicate itself: a draft is compared field-by-field on a fixed
// composite key against the subject's freshly fetched sibling records.
package dupcheck

import (
	"fmt"
	"regexp"
	"strings"
	"time"
)

// Indian phone: +91XXXXXXXXXX, 91XXXXXXXXXX, 0XXXXXXXXXX, XXXXXXXXXX
// (10 digits, first digit 6-9). Same rule as the backend gateway.
var indianPhonePattern = regexp.MustCompile(`^(\+91|91)?[6-9]\d{9}$`)

var phoneSeparators = strings.NewReplacer(" ", "", "-", "", ".", "", "(", "", ")", "")

func normalizePhoneShape(phone string) string {
	stripped := strings.TrimSpace(phoneSeparators.Replace(phone))
	if strings.HasPrefix(stripped, "0") && len(stripped) == 11 {
		return stripped[1:]
	}
	return stripped
}

// ValidatePhone checks an Indian mobile number and returns its canonical
// +91XXXXXXXXXX form.
func ValidatePhone(phone string) (string, error) {
	if strings.TrimSpace(phone) == "" {
		return "", fmt.Errorf("phone number is required")
	}
	normalized := normalizePhoneShape(phone)
	if len(normalized) < 10 {
		return "", fmt.Errorf("enter a valid 10-digit Indian mobile number")
	}
	if !indianPhonePattern.MatchString(normalized) {
		return "", fmt.Errorf("invalid format, use e.g. +91XXXXXXXXXX, 0XXXXXXXXXX, or XXXXXXXXXX (10 digits, 6-9)")
	}
	digits := digitsOnly(normalized)
	if len(digits) == 10 {
		return "+91" + digits, nil
	}
	if strings.HasPrefix(digits, "91") {
		return "+" + digits, nil
	}
	return "+91" + digits, nil
}

// phoneKey reduces a phone to its comparison key: digits only, with any
// country or trunk prefix stripped down to the 10-digit subscriber number.
// Both sides of a duplicate comparison go through this, so a raw stored
// phone and a canonicalized draft phone still compare equal.
func phoneKey(s string) string {
	digits := digitsOnly(s)
	if len(digits) > 10 {
		return digits[len(digits)-10:]
	}
	return digits
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

var datetimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// NormalizeDateTime reduces any supported datetime representation to
// minute resolution, YYYY-MM-DDTHH:mm, so seconds, timezone suffixes and
// source-format differences never cause false negatives for times that are
// minute-identical. Unparseable input falls back to its first 16 chars.
func NormalizeDateTime(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02T15:04")
		}
	}
	if len(s) > 16 {
		return s[:16]
	}
	return s
}

func clampRating(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
