package utils

import (
	"regexp"
	"strings"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^(\d{3}-\d{3}-\d{4}|\(\d{3}\) \d{3}-\d{4}|\d{10})$`)
)

// ValidateName requires at least two characters after trimming.
func ValidateName(name string) bool {
	return len(strings.TrimSpace(name)) >= 2
}

func ValidateEmail(email string) bool {
	return emailPattern.MatchString(strings.TrimSpace(email))
}

// ValidatePhone accepts 10 US digits grouped 3-3-4: plain, dashed,
// or parenthesized area code.
func ValidatePhone(phone string) bool {
	return phonePattern.MatchString(strings.TrimSpace(phone))
}
