// utils/validate.go - Input validation helpers
package utils

import (
	"net/mail"
	"strings"
)

const PasswordMinLength = 8

// ValidEmail reports whether s parses as an email address.
func ValidEmail(s string) bool {
	if s == "" {
		return false
	}
	_, err := mail.ParseAddress(s)
	return err == nil
}

// ValidPassword enforces the minimum password length.
func ValidPassword(s string) bool {
	return len(s) >= PasswordMinLength
}

// NonEmptyLines counts the non-blank lines in a block of text. Recipe
// ingredients and instructions are entered one item per line.
func NonEmptyLines(s string) int {
	count := 0
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) != "" {
			count++
		}
	}
	return count
}

// RequiredFields returns an error message per empty field, keyed by the
// field's display name.
func RequiredFields(fields map[string]string) []string {
	var errs []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			errs = append(errs, name+" is required.")
		}
	}
	return errs
}
