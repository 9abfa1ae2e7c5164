package domain

import (
	"net/mail"
	"strings"
)

// IsValidEmail reports whether addr is a bare RFC 5322 address. Display-name
// forms ("Bob <bob@example.com>") parse but are rejected because the parsed
// address must equal the trimmed input.
func IsValidEmail(addr string) bool {
	trimmed := strings.TrimSpace(addr)
	if trimmed == "" {
		return false
	}

	parsed, err := mail.ParseAddress(trimmed)
	if err != nil {
		return false
	}
	return strings.EqualFold(parsed.Address, trimmed)
}
