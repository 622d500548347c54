// Package service provides business logic for the application.
package service

import (
	"net/mail"
	"net/url"
	"unicode/utf8"

	"github.com/oklog/ulid/v2"

	"github.com/wearcast/wearcast/internal/apperr"
)

// Validation limits.
const (
	// MinNameLength is the minimum length for user and item names.
	MinNameLength = 2

	// MaxNameLength is the maximum length for user and item names.
	MaxNameLength = 30

	// MinPasswordLength is the password floor enforced at signup.
	MinPasswordLength = 8

	// MaxURLLength is the maximum length for avatar and image URLs.
	MaxURLLength = 2048
)

// validateName checks a display or item name against the shared length rule.
// Bounds count characters, not bytes, so multibyte names are measured the way
// users see them.
func validateName(name string) error {
	if n := utf8.RuneCountInString(name); n < MinNameLength || n > MaxNameLength {
		return apperr.BadRequest("name must be between 2 and 30 characters")
	}
	return nil
}

// validateEmail checks email syntax.
func validateEmail(email string) error {
	if email == "" {
		return apperr.BadRequest("email is required")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return apperr.BadRequest("a valid email is required")
	}
	return nil
}

// validatePassword enforces presence and the minimum length policy.
func validatePassword(password string) error {
	if password == "" {
		return apperr.BadRequest("password is required")
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return apperr.BadRequest("password must be at least 8 characters")
	}
	return nil
}

// validateURL checks that raw is a well-formed http(s) URL with a host.
func validateURL(raw, field string) error {
	if raw == "" || len(raw) > MaxURLLength {
		return apperr.BadRequest("a valid " + field + " URL is required")
	}

	parsed, err := url.Parse(raw)
	if err != nil {
		return apperr.BadRequest("a valid " + field + " URL is required")
	}

	// Only allow http and https schemes
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return apperr.BadRequest("a valid " + field + " URL is required")
	}

	// Must have a host
	if parsed.Host == "" {
		return apperr.BadRequest("a valid " + field + " URL is required")
	}

	return nil
}

// ValidateItemID rejects identifiers that are not well-formed ULIDs before
// they ever reach the storage layer.
func ValidateItemID(id string) error {
	if _, err := ulid.Parse(id); err != nil {
		return apperr.BadRequest("Invalid item ID format")
	}
	return nil
}
