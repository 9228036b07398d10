// Package normalize validates and cleans raw identifiers before the link
// generator sees them. Each function is pure: input string in, normalized
// form or ErrInvalidIdentifier out.
package normalize

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/mesh-intelligence/dossier/pkg/types"
)

// validate is the shared validator instance. validator.Validate is safe for
// concurrent use and caches struct metadata, so one instance per package.
var validate = validator.New()

// mobilePattern matches a normalized Indian mobile number: ten digits
// starting with 6-9.
var mobilePattern = regexp.MustCompile(`^[6-9]\d{9}$`)

// nonDigits strips formatting characters from phone input.
var nonDigits = regexp.MustCompile(`[^0-9]`)

// namePattern matches names built from Latin letters, whitespace, and the
// usual punctuation (periods, apostrophes, hyphens). Non-space-delimited
// name scripts are out of scope.
var namePattern = regexp.MustCompile(`^[A-Za-z\s.'-]+$`)

// Email lowercases and validates an email address.
// Returns the normalized address, or ErrInvalidIdentifier when the input
// does not parse as an email.
func Email(raw string) (string, error) {
	email := strings.ToLower(strings.TrimSpace(raw))
	if err := validate.Var(email, "required,email"); err != nil {
		return "", fmt.Errorf("%w: email %q", types.ErrInvalidIdentifier, raw)
	}
	return email, nil
}

// SplitEmail splits a normalized email address into username and domain.
func SplitEmail(email string) (username, domain string) {
	at := strings.LastIndex(email, "@")
	if at < 0 {
		return email, ""
	}
	return email[:at], email[at+1:]
}

// Phone strips formatting from a phone number and normalizes it to a
// ten-digit Indian mobile number. A leading 91 country code (with or
// without +) is removed. Returns ErrInvalidIdentifier when the result is
// not ten digits starting with 6-9.
func Phone(raw string) (string, error) {
	digits := nonDigits.ReplaceAllString(raw, "")
	if strings.HasPrefix(digits, "91") && len(digits) > 10 {
		digits = digits[2:]
	}
	if !mobilePattern.MatchString(digits) {
		return "", fmt.Errorf("%w: phone %q (expected 10 digits starting with 6-9)", types.ErrInvalidIdentifier, raw)
	}
	return digits, nil
}

// Handle builds a lowercase social-media handle guess from name parts:
// first and last name concatenated, or just the first name when no last
// name is known.
func Handle(parts NameParts) string {
	return strings.ToLower(parts.First + parts.Last)
}

// NameParts holds a full name split into components. Middle is empty when
// the name has fewer than three tokens; Last is empty for single-token
// names.
type NameParts struct {
	Full   string
	First  string
	Middle string
	Last   string
}

// Name validates a full name and splits it on whitespace: first token is
// the first name, last token the last name, anything between joins into
// the middle name. Returns ErrInvalidIdentifier for empty input or input
// with characters outside letters, whitespace, and .'- punctuation.
func Name(raw string) (NameParts, error) {
	full := strings.Join(strings.Fields(raw), " ")
	if len(full) < 2 || !namePattern.MatchString(full) {
		return NameParts{}, fmt.Errorf("%w: name %q", types.ErrInvalidIdentifier, raw)
	}

	tokens := strings.Fields(full)
	parts := NameParts{Full: full, First: tokens[0]}
	if len(tokens) >= 2 {
		parts.Last = tokens[len(tokens)-1]
	}
	if len(tokens) > 2 {
		parts.Middle = strings.Join(tokens[1:len(tokens)-1], " ")
	}
	return parts, nil
}
