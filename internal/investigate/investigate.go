// Package investigate composes the normalizer, carrier table, and link
// generator into complete investigation results.
package investigate

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/dossier/internal/carrier"
	"github.com/mesh-intelligence/dossier/internal/links"
	"github.com/mesh-intelligence/dossier/internal/normalize"
	"github.com/mesh-intelligence/dossier/pkg/types"
)

// providers maps common email domains to their provider names. Domains not
// listed here are treated as possible company or organization domains.
var providers = map[string]string{
	"gmail.com":       "Google",
	"yahoo.com":       "Yahoo",
	"hotmail.com":     "Microsoft",
	"outlook.com":     "Microsoft",
	"aol.com":         "AOL",
	"protonmail.com":  "ProtonMail",
	"icloud.com":      "Apple",
	"mail.com":        "Mail.com",
	"zoho.com":        "Zoho",
	"yandex.com":      "Yandex",
	"rediffmail.com":  "Rediff",
	"indiatimes.com":  "Indiatimes",
}

// Username pattern detection.
var (
	dottedName     = regexp.MustCompile(`^[a-z]+\.[a-z]+`)
	underscoreName = regexp.MustCompile(`^[a-z]+_[a-z]+`)
	letterRuns     = regexp.MustCompile(`[a-z]+`)
	digitRuns      = regexp.MustCompile(`\d+`)
)

// newID returns a fresh UUID v7 investigation ID.
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate investigation ID: %w", err)
	}
	return id.String(), nil
}

// Email normalizes an email address and builds its investigation result:
// domain/provider analysis and username pattern hints in the metadata, and
// the full email link set.
func Email(raw string) (types.Investigation, error) {
	email, err := normalize.Email(raw)
	if err != nil {
		return types.Investigation{}, err
	}

	id, err := newID()
	if err != nil {
		return types.Investigation{}, err
	}

	username, domain := normalize.SplitEmail(email)

	meta := map[string]string{
		"username": username,
		"domain":   domain,
	}
	if provider, ok := providers[domain]; ok {
		meta["provider"] = provider
		meta["domain_type"] = "Personal Email Provider"
	} else {
		meta["provider"] = "Unknown"
		meta["domain_type"] = "Possibly Company/Organization Domain"
	}
	if pattern := usernamePattern(username); pattern != "" {
		meta["username_pattern"] = pattern
	}

	return types.Investigation{
		InvestigationID: id,
		Kind:            types.KindEmail,
		Input:           raw,
		Normalized:      email,
		Links:           links.Email(email),
		Metadata:        meta,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

// usernamePattern labels the shape of an email username, when one of the
// common shapes applies.
func usernamePattern(username string) string {
	switch {
	case dottedName.MatchString(username):
		return "firstname.lastname"
	case underscoreName.MatchString(username):
		return "firstname_lastname"
	case len(letterRuns.FindAllString(username, -1)) == 1 && digitRuns.MatchString(username):
		return "name+number (possibly name+birthyear)"
	default:
		return ""
	}
}

// Phone normalizes a phone number and builds its investigation result.
// Metadata carries the carrier/circle guess from the prefix table, or
// "Unknown" plus a first-digit carrier list when the prefix is not in the
// table. Unknown prefixes are never an error.
func Phone(raw string) (types.Investigation, error) {
	number, err := normalize.Phone(raw)
	if err != nil {
		return types.Investigation{}, err
	}

	id, err := newID()
	if err != nil {
		return types.Investigation{}, err
	}

	meta := map[string]string{
		"country_code": "+91",
		"full_number":  "+91" + number,
	}
	if info, ok := carrier.Default().Lookup(number); ok {
		meta["carrier"] = info.Carrier
		meta["circle"] = info.Circle
	} else {
		meta["carrier"] = "Unknown"
		meta["circle"] = "Unknown"
		if possible := carrier.PossibleCarriers(number); len(possible) > 0 {
			meta["possible_carriers"] = strings.Join(possible, ", ")
		}
	}

	return types.Investigation{
		InvestigationID: id,
		Kind:            types.KindPhone,
		Input:           raw,
		Normalized:      number,
		Links:           links.Phone(number),
		Metadata:        meta,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

// Name validates and splits a full name and builds its investigation
// result. Location qualifies the generated searches and is recorded in the
// metadata when present.
func Name(raw, location string) (types.Investigation, error) {
	parts, err := normalize.Name(raw)
	if err != nil {
		return types.Investigation{}, err
	}

	id, err := newID()
	if err != nil {
		return types.Investigation{}, err
	}

	meta := map[string]string{
		"first_name": parts.First,
	}
	if parts.Middle != "" {
		meta["middle_name"] = parts.Middle
	}
	if parts.Last != "" {
		meta["last_name"] = parts.Last
	}
	if location != "" {
		meta["location"] = location
	}

	return types.Investigation{
		InvestigationID: id,
		Kind:            types.KindName,
		Input:           raw,
		Normalized:      parts.Full,
		Links:           links.Name(parts, location),
		Metadata:        meta,
		CreatedAt:       time.Now().UTC(),
	}, nil
}

// Run dispatches raw input to the pipeline for the given kind. Location is
// only consulted for name investigations.
func Run(kind, raw, location string) (types.Investigation, error) {
	switch kind {
	case types.KindEmail:
		return Email(raw)
	case types.KindPhone:
		return Phone(raw)
	case types.KindName:
		return Name(raw, location)
	default:
		return types.Investigation{}, fmt.Errorf("%w: %q", types.ErrInvalidKind, kind)
	}
}
