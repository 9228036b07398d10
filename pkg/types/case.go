package types

import (
	"fmt"
	"time"
)

// Case is the persistent aggregate of all investigations and notes for one
// target identifier set. Cases are created once, mutated by appending, and
// never deleted by the program.
type Case struct {
	CaseID         string          `json:"case_id"`
	CreatedAt      time.Time       `json:"created_at"`
	Identifiers    Identifiers     `json:"known_identifiers"`
	Investigations []Investigation `json:"investigations"`
	Notes          []Note          `json:"notes"`
}

// NewCase builds a case for the given identifiers. The CaseID is assigned
// by the store on creation. Returns ErrNoIdentifiers when name, email, and
// phone are all empty.
func NewCase(ids Identifiers) (*Case, error) {
	if ids.Empty() {
		return nil, ErrNoIdentifiers
	}
	return &Case{
		CreatedAt:   time.Now().UTC(),
		Identifiers: ids,
	}, nil
}

// AppendInvestigation appends an investigation result to the case.
// Returns ErrInvalidKind if the result carries an unrecognized kind.
func (c *Case) AppendInvestigation(inv Investigation) error {
	if !ValidKind(inv.Kind) {
		return fmt.Errorf("%w: %q", ErrInvalidKind, inv.Kind)
	}
	c.Investigations = append(c.Investigations, inv)
	return nil
}

// AppendNote appends a free-text note to the case.
// Returns ErrInvalidContent when the content is empty.
func (c *Case) AppendNote(content string) error {
	if content == "" {
		return ErrInvalidContent
	}
	c.Notes = append(c.Notes, Note{
		Content:   content,
		CreatedAt: time.Now().UTC(),
	})
	return nil
}

// IdentifierFor returns the known identifier value for the given kind.
// Returns the empty string when nothing is known for that kind.
func (c *Case) IdentifierFor(kind string) string {
	switch kind {
	case KindEmail:
		return c.Identifiers.Email
	case KindPhone:
		return c.Identifiers.Phone
	case KindName:
		return c.Identifiers.Name
	default:
		return ""
	}
}
