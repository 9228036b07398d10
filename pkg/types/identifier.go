package types

import "errors"

// Identifier kinds. Every investigation is tagged with exactly one kind,
// and the link generator and report builder switch over them exhaustively.
const (
	KindEmail = "email"
	KindPhone = "phone"
	KindName  = "name"
)

// validKinds is the set of recognized identifier kinds.
var validKinds = map[string]bool{
	KindEmail: true,
	KindPhone: true,
	KindName:  true,
}

// ValidKind reports whether kind is a recognized identifier kind.
func ValidKind(kind string) bool {
	return validKinds[kind]
}

// Kinds lists all identifier kinds in a fixed order.
var Kinds = []string{KindEmail, KindPhone, KindName}

// Identifiers holds what is known about a target up front. Location is
// supplementary; it never satisfies the at-least-one-identifier rule on
// its own.
type Identifiers struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Location string `json:"location,omitempty"`
}

// Empty reports whether none of name, email, or phone are set.
func (i Identifiers) Empty() bool {
	return i.Name == "" && i.Email == "" && i.Phone == ""
}

// Validation and lookup errors.
var (
	ErrInvalidIdentifier = errors.New("invalid identifier")
	ErrInvalidKind       = errors.New("invalid identifier kind")
	ErrNoIdentifiers     = errors.New("at least one of name, email, or phone is required")
	ErrInvalidContent    = errors.New("content must not be empty")
	ErrNotFound          = errors.New("case not found")
)
