// Package types defines the Case and Investigation entity types, identifier
// kinds, and standard error values for the dossier case store.
package types
