// Package dossier exposes project-level metadata.
package dossier

// Version is the dossier release version.
const Version = "0.1.0"
