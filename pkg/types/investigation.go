package types

import "time"

// Link is one generated URL with a human-readable label. Links are ordered;
// the order they were generated in is the order they are reported in.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Investigation records a single run of the link generator against one
// identifier. Immutable once created; owned exclusively by its parent Case.
type Investigation struct {
	InvestigationID string            `json:"investigation_id"`
	Kind            string            `json:"kind"`
	Input           string            `json:"input_value"`
	Normalized      string            `json:"normalized_value"`
	Links           []Link            `json:"generated_links"`
	Metadata        map[string]string `json:"metadata,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
}

// Note is a free-text annotation on a case.
type Note struct {
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}
