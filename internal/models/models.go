package models

import (
	"github.com/google/uuid"
)

// ClassificationResult is the full record returned for one classified commit
// message. The serving layer owns everything the pure classifier does not:
// the result id, the echoed message, and the wall-clock timestamp.
type ClassificationResult struct {
	ID          uuid.UUID `json:"id"`
	Message     string    `json:"message"`
	Type        string    `json:"type"`
	Scope       *string   `json:"scope"`
	Description string    `json:"description"`
	Confidence  float64   `json:"confidence"`
	Timestamp   string    `json:"timestamp"`
	Suggestions []string  `json:"suggestions"`
}

// BatchItemResult reports the outcome of one message in a batch. Exactly one
// of Result and Error is set; a failed item never aborts its siblings.
type BatchItemResult struct {
	Message string                `json:"message"`
	Result  *ClassificationResult `json:"result,omitempty"`
	Error   string                `json:"error,omitempty"`
}

// BatchResult pairs the per-item outcomes with the number of items processed.
// Results preserve input order, one entry per input message.
type BatchResult struct {
	Results []BatchItemResult `json:"results"`
	Total   int               `json:"total"`
}

// CategoryInfo is the read-only projection of one rule-table entry exposed by
// the types listing.
type CategoryInfo struct {
	ID          string   `json:"-"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
	Example     string   `json:"example"`
}

// Stats summarizes the configured rule table.
type Stats struct {
	TotalCommitTypes int      `json:"total_commit_types"`
	SupportedTypes   []string `json:"supported_types"`
	APIVersion       string   `json:"api_version"`
}
