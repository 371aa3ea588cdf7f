// Package collections implements the collection domain for PromptLab.
// Collections group prompts under a name; they are created, listed, and
// deleted, never updated. Deleting a collection unlinks every prompt
// that references it.
package collections

import "github.com/promptlab/promptlab/internal/models"

// CreateCommand carries the data needed to create a new collection.
type CreateCommand struct {
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// ListResult is the response shape for collection listings.
type ListResult struct {
	Collections []models.Collection `json:"collections"`
	Total       int                 `json:"total"`
}
