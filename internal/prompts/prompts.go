// Package prompts implements the prompt domain for PromptLab.
// It provides command types, validation, domain logic, and HTTP
// handlers for managing reusable prompt templates.
package prompts

import "github.com/promptlab/promptlab/internal/models"

// CreateCommand carries the data needed to create a new prompt.
type CreateCommand struct {
	Title        string  `json:"title"`
	Content      string  `json:"content"`
	Description  *string `json:"description"`
	CollectionID *string `json:"collection_id"`
}

// UpdateCommand carries the complete replacement state for a prompt.
// Every stored field is overwritten: a field absent from the request
// body becomes unset, so an omitted collection_id clears the link.
type UpdateCommand struct {
	Title        string  `json:"title"`
	Content      string  `json:"content"`
	Description  *string `json:"description"`
	CollectionID *string `json:"collection_id"`
}

// PatchCommand carries a partial update. Nil fields leave the stored
// value untouched. CollectionID can relink a prompt but never clear the
// link; clearing happens only via full replace or collection deletion.
type PatchCommand struct {
	Title        *string `json:"title"`
	Content      *string `json:"content"`
	Description  *string `json:"description"`
	CollectionID *string `json:"collection_id"`
}

// ListResult is the response shape for prompt listings.
type ListResult struct {
	Prompts []models.Prompt `json:"prompts"`
	Total   int             `json:"total"`
}

// VariablesResult is the response shape for the template variables
// endpoint.
type VariablesResult struct {
	Variables []string `json:"variables"`
	Total     int      `json:"total"`
}
