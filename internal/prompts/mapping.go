package prompts

import (
	"net/url"
	"slices"
	"strings"

	"github.com/promptlab/promptlab/internal/models"
)

// Filters contains optional criteria for prompt listings. Nil fields
// are ignored. CollectionID uses exact matching; Search uses
// case-insensitive contains matching over title and description.
type Filters struct {
	CollectionID *string `json:"collection_id,omitempty"`
	Search       *string `json:"search,omitempty"`
}

// FiltersFromQuery extracts filter values from URL query parameters.
// Empty parameters are treated as absent.
func FiltersFromQuery(values url.Values) Filters {
	var f Filters

	if c := values.Get("collection_id"); c != "" {
		f.CollectionID = &c
	}
	if s := values.Get("search"); s != "" {
		f.Search = &s
	}

	return f
}

// Apply returns the prompts satisfying the filters.
func (f Filters) Apply(prompts []models.Prompt) []models.Prompt {
	matched := prompts
	if f.CollectionID != nil {
		matched = filterByCollection(matched, *f.CollectionID)
	}
	if f.Search != nil {
		matched = searchPrompts(matched, *f.Search)
	}
	return matched
}

func filterByCollection(prompts []models.Prompt, collectionID string) []models.Prompt {
	matched := make([]models.Prompt, 0, len(prompts))
	for _, p := range prompts {
		if p.CollectionID != nil && *p.CollectionID == collectionID {
			matched = append(matched, p)
		}
	}
	return matched
}

func searchPrompts(prompts []models.Prompt, query string) []models.Prompt {
	q := strings.ToLower(query)

	matched := make([]models.Prompt, 0, len(prompts))
	for _, p := range prompts {
		if strings.Contains(strings.ToLower(p.Title), q) {
			matched = append(matched, p)
			continue
		}
		if p.Description != nil && strings.Contains(strings.ToLower(*p.Description), q) {
			matched = append(matched, p)
		}
	}
	return matched
}

// sortNewestFirst orders prompts by creation time, most recent first,
// regardless of any caller-supplied ordering.
func sortNewestFirst(prompts []models.Prompt) {
	slices.SortFunc(prompts, func(a, b models.Prompt) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
}
