// Package store provides the process-local entity container backing the
// prompt and collection domains. A single Store owns all entity
// instances; callers receive copies and never share memory with the
// container. Individual operations are safe for concurrent use, but the
// store offers no transactions; composing operations is the domain
// layer's concern.
package store

import (
	"sync"

	"github.com/promptlab/promptlab/internal/models"
)

// Store holds all prompts and collections in memory. Contents do not
// survive a restart.
type Store struct {
	mu          sync.RWMutex
	prompts     map[string]models.Prompt
	collections map[string]models.Collection
}

// New creates an empty Store.
func New() *Store {
	return &Store{
		prompts:     make(map[string]models.Prompt),
		collections: make(map[string]models.Collection),
	}
}

// Clear removes every entity from the store.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	clear(s.prompts)
	clear(s.collections)
}

// PromptCount returns the number of stored prompts.
func (s *Store) PromptCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.prompts)
}

// CollectionCount returns the number of stored collections.
func (s *Store) CollectionCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.collections)
}
