package store

import "github.com/promptlab/promptlab/internal/models"

// CreatePrompt stores a copy of the prompt under its id.
func (s *Store) CreatePrompt(p models.Prompt) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prompts[p.ID] = p.Clone()
}

// GetPrompt returns a copy of the prompt with the given id.
func (s *Store) GetPrompt(id string) (models.Prompt, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.prompts[id]
	if !ok {
		return models.Prompt{}, false
	}
	return p.Clone(), true
}

// ListPrompts returns copies of all stored prompts in no particular
// order.
func (s *Store) ListPrompts() []models.Prompt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	prompts := make([]models.Prompt, 0, len(s.prompts))
	for _, p := range s.prompts {
		prompts = append(prompts, p.Clone())
	}
	return prompts
}

// UpdatePrompt replaces the stored prompt with a copy of p, keyed by
// p.ID. Returns false when no prompt with that id exists.
func (s *Store) UpdatePrompt(p models.Prompt) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.prompts[p.ID]; !ok {
		return false
	}
	s.prompts[p.ID] = p.Clone()
	return true
}

// DeletePrompt removes the prompt with the given id. Returns false when
// no prompt with that id exists.
func (s *Store) DeletePrompt(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.prompts[id]; !ok {
		return false
	}
	delete(s.prompts, id)
	return true
}

// PromptsInCollection returns copies of all prompts linked to the given
// collection id.
func (s *Store) PromptsInCollection(collectionID string) []models.Prompt {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var prompts []models.Prompt
	for _, p := range s.prompts {
		if p.CollectionID != nil && *p.CollectionID == collectionID {
			prompts = append(prompts, p.Clone())
		}
	}
	return prompts
}

// UnlinkCollectionFromPrompts clears the collection link on every prompt
// referencing the given collection id and returns the number of prompts
// changed. Unlinking does not touch UpdatedAt.
func (s *Store) UnlinkCollectionFromPrompts(collectionID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	unlinked := 0
	for id, p := range s.prompts {
		if p.CollectionID != nil && *p.CollectionID == collectionID {
			p.CollectionID = nil
			s.prompts[id] = p
			unlinked++
		}
	}
	return unlinked
}
