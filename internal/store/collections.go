package store

import "github.com/promptlab/promptlab/internal/models"

// CreateCollection stores a copy of the collection under its id.
func (s *Store) CreateCollection(c models.Collection) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.collections[c.ID] = c.Clone()
}

// GetCollection returns a copy of the collection with the given id.
func (s *Store) GetCollection(id string) (models.Collection, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.collections[id]
	if !ok {
		return models.Collection{}, false
	}
	return c.Clone(), true
}

// ListCollections returns copies of all stored collections in no
// particular order.
func (s *Store) ListCollections() []models.Collection {
	s.mu.RLock()
	defer s.mu.RUnlock()

	collections := make([]models.Collection, 0, len(s.collections))
	for _, c := range s.collections {
		collections = append(collections, c.Clone())
	}
	return collections
}

// DeleteCollection removes the collection with the given id. Returns
// false when no collection with that id exists. Unlinking referencing
// prompts is the caller's responsibility.
func (s *Store) DeleteCollection(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[id]; !ok {
		return false
	}
	delete(s.collections, id)
	return true
}
