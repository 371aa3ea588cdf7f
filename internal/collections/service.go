package collections

import (
	"context"
	"log/slog"

	"github.com/promptlab/promptlab/internal/models"
	"github.com/promptlab/promptlab/internal/store"
)

type service struct {
	store  *store.Store
	logger *slog.Logger
}

// New creates a collection service implementing the System interface.
func New(store *store.Store, logger *slog.Logger) System {
	return &service{
		store:  store,
		logger: logger.With("system", "collections"),
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *service) List(ctx context.Context) (*ListResult, error) {
	collections := s.store.ListCollections()
	return &ListResult{Collections: collections, Total: len(collections)}, nil
}

func (s *service) Find(ctx context.Context, id string) (*models.Collection, error) {
	c, ok := s.store.GetCollection(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &c, nil
}

func (s *service) Create(ctx context.Context, cmd CreateCommand) (*models.Collection, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	c := models.Collection{
		ID:          models.NewID(),
		Name:        cmd.Name,
		Description: cmd.Description,
		CreatedAt:   models.Now(),
	}

	s.store.CreateCollection(c)

	s.logger.Info("collection created", "id", c.ID, "name", c.Name)
	return &c, nil
}

// Delete removes a collection and clears the link on every prompt that
// referenced it.
func (s *service) Delete(ctx context.Context, id string) error {
	if !s.store.DeleteCollection(id) {
		return ErrNotFound
	}

	unlinked := s.store.UnlinkCollectionFromPrompts(id)

	s.logger.Info("collection deleted", "id", id, "unlinked_prompts", unlinked)
	return nil
}
