package prompts

import (
	"context"
	"log/slog"

	"github.com/promptlab/promptlab/internal/models"
	"github.com/promptlab/promptlab/internal/store"
	"github.com/promptlab/promptlab/pkg/template"
)

type service struct {
	store  *store.Store
	logger *slog.Logger
}

// New creates a prompt service implementing the System interface.
func New(store *store.Store, logger *slog.Logger) System {
	return &service{
		store:  store,
		logger: logger.With("system", "prompts"),
	}
}

func (s *service) Handler() *Handler {
	return NewHandler(s, s.logger)
}

func (s *service) List(ctx context.Context, filters Filters) (*ListResult, error) {
	prompts := filters.Apply(s.store.ListPrompts())
	sortNewestFirst(prompts)

	return &ListResult{Prompts: prompts, Total: len(prompts)}, nil
}

func (s *service) Find(ctx context.Context, id string) (*models.Prompt, error) {
	p, ok := s.store.GetPrompt(id)
	if !ok {
		return nil, ErrNotFound
	}
	return &p, nil
}

func (s *service) Create(ctx context.Context, cmd CreateCommand) (*models.Prompt, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	collectionID, err := s.resolveCollection(cmd.CollectionID)
	if err != nil {
		return nil, err
	}

	now := models.Now()
	p := models.Prompt{
		ID:           models.NewID(),
		Title:        cmd.Title,
		Content:      cmd.Content,
		Description:  cmd.Description,
		CollectionID: collectionID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	s.store.CreatePrompt(p)

	s.logger.Info("prompt created", "id", p.ID, "title", p.Title)
	return &p, nil
}

func (s *service) Update(ctx context.Context, id string, cmd UpdateCommand) (*models.Prompt, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	existing, ok := s.store.GetPrompt(id)
	if !ok {
		return nil, ErrNotFound
	}

	collectionID, err := s.resolveCollection(cmd.CollectionID)
	if err != nil {
		return nil, err
	}

	updated := models.Prompt{
		ID:           existing.ID,
		Title:        cmd.Title,
		Content:      cmd.Content,
		Description:  cmd.Description,
		CollectionID: collectionID,
		CreatedAt:    existing.CreatedAt,
		UpdatedAt:    models.Now(),
	}

	if !s.store.UpdatePrompt(updated) {
		return nil, ErrNotFound
	}

	s.logger.Info("prompt replaced", "id", updated.ID, "title", updated.Title)
	return &updated, nil
}

func (s *service) Patch(ctx context.Context, id string, cmd PatchCommand) (*models.Prompt, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	patched, ok := s.store.GetPrompt(id)
	if !ok {
		return nil, ErrNotFound
	}

	if cmd.Title != nil {
		patched.Title = *cmd.Title
	}
	if cmd.Content != nil {
		patched.Content = *cmd.Content
	}
	if cmd.Description != nil {
		patched.Description = cmd.Description
	}

	if cmd.CollectionID != nil && *cmd.CollectionID != "" {
		if _, ok := s.store.GetCollection(*cmd.CollectionID); !ok {
			return nil, ErrCollectionNotFound
		}
		patched.CollectionID = cmd.CollectionID
	}

	patched.UpdatedAt = models.Now()

	if !s.store.UpdatePrompt(patched) {
		return nil, ErrNotFound
	}

	s.logger.Info("prompt patched", "id", patched.ID)
	return &patched, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if !s.store.DeletePrompt(id) {
		return ErrNotFound
	}

	s.logger.Info("prompt deleted", "id", id)
	return nil
}

func (s *service) Variables(ctx context.Context, id string) ([]string, error) {
	p, ok := s.store.GetPrompt(id)
	if !ok {
		return nil, ErrNotFound
	}
	return template.Variables(p.Content), nil
}

// resolveCollection normalizes and checks a collection reference. A nil
// or empty id yields no link; any other id must resolve to a stored
// collection.
func (s *service) resolveCollection(id *string) (*string, error) {
	if id == nil || *id == "" {
		return nil, nil
	}
	if _, ok := s.store.GetCollection(*id); !ok {
		return nil, ErrCollectionNotFound
	}
	return id, nil
}
