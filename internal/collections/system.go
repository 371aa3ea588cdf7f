package collections

import (
	"context"

	"github.com/promptlab/promptlab/internal/models"
)

// System defines the public contract for collection domain operations.
type System interface {
	Handler() *Handler

	List(ctx context.Context) (*ListResult, error)
	Find(ctx context.Context, id string) (*models.Collection, error)
	Create(ctx context.Context, cmd CreateCommand) (*models.Collection, error)
	Delete(ctx context.Context, id string) error
}
