package repository

import (
	"context"
	"errors"

	"github.com/alexanderramin/timeline/internal/domain"
)

// ErrNotFound is returned when an item id has no row.
var ErrNotFound = errors.New("item not found")

// ItemRepo is the item store. List order is the externally supplied
// position order, which lane packing relies on for tie-breaking.
type ItemRepo interface {
	Create(ctx context.Context, item domain.Item, position int) error
	GetByID(ctx context.Context, id string) (domain.Item, error)
	List(ctx context.Context) ([]domain.Item, error)
	// Update merges the non-nil fields of patch into the stored item and
	// returns the result.
	Update(ctx context.Context, id string, patch domain.ItemPatch) (domain.Item, error)
	Delete(ctx context.Context, id string) error
	NextPosition(ctx context.Context) (int, error)
}
