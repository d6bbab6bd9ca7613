package service

import (
	"context"

	"github.com/alexanderramin/timeline/internal/domain"
	"github.com/alexanderramin/timeline/internal/importer"
	"github.com/alexanderramin/timeline/internal/timeline"
)

type ItemService interface {
	// Create stores a new item at the end of the ordering. An empty ID is
	// replaced with a generated one; the stored item is returned.
	Create(ctx context.Context, item domain.Item) (domain.Item, error)
	Get(ctx context.Context, id string) (domain.Item, error)
	List(ctx context.Context) ([]domain.Item, error)
	// Update applies patch and rejects a merged item that ends before it
	// starts or has a blank name.
	Update(ctx context.Context, id string, patch domain.ItemPatch) (domain.Item, error)
	Delete(ctx context.Context, id string) error
}

type LayoutService interface {
	Layout(ctx context.Context, zoom float64) (timeline.Layout, error)
}

// ImportResult holds the outcome of an item import.
type ImportResult struct {
	Items []domain.Item
}

type ImportService interface {
	Import(ctx context.Context, path string) (*ImportResult, error)
	ImportSchema(ctx context.Context, schema *importer.ImportSchema) (*ImportResult, error)
}

type ExportService interface {
	Export(ctx context.Context, format importer.Format) ([]byte, error)
}
