package importer

import (
	"fmt"

	"github.com/alexanderramin/timeline/internal/domain"
	"github.com/google/uuid"
)

// Convert turns a validated schema into items in file order. Entries
// without an id get a fresh uuid.
func Convert(schema *ImportSchema) ([]domain.Item, error) {
	items := make([]domain.Item, 0, len(schema.Items))
	for i, it := range schema.Items {
		start, err := domain.ParseDate(it.Start)
		if err != nil {
			return nil, fmt.Errorf("items[%d].start: %w", i, err)
		}
		end, err := domain.ParseDate(it.End)
		if err != nil {
			return nil, fmt.Errorf("items[%d].end: %w", i, err)
		}
		id := it.ID
		if id == "" {
			id = uuid.New().String()
		}
		items = append(items, domain.Item{
			ID:        id,
			Name:      it.Name,
			StartDate: start,
			EndDate:   end,
			Color:     it.Color,
		})
	}
	return items, nil
}

// FromItems is the inverse of Convert, used for export.
func FromItems(items []domain.Item) *ImportSchema {
	schema := &ImportSchema{Items: make([]ItemImport, 0, len(items))}
	for _, item := range items {
		schema.Items = append(schema.Items, ItemImport{
			ID:    item.ID,
			Name:  item.Name,
			Start: domain.FormatDate(item.StartDate),
			End:   domain.FormatDate(item.EndDate),
			Color: item.Color,
		})
	}
	return schema
}
