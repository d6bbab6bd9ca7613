package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/timeline/internal/db"
	"github.com/alexanderramin/timeline/internal/importer"
	"github.com/alexanderramin/timeline/internal/repository"
)

type importService struct {
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewImportService(uow db.UnitOfWork, observers ...UseCaseObserver) ImportService {
	return &importService{uow: uow, observer: useCaseObserverOrNoop(observers)}
}

func (s *importService) Import(ctx context.Context, path string) (*ImportResult, error) {
	schema, err := importer.LoadImportSchema(path)
	if err != nil {
		return nil, fmt.Errorf("loading import file: %w", err)
	}
	return s.ImportSchema(ctx, schema)
}

// ImportSchema appends every item after the stored ones, all or nothing.
func (s *importService) ImportSchema(ctx context.Context, schema *importer.ImportSchema) (result *ImportResult, err error) {
	fields := map[string]any{"item_count": len(schema.Items)}
	defer observe(ctx, s.observer, "import-items", time.Now().UTC(), fields, &err)

	if errs := importer.ValidateImportSchema(schema); len(errs) > 0 {
		return nil, formatValidationErrors(errs)
	}

	items, err := importer.Convert(schema)
	if err != nil {
		return nil, fmt.Errorf("converting import schema: %w", err)
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteItemRepo(tx)
		next, err := txItems.NextPosition(ctx)
		if err != nil {
			return err
		}
		for i, item := range items {
			if err := txItems.Create(ctx, item, next+i); err != nil {
				return fmt.Errorf("creating item %q: %w", item.Name, err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &ImportResult{Items: items}, nil
}

func formatValidationErrors(errs []error) error {
	var b strings.Builder
	fmt.Fprintf(&b, "import validation failed (%d errors):", len(errs))
	for _, e := range errs {
		b.WriteString("\n  - ")
		b.WriteString(e.Error())
	}
	return fmt.Errorf("%s", b.String())
}

type exportService struct {
	items repository.ItemRepo
}

func NewExportService(items repository.ItemRepo) ExportService {
	return &exportService{items: items}
}

func (s *exportService) Export(ctx context.Context, format importer.Format) ([]byte, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading items: %w", err)
	}
	return importer.Encode(importer.FromItems(items), format)
}
