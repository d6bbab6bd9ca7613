package service

import (
	"context"
	"fmt"
	"time"

	"github.com/alexanderramin/timeline/internal/db"
	"github.com/alexanderramin/timeline/internal/domain"
	"github.com/alexanderramin/timeline/internal/repository"
	"github.com/google/uuid"
)

type itemService struct {
	items    repository.ItemRepo
	uow      db.UnitOfWork
	observer UseCaseObserver
}

func NewItemService(items repository.ItemRepo, uow db.UnitOfWork, observers ...UseCaseObserver) ItemService {
	return &itemService{
		items:    items,
		uow:      uow,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *itemService) Create(ctx context.Context, item domain.Item) (created domain.Item, err error) {
	fields := map[string]any{"name": item.Name}
	defer observe(ctx, s.observer, "create-item", time.Now().UTC(), fields, &err)

	if item.ID == "" {
		item.ID = uuid.New().String()
	}
	fields["item_id"] = item.ID
	if err = item.Validate(); err != nil {
		return domain.Item{}, err
	}

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteItemRepo(tx)
		pos, err := txItems.NextPosition(ctx)
		if err != nil {
			return err
		}
		return txItems.Create(ctx, item, pos)
	})
	if err != nil {
		return domain.Item{}, fmt.Errorf("creating item: %w", err)
	}
	return item, nil
}

func (s *itemService) Get(ctx context.Context, id string) (domain.Item, error) {
	return s.items.GetByID(ctx, id)
}

func (s *itemService) List(ctx context.Context) ([]domain.Item, error) {
	return s.items.List(ctx)
}

func (s *itemService) Update(ctx context.Context, id string, patch domain.ItemPatch) (updated domain.Item, err error) {
	fields := map[string]any{"item_id": id, "patch": patch.String()}
	defer observe(ctx, s.observer, "update-item", time.Now().UTC(), fields, &err)

	err = s.uow.WithinTx(ctx, func(ctx context.Context, tx db.DBTX) error {
		txItems := repository.NewSQLiteItemRepo(tx)
		current, err := txItems.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if err := patch.Apply(current).Validate(); err != nil {
			return err
		}
		updated, err = txItems.Update(ctx, id, patch)
		return err
	})
	if err != nil {
		return domain.Item{}, err
	}
	return updated, nil
}

func (s *itemService) Delete(ctx context.Context, id string) (err error) {
	defer observe(ctx, s.observer, "delete-item", time.Now().UTC(), map[string]any{"item_id": id}, &err)
	return s.items.Delete(ctx, id)
}
