package service

import (
	"context"
	"fmt"

	"github.com/alexanderramin/timeline/internal/repository"
	"github.com/alexanderramin/timeline/internal/timeline"
)

type layoutService struct {
	items repository.ItemRepo
}

func NewLayoutService(items repository.ItemRepo) LayoutService {
	return &layoutService{items: items}
}

// Layout loads every item in stored order and packs it at zoom.
func (s *layoutService) Layout(ctx context.Context, zoom float64) (timeline.Layout, error) {
	items, err := s.items.List(ctx)
	if err != nil {
		return timeline.Layout{}, fmt.Errorf("loading items: %w", err)
	}
	return timeline.Build(items, zoom), nil
}
