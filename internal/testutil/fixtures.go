package testutil

import (
	"time"

	"github.com/alexanderramin/timeline/internal/domain"
	"github.com/google/uuid"
)

type ItemOption func(*domain.Item)

func WithID(id string) ItemOption {
	return func(i *domain.Item) {
		i.ID = id
	}
}

// WithDates sets both dates from DateLayout strings.
func WithDates(start, end string) ItemOption {
	return func(i *domain.Item) {
		i.StartDate = domain.MustParseDate(start)
		i.EndDate = domain.MustParseDate(end)
	}
}

func WithSpan(start time.Time, days int) ItemOption {
	return func(i *domain.Item) {
		i.StartDate = start
		i.EndDate = domain.AddDays(start, days)
	}
}

func WithColor(c string) ItemOption {
	return func(i *domain.Item) {
		i.Color = c
	}
}

// NewTestItem returns a valid five-day item starting 2024-01-01.
func NewTestItem(name string, opts ...ItemOption) domain.Item {
	item := domain.Item{
		ID:        uuid.New().String(),
		Name:      name,
		StartDate: domain.MustParseDate("2024-01-01"),
		EndDate:   domain.MustParseDate("2024-01-05"),
	}
	for _, opt := range opts {
		opt(&item)
	}
	return item
}
