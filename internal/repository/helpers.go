package repository

import (
	"fmt"
	"time"

	"github.com/alexanderramin/timeline/internal/domain"
)

// nowUTC returns the current UTC time formatted as RFC3339.
func nowUTC() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func parseDateColumn(column, value string) (time.Time, error) {
	t, err := domain.ParseDate(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing %s: %w", column, err)
	}
	return t, nil
}
