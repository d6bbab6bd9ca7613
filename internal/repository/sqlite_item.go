package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/alexanderramin/timeline/internal/db"
	"github.com/alexanderramin/timeline/internal/domain"
)

// SQLiteItemRepo implements ItemRepo on the items table. It accepts either
// the database handle or a transaction.
type SQLiteItemRepo struct {
	db db.DBTX
}

func NewSQLiteItemRepo(conn db.DBTX) *SQLiteItemRepo {
	return &SQLiteItemRepo{db: conn}
}

const itemColumns = `id, name, start_date, end_date, color`

func (r *SQLiteItemRepo) Create(ctx context.Context, item domain.Item, position int) error {
	now := nowUTC()
	query := `INSERT INTO items (id, name, start_date, end_date, color, position, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		item.ID,
		item.Name,
		domain.FormatDate(item.StartDate),
		domain.FormatDate(item.EndDate),
		item.Color,
		position,
		now,
		now,
	)
	if err != nil {
		return fmt.Errorf("inserting item: %w", err)
	}
	return nil
}

func (r *SQLiteItemRepo) GetByID(ctx context.Context, id string) (domain.Item, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+itemColumns+` FROM items WHERE id = ?`, id)
	item, err := scanItem(row)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.Item{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return item, err
}

func (r *SQLiteItemRepo) List(ctx context.Context) ([]domain.Item, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+itemColumns+` FROM items ORDER BY position, created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing items: %w", err)
	}
	defer rows.Close()

	var items []domain.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating items: %w", err)
	}
	return items, nil
}

func (r *SQLiteItemRepo) Update(ctx context.Context, id string, patch domain.ItemPatch) (domain.Item, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return domain.Item{}, err
	}
	if patch.IsEmpty() {
		return current, nil
	}

	merged := patch.Apply(current)
	query := `UPDATE items SET name = ?, start_date = ?, end_date = ?, updated_at = ? WHERE id = ?`
	_, err = r.db.ExecContext(ctx, query,
		merged.Name,
		domain.FormatDate(merged.StartDate),
		domain.FormatDate(merged.EndDate),
		nowUTC(),
		id,
	)
	if err != nil {
		return domain.Item{}, fmt.Errorf("updating item: %w", err)
	}
	return merged, nil
}

func (r *SQLiteItemRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM items WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting item: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// NextPosition returns the position that appends after every stored item.
func (r *SQLiteItemRepo) NextPosition(ctx context.Context) (int, error) {
	var next int
	err := r.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(position) + 1, 0) FROM items`).Scan(&next)
	if err != nil {
		return 0, fmt.Errorf("reading next position: %w", err)
	}
	return next, nil
}

func scanItem(s rowScanner) (domain.Item, error) {
	var item domain.Item
	var startStr, endStr string
	if err := s.Scan(&item.ID, &item.Name, &startStr, &endStr, &item.Color); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Item{}, err
		}
		return domain.Item{}, fmt.Errorf("scanning item: %w", err)
	}

	var err error
	if item.StartDate, err = parseDateColumn("start_date", startStr); err != nil {
		return domain.Item{}, err
	}
	if item.EndDate, err = parseDateColumn("end_date", endStr); err != nil {
		return domain.Item{}, err
	}
	return item, nil
}
