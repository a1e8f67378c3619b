package repository

import (
	"context"
	"database/sql"
	"errors"

	"growroom/internal/models"
)

type InventorySQLite struct {
	db *sql.DB
}

func NewInventorySQLite(db *sql.DB) *InventorySQLite { return &InventorySQLite{db: db} }

const (
	upsertInventorySQL = `
		INSERT INTO inventory (product_id, owned, bottle_size_ml, current_ml, updated_at)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(product_id) DO UPDATE SET
			owned=excluded.owned,
			bottle_size_ml=excluded.bottle_size_ml,
			current_ml=excluded.current_ml,
			updated_at=excluded.updated_at
	`

	selectInventorySQL = `SELECT product_id, owned, bottle_size_ml, current_ml, updated_at FROM inventory`
)

type rowScanner interface {
	Scan(dest ...any) error
}

func scanInventory(s rowScanner) (models.InventoryRecord, error) {
	var rec models.InventoryRecord
	if err := s.Scan(&rec.ProductID, &rec.Owned, &rec.BottleSize, &rec.CurrentMl, &rec.UpdatedAt); err != nil {
		return models.InventoryRecord{}, err
	}
	rec.UpdatedAt = rec.UpdatedAt.UTC()
	return rec, nil
}

func (r *InventorySQLite) Get(ctx context.Context, productID string) (models.InventoryRecord, error) {
	row := r.db.QueryRowContext(ctx, selectInventorySQL+" WHERE product_id = ?", productID)
	rec, err := scanInventory(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.NewInventoryRecord(productID), nil
	}
	return rec, err
}

// List returns only stored records; callers fill in defaults for the rest of the catalogue.
func (r *InventorySQLite) List(ctx context.Context) ([]models.InventoryRecord, error) {
	rows, err := r.db.QueryContext(ctx, selectInventorySQL+" ORDER BY product_id ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.InventoryRecord
	for rows.Next() {
		rec, err := scanInventory(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (r *InventorySQLite) Save(ctx context.Context, rec models.InventoryRecord) error {
	_, err := r.db.ExecContext(ctx, upsertInventorySQL,
		rec.ProductID,
		rec.Owned,
		rec.BottleSize,
		rec.CurrentMl,
		utcOrNow(rec.UpdatedAt),
	)
	return err
}
