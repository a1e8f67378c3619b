package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"growroom/internal/models"
)

type DoseLogSQLite struct {
	db *sql.DB
}

func NewDoseLogSQLite(db *sql.DB) *DoseLogSQLite { return &DoseLogSQLite{db: db} }

const selectDoseLogsSQL = `SELECT id, logged_at, liters, week, substrate, products, total_ml, notes FROM dose_logs`

func (r *DoseLogSQLite) Append(ctx context.Context, d models.DoseLog) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	products := d.Products
	if products == nil {
		products = map[string]float64{}
	}
	b, err := json.Marshal(products)
	if err != nil {
		return fmt.Errorf("marshal dose products: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO dose_logs (id, logged_at, liters, week, substrate, products, total_ml, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`,
		d.ID,
		utcOrNow(d.LoggedAt),
		d.Liters,
		d.Week,
		d.Substrate,
		string(b),
		d.TotalMl,
		d.Notes,
	)
	return err
}

// List returns dose logs within [from, to], newest first.
func (r *DoseLogSQLite) List(ctx context.Context, from, to time.Time) ([]models.DoseLog, error) {
	var (
		conds []string
		args  []any
	)
	if !from.IsZero() {
		conds = append(conds, "logged_at >= ?")
		args = append(args, from.UTC())
	}
	if !to.IsZero() {
		conds = append(conds, "logged_at <= ?")
		args = append(args, to.UTC())
	}

	q := selectDoseLogsSQL
	if len(conds) > 0 {
		q += " WHERE " + strings.Join(conds, " AND ")
	}
	q += " ORDER BY logged_at DESC"

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.DoseLog
	for rows.Next() {
		var (
			d        models.DoseLog
			products string
			notes    sql.NullString
		)
		if err := rows.Scan(&d.ID, &d.LoggedAt, &d.Liters, &d.Week, &d.Substrate, &products, &d.TotalMl, &notes); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(products), &d.Products); err != nil {
			return nil, fmt.Errorf("decode products of dose %s: %w", d.ID, err)
		}
		d.Notes = notes.String
		d.LoggedAt = d.LoggedAt.UTC()
		out = append(out, d)
	}
	return out, rows.Err()
}
