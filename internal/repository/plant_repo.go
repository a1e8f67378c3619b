package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"growroom/internal/models"
)

type PlantSQLite struct {
	db *sql.DB
}

func NewPlantSQLite(db *sql.DB) *PlantSQLite { return &PlantSQLite{db: db} }

const selectActivePlantsSQL = `
		SELECT id, name, strain, stage, planted_date, harvest_date, created_at
		FROM plants
		WHERE stage NOT IN (?, ?)
		ORDER BY planted_date IS NULL, planted_date ASC, created_at ASC
	`

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time.UTC()
	return &v
}

// Create stores a plant, assigning an id and creation time when missing.
func (r *PlantSQLite) Create(ctx context.Context, p models.Plant) (models.Plant, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = utcOrNow(p.CreatedAt)

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO plants (id, name, strain, stage, planted_date, harvest_date, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`,
		p.ID,
		p.Name,
		p.Strain,
		p.Stage,
		nullTime(p.PlantedDate),
		nullTime(p.HarvestDate),
		p.CreatedAt,
	)
	if err != nil {
		return models.Plant{}, err
	}
	return p, nil
}

func (r *PlantSQLite) ListActive(ctx context.Context) ([]models.Plant, error) {
	rows, err := r.db.QueryContext(ctx, selectActivePlantsSQL, models.StageEmpty, models.StageHarvested)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.Plant
	for rows.Next() {
		var (
			p                models.Plant
			strain           sql.NullString
			planted, harvest sql.NullTime
		)
		if err := rows.Scan(&p.ID, &p.Name, &strain, &p.Stage, &planted, &harvest, &p.CreatedAt); err != nil {
			return nil, err
		}
		p.Strain = strain.String
		p.PlantedDate = timePtr(planted)
		p.HarvestDate = timePtr(harvest)
		p.CreatedAt = p.CreatedAt.UTC()
		out = append(out, p)
	}
	return out, rows.Err()
}
