package repository

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"growroom/internal/models"
)

var inventoryCols = []string{"product_id", "owned", "bottle_size_ml", "current_ml", "updated_at"}

func TestInventoryGet_Stored(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)

	at := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(selectInventorySQL + " WHERE product_id = ?")).
		WithArgs("bio-bloom").
		WillReturnRows(sqlmock.NewRows(inventoryCols).AddRow("bio-bloom", true, 500.0, 120.5, at))

	got, err := NewInventorySQLite(db).Get(ctx(t), "bio-bloom")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	want := models.InventoryRecord{ProductID: "bio-bloom", Owned: true, BottleSize: 500, CurrentMl: 120.5, UpdatedAt: at}
	if got != want {
		t.Fatalf("got %+v, want %+v", got, want)
	}
}

func TestInventoryGet_MissingReturnsDefault(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectInventorySQL)).
		WithArgs("calmag").
		WillReturnRows(sqlmock.NewRows(inventoryCols))

	got, err := NewInventorySQLite(db).Get(ctx(t), "calmag")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != models.NewInventoryRecord("calmag") {
		t.Fatalf("expected default record, got %+v", got)
	}
}

func TestInventoryGet_QueryError(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(selectInventorySQL)).WillReturnError(errors.New("locked"))

	if _, err := NewInventorySQLite(db).Get(ctx(t), "calmag"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestInventoryList(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)

	at := time.Date(2025, 5, 1, 8, 0, 0, 0, time.UTC)
	mock.ExpectQuery(regexp.QuoteMeta(selectInventorySQL + " ORDER BY product_id ASC")).
		WillReturnRows(sqlmock.NewRows(inventoryCols).
			AddRow("bio-bloom", true, 500.0, 120.0, at).
			AddRow("top-max", false, 1000.0, 0.0, at))

	got, err := NewInventorySQLite(db).List(ctx(t))
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(got) != 2 || got[0].ProductID != "bio-bloom" || got[1].Owned {
		t.Fatalf("unexpected: %+v", got)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestInventorySave_Upserts(t *testing.T) {
	t.Parallel()

	db, mock := newMockDB(t)

	mock.ExpectExec(regexp.QuoteMeta("ON CONFLICT(product_id) DO UPDATE")).
		WithArgs("fish-mix", true, 250.0, 250.0, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))

	rec := models.InventoryRecord{ProductID: "fish-mix", Owned: true, BottleSize: 250, CurrentMl: 250}
	if err := NewInventorySQLite(db).Save(ctx(t), rec); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}
