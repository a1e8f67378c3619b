package mongodb

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"growroom/internal/models"
)

func utcOrNow(t time.Time) time.Time {
	if t.IsZero() {
		return time.Now().UTC()
	}
	return t.UTC()
}

// rangeFilter builds {field: {$gte: from, $lte: to}} with open zero bounds.
func rangeFilter(field string, from, to time.Time) bson.M {
	cond := bson.M{}
	if !from.IsZero() {
		cond["$gte"] = from.UTC()
	}
	if !to.IsZero() {
		cond["$lte"] = to.UTC()
	}
	if len(cond) == 0 {
		return bson.M{}
	}
	return bson.M{field: cond}
}

type InventoryMongo struct {
	coll *mongo.Collection
}

func NewInventoryMongo(db *mongo.Database) *InventoryMongo {
	return &InventoryMongo{coll: db.Collection(inventoryCollection)}
}

func (r *InventoryMongo) Get(ctx context.Context, productID string) (models.InventoryRecord, error) {
	var rec models.InventoryRecord
	err := r.coll.FindOne(ctx, bson.M{"_id": productID}).Decode(&rec)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.NewInventoryRecord(productID), nil
	}
	if err != nil {
		return models.InventoryRecord{}, fmt.Errorf("find inventory %s: %w", productID, err)
	}
	return rec, nil
}

func (r *InventoryMongo) List(ctx context.Context) ([]models.InventoryRecord, error) {
	cur, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find inventory: %w", err)
	}
	var out []models.InventoryRecord
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode inventory: %w", err)
	}
	return out, nil
}

func (r *InventoryMongo) Save(ctx context.Context, rec models.InventoryRecord) error {
	rec.UpdatedAt = utcOrNow(rec.UpdatedAt)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": rec.ProductID}, rec, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save inventory %s: %w", rec.ProductID, err)
	}
	return nil
}

type DoseLogMongo struct {
	coll *mongo.Collection
}

func NewDoseLogMongo(db *mongo.Database) *DoseLogMongo {
	return &DoseLogMongo{coll: db.Collection(doseCollection)}
}

func (r *DoseLogMongo) Append(ctx context.Context, d models.DoseLog) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	if d.Products == nil {
		d.Products = map[string]float64{}
	}
	d.LoggedAt = utcOrNow(d.LoggedAt)
	if _, err := r.coll.InsertOne(ctx, d); err != nil {
		return fmt.Errorf("insert dose log: %w", err)
	}
	return nil
}

func (r *DoseLogMongo) List(ctx context.Context, from, to time.Time) ([]models.DoseLog, error) {
	opts := options.Find().SetSort(bson.D{{Key: "logged_at", Value: -1}})
	cur, err := r.coll.Find(ctx, rangeFilter("logged_at", from, to), opts)
	if err != nil {
		return nil, fmt.Errorf("find dose logs: %w", err)
	}
	var out []models.DoseLog
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode dose logs: %w", err)
	}
	return out, nil
}

type PlantMongo struct {
	coll *mongo.Collection
}

func NewPlantMongo(db *mongo.Database) *PlantMongo {
	return &PlantMongo{coll: db.Collection(plantCollection)}
}

func (r *PlantMongo) Create(ctx context.Context, p models.Plant) (models.Plant, error) {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	p.CreatedAt = utcOrNow(p.CreatedAt)
	if _, err := r.coll.InsertOne(ctx, p); err != nil {
		return models.Plant{}, fmt.Errorf("insert plant: %w", err)
	}
	return p, nil
}

func (r *PlantMongo) ListActive(ctx context.Context) ([]models.Plant, error) {
	filter := bson.M{"stage": bson.M{"$nin": bson.A{models.StageEmpty, models.StageHarvested}}}
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find plants: %w", err)
	}
	var out []models.Plant
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode plants: %w", err)
	}
	// mongo sorts missing dates first; unplanted slots go last like the SQL store
	sort.SliceStable(out, func(i, j int) bool {
		a, b := out[i].PlantedDate, out[j].PlantedDate
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})
	return out, nil
}

type EventMongo struct {
	coll *mongo.Collection
}

func NewEventMongo(db *mongo.Database) *EventMongo {
	return &EventMongo{coll: db.Collection(eventCollection)}
}

func (r *EventMongo) Append(ctx context.Context, e models.GrowEvent) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	e.OccurredAt = utcOrNow(e.OccurredAt)
	e.Type = strings.ToUpper(strings.TrimSpace(e.Type))
	if _, err := r.coll.InsertOne(ctx, e); err != nil {
		return fmt.Errorf("insert event: %w", err)
	}
	return nil
}

func (r *EventMongo) List(ctx context.Context, from, to time.Time, typ string) ([]models.GrowEvent, error) {
	filter := rangeFilter("occurred_at", from, to)
	if typ = strings.ToUpper(strings.TrimSpace(typ)); typ != "" {
		filter["type"] = typ
	}
	cur, err := r.coll.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "occurred_at", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("find events: %w", err)
	}
	out := make([]models.GrowEvent, 0, 64)
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	return out, nil
}

const telemetryDocID = 1

type TelemetryMongo struct {
	coll *mongo.Collection
}

func NewTelemetryMongo(db *mongo.Database) *TelemetryMongo {
	return &TelemetryMongo{coll: db.Collection(telemetryCollection)}
}

func (r *TelemetryMongo) Save(ctx context.Context, s models.TelemetrySnapshot) error {
	s.ID = telemetryDocID
	s.UpdatedAt = utcOrNow(s.UpdatedAt)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"_id": telemetryDocID}, s, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("save telemetry: %w", err)
	}
	return nil
}

func (r *TelemetryMongo) Load(ctx context.Context) (models.TelemetrySnapshot, error) {
	var s models.TelemetrySnapshot
	err := r.coll.FindOne(ctx, bson.M{"_id": telemetryDocID}).Decode(&s)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.TelemetrySnapshot{}, nil
	}
	if err != nil {
		return models.TelemetrySnapshot{}, fmt.Errorf("find telemetry: %w", err)
	}
	return s, nil
}
