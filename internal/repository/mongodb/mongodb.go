package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"growroom/internal/repository"
)

// Collection names.
const (
	inventoryCollection = "inventory"
	doseCollection      = "dose_logs"
	plantCollection     = "plants"
	eventCollection     = "grow_events"
	telemetryCollection = "telemetry"
)

// ClientOptions returns the client settings the repositories rely on:
// untyped sub-documents decode as maps so event metadata renders as JSON objects.
func ClientOptions(uri string) *options.ClientOptions {
	return options.Client().
		ApplyURI(uri).
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})
}

// Store owns the client connection.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect dials MongoDB and verifies the connection with a ping.
func Connect(ctx context.Context, uri, dbName string) (*Store, error) {
	client, err := mongo.Connect(ctx, ClientOptions(uri))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}
	return &Store{client: client, db: client.Database(dbName)}, nil
}

// Repository wires the document-store implementations.
func (s *Store) Repository() *repository.Repository {
	return NewRepository(s.db)
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func NewRepository(db *mongo.Database) *repository.Repository {
	return &repository.Repository{
		Inventory: NewInventoryMongo(db),
		Doses:     NewDoseLogMongo(db),
		Plants:    NewPlantMongo(db),
		Events:    NewEventMongo(db),
		Telemetry: NewTelemetryMongo(db),
	}
}
