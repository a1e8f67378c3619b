package models

import "time"

// Event types written to the grow log.
const (
	EventAlert          = "ALERT"
	EventRecommendation = "RECOMMENDATION"
	EventLowStock       = "LOW_STOCK"
	EventDose           = "DOSE"
	EventRefill         = "REFILL"
)

// GrowEvent is a single log entry.
type GrowEvent struct {
	EventID     string    `json:"event_id" bson:"_id"`
	OccurredAt  time.Time `json:"occurred_at" bson:"occurred_at"`
	Type        string    `json:"type" bson:"type"`               // ALERT | RECOMMENDATION | LOW_STOCK | DOSE | REFILL
	Description string    `json:"description" bson:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty" bson:"metadata,omitempty"`
}
