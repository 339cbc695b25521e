package model

import (
	"database/sql"
	"encoding/json"
	"time"
)

// Event is a row of the campaign_event outbox
type Event struct {
	ID   uint64    `db:"id"`
	Type EventType `db:"type"`
	Data []byte    `db:"data"`

	AggregateType AggregateType `db:"aggregate_type"`
	AggregateID   int64         `db:"aggregate_id"`

	PublishedAt sql.NullTime `db:"published_at"`
	CreatedAt   time.Time    `db:"created_at"`
}

// AggregateType ...
type AggregateType int

const (
	// AggregateTypeCampaign ...
	AggregateTypeCampaign AggregateType = 1

	// AggregateTypeBatch ...
	AggregateTypeBatch AggregateType = 2
)

// EventType ...
type EventType int

const (
	// EventTypeCampaignCreated ...
	EventTypeCampaignCreated EventType = 1

	// EventTypeCampaignPaused ...
	EventTypeCampaignPaused EventType = 2

	// EventTypeCampaignResumed ...
	EventTypeCampaignResumed EventType = 3

	// EventTypeCampaignStopped ...
	EventTypeCampaignStopped EventType = 4

	// EventTypeCampaignCompleted ...
	EventTypeCampaignCompleted EventType = 5

	// EventTypeBatchGenerated ...
	EventTypeBatchGenerated EventType = 6

	// EventTypeBatchArchived ...
	EventTypeBatchArchived EventType = 7
)

// RoutingKey is used when publishing to the message broker
func (t EventType) RoutingKey() string {
	switch t {
	case EventTypeCampaignCreated:
		return "campaign.created"
	case EventTypeCampaignPaused:
		return "campaign.paused"
	case EventTypeCampaignResumed:
		return "campaign.resumed"
	case EventTypeCampaignStopped:
		return "campaign.stopped"
	case EventTypeCampaignCompleted:
		return "campaign.completed"
	case EventTypeBatchGenerated:
		return "batch.generated"
	case EventTypeBatchArchived:
		return "batch.archived"
	default:
		return "unknown"
	}
}

// NewEvent marshals data as the JSON payload of an outbox event
func NewEvent(eventType EventType, aggregateType AggregateType, aggregateID int64, data interface{}) (Event, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return Event{}, err
	}
	return Event{
		Type:          eventType,
		AggregateType: aggregateType,
		AggregateID:   aggregateID,
		Data:          payload,
	}, nil
}

// CampaignEventData is the payload of campaign lifecycle events
type CampaignEventData struct {
	CampaignID int64     `json:"campaign_id"`
	Status     string    `json:"status"`
	EndDate    time.Time `json:"end_date"`

	PausedWeeks int `json:"paused_weeks,omitempty"`
}

// BatchEventData is the payload of batch events
type BatchEventData struct {
	BatchID        int64  `json:"batch_id"`
	Reference      string `json:"reference"`
	CampaignID     int64  `json:"campaign_id"`
	WeekNumber     int    `json:"week_number"`
	ProspectsCount int    `json:"prospects_count"`
}
