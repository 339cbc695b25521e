package model

import "time"

// Batch is the set of prospects selected for one mailing week
type Batch struct {
	ID         int64       `db:"id"`
	Reference  string      `db:"reference"`
	CampaignID int64       `db:"campaign_id"`
	WeekID     int64       `db:"campaign_iteration_week_id"`
	WeekNumber int         `db:"week_number"`
	Status     BatchStatus `db:"batch_status_id"`

	ProspectsCount     int  `db:"prospects_count"`
	GenerationComplete bool `db:"generation_complete"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NullBatch ...
type NullBatch struct {
	Valid bool
	Batch Batch
}

// BatchStatus references the batch_status table
type BatchStatus int

const (
	// BatchStatusNew ...
	BatchStatusNew BatchStatus = 1

	// BatchStatusArchived releases its prospects for later batches
	BatchStatusArchived BatchStatus = 2
)

func (s BatchStatus) String() string {
	switch s {
	case BatchStatusNew:
		return "new"
	case BatchStatusArchived:
		return "archived"
	default:
		return "unknown"
	}
}

// BatchProspect ...
type BatchProspect struct {
	BatchID    int64     `db:"batch_id"`
	ProspectID int64     `db:"prospect_id"`
	PostalCode string    `db:"postal_code"`
	CreatedAt  time.Time `db:"created_at"`
}
