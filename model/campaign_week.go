package model

import (
	"database/sql"
	"time"
)

// CampaignIterationWeek is one planned Monday to Sunday week of a campaign
type CampaignIterationWeek struct {
	ID         int64 `db:"id"`
	CampaignID int64 `db:"campaign_id"`

	WeekNumber      int `db:"week_number"`
	IterationNumber int `db:"iteration_number"`
	WeekInIteration int `db:"week_in_iteration"`

	StartDate     time.Time `db:"start_date"`
	EndDate       time.Time `db:"end_date"`
	IsMailingWeek bool      `db:"is_mailing_week"`

	CreatedAt time.Time `db:"created_at"`
}

// CampaignPause records a paused interval, ResumedAt is null while still paused
type CampaignPause struct {
	ID          int64        `db:"id"`
	CampaignID  int64        `db:"campaign_id"`
	PausedAt    time.Time    `db:"paused_at"`
	ResumedAt   sql.NullTime `db:"resumed_at"`
	PausedWeeks int          `db:"paused_weeks"`
}

// PostalCodeLimit ...
type PostalCodeLimit struct {
	CampaignID int64  `db:"campaign_id"`
	PostalCode string `db:"postal_code"`
	Limit      int    `db:"max_count"`
}

// NullCampaignIterationWeek ...
type NullCampaignIterationWeek struct {
	Valid bool
	Week  CampaignIterationWeek
}

// NullCampaignPause ...
type NullCampaignPause struct {
	Valid bool
	Pause CampaignPause
}
