package model

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

// Campaign ...
type Campaign struct {
	ID        int64         `db:"id"`
	CompanyID int64         `db:"company_id"`
	ProductID sql.NullInt64 `db:"product_id"`
	Name      string        `db:"name"`

	Status    CampaignStatus `db:"status"`
	Targeting Targeting      `db:"targeting"`

	MailingFrequencyWeeks int              `db:"mailing_frequency_weeks"`
	MailingDropWeeks      DropWeeks        `db:"mailing_drop_weeks"`
	PostalLimitScope      PostalLimitScope `db:"postal_limit_scope"`

	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// CampaignStatus ...
type CampaignStatus int

const (
	// CampaignStatusActive ...
	CampaignStatusActive CampaignStatus = 1

	// CampaignStatusPaused ...
	CampaignStatusPaused CampaignStatus = 2

	// CampaignStatusStopped is terminal
	CampaignStatusStopped CampaignStatus = 3

	// CampaignStatusCompleted is terminal
	CampaignStatusCompleted CampaignStatus = 4
)

func (s CampaignStatus) String() string {
	switch s {
	case CampaignStatusActive:
		return "active"
	case CampaignStatusPaused:
		return "paused"
	case CampaignStatusStopped:
		return "stopped"
	case CampaignStatusCompleted:
		return "completed"
	default:
		return "unknown"
	}
}

// PostalLimitScope decides which batches count against a postal code limit
type PostalLimitScope int

const (
	// PostalLimitScopeLifetime counts every non-archived batch of the campaign
	PostalLimitScopeLifetime PostalLimitScope = 1

	// PostalLimitScopeIterationWeek counts only the batch being generated
	PostalLimitScopeIterationWeek PostalLimitScope = 2
)

func (s PostalLimitScope) String() string {
	switch s {
	case PostalLimitScopeLifetime:
		return "lifetime"
	case PostalLimitScopeIterationWeek:
		return "iteration_week"
	default:
		return "unknown"
	}
}

// ParsePostalLimitScope returns lifetime for an empty string
func ParsePostalLimitScope(s string) (PostalLimitScope, bool) {
	switch s {
	case "", "lifetime":
		return PostalLimitScopeLifetime, true
	case "iteration_week":
		return PostalLimitScopeIterationWeek, true
	default:
		return 0, false
	}
}

// DropWeeks is the set of weeks inside an iteration that get a mailing, 1-based
type DropWeeks []int

// Contains ...
func (d DropWeeks) Contains(week int) bool {
	for _, w := range d {
		if w == week {
			return true
		}
	}
	return false
}

// Value implements driver.Valuer, a string is needed because MySQL refuses JSON from binary strings
func (d DropWeeks) Value() (driver.Value, error) {
	if d == nil {
		return "[]", nil
	}
	data, err := json.Marshal([]int(d))
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (d *DropWeeks) Scan(src interface{}) error {
	data, err := jsonBytes(src)
	if err != nil {
		return err
	}
	if data == nil {
		*d = nil
		return nil
	}
	var weeks []int
	if err := json.Unmarshal(data, &weeks); err != nil {
		return err
	}
	*d = weeks
	return nil
}

func jsonBytes(src interface{}) ([]byte, error) {
	switch v := src.(type) {
	case nil:
		return nil, nil
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, errors.New("model: unsupported json column type")
	}
}

// NullCampaign ...
type NullCampaign struct {
	Valid    bool
	Campaign Campaign
}
