package model

import (
	"database/sql"
	"github.com/shopspring/decimal"
	"time"
)

// Prospect is owned by the prospect import, the scheduler only reads it
type Prospect struct {
	ID          int64       `db:"id"`
	CompanyID   int64       `db:"company_id"`
	FullName    string      `db:"full_name"`
	PostalCode  string      `db:"postal_code"`
	AddressType AddressType `db:"address_type"`

	IsActive     bool `db:"is_active"`
	IsDeleted    bool `db:"is_deleted"`
	DoNotMail    bool `db:"do_not_mail"`
	DoNotContact bool `db:"do_not_contact"`

	IsCustomer      bool            `db:"is_customer"`
	LifetimeValue   decimal.Decimal `db:"lifetime_value"`
	IsClubMember    bool            `db:"is_club_member"`
	HasInstallation bool            `db:"has_installation"`

	Age             sql.NullInt64       `db:"age"`
	YearBuilt       sql.NullInt64       `db:"year_built"`
	EstimatedIncome decimal.NullDecimal `db:"estimated_income"`

	CreatedAt time.Time `db:"created_at"`
}

// ProspectRef is the part of a prospect needed for allocation
type ProspectRef struct {
	ID         int64  `db:"id"`
	PostalCode string `db:"postal_code"`
}

// Company ...
type Company struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	IsDeleted bool   `db:"is_deleted"`
}

// Trade ...
type Trade struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	IsDeleted bool   `db:"is_deleted"`
}

// NullCompany ...
type NullCompany struct {
	Valid   bool
	Company Company
}

// ProspectTrade ...
type ProspectTrade struct {
	ProspectID int64 `db:"prospect_id"`
	TradeID    int64 `db:"trade_id"`
}

// ProspectTag ...
type ProspectTag struct {
	ProspectID int64  `db:"prospect_id"`
	Tag        string `db:"tag"`
}
