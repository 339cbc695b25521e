package model

import (
	"database/sql/driver"
	"encoding/json"
	"github.com/shopspring/decimal"
)

// AddressType ...
type AddressType string

const (
	// AddressTypeAny ...
	AddressTypeAny AddressType = ""

	// AddressTypeResidential ...
	AddressTypeResidential AddressType = "residential"

	// AddressTypeCommercial ...
	AddressTypeCommercial AddressType = "commercial"
)

// CustomerInclusion ...
type CustomerInclusion string

const (
	// CustomerInclusionBoth ...
	CustomerInclusionBoth CustomerInclusion = ""

	// CustomerInclusionProspectsOnly ...
	CustomerInclusionProspectsOnly CustomerInclusion = "prospects_only"

	// CustomerInclusionCustomersOnly ...
	CustomerInclusionCustomersOnly CustomerInclusion = "customers_only"
)

// FlagFilter filters a boolean prospect attribute
type FlagFilter string

const (
	// FlagFilterAny ...
	FlagFilterAny FlagFilter = ""

	// FlagFilterOnly keeps prospects having the flag
	FlagFilterOnly FlagFilter = "only"

	// FlagFilterExclude keeps prospects not having the flag
	FlagFilterExclude FlagFilter = "exclude"
)

// Targeting is the filter describing the prospect universe of a campaign.
// Zero values mean "no restriction".
type Targeting struct {
	TradeIDs    []int64     `json:"trade_ids,omitempty"`
	AddressType AddressType `json:"address_type,omitempty"`
	Tags        []string    `json:"tags,omitempty"`
	PostalCodes []string    `json:"postal_codes,omitempty"`

	CustomerInclusion CustomerInclusion   `json:"customer_inclusion,omitempty"`
	MinLifetimeValue  decimal.NullDecimal `json:"min_lifetime_value"`
	MaxLifetimeValue  decimal.NullDecimal `json:"max_lifetime_value"`

	ClubMembers   FlagFilter `json:"club_members,omitempty"`
	Installations FlagFilter `json:"installations,omitempty"`

	// prospects with unknown age or income always pass these bounds
	ProspectMinAge     int                 `json:"prospect_min_age,omitempty"`
	ProspectMaxAge     int                 `json:"prospect_max_age,omitempty"`
	MinHomeAge         int                 `json:"min_home_age,omitempty"`
	MinEstimatedIncome decimal.NullDecimal `json:"min_estimated_income"`
}

// Value implements driver.Valuer
func (t Targeting) Value() (driver.Value, error) {
	data, err := json.Marshal(t)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan implements sql.Scanner
func (t *Targeting) Scan(src interface{}) error {
	data, err := jsonBytes(src)
	if err != nil {
		return err
	}
	*t = Targeting{}
	if data == nil {
		return nil
	}
	return json.Unmarshal(data, t)
}
