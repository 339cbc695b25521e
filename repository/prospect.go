package repository

import (
	"context"
	sq "github.com/Masterminds/squirrel"
	"github.com/QuangTung97/mailing-scheduler/model"
	"time"
)

// MinPostalCodeLength is the length below which a postal code is not mailable
const MinPostalCodeLength = 5

// Prospect ...
type Prospect interface {
	FindCandidates(
		ctx context.Context, companyID int64, targeting model.Targeting, now time.Time,
	) ([]model.ProspectRef, error)

	InsertProspects(ctx context.Context, prospects []model.Prospect) error
	InsertProspectTrades(ctx context.Context, rows []model.ProspectTrade) error
	InsertProspectTags(ctx context.Context, rows []model.ProspectTag) error
}

type prospectImpl struct {
}

// NewProspect ...
func NewProspect() Prospect {
	return &prospectImpl{}
}

func int64sToArgs(values []int64) []interface{} {
	args := make([]interface{}, 0, len(values))
	for _, v := range values {
		args = append(args, v)
	}
	return args
}

func stringsToArgs(values []string) []interface{} {
	args := make([]interface{}, 0, len(values))
	for _, v := range values {
		args = append(args, v)
	}
	return args
}

func flagCondition(column string, filter model.FlagFilter) sq.Sqlizer {
	switch filter {
	case model.FlagFilterOnly:
		return sq.Eq{column: true}
	case model.FlagFilterExclude:
		return sq.Eq{column: false}
	default:
		return nil
	}
}

// BuildCandidateQuery builds the prospect filter of a campaign, ordered by prospect id
func BuildCandidateQuery(companyID int64, t model.Targeting, now time.Time) sq.SelectBuilder {
	b := sq.Select("p.id", "p.postal_code").From("prospect p").
		Where(sq.Eq{
			"p.company_id":     companyID,
			"p.is_active":      true,
			"p.is_deleted":     false,
			"p.do_not_mail":    false,
			"p.do_not_contact": false,
		}).
		Where("CHAR_LENGTH(TRIM(p.postal_code)) >= ?", MinPostalCodeLength)

	if len(t.TradeIDs) > 0 {
		b = b.Where(
			"EXISTS (SELECT 1 FROM prospect_trade pt WHERE pt.prospect_id = p.id AND pt.trade_id IN ("+
				sq.Placeholders(len(t.TradeIDs))+"))",
			int64sToArgs(t.TradeIDs)...,
		)
	}

	if len(t.Tags) > 0 {
		b = b.Where(
			"EXISTS (SELECT 1 FROM prospect_tag tg WHERE tg.prospect_id = p.id AND tg.tag IN ("+
				sq.Placeholders(len(t.Tags))+"))",
			stringsToArgs(t.Tags)...,
		)
	}

	if len(t.PostalCodes) > 0 {
		b = b.Where(sq.Eq{"p.postal_code": t.PostalCodes})
	}

	if t.AddressType != model.AddressTypeAny {
		b = b.Where(sq.Eq{"p.address_type": t.AddressType})
	}

	switch t.CustomerInclusion {
	case model.CustomerInclusionProspectsOnly:
		b = b.Where(sq.Eq{"p.is_customer": false})
	case model.CustomerInclusionCustomersOnly:
		b = b.Where(sq.Eq{"p.is_customer": true})
	}

	if t.MinLifetimeValue.Valid {
		b = b.Where(sq.GtOrEq{"p.lifetime_value": t.MinLifetimeValue.Decimal})
	}
	if t.MaxLifetimeValue.Valid {
		b = b.Where(sq.LtOrEq{"p.lifetime_value": t.MaxLifetimeValue.Decimal})
	}

	if cond := flagCondition("p.is_club_member", t.ClubMembers); cond != nil {
		b = b.Where(cond)
	}
	if cond := flagCondition("p.has_installation", t.Installations); cond != nil {
		b = b.Where(cond)
	}

	if t.ProspectMinAge > 0 {
		b = b.Where(sq.Or{sq.Eq{"p.age": nil}, sq.GtOrEq{"p.age": t.ProspectMinAge}})
	}
	if t.ProspectMaxAge > 0 {
		b = b.Where(sq.Or{sq.Eq{"p.age": nil}, sq.LtOrEq{"p.age": t.ProspectMaxAge}})
	}
	if t.MinHomeAge > 0 {
		maxYearBuilt := now.Year() - t.MinHomeAge
		b = b.Where(sq.Or{sq.Eq{"p.year_built": nil}, sq.LtOrEq{"p.year_built": maxYearBuilt}})
	}
	if t.MinEstimatedIncome.Valid {
		b = b.Where(sq.Or{
			sq.Eq{"p.estimated_income": nil},
			sq.GtOrEq{"p.estimated_income": t.MinEstimatedIncome.Decimal},
		})
	}

	return b.OrderBy("p.id")
}

// FindCandidates ...
func (r *prospectImpl) FindCandidates(
	ctx context.Context, companyID int64, targeting model.Targeting, now time.Time,
) ([]model.ProspectRef, error) {
	query, args, err := BuildCandidateQuery(companyID, targeting, now).ToSql()
	if err != nil {
		return nil, err
	}

	var result []model.ProspectRef
	err = GetReadonly(ctx).SelectContext(ctx, &result, query, args...)
	return result, err
}

// InsertProspects ...
func (r *prospectImpl) InsertProspects(ctx context.Context, prospects []model.Prospect) error {
	if len(prospects) == 0 {
		return nil
	}
	query := `
INSERT INTO prospect (
	id, company_id, full_name, postal_code, address_type,
	is_active, is_deleted, do_not_mail, do_not_contact,
	is_customer, lifetime_value, is_club_member, has_installation,
	age, year_built, estimated_income
) VALUES (
	:id, :company_id, :full_name, :postal_code, :address_type,
	:is_active, :is_deleted, :do_not_mail, :do_not_contact,
	:is_customer, :lifetime_value, :is_club_member, :has_installation,
	:age, :year_built, :estimated_income
)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, prospects)
	return err
}

// InsertProspectTrades ...
func (r *prospectImpl) InsertProspectTrades(ctx context.Context, rows []model.ProspectTrade) error {
	if len(rows) == 0 {
		return nil
	}
	query := `INSERT INTO prospect_trade (prospect_id, trade_id) VALUES (:prospect_id, :trade_id)`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, rows)
	return err
}

// InsertProspectTags ...
func (r *prospectImpl) InsertProspectTags(ctx context.Context, rows []model.ProspectTag) error {
	if len(rows) == 0 {
		return nil
	}
	query := `INSERT INTO prospect_tag (prospect_id, tag) VALUES (:prospect_id, :tag)`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, rows)
	return err
}
