package repository

import (
	"context"
	sq "github.com/Masterminds/squirrel"
	"github.com/QuangTung97/mailing-scheduler/model"
	"time"
)

// Campaign ...
type Campaign interface {
	InsertCampaign(ctx context.Context, campaign model.Campaign) (int64, error)
	GetCampaign(ctx context.Context, id int64) (model.NullCampaign, error)
	LockCampaign(ctx context.Context, id int64) (model.NullCampaign, error)
	UpdateCampaignStatus(ctx context.Context, id int64, status model.CampaignStatus) error
	UpdateCampaignEndDate(ctx context.Context, id int64, endDate time.Time) error
	ListCampaignIDsByStatus(ctx context.Context, statuses []model.CampaignStatus) ([]int64, error)

	InsertPostalCodeLimits(ctx context.Context, limits []model.PostalCodeLimit) error
	GetPostalCodeLimits(ctx context.Context, campaignID int64) ([]model.PostalCodeLimit, error)

	InsertPause(ctx context.Context, pause model.CampaignPause) error
	GetOpenPause(ctx context.Context, campaignID int64) (model.NullCampaignPause, error)
	ClosePause(ctx context.Context, pauseID int64, resumedAt time.Time, pausedWeeks int) error
	ListPauses(ctx context.Context, campaignID int64) ([]model.CampaignPause, error)
}

type campaignImpl struct {
}

// NewCampaign ...
func NewCampaign() Campaign {
	return &campaignImpl{}
}

const campaignColumns = `id, company_id, product_id, name, status, targeting,
	mailing_frequency_weeks, mailing_drop_weeks, postal_limit_scope,
	start_date, end_date`

// InsertCampaign ...
func (c *campaignImpl) InsertCampaign(ctx context.Context, campaign model.Campaign) (int64, error) {
	query := `
INSERT INTO campaign (
	company_id, product_id, name, status, targeting,
	mailing_frequency_weeks, mailing_drop_weeks, postal_limit_scope,
	start_date, end_date
) VALUES (
	:company_id, :product_id, :name, :status, :targeting,
	:mailing_frequency_weeks, :mailing_drop_weeks, :postal_limit_scope,
	:start_date, :end_date
)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, campaign)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

func selectOneCampaign(ctx context.Context, db Readonly, query string, id int64) (model.NullCampaign, error) {
	var result []model.Campaign
	err := db.SelectContext(ctx, &result, query, id)
	if err != nil {
		return model.NullCampaign{}, err
	}
	if len(result) == 0 {
		return model.NullCampaign{}, nil
	}
	return model.NullCampaign{
		Valid:    true,
		Campaign: result[0],
	}, nil
}

// GetCampaign ...
func (c *campaignImpl) GetCampaign(ctx context.Context, id int64) (model.NullCampaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaign WHERE id = ?`
	return selectOneCampaign(ctx, GetReadonly(ctx), query, id)
}

// LockCampaign ...
func (c *campaignImpl) LockCampaign(ctx context.Context, id int64) (model.NullCampaign, error) {
	query := `SELECT ` + campaignColumns + ` FROM campaign WHERE id = ? FOR UPDATE`
	return selectOneCampaign(ctx, GetTx(ctx), query, id)
}

// UpdateCampaignStatus ...
func (c *campaignImpl) UpdateCampaignStatus(ctx context.Context, id int64, status model.CampaignStatus) error {
	query := `UPDATE campaign SET status = ? WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, status, id)
	return err
}

// UpdateCampaignEndDate ...
func (c *campaignImpl) UpdateCampaignEndDate(ctx context.Context, id int64, endDate time.Time) error {
	query := `UPDATE campaign SET end_date = ? WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, endDate, id)
	return err
}

// ListCampaignIDsByStatus ...
func (c *campaignImpl) ListCampaignIDsByStatus(
	ctx context.Context, statuses []model.CampaignStatus,
) ([]int64, error) {
	query, args, err := sq.Select("id").From("campaign").
		Where(sq.Eq{"status": statuses}).
		OrderBy("id").ToSql()
	if err != nil {
		return nil, err
	}

	var result []int64
	err = GetReadonly(ctx).SelectContext(ctx, &result, query, args...)
	return result, err
}

// InsertPostalCodeLimits ...
func (c *campaignImpl) InsertPostalCodeLimits(ctx context.Context, limits []model.PostalCodeLimit) error {
	if len(limits) == 0 {
		return nil
	}
	query := `
INSERT INTO postal_code_limit (campaign_id, postal_code, max_count)
VALUES (:campaign_id, :postal_code, :max_count)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, limits)
	return err
}

// GetPostalCodeLimits ...
func (c *campaignImpl) GetPostalCodeLimits(ctx context.Context, campaignID int64) ([]model.PostalCodeLimit, error) {
	query := `
SELECT campaign_id, postal_code, max_count
FROM postal_code_limit WHERE campaign_id = ?
ORDER BY postal_code
`
	var result []model.PostalCodeLimit
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, campaignID)
	return result, err
}

// InsertPause ...
func (c *campaignImpl) InsertPause(ctx context.Context, pause model.CampaignPause) error {
	query := `
INSERT INTO campaign_pause (campaign_id, paused_at, resumed_at, paused_weeks)
VALUES (:campaign_id, :paused_at, :resumed_at, :paused_weeks)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, pause)
	return err
}

const pauseColumns = `id, campaign_id, paused_at, resumed_at, paused_weeks`

// GetOpenPause ...
func (c *campaignImpl) GetOpenPause(ctx context.Context, campaignID int64) (model.NullCampaignPause, error) {
	query := `
SELECT ` + pauseColumns + ` FROM campaign_pause
WHERE campaign_id = ? AND resumed_at IS NULL
ORDER BY id DESC LIMIT 1
`
	var result []model.CampaignPause
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, campaignID)
	if err != nil {
		return model.NullCampaignPause{}, err
	}
	if len(result) == 0 {
		return model.NullCampaignPause{}, nil
	}
	return model.NullCampaignPause{
		Valid: true,
		Pause: result[0],
	}, nil
}

// ClosePause ...
func (c *campaignImpl) ClosePause(ctx context.Context, pauseID int64, resumedAt time.Time, pausedWeeks int) error {
	query := `UPDATE campaign_pause SET resumed_at = ?, paused_weeks = ? WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, resumedAt, pausedWeeks, pauseID)
	return err
}

// ListPauses ...
func (c *campaignImpl) ListPauses(ctx context.Context, campaignID int64) ([]model.CampaignPause, error) {
	query := `SELECT ` + pauseColumns + ` FROM campaign_pause WHERE campaign_id = ? ORDER BY id`
	var result []model.CampaignPause
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, campaignID)
	return result, err
}
