package repository

import (
	"context"
	"github.com/QuangTung97/mailing-scheduler/model"
)

// IterationWeek ...
type IterationWeek interface {
	UpsertIterationWeeks(ctx context.Context, weeks []model.CampaignIterationWeek) error
	DeleteIterationWeeksAfter(ctx context.Context, campaignID int64, weekNumber int) error
	GetIterationWeek(ctx context.Context, id int64) (model.NullCampaignIterationWeek, error)
	ListIterationWeeks(ctx context.Context, campaignID int64) ([]model.CampaignIterationWeek, error)
}

type iterationWeekImpl struct {
}

// NewIterationWeek ...
func NewIterationWeek() IterationWeek {
	return &iterationWeekImpl{}
}

// UpsertIterationWeeks keeps the id of an existing (campaign_id, week_number) row,
// so batches already referencing a week follow its new dates
func (r *iterationWeekImpl) UpsertIterationWeeks(ctx context.Context, weeks []model.CampaignIterationWeek) error {
	query := `
INSERT INTO campaign_iteration_week (
	campaign_id, week_number, iteration_number, week_in_iteration,
	start_date, end_date, is_mailing_week
) VALUES (
	:campaign_id, :week_number, :iteration_number, :week_in_iteration,
	:start_date, :end_date, :is_mailing_week
) AS NEW
ON DUPLICATE KEY UPDATE
	iteration_number = NEW.iteration_number,
	week_in_iteration = NEW.week_in_iteration,
	start_date = NEW.start_date,
	end_date = NEW.end_date,
	is_mailing_week = NEW.is_mailing_week
`
	tx := GetTx(ctx)
	for _, w := range weeks {
		_, err := tx.NamedExecContext(ctx, query, w)
		if err != nil {
			return err
		}
	}
	return nil
}

// DeleteIterationWeeksAfter deletes weeks having week_number > weekNumber
func (r *iterationWeekImpl) DeleteIterationWeeksAfter(ctx context.Context, campaignID int64, weekNumber int) error {
	query := `DELETE FROM campaign_iteration_week WHERE campaign_id = ? AND week_number > ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, campaignID, weekNumber)
	return err
}

const iterationWeekColumns = `id, campaign_id, week_number, iteration_number, week_in_iteration,
	start_date, end_date, is_mailing_week`

// GetIterationWeek ...
func (r *iterationWeekImpl) GetIterationWeek(ctx context.Context, id int64) (model.NullCampaignIterationWeek, error) {
	query := `SELECT ` + iterationWeekColumns + ` FROM campaign_iteration_week WHERE id = ?`

	var result []model.CampaignIterationWeek
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, id)
	if err != nil {
		return model.NullCampaignIterationWeek{}, err
	}
	if len(result) == 0 {
		return model.NullCampaignIterationWeek{}, nil
	}
	return model.NullCampaignIterationWeek{
		Valid: true,
		Week:  result[0],
	}, nil
}

// ListIterationWeeks returns weeks ordered by week number
func (r *iterationWeekImpl) ListIterationWeeks(
	ctx context.Context, campaignID int64,
) ([]model.CampaignIterationWeek, error) {
	query := `
SELECT ` + iterationWeekColumns + ` FROM campaign_iteration_week
WHERE campaign_id = ? ORDER BY week_number
`
	var result []model.CampaignIterationWeek
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, campaignID)
	return result, err
}
