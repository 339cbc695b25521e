package repository

import (
	"context"
	sq "github.com/Masterminds/squirrel"
	"github.com/QuangTung97/mailing-scheduler/model"
)

// Page selects a slice of an ordered listing
type Page struct {
	Offset uint64
	Limit  uint64
	Desc   bool
}

// Batch ...
type Batch interface {
	InsertBatch(ctx context.Context, batch model.Batch) (int64, error)
	GetBatch(ctx context.Context, id int64) (model.NullBatch, error)
	FindActiveBatchByWeek(ctx context.Context, weekID int64) (model.NullBatch, error)
	ListBatchesByCampaign(ctx context.Context, campaignID int64) ([]model.Batch, error)
	CountBatches(ctx context.Context, campaignID int64) (int64, error)
	ListBatchesPage(ctx context.Context, campaignID int64, page Page) ([]model.Batch, error)
	UpdateBatchProgress(ctx context.Context, id int64, prospectsCount int, complete bool) error
	UpdateBatchStatus(ctx context.Context, id int64, status model.BatchStatus) error
	ArchiveIncompleteBatches(ctx context.Context, campaignID int64) (int64, error)

	// InsertBatchProspects returns the number of rows actually inserted
	InsertBatchProspects(ctx context.Context, prospects []model.BatchProspect) (int64, error)
	ListBatchProspects(ctx context.Context, batchID int64) ([]model.BatchProspect, error)
	ListMailedProspects(ctx context.Context, campaignID int64) ([]model.ProspectRef, error)
}

type batchImpl struct {
}

// NewBatch ...
func NewBatch() Batch {
	return &batchImpl{}
}

// InsertBatch ...
func (r *batchImpl) InsertBatch(ctx context.Context, batch model.Batch) (int64, error) {
	query := `
INSERT INTO batch (
	reference, campaign_id, campaign_iteration_week_id, week_number,
	batch_status_id, prospects_count, generation_complete
) VALUES (
	:reference, :campaign_id, :campaign_iteration_week_id, :week_number,
	:batch_status_id, :prospects_count, :generation_complete
)
`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, batch)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

const batchColumns = `id, reference, campaign_id, campaign_iteration_week_id, week_number,
	batch_status_id, prospects_count, generation_complete, created_at, updated_at`

func selectOneBatch(ctx context.Context, query string, args ...interface{}) (model.NullBatch, error) {
	var result []model.Batch
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, args...)
	if err != nil {
		return model.NullBatch{}, err
	}
	if len(result) == 0 {
		return model.NullBatch{}, nil
	}
	return model.NullBatch{
		Valid: true,
		Batch: result[0],
	}, nil
}

// GetBatch ...
func (r *batchImpl) GetBatch(ctx context.Context, id int64) (model.NullBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM batch WHERE id = ?`
	return selectOneBatch(ctx, query, id)
}

// FindActiveBatchByWeek returns the non-archived batch of a week
func (r *batchImpl) FindActiveBatchByWeek(ctx context.Context, weekID int64) (model.NullBatch, error) {
	query := `SELECT ` + batchColumns + ` FROM batch WHERE active_iteration_week_id = ?`
	return selectOneBatch(ctx, query, weekID)
}

// ListBatchesByCampaign ...
func (r *batchImpl) ListBatchesByCampaign(ctx context.Context, campaignID int64) ([]model.Batch, error) {
	query := `SELECT ` + batchColumns + ` FROM batch WHERE campaign_id = ? ORDER BY week_number, id`
	var result []model.Batch
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, campaignID)
	return result, err
}

// CountBatches ...
func (r *batchImpl) CountBatches(ctx context.Context, campaignID int64) (int64, error) {
	query := `SELECT COUNT(*) FROM batch WHERE campaign_id = ?`
	var count int64
	err := GetReadonly(ctx).GetContext(ctx, &count, query, campaignID)
	return count, err
}

// ListBatchesPage ...
func (r *batchImpl) ListBatchesPage(ctx context.Context, campaignID int64, page Page) ([]model.Batch, error) {
	order := "id ASC"
	if page.Desc {
		order = "id DESC"
	}

	query, args, err := sq.Select(batchColumns).From("batch").
		Where(sq.Eq{"campaign_id": campaignID}).
		OrderBy(order).
		Limit(page.Limit).Offset(page.Offset).
		ToSql()
	if err != nil {
		return nil, err
	}

	var result []model.Batch
	err = GetReadonly(ctx).SelectContext(ctx, &result, query, args...)
	return result, err
}

// UpdateBatchProgress ...
func (r *batchImpl) UpdateBatchProgress(ctx context.Context, id int64, prospectsCount int, complete bool) error {
	query := `UPDATE batch SET prospects_count = ?, generation_complete = ? WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, prospectsCount, complete, id)
	return err
}

// UpdateBatchStatus ...
func (r *batchImpl) UpdateBatchStatus(ctx context.Context, id int64, status model.BatchStatus) error {
	query := `UPDATE batch SET batch_status_id = ? WHERE id = ?`
	_, err := GetTx(ctx).ExecContext(ctx, query, status, id)
	return err
}

// ArchiveIncompleteBatches archives the batches of a campaign that never finished generating
func (r *batchImpl) ArchiveIncompleteBatches(ctx context.Context, campaignID int64) (int64, error) {
	query := `
UPDATE batch SET batch_status_id = ?
WHERE campaign_id = ? AND batch_status_id = ? AND generation_complete = FALSE
`
	result, err := GetTx(ctx).ExecContext(ctx, query,
		model.BatchStatusArchived, campaignID, model.BatchStatusNew)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

const insertProspectsChunkSize = 1000

// InsertBatchProspects ignores rows already in the batch
func (r *batchImpl) InsertBatchProspects(ctx context.Context, prospects []model.BatchProspect) (int64, error) {
	query := `
INSERT IGNORE INTO batch_prospect (batch_id, prospect_id, postal_code)
VALUES (:batch_id, :prospect_id, :postal_code)
`
	tx := GetTx(ctx)

	var inserted int64
	for len(prospects) > 0 {
		n := len(prospects)
		if n > insertProspectsChunkSize {
			n = insertProspectsChunkSize
		}

		result, err := tx.NamedExecContext(ctx, query, prospects[:n])
		if err != nil {
			return 0, err
		}
		affected, err := result.RowsAffected()
		if err != nil {
			return 0, err
		}
		inserted += affected
		prospects = prospects[n:]
	}
	return inserted, nil
}

// ListBatchProspects ...
func (r *batchImpl) ListBatchProspects(ctx context.Context, batchID int64) ([]model.BatchProspect, error) {
	query := `
SELECT batch_id, prospect_id, postal_code, created_at
FROM batch_prospect WHERE batch_id = ?
ORDER BY prospect_id
`
	var result []model.BatchProspect
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, batchID)
	return result, err
}

// ListMailedProspects returns the prospects of every non-archived batch of a campaign
func (r *batchImpl) ListMailedProspects(ctx context.Context, campaignID int64) ([]model.ProspectRef, error) {
	query := `
SELECT bp.prospect_id AS id, bp.postal_code
FROM batch_prospect bp
INNER JOIN batch b ON b.id = bp.batch_id
WHERE b.campaign_id = ? AND b.batch_status_id = ?
ORDER BY bp.prospect_id
`
	var result []model.ProspectRef
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, campaignID, model.BatchStatusNew)
	return result, err
}
