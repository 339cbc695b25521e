package lifecycle

import (
	"context"
	"github.com/QuangTung97/mailing-scheduler/model"
	"github.com/QuangTung97/mailing-scheduler/pkg/apperrors"
	"github.com/QuangTung97/mailing-scheduler/repository"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// SortOrder of batches, by creation
type SortOrder string

const (
	// SortAsc ...
	SortAsc SortOrder = "asc"
	// SortDesc ...
	SortDesc SortOrder = "desc"
)

// PageQuery ...
type PageQuery struct {
	Page     int
	PageSize int
	Sort     SortOrder
}

// Normalize applies the default page size, clamps out of range values
func (q PageQuery) Normalize() PageQuery {
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize <= 0 {
		q.PageSize = defaultPageSize
	}
	if q.PageSize > maxPageSize {
		q.PageSize = maxPageSize
	}
	if q.Sort != SortDesc {
		q.Sort = SortAsc
	}
	return q
}

func (q PageQuery) toRepoPage() repository.Page {
	return repository.Page{
		Offset: uint64((q.Page - 1) * q.PageSize),
		Limit:  uint64(q.PageSize),
		Desc:   q.Sort == SortDesc,
	}
}

// BatchPage ...
type BatchPage struct {
	Batches  []model.Batch
	Total    int64
	Page     int
	PageSize int
}

// GetCampaignBatches returns one page of the batches of a campaign with their prospect counts
func (c *Controller) GetCampaignBatches(ctx context.Context, campaignID int64, query PageQuery) (BatchPage, error) {
	ctx = c.provider.Readonly(ctx)
	query = query.Normalize()

	nullCampaign, err := c.campaignRepo.GetCampaign(ctx, campaignID)
	if err != nil {
		return BatchPage{}, err
	}
	if !nullCampaign.Valid {
		return BatchPage{}, apperrors.ErrCampaignNotFound
	}

	total, err := c.batchRepo.CountBatches(ctx, campaignID)
	if err != nil {
		return BatchPage{}, err
	}

	batches, err := c.batchRepo.ListBatchesPage(ctx, campaignID, query.toRepoPage())
	if err != nil {
		return BatchPage{}, err
	}

	return BatchPage{
		Batches:  batches,
		Total:    total,
		Page:     query.Page,
		PageSize: query.PageSize,
	}, nil
}
