package repository

import (
	"context"
	"fmt"
	"github.com/QuangTung97/mailing-scheduler/model"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func newBatch(weekID int64, weekNumber int, reference string) model.Batch {
	return model.Batch{
		Reference:  reference,
		CampaignID: 1,
		WeekID:     weekID,
		WeekNumber: weekNumber,
		Status:     model.BatchStatusNew,
	}
}

func clearBatchTimes(batches ...model.Batch) []model.Batch {
	result := make([]model.Batch, 0, len(batches))
	for _, b := range batches {
		b.CreatedAt = time.Time{}
		b.UpdatedAt = time.Time{}
		result = append(result, b)
	}
	return result
}

func TestBatch__Insert_Find_Active(t *testing.T) {
	tc := newCampaignTest()
	repo := NewBatch()

	ctx := tc.provider.Readonly(newContext())

	nullBatch, err := repo.FindActiveBatchByWeek(ctx, 11)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, nullBatch.Valid)

	var id int64
	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		var err error
		id, err = repo.InsertBatch(ctx, newBatch(11, 1, "ref-01"))
		return err
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(1), id)

	nullBatch, err = repo.FindActiveBatchByWeek(ctx, 11)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, nullBatch.Valid)

	expected := newBatch(11, 1, "ref-01")
	expected.ID = 1
	assert.Equal(t, clearBatchTimes(expected), clearBatchTimes(nullBatch.Batch))

	// Duplicated Active Batch For The Same Week
	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		_, err := repo.InsertBatch(ctx, newBatch(11, 1, "ref-02"))
		return err
	})
	assert.Equal(t, true, IsDuplicateKey(err))

	// Archive Then Insert Again
	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		if err := repo.UpdateBatchStatus(ctx, 1, model.BatchStatusArchived); err != nil {
			return err
		}
		_, err := repo.InsertBatch(ctx, newBatch(11, 1, "ref-03"))
		return err
	})
	assert.Equal(t, nil, err)

	nullBatch, err = repo.FindActiveBatchByWeek(ctx, 11)
	assert.Equal(t, nil, err)
	assert.Equal(t, "ref-03", nullBatch.Batch.Reference)

	batches, err := repo.ListBatchesByCampaign(ctx, 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(batches))
	assert.Equal(t, model.BatchStatusArchived, batches[0].Status)
	assert.Equal(t, model.BatchStatusNew, batches[1].Status)
}

func TestBatch__Progress_And_Archive_Incomplete(t *testing.T) {
	tc := newCampaignTest()
	repo := NewBatch()

	err := tc.provider.Transact(newContext(), func(ctx context.Context) error {
		if _, err := repo.InsertBatch(ctx, newBatch(11, 1, "ref-01")); err != nil {
			return err
		}
		if _, err := repo.InsertBatch(ctx, newBatch(13, 3, "ref-02")); err != nil {
			return err
		}
		return repo.UpdateBatchProgress(ctx, 1, 20, true)
	})
	assert.Equal(t, nil, err)

	var archived int64
	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		var err error
		archived, err = repo.ArchiveIncompleteBatches(ctx, 1)
		return err
	})
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(1), archived)

	ctx := tc.provider.Readonly(newContext())

	b1, err := repo.GetBatch(ctx, 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, 20, b1.Batch.ProspectsCount)
	assert.Equal(t, true, b1.Batch.GenerationComplete)
	assert.Equal(t, model.BatchStatusNew, b1.Batch.Status)

	b2, err := repo.GetBatch(ctx, 2)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.BatchStatusArchived, b2.Batch.Status)
}

func TestBatch__Paging(t *testing.T) {
	tc := newCampaignTest()
	repo := NewBatch()

	err := tc.provider.Transact(newContext(), func(ctx context.Context) error {
		for i := 1; i <= 5; i++ {
			b := newBatch(int64(10+i), i, fmt.Sprintf("ref-%02d", i))
			if _, err := repo.InsertBatch(ctx, b); err != nil {
				return err
			}
		}
		return nil
	})
	assert.Equal(t, nil, err)

	ctx := tc.provider.Readonly(newContext())

	count, err := repo.CountBatches(ctx, 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(5), count)

	page, err := repo.ListBatchesPage(ctx, 1, Page{Offset: 2, Limit: 2})
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, len(page))
	assert.Equal(t, int64(3), page[0].ID)
	assert.Equal(t, int64(4), page[1].ID)

	page, err = repo.ListBatchesPage(ctx, 1, Page{Offset: 0, Limit: 2, Desc: true})
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(5), page[0].ID)
	assert.Equal(t, int64(4), page[1].ID)
}

func TestBatch__Prospects(t *testing.T) {
	tc := newCampaignTest()
	repo := NewBatch()

	err := tc.provider.Transact(newContext(), func(ctx context.Context) error {
		if _, err := repo.InsertBatch(ctx, newBatch(11, 1, "ref-01")); err != nil {
			return err
		}
		if _, err := repo.InsertBatch(ctx, newBatch(12, 2, "ref-02")); err != nil {
			return err
		}
		inserted, err := repo.InsertBatchProspects(ctx, []model.BatchProspect{
			{BatchID: 1, ProspectID: 30, PostalCode: "90210"},
			{BatchID: 1, ProspectID: 10, PostalCode: "10001"},
			{BatchID: 2, ProspectID: 20, PostalCode: "90210"},
		})
		assert.Equal(t, int64(3), inserted)
		return err
	})
	assert.Equal(t, nil, err)

	// Insert Again Is Ignored
	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		inserted, err := repo.InsertBatchProspects(ctx, []model.BatchProspect{
			{BatchID: 1, ProspectID: 10, PostalCode: "10001"},
			{BatchID: 1, ProspectID: 40, PostalCode: "10001"},
		})
		assert.Equal(t, int64(1), inserted)
		return err
	})
	assert.Equal(t, nil, err)

	ctx := tc.provider.Readonly(newContext())

	prospects, err := repo.ListBatchProspects(ctx, 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(prospects))
	assert.Equal(t, int64(10), prospects[0].ProspectID)
	assert.Equal(t, int64(30), prospects[1].ProspectID)
	assert.Equal(t, int64(40), prospects[2].ProspectID)

	mailed, err := repo.ListMailedProspects(ctx, 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, []model.ProspectRef{
		{ID: 10, PostalCode: "10001"},
		{ID: 20, PostalCode: "90210"},
		{ID: 30, PostalCode: "90210"},
		{ID: 40, PostalCode: "10001"},
	}, mailed)

	// Archived Batches Release Their Prospects
	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		return repo.UpdateBatchStatus(ctx, 1, model.BatchStatusArchived)
	})
	assert.Equal(t, nil, err)

	mailed, err = repo.ListMailedProspects(ctx, 1)
	assert.Equal(t, nil, err)
	assert.Equal(t, []model.ProspectRef{
		{ID: 20, PostalCode: "90210"},
	}, mailed)
}
