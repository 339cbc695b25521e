package repository

import (
	"context"
	"github.com/QuangTung97/mailing-scheduler/model"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func newWeek(number int, start string) model.CampaignIterationWeek {
	startDate := newDate(start)
	return model.CampaignIterationWeek{
		CampaignID:      1,
		WeekNumber:      number,
		IterationNumber: (number-1)/2 + 1,
		WeekInIteration: (number-1)%2 + 1,
		StartDate:       startDate,
		EndDate:         startDate.AddDate(0, 0, 6),
		IsMailingWeek:   number%2 == 1,
	}
}

func TestIterationWeek__Upsert_Keeps_IDs(t *testing.T) {
	tc := newCampaignTest()
	repo := NewIterationWeek()

	weeks := []model.CampaignIterationWeek{
		newWeek(1, "2024-01-01"),
		newWeek(2, "2024-01-08"),
		newWeek(3, "2024-01-15"),
	}

	err := tc.provider.Transact(newContext(), func(ctx context.Context) error {
		return repo.UpsertIterationWeeks(ctx, weeks)
	})
	assert.Equal(t, nil, err)

	ctx := tc.provider.Readonly(newContext())

	result, err := repo.ListIterationWeeks(ctx, 1)
	assert.Equal(t, nil, err)
	for i := range result {
		result[i].CreatedAt = time.Time{}
	}

	weeks[0].ID = 1
	weeks[1].ID = 2
	weeks[2].ID = 3
	assert.Equal(t, weeks, result)

	// Shift Week 2 And 3 By Two Weeks
	err = tc.provider.Transact(newContext(), func(ctx context.Context) error {
		err := repo.UpsertIterationWeeks(ctx, []model.CampaignIterationWeek{
			newWeek(2, "2024-01-22"),
		})
		if err != nil {
			return err
		}
		return repo.DeleteIterationWeeksAfter(ctx, 1, 2)
	})
	assert.Equal(t, nil, err)

	week, err := repo.GetIterationWeek(ctx, 2)
	assert.Equal(t, nil, err)
	assert.Equal(t, true, week.Valid)
	assert.Equal(t, newDate("2024-01-22"), week.Week.StartDate)
	assert.Equal(t, newDate("2024-01-28"), week.Week.EndDate)

	week, err = repo.GetIterationWeek(ctx, 3)
	assert.Equal(t, nil, err)
	assert.Equal(t, false, week.Valid)
}
