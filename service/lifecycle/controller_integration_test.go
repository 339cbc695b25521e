package lifecycle

import (
	"context"
	"errors"
	"github.com/QuangTung97/mailing-scheduler/model"
	"github.com/QuangTung97/mailing-scheduler/pkg/apperrors"
	"github.com/QuangTung97/mailing-scheduler/pkg/integration"
	"github.com/QuangTung97/mailing-scheduler/pkg/keylock"
	"github.com/QuangTung97/mailing-scheduler/pkg/memtable"
	"github.com/QuangTung97/mailing-scheduler/repository"
	"github.com/QuangTung97/mailing-scheduler/service/batchgen"
	"github.com/QuangTung97/mailing-scheduler/service/resolver"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

type lifecycleIntegration struct {
	tc       *integration.TestCase
	provider repository.Provider

	weekRepo  repository.IterationWeek
	batchRepo repository.Batch
	eventRepo repository.Event

	hint *memtable.MemTable
	ctrl *Controller
	gen  *batchgen.Generator
}

func newLifecycleIntegration() *lifecycleIntegration {
	tc := integration.NewTestCase()
	tc.TruncateScheduling()

	provider := repository.NewProvider(tc.DB)
	campaignRepo := repository.NewCampaign()
	weekRepo := repository.NewIterationWeek()
	batchRepo := repository.NewBatch()
	eventRepo := repository.NewEvent()
	targetResolver := resolver.NewResolver(repository.NewTarget(), repository.NewProspect())
	hint := memtable.New(512*1024, time.Hour)

	return &lifecycleIntegration{
		tc:       tc,
		provider: provider,

		weekRepo:  weekRepo,
		batchRepo: batchRepo,
		eventRepo: eventRepo,

		hint: hint,
		ctrl: NewController(provider, campaignRepo, weekRepo, batchRepo, eventRepo, targetResolver, hint),
		gen: batchgen.NewGenerator(provider, campaignRepo, weekRepo, batchRepo, eventRepo,
			targetResolver, keylock.NewLocal(), 0),
	}
}

func (l *lifecycleIntegration) setNow(s string) {
	l.ctrl.now = func() time.Time {
		return newTime(s)
	}
}

func (l *lifecycleIntegration) createCampaign(t *testing.T) model.Campaign {
	err := l.provider.Transact(newContext(), func(ctx context.Context) error {
		_, err := repository.NewTarget().InsertCompany(ctx, model.Company{Name: "Acme"})
		if err != nil {
			return err
		}
		return repository.NewProspect().InsertProspects(ctx, []model.Prospect{
			{
				ID: 1, CompanyID: 1, FullName: "first", PostalCode: "90210",
				AddressType: model.AddressTypeResidential, IsActive: true, LifetimeValue: decimal.Zero,
			},
			{
				ID: 2, CompanyID: 1, FullName: "second", PostalCode: "90210",
				AddressType: model.AddressTypeResidential, IsActive: true, LifetimeValue: decimal.Zero,
			},
		})
	})
	assert.Equal(t, nil, err)

	campaign, err := l.ctrl.CreateCampaign(newContext(), CreateInput{
		CompanyID:             1,
		Name:                  "Weekly",
		MailingFrequencyWeeks: 1,
		StartDate:             newDate("2024-01-01"),
		EndDate:               newDate("2024-03-31"),
		PostalCodeLimits:      map[string]int{"90210": 1},
	})
	assert.Equal(t, nil, err)
	return campaign
}

func (l *lifecycleIntegration) listWeeks(t *testing.T, campaignID int64) []model.CampaignIterationWeek {
	weeks, err := l.weekRepo.ListIterationWeeks(l.provider.Readonly(newContext()), campaignID)
	assert.Equal(t, nil, err)
	return weeks
}

func TestLifecycleIntegration__Pause_Resume__Extends_Schedule(t *testing.T) {
	l := newLifecycleIntegration()
	campaign := l.createCampaign(t)

	before := l.listWeeks(t, campaign.ID)
	assert.Equal(t, 13, len(before))

	l.setNow("2024-01-17T09:00:00Z")
	paused, err := l.ctrl.PauseCampaign(newContext(), campaign.ID)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.CampaignStatusPaused, paused.Status)

	l.hint.SetNextDue(campaign.ID, newDate("2024-01-22"))

	l.setNow("2024-02-07T10:00:00Z")
	resumed, err := l.ctrl.ResumeCampaign(newContext(), campaign.ID)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.CampaignStatusActive, resumed.Status)
	assert.Equal(t, newDate("2024-04-21"), resumed.EndDate)

	_, ok := l.hint.GetNextDue(campaign.ID)
	assert.Equal(t, false, ok)

	after := l.listWeeks(t, campaign.ID)
	assert.Equal(t, 13, len(after))

	// weeks before the pause keep their ids
	for i := 0; i < 3; i++ {
		assert.Equal(t, before[i].ID, after[i].ID)
		assert.Equal(t, before[i].StartDate, after[i].StartDate)
	}
	assert.Equal(t, newDate("2024-02-12"), after[3].StartDate)
	assert.Equal(t, newDate("2024-04-15"), after[12].StartDate)

	events, err := l.eventRepo.GetUnpublishedEvents(l.provider.Readonly(newContext()), 10)
	assert.Equal(t, nil, err)
	assert.Equal(t, 3, len(events))
	assert.Equal(t, model.EventTypeCampaignCreated, events[0].Type)
	assert.Equal(t, model.EventTypeCampaignPaused, events[1].Type)
	assert.Equal(t, model.EventTypeCampaignResumed, events[2].Type)
}

func TestLifecycleIntegration__Stop_Is_Terminal(t *testing.T) {
	l := newLifecycleIntegration()
	campaign := l.createCampaign(t)
	weeks := l.listWeeks(t, campaign.ID)

	_, err := l.gen.GenerateBatch(newContext(), campaign.ID, weeks[0].ID)
	assert.Equal(t, nil, err)

	stopped, err := l.ctrl.StopCampaign(newContext(), campaign.ID)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.CampaignStatusStopped, stopped.Status)

	var lifecycleErr *apperrors.InvalidLifecycleTransitionError

	_, err = l.ctrl.PauseCampaign(newContext(), campaign.ID)
	assert.Equal(t, true, errors.As(err, &lifecycleErr))

	_, err = l.ctrl.ResumeCampaign(newContext(), campaign.ID)
	assert.Equal(t, true, errors.As(err, &lifecycleErr))

	_, err = l.ctrl.StopCampaign(newContext(), campaign.ID)
	assert.Equal(t, true, errors.As(err, &lifecycleErr))

	_, err = l.gen.GenerateBatch(newContext(), campaign.ID, weeks[1].ID)
	assert.Equal(t, true, errors.As(err, &lifecycleErr))

	page, err := l.ctrl.GetCampaignBatches(newContext(), campaign.ID, PageQuery{})
	assert.Equal(t, nil, err)
	assert.Equal(t, int64(1), page.Total)
	assert.Equal(t, 1, page.Batches[0].ProspectsCount)
}

func TestLifecycleIntegration__Archive_Batch(t *testing.T) {
	l := newLifecycleIntegration()
	campaign := l.createCampaign(t)
	weeks := l.listWeeks(t, campaign.ID)

	batch, err := l.gen.GenerateBatch(newContext(), campaign.ID, weeks[0].ID)
	assert.Equal(t, nil, err)

	prospects, err := l.ctrl.ListBatchProspects(newContext(), batch.ID)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, len(prospects))
	assert.Equal(t, int64(1), prospects[0].ProspectID)

	archived, err := l.ctrl.ArchiveBatch(newContext(), batch.ID)
	assert.Equal(t, nil, err)
	assert.Equal(t, model.BatchStatusArchived, archived.Status)

	_, err = l.ctrl.ArchiveBatch(newContext(), batch.ID)
	assert.Equal(t, apperrors.NewInvalidBatchTransitionError(model.BatchStatusArchived, "archive"), err)

	// the limit of the postal code is available again for the next week
	next, err := l.gen.GenerateBatch(newContext(), campaign.ID, weeks[1].ID)
	assert.Equal(t, nil, err)
	assert.Equal(t, 1, next.ProspectsCount)
}
