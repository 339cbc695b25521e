package lifecycle

import (
	"context"
	"database/sql"
	"fmt"
	"github.com/QuangTung97/mailing-scheduler/model"
	"github.com/QuangTung97/mailing-scheduler/pkg/apperrors"
	"github.com/QuangTung97/mailing-scheduler/pkg/otellib"
	"github.com/QuangTung97/mailing-scheduler/repository"
	"github.com/QuangTung97/mailing-scheduler/service/planner"
	"github.com/QuangTung97/mailing-scheduler/service/resolver"
	"go.uber.org/zap"
	"time"
)

//go:generate otelwrap --out controller_wrappers.go . IController
//go:generate moq -out lifecycle_mocks.go . IController HintInvalidator

// IController ...
type IController interface {
	CreateCampaign(ctx context.Context, input CreateInput) (model.Campaign, error)
	PauseCampaign(ctx context.Context, campaignID int64) (model.Campaign, error)
	ResumeCampaign(ctx context.Context, campaignID int64) (model.Campaign, error)
	StopCampaign(ctx context.Context, campaignID int64) (model.Campaign, error)
	CompleteCampaign(ctx context.Context, campaignID int64) (model.Campaign, error)

	ArchiveBatch(ctx context.Context, batchID int64) (model.Batch, error)
	GetCampaignBatches(ctx context.Context, campaignID int64, query PageQuery) (BatchPage, error)
	ListBatchProspects(ctx context.Context, batchID int64) ([]model.BatchProspect, error)
}

// HintInvalidator is notified after the schedule of a campaign changed
type HintInvalidator interface {
	Invalidate(campaignID int64)
}

// CreateInput ...
type CreateInput struct {
	CompanyID int64
	ProductID sql.NullInt64
	Name      string
	Targeting model.Targeting

	MailingFrequencyWeeks int
	MailingDropWeeks      model.DropWeeks
	PostalLimitScope      model.PostalLimitScope

	StartDate time.Time
	EndDate   time.Time

	PostalCodeLimits map[string]int
}

// Controller applies lifecycle transitions, each inside one transaction holding the campaign row lock
type Controller struct {
	provider     repository.Provider
	campaignRepo repository.Campaign
	weekRepo     repository.IterationWeek
	batchRepo    repository.Batch
	eventRepo    repository.Event
	resolver     resolver.IResolver
	hint         HintInvalidator

	now func() time.Time
}

var _ IController = &Controller{}

// NewController ...
func NewController(
	provider repository.Provider,
	campaignRepo repository.Campaign,
	weekRepo repository.IterationWeek,
	batchRepo repository.Batch,
	eventRepo repository.Event,
	targetResolver resolver.IResolver,
	hint HintInvalidator,
) *Controller {
	return &Controller{
		provider:     provider,
		campaignRepo: campaignRepo,
		weekRepo:     weekRepo,
		batchRepo:    batchRepo,
		eventRepo:    eventRepo,
		resolver:     targetResolver,
		hint:         hint,

		now: time.Now,
	}
}

func validateLimits(limits map[string]int) error {
	for postalCode, limit := range limits {
		if len(postalCode) < repository.MinPostalCodeLength {
			return apperrors.NewScheduleConfigurationError("invalid postal code %q", postalCode)
		}
		if limit < 0 {
			return apperrors.NewScheduleConfigurationError("limit of postal code %s is negative", postalCode)
		}
	}
	return nil
}

func (c *Controller) writeCampaignEvent(ctx context.Context, eventType model.EventType, campaign model.Campaign) error {
	return c.writeCampaignEventData(ctx, eventType, campaign, 0)
}

func (c *Controller) writeCampaignEventData(
	ctx context.Context, eventType model.EventType, campaign model.Campaign, pausedWeeks int,
) error {
	event, err := model.NewEvent(eventType, model.AggregateTypeCampaign, campaign.ID, model.CampaignEventData{
		CampaignID:  campaign.ID,
		Status:      campaign.Status.String(),
		EndDate:     campaign.EndDate,
		PausedWeeks: pausedWeeks,
	})
	if err != nil {
		return err
	}
	return c.eventRepo.InsertEvent(ctx, event)
}

// CreateCampaign validates the schedule and the targeting, then stores the campaign with its planned weeks
func (c *Controller) CreateCampaign(ctx context.Context, input CreateInput) (model.Campaign, error) {
	dropWeeks := input.MailingDropWeeks
	if len(dropWeeks) == 0 {
		dropWeeks = planner.DefaultDropWeeks()
	}
	scope := input.PostalLimitScope
	if scope == 0 {
		scope = model.PostalLimitScopeLifetime
	}

	campaign := model.Campaign{
		CompanyID: input.CompanyID,
		ProductID: input.ProductID,
		Name:      input.Name,
		Status:    model.CampaignStatusActive,
		Targeting: input.Targeting,

		MailingFrequencyWeeks: input.MailingFrequencyWeeks,
		MailingDropWeeks:      dropWeeks,
		PostalLimitScope:      scope,

		StartDate: input.StartDate,
		EndDate:   input.EndDate,
	}

	planInput := planner.FromCampaign(campaign, nil)
	if err := planner.Validate(planInput); err != nil {
		return model.Campaign{}, err
	}
	if n := planner.CountWeeks(campaign.StartDate, campaign.EndDate); n < campaign.MailingFrequencyWeeks {
		return model.Campaign{}, apperrors.NewScheduleConfigurationError(
			"campaign has %d weeks, fewer than the mailing frequency %d", n, campaign.MailingFrequencyWeeks)
	}
	if err := validateLimits(input.PostalCodeLimits); err != nil {
		return model.Campaign{}, err
	}

	planned, err := planner.PlanWeeks(planInput)
	if err != nil {
		return model.Campaign{}, err
	}

	err = c.provider.Transact(ctx, func(ctx context.Context) error {
		if err := c.resolver.ValidateTarget(ctx, campaign.CompanyID, campaign.Targeting); err != nil {
			return err
		}

		id, err := c.campaignRepo.InsertCampaign(ctx, campaign)
		if err != nil {
			return err
		}
		campaign.ID = id

		limits := make([]model.PostalCodeLimit, 0, len(input.PostalCodeLimits))
		for postalCode, limit := range input.PostalCodeLimits {
			limits = append(limits, model.PostalCodeLimit{
				CampaignID: id,
				PostalCode: postalCode,
				Limit:      limit,
			})
		}
		if err := c.campaignRepo.InsertPostalCodeLimits(ctx, limits); err != nil {
			return err
		}

		if err := c.weekRepo.UpsertIterationWeeks(ctx, planner.ToIterationWeeks(id, planned)); err != nil {
			return err
		}
		return c.writeCampaignEvent(ctx, model.EventTypeCampaignCreated, campaign)
	})
	if err != nil {
		return model.Campaign{}, err
	}

	otellib.Extract(ctx).Info("campaign created",
		zap.Int64("campaignID", campaign.ID),
		zap.Int("weeks", len(planned)),
	)
	return campaign, nil
}

func (c *Controller) lockForTransition(
	ctx context.Context, campaignID int64, action Action,
) (model.Campaign, model.CampaignStatus, error) {
	nullCampaign, err := c.campaignRepo.LockCampaign(ctx, campaignID)
	if err != nil {
		return model.Campaign{}, 0, err
	}
	if !nullCampaign.Valid {
		return model.Campaign{}, 0, apperrors.ErrCampaignNotFound
	}

	campaign := nullCampaign.Campaign
	next, err := CheckTransition(campaign.Status, action)
	if err != nil {
		return model.Campaign{}, 0, err
	}
	return campaign, next, nil
}

// PauseCampaign records the start of a pause, no batch is generated until the campaign is resumed
func (c *Controller) PauseCampaign(ctx context.Context, campaignID int64) (model.Campaign, error) {
	var campaign model.Campaign
	err := c.provider.Transact(ctx, func(ctx context.Context) error {
		current, next, err := c.lockForTransition(ctx, campaignID, ActionPause)
		if err != nil {
			return err
		}

		err = c.campaignRepo.InsertPause(ctx, model.CampaignPause{
			CampaignID: campaignID,
			PausedAt:   c.now().UTC(),
		})
		if err != nil {
			return err
		}

		if err := c.campaignRepo.UpdateCampaignStatus(ctx, campaignID, next); err != nil {
			return err
		}
		current.Status = next
		campaign = current

		return c.writeCampaignEvent(ctx, model.EventTypeCampaignPaused, campaign)
	})
	if err != nil {
		return model.Campaign{}, err
	}

	otellib.Extract(ctx).Info("campaign paused", zap.Int64("campaignID", campaignID))
	return campaign, nil
}

// ResumeCampaign closes the open pause, pushes the end date by the paused weeks and re-plans the remaining weeks
func (c *Controller) ResumeCampaign(ctx context.Context, campaignID int64) (model.Campaign, error) {
	var campaign model.Campaign
	var pausedWeeks int

	err := c.provider.Transact(ctx, func(ctx context.Context) error {
		current, next, err := c.lockForTransition(ctx, campaignID, ActionResume)
		if err != nil {
			return err
		}

		openPause, err := c.campaignRepo.GetOpenPause(ctx, campaignID)
		if err != nil {
			return err
		}
		if !openPause.Valid {
			return fmt.Errorf("campaign %d is paused without an open pause", campaignID)
		}

		resumedAt := c.now().UTC()
		if resumedAt.Before(openPause.Pause.PausedAt) {
			resumedAt = openPause.Pause.PausedAt
		}
		pausedWeeks = planner.PausedWeeks(current.StartDate, openPause.Pause.PausedAt, resumedAt)

		if err := c.campaignRepo.ClosePause(ctx, openPause.Pause.ID, resumedAt, pausedWeeks); err != nil {
			return err
		}

		current.EndDate = current.EndDate.AddDate(0, 0, 7*pausedWeeks)
		if err := c.campaignRepo.UpdateCampaignEndDate(ctx, campaignID, current.EndDate); err != nil {
			return err
		}

		pauses, err := c.campaignRepo.ListPauses(ctx, campaignID)
		if err != nil {
			return err
		}

		planned, err := planner.PlanWeeks(planner.FromCampaign(current, pauses))
		if err != nil {
			return err
		}
		weeks := planner.ToIterationWeeks(campaignID, planned)

		if err := c.weekRepo.UpsertIterationWeeks(ctx, weeks); err != nil {
			return err
		}
		if err := c.weekRepo.DeleteIterationWeeksAfter(ctx, campaignID, len(weeks)); err != nil {
			return err
		}

		if err := c.campaignRepo.UpdateCampaignStatus(ctx, campaignID, next); err != nil {
			return err
		}
		current.Status = next
		campaign = current

		return c.writeCampaignEventData(ctx, model.EventTypeCampaignResumed, campaign, pausedWeeks)
	})
	if err != nil {
		return model.Campaign{}, err
	}

	if c.hint != nil {
		c.hint.Invalidate(campaignID)
	}

	otellib.Extract(ctx).Info("campaign resumed",
		zap.Int64("campaignID", campaignID),
		zap.Int("pausedWeeks", pausedWeeks),
		zap.Time("endDate", campaign.EndDate),
	)
	return campaign, nil
}

// StopCampaign is terminal, batches whose generation is incomplete are archived
func (c *Controller) StopCampaign(ctx context.Context, campaignID int64) (model.Campaign, error) {
	var campaign model.Campaign
	var archived int64

	err := c.provider.Transact(ctx, func(ctx context.Context) error {
		current, next, err := c.lockForTransition(ctx, campaignID, ActionStop)
		if err != nil {
			return err
		}

		if err := c.campaignRepo.UpdateCampaignStatus(ctx, campaignID, next); err != nil {
			return err
		}

		archived, err = c.batchRepo.ArchiveIncompleteBatches(ctx, campaignID)
		if err != nil {
			return err
		}

		current.Status = next
		campaign = current
		return c.writeCampaignEvent(ctx, model.EventTypeCampaignStopped, campaign)
	})
	if err != nil {
		return model.Campaign{}, err
	}

	otellib.Extract(ctx).Info("campaign stopped",
		zap.Int64("campaignID", campaignID),
		zap.Int64("archivedBatches", archived),
	)
	return campaign, nil
}

// CompleteCampaign ...
func (c *Controller) CompleteCampaign(ctx context.Context, campaignID int64) (model.Campaign, error) {
	var campaign model.Campaign
	err := c.provider.Transact(ctx, func(ctx context.Context) error {
		current, next, err := c.lockForTransition(ctx, campaignID, ActionComplete)
		if err != nil {
			return err
		}

		if err := c.campaignRepo.UpdateCampaignStatus(ctx, campaignID, next); err != nil {
			return err
		}
		current.Status = next
		campaign = current

		return c.writeCampaignEvent(ctx, model.EventTypeCampaignCompleted, campaign)
	})
	if err != nil {
		return model.Campaign{}, err
	}

	otellib.Extract(ctx).Info("campaign completed", zap.Int64("campaignID", campaignID))
	return campaign, nil
}

// ArchiveBatch releases the prospects of a New batch for later weeks
func (c *Controller) ArchiveBatch(ctx context.Context, batchID int64) (model.Batch, error) {
	var batch model.Batch
	err := c.provider.Transact(ctx, func(ctx context.Context) error {
		nullBatch, err := c.batchRepo.GetBatch(ctx, batchID)
		if err != nil {
			return err
		}
		if !nullBatch.Valid {
			return apperrors.ErrBatchNotFound
		}

		if _, err := c.campaignRepo.LockCampaign(ctx, nullBatch.Batch.CampaignID); err != nil {
			return err
		}

		nullBatch, err = c.batchRepo.GetBatch(ctx, batchID)
		if err != nil {
			return err
		}
		batch = nullBatch.Batch

		if batch.Status != model.BatchStatusNew {
			return apperrors.NewInvalidBatchTransitionError(batch.Status, "archive")
		}

		if err := c.batchRepo.UpdateBatchStatus(ctx, batchID, model.BatchStatusArchived); err != nil {
			return err
		}
		batch.Status = model.BatchStatusArchived

		event, err := model.NewEvent(model.EventTypeBatchArchived, model.AggregateTypeBatch, batchID, model.BatchEventData{
			BatchID:        batch.ID,
			Reference:      batch.Reference,
			CampaignID:     batch.CampaignID,
			WeekNumber:     batch.WeekNumber,
			ProspectsCount: batch.ProspectsCount,
		})
		if err != nil {
			return err
		}
		return c.eventRepo.InsertEvent(ctx, event)
	})
	if err != nil {
		return model.Batch{}, err
	}

	otellib.Extract(ctx).Info("batch archived",
		zap.Int64("batchID", batchID),
		zap.Int64("campaignID", batch.CampaignID),
	)
	return batch, nil
}

// ListBatchProspects returns the prospects of a batch, used by the export feed
func (c *Controller) ListBatchProspects(ctx context.Context, batchID int64) ([]model.BatchProspect, error) {
	ctx = c.provider.Readonly(ctx)

	nullBatch, err := c.batchRepo.GetBatch(ctx, batchID)
	if err != nil {
		return nil, err
	}
	if !nullBatch.Valid {
		return nil, apperrors.ErrBatchNotFound
	}
	return c.batchRepo.ListBatchProspects(ctx, batchID)
}
