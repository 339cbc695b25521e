package batchgen

import (
	"context"
	"errors"
	"fmt"
	"github.com/QuangTung97/mailing-scheduler/model"
	"github.com/QuangTung97/mailing-scheduler/pkg/apperrors"
	"github.com/QuangTung97/mailing-scheduler/pkg/keylock"
	"github.com/QuangTung97/mailing-scheduler/repository"
	"github.com/QuangTung97/mailing-scheduler/service/allocator"
	"github.com/QuangTung97/mailing-scheduler/service/resolver"
	"github.com/google/uuid"
)

//go:generate otelwrap --out generator_wrappers.go . IGenerator
//go:generate moq -out batchgen_mocks.go . IGenerator

// IGenerator ...
type IGenerator interface {
	GenerateBatch(ctx context.Context, campaignID int64, weekID int64) (model.Batch, error)
}

// Generator creates the batch of one iteration week
type Generator struct {
	provider     repository.Provider
	campaignRepo repository.Campaign
	weekRepo     repository.IterationWeek
	batchRepo    repository.Batch
	eventRepo    repository.Event
	resolver     resolver.IResolver
	locker       keylock.Locker

	chunkSize    int
	newReference func() string
}

var _ IGenerator = &Generator{}

// NewGenerator creates a Generator, chunkSize <= 0 inserts every prospect in a single transaction
func NewGenerator(
	provider repository.Provider,
	campaignRepo repository.Campaign,
	weekRepo repository.IterationWeek,
	batchRepo repository.Batch,
	eventRepo repository.Event,
	targetResolver resolver.IResolver,
	locker keylock.Locker,
	chunkSize int,
) *Generator {
	return &Generator{
		provider:     provider,
		campaignRepo: campaignRepo,
		weekRepo:     weekRepo,
		batchRepo:    batchRepo,
		eventRepo:    eventRepo,
		resolver:     targetResolver,
		locker:       locker,

		chunkSize:    chunkSize,
		newReference: uuid.NewString,
	}
}

// LockKey is the key guarding the batch generation of a campaign
func LockKey(campaignID int64) string {
	return fmt.Sprintf("campaign:%d", campaignID)
}

type generateState struct {
	gen *Generator
	ctx context.Context

	campaignID int64
	weekID     int64

	campaign model.Campaign
	week     model.CampaignIterationWeek
	limits   allocator.Limits

	batch    model.Batch
	done     bool
	selected []model.ProspectRef

	err error
}

func (s *generateState) setError(err error) {
	s.err = err
}

func (s *generateState) doNext(fn func()) {
	if s.err != nil || s.done {
		return
	}
	fn()
}

func (s *generateState) lockCampaign() {
	nullCampaign, err := s.gen.campaignRepo.LockCampaign(s.ctx, s.campaignID)
	if err != nil {
		s.setError(err)
		return
	}
	if !nullCampaign.Valid {
		s.setError(apperrors.ErrCampaignNotFound)
		return
	}
	s.campaign = nullCampaign.Campaign
	if s.campaign.Status != model.CampaignStatusActive {
		s.setError(apperrors.NewInvalidLifecycleTransitionError(s.campaign.Status, "generate a batch for"))
	}
}

func (s *generateState) loadWeek() {
	nullWeek, err := s.gen.weekRepo.GetIterationWeek(s.ctx, s.weekID)
	if err != nil {
		s.setError(err)
		return
	}
	if !nullWeek.Valid || nullWeek.Week.CampaignID != s.campaignID {
		s.setError(apperrors.ErrIterationWeekNotFound)
		return
	}
	s.week = nullWeek.Week
	if !s.week.IsMailingWeek {
		s.setError(apperrors.NewScheduleConfigurationError(
			"week %d of campaign %d is not a mailing week", s.week.WeekNumber, s.campaignID))
	}
}

// checkPreviousBatches keeps batches in week order: every earlier mailing week
// must hold a complete or archived batch, and none may be half generated
func (s *generateState) checkPreviousBatches() {
	batches, err := s.gen.batchRepo.ListBatchesByCampaign(s.ctx, s.campaignID)
	if err != nil {
		s.setError(err)
		return
	}

	closed := make(map[int64]bool, len(batches))
	for _, b := range batches {
		if b.Status == model.BatchStatusArchived || b.GenerationComplete {
			closed[b.WeekID] = true
		}
		if b.WeekNumber >= s.week.WeekNumber {
			continue
		}
		if b.Status == model.BatchStatusNew && !b.GenerationComplete {
			s.setError(fmt.Errorf("batch of week %d is still being generated", b.WeekNumber))
			return
		}
	}

	weeks, err := s.gen.weekRepo.ListIterationWeeks(s.ctx, s.campaignID)
	if err != nil {
		s.setError(err)
		return
	}
	for _, w := range weeks {
		if !w.IsMailingWeek || w.WeekNumber >= s.week.WeekNumber {
			continue
		}
		if !closed[w.ID] {
			s.setError(apperrors.NewScheduleConfigurationError(
				"week %d of campaign %d has no batch yet, batches are generated in week order",
				w.WeekNumber, s.campaignID))
			return
		}
	}
}

func (s *generateState) findExistingBatch() {
	nullBatch, err := s.gen.batchRepo.FindActiveBatchByWeek(s.ctx, s.week.ID)
	if err != nil {
		s.setError(err)
		return
	}
	if !nullBatch.Valid {
		return
	}
	s.batch = nullBatch.Batch
	if s.batch.GenerationComplete {
		s.done = true
	}
}

func (s *generateState) loadLimits() {
	limits, err := s.gen.campaignRepo.GetPostalCodeLimits(s.ctx, s.campaignID)
	if err != nil {
		s.setError(err)
		return
	}
	s.limits = allocator.LimitsFromModel(limits)
}

func (s *generateState) allocate() {
	candidates, err := s.gen.resolver.ResolveCandidates(s.ctx, s.campaign)
	if err != nil {
		s.setError(err)
		return
	}

	mailed, err := s.gen.batchRepo.ListMailedProspects(s.ctx, s.campaignID)
	if err != nil {
		s.setError(err)
		return
	}

	mailedSet := make(map[int64]struct{}, len(mailed))
	for _, ref := range mailed {
		mailedSet[ref.ID] = struct{}{}
	}

	remaining := make([]model.ProspectRef, 0, len(candidates))
	for _, c := range candidates {
		if _, existed := mailedSet[c.ID]; existed {
			continue
		}
		remaining = append(remaining, c)
	}

	counts, err := s.currentCounts(mailed)
	if err != nil {
		s.setError(err)
		return
	}

	s.selected = allocator.Allocate(remaining, s.limits, counts)
}

func (s *generateState) currentCounts(mailed []model.ProspectRef) (allocator.Counts, error) {
	if s.campaign.PostalLimitScope != model.PostalLimitScopeIterationWeek {
		return allocator.CountByPostalCode(mailed), nil
	}
	if s.batch.ID == 0 {
		return allocator.Counts{}, nil
	}

	rows, err := s.gen.batchRepo.ListBatchProspects(s.ctx, s.batch.ID)
	if err != nil {
		return nil, err
	}
	refs := make([]model.ProspectRef, 0, len(rows))
	for _, row := range rows {
		refs = append(refs, model.ProspectRef{ID: row.ProspectID, PostalCode: row.PostalCode})
	}
	return allocator.CountByPostalCode(refs), nil
}

func (s *generateState) createBatch() {
	if s.batch.ID != 0 {
		return
	}

	batch := model.Batch{
		Reference:  s.gen.newReference(),
		CampaignID: s.campaignID,
		WeekID:     s.week.ID,
		WeekNumber: s.week.WeekNumber,
		Status:     model.BatchStatusNew,
	}
	id, err := s.gen.batchRepo.InsertBatch(s.ctx, batch)
	if err != nil {
		s.setError(err)
		return
	}
	batch.ID = id
	s.batch = batch
}

func (s *generateState) insertChunk() {
	chunk := s.selected
	if s.gen.chunkSize > 0 && len(chunk) > s.gen.chunkSize {
		chunk = chunk[:s.gen.chunkSize]
	}
	s.selected = s.selected[len(chunk):]

	if err := s.gen.insertProspects(s.ctx, &s.batch, chunk, len(s.selected) == 0); err != nil {
		s.setError(err)
	}
}

func (g *Generator) insertProspects(
	ctx context.Context, batch *model.Batch, chunk []model.ProspectRef, last bool,
) error {
	rows := make([]model.BatchProspect, 0, len(chunk))
	for _, ref := range chunk {
		rows = append(rows, model.BatchProspect{
			BatchID:    batch.ID,
			ProspectID: ref.ID,
			PostalCode: ref.PostalCode,
		})
	}

	inserted, err := g.batchRepo.InsertBatchProspects(ctx, rows)
	if err != nil {
		return err
	}

	batch.ProspectsCount += int(inserted)
	batch.GenerationComplete = last
	if err := g.batchRepo.UpdateBatchProgress(ctx, batch.ID, batch.ProspectsCount, last); err != nil {
		return err
	}
	if !last {
		return nil
	}

	event, err := model.NewEvent(model.EventTypeBatchGenerated, model.AggregateTypeBatch, batch.ID, model.BatchEventData{
		BatchID:        batch.ID,
		Reference:      batch.Reference,
		CampaignID:     batch.CampaignID,
		WeekNumber:     batch.WeekNumber,
		ProspectsCount: batch.ProspectsCount,
	})
	if err != nil {
		return err
	}
	return g.eventRepo.InsertEvent(ctx, event)
}

// GenerateBatch creates the batch of the iteration week, or finishes a partially generated one.
// Calling it again for a week whose batch is complete returns that batch unchanged.
func (g *Generator) GenerateBatch(ctx context.Context, campaignID int64, weekID int64) (model.Batch, error) {
	release, ok, err := g.locker.TryLock(ctx, LockKey(campaignID))
	if err != nil {
		return model.Batch{}, apperrors.NewBatchGenerationError(campaignID, 0, err)
	}
	if !ok {
		return model.Batch{}, apperrors.NewConcurrentGenerationConflictError(campaignID)
	}
	defer release()

	state := &generateState{
		gen:        g,
		campaignID: campaignID,
		weekID:     weekID,
	}

	err = g.provider.Transact(ctx, func(ctx context.Context) error {
		state.ctx = ctx

		state.doNext(state.lockCampaign)
		state.doNext(state.loadWeek)
		state.doNext(state.checkPreviousBatches)
		state.doNext(state.findExistingBatch)
		state.doNext(state.loadLimits)
		state.doNext(state.allocate)
		state.doNext(state.createBatch)
		state.doNext(state.insertChunk)

		return state.err
	})
	if err != nil {
		return model.Batch{}, g.wrapError(campaignID, state.week.WeekNumber, err)
	}

	for !state.done && !state.batch.GenerationComplete {
		err := g.provider.Transact(ctx, func(ctx context.Context) error {
			state.ctx = ctx

			if _, err := g.campaignRepo.LockCampaign(ctx, campaignID); err != nil {
				return err
			}
			state.insertChunk()
			return state.err
		})
		if err != nil {
			return model.Batch{}, g.wrapError(campaignID, state.week.WeekNumber, err)
		}
	}

	return state.batch, nil
}

func (g *Generator) wrapError(campaignID int64, weekNumber int, err error) error {
	var (
		scheduleErr   *apperrors.ScheduleConfigurationError
		targetErr     *apperrors.InvalidCampaignTargetError
		lifecycleErr  *apperrors.InvalidLifecycleTransitionError
		conflictErr   *apperrors.ConcurrentGenerationConflictError
		generationErr *apperrors.BatchGenerationError
	)

	switch {
	case errors.As(err, &scheduleErr),
		errors.As(err, &targetErr),
		errors.As(err, &lifecycleErr),
		errors.As(err, &conflictErr),
		errors.As(err, &generationErr),
		errors.Is(err, apperrors.ErrCampaignNotFound),
		errors.Is(err, apperrors.ErrIterationWeekNotFound):
		return err

	case repository.IsDuplicateKey(err):
		return apperrors.NewConcurrentGenerationConflictError(campaignID)

	default:
		return apperrors.NewBatchGenerationError(campaignID, weekNumber, err)
	}
}
