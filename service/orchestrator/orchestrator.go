package orchestrator

import (
	"context"
	"github.com/QuangTung97/mailing-scheduler/model"
	"github.com/QuangTung97/mailing-scheduler/pkg/apperrors"
	"github.com/QuangTung97/mailing-scheduler/pkg/otellib"
	"github.com/QuangTung97/mailing-scheduler/pkg/util"
	"github.com/QuangTung97/mailing-scheduler/repository"
	"github.com/QuangTung97/mailing-scheduler/service/batchgen"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"sync"
	"time"
)

//go:generate moq -out orchestrator_mocks.go . Completer

// Completer moves a campaign whose mailing weeks are all batched to Completed
type Completer interface {
	CompleteCampaign(ctx context.Context, campaignID int64) (model.Campaign, error)
}

// HintCache remembers when a campaign has work to do next
type HintCache interface {
	GetNextDue(campaignID int64) (time.Time, bool)
	SetNextDue(campaignID int64, due time.Time)
	Invalidate(campaignID int64)
}

// Summary of one run
type Summary struct {
	Campaigns int
	Generated int
	Skipped   int
	Completed int
	Failed    int
}

func (s *Summary) add(other Summary) {
	s.Campaigns += other.Campaigns
	s.Generated += other.Generated
	s.Skipped += other.Skipped
	s.Completed += other.Completed
	s.Failed += other.Failed
}

// Orchestrator generates the due batches of every active campaign
type Orchestrator struct {
	provider     repository.Provider
	campaignRepo repository.Campaign
	weekRepo     repository.IterationWeek
	batchRepo    repository.Batch

	generator batchgen.IGenerator
	completer Completer
	hint      HintCache
	metrics   *Metrics

	numWorkers int
	now        func() time.Time
}

// NewOrchestrator ...
func NewOrchestrator(
	provider repository.Provider,
	campaignRepo repository.Campaign,
	weekRepo repository.IterationWeek,
	batchRepo repository.Batch,
	generator batchgen.IGenerator,
	completer Completer,
	hint HintCache,
	metrics *Metrics,
	numWorkers int,
) *Orchestrator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	return &Orchestrator{
		provider:     provider,
		campaignRepo: campaignRepo,
		weekRepo:     weekRepo,
		batchRepo:    batchRepo,

		generator: generator,
		completer: completer,
		hint:      hint,
		metrics:   metrics,

		numWorkers: numWorkers,
		now:        time.Now,
	}
}

// RunOnce processes every active campaign once. Campaigns are split into shards by id hash,
// one worker per shard. A failing campaign is logged and does not stop the others.
func (o *Orchestrator) RunOnce(ctx context.Context) (Summary, error) {
	start := o.now()
	defer func() {
		o.metrics.runDuration.Observe(o.now().Sub(start).Seconds())
	}()

	ids, err := o.campaignRepo.ListCampaignIDsByStatus(
		o.provider.Readonly(ctx), []model.CampaignStatus{model.CampaignStatusActive})
	if err != nil {
		return Summary{}, err
	}

	shards := make([][]int64, o.numWorkers)
	for _, id := range ids {
		shard := util.Shard(id, o.numWorkers)
		shards[shard] = append(shards[shard], id)
	}

	var mut sync.Mutex
	var summary Summary

	g, ctx := errgroup.WithContext(ctx)
	for _, shard := range shards {
		campaignIDs := shard
		if len(campaignIDs) == 0 {
			continue
		}

		g.Go(func() error {
			var local Summary
			defer func() {
				mut.Lock()
				summary.add(local)
				mut.Unlock()
			}()

			for _, id := range campaignIDs {
				if err := ctx.Err(); err != nil {
					return err
				}
				local.add(o.processCampaign(ctx, id))
			}
			return nil
		})
	}

	err = g.Wait()
	return summary, err
}

type weekState struct {
	week   model.CampaignIterationWeek
	closed bool
}

func (o *Orchestrator) loadWeeks(ctx context.Context, campaignID int64) ([]weekState, error) {
	ctx = o.provider.Readonly(ctx)

	weeks, err := o.weekRepo.ListIterationWeeks(ctx, campaignID)
	if err != nil {
		return nil, err
	}
	batches, err := o.batchRepo.ListBatchesByCampaign(ctx, campaignID)
	if err != nil {
		return nil, err
	}

	closed := make(map[int64]bool, len(batches))
	for _, b := range batches {
		if b.Status == model.BatchStatusArchived || b.GenerationComplete {
			closed[b.WeekID] = true
		}
	}

	result := make([]weekState, 0, len(weeks))
	for _, w := range weeks {
		if !w.IsMailingWeek {
			continue
		}
		result = append(result, weekState{week: w, closed: closed[w.ID]})
	}
	return result, nil
}

// processCampaign generates the batches of the started mailing weeks in week order,
// stopping at the first failure so week N+1 never goes before week N
func (o *Orchestrator) processCampaign(ctx context.Context, campaignID int64) Summary {
	logger := otellib.Extract(ctx).With(zap.Int64("campaignID", campaignID))
	summary := Summary{Campaigns: 1}
	now := o.now()

	if due, ok := o.hint.GetNextDue(campaignID); ok && now.Before(due) {
		o.metrics.campaignsSkipped.Inc()
		summary.Skipped++
		return summary
	}

	weeks, err := o.loadWeeks(ctx, campaignID)
	if err != nil {
		logger.Error("load campaign weeks", zap.Error(err))
		summary.Failed++
		return summary
	}

	for _, ws := range weeks {
		if ws.closed {
			continue
		}
		if ws.week.StartDate.After(now) {
			o.hint.SetNextDue(campaignID, ws.week.StartDate)
			return summary
		}

		batch, err := o.generator.GenerateBatch(ctx, campaignID, ws.week.ID)
		if err != nil {
			o.metrics.generationErrors.WithLabelValues(apperrors.Kind(err)).Inc()
			logger.Error("generate batch",
				zap.Int("weekNumber", ws.week.WeekNumber),
				zap.Bool("retryable", apperrors.IsRetryable(err)),
				zap.Error(err),
			)
			summary.Failed++
			return summary
		}

		o.metrics.batchesGenerated.Inc()
		o.metrics.prospectsSelected.Add(float64(batch.ProspectsCount))
		summary.Generated++

		logger.Info("batch generated",
			zap.Int64("batchID", batch.ID),
			zap.String("reference", batch.Reference),
			zap.Int("weekNumber", batch.WeekNumber),
			zap.Int("prospects", batch.ProspectsCount),
		)
	}

	if _, err := o.completer.CompleteCampaign(ctx, campaignID); err != nil {
		logger.Error("complete campaign", zap.Error(err))
		summary.Failed++
		return summary
	}
	o.hint.Invalidate(campaignID)
	o.metrics.campaignsCompleted.Inc()
	summary.Completed++
	return summary
}

// Run calls RunOnce every interval until ctx is cancelled
func (o *Orchestrator) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		o.runAndLog(ctx)

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (o *Orchestrator) runAndLog(ctx context.Context) {
	summary, err := o.RunOnce(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		otellib.Extract(ctx).Error("scheduler run", zap.Error(err))
		return
	}

	otellib.Extract(ctx).Info("scheduler run finished",
		zap.Int("campaigns", summary.Campaigns),
		zap.Int("generated", summary.Generated),
		zap.Int("skipped", summary.Skipped),
		zap.Int("completed", summary.Completed),
		zap.Int("failed", summary.Failed),
	)
}
