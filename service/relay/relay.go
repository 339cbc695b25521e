package relay

import (
	"context"
	"github.com/QuangTung97/mailing-scheduler/pkg/otellib"
	"github.com/QuangTung97/mailing-scheduler/repository"
	"go.uber.org/zap"
	"strconv"
	"time"
)

// Relay moves events of the campaign_event outbox to the message broker.
// Delivery is at least once, an event is marked published only after the broker accepted it.
type Relay struct {
	provider  repository.Provider
	eventRepo repository.Event
	publisher Publisher
	batchSize uint64

	now func() time.Time
}

// NewRelay ...
func NewRelay(provider repository.Provider, eventRepo repository.Event, publisher Publisher, batchSize uint64) *Relay {
	if batchSize == 0 {
		batchSize = 100
	}
	return &Relay{
		provider:  provider,
		eventRepo: eventRepo,
		publisher: publisher,
		batchSize: batchSize,

		now: time.Now,
	}
}

// PublishPending publishes up to batchSize unpublished events in id order
func (r *Relay) PublishPending(ctx context.Context) (int, error) {
	events, err := r.eventRepo.GetUnpublishedEvents(r.provider.Readonly(ctx), r.batchSize)
	if err != nil {
		return 0, err
	}

	ids := make([]uint64, 0, len(events))
	var publishErr error
	for _, e := range events {
		publishErr = r.publisher.Publish(ctx, Message{
			ID:         strconv.FormatUint(e.ID, 10),
			RoutingKey: e.Type.RoutingKey(),
			Body:       e.Data,
			CreatedAt:  e.CreatedAt,
		})
		if publishErr != nil {
			break
		}
		ids = append(ids, e.ID)
	}

	if len(ids) > 0 {
		err := r.provider.Transact(ctx, func(ctx context.Context) error {
			return r.eventRepo.MarkEventsPublished(ctx, ids, r.now().UTC())
		})
		if err != nil {
			return 0, err
		}
	}
	return len(ids), publishErr
}

// Run publishes pending events every interval until ctx is cancelled
func (r *Relay) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		n, err := r.PublishPending(ctx)
		if err != nil && ctx.Err() == nil {
			otellib.Extract(ctx).Error("publish events", zap.Error(err))
		} else if n > 0 {
			otellib.Extract(ctx).Info("events published", zap.Int("count", n))
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
