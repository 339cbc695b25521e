package relay

import (
	"context"
	"errors"
	"github.com/QuangTung97/mailing-scheduler/model"
	"github.com/QuangTung97/mailing-scheduler/repository"
	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
	"testing"
	"time"
)

func newContext() context.Context {
	return context.Background()
}

type relayTest struct {
	provider  *repository.ProviderMock
	eventRepo *repository.EventMock
	publisher *PublisherMock

	relay *Relay
}

func newRelayTest() *relayTest {
	r := &relayTest{
		provider:  &repository.ProviderMock{},
		eventRepo: &repository.EventMock{},
		publisher: &PublisherMock{},
	}

	r.provider.ReadonlyFunc = func(ctx context.Context) context.Context {
		return ctx
	}
	r.provider.TransactFunc = func(ctx context.Context, fn func(ctx context.Context) error) error {
		return fn(ctx)
	}
	r.eventRepo.MarkEventsPublishedFunc = func(ctx context.Context, ids []uint64, publishedAt time.Time) error {
		return nil
	}
	r.publisher.PublishFunc = func(ctx context.Context, msg Message) error {
		return nil
	}

	r.relay = NewRelay(r.provider, r.eventRepo, r.publisher, 10)
	r.relay.now = func() time.Time {
		return time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)
	}
	return r
}

func (r *relayTest) stubEvents(events ...model.Event) {
	r.eventRepo.GetUnpublishedEventsFunc = func(ctx context.Context, limit uint64) ([]model.Event, error) {
		return events, nil
	}
}

func TestRelay__Publish_Pending(t *testing.T) {
	r := newRelayTest()
	createdAt := time.Date(2024, 1, 8, 8, 0, 0, 0, time.UTC)
	r.stubEvents(
		model.Event{ID: 5, Type: model.EventTypeCampaignPaused, Data: []byte(`{"campaign_id":1}`), CreatedAt: createdAt},
		model.Event{ID: 6, Type: model.EventTypeBatchGenerated, Data: []byte(`{"batch_id":2}`), CreatedAt: createdAt},
	)

	n, err := r.relay.PublishPending(newContext())
	assert.Equal(t, nil, err)
	assert.Equal(t, 2, n)

	assert.Equal(t, uint64(10), r.eventRepo.GetUnpublishedEventsCalls()[0].Limit)

	calls := r.publisher.PublishCalls()
	assert.Equal(t, 2, len(calls))
	assert.Equal(t, Message{
		ID:         "5",
		RoutingKey: "campaign.paused",
		Body:       []byte(`{"campaign_id":1}`),
		CreatedAt:  createdAt,
	}, calls[0].Msg)
	assert.Equal(t, "batch.generated", calls[1].Msg.RoutingKey)

	markCalls := r.eventRepo.MarkEventsPublishedCalls()
	assert.Equal(t, 1, len(markCalls))
	assert.Equal(t, []uint64{5, 6}, markCalls[0].IDs)
	assert.Equal(t, time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC), markCalls[0].PublishedAt)
}

func TestRelay__Publish_Failed__Marks_Only_Sent(t *testing.T) {
	r := newRelayTest()
	r.stubEvents(
		model.Event{ID: 5, Type: model.EventTypeCampaignPaused},
		model.Event{ID: 6, Type: model.EventTypeCampaignResumed},
		model.Event{ID: 7, Type: model.EventTypeCampaignStopped},
	)

	brokerErr := errors.New("channel closed")
	r.publisher.PublishFunc = func(ctx context.Context, msg Message) error {
		if msg.ID == "6" {
			return brokerErr
		}
		return nil
	}

	n, err := r.relay.PublishPending(newContext())
	assert.Equal(t, brokerErr, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 2, len(r.publisher.PublishCalls()))
	assert.Equal(t, []uint64{5}, r.eventRepo.MarkEventsPublishedCalls()[0].IDs)
}

func TestRelay__Nothing_Pending(t *testing.T) {
	r := newRelayTest()
	r.stubEvents()

	n, err := r.relay.PublishPending(newContext())
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, n)
	assert.Equal(t, 0, len(r.provider.TransactCalls()))
}

func TestRelay__Run__Stops_On_Cancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := newRelayTest()
	r.stubEvents()

	ctx, cancel := context.WithCancel(newContext())
	done := make(chan struct{})
	go func() {
		defer close(done)
		r.relay.Run(ctx, 5*time.Millisecond)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()
	<-done

	assert.Equal(t, true, len(r.eventRepo.GetUnpublishedEventsCalls()) >= 2)
}
