package repository

import (
	"context"
	sq "github.com/Masterminds/squirrel"
	"github.com/QuangTung97/mailing-scheduler/model"
	"time"
)

// Event is the campaign event outbox
type Event interface {
	InsertEvent(ctx context.Context, event model.Event) error
	GetUnpublishedEvents(ctx context.Context, limit uint64) ([]model.Event, error)
	MarkEventsPublished(ctx context.Context, ids []uint64, publishedAt time.Time) error
}

type eventImpl struct {
}

// NewEvent ...
func NewEvent() Event {
	return &eventImpl{}
}

// InsertEvent ...
func (r *eventImpl) InsertEvent(ctx context.Context, event model.Event) error {
	query := `
INSERT INTO campaign_event (type, aggregate_type, aggregate_id, data)
VALUES (:type, :aggregate_type, :aggregate_id, :data)
`
	_, err := GetTx(ctx).NamedExecContext(ctx, query, event)
	return err
}

// GetUnpublishedEvents returns events in insertion order
func (r *eventImpl) GetUnpublishedEvents(ctx context.Context, limit uint64) ([]model.Event, error) {
	query, args, err := sq.Select(
		"id", "type", "aggregate_type", "aggregate_id", "data", "published_at", "created_at",
	).From("campaign_event").
		Where(sq.Eq{"published_at": nil}).
		OrderBy("id").Limit(limit).ToSql()
	if err != nil {
		return nil, err
	}

	var result []model.Event
	err = GetReadonly(ctx).SelectContext(ctx, &result, query, args...)
	return result, err
}

// MarkEventsPublished ...
func (r *eventImpl) MarkEventsPublished(ctx context.Context, ids []uint64, publishedAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	query, args, err := sq.Update("campaign_event").
		Set("published_at", publishedAt).
		Where(sq.Eq{"id": ids}).ToSql()
	if err != nil {
		return err
	}

	_, err = GetTx(ctx).ExecContext(ctx, query, args...)
	return err
}
