package repository

import (
	"context"
	sq "github.com/Masterminds/squirrel"
	"github.com/QuangTung97/mailing-scheduler/model"
)

// Target reads companies and trades referenced by campaign targeting
type Target interface {
	GetCompany(ctx context.Context, id int64) (model.NullCompany, error)
	GetTrades(ctx context.Context, ids []int64) ([]model.Trade, error)

	InsertCompany(ctx context.Context, company model.Company) (int64, error)
	InsertTrade(ctx context.Context, trade model.Trade) (int64, error)
}

type targetImpl struct {
}

// NewTarget ...
func NewTarget() Target {
	return &targetImpl{}
}

// GetCompany ...
func (r *targetImpl) GetCompany(ctx context.Context, id int64) (model.NullCompany, error) {
	query := `SELECT id, name, is_deleted FROM company WHERE id = ?`

	var result []model.Company
	err := GetReadonly(ctx).SelectContext(ctx, &result, query, id)
	if err != nil {
		return model.NullCompany{}, err
	}
	if len(result) == 0 {
		return model.NullCompany{}, nil
	}
	return model.NullCompany{
		Valid:   true,
		Company: result[0],
	}, nil
}

// GetTrades ...
func (r *targetImpl) GetTrades(ctx context.Context, ids []int64) ([]model.Trade, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	query, args, err := sq.Select("id", "name", "is_deleted").From("trade").
		Where(sq.Eq{"id": ids}).
		OrderBy("id").ToSql()
	if err != nil {
		return nil, err
	}

	var result []model.Trade
	err = GetReadonly(ctx).SelectContext(ctx, &result, query, args...)
	return result, err
}

// InsertCompany ...
func (r *targetImpl) InsertCompany(ctx context.Context, company model.Company) (int64, error) {
	query := `INSERT INTO company (name, is_deleted) VALUES (:name, :is_deleted)`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, company)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}

// InsertTrade ...
func (r *targetImpl) InsertTrade(ctx context.Context, trade model.Trade) (int64, error) {
	query := `INSERT INTO trade (name, is_deleted) VALUES (:name, :is_deleted)`
	result, err := GetTx(ctx).NamedExecContext(ctx, query, trade)
	if err != nil {
		return 0, err
	}
	return result.LastInsertId()
}
