package resolver

import (
	"context"
	"errors"
	"github.com/QuangTung97/mailing-scheduler/model"
	"github.com/QuangTung97/mailing-scheduler/pkg/apperrors"
	"github.com/QuangTung97/mailing-scheduler/repository"
	"github.com/stretchr/testify/assert"
	"testing"
	"time"
)

func newContext() context.Context {
	return context.Background()
}

type resolverTest struct {
	target   *repository.TargetMock
	prospect *repository.ProspectMock
	resolver *Resolver
}

func newResolverTest() *resolverTest {
	target := &repository.TargetMock{}
	prospect := &repository.ProspectMock{}

	r := NewResolver(target, prospect)
	r.now = func() time.Time {
		return time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	}

	target.GetCompanyFunc = func(ctx context.Context, id int64) (model.NullCompany, error) {
		return model.NullCompany{
			Valid:   true,
			Company: model.Company{ID: id, Name: "company"},
		}, nil
	}
	target.GetTradesFunc = func(ctx context.Context, ids []int64) ([]model.Trade, error) {
		var result []model.Trade
		for _, id := range ids {
			result = append(result, model.Trade{ID: id})
		}
		return result, nil
	}

	return &resolverTest{
		target:   target,
		prospect: prospect,
		resolver: r,
	}
}

func newCampaign() model.Campaign {
	return model.Campaign{
		ID:        1,
		CompanyID: 5,
		Targeting: model.Targeting{
			TradeIDs: []int64{2, 3},
		},
	}
}

func TestResolver__ResolveCandidates__Sorted_And_Deduplicated(t *testing.T) {
	r := newResolverTest()

	r.prospect.FindCandidatesFunc = func(
		ctx context.Context, companyID int64, targeting model.Targeting, now time.Time,
	) ([]model.ProspectRef, error) {
		return []model.ProspectRef{
			{ID: 8, PostalCode: "10001"},
			{ID: 3, PostalCode: "90210"},
			{ID: 8, PostalCode: "10001"},
			{ID: 1, PostalCode: "90210"},
		}, nil
	}

	result, err := r.resolver.ResolveCandidates(newContext(), newCampaign())
	assert.Equal(t, nil, err)
	assert.Equal(t, []model.ProspectRef{
		{ID: 1, PostalCode: "90210"},
		{ID: 3, PostalCode: "90210"},
		{ID: 8, PostalCode: "10001"},
	}, result)

	calls := r.prospect.FindCandidatesCalls()
	assert.Equal(t, 1, len(calls))
	assert.Equal(t, int64(5), calls[0].CompanyID)
	assert.Equal(t, []int64{2, 3}, calls[0].Targeting.TradeIDs)
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), calls[0].Now)

	assert.Equal(t, []int64{2, 3}, r.target.GetTradesCalls()[0].IDs)
}

func TestResolver__ResolveCandidates__Company_Not_Found(t *testing.T) {
	r := newResolverTest()

	r.target.GetCompanyFunc = func(ctx context.Context, id int64) (model.NullCompany, error) {
		return model.NullCompany{}, nil
	}

	result, err := r.resolver.ResolveCandidates(newContext(), newCampaign())
	assert.Equal(t, apperrors.NewInvalidCampaignTargetError("company 5 not found"), err)
	assert.Nil(t, result)
	assert.Equal(t, 0, len(r.prospect.FindCandidatesCalls()))
}

func TestResolver__ResolveCandidates__Company_Deleted(t *testing.T) {
	r := newResolverTest()

	r.target.GetCompanyFunc = func(ctx context.Context, id int64) (model.NullCompany, error) {
		return model.NullCompany{
			Valid:   true,
			Company: model.Company{ID: id, IsDeleted: true},
		}, nil
	}

	_, err := r.resolver.ResolveCandidates(newContext(), newCampaign())
	var targetErr *apperrors.InvalidCampaignTargetError
	assert.Equal(t, true, errors.As(err, &targetErr))
}

func TestResolver__ResolveCandidates__Trade_Missing_Or_Deleted(t *testing.T) {
	r := newResolverTest()

	r.target.GetTradesFunc = func(ctx context.Context, ids []int64) ([]model.Trade, error) {
		return []model.Trade{{ID: 2}}, nil
	}

	_, err := r.resolver.ResolveCandidates(newContext(), newCampaign())
	assert.Equal(t, apperrors.NewInvalidCampaignTargetError("trade 3 not found"), err)

	r.target.GetTradesFunc = func(ctx context.Context, ids []int64) ([]model.Trade, error) {
		return []model.Trade{{ID: 2, IsDeleted: true}, {ID: 3}}, nil
	}

	_, err = r.resolver.ResolveCandidates(newContext(), newCampaign())
	assert.Equal(t, apperrors.NewInvalidCampaignTargetError("trade 2 not found"), err)
}

func TestResolver__ValidateTarget__No_Trades(t *testing.T) {
	r := newResolverTest()

	err := r.resolver.ValidateTarget(newContext(), 5, model.Targeting{})
	assert.Equal(t, nil, err)
	assert.Equal(t, 0, len(r.target.GetTradesCalls()))
}

func TestResolver__ResolveCandidates__Repository_Error(t *testing.T) {
	r := newResolverTest()

	r.prospect.FindCandidatesFunc = func(
		ctx context.Context, companyID int64, targeting model.Targeting, now time.Time,
	) ([]model.ProspectRef, error) {
		return nil, errors.New("db error")
	}

	_, err := r.resolver.ResolveCandidates(newContext(), newCampaign())
	assert.Equal(t, errors.New("db error"), err)
}
