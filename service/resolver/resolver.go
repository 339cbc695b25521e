package resolver

import (
	"context"
	"github.com/QuangTung97/mailing-scheduler/model"
	"github.com/QuangTung97/mailing-scheduler/pkg/apperrors"
	"github.com/QuangTung97/mailing-scheduler/repository"
	"sort"
	"time"
)

//go:generate moq -out resolver_mocks.go . IResolver

// IResolver ...
type IResolver interface {
	ValidateTarget(ctx context.Context, companyID int64, targeting model.Targeting) error
	ResolveCandidates(ctx context.Context, campaign model.Campaign) ([]model.ProspectRef, error)
}

// Resolver computes the prospect universe of a campaign
type Resolver struct {
	targetRepo   repository.Target
	prospectRepo repository.Prospect
	now          func() time.Time
}

var _ IResolver = &Resolver{}

// NewResolver ...
func NewResolver(targetRepo repository.Target, prospectRepo repository.Prospect) *Resolver {
	return &Resolver{
		targetRepo:   targetRepo,
		prospectRepo: prospectRepo,
		now:          time.Now,
	}
}

// ValidateTarget checks the company and every targeted trade exist and are not deleted
func (r *Resolver) ValidateTarget(ctx context.Context, companyID int64, targeting model.Targeting) error {
	company, err := r.targetRepo.GetCompany(ctx, companyID)
	if err != nil {
		return err
	}
	if !company.Valid || company.Company.IsDeleted {
		return apperrors.NewInvalidCampaignTargetError("company %d not found", companyID)
	}

	if len(targeting.TradeIDs) == 0 {
		return nil
	}

	trades, err := r.targetRepo.GetTrades(ctx, targeting.TradeIDs)
	if err != nil {
		return err
	}

	existed := make(map[int64]struct{}, len(trades))
	for _, trade := range trades {
		if trade.IsDeleted {
			continue
		}
		existed[trade.ID] = struct{}{}
	}
	for _, id := range targeting.TradeIDs {
		if _, ok := existed[id]; !ok {
			return apperrors.NewInvalidCampaignTargetError("trade %d not found", id)
		}
	}
	return nil
}

// ResolveCandidates returns mailable prospects matching the targeting, sorted by id without duplicates
func (r *Resolver) ResolveCandidates(ctx context.Context, campaign model.Campaign) ([]model.ProspectRef, error) {
	if err := r.ValidateTarget(ctx, campaign.CompanyID, campaign.Targeting); err != nil {
		return nil, err
	}

	candidates, err := r.prospectRepo.FindCandidates(ctx, campaign.CompanyID, campaign.Targeting, r.now())
	if err != nil {
		return nil, err
	}
	return sortAndDedup(candidates), nil
}

func sortAndDedup(refs []model.ProspectRef) []model.ProspectRef {
	sort.SliceStable(refs, func(i, j int) bool {
		return refs[i].ID < refs[j].ID
	})

	result := make([]model.ProspectRef, 0, len(refs))
	for _, ref := range refs {
		if len(result) > 0 && result[len(result)-1].ID == ref.ID {
			continue
		}
		result = append(result, ref)
	}
	return result
}
