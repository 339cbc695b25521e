package api

import (
	"database/sql"
	"github.com/QuangTung97/mailing-scheduler/model"
	"github.com/QuangTung97/mailing-scheduler/service/lifecycle"
	"time"
)

const dateLayout = "2006-01-02"

type createCampaignRequest struct {
	CompanyID int64           `json:"company_id"`
	ProductID *int64          `json:"product_id"`
	Name      string          `json:"name"`
	Targeting model.Targeting `json:"targeting"`

	MailingFrequencyWeeks int    `json:"mailing_frequency_weeks"`
	MailingDropWeeks      []int  `json:"mailing_drop_weeks"`
	PostalLimitScope      string `json:"postal_limit_scope"`

	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`

	PostalCodeLimits map[string]int `json:"postal_code_limits"`
}

func (r createCampaignRequest) toInput() (lifecycle.CreateInput, error) {
	scope, ok := model.ParsePostalLimitScope(r.PostalLimitScope)
	if !ok {
		return lifecycle.CreateInput{}, newBadRequest("invalid postal_limit_scope %q", r.PostalLimitScope)
	}

	startDate, err := time.Parse(dateLayout, r.StartDate)
	if err != nil {
		return lifecycle.CreateInput{}, newBadRequest("invalid start_date %q", r.StartDate)
	}
	endDate, err := time.Parse(dateLayout, r.EndDate)
	if err != nil {
		return lifecycle.CreateInput{}, newBadRequest("invalid end_date %q", r.EndDate)
	}

	var productID sql.NullInt64
	if r.ProductID != nil {
		productID = sql.NullInt64{Valid: true, Int64: *r.ProductID}
	}

	return lifecycle.CreateInput{
		CompanyID: r.CompanyID,
		ProductID: productID,
		Name:      r.Name,
		Targeting: r.Targeting,

		MailingFrequencyWeeks: r.MailingFrequencyWeeks,
		MailingDropWeeks:      r.MailingDropWeeks,
		PostalLimitScope:      scope,

		StartDate: startDate,
		EndDate:   endDate,

		PostalCodeLimits: r.PostalCodeLimits,
	}, nil
}

type campaignResponse struct {
	ID        int64           `json:"id"`
	CompanyID int64           `json:"company_id"`
	ProductID *int64          `json:"product_id,omitempty"`
	Name      string          `json:"name"`
	Status    string          `json:"status"`
	Targeting model.Targeting `json:"targeting"`

	MailingFrequencyWeeks int    `json:"mailing_frequency_weeks"`
	MailingDropWeeks      []int  `json:"mailing_drop_weeks"`
	PostalLimitScope      string `json:"postal_limit_scope"`

	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

func toCampaignResponse(c model.Campaign) campaignResponse {
	var productID *int64
	if c.ProductID.Valid {
		id := c.ProductID.Int64
		productID = &id
	}

	return campaignResponse{
		ID:        c.ID,
		CompanyID: c.CompanyID,
		ProductID: productID,
		Name:      c.Name,
		Status:    c.Status.String(),
		Targeting: c.Targeting,

		MailingFrequencyWeeks: c.MailingFrequencyWeeks,
		MailingDropWeeks:      c.MailingDropWeeks,
		PostalLimitScope:      c.PostalLimitScope.String(),

		StartDate: c.StartDate.Format(dateLayout),
		EndDate:   c.EndDate.Format(dateLayout),
	}
}

type batchResponse struct {
	ID                 int64     `json:"id"`
	Reference          string    `json:"reference"`
	CampaignID         int64     `json:"campaign_id"`
	WeekID             int64     `json:"week_id"`
	WeekNumber         int       `json:"week_number"`
	Status             string    `json:"status"`
	ProspectsCount     int       `json:"prospects_count"`
	GenerationComplete bool      `json:"generation_complete"`
	CreatedAt          time.Time `json:"created_at"`
}

func toBatchResponse(b model.Batch) batchResponse {
	return batchResponse{
		ID:                 b.ID,
		Reference:          b.Reference,
		CampaignID:         b.CampaignID,
		WeekID:             b.WeekID,
		WeekNumber:         b.WeekNumber,
		Status:             b.Status.String(),
		ProspectsCount:     b.ProspectsCount,
		GenerationComplete: b.GenerationComplete,
		CreatedAt:          b.CreatedAt,
	}
}

type batchPageResponse struct {
	Batches  []batchResponse `json:"batches"`
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
}

func toBatchPageResponse(p lifecycle.BatchPage) batchPageResponse {
	batches := make([]batchResponse, 0, len(p.Batches))
	for _, b := range p.Batches {
		batches = append(batches, toBatchResponse(b))
	}
	return batchPageResponse{
		Batches:  batches,
		Total:    p.Total,
		Page:     p.Page,
		PageSize: p.PageSize,
	}
}

type batchProspectResponse struct {
	ProspectID int64  `json:"prospect_id"`
	PostalCode string `json:"postal_code"`
}

type batchProspectsResponse struct {
	BatchID   int64                   `json:"batch_id"`
	Prospects []batchProspectResponse `json:"prospects"`
}

func toBatchProspectsResponse(batchID int64, prospects []model.BatchProspect) batchProspectsResponse {
	result := make([]batchProspectResponse, 0, len(prospects))
	for _, p := range prospects {
		result = append(result, batchProspectResponse{
			ProspectID: p.ProspectID,
			PostalCode: p.PostalCode,
		})
	}
	return batchProspectsResponse{
		BatchID:   batchID,
		Prospects: result,
	}
}

type errorBody struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorBody `json:"error"`
}
