package api

import (
	"context"
	"database/sql"
	"errors"
	"github.com/QuangTung97/mailing-scheduler/model"
	"github.com/QuangTung97/mailing-scheduler/pkg/apperrors"
	"github.com/QuangTung97/mailing-scheduler/service/batchgen"
	"github.com/QuangTung97/mailing-scheduler/service/lifecycle"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/stretchr/testify/assert"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

type serverTest struct {
	controller *lifecycle.IControllerMock
	generator  *batchgen.IGeneratorMock
	mux        *runtime.ServeMux
}

func newServerTest(t *testing.T) *serverTest {
	s := &serverTest{
		controller: &lifecycle.IControllerMock{},
		generator:  &batchgen.IGeneratorMock{},
		mux:        runtime.NewServeMux(),
	}

	err := NewServer(s.controller, s.generator).Register(s.mux)
	assert.Equal(t, nil, err)
	return s
}

func (s *serverTest) do(method string, url string, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, url, nil)
	} else {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	s.mux.ServeHTTP(w, req)
	return w
}

func newDate(s string) time.Time {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return t
}

func activeCampaign() model.Campaign {
	return model.Campaign{
		ID:        7,
		CompanyID: 1,
		ProductID: sql.NullInt64{Valid: true, Int64: 3},
		Name:      "Spring",
		Status:    model.CampaignStatusActive,

		MailingFrequencyWeeks: 2,
		MailingDropWeeks:      model.DropWeeks{1},
		PostalLimitScope:      model.PostalLimitScopeLifetime,

		StartDate: newDate("2024-01-01"),
		EndDate:   newDate("2024-03-31"),
	}
}

func TestServer__Create_Campaign(t *testing.T) {
	s := newServerTest(t)
	s.controller.CreateCampaignFunc = func(ctx context.Context, input lifecycle.CreateInput) (model.Campaign, error) {
		return activeCampaign(), nil
	}

	w := s.do(http.MethodPost, "/v1/campaigns", `{
		"company_id": 1,
		"product_id": 3,
		"name": "Spring",
		"targeting": {"trade_ids": [5], "postal_codes": ["A0001"]},
		"mailing_frequency_weeks": 2,
		"mailing_drop_weeks": [1],
		"postal_limit_scope": "iteration_week",
		"start_date": "2024-01-01",
		"end_date": "2024-03-31",
		"postal_code_limits": {"A0001": 2}
	}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "application/json", w.Header().Get("Content-Type"))

	calls := s.controller.CreateCampaignCalls()
	assert.Equal(t, 1, len(calls))
	assert.Equal(t, lifecycle.CreateInput{
		CompanyID: 1,
		ProductID: sql.NullInt64{Valid: true, Int64: 3},
		Name:      "Spring",
		Targeting: model.Targeting{
			TradeIDs:    []int64{5},
			PostalCodes: []string{"A0001"},
		},

		MailingFrequencyWeeks: 2,
		MailingDropWeeks:      model.DropWeeks{1},
		PostalLimitScope:      model.PostalLimitScopeIterationWeek,

		StartDate: newDate("2024-01-01"),
		EndDate:   newDate("2024-03-31"),

		PostalCodeLimits: map[string]int{"A0001": 2},
	}, calls[0].Input)

	body := w.Body.String()
	assert.Equal(t, true, strings.Contains(body, `"id":7`))
	assert.Equal(t, true, strings.Contains(body, `"status":"active"`))
	assert.Equal(t, true, strings.Contains(body, `"start_date":"2024-01-01"`))
	assert.Equal(t, true, strings.Contains(body, `"postal_limit_scope":"lifetime"`))
}

func TestServer__Create_Campaign__Bad_Request(t *testing.T) {
	table := []struct {
		name string
		body string
	}{
		{name: "malformed json", body: `{"company_id":`},
		{name: "invalid scope", body: `{"postal_limit_scope":"monthly","start_date":"2024-01-01","end_date":"2024-02-01"}`},
		{name: "invalid start date", body: `{"start_date":"01/01/2024","end_date":"2024-02-01"}`},
		{name: "missing end date", body: `{"start_date":"2024-01-01"}`},
	}

	for _, e := range table {
		t.Run(e.name, func(t *testing.T) {
			s := newServerTest(t)

			w := s.do(http.MethodPost, "/v1/campaigns", e.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Equal(t, true, strings.Contains(w.Body.String(), `"kind":"bad_request"`))
			assert.Equal(t, 0, len(s.controller.CreateCampaignCalls()))
		})
	}
}

func TestServer__Create_Campaign__Schedule_Error(t *testing.T) {
	s := newServerTest(t)
	s.controller.CreateCampaignFunc = func(ctx context.Context, input lifecycle.CreateInput) (model.Campaign, error) {
		return model.Campaign{}, apperrors.NewScheduleConfigurationError("start date must be before end date")
	}

	w := s.do(http.MethodPost, "/v1/campaigns", `{"start_date":"2024-03-01","end_date":"2024-01-01"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t,
		`{"error":{"kind":"schedule_configuration","message":"schedule configuration: start date must be before end date"}}`+"\n",
		w.Body.String())
}

func TestServer__Campaign_Actions(t *testing.T) {
	s := newServerTest(t)

	var called []string
	s.controller.PauseCampaignFunc = func(ctx context.Context, campaignID int64) (model.Campaign, error) {
		called = append(called, "pause")
		c := activeCampaign()
		c.Status = model.CampaignStatusPaused
		return c, nil
	}
	s.controller.ResumeCampaignFunc = func(ctx context.Context, campaignID int64) (model.Campaign, error) {
		called = append(called, "resume")
		return activeCampaign(), nil
	}
	s.controller.StopCampaignFunc = func(ctx context.Context, campaignID int64) (model.Campaign, error) {
		called = append(called, "stop")
		c := activeCampaign()
		c.Status = model.CampaignStatusStopped
		return c, nil
	}

	w := s.do(http.MethodPost, "/v1/campaigns/7/pause", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, strings.Contains(w.Body.String(), `"status":"paused"`))
	assert.Equal(t, int64(7), s.controller.PauseCampaignCalls()[0].CampaignID)

	w = s.do(http.MethodPost, "/v1/campaigns/7/resume", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = s.do(http.MethodPost, "/v1/campaigns/7/stop", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, strings.Contains(w.Body.String(), `"status":"stopped"`))

	assert.Equal(t, []string{"pause", "resume", "stop"}, called)
}

func TestServer__Campaign_Action__Errors(t *testing.T) {
	table := []struct {
		name   string
		url    string
		err    error
		status int
		kind   string
	}{
		{
			name:   "invalid transition",
			url:    "/v1/campaigns/7/pause",
			err:    apperrors.NewInvalidLifecycleTransitionError(model.CampaignStatusStopped, "pause"),
			status: http.StatusConflict,
			kind:   "invalid_transition",
		},
		{
			name:   "not found",
			url:    "/v1/campaigns/7/pause",
			err:    apperrors.ErrCampaignNotFound,
			status: http.StatusNotFound,
			kind:   "not_found",
		},
		{
			name:   "unknown",
			url:    "/v1/campaigns/7/pause",
			err:    errors.New("connection reset"),
			status: http.StatusInternalServerError,
			kind:   "internal",
		},
		{
			name:   "invalid id",
			url:    "/v1/campaigns/abc/pause",
			status: http.StatusBadRequest,
			kind:   "bad_request",
		},
	}

	for _, e := range table {
		t.Run(e.name, func(t *testing.T) {
			s := newServerTest(t)
			s.controller.PauseCampaignFunc = func(ctx context.Context, campaignID int64) (model.Campaign, error) {
				return model.Campaign{}, e.err
			}

			w := s.do(http.MethodPost, e.url, "")
			assert.Equal(t, e.status, w.Code)
			assert.Equal(t, true, strings.Contains(w.Body.String(), `"kind":"`+e.kind+`"`))
		})
	}
}

func TestServer__Internal_Error__Hides_Message(t *testing.T) {
	s := newServerTest(t)
	s.controller.StopCampaignFunc = func(ctx context.Context, campaignID int64) (model.Campaign, error) {
		return model.Campaign{}, errors.New("dial tcp 10.0.0.3:3306: connection refused")
	}

	w := s.do(http.MethodPost, "/v1/campaigns/7/stop", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, `{"error":{"kind":"internal","message":"internal error"}}`+"\n", w.Body.String())
}

func TestServer__Get_Campaign_Batches(t *testing.T) {
	s := newServerTest(t)
	s.controller.GetCampaignBatchesFunc = func(
		ctx context.Context, campaignID int64, query lifecycle.PageQuery,
	) (lifecycle.BatchPage, error) {
		return lifecycle.BatchPage{
			Batches: []model.Batch{
				{ID: 22, Reference: "ref-22", CampaignID: 7, WeekNumber: 3, Status: model.BatchStatusArchived},
			},
			Total:    41,
			Page:     3,
			PageSize: 20,
		}, nil
	}

	w := s.do(http.MethodGet, "/v1/campaigns/7/batches?page=3&page_size=20&sort=desc", "")
	assert.Equal(t, http.StatusOK, w.Code)

	calls := s.controller.GetCampaignBatchesCalls()
	assert.Equal(t, 1, len(calls))
	assert.Equal(t, int64(7), calls[0].CampaignID)
	assert.Equal(t, lifecycle.PageQuery{Page: 3, PageSize: 20, Sort: lifecycle.SortDesc}, calls[0].Query)

	body := w.Body.String()
	assert.Equal(t, true, strings.Contains(body, `"total":41`))
	assert.Equal(t, true, strings.Contains(body, `"reference":"ref-22"`))
	assert.Equal(t, true, strings.Contains(body, `"status":"archived"`))
}

func TestServer__Get_Campaign_Batches__Invalid_Query(t *testing.T) {
	for _, query := range []string{"page=x", "page_size=1.5", "sort=random"} {
		s := newServerTest(t)

		w := s.do(http.MethodGet, "/v1/campaigns/7/batches?"+query, "")
		assert.Equal(t, http.StatusBadRequest, w.Code, query)
		assert.Equal(t, 0, len(s.controller.GetCampaignBatchesCalls()))
	}
}

func TestServer__Generate_Batch(t *testing.T) {
	s := newServerTest(t)
	s.generator.GenerateBatchFunc = func(ctx context.Context, campaignID int64, weekID int64) (model.Batch, error) {
		return model.Batch{
			ID: 30, CampaignID: campaignID, WeekID: weekID, WeekNumber: 2,
			Status: model.BatchStatusNew, ProspectsCount: 6, GenerationComplete: true,
		}, nil
	}

	w := s.do(http.MethodPost, "/v1/campaigns/7/weeks/702/batch", "")
	assert.Equal(t, http.StatusOK, w.Code)

	calls := s.generator.GenerateBatchCalls()
	assert.Equal(t, 1, len(calls))
	assert.Equal(t, int64(7), calls[0].CampaignID)
	assert.Equal(t, int64(702), calls[0].WeekID)

	body := w.Body.String()
	assert.Equal(t, true, strings.Contains(body, `"prospects_count":6`))
	assert.Equal(t, true, strings.Contains(body, `"generation_complete":true`))
}

func TestServer__Generate_Batch__Errors(t *testing.T) {
	table := []struct {
		name   string
		err    error
		status int
	}{
		{name: "conflict", err: apperrors.NewConcurrentGenerationConflictError(7), status: http.StatusConflict},
		{
			name:   "generation",
			err:    apperrors.NewBatchGenerationError(7, 2, errors.New("deadlock")),
			status: http.StatusServiceUnavailable,
		},
		{name: "week not found", err: apperrors.ErrIterationWeekNotFound, status: http.StatusNotFound},
		{
			name:   "target",
			err:    apperrors.NewInvalidCampaignTargetError("trade %d not found", 5),
			status: http.StatusUnprocessableEntity,
		},
	}

	for _, e := range table {
		t.Run(e.name, func(t *testing.T) {
			s := newServerTest(t)
			s.generator.GenerateBatchFunc = func(ctx context.Context, campaignID int64, weekID int64) (model.Batch, error) {
				return model.Batch{}, e.err
			}

			w := s.do(http.MethodPost, "/v1/campaigns/7/weeks/702/batch", "")
			assert.Equal(t, e.status, w.Code)
		})
	}
}

func TestServer__Archive_Batch(t *testing.T) {
	s := newServerTest(t)
	s.controller.ArchiveBatchFunc = func(ctx context.Context, batchID int64) (model.Batch, error) {
		return model.Batch{ID: batchID, Status: model.BatchStatusArchived}, nil
	}

	w := s.do(http.MethodPost, "/v1/batches/22/archive", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(22), s.controller.ArchiveBatchCalls()[0].BatchID)
	assert.Equal(t, true, strings.Contains(w.Body.String(), `"status":"archived"`))
}

func TestServer__List_Batch_Prospects(t *testing.T) {
	s := newServerTest(t)
	s.controller.ListBatchProspectsFunc = func(ctx context.Context, batchID int64) ([]model.BatchProspect, error) {
		return []model.BatchProspect{
			{BatchID: batchID, ProspectID: 1, PostalCode: "A0001"},
			{BatchID: batchID, ProspectID: 5, PostalCode: "B0001"},
		}, nil
	}

	w := s.do(http.MethodGet, "/v1/batches/22/prospects", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t,
		`{"batch_id":22,"prospects":[{"prospect_id":1,"postal_code":"A0001"},{"prospect_id":5,"postal_code":"B0001"}]}`+"\n",
		w.Body.String())
}

func TestServer__List_Batch_Prospects__Not_Found(t *testing.T) {
	s := newServerTest(t)
	s.controller.ListBatchProspectsFunc = func(ctx context.Context, batchID int64) ([]model.BatchProspect, error) {
		return nil, apperrors.ErrBatchNotFound
	}

	w := s.do(http.MethodGet, "/v1/batches/22/prospects", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, `{"error":{"kind":"not_found","message":"batch not found"}}`+"\n", w.Body.String())
}
