package api

import (
	"context"
	"encoding/json"
	"github.com/QuangTung97/mailing-scheduler/model"
	"github.com/QuangTung97/mailing-scheduler/service/batchgen"
	"github.com/QuangTung97/mailing-scheduler/service/lifecycle"
	"github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"net/http"
	"strconv"
)

// Server is the HTTP JSON API of campaigns and batches
type Server struct {
	controller lifecycle.IController
	generator  batchgen.IGenerator
}

// NewServer ...
func NewServer(controller lifecycle.IController, generator batchgen.IGenerator) *Server {
	return &Server{
		controller: controller,
		generator:  generator,
	}
}

type route struct {
	method  string
	pattern string
	handler runtime.HandlerFunc
}

func (s *Server) routes() []route {
	return []route{
		{method: http.MethodPost, pattern: "/v1/campaigns", handler: s.createCampaign},
		{method: http.MethodPost, pattern: "/v1/campaigns/{id}/pause", handler: s.campaignAction(s.controller.PauseCampaign)},
		{method: http.MethodPost, pattern: "/v1/campaigns/{id}/resume", handler: s.campaignAction(s.controller.ResumeCampaign)},
		{method: http.MethodPost, pattern: "/v1/campaigns/{id}/stop", handler: s.campaignAction(s.controller.StopCampaign)},
		{method: http.MethodGet, pattern: "/v1/campaigns/{id}/batches", handler: s.getCampaignBatches},
		{method: http.MethodPost, pattern: "/v1/campaigns/{id}/weeks/{week_id}/batch", handler: s.generateBatch},
		{method: http.MethodPost, pattern: "/v1/batches/{id}/archive", handler: s.archiveBatch},
		{method: http.MethodGet, pattern: "/v1/batches/{id}/prospects", handler: s.listBatchProspects},
	}
}

// Register adds every route of the API to mux
func (s *Server) Register(mux *runtime.ServeMux) error {
	for _, r := range s.routes() {
		if err := mux.HandlePath(r.method, r.pattern, r.handler); err != nil {
			return err
		}
	}
	return nil
}

func parseID(pathParams map[string]string, name string) (int64, error) {
	value := pathParams[name]
	id, err := strconv.ParseInt(value, 10, 64)
	if err != nil || id <= 0 {
		return 0, newBadRequest("invalid %s %q", name, value)
	}
	return id, nil
}

func parsePageQuery(r *http.Request) (lifecycle.PageQuery, error) {
	values := r.URL.Query()

	var query lifecycle.PageQuery
	if s := values.Get("page"); s != "" {
		page, err := strconv.Atoi(s)
		if err != nil {
			return lifecycle.PageQuery{}, newBadRequest("invalid page %q", s)
		}
		query.Page = page
	}
	if s := values.Get("page_size"); s != "" {
		size, err := strconv.Atoi(s)
		if err != nil {
			return lifecycle.PageQuery{}, newBadRequest("invalid page_size %q", s)
		}
		query.PageSize = size
	}

	switch sort := lifecycle.SortOrder(values.Get("sort")); sort {
	case "", lifecycle.SortAsc, lifecycle.SortDesc:
		query.Sort = sort
	default:
		return lifecycle.PageQuery{}, newBadRequest("invalid sort %q", sort)
	}
	return query, nil
}

func (s *Server) createCampaign(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req createCampaignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, r, newBadRequest("invalid request body: %v", err))
		return
	}

	input, err := req.toInput()
	if err != nil {
		writeError(w, r, err)
		return
	}

	campaign, err := s.controller.CreateCampaign(r.Context(), input)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCampaignResponse(campaign))
}

type campaignActionFunc func(ctx context.Context, campaignID int64) (model.Campaign, error)

func (s *Server) campaignAction(fn campaignActionFunc) runtime.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
		id, err := parseID(pathParams, "id")
		if err != nil {
			writeError(w, r, err)
			return
		}

		campaign, err := fn(r.Context(), id)
		if err != nil {
			writeError(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, toCampaignResponse(campaign))
	}
}

func (s *Server) getCampaignBatches(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	id, err := parseID(pathParams, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	query, err := parsePageQuery(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	page, err := s.controller.GetCampaignBatches(r.Context(), id, query)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBatchPageResponse(page))
}

func (s *Server) generateBatch(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	campaignID, err := parseID(pathParams, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}
	weekID, err := parseID(pathParams, "week_id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	batch, err := s.generator.GenerateBatch(r.Context(), campaignID, weekID)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBatchResponse(batch))
}

func (s *Server) archiveBatch(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	id, err := parseID(pathParams, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	batch, err := s.controller.ArchiveBatch(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBatchResponse(batch))
}

func (s *Server) listBatchProspects(w http.ResponseWriter, r *http.Request, pathParams map[string]string) {
	id, err := parseID(pathParams, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	prospects, err := s.controller.ListBatchProspects(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toBatchProspectsResponse(id, prospects))
}
