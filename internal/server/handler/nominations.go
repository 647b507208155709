// Package handler provides the HTTP handlers for the quality nomination API.
package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/sevigo/quality-warden/internal/core"
	"github.com/sevigo/quality-warden/internal/nomination"
)

// maxBodyBytes bounds the size of a nomination request body.
const maxBodyBytes = 1 << 20

// NominationService is the part of the nomination service exposed over HTTP.
type NominationService interface {
	Create(ctx context.Context, actorID int64, req nomination.CreateRequest) (*core.Nomination, error)
	ListAll(ctx context.Context, actorID int64, page nomination.PageRequest) ([]core.NominationSummary, error)
	ListAssignedToMe(ctx context.Context, actorID int64, page nomination.PageRequest) ([]core.NominationSummary, error)
	ListMine(ctx context.Context, actorID int64, page nomination.PageRequest) ([]core.NominationSummary, error)
	Details(ctx context.Context, actorID, nominationID int64) (*core.NominationDetails, error)
}

// NominationHandler serves the quality nomination endpoints.
type NominationHandler struct {
	service NominationService
	logger  *slog.Logger
}

// NewNominationHandler creates a new nomination handler.
func NewNominationHandler(service NominationService, logger *slog.Logger) *NominationHandler {
	return &NominationHandler{service: service, logger: logger}
}

type createBody struct {
	ProblemAlias string          `json:"problem_alias"`
	Nomination   string          `json:"nomination"`
	Contents     json.RawMessage `json:"contents"`
}

type createResponse struct {
	Status       string `json:"status"`
	NominationID int64  `json:"qualitynomination_id"`
}

type listResponse struct {
	Status      string                   `json:"status"`
	Nominations []core.NominationSummary `json:"nominations"`
}

type detailsResponse struct {
	Status     string                  `json:"status"`
	Nomination *core.NominationDetails `json:"nomination"`
}

// Create handles POST /quality-nominations.
func (h *NominationHandler) Create(w http.ResponseWriter, r *http.Request) {
	var body createBody
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, h.logger, core.ValidationError("body", core.KeyParameterInvalid))
		return
	}
	contents, err := unwrapContents(body.Contents)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}

	n, err := h.service.Create(r.Context(), ActorFromContext(r.Context()), nomination.CreateRequest{
		ProblemAlias: body.ProblemAlias,
		Nomination:   body.Nomination,
		Contents:     contents,
	})
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, createResponse{Status: "ok", NominationID: n.ID})
}

// ListAll handles GET /quality-nominations.
func (h *NominationHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.service.ListAll)
}

// ListAssigned handles GET /quality-nominations/assigned.
func (h *NominationHandler) ListAssigned(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.service.ListAssignedToMe)
}

// ListMine handles GET /quality-nominations/mine.
func (h *NominationHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	h.list(w, r, h.service.ListMine)
}

type listFunc func(ctx context.Context, actorID int64, page nomination.PageRequest) ([]core.NominationSummary, error)

func (h *NominationHandler) list(w http.ResponseWriter, r *http.Request, fn listFunc) {
	query := r.URL.Query()
	page := nomination.PageRequest{
		Page:     query.Get("page"),
		PageSize: query.Get("page_size"),
	}

	nominations, err := fn(r.Context(), ActorFromContext(r.Context()), page)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	if nominations == nil {
		nominations = []core.NominationSummary{}
	}
	writeJSON(w, http.StatusOK, listResponse{Status: "ok", Nominations: nominations})
}

// Details handles GET /quality-nominations/{id}.
func (h *NominationHandler) Details(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, h.logger, core.ValidationError("qualitynomination_id", core.KeyParameterInvalid))
		return
	}

	details, err := h.service.Details(r.Context(), ActorFromContext(r.Context()), id)
	if err != nil {
		writeError(w, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, detailsResponse{Status: "ok", Nomination: details})
}

// unwrapContents accepts contents either as a JSON object or as a string
// holding JSON, the form older clients send.
func unwrapContents(raw json.RawMessage) (json.RawMessage, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}
	if trimmed[0] != '"' {
		return trimmed, nil
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return nil, core.ValidationError("contents", core.KeyParameterInvalid)
	}
	return json.RawMessage(s), nil
}
