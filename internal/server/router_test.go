package server

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"github.com/sevigo/quality-warden/internal/core"
	"github.com/sevigo/quality-warden/internal/logger"
	"github.com/sevigo/quality-warden/internal/metrics"
	"github.com/sevigo/quality-warden/internal/nomination"
)

type noUsers struct{}

func (noUsers) UserByToken(context.Context, string) (*core.UserRef, error) {
	return nil, core.ErrNoRecord
}

type stubService struct{}

func (stubService) Create(context.Context, int64, nomination.CreateRequest) (*core.Nomination, error) {
	return nil, core.UnauthenticatedError()
}

func (stubService) ListAll(context.Context, int64, nomination.PageRequest) ([]core.NominationSummary, error) {
	return nil, core.UnauthenticatedError()
}

func (stubService) ListAssignedToMe(context.Context, int64, nomination.PageRequest) ([]core.NominationSummary, error) {
	return nil, core.UnauthenticatedError()
}

func (stubService) ListMine(context.Context, int64, nomination.PageRequest) ([]core.NominationSummary, error) {
	return nil, core.UnauthenticatedError()
}

func (stubService) Details(context.Context, int64, int64) (*core.NominationDetails, error) {
	return nil, core.UnauthenticatedError()
}

func TestRouter(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	m.ObserveCreated(core.KindPromotion, 2)
	router := NewRouter(stubService{}, noUsers{}, reg, logger.Discard())

	tests := []struct {
		name     string
		method   string
		target   string
		body     string
		wantCode int
		contains string
	}{
		{name: "health", method: http.MethodGet, target: "/health", wantCode: http.StatusOK, contains: "OK"},
		{name: "metrics", method: http.MethodGet, target: "/metrics", wantCode: http.StatusOK, contains: "quality_nominations_created_total"},
		{name: "create without token", method: http.MethodPost, target: "/api/v1/quality-nominations", body: `{"problem_alias":"a","nomination":"promotion","contents":{}}`, wantCode: http.StatusUnauthorized, contains: core.KeyUserNotLoggedIn},
		{name: "list without token", method: http.MethodGet, target: "/api/v1/quality-nominations", wantCode: http.StatusUnauthorized},
		{name: "mine without token", method: http.MethodGet, target: "/api/v1/quality-nominations/mine", wantCode: http.StatusUnauthorized},
		{name: "unknown route", method: http.MethodGet, target: "/api/v1/unknown", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.target, strings.NewReader(tt.body))
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
			if tt.contains != "" {
				assert.Contains(t, rec.Body.String(), tt.contains)
			}
		})
	}
}
