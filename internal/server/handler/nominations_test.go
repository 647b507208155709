package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/quality-warden/internal/core"
	"github.com/sevigo/quality-warden/internal/logger"
	"github.com/sevigo/quality-warden/internal/nomination"
)

type fakeService struct {
	actor   int64
	created nomination.CreateRequest
	page    nomination.PageRequest
	mode    string
	err     error
	list    []core.NominationSummary
	details *core.NominationDetails
}

func (f *fakeService) Create(_ context.Context, actorID int64, req nomination.CreateRequest) (*core.Nomination, error) {
	f.actor, f.created = actorID, req
	if f.err != nil {
		return nil, f.err
	}
	return &core.Nomination{ID: 42}, nil
}

func (f *fakeService) record(mode string, actorID int64, page nomination.PageRequest) ([]core.NominationSummary, error) {
	f.mode, f.actor, f.page = mode, actorID, page
	return f.list, f.err
}

func (f *fakeService) ListAll(_ context.Context, actorID int64, page nomination.PageRequest) ([]core.NominationSummary, error) {
	return f.record("all", actorID, page)
}

func (f *fakeService) ListAssignedToMe(_ context.Context, actorID int64, page nomination.PageRequest) ([]core.NominationSummary, error) {
	return f.record("assigned", actorID, page)
}

func (f *fakeService) ListMine(_ context.Context, actorID int64, page nomination.PageRequest) ([]core.NominationSummary, error) {
	return f.record("mine", actorID, page)
}

func (f *fakeService) Details(_ context.Context, actorID, _ int64) (*core.NominationDetails, error) {
	f.actor = actorID
	return f.details, f.err
}

type fakeUsers map[string]int64

func (f fakeUsers) UserByToken(_ context.Context, token string) (*core.UserRef, error) {
	if token == "broken" {
		return nil, errors.New("connection reset")
	}
	id, ok := f[token]
	if !ok {
		return nil, core.ErrNoRecord
	}
	return &core.UserRef{UserID: id}, nil
}

func newTestRouter(svc *fakeService) http.Handler {
	log := logger.Discard()
	h := NewNominationHandler(svc, log)
	r := chi.NewRouter()
	r.Use(Authenticate(fakeUsers{"tok-alice": 1}, log))
	r.Post("/quality-nominations", h.Create)
	r.Get("/quality-nominations", h.ListAll)
	r.Get("/quality-nominations/assigned", h.ListAssigned)
	r.Get("/quality-nominations/mine", h.ListMine)
	r.Get("/quality-nominations/{id}", h.Details)
	return r
}

func do(t *testing.T, h http.Handler, method, target, token, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestCreate_ContentsAsObjectOrString(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "object", body: `{"problem_alias":"aplusb","nomination":"demotion","contents":{"rationale":"r","reason":"offensive"}}`},
		{name: "string", body: `{"problem_alias":"aplusb","nomination":"demotion","contents":"{\"rationale\":\"r\",\"reason\":\"offensive\"}"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{}
			rec := do(t, newTestRouter(svc), http.MethodPost, "/quality-nominations", "tok-alice", tt.body)

			assert.Equal(t, http.StatusCreated, rec.Code)
			assert.Equal(t, "ok", decode(t, rec)["status"])
			assert.InDelta(t, 42, decode(t, rec)["qualitynomination_id"], 0)
			assert.Equal(t, int64(1), svc.actor)
			assert.Equal(t, "aplusb", svc.created.ProblemAlias)
			assert.Equal(t, "demotion", svc.created.Nomination)
			assert.JSONEq(t, `{"rationale":"r","reason":"offensive"}`, string(svc.created.Contents))
		})
	}
}

func TestCreate_MalformedBody(t *testing.T) {
	svc := &fakeService{}
	rec := do(t, newTestRouter(svc), http.MethodPost, "/quality-nominations", "tok-alice", `{"problem_alias":`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, core.KeyParameterInvalid, body["error"])
	assert.Equal(t, "body", body["parameter"])
}

func TestCreate_OversizedBody(t *testing.T) {
	svc := &fakeService{actor: -1}
	padding := strings.Repeat(" ", maxBodyBytes)
	body := `{"problem_alias":"aplusb","nomination":"demotion",` + padding +
		`"contents":{"rationale":"r","reason":"offensive"}}`

	rec := do(t, newTestRouter(svc), http.MethodPost, "/quality-nominations", "tok-alice", body)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, core.KeyParameterInvalid, decode(t, rec)["error"])
	assert.Equal(t, int64(-1), svc.actor, "service must not be called")
}

func TestLockdownAnswersBeforeTokenLookupFailure(t *testing.T) {
	svc := &fakeService{err: core.ForbiddenError(core.KeyLockdown)}
	rec := do(t, newTestRouter(svc), http.MethodGet, "/quality-nominations/mine", "broken", "")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, core.KeyLockdown, decode(t, rec)["error"])
	assert.Equal(t, int64(0), svc.actor)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		key    string
	}{
		{name: "validation", err: core.ValidationError("contents.tags", core.KeyParameterInvalid), status: http.StatusBadRequest, key: core.KeyParameterInvalid},
		{name: "not found", err: core.NotFoundError(core.KeyProblemNotFound), status: http.StatusNotFound, key: core.KeyProblemNotFound},
		{name: "precondition", err: core.PreconditionFailedError(core.KeyMustHaveSolved), status: http.StatusPreconditionFailed, key: core.KeyMustHaveSolved},
		{name: "forbidden", err: core.ForbiddenError(core.KeyLockdown), status: http.StatusForbidden, key: core.KeyLockdown},
		{name: "unauthenticated", err: core.UnauthenticatedError(), status: http.StatusUnauthorized, key: core.KeyUserNotLoggedIn},
		{name: "operation failed", err: core.OperationFailedError("store nomination", errors.New("secret dsn")), status: http.StatusInternalServerError, key: core.KeyGeneralError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{err: tt.err}
			rec := do(t, newTestRouter(svc), http.MethodPost, "/quality-nominations", "tok-alice",
				`{"problem_alias":"aplusb","nomination":"promotion","contents":{}}`)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, tt.key, decode(t, rec)["error"])
			assert.NotContains(t, rec.Body.String(), "secret dsn")
		})
	}
}

func TestList_PassesModeAndPage(t *testing.T) {
	tests := []struct {
		target string
		mode   string
	}{
		{target: "/quality-nominations?page=2&page_size=10", mode: "all"},
		{target: "/quality-nominations/assigned?page=2&page_size=10", mode: "assigned"},
		{target: "/quality-nominations/mine?page=2&page_size=10", mode: "mine"},
	}

	for _, tt := range tests {
		t.Run(tt.mode, func(t *testing.T) {
			svc := &fakeService{}
			rec := do(t, newTestRouter(svc), http.MethodGet, tt.target, "tok-alice", "")

			require.Equal(t, http.StatusOK, rec.Code)
			assert.Equal(t, tt.mode, svc.mode)
			assert.Equal(t, nomination.PageRequest{Page: "2", PageSize: "10"}, svc.page)
			assert.JSONEq(t, `{"status":"ok","nominations":[]}`, rec.Body.String())
		})
	}
}

func TestAuthenticate(t *testing.T) {
	tests := []struct {
		name      string
		token     string
		wantActor int64
		wantCode  int
	}{
		{name: "valid token", token: "tok-alice", wantActor: 1, wantCode: http.StatusOK},
		{name: "no token", token: "", wantActor: 0, wantCode: http.StatusOK},
		{name: "unknown token", token: "tok-mallory", wantActor: 0, wantCode: http.StatusOK},
		{name: "lookup failure", token: "broken", wantActor: 0, wantCode: http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &fakeService{actor: -1}
			rec := do(t, newTestRouter(svc), http.MethodGet, "/quality-nominations/mine", tt.token, "")

			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Equal(t, tt.wantActor, svc.actor)
		})
	}
}

func TestDetails(t *testing.T) {
	svc := &fakeService{details: &core.NominationDetails{
		NominationSummary: core.NominationSummary{ID: 5, Kind: core.KindDemotion},
		Reviewers:         []core.UserRef{{UserID: 3, Username: "carol"}},
	}}
	rec := do(t, newTestRouter(svc), http.MethodGet, "/quality-nominations/5", "tok-alice", "")

	require.Equal(t, http.StatusOK, rec.Code)
	body := decode(t, rec)
	n, ok := body["nomination"].(map[string]any)
	require.True(t, ok)
	assert.InDelta(t, 5, n["qualitynomination_id"], 0)
	assert.Equal(t, "demotion", n["nomination"])

	rec = do(t, newTestRouter(svc), http.MethodGet, "/quality-nominations/abc", "tok-alice", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
