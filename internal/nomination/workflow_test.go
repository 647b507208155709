package nomination_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sevigo/quality-warden/internal/config"
	"github.com/sevigo/quality-warden/internal/content"
	"github.com/sevigo/quality-warden/internal/core"
	"github.com/sevigo/quality-warden/internal/db"
	"github.com/sevigo/quality-warden/internal/logger"
	"github.com/sevigo/quality-warden/internal/metrics"
	"github.com/sevigo/quality-warden/internal/nomination"
	"github.com/sevigo/quality-warden/internal/reviewers"
	"github.com/sevigo/quality-warden/internal/storage"
	"github.com/sevigo/quality-warden/internal/tags"
)

const (
	alice int64 = iota + 1
	bob
	carol
	dave
)

// newWorkflow runs the service against a migrated in-memory database where
// alice has solved aplusb and carol and dave are reviewers.
func newWorkflow(t *testing.T) (*nomination.Service, storage.Store) {
	t.Helper()
	conn, cleanup, err := db.NewDatabase(&config.DBConfig{Driver: config.DriverSQLite, Path: ":memory:"})
	require.NoError(t, err)
	t.Cleanup(cleanup)

	seed := []string{
		`INSERT INTO users (username) VALUES ('alice'), ('bob'), ('carol'), ('dave')`,
		`INSERT INTO problems (alias, title) VALUES ('aplusb', 'A + B'), ('sumas', 'Sumas')`,
		`INSERT INTO runs (problem_id, user_id, verdict) VALUES (1, 1, 'AC'), (1, 2, 'WA')`,
		`INSERT INTO user_groups (alias, name) VALUES ('omegaup:quality-reviewer', 'Quality reviewers')`,
		`INSERT INTO user_group_members (group_id, user_id) VALUES (1, 3), (1, 4)`,
	}
	for _, q := range seed {
		_, err := conn.Exec(q)
		require.NoError(t, err)
	}

	cfg := &config.Config{Quality: config.QualityConfig{
		ReviewerGroupAlias:     "omegaup:quality-reviewer",
		ReviewersPerNomination: 2,
		DefaultPageSize:        1000,
	}}
	log := logger.Discard()
	store := storage.NewStore(conn.DB)
	pool := reviewers.NewPool(cfg.Quality.ReviewerGroupAlias, store, reviewers.NewRandomSampler(), log)
	validator := content.NewValidator(store, tags.NewNormalizer())
	svc := nomination.NewService(cfg, store, store, validator, pool, metrics.New(prometheus.NewRegistry()), log)
	return svc, store
}

func TestWorkflow_PromotionIsStoredNormalizedAndAssigned(t *testing.T) {
	svc, _ := newWorkflow(t)
	ctx := context.Background()

	n, err := svc.Create(ctx, alice, nomination.CreateRequest{
		ProblemAlias: "aplusb",
		Nomination:   "promotion",
		Contents: json.RawMessage(`{"rationale":"r","statements":{"en":{"markdown":"m"}},` +
			`"source":"s","tags":["Dynamic Programming"],"extra":true}`),
	})
	require.NoError(t, err)

	details, err := svc.Details(ctx, alice, n.ID)
	require.NoError(t, err)
	assert.Equal(t, core.StatusOpen, details.Status)
	assert.Equal(t, "aplusb", details.Problem.Alias)
	assert.JSONEq(t,
		`{"rationale":"r","statements":{"en":{"markdown":"m"}},"source":"s","tags":["dynamic-programming"]}`,
		string(details.Contents))

	require.Len(t, details.Reviewers, 2)
	assert.ElementsMatch(t, []int64{carol, dave}, []int64{details.Reviewers[0].UserID, details.Reviewers[1].UserID})

	// Stored contents validate again to the same bytes.
	validator := content.NewValidator(nil, tags.NewNormalizer())
	again, err := validator.Validate(ctx, core.KindPromotion, json.RawMessage(details.Contents))
	require.NoError(t, err)
	encoded, err := content.Encode(again)
	require.NoError(t, err)
	assert.Equal(t, string(details.Contents), string(encoded))
}

func TestWorkflow_Rejections(t *testing.T) {
	svc, store := newWorkflow(t)
	ctx := context.Background()

	_, err := svc.Create(ctx, bob, nomination.CreateRequest{
		ProblemAlias: "aplusb",
		Nomination:   "demotion",
		Contents:     json.RawMessage(`{"rationale":"r","reason":"duplicate","original":"doesnotexist"}`),
	})
	assert.ErrorIs(t, err, core.ErrNotFound)

	_, err = svc.Create(ctx, bob, nomination.CreateRequest{
		ProblemAlias: "aplusb",
		Nomination:   "promotion",
		Contents:     json.RawMessage(`{"rationale":"r"}`),
	})
	assert.ErrorIs(t, err, core.ErrPreconditionFailed)

	stored, err := store.ListNominations(ctx, core.Filter{}, core.Pagination{Page: 1, PageSize: 10})
	require.NoError(t, err)
	assert.Empty(t, stored)

	assigned, err := svc.ListAssignedToMe(ctx, carol, nomination.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, assigned)
}

func TestWorkflow_Listings(t *testing.T) {
	svc, _ := newWorkflow(t)
	ctx := context.Background()

	var ids []int64
	for range 3 {
		n, err := svc.Create(ctx, bob, nomination.CreateRequest{
			ProblemAlias: "sumas",
			Nomination:   "demotion",
			Contents:     json.RawMessage(`{"rationale":"r","reason":"offensive"}`),
		})
		require.NoError(t, err)
		ids = append(ids, n.ID)
	}

	page, err := svc.ListMine(ctx, bob, nomination.PageRequest{Page: "2", PageSize: "1"})
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, ids[1], page[0].ID)
	assert.Equal(t, "bob", page[0].Nominator.Username)

	for _, huge := range []string{"9223372036854775807", "4611686018427387905"} {
		beyond, err := svc.ListMine(ctx, bob, nomination.PageRequest{Page: huge, PageSize: "2"})
		require.NoError(t, err)
		assert.Empty(t, beyond, "page %s", huge)
	}

	none, err := svc.ListMine(ctx, alice, nomination.PageRequest{})
	require.NoError(t, err)
	assert.Empty(t, none)

	assigned, err := svc.ListAssignedToMe(ctx, carol, nomination.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, assigned, 3)

	all, err := svc.ListAll(ctx, dave, nomination.PageRequest{})
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = svc.ListAll(ctx, bob, nomination.PageRequest{})
	assert.ErrorIs(t, err, core.ErrForbidden)
	_, err = svc.Details(ctx, alice, ids[0])
	assert.ErrorIs(t, err, core.ErrForbidden)
}
