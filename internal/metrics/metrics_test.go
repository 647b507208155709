package metrics

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/sevigo/quality-warden/internal/core"
)

func TestMetrics(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveCreated(core.KindPromotion, 2)
	m.ObserveCreated(core.KindDemotion, 1)
	m.ObserveCreated(core.KindPromotion, 0)
	m.ObserveFailure("create", core.NotFoundError(core.KeyProblemNotFound))
	m.ObserveFailure("create", errors.New("boom"))

	assert.InDelta(t, 2, testutil.ToFloat64(m.NominationsCreated.WithLabelValues("promotion")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.NominationsCreated.WithLabelValues("demotion")), 0)
	assert.InDelta(t, 3, testutil.ToFloat64(m.ReviewerAssignments), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Failures.WithLabelValues("create", "not_found")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Failures.WithLabelValues("create", "operation_failed")), 0)
}
