// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorderCountsOutcomes(t *testing.T) {
	r := New(prometheus.NewRegistry())

	r.Started("submit")
	r.Started("submit")
	assert.Equal(t, 2.0, testutil.ToFloat64(r.inflight.WithLabelValues("submit")))

	r.Finished("submit", OutcomeSuccess, 10*time.Millisecond)
	r.Finished("submit", OutcomeStale, 20*time.Millisecond)

	assert.Equal(t, 0.0, testutil.ToFloat64(r.inflight.WithLabelValues("submit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.requests.WithLabelValues("submit", OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.requests.WithLabelValues("submit", OutcomeStale)))
	assert.Equal(t, 0.0, testutil.ToFloat64(r.requests.WithLabelValues("compare", OutcomeFailure)))
}

func TestNilRecorderIsNoop(t *testing.T) {
	var r *Recorder
	assert.NotPanics(t, func() {
		r.Started("compare")
		r.Finished("compare", OutcomeFailure, time.Second)
	})
}
