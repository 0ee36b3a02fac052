package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Counters(t *testing.T) {
	m := New()

	m.Prints.WithLabelValues("Permis").Inc()
	m.Prints.WithLabelValues("Permis").Inc()
	m.PaidAmount.Add(75000)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.Prints.WithLabelValues("Permis")))
	assert.Equal(t, 75000.0, testutil.ToFloat64(m.PaidAmount))

	n, err := testutil.GatherAndCount(m.Registry, "tambua_prints_total")
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}

func TestNew_Independent(t *testing.T) {
	a, b := New(), New()
	a.Payments.Inc()
	assert.Equal(t, 0.0, testutil.ToFloat64(b.Payments))
}
