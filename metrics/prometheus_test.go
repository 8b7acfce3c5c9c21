// Copyright (c) 2025 The Venue developers
//
// Distributed under the GNU Lesser General Public License v3.0 software license, see the accompanying
// file LICENSE or <https://www.gnu.org/licenses/lgpl-3.0.html>

package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"

	dto "github.com/prometheus/client_model/go"
)

func TestPromMetrics(t *testing.T) {
	InitializePrometheusMetrics()

	counter := Counter("count1")
	counterVec := CounterVec("count_vec1", []string{"path"})
	gauge := Gauge("gauge1")

	counter.Add(1)
	counter.Add(2)
	counterVec.AddWithLabel(5, map[string]string{"path": "claim"})
	gauge.Add(10)
	gauge.Add(-4)

	// the same name resolves to the same meter
	Counter("count1").Add(1)

	gatherers := prometheus.Gatherers{prometheus.DefaultGatherer}
	metricFamilies, err := gatherers.Gather()
	require.NoError(t, err)

	gathered := make(map[string]*dto.MetricFamily)
	for _, mf := range metricFamilies {
		gathered[mf.GetName()] = mf
	}

	require.Equal(t, float64(4), gathered["venue_metrics_count1"].Metric[0].GetCounter().GetValue())
	require.Equal(t, float64(5), gathered["venue_metrics_count_vec1"].Metric[0].GetCounter().GetValue())
	require.Equal(t, "claim", gathered["venue_metrics_count_vec1"].Metric[0].GetLabel()[0].GetValue())
	require.Equal(t, float64(6), gathered["venue_metrics_gauge1"].Metric[0].GetGauge().GetValue())

	require.NotNil(t, HTTPHandler())
}

func TestLazyLoad(t *testing.T) {
	calls := 0
	loader := LazyLoad(func() int {
		calls++
		return 42
	})
	require.Equal(t, 42, loader())
	require.Equal(t, 42, loader())
	require.Equal(t, 1, calls)
}

func TestNoopMetrics(t *testing.T) {
	m := defaultNoopMetrics()

	// all meters are inert but safe to use
	m.GetOrCreateCountMeter("a").Add(1)
	m.GetOrCreateCountVecMeter("b", []string{"l"}).AddWithLabel(1, map[string]string{"l": "v"})
	m.GetOrCreateGaugeMeter("c").Set(1)
	require.Nil(t, m.GetOrCreateHandler())
}
