// SPDX-License-Identifier: MIT
package observe

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/fairdiv/wrr"
)

// Metrics records allocation events as Prometheus collectors.
type Metrics struct {
	roundsTotal   prometheus.Counter
	picksTotal    *prometheus.CounterVec
	pickValue     prometheus.Histogram
	chosenPortion prometheus.Gauge
	portionsTotal prometheus.Counter
}

var _ wrr.Observer = (*Metrics)(nil)

// NewMetrics registers the allocation collectors with reg. A nil reg uses
// prometheus.DefaultRegisterer. NewMetrics panics if the collectors are
// already registered with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	var factory = promauto.With(reg)

	return &Metrics{
		roundsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "fairdiv_wrr_rounds_total",
			Help: "Cumulative number of completed allocation rounds.",
		}),
		picksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "fairdiv_wrr_picks_total",
			Help: "Cumulative number of objects allocated, by player index.",
		}, []string{"player"}),
		pickValue: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "fairdiv_wrr_pick_value",
			Help:    "Valuation of each allocated object at the moment of choice.",
			Buckets: prometheus.ExponentialBuckets(1, 2, 12),
		}),
		chosenPortion: factory.NewGauge(prometheus.GaugeOpts{
			Name: "fairdiv_wrr_chosen_portion",
			Help: "Portion of the most recently chosen player.",
		}),
		portionsTotal: factory.NewCounter(prometheus.CounterOpts{
			Name: "fairdiv_wrr_portion_evaluations_total",
			Help: "Cumulative number of portion evaluations.",
		}),
	}
}

func (m *Metrics) Portion(int, int, float64) {
	m.portionsTotal.Inc()
}

func (m *Metrics) Chose(_, _ int, portion float64) {
	m.chosenPortion.Set(portion)
}

func (m *Metrics) Pick(rec wrr.Record) {
	m.roundsTotal.Inc()
	m.picksTotal.WithLabelValues(strconv.Itoa(rec.Player)).Inc()
	m.pickValue.Observe(rec.Value)
}
