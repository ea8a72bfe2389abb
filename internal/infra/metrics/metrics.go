package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	OutcomeOK     = "ok"
	OutcomeNoData = "no_data"
	OutcomeError  = "error"
)

type Metrics struct {
	Requests     *prometheus.CounterVec
	BuildSeconds prometheus.Histogram
	Items        prometheus.Gauge
}

// New registers report metrics on reg (prometheus.DefaultRegisterer in main).
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Requests: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "sport_inventory",
			Name:      "report_requests_total",
			Help:      "Report requests by format and outcome.",
		}, []string{"format", "outcome"}),
		BuildSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "sport_inventory",
			Name:      "report_build_seconds",
			Help:      "Time to load and aggregate the inventory.",
			Buckets:   prometheus.DefBuckets,
		}),
		Items: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "sport_inventory",
			Name:      "items_loaded",
			Help:      "Equipment items in the last loaded record.",
		}),
	}
}

func (m *Metrics) ObserveBuild(start time.Time, items int) {
	if m == nil {
		return
	}
	m.BuildSeconds.Observe(time.Since(start).Seconds())
	m.Items.Set(float64(items))
}

func (m *Metrics) Count(format, outcome string) {
	if m == nil {
		return
	}
	m.Requests.WithLabelValues(format, outcome).Inc()
}
