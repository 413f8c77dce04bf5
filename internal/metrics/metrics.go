package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	IntentsRejected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameIntentsRejected,
			Help: HelpTextIntentsRejected,
		},
		[]string{LabelIntent},
	)

	SSEEventsDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameSSEDropped,
			Help: HelpTextSSEDropped,
		},
	)
)

// Simulation Metrics
var (
	TickDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameTickDuration,
			Help:    HelpTextTickDuration,
			Buckets: TickBuckets,
		},
	)

	CropsHarvested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCropsHarvested,
			Help: HelpTextCropsHarvested,
		},
		[]string{LabelItem},
	)

	ItemsCrafted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsCrafted,
			Help: HelpTextItemsCrafted,
		},
		[]string{LabelItem},
	)

	ItemsSold = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsSold,
			Help: HelpTextItemsSold,
		},
		[]string{LabelItem},
	)

	MoneyEarned = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameMoneyEarned,
			Help: HelpTextMoneyEarned,
		},
		[]string{LabelSource},
	)

	PlayerLevel = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNamePlayerLevel,
			Help: HelpTextPlayerLevel,
		},
	)
)

// ObserveTick records one tick duration
func ObserveTick(d time.Duration) {
	TickDuration.Observe(d.Seconds())
}
