package metrics

import (
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
)

// Business Metrics
var (
	InventoryActions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInventoryActions,
			Help: HelpTextInventoryActions,
		},
		[]string{LabelAction, LabelResult},
	)

	ItemsAssigned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameItemsAssigned,
			Help: HelpTextItemsAssigned,
		},
	)

	UsersProvisioned = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameUsersProvisioned,
			Help: HelpTextUsersProvisioned,
		},
	)

	TxRetries = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameTxRetries,
			Help: HelpTextTxRetries,
		},
		[]string{LabelOp},
	)

	HPAfterConsume = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    MetricNameHPAfterConsume,
			Help:    HelpTextHPAfterConsume,
			Buckets: HPBuckets,
		},
	)
)
