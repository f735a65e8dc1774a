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
	RewardClaims = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRewardClaims,
			Help: HelpTextRewardClaims,
		},
		[]string{LabelAction},
	)

	CooldownRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCooldownRejections,
			Help: HelpTextCooldownRejections,
		},
		[]string{LabelAction},
	)

	CoinsCredited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCoinsCredited,
			Help: HelpTextCoinsCredited,
		},
		[]string{LabelSource},
	)

	CoinsDebited = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCoinsDebited,
			Help: HelpTextCoinsDebited,
		},
		[]string{LabelSource},
	)

	InsufficientBalanceRejections = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameInsufficientFunds,
			Help: HelpTextInsufficientFunds,
		},
		[]string{LabelSource},
	)

	IdempotentReplays = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameIdempotentReplays,
			Help: HelpTextIdempotentReplays,
		},
		[]string{LabelSource},
	)

	RedeemTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameRedeemTransitions,
			Help: HelpTextRedeemTransitions,
		},
		[]string{LabelState},
	)

	SSEClients = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSSEClients,
			Help: HelpTextSSEClients,
		},
	)

	JobRuns = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameJobRuns,
			Help: HelpTextJobRuns,
		},
		[]string{LabelJob, LabelResult},
	)

	JobRowsAffected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameJobRowsAffected,
			Help: HelpTextJobRowsAffected,
		},
		[]string{LabelJob},
	)
)
