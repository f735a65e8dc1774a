package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished = "events_published_total"
)

// Business metric names
const (
	MetricNameRewardClaims       = "reward_claims_total"
	MetricNameCooldownRejections = "cooldown_rejections_total"
	MetricNameCoinsCredited      = "coins_credited_total"
	MetricNameCoinsDebited       = "coins_debited_total"
	MetricNameInsufficientFunds  = "insufficient_balance_rejections_total"
	MetricNameIdempotentReplays  = "idempotent_replays_total"
	MetricNameRedeemTransitions  = "redeem_transitions_total"
	MetricNameSSEClients         = "sse_clients"
)

// Job metric names
const (
	MetricNameJobRuns         = "job_runs_total"
	MetricNameJobRowsAffected = "job_rows_affected_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextEventsPublished      = "Total number of events published"
	HelpTextRewardClaims         = "Total number of accepted reward claims by action"
	HelpTextCooldownRejections   = "Total number of claims rejected because the action was on cooldown"
	HelpTextCoinsCredited        = "Total coins credited by source"
	HelpTextCoinsDebited         = "Total coins debited by source"
	HelpTextInsufficientFunds    = "Total number of debits rejected for insufficient balance"
	HelpTextIdempotentReplays    = "Total number of requests answered from an earlier idempotent result"
	HelpTextRedeemTransitions    = "Total number of redeem session transitions by resulting state"
	HelpTextSSEClients           = "Current number of connected SSE clients"
	HelpTextJobRuns              = "Total number of scheduled job runs by job and result"
	HelpTextJobRowsAffected      = "Total number of rows changed by scheduled jobs"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelAction = "action"
	LabelSource = "source"
	LabelState  = "state"
	LabelJob    = "job"
	LabelResult = "result"
)

// Job results
const (
	ResultSuccess = "success"
	ResultError   = "error"
)

// HTTPLatencyBuckets are the histogram buckets for request latency
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5}

// UnmatchedRoute labels requests that did not match a registered route
const UnmatchedRoute = "unmatched"

// Log messages
const (
	LogMsgMetricsRecorded = "Metrics recorded for event"
)
