package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
	MetricNameHTTPRequestsRejected = "http_requests_rejected_total"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Progression metric names
const (
	MetricNameTaps                = "emojikombat_taps_total"
	MetricNameCoinsEarned         = "emojikombat_coins_earned_total"
	MetricNameCoinsSpent          = "emojikombat_coins_spent_total"
	MetricNameUpgradesPurchased   = "emojikombat_upgrades_purchased_total"
	MetricNamePurchasesRejected   = "emojikombat_purchases_rejected_total"
	MetricNameTasksCompleted      = "emojikombat_tasks_completed_total"
	MetricNameLevelUps            = "emojikombat_level_ups_total"
	MetricNameRankUps             = "emojikombat_rank_ups_total"
	MetricNameActiveSessions      = "emojikombat_active_sessions"
	MetricNamePersistenceFailures = "emojikombat_persistence_failures_total"
	MetricNameSnapshotsSaved      = "emojikombat_snapshots_saved_total"
	MetricNameAccrualDuration     = "emojikombat_accrual_duration_seconds"
)

// ============================================================================
// Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"
	HelpTextHTTPRequestsRejected = "Requests refused by middleware, by reason"

	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"

	HelpTextTaps                = "Total number of taps applied"
	HelpTextCoinsEarned         = "Coins credited, by source"
	HelpTextCoinsSpent          = "Coins spent on upgrades"
	HelpTextUpgradesPurchased   = "Upgrades purchased, by upgrade id"
	HelpTextPurchasesRejected   = "Upgrade purchases rejected, by reason"
	HelpTextTasksCompleted      = "Task rewards granted, by task id"
	HelpTextLevelUps            = "Player level increases"
	HelpTextRankUps             = "Player rank changes, by new rank"
	HelpTextActiveSessions      = "Player sessions currently held in memory"
	HelpTextPersistenceFailures = "Snapshot load/save failures, by operation"
	HelpTextSnapshotsSaved      = "Snapshots written to storage"
	HelpTextAccrualDuration     = "Time spent in one idle accrual pass"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelSource    = "source"
	LabelUpgrade   = "upgrade"
	LabelReason    = "reason"
	LabelTask      = "task"
	LabelRank      = "rank"
	LabelOperation = "operation"
)

// Rejection reasons
const (
	ReasonInsufficientFunds = "insufficient_funds"
	ReasonMaxLevel          = "max_level"
	ReasonUnauthorized      = "unauthorized"
	ReasonRateLimited       = "rate_limited"
)

// Persistence operations
const (
	OperationLoad   = "load"
	OperationSave   = "save"
	OperationDelete = "delete"
)

// HTTPLatencyBuckets are histogram buckets tuned for API latency
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5}

// Log messages
const (
	LogMsgUnexpectedPayload = "Unexpected event payload type"
)
