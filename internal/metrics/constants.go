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
	MetricNameEventsPublished = "farm_events_published_total"
	MetricNameIntentsRejected = "farm_intents_rejected_total"
	MetricNameSSEDropped      = "farm_sse_events_dropped_total"
)

// Simulation metric names
const (
	MetricNameTickDuration   = "farm_tick_duration_seconds"
	MetricNameCropsHarvested = "farm_crops_harvested_total"
	MetricNameItemsCrafted   = "farm_items_crafted_total"
	MetricNameItemsSold      = "farm_items_sold_total"
	MetricNameMoneyEarned    = "farm_money_earned_total"
	MetricNamePlayerLevel    = "farm_player_level"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
	HelpTextEventsPublished      = "Total number of notifications published, by type"
	HelpTextIntentsRejected      = "Total number of rejected player intents, by intent"
	HelpTextSSEDropped           = "Total number of notifications a slow SSE client missed"
	HelpTextTickDuration         = "Time spent in one simulation tick"
	HelpTextCropsHarvested       = "Total units harvested, by item"
	HelpTextItemsCrafted         = "Total products crafted, by item"
	HelpTextItemsSold            = "Total units sold, by item"
	HelpTextMoneyEarned          = "Total money earned, by source"
	HelpTextPlayerLevel          = "Current player level"
)

// ============================================================================
// Metric Label Names
// ============================================================================

const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelItem   = "item"
	LabelIntent = "intent"
	LabelSource = "source"
)

// Money sources
const (
	SourceSale      = "sale"
	SourceOrder     = "order"
	SourceChallenge = "challenge"
)

// Buckets
var (
	HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5}
	TickBuckets        = []float64{.0001, .00025, .0005, .001, .0025, .005, .01, .05}
)

// UnmatchedRoute labels requests no route matched
const UnmatchedRoute = "unmatched"

// LogMsgMetricsRecorded is logged at debug level for every collected event
const LogMsgMetricsRecorded = "Metrics recorded for event"
