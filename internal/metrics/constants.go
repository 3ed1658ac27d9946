package metrics

// Metric names
const (
	MetricNameHTTPRequestsTotal    = "vespr_http_requests_total"
	MetricNameHTTPRequestDuration  = "vespr_http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "vespr_http_requests_in_flight"
	MetricNameEventsPublished      = "vespr_events_published_total"
	MetricNameInventoryActions     = "vespr_inventory_actions_total"
	MetricNameItemsAssigned        = "vespr_items_assigned_total"
	MetricNameUsersProvisioned     = "vespr_users_provisioned_total"
	MetricNameTxRetries            = "vespr_tx_retries_total"
	MetricNameHPAfterConsume       = "vespr_hp_after_consume"
)

// Help texts
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Number of HTTP requests currently being served"
	HelpTextEventsPublished      = "Total number of events published by type"
	HelpTextInventoryActions     = "Inventory actions by action and result"
	HelpTextItemsAssigned        = "Total units granted through item assignment"
	HelpTextUsersProvisioned     = "Total users created in the user store"
	HelpTextTxRetries            = "Transactions retried after a serialization conflict"
	HelpTextHPAfterConsume       = "User hp observed after a consume action"
)

// Label names
const (
	LabelMethod = "method"
	LabelPath   = "path"
	LabelStatus = "status"
	LabelType   = "type"
	LabelAction = "action"
	LabelResult = "result"
	LabelOp     = "operation"
)

// Result label values
const (
	ResultSuccess      = "success"
	ResultInsufficient = "insufficient_quantity"
	ResultInvalid      = "invalid"
	ResultNotFound     = "not_found"
	ResultForbidden    = "forbidden"
	ResultConflict     = "conflict"
	ResultError        = "error"
)

// Buckets
var (
	HTTPLatencyBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5}
	HPBuckets          = []float64{0, 10, 25, 50, 75, 90, 100}
)

// Log messages
const (
	LogMsgUnexpectedPayload = "Unexpected event payload type"
)
