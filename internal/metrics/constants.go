package metrics

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameItemsBought     = "items_bought_total"
	MetricNameItemsSold       = "items_sold_total"
	MetricNameItemsGifted     = "items_gifted_total"
	MetricNameCoinsGiven      = "coins_given_total"
	MetricNameGambleOutcomes  = "gamble_outcomes_total"
	MetricNameLootBoxesOpened = "loot_boxes_opened_total"
	MetricNameCraftsCollected = "crafts_collected_total"
	MetricNameEnchantsApplied = "enchants_applied_total"
	MetricNamePetsGranted     = "pets_granted_total"
	MetricNameAccrualCoins    = "accrual_coins_total"
)

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextItemsBought     = "Total number of items bought from the store"
	HelpTextItemsSold       = "Total number of items sold back to the store"
	HelpTextItemsGifted     = "Total number of items gifted between accounts"
	HelpTextCoinsGiven      = "Total coins transferred between accounts"
	HelpTextGambleOutcomes  = "Total number of gamble resolutions by tier"
	HelpTextLootBoxesOpened = "Total number of loot boxes opened by rarity"
	HelpTextCraftsCollected = "Total number of crafts collected by quality"
	HelpTextEnchantsApplied = "Total number of enchants applied by quality"
	HelpTextPetsGranted     = "Total number of pets granted by tier"
	HelpTextAccrualCoins    = "Total coins awarded by passive accrual stream"
)

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelItem    = "item"
	LabelTier    = "tier"
	LabelRarity  = "rarity"
	LabelQuality = "quality"
	LabelStream  = "stream"
)

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Event payload decode failed"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
