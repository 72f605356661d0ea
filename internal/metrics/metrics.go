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

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Business Metrics
var (
	ItemsBought = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsBought,
			Help: HelpTextItemsBought,
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

	ItemsGifted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameItemsGifted,
			Help: HelpTextItemsGifted,
		},
		[]string{LabelItem},
	)

	CoinsGiven = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameCoinsGiven,
			Help: HelpTextCoinsGiven,
		},
	)

	GambleOutcomes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameGambleOutcomes,
			Help: HelpTextGambleOutcomes,
		},
		[]string{LabelTier},
	)

	LootBoxesOpened = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameLootBoxesOpened,
			Help: HelpTextLootBoxesOpened,
		},
		[]string{LabelRarity},
	)

	CraftsCollected = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameCraftsCollected,
			Help: HelpTextCraftsCollected,
		},
		[]string{LabelQuality},
	)

	EnchantsApplied = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEnchantsApplied,
			Help: HelpTextEnchantsApplied,
		},
		[]string{LabelQuality},
	)

	PetsGranted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNamePetsGranted,
			Help: HelpTextPetsGranted,
		},
		[]string{LabelTier},
	)

	AccrualCoins = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameAccrualCoins,
			Help: HelpTextAccrualCoins,
		},
		[]string{LabelStream},
	)
)
