package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	KioskMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kiosk_messages_consumed_total",
			Help: "Number of kiosk order messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KioskMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kiosk_messages_processed_total",
			Help: "Number of kiosk order messages placed successfully",
		},
		[]string{"topic"},
	)
	KioskMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kiosk_messages_failed_total",
			Help: "Number of kiosk order messages failed to process",
		},
		[]string{"topic"},
	)
)

var (
	OrdersPlaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_placed_total",
			Help: "Orders placed (HTTP and kiosk intake combined)",
		},
	)
	OrdersReplaced = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_replaced_total",
			Help: "Orders atomically replaced",
		},
	)
	OrdersInfoSkipped = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "orders_info_skipped_components_total",
			Help: "Order components skipped because the menu item id is unknown",
		},
	)
)

var (
	CatalogCacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "catalog_cache_operations_total",
			Help: "Menu catalog cache operations",
		},
		[]string{"op"}, // hit|miss|expired|reload
	)
	CatalogCacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "catalog_cache_size",
			Help: "Number of menu items in the cached catalog snapshot",
		},
	)
)

var registerOnce sync.Once

// MustRegister — регистрирует все метрики; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			KioskMessagesConsumed, KioskMessagesProcessed, KioskMessagesFailed,
			OrdersPlaced, OrdersReplaced, OrdersInfoSkipped,
			CatalogCacheOps, CatalogCacheSize,
		)
	})
}
