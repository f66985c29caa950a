package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/micro-ha/netis-dashboard/internal/model"
)

var (
	// ProbesTotal counts reachability probes by purpose and outcome
	ProbesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "netis",
			Name:      "probes_total",
			Help:      "Total number of gateway reachability probes",
		},
		[]string{"kind", "result"},
	)

	// ConnectionStatus is 1 for the current gateway status and 0 otherwise
	ConnectionStatus = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "netis",
			Name:      "connection_status",
			Help:      "Current perceived gateway connection status",
		},
		[]string{"status"},
	)

	DeviceBlockToggles = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "netis",
			Name:      "device_block_toggles_total",
			Help:      "Total number of device access control changes",
		},
		[]string{"action"},
	)

	SettingsUpdates = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "netis",
			Name:      "settings_updates_total",
			Help:      "Total number of configuration changes by kind",
		},
		[]string{"kind"},
	)

	AssistantRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "netis",
			Name:      "assistant_requests_total",
			Help:      "Total number of AI assistant questions by outcome",
		},
		[]string{"result"},
	)

	once sync.Once
)

var allStatuses = []model.ConnectionStatus{
	model.ConnectionStatusConnected,
	model.ConnectionStatusDisconnected,
	model.ConnectionStatusConnecting,
	model.ConnectionStatusError,
}

// InitMetrics registers all collectors with the default registry. Safe to call
// more than once.
func InitMetrics() {
	once.Do(func() {
		prometheus.DefaultRegisterer.Register(ProbesTotal)
		prometheus.DefaultRegisterer.Register(ConnectionStatus)
		prometheus.DefaultRegisterer.Register(DeviceBlockToggles)
		prometheus.DefaultRegisterer.Register(SettingsUpdates)
		prometheus.DefaultRegisterer.Register(AssistantRequests)
	})
}

// ObserveProbe records one probe outcome. kind is "status" or "login".
func ObserveProbe(kind string, ok bool) {
	result := "success"
	if !ok {
		result = "failure"
	}
	ProbesTotal.WithLabelValues(kind, result).Inc()
}

// SetConnectionStatus flips the status gauge so exactly one label reads 1.
func SetConnectionStatus(current model.ConnectionStatus) {
	for _, status := range allStatuses {
		value := 0.0
		if status == current {
			value = 1
		}
		ConnectionStatus.WithLabelValues(string(status)).Set(value)
	}
}
