package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/micro-ha/netis-dashboard/internal/model"
)

func TestSetConnectionStatusIsOneHot(t *testing.T) {
	SetConnectionStatus(model.ConnectionStatusError)
	SetConnectionStatus(model.ConnectionStatusConnected)

	if got := testutil.ToFloat64(ConnectionStatus.WithLabelValues(string(model.ConnectionStatusConnected))); got != 1 {
		t.Fatalf("CONNECTED gauge = %v, want 1", got)
	}
	if got := testutil.ToFloat64(ConnectionStatus.WithLabelValues(string(model.ConnectionStatusError))); got != 0 {
		t.Fatalf("ERROR gauge = %v, want 0", got)
	}
}

func TestObserveProbeCountsByResult(t *testing.T) {
	before := testutil.ToFloat64(ProbesTotal.WithLabelValues("login", "failure"))
	ObserveProbe("login", false)
	after := testutil.ToFloat64(ProbesTotal.WithLabelValues("login", "failure"))
	if after-before != 1 {
		t.Fatalf("expected failure counter to grow by 1, got %v", after-before)
	}
}

func TestInitMetricsIsIdempotent(t *testing.T) {
	InitMetrics()
	InitMetrics()
}
