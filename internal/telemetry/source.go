// Package telemetry supplies router stats and the initial device list. The store's
// status lifecycle is identical whichever Source backs it.
package telemetry

import (
	"context"
	"fmt"
	"time"

	"github.com/micro-ha/netis-dashboard/internal/model"
)

const (
	KindSimulated = "simulated"
	KindRouterOS  = "routeros"
)

// Source produces stats after a successful probe and seeds the device list once.
type Source interface {
	Stats(ctx context.Context, prev model.RouterStats) (model.RouterStats, error)
	Devices(ctx context.Context) ([]model.Device, error)
}

// Restarter is implemented by sources that track uptime across simulated reboots.
type Restarter interface {
	MarkRestarted()
}

func formatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	days := int(d / (24 * time.Hour))
	d -= time.Duration(days) * 24 * time.Hour
	hours := int(d / time.Hour)
	d -= time.Duration(hours) * time.Hour
	minutes := int(d / time.Minute)
	return fmt.Sprintf("%dd %02dh %02dm", days, hours, minutes)
}
