package telemetry

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/micro-ha/netis-dashboard/internal/model"
	"github.com/micro-ha/netis-dashboard/internal/oui"
	"github.com/micro-ha/netis-dashboard/internal/routeros"
)

// RouterOS queries a MikroTik device over its API for live stats and DHCP clients.
type RouterOS struct {
	api     routeros.Runner
	iface   string
	vendors *oui.DB
	logger  *slog.Logger
}

func NewRouterOS(api routeros.Runner, wanInterface string, vendors *oui.DB, logger *slog.Logger) *RouterOS {
	if strings.TrimSpace(wanInterface) == "" {
		wanInterface = "ether1"
	}
	return &RouterOS{api: api, iface: wanInterface, vendors: vendors, logger: logger}
}

func (r *RouterOS) Stats(ctx context.Context, prev model.RouterStats) (model.RouterStats, error) {
	res, err := routeros.FetchSystemResource(ctx, r.api)
	if err != nil {
		return prev, err
	}

	next := prev
	next.CPUUsage = float64(res.CPULoad)
	next.RAMUsage = res.MemoryUsage()
	next.Uptime = res.Uptime
	next.Firmware = res.Version
	if res.BoardName != "" {
		next.Model = "MikroTik " + res.BoardName
	}

	traffic, err := routeros.FetchInterfaceTraffic(ctx, r.api, r.iface)
	if err != nil {
		if r.logger != nil {
			r.logger.Warn("traffic sample failed; keeping previous throughput", "interface", r.iface, "err", err)
		}
		return next, nil
	}
	next.DownloadSpeed = float64(traffic.RxBitsPerSec) / 1_000_000
	next.UploadSpeed = float64(traffic.TxBitsPerSec) / 1_000_000
	return next, nil
}

func (r *RouterOS) Devices(ctx context.Context) ([]model.Device, error) {
	leases, err := routeros.FetchDHCPLeases(ctx, r.api)
	if err != nil {
		return nil, err
	}
	devices := make([]model.Device, 0, len(leases))
	for i, lease := range leases {
		if lease.Disabled {
			continue
		}
		vendor, _ := r.vendors.Lookup(lease.MAC)
		devices = append(devices, model.Device{
			ID:      deviceID(lease, i),
			Name:    deviceName(lease),
			IP:      lease.Address,
			MAC:     lease.MAC,
			Vendor:  vendor,
			Type:    classify(vendor),
			Blocked: lease.Blocked,
		})
	}
	return devices, nil
}

func deviceID(lease routeros.DHCPLease, index int) string {
	if id := strings.TrimPrefix(lease.ID, "*"); id != "" {
		return id
	}
	return strconv.Itoa(index + 1)
}

func deviceName(lease routeros.DHCPLease) string {
	if name := strings.TrimSpace(lease.HostName); name != "" {
		return name
	}
	suffix := strings.ReplaceAll(lease.MAC, ":", "")
	if len(suffix) > 4 {
		suffix = suffix[len(suffix)-4:]
	}
	return fmt.Sprintf("Device-%s", suffix)
}

func classify(vendor string) model.DeviceType {
	v := strings.ToLower(vendor)
	switch {
	case strings.Contains(v, "espressif"), strings.Contains(v, "raspberry"), strings.Contains(v, "amazon"):
		return model.DeviceTypeIoT
	case strings.Contains(v, "apple"), strings.Contains(v, "samsung"), strings.Contains(v, "google"):
		return model.DeviceTypeMobile
	default:
		return model.DeviceTypeDesktop
	}
}
