package routeros

import (
	"context"
	"fmt"
)

// Runner is the command seam shared by Client and mock.Client.
type Runner interface {
	Run(ctx context.Context, cmd string, args ...string) (*Reply, error)
}

// SystemResource is the subset of /system/resource used for dashboard stats.
type SystemResource struct {
	CPULoad     int64
	FreeMemory  int64
	TotalMemory int64
	Uptime      string
	Version     string
	BoardName   string
}

// MemoryUsage returns used memory as a percentage of total.
func (r SystemResource) MemoryUsage() float64 {
	if r.TotalMemory <= 0 {
		return 0
	}
	return float64(r.TotalMemory-r.FreeMemory) * 100 / float64(r.TotalMemory)
}

// InterfaceTraffic is one /interface/monitor-traffic sample in bits per second.
type InterfaceTraffic struct {
	Name         string
	RxBitsPerSec int64
	TxBitsPerSec int64
}

// DHCPLease is one /ip/dhcp-server/lease row.
type DHCPLease struct {
	ID       string
	MAC      string
	Address  string
	HostName string
	Status   string
	Blocked  bool
	Disabled bool
}

// FetchSystemResource reads /system/resource/print.
func FetchSystemResource(ctx context.Context, api Runner) (SystemResource, error) {
	reply, err := api.Run(ctx, "/system/resource/print")
	if err != nil {
		return SystemResource{}, fmt.Errorf("fetch system resource: %w", err)
	}
	rows := mapReplyRows(reply)
	if len(rows) == 0 {
		return SystemResource{}, fmt.Errorf("fetch system resource: empty reply")
	}
	row := rows[0]
	return SystemResource{
		CPULoad:     parseInt64(row["cpu-load"]),
		FreeMemory:  parseInt64(row["free-memory"]),
		TotalMemory: parseInt64(row["total-memory"]),
		Uptime:      row["uptime"],
		Version:     row["version"],
		BoardName:   row["board-name"],
	}, nil
}

// FetchInterfaceTraffic takes one traffic sample for iface.
func FetchInterfaceTraffic(ctx context.Context, api Runner, iface string) (InterfaceTraffic, error) {
	reply, err := api.Run(ctx, "/interface/monitor-traffic", "=interface="+iface, "=once=")
	if err != nil {
		return InterfaceTraffic{}, fmt.Errorf("monitor traffic %s: %w", iface, err)
	}
	rows := mapReplyRows(reply)
	if len(rows) == 0 {
		return InterfaceTraffic{Name: iface}, nil
	}
	return InterfaceTraffic{
		Name:         iface,
		RxBitsPerSec: parseInt64(rows[0]["rx-bits-per-second"]),
		TxBitsPerSec: parseInt64(rows[0]["tx-bits-per-second"]),
	}, nil
}

// FetchDHCPLeases reads /ip/dhcp-server/lease/print.
func FetchDHCPLeases(ctx context.Context, api Runner) ([]DHCPLease, error) {
	reply, err := api.Run(ctx, "/ip/dhcp-server/lease/print",
		"=.proplist=.id,mac-address,address,host-name,status,blocked,disabled")
	if err != nil {
		return nil, fmt.Errorf("fetch dhcp leases: %w", err)
	}
	rows := mapReplyRows(reply)
	leases := make([]DHCPLease, 0, len(rows))
	for _, row := range rows {
		mac := canonicalMAC(row["mac-address"])
		if mac == "" {
			continue
		}
		leases = append(leases, DHCPLease{
			ID:       row[".id"],
			MAC:      mac,
			Address:  row["address"],
			HostName: row["host-name"],
			Status:   row["status"],
			Blocked:  boolFromWord(row["blocked"]),
			Disabled: boolFromWord(row["disabled"]),
		})
	}
	return leases, nil
}
