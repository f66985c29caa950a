package telemetry

import (
	"context"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/micro-ha/netis-dashboard/internal/model"
	"github.com/micro-ha/netis-dashboard/internal/oui"
)

const simulatedFirmware = "V3.3.42541"

var seedDevices = []model.Device{
	{ID: "1", Name: "Workstation-A", IP: "192.168.1.10", MAC: "BC:D0:74:11:22:33", Signal: 95, Type: model.DeviceTypeDesktop, BandwidthUsage: 1200},
	{ID: "2", Name: "Smart-TV-Living", IP: "192.168.1.15", MAC: "A1:B2:C3:D4:E5:F6", Signal: 88, Type: model.DeviceTypeDesktop, BandwidthUsage: 4500},
	{ID: "3", Name: "Guest-Mobile", IP: "192.168.1.22", MAC: "44:55:66:77:88:99", Signal: 45, Type: model.DeviceTypeMobile, BandwidthUsage: 12},
}

// Simulated draws stats uniformly from fixed ranges and seeds three fixed devices.
type Simulated struct {
	vendors *oui.DB
	now     func() time.Time

	mu        sync.Mutex
	rng       *rand.Rand
	startedAt time.Time
}

func NewSimulated(vendors *oui.DB) *Simulated {
	return NewSimulatedWithSeed(rand.Uint64(), vendors)
}

func NewSimulatedWithSeed(seed uint64, vendors *oui.DB) *Simulated {
	return &Simulated{
		vendors:   vendors,
		now:       time.Now,
		rng:       rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
		startedAt: time.Now(),
	}
}

// Stats keeps model from prev and replaces every live field.
func (s *Simulated) Stats(ctx context.Context, prev model.RouterStats) (model.RouterStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := prev
	next.CPUUsage = float64(s.rng.IntN(20) + 10)
	next.RAMUsage = 42 + s.rng.Float64()*5
	next.DownloadSpeed = 80 + s.rng.Float64()*120
	next.UploadSpeed = 10 + s.rng.Float64()*30
	next.Firmware = simulatedFirmware
	next.Uptime = formatUptime(s.now().Sub(s.startedAt))
	return next, nil
}

func (s *Simulated) Devices(ctx context.Context) ([]model.Device, error) {
	out := make([]model.Device, 0, len(seedDevices))
	for _, device := range seedDevices {
		if vendor, ok := s.vendors.Lookup(device.MAC); ok {
			device.Vendor = vendor
		}
		out = append(out, device)
	}
	return out, nil
}

func (s *Simulated) MarkRestarted() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.startedAt = s.now()
}
