package router

import (
	"context"
	"fmt"

	"github.com/micro-ha/netis-dashboard/internal/metrics"
	"github.com/micro-ha/netis-dashboard/internal/model"
)

// ToggleDeviceBlock flips the block flag of device id. Unknown ids are a no-op
// and report found=false. The simulated latency runs without holding the lock.
func (s *Store) ToggleDeviceBlock(ctx context.Context, id string) (model.Device, bool) {
	device, found := s.toggleDevice(id)
	s.sleep(s.opts.Latency.DeviceToggle)
	return device, found
}

func (s *Store) toggleDevice(id string) (model.Device, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.state.Devices {
		device := &s.state.Devices[i]
		if device.ID != id {
			continue
		}
		device.Blocked = !device.Blocked
		action := "unblocked"
		if device.Blocked {
			action = "blocked"
		}
		s.appendLogLocked(model.LogLevelWarn, fmt.Sprintf("Access Control: %s (%s) has been %s.", device.Name, device.IP, action))
		metrics.DeviceBlockToggles.WithLabelValues(action).Inc()
		return device.Clone(), true
	}
	return model.Device{}, false
}
