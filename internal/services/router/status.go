package router

import (
	"context"
	"errors"
	"fmt"

	"github.com/micro-ha/netis-dashboard/internal/metrics"
	"github.com/micro-ha/netis-dashboard/internal/model"
	"github.com/micro-ha/netis-dashboard/internal/pkg/utils"
	"github.com/micro-ha/netis-dashboard/internal/probe"
)

// FetchStatus probes the gateway, moves the status lifecycle forward and returns a
// fresh snapshot. It never fails: an unreachable gateway is recorded as ERROR.
func (s *Store) FetchStatus(ctx context.Context) model.RouterState {
	s.mu.Lock()
	gateway := s.gateway
	rebooting := s.rebooting
	s.mu.Unlock()

	if rebooting {
		return s.stampedSnapshot()
	}

	err := s.prober.Probe(ctx, gateway, s.opts.StatusProbeTimeout)
	metrics.ObserveProbe("status", err == nil)
	if err != nil {
		return s.recordProbeFailure(gateway, err)
	}
	return s.recordProbeSuccess(ctx, gateway)
}

// Both record paths drop results for a gateway replaced by Login while the check was in flight.
func (s *Store) recordProbeSuccess(ctx context.Context, gateway string) model.RouterState {
	s.mu.Lock()
	prev := s.state.Stats
	needsSeed := len(s.state.Devices) == 0
	s.mu.Unlock()

	stats, statsErr := s.telemetry.Stats(ctx, prev)
	if statsErr != nil {
		s.logger.Warn("telemetry stats unavailable; keeping previous values", "err", statsErr)
	}
	var seed []model.Device
	if needsSeed {
		devices, err := s.telemetry.Devices(ctx)
		if err != nil {
			s.logger.Warn("telemetry device list unavailable", "err", err)
		}
		seed = devices
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rebooting || s.gateway != gateway {
		return s.stampLocked()
	}
	s.state.Status = model.ConnectionStatusConnected
	s.state.Error = nil
	if statsErr == nil {
		s.state.Stats = stats
	}
	if len(s.state.Devices) == 0 && len(seed) > 0 {
		s.state.Devices = make([]model.Device, len(seed))
		for i, device := range seed {
			s.state.Devices[i] = device.Clone()
		}
	}
	metrics.SetConnectionStatus(s.state.Status)
	return s.stampLocked()
}

func (s *Store) recordProbeFailure(gateway string, err error) model.RouterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rebooting || s.gateway != gateway {
		return s.stampLocked()
	}

	message := fmt.Sprintf("Hardware Link Failed. Is the router at %s powered on?", gateway)
	s.state.Status = model.ConnectionStatusError
	s.state.Error = &message
	if s.lastLogLevelLocked() != model.LogLevelError {
		s.appendLogLocked(model.LogLevelError, "Hardware unreachable: "+probeCause(err))
		s.logger.Warn("gateway unreachable", "gateway", gateway, "err", err)
	}
	metrics.SetConnectionStatus(s.state.Status)
	return s.stampLocked()
}

func (s *Store) stampedSnapshot() model.RouterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stampLocked()
}

func (s *Store) stampLocked() model.RouterState {
	s.state.LastUpdate = utils.UnixMillis(s.now())
	return s.state.Clone()
}

func probeCause(err error) string {
	var unreachable *probe.UnreachableError
	if errors.As(err, &unreachable) && unreachable.Err != nil {
		return unreachable.Err.Error()
	}
	return err.Error()
}
