package router

import (
	"context"
	"fmt"
	"strings"

	"github.com/micro-ha/netis-dashboard/internal/metrics"
)

// Login probes the candidate gateway. Only reachability gates entry; user and
// password are not verified. On success the address becomes the active gateway
// and is persisted. A blank user keeps the current admin user, matching what is
// saved. Failure leaves state and logs untouched.
func (s *Store) Login(ctx context.Context, ip, user, password string) (bool, error) {
	ip = strings.TrimSpace(ip)
	user = strings.TrimSpace(user)

	err := s.prober.Probe(ctx, ip, s.opts.LoginProbeTimeout)
	metrics.ObserveProbe("login", err == nil)
	if err != nil {
		s.logger.Info("login probe failed", "gateway", ip, "err", err)
		return false, nil
	}

	if s.addresses != nil {
		if err := s.addresses.SaveAddress(ctx, ip, user); err != nil {
			return false, fmt.Errorf("persist gateway address: %w", err)
		}
	}

	s.mu.Lock()
	s.gateway = ip
	if user != "" {
		s.state.AdminUser = user
	}
	s.mu.Unlock()
	return true, nil
}
