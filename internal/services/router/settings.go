package router

import (
	"context"
	"crypto/sha256"
	"encoding/hex"

	"golang.org/x/crypto/bcrypt"

	routerdomain "github.com/micro-ha/netis-dashboard/internal/domain/router"
	"github.com/micro-ha/netis-dashboard/internal/metrics"
	"github.com/micro-ha/netis-dashboard/internal/model"
	"github.com/micro-ha/netis-dashboard/internal/telemetry"
)

// UpdateWifi replaces the primary Wi-Fi config wholesale.
func (s *Store) UpdateWifi(ctx context.Context, cfg model.WifiConfig) {
	s.mu.Lock()
	s.state.Wifi = cfg.Clone()
	s.appendLogLocked(model.LogLevelInfo, "Primary SSID updated.")
	s.mu.Unlock()

	metrics.SettingsUpdates.WithLabelValues("wifi").Inc()
	s.sleep(s.opts.Latency.WifiUpdate)
}

// UpdateGuestWifi replaces the guest Wi-Fi config wholesale.
func (s *Store) UpdateGuestWifi(ctx context.Context, cfg model.WifiConfig) {
	s.mu.Lock()
	s.state.GuestWifi = cfg.Clone()
	s.appendLogLocked(model.LogLevelInfo, "Guest SSID updated.")
	s.mu.Unlock()

	metrics.SettingsUpdates.WithLabelValues("guest_wifi").Inc()
	s.sleep(s.opts.Latency.WifiUpdate)
}

// UpdateAdminCredentials replaces the admin username. The password is only kept
// as a bcrypt hash in memory; it never gates login. A hashing failure clears the
// stored hash but does not block the update.
func (s *Store) UpdateAdminCredentials(ctx context.Context, user, password string) error {
	hash, err := bcrypt.GenerateFromPassword(passwordDigest(password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Warn("admin password hash failed; keeping no hash", "err", err)
		hash = nil
	}

	s.mu.Lock()
	s.state.AdminUser = user
	s.adminPassHash = hash
	s.appendLogLocked(model.LogLevelWarn, "Admin credentials updated.")
	s.mu.Unlock()

	metrics.SettingsUpdates.WithLabelValues("admin_credentials").Inc()
	s.sleep(s.opts.Latency.CredentialsUpdate)
	return nil
}

// AdminPasswordMatches reports whether password equals the last one set through
// UpdateAdminCredentials. It is false until a password was set.
func (s *Store) AdminPasswordMatches(password string) bool {
	s.mu.Lock()
	hash := s.adminPassHash
	s.mu.Unlock()
	if len(hash) == 0 {
		return false
	}
	return bcrypt.CompareHashAndPassword(hash, passwordDigest(password)) == nil
}

// passwordDigest keeps bcrypt input under its 72-byte limit for any password length.
func passwordDigest(password string) []byte {
	sum := sha256.Sum256([]byte(password))
	return []byte(hex.EncodeToString(sum[:]))
}

// Reboot holds the router DISCONNECTED for the reboot latency and then forces it
// back to CONNECTED without probing. The wait cannot be cancelled.
func (s *Store) Reboot(ctx context.Context) error {
	if err := s.beginReboot(); err != nil {
		return err
	}
	s.holdReboot()
	return nil
}

// RebootAsync marks the reboot before returning and runs the hold in the
// background. done, if set, runs once the router is back.
func (s *Store) RebootAsync(ctx context.Context, done func()) error {
	if err := s.beginReboot(); err != nil {
		return err
	}
	go func() {
		s.holdReboot()
		if done != nil {
			done()
		}
	}()
	return nil
}

func (s *Store) beginReboot() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rebooting {
		return routerdomain.ErrRebootInProgress
	}
	s.rebooting = true
	s.state.Status = model.ConnectionStatusDisconnected
	s.appendLogLocked(model.LogLevelWarn, "Router hardware rebooting...")
	metrics.SetConnectionStatus(s.state.Status)
	return nil
}

func (s *Store) holdReboot() {
	s.logger.Info("reboot started", "hold", s.opts.Latency.Reboot)
	s.sleep(s.opts.Latency.Reboot)

	if restarter, ok := s.telemetry.(telemetry.Restarter); ok {
		restarter.MarkRestarted()
	}

	s.mu.Lock()
	s.rebooting = false
	s.state.Status = model.ConnectionStatusConnected
	metrics.SetConnectionStatus(s.state.Status)
	s.mu.Unlock()

	s.logger.Info("reboot finished")
}

// Rebooting reports whether a reboot hold is in progress.
func (s *Store) Rebooting() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rebooting
}
