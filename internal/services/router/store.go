// Package router holds the dashboard's single router-state aggregate. Every
// mutation goes through Store methods; callers only ever receive deep copies.
package router

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"sync"
	"time"

	routerdomain "github.com/micro-ha/netis-dashboard/internal/domain/router"
	"github.com/micro-ha/netis-dashboard/internal/model"
	"github.com/micro-ha/netis-dashboard/internal/pkg/utils"
	"github.com/micro-ha/netis-dashboard/internal/probe"
	"github.com/micro-ha/netis-dashboard/internal/telemetry"
)

const (
	defaultGateway        = "192.168.1.1"
	defaultStatusTimeout  = 2 * time.Second
	defaultLoginTimeout   = 3 * time.Second
	defaultLogCapacity    = 1000
	defaultAdminUser      = "admin"
	defaultRouterModel    = "Netis WF2409E"
	placeholderStatsValue = "--"
)

// Latency holds the simulated hardware delays applied after mutations.
type Latency struct {
	DeviceToggle      time.Duration
	WifiUpdate        time.Duration
	CredentialsUpdate time.Duration
	Reboot            time.Duration
}

func DefaultLatency() Latency {
	return Latency{
		DeviceToggle:      800 * time.Millisecond,
		WifiUpdate:        1000 * time.Millisecond,
		CredentialsUpdate: 1500 * time.Millisecond,
		Reboot:            45000 * time.Millisecond,
	}
}

// Options tunes a Store. Zero values fall back to defaults.
type Options struct {
	DefaultGateway     string
	StatusProbeTimeout time.Duration
	LoginProbeTimeout  time.Duration
	LogCapacity        int
	Latency            *Latency
}

func (o Options) normalize() Options {
	if strings.TrimSpace(o.DefaultGateway) == "" {
		o.DefaultGateway = defaultGateway
	}
	if o.StatusProbeTimeout <= 0 {
		o.StatusProbeTimeout = defaultStatusTimeout
	}
	if o.LoginProbeTimeout <= 0 {
		o.LoginProbeTimeout = defaultLoginTimeout
	}
	if o.LogCapacity <= 0 {
		o.LogCapacity = defaultLogCapacity
	}
	if o.Latency == nil {
		latency := DefaultLatency()
		o.Latency = &latency
	}
	return o
}

// Store implements routerdomain.Service.
type Store struct {
	prober    probe.Prober
	telemetry telemetry.Source
	addresses routerdomain.AddressRepository
	logger    *slog.Logger
	opts      Options

	now   func() time.Time
	sleep func(time.Duration)

	mu            sync.Mutex
	state         model.RouterState
	logs          []model.SystemLog
	gateway       string
	adminPassHash []byte
	rebooting     bool
}

var _ routerdomain.Service = (*Store)(nil)

// New creates the store in its initial CONNECTING state. addresses may be nil.
func New(
	prober probe.Prober,
	source telemetry.Source,
	addresses routerdomain.AddressRepository,
	logger *slog.Logger,
	opts Options,
) *Store {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	opts = opts.normalize()
	s := &Store{
		prober:    prober,
		telemetry: source,
		addresses: addresses,
		logger:    logger,
		opts:      opts,
		now:       utils.NowUTC,
		sleep:     time.Sleep,
		gateway:   opts.DefaultGateway,
		state:     initialState(),
	}
	s.logs = []model.SystemLog{{Timestamp: s.now(), Level: model.LogLevelInfo, Message: "Router dashboard initialized."}}
	s.state.LastUpdate = utils.UnixMillis(s.now())
	return s
}

func initialState() model.RouterState {
	isolation := true
	return model.RouterState{
		Status: model.ConnectionStatusConnecting,
		Stats: model.RouterStats{
			Uptime:   placeholderStatsValue,
			Model:    defaultRouterModel,
			Firmware: placeholderStatsValue,
		},
		Devices: []model.Device{},
		Wifi: model.WifiConfig{
			SSID:       "Netis_Primary",
			Enabled:    true,
			Channel:    6,
			Encryption: "WPA2-PSK",
		},
		GuestWifi: model.WifiConfig{
			SSID:       "Netis_Guest",
			Enabled:    false,
			Channel:    11,
			Encryption: "WPA2-PSK",
			Isolation:  &isolation,
		},
		AdminUser: defaultAdminUser,
	}
}

// Restore loads the last-used gateway address and username, if any were saved.
func (s *Store) Restore(ctx context.Context) error {
	if s.addresses == nil {
		return nil
	}
	ip, user, err := s.addresses.LoadAddress(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if ip = strings.TrimSpace(ip); ip != "" {
		s.gateway = ip
	}
	if user = strings.TrimSpace(user); user != "" {
		s.state.AdminUser = user
	}
	return nil
}

// Snapshot returns a copy of the current state without probing.
func (s *Store) Snapshot() model.RouterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Clone()
}

// Gateway returns the address status probes are sent to.
func (s *Store) Gateway() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gateway
}

// Logs returns up to limit entries, newest first. limit <= 0 returns all.
func (s *Store) Logs(limit int) []model.SystemLog {
	s.mu.Lock()
	defer s.mu.Unlock()

	if limit <= 0 || limit > len(s.logs) {
		limit = len(s.logs)
	}
	out := make([]model.SystemLog, 0, limit)
	for i := len(s.logs) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, s.logs[i])
	}
	return out
}

// appendLogLocked requires s.mu.
func (s *Store) appendLogLocked(level model.LogLevel, message string) {
	s.logs = append(s.logs, model.SystemLog{Timestamp: s.now(), Level: level, Message: message})
	if overflow := len(s.logs) - s.opts.LogCapacity; overflow > 0 {
		s.logs = append([]model.SystemLog(nil), s.logs[overflow:]...)
	}
}

func (s *Store) lastLogLevelLocked() model.LogLevel {
	if len(s.logs) == 0 {
		return ""
	}
	return s.logs[len(s.logs)-1].Level
}
