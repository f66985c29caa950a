package router

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"sync"
	"testing"
	"time"

	routerdomain "github.com/micro-ha/netis-dashboard/internal/domain/router"
	"github.com/micro-ha/netis-dashboard/internal/model"
	"github.com/micro-ha/netis-dashboard/internal/probe"
	"github.com/micro-ha/netis-dashboard/internal/telemetry"
)

type fakeProber struct {
	mu       sync.Mutex
	failures map[string]bool
	calls    []string
	timeouts []time.Duration
}

func newFakeProber() *fakeProber {
	return &fakeProber{failures: map[string]bool{}}
}

func (p *fakeProber) Probe(ctx context.Context, ip string, timeout time.Duration) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls = append(p.calls, ip)
	p.timeouts = append(p.timeouts, timeout)
	if p.failures[ip] {
		return &probe.UnreachableError{Target: probe.TargetURL(ip), Err: errors.New("connection refused")}
	}
	return nil
}

func (p *fakeProber) setFailing(ip string, failing bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.failures[ip] = failing
}

type memoryAddresses struct {
	ip      string
	user    string
	saveErr error
}

func (r *memoryAddresses) LoadAddress(ctx context.Context) (string, string, error) {
	return r.ip, r.user, nil
}

func (r *memoryAddresses) SaveAddress(ctx context.Context, ip, user string) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	r.ip = ip
	if user != "" {
		r.user = user
	}
	return nil
}

type failingSource struct{}

func (failingSource) Stats(ctx context.Context, prev model.RouterStats) (model.RouterStats, error) {
	return prev, errors.New("telemetry offline")
}

func (failingSource) Devices(ctx context.Context) ([]model.Device, error) {
	return nil, errors.New("telemetry offline")
}

func newTestStore(t *testing.T, prober probe.Prober, gateway string) *Store {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	store := New(prober, telemetry.NewSimulatedWithSeed(3, nil), nil, logger, Options{
		DefaultGateway: gateway,
		Latency:        &Latency{},
	})
	store.sleep = func(time.Duration) {}
	return store
}

func countLevel(logs []model.SystemLog, level model.LogLevel) int {
	count := 0
	for _, entry := range logs {
		if entry.Level == level {
			count++
		}
	}
	return count
}

func TestNewStartsConnecting(t *testing.T) {
	store := newTestStore(t, newFakeProber(), "")
	state := store.Snapshot()

	if state.Status != model.ConnectionStatusConnecting {
		t.Fatalf("Status = %s, want CONNECTING", state.Status)
	}
	if store.Gateway() != defaultGateway {
		t.Fatalf("Gateway() = %q, want %q", store.Gateway(), defaultGateway)
	}
	if state.AdminUser != "admin" || state.Wifi.SSID != "Netis_Primary" || state.GuestWifi.SSID != "Netis_Guest" {
		t.Fatalf("unexpected initial state %+v", state)
	}
	if state.GuestWifi.Isolation == nil || !*state.GuestWifi.Isolation {
		t.Fatalf("expected guest isolation enabled")
	}
	logs := store.Logs(10)
	if len(logs) != 1 || logs[0].Level != model.LogLevelInfo {
		t.Fatalf("expected one INFO init log, got %+v", logs)
	}
}

func TestFetchStatusFailureSetsErrorAndKeepsData(t *testing.T) {
	prober := newFakeProber()
	store := newTestStore(t, prober, "192.168.1.1")

	first := store.FetchStatus(context.Background())
	if first.Status != model.ConnectionStatusConnected {
		t.Fatalf("Status = %s, want CONNECTED", first.Status)
	}

	prober.setFailing("192.168.1.1", true)
	state := store.FetchStatus(context.Background())

	if state.Status != model.ConnectionStatusError {
		t.Fatalf("Status = %s, want ERROR", state.Status)
	}
	if state.Error == nil || !strings.Contains(*state.Error, "192.168.1.1") {
		t.Fatalf("expected error message naming the gateway, got %v", state.Error)
	}
	if len(state.Devices) != len(first.Devices) {
		t.Fatalf("devices changed on failure: %d -> %d", len(first.Devices), len(state.Devices))
	}
	if state.Wifi != first.Wifi || state.Stats != first.Stats {
		t.Fatalf("config or stats changed on failure")
	}
}

func TestFetchStatusSuccessClearsErrorWithinRanges(t *testing.T) {
	prober := newFakeProber()
	prober.setFailing("192.168.1.1", true)
	store := newTestStore(t, prober, "192.168.1.1")

	if state := store.FetchStatus(context.Background()); state.Error == nil {
		t.Fatalf("expected error after failed probe")
	}

	prober.setFailing("192.168.1.1", false)
	for i := 0; i < 50; i++ {
		state := store.FetchStatus(context.Background())
		if state.Status != model.ConnectionStatusConnected {
			t.Fatalf("Status = %s, want CONNECTED", state.Status)
		}
		if state.Error != nil {
			t.Fatalf("expected error cleared, got %q", *state.Error)
		}
		if state.Stats.CPUUsage < 10 || state.Stats.CPUUsage >= 30 {
			t.Fatalf("CPUUsage = %v out of range", state.Stats.CPUUsage)
		}
		if state.Stats.RAMUsage < 42 || state.Stats.RAMUsage >= 47 {
			t.Fatalf("RAMUsage = %v out of range", state.Stats.RAMUsage)
		}
		if state.Stats.Firmware != "V3.3.42541" {
			t.Fatalf("Firmware = %q", state.Stats.Firmware)
		}
	}
}

func TestFetchStatusDoesNotFloodErrorLogs(t *testing.T) {
	prober := newFakeProber()
	prober.setFailing("10.0.0.1", true)
	store := newTestStore(t, prober, "10.0.0.1")

	state := store.FetchStatus(context.Background())
	if state.Status != model.ConnectionStatusError {
		t.Fatalf("Status = %s, want ERROR", state.Status)
	}
	if state.Error == nil || !strings.Contains(*state.Error, "10.0.0.1") {
		t.Fatalf("expected error containing 10.0.0.1, got %v", state.Error)
	}
	logs := store.Logs(10)
	if countLevel(logs, model.LogLevelError) != 1 {
		t.Fatalf("expected one ERROR entry, got %+v", logs)
	}
	if logs[0].Level != model.LogLevelError || !strings.Contains(logs[0].Message, "connection refused") {
		t.Fatalf("expected newest entry to be the probe failure, got %+v", logs[0])
	}

	store.FetchStatus(context.Background())
	store.FetchStatus(context.Background())
	if got := countLevel(store.Logs(10), model.LogLevelError); got != 1 {
		t.Fatalf("expected still one ERROR entry, got %d", got)
	}

	prober.setFailing("10.0.0.1", false)
	store.FetchStatus(context.Background())
	if got := countLevel(store.Logs(10), model.LogLevelError); got != 1 {
		t.Fatalf("success must not add ERROR entries, got %d", got)
	}
}

func TestFetchStatusLogsAgainAfterInterveningEntry(t *testing.T) {
	prober := newFakeProber()
	store := newTestStore(t, prober, "10.0.0.1")
	store.FetchStatus(context.Background())

	prober.setFailing("10.0.0.1", true)
	store.FetchStatus(context.Background())
	store.ToggleDeviceBlock(context.Background(), "1")
	store.FetchStatus(context.Background())

	if got := countLevel(store.Logs(0), model.LogLevelError); got != 2 {
		t.Fatalf("expected 2 ERROR entries once the tail is not ERROR, got %d", got)
	}
}

func TestFetchStatusUsesStatusTimeout(t *testing.T) {
	prober := newFakeProber()
	store := newTestStore(t, prober, "192.168.1.1")
	store.FetchStatus(context.Background())

	if len(prober.timeouts) != 1 || prober.timeouts[0] != 2*time.Second {
		t.Fatalf("expected one probe with 2s deadline, got %v", prober.timeouts)
	}
}

func TestDevicesSeededExactlyOnce(t *testing.T) {
	prober := newFakeProber()
	store := newTestStore(t, prober, "192.168.1.1")

	if got := len(store.Snapshot().Devices); got != 0 {
		t.Fatalf("expected no devices before first probe, got %d", got)
	}
	for i := 0; i < 5; i++ {
		state := store.FetchStatus(context.Background())
		if len(state.Devices) != 3 {
			t.Fatalf("expected 3 devices after probe %d, got %d", i, len(state.Devices))
		}
	}
	store.ToggleDeviceBlock(context.Background(), "2")
	state := store.FetchStatus(context.Background())
	if len(state.Devices) != 3 || !state.Devices[1].Blocked {
		t.Fatalf("expected seed kept with block flag, got %+v", state.Devices)
	}
}

func TestFetchStatusReturnsIndependentCopy(t *testing.T) {
	store := newTestStore(t, newFakeProber(), "192.168.1.1")

	state := store.FetchStatus(context.Background())
	state.Devices[0].Blocked = true
	state.Devices = state.Devices[:1]
	state.Wifi.SSID = "hijacked"

	again := store.Snapshot()
	if len(again.Devices) != 3 || again.Devices[0].Blocked || again.Wifi.SSID != "Netis_Primary" {
		t.Fatalf("shared state mutated through snapshot: %+v", again)
	}
}

func TestFetchStatusStampsLastUpdate(t *testing.T) {
	prober := newFakeProber()
	prober.setFailing("192.168.1.1", true)
	store := newTestStore(t, prober, "192.168.1.1")
	now := time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return now }

	if got := store.FetchStatus(context.Background()).LastUpdate; got != now.UnixMilli() {
		t.Fatalf("LastUpdate = %d, want %d", got, now.UnixMilli())
	}
}

func TestFetchStatusKeepsStatsWhenTelemetryFails(t *testing.T) {
	store := New(newFakeProber(), failingSource{}, nil, nil, Options{Latency: &Latency{}})

	state := store.FetchStatus(context.Background())
	if state.Status != model.ConnectionStatusConnected {
		t.Fatalf("Status = %s, want CONNECTED", state.Status)
	}
	if state.Stats.Firmware != "--" || len(state.Devices) != 0 {
		t.Fatalf("expected initial stats and no devices, got %+v", state)
	}
}

func TestToggleDeviceBlockIsInvertible(t *testing.T) {
	store := newTestStore(t, newFakeProber(), "192.168.1.1")
	var slept []time.Duration
	store.opts.Latency.DeviceToggle = 800 * time.Millisecond
	store.sleep = func(d time.Duration) { slept = append(slept, d) }
	store.FetchStatus(context.Background())

	device, found := store.ToggleDeviceBlock(context.Background(), "3")
	if !found || !device.Blocked {
		t.Fatalf("expected device 3 blocked, got %+v found=%v", device, found)
	}
	logs := store.Logs(1)
	if logs[0].Message != "Access Control: Guest-Mobile (192.168.1.22) has been blocked." {
		t.Fatalf("unexpected log %q", logs[0].Message)
	}

	device, _ = store.ToggleDeviceBlock(context.Background(), "3")
	if device.Blocked {
		t.Fatalf("expected device 3 unblocked after second toggle")
	}
	if store.Logs(1)[0].Message != "Access Control: Guest-Mobile (192.168.1.22) has been unblocked." {
		t.Fatalf("unexpected log %q", store.Logs(1)[0].Message)
	}
	if len(slept) != 2 || slept[0] != 800*time.Millisecond {
		t.Fatalf("expected two 800ms delays, got %v", slept)
	}
}

func TestToggleDeviceBlockUnknownIDIsNoop(t *testing.T) {
	store := newTestStore(t, newFakeProber(), "192.168.1.1")
	store.FetchStatus(context.Background())
	before := store.Logs(0)

	if _, found := store.ToggleDeviceBlock(context.Background(), "missing"); found {
		t.Fatalf("expected not found")
	}
	if len(store.Logs(0)) != len(before) {
		t.Fatalf("expected no log entry for unknown device")
	}
}

func TestUpdateWifiReplacesWholesale(t *testing.T) {
	store := newTestStore(t, newFakeProber(), "192.168.1.1")

	store.UpdateWifi(context.Background(), model.WifiConfig{SSID: "Home", Password: "secret123", Channel: 1, Encryption: "WPA3-SAE"})
	isolation := false
	store.UpdateGuestWifi(context.Background(), model.WifiConfig{SSID: "Visitors", Enabled: true, Channel: 11, Isolation: &isolation})
	isolation = true

	state := store.Snapshot()
	if state.Wifi.SSID != "Home" || state.Wifi.Enabled || state.Wifi.Encryption != "WPA3-SAE" {
		t.Fatalf("unexpected primary wifi %+v", state.Wifi)
	}
	if state.GuestWifi.SSID != "Visitors" || *state.GuestWifi.Isolation {
		t.Fatalf("unexpected guest wifi %+v", state.GuestWifi)
	}
	logs := store.Logs(2)
	if logs[0].Message != "Guest SSID updated." || logs[1].Message != "Primary SSID updated." {
		t.Fatalf("unexpected logs %+v", logs)
	}
	if logs[0].Level != model.LogLevelInfo {
		t.Fatalf("expected INFO level, got %s", logs[0].Level)
	}
}

func TestUpdateAdminCredentials(t *testing.T) {
	store := newTestStore(t, newFakeProber(), "192.168.1.1")

	if store.AdminPasswordMatches("anything") {
		t.Fatalf("expected no password before update")
	}
	if err := store.UpdateAdminCredentials(context.Background(), "root", "n3w-pass"); err != nil {
		t.Fatalf("UpdateAdminCredentials() error: %v", err)
	}
	if store.Snapshot().AdminUser != "root" {
		t.Fatalf("AdminUser not replaced")
	}
	if !store.AdminPasswordMatches("n3w-pass") || store.AdminPasswordMatches("wrong") {
		t.Fatalf("password hash not stored")
	}
	if entry := store.Logs(1)[0]; entry.Level != model.LogLevelWarn || entry.Message != "Admin credentials updated." {
		t.Fatalf("unexpected log %+v", entry)
	}
}

func TestRebootHoldsDisconnectedThenForcesConnected(t *testing.T) {
	prober := newFakeProber()
	store := newTestStore(t, prober, "192.168.1.1")
	store.opts.Latency.Reboot = 45 * time.Second

	holding := make(chan time.Duration, 1)
	release := make(chan struct{})
	store.sleep = func(d time.Duration) {
		holding <- d
		<-release
	}

	done := make(chan error, 1)
	go func() { done <- store.Reboot(context.Background()) }()

	if d := <-holding; d != 45*time.Second {
		t.Fatalf("reboot hold = %v, want 45s", d)
	}
	if status := store.Snapshot().Status; status != model.ConnectionStatusDisconnected {
		t.Fatalf("Status = %s, want DISCONNECTED", status)
	}
	if status := store.FetchStatus(context.Background()).Status; status != model.ConnectionStatusDisconnected {
		t.Fatalf("poll during reboot changed status to %s", status)
	}
	if len(prober.calls) != 0 {
		t.Fatalf("expected no probe during reboot, got %v", prober.calls)
	}
	if err := store.Reboot(context.Background()); !errors.Is(err, routerdomain.ErrRebootInProgress) {
		t.Fatalf("expected ErrRebootInProgress, got %v", err)
	}
	if entry := store.Logs(1)[0]; entry.Message != "Router hardware rebooting..." || entry.Level != model.LogLevelWarn {
		t.Fatalf("unexpected log %+v", entry)
	}

	prober.setFailing("192.168.1.1", true)
	close(release)
	if err := <-done; err != nil {
		t.Fatalf("Reboot() error: %v", err)
	}
	if status := store.Snapshot().Status; status != model.ConnectionStatusConnected {
		t.Fatalf("Status = %s, want CONNECTED after reboot", status)
	}
	if store.Rebooting() {
		t.Fatalf("expected reboot flag cleared")
	}
}

func TestLoginSuccessSwitchesGatewayAndPersists(t *testing.T) {
	prober := newFakeProber()
	addresses := &memoryAddresses{}
	store := New(prober, telemetry.NewSimulatedWithSeed(1, nil), addresses, nil, Options{Latency: &Latency{}})

	ok, err := store.Login(context.Background(), " 192.168.0.1 ", "operator", "ignored")
	if err != nil || !ok {
		t.Fatalf("Login() = %v, %v; want true, nil", ok, err)
	}
	if store.Gateway() != "192.168.0.1" || store.Snapshot().AdminUser != "operator" {
		t.Fatalf("gateway or user not applied")
	}
	if addresses.ip != "192.168.0.1" || addresses.user != "operator" {
		t.Fatalf("address not persisted: %+v", addresses)
	}
	if prober.timeouts[0] != 3*time.Second {
		t.Fatalf("login probe deadline = %v, want 3s", prober.timeouts[0])
	}

	store.FetchStatus(context.Background())
	if last := prober.calls[len(prober.calls)-1]; last != "192.168.0.1" {
		t.Fatalf("status probe went to %q, want new gateway", last)
	}
}

func TestLoginFailureChangesNothing(t *testing.T) {
	prober := newFakeProber()
	prober.setFailing("10.9.9.9", true)
	addresses := &memoryAddresses{}
	store := New(prober, telemetry.NewSimulatedWithSeed(1, nil), addresses, nil, Options{Latency: &Latency{}})
	logsBefore := len(store.Logs(0))

	ok, err := store.Login(context.Background(), "10.9.9.9", "intruder", "x")
	if err != nil || ok {
		t.Fatalf("Login() = %v, %v; want false, nil", ok, err)
	}
	if store.Gateway() != defaultGateway || store.Snapshot().AdminUser != "admin" {
		t.Fatalf("state changed on failed login")
	}
	if addresses.ip != "" {
		t.Fatalf("address persisted on failed login")
	}
	if len(store.Logs(0)) != logsBefore {
		t.Fatalf("failed login must not log")
	}
}

func TestLoginPersistFailureKeepsState(t *testing.T) {
	addresses := &memoryAddresses{saveErr: errors.New("disk full")}
	store := New(newFakeProber(), telemetry.NewSimulatedWithSeed(1, nil), addresses, nil, Options{Latency: &Latency{}})

	ok, err := store.Login(context.Background(), "192.168.0.1", "operator", "")
	if ok || err == nil {
		t.Fatalf("Login() = %v, %v; want false and error", ok, err)
	}
	if store.Gateway() != defaultGateway {
		t.Fatalf("gateway changed despite persistence failure")
	}
}

func TestRestoreLoadsSavedAddress(t *testing.T) {
	addresses := &memoryAddresses{ip: "10.0.0.138", user: "netis"}
	store := New(newFakeProber(), telemetry.NewSimulatedWithSeed(1, nil), addresses, nil, Options{})

	if err := store.Restore(context.Background()); err != nil {
		t.Fatalf("Restore() error: %v", err)
	}
	if store.Gateway() != "10.0.0.138" || store.Snapshot().AdminUser != "netis" {
		t.Fatalf("restore not applied")
	}
}

func TestLogsNewestFirstAndCapped(t *testing.T) {
	store := New(newFakeProber(), telemetry.NewSimulatedWithSeed(1, nil), nil, nil, Options{LogCapacity: 3, Latency: &Latency{}})
	store.sleep = func(time.Duration) {}

	store.UpdateWifi(context.Background(), model.WifiConfig{SSID: "a"})
	store.UpdateGuestWifi(context.Background(), model.WifiConfig{SSID: "b"})
	_ = store.UpdateAdminCredentials(context.Background(), "c", "pw")

	logs := store.Logs(0)
	if len(logs) != 3 {
		t.Fatalf("expected capacity of 3 entries, got %d", len(logs))
	}
	want := []string{"Admin credentials updated.", "Guest SSID updated.", "Primary SSID updated."}
	for i, message := range want {
		if logs[i].Message != message {
			t.Fatalf("logs[%d] = %q, want %q", i, logs[i].Message, message)
		}
	}
	if got := store.Logs(2); len(got) != 2 {
		t.Fatalf("expected limit to apply, got %d", len(got))
	}
}

func TestRebootAsyncMarksBeforeReturning(t *testing.T) {
	store := newTestStore(t, newFakeProber(), "192.168.1.1")
	release := make(chan struct{})
	store.sleep = func(time.Duration) { <-release }

	finished := make(chan struct{})
	if err := store.RebootAsync(context.Background(), func() { close(finished) }); err != nil {
		t.Fatalf("RebootAsync() error: %v", err)
	}
	if !store.Rebooting() || store.Snapshot().Status != model.ConnectionStatusDisconnected {
		t.Fatalf("expected reboot marked synchronously")
	}
	if err := store.RebootAsync(context.Background(), nil); !errors.Is(err, routerdomain.ErrRebootInProgress) {
		t.Fatalf("expected ErrRebootInProgress, got %v", err)
	}

	close(release)
	select {
	case <-finished:
	case <-time.After(5 * time.Second):
		t.Fatalf("reboot did not finish")
	}
	if store.Snapshot().Status != model.ConnectionStatusConnected {
		t.Fatalf("expected CONNECTED after reboot")
	}
}

type gatedChecker struct {
	*fakeProber
	gatedIP string
	entered chan struct{}
	release chan struct{}
}

func (p *gatedChecker) Probe(ctx context.Context, ip string, timeout time.Duration) error {
	if ip == p.gatedIP {
		close(p.entered)
		<-p.release
	}
	return p.fakeProber.Probe(ctx, ip, timeout)
}

func TestFetchStatusDropsResultForReplacedGateway(t *testing.T) {
	tests := []struct {
		name     string
		oldFails bool
	}{
		{name: "stale failure", oldFails: true},
		{name: "stale success", oldFails: false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			base := newFakeProber()
			base.setFailing("10.0.0.1", tc.oldFails)
			checker := &gatedChecker{fakeProber: base, gatedIP: "10.0.0.1", entered: make(chan struct{}), release: make(chan struct{})}
			store := newTestStore(t, checker, "10.0.0.1")

			done := make(chan model.RouterState, 1)
			go func() { done <- store.FetchStatus(context.Background()) }()
			<-checker.entered

			ok, err := store.Login(context.Background(), "192.168.1.1", "operator", "")
			if err != nil || !ok {
				t.Fatalf("Login() = %v, %v", ok, err)
			}
			close(checker.release)

			var state model.RouterState
			select {
			case state = <-done:
			case <-time.After(5 * time.Second):
				t.Fatalf("FetchStatus did not return")
			}
			if state.Status != model.ConnectionStatusConnecting || state.Error != nil {
				t.Fatalf("stale result applied: status=%s error=%v", state.Status, state.Error)
			}
			if got := countLevel(store.Logs(0), model.LogLevelError); got != 0 {
				t.Fatalf("expected no ERROR log for replaced gateway, got %d", got)
			}
			if store.Gateway() != "192.168.1.1" {
				t.Fatalf("Gateway() = %q", store.Gateway())
			}

			if next := store.FetchStatus(context.Background()); next.Status != model.ConnectionStatusConnected {
				t.Fatalf("next poll status = %s, want CONNECTED", next.Status)
			}
		})
	}
}

func TestUpdateAdminCredentialsAcceptsLongPassword(t *testing.T) {
	store := newTestStore(t, newFakeProber(), "192.168.1.1")
	long := strings.Repeat("p", 73)

	if err := store.UpdateAdminCredentials(context.Background(), "root", long); err != nil {
		t.Fatalf("UpdateAdminCredentials() error: %v", err)
	}
	if store.Snapshot().AdminUser != "root" {
		t.Fatalf("AdminUser not replaced")
	}
	if entry := store.Logs(1)[0]; entry.Message != "Admin credentials updated." {
		t.Fatalf("unexpected newest log %+v", entry)
	}
	if !store.AdminPasswordMatches(long) || store.AdminPasswordMatches(strings.Repeat("p", 72)) {
		t.Fatalf("long password hash does not distinguish past 72 bytes")
	}
}

func TestLoginBlankUserKeepsAdminUser(t *testing.T) {
	addresses := &memoryAddresses{ip: "192.168.1.1", user: "netis"}
	store := New(newFakeProber(), telemetry.NewSimulatedWithSeed(1, nil), addresses, nil, Options{Latency: &Latency{}})
	if err := store.Restore(context.Background()); err != nil {
		t.Fatalf("Restore() error: %v", err)
	}

	ok, err := store.Login(context.Background(), "192.168.0.1", "  ", "")
	if err != nil || !ok {
		t.Fatalf("Login() = %v, %v", ok, err)
	}
	if store.Snapshot().AdminUser != "netis" || addresses.user != "netis" {
		t.Fatalf("AdminUser = %q, saved user = %q, want netis", store.Snapshot().AdminUser, addresses.user)
	}
	if addresses.ip != "192.168.0.1" {
		t.Fatalf("saved ip = %q", addresses.ip)
	}
}
