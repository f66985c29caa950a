package router

import (
	"context"

	"github.com/micro-ha/netis-dashboard/internal/model"
)

// Service exposes router dashboard use-cases used by HTTP, poller and assistant layers.
type Service interface {
	FetchStatus(ctx context.Context) model.RouterState
	Snapshot() model.RouterState
	Logs(limit int) []model.SystemLog
	Gateway() string

	ToggleDeviceBlock(ctx context.Context, id string) (model.Device, bool)
	UpdateWifi(ctx context.Context, cfg model.WifiConfig)
	UpdateGuestWifi(ctx context.Context, cfg model.WifiConfig)
	UpdateAdminCredentials(ctx context.Context, user, password string) error
	Reboot(ctx context.Context) error
	RebootAsync(ctx context.Context, done func()) error
	Rebooting() bool

	Login(ctx context.Context, ip, user, password string) (bool, error)
}
