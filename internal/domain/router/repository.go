package router

import "context"

// AddressRepository persists the last-used gateway address and admin username.
type AddressRepository interface {
	LoadAddress(ctx context.Context) (ip string, user string, err error)
	SaveAddress(ctx context.Context, ip, user string) error
}
