package router

import "errors"

var (
	// ErrDeviceNotFound indicates missing device by id.
	ErrDeviceNotFound = errors.New("device not found")
	// ErrPasswordRequired rejects credential updates without a new password.
	ErrPasswordRequired = errors.New("password is required")
	// ErrRebootInProgress indicates a reboot is already holding the router offline.
	ErrRebootInProgress = errors.New("reboot already in progress")
)
