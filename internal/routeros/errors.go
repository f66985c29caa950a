package routeros

import (
	"errors"
	"fmt"
	"io"
	"net"
	"strings"

	goros "github.com/go-routeros/routeros/v3"
)

// ValidationError describes an invalid connection setting.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e == nil {
		return "validation error"
	}
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// CommandError wraps a failed API sentence with the command that produced it.
type CommandError struct {
	Command string
	Err     error
}

func (e *CommandError) Error() string {
	if e == nil {
		return "routeros command failed"
	}
	return fmt.Sprintf("routeros %s: %v", e.Command, e.Err)
}

func (e *CommandError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

func isRetryableError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, io.EOF) {
		return true
	}

	var deviceErr *goros.DeviceError
	if errors.As(err, &deviceErr) {
		return false
	}

	var nerr net.Error
	if errors.As(err, &nerr) {
		return true
	}

	message := strings.ToLower(err.Error())
	for _, marker := range []string{"broken pipe", "connection reset", "use of closed network connection"} {
		if strings.Contains(message, marker) {
			return true
		}
	}
	return false
}
