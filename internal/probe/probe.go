// Package probe checks whether a gateway answers HTTP at all. Response bodies and
// status codes are ignored; only transport-level success counts.
package probe

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"strings"
	"time"
)

const defaultTimeout = 2 * time.Second

// UnreachableError reports a failed or timed out reachability probe.
type UnreachableError struct {
	Target string
	Err    error
}

func (e *UnreachableError) Error() string {
	if e == nil {
		return "gateway unreachable"
	}
	return fmt.Sprintf("probe %s: %v", e.Target, e.Err)
}

func (e *UnreachableError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Prober is the reachability seam used by the router store.
type Prober interface {
	Probe(ctx context.Context, ip string, timeout time.Duration) error
}

// HTTPProber issues one opaque GET against http://<ip>/.
type HTTPProber struct {
	client *http.Client
}

func NewHTTPProber() *HTTPProber {
	return NewHTTPProberWithClient(nil)
}

func NewHTTPProberWithClient(client *http.Client) *HTTPProber {
	if client == nil {
		client = &http.Client{
			// Redirects would leave the gateway; the first answer is enough.
			CheckRedirect: func(*http.Request, []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}
	}
	return &HTTPProber{client: client}
}

// Probe returns nil when the gateway produced any HTTP response before timeout.
func (p *HTTPProber) Probe(ctx context.Context, ip string, timeout time.Duration) error {
	target := TargetURL(ip)
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return &UnreachableError{Target: target, Err: err}
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")

	resp, err := p.client.Do(req)
	if err != nil {
		return &UnreachableError{Target: target, Err: describe(err)}
	}
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	_ = resp.Body.Close()
	return nil
}

// TargetURL builds the probe URL for a gateway address. Bare hosts and host:port
// pairs are accepted; an explicit scheme is kept.
func TargetURL(ip string) string {
	host := strings.TrimSpace(ip)
	if strings.Contains(host, "://") {
		return strings.TrimSuffix(host, "/") + "/"
	}
	host = strings.Trim(host, "/")
	return "http://" + host + "/"
}

func describe(err error) error {
	var nerr net.Error
	if errors.As(err, &nerr) && nerr.Timeout() {
		return fmt.Errorf("timed out: %w", err)
	}
	return err
}
