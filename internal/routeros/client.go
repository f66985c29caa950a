package routeros

import (
	"context"
	"crypto/tls"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	goros "github.com/go-routeros/routeros/v3"
)

const maxRunAttempts = 2

// Reply is a raw API reply.
type Reply = goros.Reply

// Client is a lazily connected RouterOS API session that redials once on
// connection-level failures.
type Client struct {
	config Config
	logger *slog.Logger

	mu     sync.Mutex
	conn   *goros.Client
	closed chan struct{}
	once   sync.Once

	dialFn  func(ctx context.Context, cfg Config) (*goros.Client, error)
	runFn   func(ctx context.Context, conn *goros.Client, cmd string, args ...string) (*goros.Reply, error)
	closeFn func(conn *goros.Client) error
	sleepFn func(ctx context.Context, wait time.Duration) error
}

// NewClient validates cfg and returns an unconnected client.
func NewClient(cfg Config, logger *slog.Logger) (*Client, error) {
	normalized, err := normalizeConfig(cfg)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		config:  normalized,
		logger:  logger,
		closed:  make(chan struct{}),
		dialFn:  dial,
		runFn:   run,
		closeFn: closeConn,
		sleepFn: sleep,
	}, nil
}

// Run executes one API command, reconnecting once if the session dropped.
func (c *Client) Run(ctx context.Context, cmd string, args ...string) (*goros.Reply, error) {
	var lastErr error
	for attempt := 1; attempt <= maxRunAttempts; attempt++ {
		if c.isClosed() {
			return nil, &CommandError{Command: cmd, Err: errors.New("client closed")}
		}
		conn, err := c.connection(ctx)
		if err != nil {
			lastErr = err
		} else {
			reply, runErr := c.runFn(ctx, conn, cmd, args...)
			if runErr == nil {
				return reply, nil
			}
			lastErr = runErr
			if !isRetryableError(runErr) {
				return nil, &CommandError{Command: cmd, Err: runErr}
			}
			c.dropConnection(conn)
		}
		if attempt < maxRunAttempts {
			c.logger.Warn("routeros command failed, reconnecting", "cmd", cmd, "attempt", attempt, "err", lastErr)
			if err := c.sleepFn(ctx, time.Duration(attempt)*200*time.Millisecond); err != nil {
				return nil, err
			}
		}
	}
	return nil, &CommandError{Command: cmd, Err: lastErr}
}

// Close terminates the active session. The client is unusable afterwards.
func (c *Client) Close() error {
	var err error
	c.once.Do(func() {
		close(c.closed)
		c.mu.Lock()
		defer c.mu.Unlock()
		if c.conn != nil {
			err = c.closeFn(c.conn)
			c.conn = nil
		}
	})
	return err
}

func (c *Client) connection(ctx context.Context) (*goros.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != nil {
		return c.conn, nil
	}
	conn, err := c.dialFn(ctx, c.config)
	if err != nil {
		return nil, err
	}
	c.conn = conn
	return conn, nil
}

func (c *Client) dropConnection(conn *goros.Client) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.conn != conn {
		return
	}
	if err := c.closeFn(conn); err != nil {
		c.logger.Debug("closing stale routeros session failed", "err", err)
	}
	c.conn = nil
}

func (c *Client) isClosed() bool {
	select {
	case <-c.closed:
		return true
	default:
		return false
	}
}

func dial(ctx context.Context, cfg Config) (*goros.Client, error) {
	dialCtx, cancel := context.WithTimeout(ctx, cfg.Timeout)
	defer cancel()
	if cfg.UseTLS {
		return goros.DialTLSContext(dialCtx, cfg.Address, cfg.Username, cfg.Password, &tls.Config{MinVersion: tls.VersionTLS12})
	}
	return goros.DialContext(dialCtx, cfg.Address, cfg.Username, cfg.Password)
}

func run(ctx context.Context, conn *goros.Client, cmd string, args ...string) (*goros.Reply, error) {
	sentence := append([]string{cmd}, args...)
	return conn.RunContext(ctx, sentence...)
}

func closeConn(conn *goros.Client) error {
	if conn == nil {
		return nil
	}
	return conn.Close()
}

func sleep(ctx context.Context, wait time.Duration) error {
	timer := time.NewTimer(wait)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
