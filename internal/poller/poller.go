package poller

import (
	"context"
	"log/slog"
	"time"

	"github.com/micro-ha/netis-dashboard/internal/model"
)

const defaultInterval = 5 * time.Second

// StatusFetcher is the slice of the router store the poller drives.
type StatusFetcher interface {
	FetchStatus(ctx context.Context) model.RouterState
}

// SessionChecker gates polling on an active dashboard session.
type SessionChecker interface {
	Active(ctx context.Context) bool
}

type Publisher interface {
	Publish(state model.RouterState)
}

type Poller struct {
	fetcher   StatusFetcher
	sessions  SessionChecker
	publisher Publisher
	interval  time.Duration
	refreshCh chan struct{}
	logger    *slog.Logger
}

// New creates a poller. sessions and publisher may be nil: without a checker
// every tick polls, without a publisher snapshots are only stored.
func New(fetcher StatusFetcher, sessions SessionChecker, publisher Publisher, interval time.Duration, logger *slog.Logger) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		fetcher:   fetcher,
		sessions:  sessions,
		publisher: publisher,
		interval:  interval,
		refreshCh: make(chan struct{}, 1),
		logger:    logger,
	}
}

// TriggerRefresh requests an immediate poll. Requests made while one is
// pending are coalesced.
func (p *Poller) TriggerRefresh() {
	select {
	case p.refreshCh <- struct{}{}:
	default:
	}
}

func (p *Poller) Run(ctx context.Context) {
	for {
		timer := time.NewTimer(p.interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-p.refreshCh:
			timer.Stop()
		case <-timer.C:
		}
		p.PollOnce(ctx)
	}
}

// PollOnce fetches status once and reports whether a poll happened.
func (p *Poller) PollOnce(ctx context.Context) bool {
	if p.sessions != nil && !p.sessions.Active(ctx) {
		p.logger.Debug("poll skipped; no active session")
		return false
	}
	state := p.fetcher.FetchStatus(ctx)
	if p.publisher != nil {
		p.publisher.Publish(state)
	}
	return true
}
