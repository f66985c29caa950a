package mock

import (
	"context"
	"strings"
	"sync"

	goros "github.com/go-routeros/routeros/v3"
	"github.com/go-routeros/routeros/v3/proto"
)

// Call stores one Run invocation.
type Call struct {
	Cmd  string
	Args []string
}

// Client answers RouterOS commands from canned replies keyed by command path.
type Client struct {
	mu      sync.Mutex
	Replies map[string]*goros.Reply
	Errors  map[string]error
	Calls   []Call
}

func (c *Client) Run(ctx context.Context, cmd string, args ...string) (*goros.Reply, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.Calls = append(c.Calls, Call{Cmd: cmd, Args: append([]string(nil), args...)})

	if err, ok := c.Errors[cmd]; ok {
		return nil, err
	}
	if reply, ok := c.Replies[cmd]; ok {
		return reply, nil
	}
	return &goros.Reply{Done: &proto.Sentence{Word: "!done", Map: map[string]string{}}}, nil
}

// Commands returns the command paths seen so far, in order.
func (c *Client) Commands() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.Calls))
	for _, call := range c.Calls {
		out = append(out, call.Cmd)
	}
	return out
}

// Called reports whether cmd was issued at least once.
func (c *Client) Called(cmd string) bool {
	for _, seen := range c.Commands() {
		if strings.EqualFold(seen, cmd) {
			return true
		}
	}
	return false
}

// Reply creates a RouterOS reply from map rows.
func Reply(rows ...map[string]string) *goros.Reply {
	re := make([]*proto.Sentence, 0, len(rows))
	for _, row := range rows {
		pairs := make([]proto.Pair, 0, len(row))
		copied := make(map[string]string, len(row))
		for key, value := range row {
			pairs = append(pairs, proto.Pair{Key: key, Value: value})
			copied[key] = value
		}
		re = append(re, &proto.Sentence{Word: "!re", Map: copied, List: pairs})
	}
	return &goros.Reply{Re: re, Done: &proto.Sentence{Word: "!done", Map: map[string]string{}}}
}
