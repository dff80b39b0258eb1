package launcher

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"go.uber.org/zap"
)

const (
	DefaultPollInterval     = 10 * time.Second
	DefaultDiscoveryTimeout = 8 * time.Minute
)

// EnvReader reads one environment variable of a host.
type EnvReader interface {
	Getenv(ctx context.Context, name string) (value string, ok bool, err error)
}

type DiscoveryOptions struct {
	Interval time.Duration
	Timeout  time.Duration
	Clock    clock.Clock
	Logger   *zap.SugaredLogger
}

func (o DiscoveryOptions) withDefaults() DiscoveryOptions {
	if o.Interval <= 0 {
		o.Interval = DefaultPollInterval
	}
	if o.Timeout <= 0 {
		o.Timeout = DefaultDiscoveryTimeout
	}
	if o.Clock == nil {
		o.Clock = clock.New()
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop().Sugar()
	}
	return o
}

// DiscoverPort polls PortVariable until it carries prefix followed by a
// positive port. Values behind any other prefix belong to another launch and
// are ignored.
func DiscoverPort(ctx context.Context, src EnvReader, prefix string, opts DiscoveryOptions) (int, error) {
	opts = opts.withDefaults()
	start := opts.Clock.Now()
	for {
		value, ok, err := src.Getenv(ctx, PortVariable)
		switch {
		case err != nil:
			opts.Logger.Debugw("reading port variable failed", "error", err)
		case ok:
			if port, match := parsePort(value, prefix); match {
				return port, nil
			}
		}
		if opts.Clock.Since(start) >= opts.Timeout {
			return 0, fmt.Errorf("%w (%s)", ErrPortDiscoveryTimeout, opts.Timeout)
		}
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		case <-opts.Clock.After(opts.Interval):
		}
	}
}

func parsePort(value, prefix string) (int, bool) {
	rest, found := strings.CutPrefix(strings.TrimSpace(value), prefix)
	if !found || prefix == "" {
		return 0, false
	}
	port, err := strconv.Atoi(rest)
	if err != nil || port <= 0 {
		return 0, false
	}
	return port, true
}
