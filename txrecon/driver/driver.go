// Package driver periodically asks the tracker which peer is next to
// reconcile with and sends reconciliation requests to it.
package driver

import (
	"context"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-txrecon/txrecon"
)

//go:generate mockgen -typed -package=mocks -destination=./mocks/mocks.go -source=./driver.go

// RequestSender delivers reconciliation requests to peers.
type RequestSender interface {
	SendReconciliationRequest(ctx context.Context, peer txrecon.PeerID, params txrecon.RequestParams) error
}

// Tracker is the subset of txrecon.Tracker used by the driver.
type Tracker interface {
	RegisteredPeers() []txrecon.PeerID
	IsPeerNextToReconcileWith(id txrecon.PeerID, now time.Time) bool
	InitiateReconciliationRequest(id txrecon.PeerID) (txrecon.RequestParams, bool)
	CompleteReconciliationRound(id txrecon.PeerID) bool
}

type Config struct {
	// TickInterval is how often the driver polls the round scheduler.
	TickInterval time.Duration `mapstructure:"tick-interval"`
}

func DefaultConfig() Config {
	return Config{
		TickInterval: time.Second,
	}
}

type Opt func(*Driver)

func WithLogger(logger *zap.Logger) Opt {
	return func(d *Driver) {
		d.logger = logger
	}
}

func WithConfig(cfg Config) Opt {
	return func(d *Driver) {
		d.cfg = cfg
	}
}

// WithClock replaces the clock that drives the ticker and the round scheduler.
func WithClock(clock clockwork.Clock) Opt {
	return func(d *Driver) {
		d.clock = clock
	}
}

type Driver struct {
	logger  *zap.Logger
	cfg     Config
	clock   clockwork.Clock
	tracker Tracker
	sender  RequestSender
}

func New(tracker Tracker, sender RequestSender, opts ...Opt) *Driver {
	d := &Driver{
		logger:  zap.NewNop(),
		cfg:     DefaultConfig(),
		clock:   clockwork.NewRealClock(),
		tracker: tracker,
		sender:  sender,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.cfg.TickInterval <= 0 {
		panic(fmt.Sprintf("invalid tick interval %v", d.cfg.TickInterval))
	}
	return d
}

// Run polls the tracker every tick until the context is canceled.
func (d *Driver) Run(ctx context.Context) error {
	ticker := d.clock.NewTicker(d.cfg.TickInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.Chan():
			d.Tick(ctx)
		}
	}
}

// Tick sends a request to every peer whose turn it is, and returns the number
// of requests sent. Peers with a round still pending get a new request as
// well. A round whose request could not be sent is completed right away.
func (d *Driver) Tick(ctx context.Context) int {
	now := d.clock.Now()
	sent := 0
	for _, id := range d.tracker.RegisteredPeers() {
		if !d.tracker.IsPeerNextToReconcileWith(id, now) {
			continue
		}
		params, ok := d.tracker.InitiateReconciliationRequest(id)
		if !ok {
			continue
		}
		if err := d.sender.SendReconciliationRequest(ctx, id, params); err != nil {
			sendErrors.Inc()
			d.tracker.CompleteReconciliationRound(id)
			d.logger.Debug("failed to send reconciliation request",
				zap.Stringer("peer", id),
				zap.Error(err),
			)
			continue
		}
		requestsSent.Inc()
		sent++
	}
	return sent
}
