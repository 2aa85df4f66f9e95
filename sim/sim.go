// Package sim runs the reconciliation tracker against synthetic peers and
// transactions in a single process.
package sim

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"maps"
	"math/rand"
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/seehuhn/mt19937"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/spacemeshos/go-txrecon/hash"
	"github.com/spacemeshos/go-txrecon/relay"
	"github.com/spacemeshos/go-txrecon/txrecon"
	"github.com/spacemeshos/go-txrecon/txrecon/driver"
)

type Config struct {
	Seed uint64 `mapstructure:"seed"`

	// Inbound and Outbound peers negotiate reconciliation.
	Inbound  int `mapstructure:"inbound"`
	Outbound int `mapstructure:"outbound"`
	// Legacy peers are inbound peers that only accept flooding.
	Legacy int `mapstructure:"legacy"`

	Transactions int           `mapstructure:"transactions"`
	TxInterval   time.Duration `mapstructure:"tx-interval"`

	// ChurnEvery replaces a random peer after every ChurnEvery transactions.
	// Zero disables churn.
	ChurnEvery int `mapstructure:"churn-every"`
}

func DefaultConfig() Config {
	return Config{
		Seed:         1,
		Inbound:      20,
		Outbound:     8,
		Legacy:       4,
		Transactions: 1000,
		TxInterval:   10 * time.Millisecond,
		ChurnEvery:   100,
	}
}

func (c Config) Validate() error {
	if c.Inbound < 0 || c.Outbound < 0 || c.Legacy < 0 {
		return errors.New("peer counts must not be negative")
	}
	if c.Inbound+c.Outbound+c.Legacy < 2 {
		return errors.New("at least two peers are required")
	}
	if c.Transactions < 0 {
		return fmt.Errorf("transactions must not be negative, got %d", c.Transactions)
	}
	if c.TxInterval <= 0 {
		return fmt.Errorf("tx interval must be positive, got %v", c.TxInterval)
	}
	if c.ChurnEvery < 0 {
		return fmt.Errorf("churn every must not be negative, got %d", c.ChurnEvery)
	}
	return nil
}

// Summary of a simulation run.
type Summary struct {
	Transactions int           `json:"transactions"`
	Flooded      int           `json:"flooded"`
	Queued       int           `json:"queued"`
	Requests     int           `json:"requests"`
	Reconnects   int           `json:"reconnects"`
	Tracker      txrecon.Stats `json:"tracker"`
}

// MarshalLogObject implements logging encoder for Summary.
func (s *Summary) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("transactions", s.Transactions)
	enc.AddInt("flooded", s.Flooded)
	enc.AddInt("queued", s.Queued)
	enc.AddInt("requests", s.Requests)
	enc.AddInt("reconnects", s.Reconnects)
	return enc.AddObject("tracker", &s.Tracker)
}

type peer struct {
	id      txrecon.PeerID
	inbound bool
	legacy  bool
}

type Opt func(*Simulation)

// WithClock replaces the clock of the reconciliation driver.
func WithClock(clock clockwork.Clock) Opt {
	return func(s *Simulation) {
		s.clock = clock
	}
}

// WithLogger sets the simulation logger. Components log to named children
// unless WithModuleLoggers overrides them.
func WithLogger(logger *zap.Logger) Opt {
	return func(s *Simulation) {
		s.logger = logger
	}
}

// WithModuleLoggers sets the loggers of the tracker, the driver and the relay.
func WithModuleLoggers(tracker, driver, relay *zap.Logger) Opt {
	return func(s *Simulation) {
		s.modules = &moduleLoggers{tracker: tracker, driver: driver, relay: relay}
	}
}

type moduleLoggers struct {
	tracker, driver, relay *zap.Logger
}

// Simulation wires the tracker, the relay and the driver. It plays the
// network side: it floods, sends requests and handshakes with peers.
type Simulation struct {
	logger  *zap.Logger
	modules *moduleLoggers
	cfg     Config
	clock   clockwork.Clock
	rng     *rand.Rand

	tracker *txrecon.Tracker
	relay   *relay.Relay
	driver  *driver.Driver

	mu       sync.Mutex
	peers    []peer
	nextID   txrecon.PeerID
	requests map[txrecon.PeerID]int
	summary  Summary
}

func New(
	cfg Config,
	trackerCfg txrecon.Config,
	driverCfg driver.Config,
	relayCfg relay.Config,
	opts ...Opt,
) (*Simulation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := trackerCfg.Validate(); err != nil {
		return nil, fmt.Errorf("tracker: %w", err)
	}
	s := &Simulation{
		logger:   zap.NewNop(),
		cfg:      cfg,
		clock:    clockwork.NewRealClock(),
		rng:      newRand(cfg.Seed),
		requests: make(map[txrecon.PeerID]int),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.modules == nil {
		s.modules = &moduleLoggers{
			tracker: s.logger.Named("tracker"),
			driver:  s.logger.Named("driver"),
			relay:   s.logger.Named("relay"),
		}
	}
	// the tracker draws from its own source under its own lock
	trackerRng := newRand(cfg.Seed + 1)
	s.tracker = txrecon.New(trackerCfg,
		txrecon.NewSipHasher(trackerRng.Uint64(), trackerRng.Uint64()),
		txrecon.WithLogger(s.modules.tracker),
		txrecon.WithRandom(trackerRng.Uint64),
	)
	r, err := relay.New(s.tracker, s, relay.WithLogger(s.modules.relay), relay.WithConfig(relayCfg))
	if err != nil {
		return nil, err
	}
	s.relay = r
	s.driver = driver.New(s.tracker, s,
		driver.WithLogger(s.modules.driver),
		driver.WithConfig(driverCfg),
		driver.WithClock(s.clock),
	)
	for range cfg.Inbound {
		s.connect(true, false)
	}
	for range cfg.Outbound {
		s.connect(false, false)
	}
	for range cfg.Legacy {
		s.connect(true, true)
	}
	return s, nil
}

func newRand(seed uint64) *rand.Rand {
	src := mt19937.New()
	src.Seed(int64(seed))
	return rand.New(src)
}

// Tracker returns the tracker driven by the simulation.
func (s *Simulation) Tracker() *txrecon.Tracker {
	return s.tracker
}

// Flood implements relay.Flooder.
func (s *Simulation) Flood(ctx context.Context, id txrecon.PeerID, txid txrecon.TxID) error {
	return nil
}

// SendReconciliationRequest implements driver.RequestSender.
func (s *Simulation) SendReconciliationRequest(
	ctx context.Context,
	id txrecon.PeerID,
	params txrecon.RequestParams,
) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests[id]++
	s.summary.Requests++
	s.logger.Debug("sent reconciliation request", zap.Stringer("peer", id), zap.Object("params", &params))
	// simulated peers answer right away
	s.tracker.CompleteReconciliationRound(id)
	return nil
}

// connect performs the handshake with a new peer. Must not be called
// concurrently with itself or disconnect.
func (s *Simulation) connect(inbound, legacy bool) txrecon.PeerID {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.peers = append(s.peers, peer{id: id, inbound: inbound, legacy: legacy})
	s.mu.Unlock()

	s.relay.AddPeer(id, inbound)
	if legacy {
		return id
	}
	s.tracker.PreRegisterPeer(id)
	if result := s.tracker.RegisterPeer(id, inbound, txrecon.Version, s.rng.Uint64()); result != txrecon.Success {
		s.logger.Warn("peer registration failed", zap.Stringer("peer", id), zap.Stringer("result", result))
	}
	return id
}

func (s *Simulation) disconnect(i int) peer {
	s.mu.Lock()
	p := s.peers[i]
	s.peers = append(s.peers[:i], s.peers[i+1:]...)
	s.mu.Unlock()

	s.relay.RemovePeer(p.id)
	s.tracker.ForgetPeer(p.id)
	return p
}

func (s *Simulation) reconnect() {
	p := s.disconnect(s.rng.Intn(len(s.peers)))
	id := s.connect(p.inbound, p.legacy)
	s.summary.Reconnects++
	s.logger.Debug("peer reconnected", zap.Stringer("old", p.id), zap.Stringer("new", id))
}

// TxID derives the i-th synthetic transaction id from the seed.
func TxID(seed uint64, i int) txrecon.TxID {
	var buf [16]byte
	binary.LittleEndian.PutUint64(buf[:], seed)
	binary.LittleEndian.PutUint64(buf[8:], uint64(i))
	return txrecon.TxID(hash.Sum32(buf[:]))
}

// Run generates transactions until all of them are announced, while the
// driver keeps sending reconciliation requests. It returns early with an
// error if the context is canceled.
func (s *Simulation) Run(ctx context.Context) (Summary, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		return s.driver.Run(ctx)
	})
	eg.Go(func() error {
		defer cancel()
		return s.generate(ctx)
	})
	if err := eg.Wait(); err != nil {
		return Summary{}, err
	}
	// the last round gets its turn even if generation ended before any tick
	s.driver.Tick(context.Background())

	s.mu.Lock()
	defer s.mu.Unlock()
	s.summary.Tracker = s.tracker.Stats()
	s.logger.Info("simulation finished", zap.Object("summary", &s.summary))
	return s.summary, nil
}

func (s *Simulation) generate(ctx context.Context) error {
	limiter := rate.NewLimiter(rate.Every(s.cfg.TxInterval), 1)
	for i := range s.cfg.Transactions {
		if err := limiter.Wait(ctx); err != nil {
			// the deadline expires before the next transaction is due
			<-ctx.Done()
			return ctx.Err()
		}
		txid := TxID(s.cfg.Seed, i)
		source := s.peers[s.rng.Intn(len(s.peers))].id
		rst, err := s.relay.Announce(ctx, txid, source)
		if err != nil {
			return fmt.Errorf("announce %s: %w", txid.ShortString(), err)
		}
		s.mu.Lock()
		s.summary.Transactions++
		s.summary.Flooded += len(rst.Flooded)
		s.summary.Queued += len(rst.Queued)
		s.mu.Unlock()

		if s.cfg.ChurnEvery > 0 && (i+1)%s.cfg.ChurnEvery == 0 {
			s.reconnect()
		}
	}
	return nil
}

// Requests returns the number of reconciliation requests sent to every peer.
func (s *Simulation) Requests() map[txrecon.PeerID]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return maps.Clone(s.requests)
}
