// Package relay announces transactions to connected peers, either by
// flooding them right away or by queueing them for set reconciliation.
package relay

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/spacemeshos/go-txrecon/txrecon"
)

//go:generate mockgen -typed -package=mocks -destination=./mocks/mocks.go -source=./relay.go

// Flooder sends a transaction announcement to a single peer.
type Flooder interface {
	Flood(ctx context.Context, peer txrecon.PeerID, txid txrecon.TxID) error
}

// Tracker is the subset of txrecon.Tracker used by the relay.
type Tracker interface {
	IsPeerRegistered(id txrecon.PeerID) bool
	ShouldFanoutTo(txid txrecon.TxID, id txrecon.PeerID, inbounds txrecon.FanoutCount, outboundFanouted int) bool
	AddToSet(id txrecon.PeerID, txid txrecon.TxID) bool
	TryRemovingFromSet(id txrecon.PeerID, txid txrecon.TxID) bool
}

type Config struct {
	// FanoutCacheSize is the number of recent transactions for which fanout
	// counters are kept.
	FanoutCacheSize int `mapstructure:"fanout-cache-size"`
}

func DefaultConfig() Config {
	return Config{
		FanoutCacheSize: 10_000,
	}
}

type Opt func(*Relay)

func WithLogger(logger *zap.Logger) Opt {
	return func(r *Relay) {
		r.logger = logger
	}
}

func WithConfig(cfg Config) Opt {
	return func(r *Relay) {
		r.cfg = cfg
	}
}

// Announcement describes what happened to a transaction for every peer.
type Announcement struct {
	Flooded []txrecon.PeerID
	Queued  []txrecon.PeerID
}

// counters keep how many peers of each direction already got the
// transaction by fanout.
type counters struct {
	inbound, outbound int
}

type Relay struct {
	logger  *zap.Logger
	cfg     Config
	tracker Tracker
	flooder Flooder

	mu       sync.Mutex
	peers    map[txrecon.PeerID]txrecon.Direction
	counters *lru.Cache[txrecon.TxID, *counters]
}

func New(tracker Tracker, flooder Flooder, opts ...Opt) (*Relay, error) {
	r := &Relay{
		logger:  zap.NewNop(),
		cfg:     DefaultConfig(),
		tracker: tracker,
		flooder: flooder,
		peers:   make(map[txrecon.PeerID]txrecon.Direction),
	}
	for _, opt := range opts {
		opt(r)
	}
	cache, err := lru.New[txrecon.TxID, *counters](r.cfg.FanoutCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create fanout cache: %w", err)
	}
	r.counters = cache
	return r, nil
}

// AddPeer adds a connected peer that relays transactions. Whether the
// transactions are reconciled with it is decided by the tracker.
func (r *Relay) AddPeer(id txrecon.PeerID, inbound bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.peers[id] = txrecon.DirectionFromInbound(inbound)
}

func (r *Relay) RemovePeer(id txrecon.PeerID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.peers, id)
}

// Peers returns connected peers sorted by id.
func (r *Relay) Peers() []txrecon.PeerID {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sortedPeers()
}

func (r *Relay) sortedPeers() []txrecon.PeerID {
	ids := make([]txrecon.PeerID, 0, len(r.peers))
	for id := range r.peers {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// Announce relays the transaction to every connected peer except the ones in
// exclude, usually the peer it was received from. Peers that do not
// reconcile get the transaction by flooding. Flood errors are collected and
// do not stop the announcement.
func (r *Relay) Announce(ctx context.Context, txid txrecon.TxID, exclude ...txrecon.PeerID) (Announcement, error) {
	var rst Announcement
	targets := r.decide(txid, exclude, &rst)

	var errs []error
	for _, id := range targets {
		if err := r.flooder.Flood(ctx, id, txid); err != nil {
			errs = append(errs, fmt.Errorf("flood %s to %s: %w", txid.ShortString(), id, err))
			floodErrors.Inc()
			continue
		}
		rst.Flooded = append(rst.Flooded, id)
		flooded.Inc()
	}
	r.logger.Debug("announced transaction",
		zap.Stringer("txid", txid),
		zap.Int("flooded", len(rst.Flooded)),
		zap.Int("queued", len(rst.Queued)),
	)
	return rst, errors.Join(errs...)
}

// decide queues the transaction for the peers that reconcile it and returns
// the peers to flood it to.
func (r *Relay) decide(txid txrecon.TxID, exclude []txrecon.PeerID, rst *Announcement) []txrecon.PeerID {
	r.mu.Lock()
	defer r.mu.Unlock()

	c, ok := r.counters.Get(txid)
	if !ok {
		c = &counters{}
		r.counters.Add(txid, c)
	}
	reconciling := make(map[txrecon.PeerID]bool, len(r.peers))
	inbounds := 0
	for id, dir := range r.peers {
		if r.tracker.IsPeerRegistered(id) {
			reconciling[id] = true
			if dir == txrecon.Inbound {
				inbounds++
			}
		}
	}

	var targets []txrecon.PeerID
	for _, id := range r.sortedPeers() {
		if slices.Contains(exclude, id) {
			continue
		}
		dir := r.peers[id]
		flood := !reconciling[id] ||
			r.tracker.ShouldFanoutTo(txid, id, txrecon.FanoutCount{Total: inbounds, Fanouted: c.inbound}, c.outbound)
		if flood && reconciling[id] {
			c.add(dir)
		}
		if !flood && !r.tracker.AddToSet(id, txid) {
			// full set, or the peer was forgotten in the meantime
			flood = true
		}
		if flood {
			targets = append(targets, id)
			continue
		}
		rst.Queued = append(rst.Queued, id)
		queued.Inc()
	}
	return targets
}

func (c *counters) add(dir txrecon.Direction) {
	switch dir {
	case txrecon.Inbound:
		c.inbound++
	case txrecon.Outbound:
		c.outbound++
	}
}

// Evict removes the transaction from every pending set, for example once it
// was included in a block or received from the peer. It returns the number
// of sets the transaction was removed from.
func (r *Relay) Evict(txid txrecon.TxID) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters.Remove(txid)
	removed := 0
	for id := range r.peers {
		if r.tracker.TryRemovingFromSet(id, txid) {
			removed++
		}
	}
	evicted.Add(float64(removed))
	return removed
}

// FanoutCount returns the fanout counters of a recently announced transaction.
func (r *Relay) FanoutCount(txid txrecon.TxID) (inbound, outbound int) {
	c, ok := r.counters.Peek(txid)
	if !ok {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return c.inbound, c.outbound
}
