// Package txrecon tracks which peers take part in transaction set
// reconciliation and decides, per transaction and peer, whether the
// transaction is flooded right away or queued for the next reconciliation
// round with that peer.
package txrecon

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"slices"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Opt configures optional Tracker dependencies.
type Opt func(*Tracker)

// WithLogger specifies the logger for the Tracker.
func WithLogger(logger *zap.Logger) Opt {
	return func(t *Tracker) {
		t.logger = logger
	}
}

// WithRandom replaces the source of local salts and round jitter.
// It defaults to crypto/rand.
func WithRandom(random func() uint64) Opt {
	return func(t *Tracker) {
		t.random = random
	}
}

func cryptoUint64() uint64 {
	var b [8]byte
	if _, err := rand.Read(b[:]); err != nil {
		panic(fmt.Sprintf("read crypto random: %v", err))
	}
	return binary.LittleEndian.Uint64(b[:])
}

type peerRecord struct {
	id        PeerID
	state     peerState
	localSalt uint64

	// populated on registration
	direction     Direction
	version       uint32
	salt          salt
	set           map[TxID]struct{}
	roundPending  bool
	lastTurn      time.Time
	lastRoundTime time.Time
}

func (r *peerRecord) info() PeerInfo {
	return PeerInfo{
		ID:            r.id,
		Direction:     r.direction,
		Version:       r.version,
		SetSize:       len(r.set),
		RoundPending:  r.roundPending,
		LastRoundTime: r.lastRoundTime,
	}
}

// Tracker is safe for concurrent use. Every method is atomic with respect to
// the others.
type Tracker struct {
	logger *zap.Logger
	cfg    Config
	sel    selector
	random func() uint64

	mu    sync.Mutex
	peers map[PeerID]*peerRecord
	// queue holds registered peers in round-robin order, the head is the
	// peer whose turn it is.
	queue     []PeerID
	nextRound time.Time
}

// New creates a Tracker. The hasher drives all pseudorandom fanout decisions,
// so trackers created with equally keyed hashers decide identically.
// Unset config fields take their defaults, so New(Config{Version: 1}, hasher)
// is a complete tracker.
func New(cfg Config, hasher Hasher, opts ...Opt) *Tracker {
	t := &Tracker{
		logger: zap.NewNop(),
		cfg:    cfg.withDefaults(),
		sel:    selector{hasher: hasher},
		random: cryptoUint64,
		peers:  make(map[PeerID]*peerRecord),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// registered returns the record if the peer completed registration.
// Caller must hold t.mu.
func (t *Tracker) registered(id PeerID) *peerRecord {
	r, ok := t.peers[id]
	if !ok || r.state != stateRegistered {
		return nil
	}
	return r
}

// PreRegisterPeer records that a connection to the peer was established and
// a local salt was generated for it. Calling it for a known peer does nothing.
func (t *Tracker) PreRegisterPeer(id PeerID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.peers[id]; ok {
		return
	}
	t.peers[id] = &peerRecord{
		id:        id,
		state:     statePreRegistered,
		localSalt: t.random(),
	}
	t.logger.Debug("pre-registered peer", zap.Stringer("peer", id))
}

// LocalSalt returns the salt generated for the peer during pre-registration.
// The transport sends it to the peer together with the supported version.
func (t *Tracker) LocalSalt(id PeerID) (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	r, ok := t.peers[id]
	if !ok {
		return 0, false
	}
	return r.localSalt, true
}

// RegisterPeer completes negotiation with a pre-registered peer.
// peerVersion and remoteSalt are received from the peer and are not trusted.
func (t *Tracker) RegisterPeer(id PeerID, inbound bool, peerVersion uint32, remoteSalt uint64) RegisterResult {
	result := t.register(id, DirectionFromInbound(inbound), peerVersion, remoteSalt)
	registrations.WithLabelValues(result.String()).Inc()
	return result
}

func (t *Tracker) register(id PeerID, dir Direction, peerVersion uint32, remoteSalt uint64) RegisterResult {
	t.mu.Lock()
	defer t.mu.Unlock()
	r, ok := t.peers[id]
	if !ok {
		return NotFound
	}
	switch r.state {
	case stateRegistered:
		return AlreadyRegistered
	case statePreRegistered:
	default:
		panic(fmt.Sprintf("BUG: peer %d in unknown state %v", id, r.state))
	}
	if peerVersion < t.cfg.Version {
		t.logger.Warn("peer announced unsupported reconciliation version",
			zap.Stringer("peer", id),
			zap.Uint32("peer version", peerVersion),
			zap.Uint32("min version", t.cfg.Version),
		)
		return ProtocolViolation
	}
	r.state = stateRegistered
	r.direction = dir
	r.version = min(peerVersion, t.cfg.Version)
	r.salt = combineSalts(r.localSalt, remoteSalt)
	r.set = make(map[TxID]struct{})
	r.roundPending = false
	t.queue = append(t.queue, id)
	registeredPeers.WithLabelValues(dir.String()).Inc()
	t.logger.Debug("registered peer",
		zap.Stringer("peer", id),
		zap.Stringer("direction", dir),
		zap.Uint32("version", r.version),
	)
	return Success
}

// ForgetPeer drops everything known about the peer. It is safe to call for
// peers in any state, including unknown ones.
func (t *Tracker) ForgetPeer(id PeerID) {
	t.mu.Lock()
	defer t.mu.Unlock()
	r, ok := t.peers[id]
	if !ok {
		return
	}
	delete(t.peers, id)
	if r.state == stateRegistered {
		if i := slices.Index(t.queue, id); i >= 0 {
			t.queue = slices.Delete(t.queue, i, i+1)
		}
		registeredPeers.WithLabelValues(r.direction.String()).Dec()
	}
	t.logger.Debug("forgot peer", zap.Stringer("peer", id), zap.Stringer("state", r.state))
}

// IsPeerRegistered returns true if the peer completed registration.
func (t *Tracker) IsPeerRegistered(id PeerID) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.registered(id) != nil
}

// PeerInfo returns a snapshot of a registered peer.
func (t *Tracker) PeerInfo(id PeerID) (PeerInfo, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	r := t.registered(id)
	if r == nil {
		return PeerInfo{}, false
	}
	return r.info(), true
}

// RegisteredPeers returns registered peers in the order of their turns.
func (t *Tracker) RegisteredPeers() []PeerID {
	t.mu.Lock()
	defer t.mu.Unlock()
	return slices.Clone(t.queue)
}

func (t *Tracker) Stats() Stats {
	t.mu.Lock()
	defer t.mu.Unlock()
	var s Stats
	for _, r := range t.peers {
		if r.state != stateRegistered {
			s.PreRegistered++
			continue
		}
		switch r.direction {
		case Inbound:
			s.RegisteredInbound++
		case Outbound:
			s.RegisteredOutbound++
		}
		if r.roundPending {
			s.PendingRounds++
		}
		s.QueuedTxs += len(r.set)
	}
	return s
}
