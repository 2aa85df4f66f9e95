package txrecon

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"
)

// PeerID identifies a connection. It is never reused while the peer is known
// to the tracker.
type PeerID int64

func (id PeerID) String() string {
	return strconv.FormatInt(int64(id), 10)
}

// TxIDSize is the size of a transaction identifier in bytes.
const TxIDSize = 32

// TxID is a witness transaction identifier.
type TxID [TxIDSize]byte

func (id TxID) String() string {
	return hex.EncodeToString(id[:])
}

// ShortString returns the first 5 hex-encoded bytes of the id.
func (id TxID) ShortString() string {
	return hex.EncodeToString(id[:5])
}

// Direction of a connection. The direction decides which fanout target
// applies to the peer and which side initiates reconciliation rounds.
type Direction uint8

const (
	// Inbound peers connected to us.
	Inbound Direction = iota
	// Outbound peers were connected by us, we initiate reconciliation with them.
	Outbound
)

// DirectionFromInbound converts the inbound flag received from the transport.
func DirectionFromInbound(inbound bool) Direction {
	if inbound {
		return Inbound
	}
	return Outbound
}

func (d Direction) String() string {
	switch d {
	case Inbound:
		return "inbound"
	case Outbound:
		return "outbound"
	}
	return fmt.Sprintf("direction(%d)", uint8(d))
}

// RegisterResult is returned by Tracker.RegisterPeer.
type RegisterResult uint8

const (
	// Success means the peer is now registered for reconciliation.
	Success RegisterResult = iota
	// NotFound means the peer was not pre-registered.
	NotFound
	// AlreadyRegistered means the peer completed registration before.
	AlreadyRegistered
	// ProtocolViolation means the peer announced a version below the supported one.
	// The peer stays pre-registered.
	ProtocolViolation
)

func (r RegisterResult) String() string {
	switch r {
	case Success:
		return "success"
	case NotFound:
		return "not_found"
	case AlreadyRegistered:
		return "already_registered"
	case ProtocolViolation:
		return "protocol_violation"
	}
	return fmt.Sprintf("result(%d)", uint8(r))
}

// FanoutCount is the number of inbound peers that relay transactions and
// how many of them were already selected for fanout of a transaction.
type FanoutCount struct {
	Total    int
	Fanouted int
}

// peerState is the lifecycle stage of a known peer. Absence of a record is
// the implicit initial state.
type peerState uint8

const (
	statePreRegistered peerState = iota + 1
	stateRegistered
)

func (s peerState) String() string {
	switch s {
	case statePreRegistered:
		return "pre-registered"
	case stateRegistered:
		return "registered"
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// PeerInfo is a snapshot of a registered peer.
type PeerInfo struct {
	ID            PeerID
	Direction     Direction
	Version       uint32
	SetSize       int
	RoundPending  bool
	LastRoundTime time.Time // turn of the last initiated request, zero if none
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (p *PeerInfo) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt64("id", int64(p.ID))
	enc.AddString("direction", p.Direction.String())
	enc.AddUint32("version", p.Version)
	enc.AddInt("set size", p.SetSize)
	enc.AddBool("round pending", p.RoundPending)
	enc.AddTime("last round", p.LastRoundTime)
	return nil
}

// Stats summarizes the tracker state.
type Stats struct {
	PreRegistered      int
	RegisteredInbound  int
	RegisteredOutbound int
	PendingRounds      int
	QueuedTxs          int
}

// MarshalLogObject implements zapcore.ObjectMarshaler.
func (s *Stats) MarshalLogObject(enc zapcore.ObjectEncoder) error {
	enc.AddInt("pre-registered", s.PreRegistered)
	enc.AddInt("registered inbound", s.RegisteredInbound)
	enc.AddInt("registered outbound", s.RegisteredOutbound)
	enc.AddInt("pending rounds", s.PendingRounds)
	enc.AddInt("queued txs", s.QueuedTxs)
	return nil
}
