package txrecon

import (
	"errors"
	"fmt"
	"math"
	"time"
)

const (
	// Version is the reconciliation protocol version implemented by this package.
	Version uint32 = 1

	// DefaultMaxSetSize bounds the number of transactions queued for a single peer.
	DefaultMaxSetSize = 3000

	// qPrecision is the fixed-point scale of the q coefficient sent in requests.
	qPrecision = (2 << 14) - 1
)

// Config configures the Tracker. New replaces zero values of Version,
// ReconRequestInterval, Q, MaxSetSize and Fanout with their defaults.
type Config struct {
	// Version is the minimal reconciliation protocol version accepted from peers.
	Version uint32 `mapstructure:"version"`

	// ReconRequestInterval is the time it takes to rotate through all peers in the
	// round-robin queue. Each turn lasts ReconRequestInterval divided by the number
	// of registered peers.
	ReconRequestInterval time.Duration `mapstructure:"recon-request-interval"`

	// RoundJitter adds a random delay in [0, RoundJitter) to every turn.
	RoundJitter time.Duration `mapstructure:"round-jitter"`

	// Q estimates the set difference relative to the set sizes. It is sent in
	// every reconciliation request.
	Q float64 `mapstructure:"q"`

	// MaxSetSize is the maximum number of transactions queued for one peer.
	MaxSetSize int `mapstructure:"max-set-size"`

	Fanout FanoutConfig `mapstructure:"fanout"`
}

// FanoutConfig controls how many registered peers receive a transaction by
// flooding instead of waiting for the next reconciliation round.
type FanoutConfig struct {
	// InboundFraction of the inbound peers is selected for fanout of every transaction.
	InboundFraction float64 `mapstructure:"inbound-fraction"`

	// OutboundDestinations is the number of outbound peers selected for fanout of
	// every transaction.
	OutboundDestinations int `mapstructure:"outbound-destinations"`
}

// fanoutUnits is the fixed-point scale of fanout targets: one peer is
// fanoutUnits.
const fanoutUnits = 1_000_000

// target returns the number of peers in the direction that should receive a
// transaction by fanout, in fanoutUnits. inbounds is the number of inbound
// peers that relay transactions.
func (c FanoutConfig) target(dir Direction, inbounds int) int {
	switch dir {
	case Inbound:
		return inbounds * int(math.Round(c.InboundFraction*fanoutUnits))
	case Outbound:
		return c.OutboundDestinations * fanoutUnits
	}
	panic(fmt.Sprintf("unknown direction %d", dir))
}

// DefaultConfig returns the configuration used when a field is left unset.
func DefaultConfig() Config {
	return Config{
		Version:              Version,
		ReconRequestInterval: 8 * time.Second,
		Q:                    0.25,
		MaxSetSize:           DefaultMaxSetSize,
		Fanout: FanoutConfig{
			InboundFraction:      0.1,
			OutboundDestinations: 1,
		},
	}
}

// withDefaults replaces unset fields with their defaults. Fanout is replaced
// only when both of its fields are unset, so that fanout to one direction can
// be disabled.
func (c Config) withDefaults() Config {
	def := DefaultConfig()
	if c.Version == 0 {
		c.Version = def.Version
	}
	if c.ReconRequestInterval == 0 {
		c.ReconRequestInterval = def.ReconRequestInterval
	}
	if c.Q == 0 {
		c.Q = def.Q
	}
	if c.MaxSetSize == 0 {
		c.MaxSetSize = def.MaxSetSize
	}
	if c.Fanout == (FanoutConfig{}) {
		c.Fanout = def.Fanout
	}
	return c
}

// Validate checks that the values are in range.
func (c Config) Validate() error {
	if c.Version == 0 {
		return errors.New("version must be positive")
	}
	if c.ReconRequestInterval <= 0 {
		return fmt.Errorf("recon request interval must be positive, got %v", c.ReconRequestInterval)
	}
	if c.RoundJitter < 0 {
		return fmt.Errorf("round jitter must not be negative, got %v", c.RoundJitter)
	}
	if c.Q < 0 || c.Q > 1 {
		return fmt.Errorf("q must be within [0, 1], got %v", c.Q)
	}
	if c.MaxSetSize <= 0 || c.MaxSetSize > 1<<16-1 {
		return fmt.Errorf("max set size must be within [1, 65535], got %d", c.MaxSetSize)
	}
	if c.Fanout.InboundFraction < 0 || c.Fanout.InboundFraction > 1 {
		return fmt.Errorf("inbound fanout fraction must be within [0, 1], got %v", c.Fanout.InboundFraction)
	}
	if c.Fanout.OutboundDestinations < 0 {
		return fmt.Errorf("outbound fanout destinations must not be negative, got %d",
			c.Fanout.OutboundDestinations)
	}
	return nil
}
