package presets

import (
	"time"

	"github.com/spacemeshos/go-txrecon/config"
)

func init() {
	register("dense", dense())
}

// dense models a well connected node with many reconciling inbound peers.
func dense() config.Config {
	conf := config.DefaultConfig()

	conf.Tracker.RoundJitter = 500 * time.Millisecond
	conf.Relay.FanoutCacheSize = 50_000

	conf.Sim.Inbound = 117
	conf.Sim.Outbound = 8
	conf.Sim.Legacy = 0
	conf.Sim.Transactions = 5000
	conf.Sim.TxInterval = 2 * time.Millisecond
	conf.Sim.ChurnEvery = 250
	return conf
}
