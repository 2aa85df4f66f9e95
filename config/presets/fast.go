package presets

import (
	"time"

	"github.com/spacemeshos/go-txrecon/config"
)

func init() {
	register("fast", fast())
}

// fast finishes a small simulation within a second.
func fast() config.Config {
	conf := config.DefaultConfig()

	conf.Tracker.ReconRequestInterval = 100 * time.Millisecond
	conf.Driver.TickInterval = 5 * time.Millisecond

	conf.Sim.Inbound = 8
	conf.Sim.Outbound = 4
	conf.Sim.Legacy = 2
	conf.Sim.Transactions = 200
	conf.Sim.TxInterval = time.Millisecond
	conf.Sim.ChurnEvery = 50
	return conf
}
