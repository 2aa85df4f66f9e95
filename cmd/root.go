package cmd

import (
	"github.com/spf13/pflag"

	"github.com/spacemeshos/go-txrecon/config"
)

// AddFlags binds the command line flags to the config fields.
func AddFlags(flagSet *pflag.FlagSet, cfg *config.Config) {
	/** ======================== BaseConfig Flags ========================== **/
	flagSet.StringVarP(&cfg.BaseConfig.ConfigFile,
		"config", "c", cfg.BaseConfig.ConfigFile, "Load configuration from file")
	flagSet.StringVar(&cfg.LOGGING.Encoder, "log-encoder",
		cfg.LOGGING.Encoder, "Log as JSON instead of plain text")
	flagSet.BoolVar(&cfg.CollectMetrics, "metrics",
		cfg.CollectMetrics, "collect metrics")
	flagSet.StringVar(&cfg.MetricsAddress, "metrics-address",
		cfg.MetricsAddress, "address of the metrics server")
	flagSet.StringVar(&cfg.MetricsPush.URL, "metrics-push",
		cfg.MetricsPush.URL, "Push metrics to url")
	flagSet.DurationVar(&cfg.MetricsPush.Period, "metrics-push-period",
		cfg.MetricsPush.Period, "Push period")

	/** ======================== Tracker Flags ========================== **/
	flagSet.DurationVar(&cfg.Tracker.ReconRequestInterval, "recon-request-interval",
		cfg.Tracker.ReconRequestInterval, "time to rotate through all reconciling peers")
	flagSet.DurationVar(&cfg.Tracker.RoundJitter, "round-jitter",
		cfg.Tracker.RoundJitter, "random delay added to every reconciliation turn")
	flagSet.Float64Var(&cfg.Tracker.Q, "q",
		cfg.Tracker.Q, "set difference estimation coefficient sent in requests")
	flagSet.IntVar(&cfg.Tracker.MaxSetSize, "max-set-size",
		cfg.Tracker.MaxSetSize, "max number of transactions queued for a single peer")
	flagSet.Float64Var(&cfg.Tracker.Fanout.InboundFraction, "inbound-fanout-fraction",
		cfg.Tracker.Fanout.InboundFraction, "fraction of inbound reconciling peers that get transactions by flooding")
	flagSet.IntVar(&cfg.Tracker.Fanout.OutboundDestinations, "outbound-fanout-destinations",
		cfg.Tracker.Fanout.OutboundDestinations, "number of outbound reconciling peers that get transactions by flooding")

	/** ======================== Driver and Relay Flags ========================== **/
	flagSet.DurationVar(&cfg.Driver.TickInterval, "tick-interval",
		cfg.Driver.TickInterval, "how often the round scheduler is polled")
	flagSet.IntVar(&cfg.Relay.FanoutCacheSize, "fanout-cache-size",
		cfg.Relay.FanoutCacheSize, "number of recent transactions with fanout counters")

	/** ======================== Simulation Flags ========================== **/
	flagSet.Uint64Var(&cfg.Sim.Seed, "seed", cfg.Sim.Seed, "seed for peers and transactions")
	flagSet.IntVar(&cfg.Sim.Inbound, "inbound", cfg.Sim.Inbound, "number of inbound reconciling peers")
	flagSet.IntVar(&cfg.Sim.Outbound, "outbound", cfg.Sim.Outbound, "number of outbound reconciling peers")
	flagSet.IntVar(&cfg.Sim.Legacy, "legacy", cfg.Sim.Legacy, "number of peers that only accept flooding")
	flagSet.IntVar(&cfg.Sim.Transactions, "transactions", cfg.Sim.Transactions, "number of generated transactions")
	flagSet.DurationVar(&cfg.Sim.TxInterval, "tx-interval", cfg.Sim.TxInterval, "interval between transactions")
	flagSet.IntVar(&cfg.Sim.ChurnEvery, "churn-every",
		cfg.Sim.ChurnEvery, "replace a random peer after every N transactions, 0 disables churn")
}
