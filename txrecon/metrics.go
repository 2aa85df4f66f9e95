package txrecon

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/spacemeshos/go-txrecon/metrics"
)

const subsystem = "tracker"

var (
	registrations = metrics.NewCounter(
		"registrations",
		subsystem,
		"number of peer registration attempts by result",
		[]string{"result"},
	)
	registeredPeers = metrics.NewGauge(
		"registered_peers",
		subsystem,
		"number of peers registered for reconciliation",
		[]string{"direction"},
	)
	fanoutDecisions = metrics.NewCounter(
		"fanout_decisions",
		subsystem,
		"number of fanout decisions for registered peers",
		[]string{"direction", "decision"},
	)
	unregisteredFanouts = metrics.NewCounter(
		"unregistered_fanouts",
		subsystem,
		"number of fanout decisions for peers that are not registered",
		[]string{},
	).WithLabelValues()
	roundsStarted = metrics.NewCounter(
		"rounds_started",
		subsystem,
		"number of reconciliation rounds the scheduler handed out",
		[]string{"pending"},
	)
	roundsStartedFree    = roundsStarted.WithLabelValues("false")
	roundsStartedPending = roundsStarted.WithLabelValues("true")

	requestSetSize = metrics.NewHistogramWithBuckets(
		"request_set_size",
		subsystem,
		"local set size sent in reconciliation requests",
		[]string{},
		prometheus.ExponentialBuckets(1, 2, 13),
	).WithLabelValues()
	rejectedSetAdds = metrics.NewCounter(
		"rejected_set_adds",
		subsystem,
		"number of transactions not queued because the peer set was full",
		[]string{},
	).WithLabelValues()
)

func fanoutDecision(dir Direction, selected bool) {
	decision := "defer"
	if selected {
		decision = "fanout"
	}
	fanoutDecisions.WithLabelValues(dir.String(), decision).Inc()
}
