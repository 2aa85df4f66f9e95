package relay

import "github.com/spacemeshos/go-txrecon/metrics"

const subsystem = "relay"

var (
	announcements = metrics.NewCounter(
		"announcements",
		subsystem,
		"per peer transaction announcements by outcome",
		[]string{"outcome"},
	)
	flooded     = announcements.WithLabelValues("flooded")
	queued      = announcements.WithLabelValues("queued")
	floodErrors = announcements.WithLabelValues("error")

	evicted = metrics.NewCounter(
		"evicted",
		subsystem,
		"number of transactions removed from pending sets",
		[]string{},
	).WithLabelValues()
)
