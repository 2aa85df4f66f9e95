package driver

import "github.com/spacemeshos/go-txrecon/metrics"

const subsystem = "driver"

var (
	requests = metrics.NewCounter(
		"requests",
		subsystem,
		"reconciliation requests by outcome",
		[]string{"outcome"},
	)
	requestsSent = requests.WithLabelValues("sent")
	sendErrors   = requests.WithLabelValues("error")
)
