package txrecon

import "github.com/prometheus/client_golang/prometheus"

func RegistrationsCounter(result RegisterResult) prometheus.Counter {
	return registrations.WithLabelValues(result.String())
}
