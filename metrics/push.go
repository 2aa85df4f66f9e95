package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
	"go.uber.org/zap"
)

// PushConfig configures pushing metrics to a prometheus push gateway.
type PushConfig struct {
	URL      string            `mapstructure:"url"`
	Username string            `mapstructure:"username"`
	Password string            `mapstructure:"password"`
	Headers  map[string]string `mapstructure:"headers"`
	Period   time.Duration     `mapstructure:"period"`
}

// StartPushingMetrics pushes metrics to the configured url every period
// until the context is canceled.
func StartPushingMetrics(ctx context.Context, logger *zap.Logger, cfg PushConfig, job, instance string) {
	header := http.Header{}
	for k, v := range cfg.Headers {
		header.Add(k, v)
	}
	client := retryablehttp.NewClient()
	client.RetryMax = 3
	client.Logger = nil
	pusher := push.New(cfg.URL, job).Gatherer(prometheus.DefaultGatherer).
		Client(client.StandardClient()).
		Grouping("instance", instance).
		Header(header)
	if cfg.Username != "" && cfg.Password != "" {
		pusher = pusher.BasicAuth(cfg.Username, cfg.Password)
	}
	go func() {
		ticker := time.NewTicker(cfg.Period)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if err := pusher.PushContext(ctx); err != nil {
					logger.Warn("failed to push metrics", zap.Error(err))
				}
			}
		}
	}()
}
