// txrecon-sim runs the transaction reconciliation tracker against synthetic
// peers and reports how transactions were relayed.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/natefinch/atomic"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/spacemeshos/go-txrecon/cmd"
	"github.com/spacemeshos/go-txrecon/config"
	"github.com/spacemeshos/go-txrecon/config/presets"
	"github.com/spacemeshos/go-txrecon/log"
	"github.com/spacemeshos/go-txrecon/metrics"
	"github.com/spacemeshos/go-txrecon/sim"
)

var (
	version string
	commit  string
	branch  string
)

func main() {
	cmd.Version = version
	cmd.Commit = commit
	cmd.Branch = branch
	if err := getCommand().Execute(); err != nil {
		// the error was already printed by cobra
		os.Exit(1)
	}
}

func getCommand() *cobra.Command {
	conf := config.DefaultConfig()
	var preset, report string
	c := &cobra.Command{
		Use:          "txrecon-sim",
		Short:        "simulate transaction relay with set reconciliation",
		SilenceUsage: true,
		RunE: func(c *cobra.Command, args []string) error {
			loaded, err := cmd.LoadConfig(c.Flags(), preset, conf.ConfigFile)
			if err != nil {
				return err
			}
			ctx, cancel := signal.NotifyContext(c.Context(), os.Interrupt, syscall.SIGTERM)
			defer cancel()
			return run(ctx, loaded, report)
		},
	}
	c.PersistentFlags().StringVarP(&preset, "preset", "p", "",
		fmt.Sprintf("preset overwrites default values of the config. options %+s", presets.Options()))
	c.Flags().StringVar(&report, "report", "", "write the summary as JSON to the file")
	cmd.AddFlags(c.PersistentFlags(), &conf)
	c.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "print version",
		Run: func(c *cobra.Command, args []string) {
			fmt.Printf("%s+%s+%s\n", cmd.Version, cmd.Commit, cmd.Branch)
		},
	})
	return c
}

type loggers struct {
	app, tracker, driver, relay, metrics *zap.Logger
}

func setupLogging(conf config.LoggerConfig) (*loggers, error) {
	root, err := log.New("txrecon", conf.Encoder)
	if err != nil {
		return nil, err
	}
	levels := conf.Levels()
	rst := &loggers{}
	for name, target := range map[string]**zap.Logger{
		"app":     &rst.app,
		"tracker": &rst.tracker,
		"driver":  &rst.driver,
		"relay":   &rst.relay,
		"metrics": &rst.metrics,
	} {
		logger, err := log.Module(root, name, levels[name])
		if err != nil {
			return nil, err
		}
		*target = logger
	}
	return rst, nil
}

// writeReport replaces the file atomically, so that readers never observe a
// partial report.
func writeReport(path string, summary *sim.Summary) error {
	data, err := json.MarshalIndent(summary, "", "  ")
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	if err := atomic.WriteFile(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func run(ctx context.Context, conf *config.Config, report string) error {
	logs, err := setupLogging(conf.LOGGING)
	if err != nil {
		return log.ErrInvalidConfig(err)
	}
	defer func() { _ = logs.app.Sync() }()
	runID := uuid.NewString()
	logs.app = logs.app.With(zap.String("run", runID))
	logs.app.Info("starting simulation",
		zap.String("version", cmd.Version),
		zap.String("commit", cmd.Commit),
		zap.Int("peers", conf.Sim.Inbound+conf.Sim.Outbound+conf.Sim.Legacy),
		zap.Int("transactions", conf.Sim.Transactions),
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	eg, ctx := errgroup.WithContext(ctx)
	if conf.CollectMetrics {
		srv, err := metrics.NewServer(logs.metrics, conf.MetricsAddress)
		if err != nil {
			return log.ErrStartMetrics(err)
		}
		eg.Go(func() error {
			return srv.Run(ctx)
		})
	}
	if conf.MetricsPush.URL != "" {
		metrics.StartPushingMetrics(ctx, logs.metrics, conf.MetricsPush, "txrecon-sim", runID)
	}

	s, err := sim.New(conf.Sim, conf.Tracker, conf.Driver, conf.Relay,
		sim.WithLogger(logs.app),
		sim.WithModuleLoggers(logs.tracker, logs.driver, logs.relay),
	)
	if err != nil {
		return log.ErrInvalidConfig(err)
	}
	eg.Go(func() error {
		defer cancel()
		summary, err := s.Run(ctx)
		if err != nil {
			return fmt.Errorf("simulation: %w", err)
		}
		fmt.Printf("transactions=%d flooded=%d queued=%d requests=%d reconnects=%d\n",
			summary.Transactions, summary.Flooded, summary.Queued, summary.Requests, summary.Reconnects)
		if report != "" {
			return writeReport(report, &summary)
		}
		return nil
	})
	return eg.Wait()
}
