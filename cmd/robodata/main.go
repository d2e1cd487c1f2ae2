package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"codeberg.org/mvbarbosa/robodata/internal/api"
	"codeberg.org/mvbarbosa/robodata/internal/config"
	"codeberg.org/mvbarbosa/robodata/internal/logger"
	"codeberg.org/mvbarbosa/robodata/internal/metrics"
	"codeberg.org/mvbarbosa/robodata/internal/pid"
	"codeberg.org/mvbarbosa/robodata/internal/scheduler"
	"codeberg.org/mvbarbosa/robodata/internal/simulator"
	"codeberg.org/mvbarbosa/robodata/internal/state"
	"codeberg.org/mvbarbosa/robodata/internal/storage"
)

var cfg *config.Config

func init() {
	var err error
	cfg, err = config.Load()
	if err != nil {
		fmt.Printf("failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger.Init(cfg.LogLevel, logger.IsService())
	logger.Debug().Msg("Config loaded")
}

func main() {
	if err := pid.Write(); err != nil {
		logger.Fatal().Err(err).Msg("failed to write PID file")
	}
	defer func() {
		if err := pid.Remove(); err != nil {
			logger.Error().Err(err).Msg("failed to remove PID file")
		}
	}()

	if err := run(); err != nil {
		logger.Error().Err(err).Msg("service terminated with error")
	}
}

func run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go handleSignals(cancel)

	docs, err := storage.NewFileStore(cfg.DataDir)
	if err != nil {
		return err
	}

	store, err := state.New(state.Config{HistoryLimit: cfg.HistoryLimit}, simulator.New(), docs)
	if err != nil {
		return err
	}

	collector, err := metrics.NewService(metrics.Config{
		Enabled: cfg.Telemetry,
		DBPath:  cfg.TelemetryDB,
	})
	if err != nil {
		return err
	}
	defer func() {
		if err := collector.Close(); err != nil {
			logger.Error().Err(err).Msg("failed to close metrics collector")
		}
	}()

	server := api.NewServer(store)

	store.Subscribe(func(result state.CycleResult) {
		server.Broadcast(result.Snapshot)

		snap := &metrics.CycleSnapshot{
			Timestamp:      time.Now(),
			Duration:       result.Duration,
			PersistOK:      result.PersistOK,
			HistoryRecords: result.HistoryRecords,
			MeanMotorTemp:  meanMotorTemperature(result),
		}
		if len(result.Snapshot.Pallets) > 0 {
			snap.PalletID = result.Snapshot.Pallets[0].ID
		}
		if err := collector.Record(ctx, snap); err != nil {
			logger.Warn().Err(err).Msg("failed to record cycle metrics")
		}
	})

	sched, err := scheduler.New(store, time.Duration(cfg.Interval)*time.Second)
	if err != nil {
		return err
	}
	if err := sched.Start(ctx); err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- server.Start(cfg.ListenAddress)
	}()

	select {
	case <-ctx.Done():
		sched.Stop()
		server.Stop()
		return <-serveErr
	case err := <-serveErr:
		sched.Stop()
		return err
	}
}

func handleSignals(cancel context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	<-sigs
	logger.Info().Msg("Received termination signal.")
	cancel()
}

func meanMotorTemperature(result state.CycleResult) float64 {
	if len(result.Snapshot.Motors) == 0 {
		return 0
	}

	var sum float64
	for _, m := range result.Snapshot.Motors {
		sum += m.Temperature
	}
	return sum / float64(len(result.Snapshot.Motors))
}
