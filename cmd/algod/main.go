package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/electric-power/algo-service/pkg/api"
	"github.com/electric-power/algo-service/pkg/config"
	"github.com/electric-power/algo-service/pkg/dispatcher"
	"github.com/electric-power/algo-service/pkg/hardware"
	"github.com/electric-power/algo-service/pkg/log"
	"github.com/electric-power/algo-service/pkg/metrics"
	"github.com/electric-power/algo-service/pkg/plugins"
	"github.com/electric-power/algo-service/pkg/progress"
	"github.com/electric-power/algo-service/pkg/sink"
	"github.com/electric-power/algo-service/pkg/store"
	"github.com/electric-power/algo-service/pkg/worker"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "algod",
	Short: "algod - grid algorithm execution service",
	Long: `algod runs power-grid analysis algorithms as managed tasks.

Schemes are registered as plugins and exposed over a gRPC control
surface: the backend submits tasks, streams their progress and can
cancel them mid-flight. CPU-bound schemes run in disposable worker
subprocesses; GPU-bound schemes share an in-process pool.`,
	Version: Version,
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"algod version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(workerCmd)

	workerCmd.Flags().String("task-id", "", "task identifier")
	workerCmd.Flags().String("scheme", "", "scheme code to execute")
	workerCmd.Flags().String("params", "", "algorithm parameters as JSON")
	workerCmd.Flags().String("data-ref", "", "input data reference")
	_ = workerCmd.MarkFlagRequired("task-id")
	_ = workerCmd.MarkFlagRequired("scheme")
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the algorithm service",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		if err := log.Init(log.Config{
			Level:   log.Level(cfg.LogLevel),
			Dir:     cfg.LogDir,
			Console: true,
		}); err != nil {
			return fmt.Errorf("failed to initialize logging: %v", err)
		}

		plugins.RegisterAll()
		hw := hardware.Detect()

		ts, err := store.Open(cfg.DataDir)
		if err != nil {
			return fmt.Errorf("failed to open task store: %v", err)
		}
		defer ts.Close()

		mgr := progress.NewManager(ts)
		snk := sink.New(cfg.ResultDir, cfg.ReporterTarget)

		disp, err := dispatcher.New(mgr, snk, hw)
		if err != nil {
			return fmt.Errorf("failed to create dispatcher: %v", err)
		}

		server := api.NewServer(disp, mgr, hw)

		if cfg.MetricsPort > 0 {
			go func() {
				addr := fmt.Sprintf("%s:%d", cfg.GRPCHost, cfg.MetricsPort)
				mux := http.NewServeMux()
				mux.Handle("/metrics", metrics.Handler())
				log.WithComponent("metrics").Info().Str("addr", addr).Msg("metrics endpoint listening")
				if err := http.ListenAndServe(addr, mux); err != nil {
					log.WithComponent("metrics").Error().Err(err).Msg("metrics endpoint failed")
				}
			}()
		}

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start(fmt.Sprintf("%s:%d", cfg.GRPCHost, cfg.GRPCPort))
		}()

		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

		select {
		case sig := <-sigCh:
			log.WithComponent("main").Info().Str("signal", sig.String()).Msg("shutting down")
		case err := <-errCh:
			if err != nil {
				return fmt.Errorf("gRPC server failed: %v", err)
			}
			return nil
		}

		// stop intake first, then drain workers and the write queue
		stopped := make(chan struct{})
		go func() {
			server.Stop()
			close(stopped)
		}()
		select {
		case <-stopped:
		case <-time.After(2 * time.Second):
			log.WithComponent("main").Warn().Msg("graceful stop timed out, continuing shutdown")
		}

		disp.Shutdown()
		mgr.Close()
		log.WithComponent("main").Info().Msg("shutdown complete")
		return nil
	},
}

// workerCmd is the hidden re-exec entry point for CPU task execution.
// The service spawns it with a pipe on stdout; it is not meant to be
// run by hand.
var workerCmd = &cobra.Command{
	Use:    "worker",
	Short:  "Run a single task as a worker subprocess",
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()

		// stdout belongs to the event protocol; logs go to stderr
		if err := log.Init(log.Config{
			Level:   log.Level(cfg.LogLevel),
			Dir:     cfg.LogDir,
			Console: true,
		}); err != nil {
			return fmt.Errorf("failed to initialize logging: %v", err)
		}

		plugins.RegisterAll()

		taskID, _ := cmd.Flags().GetString("task-id")
		scheme, _ := cmd.Flags().GetString("scheme")
		params, _ := cmd.Flags().GetString("params")
		dataRef, _ := cmd.Flags().GetString("data-ref")

		return worker.Run(taskID, scheme, params, dataRef)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}
