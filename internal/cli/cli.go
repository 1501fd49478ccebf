// ============================================================================
// Machine Coordinator CLI - Command Line Interface
// ============================================================================
//
// Package: internal/cli
// Purpose: user-friendly command line interface based on Cobra, wiring the
// session registry, job dispatcher, check-in service, and gRPC transport
// into a runnable coordinator process.
//
// Command Structure:
//   coordinator                    # Root command
//   ├── serve                      # Start the coordinator
//   │   ├── --address, -a         # Listen address (default localhost)
//   │   ├── --port, -p            # Listen port (default 50051)
//   │   ├── --defective, -d       # Use the fault-injecting registry
//   │   └── --config, -c          # Config file path
//   └── status                    # Show coordinator status
//
// serve Command:
//   1. Load config file
//   2. Build the registry (production or defective), dispatcher, metrics
//   3. Start the Prometheus metrics HTTP server, if enabled
//   4. Start the gRPC server (CoordinatorHigh + CoordinatorLow + reflection)
//   5. Listen for SIGINT/SIGTERM and drain sessions before exiting
//
// ============================================================================

package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	v1 "github.com/ChuLiYu/machine-coordinator/api/proto/v1"
	"github.com/ChuLiYu/machine-coordinator/internal/checkin"
	"github.com/ChuLiYu/machine-coordinator/internal/dispatcher"
	"github.com/ChuLiYu/machine-coordinator/internal/launcher"
	"github.com/ChuLiYu/machine-coordinator/internal/machine"
	"github.com/ChuLiYu/machine-coordinator/internal/metrics"
	"github.com/ChuLiYu/machine-coordinator/internal/registry"
	"github.com/ChuLiYu/machine-coordinator/internal/server"
	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"
	"gopkg.in/yaml.v3"
)

var log = slog.Default()

// Config is the coordinator's YAML configuration structure.
type Config struct {
	Worker struct {
		Command        []string      `yaml:"command"`
		CheckinWait    time.Duration `yaml:"checkin_wait"`
		CheckinAddress string        `yaml:"checkin_address"`
	} `yaml:"worker"`

	Metrics struct {
		Enabled bool `yaml:"enabled"`
		Port    int  `yaml:"port"`
	} `yaml:"metrics"`
}

var configFile string

// BuildCLI assembles the coordinator's root Cobra command.
func BuildCLI() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "coordinator",
		Short: "Machine Coordinator: session registry and dispatcher for remote machine workers",
		Long: `coordinator owns session lifecycles over a fleet of machine worker
subprocesses: creating, running, snapshotting, rolling back, and
recreating them as clients request cycles, memory access, and proofs.`,
		Version: "1.0.0",
	}

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "configs/default.yaml", "config file path")

	rootCmd.AddCommand(buildServeCommand())
	rootCmd.AddCommand(buildStatusCommand())

	return rootCmd
}

func buildServeCommand() *cobra.Command {
	var address string
	var port int
	var defective bool

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the coordinator gRPC server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(address, port, defective)
		},
	}

	cmd.Flags().StringVarP(&address, "address", "a", "localhost", "address to listen on")
	cmd.Flags().IntVarP(&port, "port", "p", 50051, "port to listen on")
	cmd.Flags().BoolVarP(&defective, "defective", "d", false, "use the fault-injecting registry (testing only)")

	return cmd
}

func runServe(address string, port int, defective bool) error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	var collector *metrics.Collector
	if cfg.Metrics.Enabled {
		collector = metrics.NewCollector()
		go func() {
			log.Info("starting metrics server", "port", cfg.Metrics.Port)
			if err := metrics.StartServer(cfg.Metrics.Port); err != nil {
				log.Error("metrics server stopped", "error", err)
			}
		}()
	}

	checkinAddr := cfg.Worker.CheckinAddress
	if checkinAddr == "" {
		checkinAddr = fmt.Sprintf("%s:%d", address, port)
	}

	wl := launcher.NewProcessLauncher(cfg.Worker.Command)

	prodRegistry := registry.New(machine.DialGRPC, wl, checkinAddr, sinkOrNil(collector))
	var reg registry.Interface = prodRegistry
	if defective {
		log.Warn("starting with defective registry; do not use in production")
		reg = registry.NewDefective(prodRegistry)
	}

	disp := dispatcher.New(sinkOrNilDispatcher(collector))
	checkinSvc := checkin.New(prodRegistry)
	grpcServer := grpc.NewServer()
	v1.RegisterCoordinatorHighServer(grpcServer, server.New(reg, disp))
	v1.RegisterCoordinatorLowServer(grpcServer, checkinSvc)
	reflection.Register(grpcServer)

	listenAddr := fmt.Sprintf("%s:%d", address, port)
	lis, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", listenAddr, err)
	}

	go func() {
		log.Info("coordinator listening", "address", listenAddr)
		if err := grpcServer.Serve(lis); err != nil {
			log.Error("gRPC server stopped", "error", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	log.Info("shutting down")
	prodRegistry.Shutdown(context.Background())
	grpcServer.Stop()
	log.Info("shutdown complete")
	return nil
}

func buildStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show coordinator status as set by the config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			return showStatus()
		},
	}
}

func showStatus() error {
	cfg, err := loadConfig(configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	fmt.Println("Machine Coordinator Status")
	fmt.Printf("  Config file:      %s\n", configFile)
	fmt.Printf("  Worker command:   %v\n", cfg.Worker.Command)
	fmt.Printf("  Checkin wait:     %s\n", cfg.Worker.CheckinWait)
	if cfg.Metrics.Enabled {
		fmt.Printf("  Metrics:          enabled on :%d/metrics\n", cfg.Metrics.Port)
	} else {
		fmt.Println("  Metrics:          disabled")
	}
	return nil
}

func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config YAML: %w", err)
	}
	return &cfg, nil
}

func sinkOrNil(c *metrics.Collector) registry.MetricsSink {
	if c == nil {
		return nil
	}
	return c
}

func sinkOrNilDispatcher(c *metrics.Collector) dispatcher.MetricsSink {
	if c == nil {
		return nil
	}
	return c
}
