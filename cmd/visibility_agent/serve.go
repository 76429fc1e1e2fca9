package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jonathan/visibility-engine/internal/benchmarks"
	"github.com/jonathan/visibility-engine/internal/config"
	"github.com/jonathan/visibility-engine/internal/server"
)

var (
	servePort       int
	serveConfigFile string
	serveRateLimit  int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for scoring projects and inline contexts.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 8080, "Port to listen on")
	serveCmd.Flags().StringVar(&serveConfigFile, "config", "", "Path to a JSON config file")
	serveCmd.Flags().IntVar(&serveRateLimit, "rate-limit", 0, "Per-client requests per minute (0 uses config default)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Config{
		Port:               servePort,
		RateLimitPerMinute: serveRateLimit,
	}

	if serveConfigFile != "" {
		fileCfg, err := config.LoadConfig(serveConfigFile)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	} else {
		cfg = cfg.MergeWithDefaults(config.Config{})
	}

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL environment variable is required")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	table := benchmarks.Default()
	if cfg.BenchmarksPath != "" {
		var err error
		table, err = benchmarks.LoadTable(cfg.BenchmarksPath)
		if err != nil {
			return fmt.Errorf("failed to load benchmarks: %w", err)
		}
	}

	srv, err := server.New(server.Config{
		Port:               cfg.Port,
		DatabaseURL:        cfg.DatabaseURL,
		Benchmarks:         table,
		RateLimitPerMinute: cfg.RateLimitPerMinute,
	})
	if err != nil {
		return fmt.Errorf("failed to create server: %w", err)
	}

	return srv.Start()
}
