package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"go.temporal.io/sdk/client"

	"github.com/henrymaxel/platform-mvp-sub000/internal/workflows"
)

const (
	defaultTemporalHost = "localhost:7233"
	defaultNamespace    = "default"
)

// Config holds the report options
type Config struct {
	TemporalHost string
	Namespace    string
	WorkflowType string
	Since        time.Duration // Report window, measured back from now
	Debug        bool
	MaxWorkflows int           // Maximum number of executions to collect (0 = unlimited)
	QueryTimeout time.Duration // Timeout for each Temporal query
	OutputFile   string        // Output markdown file path (optional)
	PageSize     int           // Page size for Temporal queries
	SlowestCount int           // Number of slowest executions to list
}

func main() {
	cfg := parseFlags()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Println("\n\nReceived interrupt signal, shutting down...")
		cancel()
	}()

	c, err := client.Dial(client.Options{
		HostPort:  cfg.TemporalHost,
		Namespace: cfg.Namespace,
	})
	if err != nil {
		fmt.Printf("Error creating Temporal client: %v\n", err)
		os.Exit(1)
	}
	defer c.Close()

	fmt.Printf("Connected to Temporal at %s (namespace: %s)\n", cfg.TemporalHost, cfg.Namespace)
	fmt.Printf("Collecting %s executions started in the last %s...\n", cfg.WorkflowType, formatDuration(cfg.Since))

	collectionStart := time.Now()
	stats, err := collectSyncStats(ctx, c, cfg, collectionStart)
	if err != nil {
		fmt.Printf("\nError collecting stats: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("✓ Collection complete (executions: %d, took: %s)\n", stats.Total, formatDuration(time.Since(collectionStart)))

	fmt.Println("\n" + strings.Repeat("=", 80))
	fmt.Println("WALLET SYNC REPORT")
	fmt.Println(strings.Repeat("=", 80))
	printSyncStats(stats)

	if cfg.OutputFile != "" {
		if err := writeMarkdownReport(cfg.OutputFile, stats); err != nil {
			fmt.Printf("\n⚠️  Warning: Failed to write markdown file: %v\n", err)
		} else {
			fmt.Printf("\n✓ Report written to: %s\n", cfg.OutputFile)
		}
	}
}

func parseFlags() *Config {
	cfg := &Config{}

	flag.StringVar(&cfg.TemporalHost, "temporal-host", defaultTemporalHost, "Temporal host address")
	flag.StringVar(&cfg.Namespace, "namespace", defaultNamespace, "Temporal namespace")
	flag.StringVar(&cfg.WorkflowType, "workflow-type", workflows.WalletSyncWorkflowType, "Workflow type to report on")
	flag.DurationVar(&cfg.Since, "since", time.Hour, "Report window, e.g. 30m or 24h")
	flag.StringVar(&cfg.OutputFile, "output", "", "Output markdown file path (optional)")
	flag.BoolVar(&cfg.Debug, "debug", false, "Enable debug logging")
	flag.IntVar(&cfg.MaxWorkflows, "max-workflows", 10000, "Maximum executions to collect (0 = unlimited)")
	flag.IntVar(&cfg.PageSize, "page-size", 1000, "Page size for Temporal queries (max: 1000)")
	flag.IntVar(&cfg.SlowestCount, "slowest", 10, "Number of slowest executions to list")

	var queryTimeoutSeconds int
	flag.IntVar(&queryTimeoutSeconds, "query-timeout", 30, "Timeout for each Temporal query in seconds")

	configFile := flag.String("config", "", "Path to config file (optional)")

	flag.Parse()

	cfg.QueryTimeout = time.Duration(queryTimeoutSeconds) * time.Second

	if cfg.PageSize <= 0 || cfg.PageSize > 1000 {
		cfg.PageSize = 1000
	}
	if cfg.Since <= 0 {
		cfg.Since = time.Hour
	}
	if cfg.SlowestCount < 0 {
		cfg.SlowestCount = 0
	}

	path := *configFile
	if path == "" {
		path = defaultConfigPath()
	}

	// Load from config file if one is available
	if path != "" {
		fileCfg, err := LoadConfig(path)
		if err != nil {
			fmt.Printf("Warning: failed to load config file: %v\n", err)
		} else {
			// Override with file values if not set via flags
			if cfg.TemporalHost == defaultTemporalHost && fileCfg.TemporalHost != "" {
				cfg.TemporalHost = fileCfg.TemporalHost
			}
			if cfg.Namespace == defaultNamespace && fileCfg.Namespace != "" {
				cfg.Namespace = fileCfg.Namespace
			}
		}
	}

	return cfg
}
