package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/feral-file/ff-game-pricer/internal/config"
	"github.com/feral-file/ff-game-pricer/internal/store"
)

const pollInterval = 2 * time.Second // How often to re-read a run that is still going

// Config holds the command line options
type Config struct {
	ConfigFile string
	EnvPath    string
	RunID      string
	OutputFile string // Output markdown file path (optional)
	Watch      bool   // Poll until the run finishes
}

func parseFlags() *Config {
	cfg := &Config{}
	flag.StringVar(&cfg.ConfigFile, "config", "", "Path to configuration file")
	flag.StringVar(&cfg.EnvPath, "env", "config/", "Path to environment files")
	flag.StringVar(&cfg.RunID, "run-id", "", "Refresh run ID (required)")
	flag.StringVar(&cfg.OutputFile, "output", "", "Write a markdown report to this file")
	flag.BoolVar(&cfg.Watch, "watch", false, "Poll until the run finishes")
	flag.Parse()
	return cfg
}

func main() {
	cfg := parseFlags()

	if cfg.RunID == "" {
		fmt.Println("Error: run-id is required")
		flag.Usage()
		os.Exit(1)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		cancel()
	}()

	config.ChdirRepoRoot()
	appCfg, err := config.LoadPriceRefresherConfig(cfg.ConfigFile, cfg.EnvPath)
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}

	db, err := gorm.Open(postgres.Open(appCfg.Database.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		fmt.Printf("Error connecting to database: %v\n", err)
		os.Exit(1)
	}
	dataStore := store.NewPGStore(db)

	for {
		run, err := dataStore.GetRefreshRun(ctx, cfg.RunID)
		if err != nil {
			fmt.Printf("Error reading run: %v\n", err)
			os.Exit(1)
		}
		if run == nil {
			fmt.Printf("Run %s not found\n", cfg.RunID)
			os.Exit(1)
		}

		stats, err := buildStats(run, time.Now())
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}

		if !stats.Running || !cfg.Watch {
			printRunStats(os.Stdout, stats)
			if cfg.OutputFile != "" {
				if err := os.WriteFile(cfg.OutputFile, []byte(renderMarkdown(stats)), 0644); err != nil {
					fmt.Printf("\n⚠️  Warning: Failed to write markdown file: %v\n", err)
				} else {
					fmt.Printf("\n✓ Report written to: %s\n", cfg.OutputFile)
				}
			}
			return
		}

		fmt.Printf("\r⏳ Waiting for run to finish... (elapsed: %s)    ", formatDuration(stats.Duration))

		timer := time.NewTimer(pollInterval)
		select {
		case <-ctx.Done():
			timer.Stop()
			fmt.Println()
			printRunStats(os.Stdout, stats)
			return
		case <-timer.C:
		}
	}
}
