package main

import (
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/charmbracelet/log"
)

// envOptions are runtime knobs read from the environment rather than flags.
type envOptions struct {
	Debug   bool   `env:"DEBUG"`
	LogFile string `env:"LOGFILE"`
}

// setupLog configures the global logger and returns a closer for the log
// file, if one is in use.
func setupLog() (func() error, error) {
	opts, err := env.ParseAsWithOptions[envOptions](env.Options{Prefix: "DECKTALK_"})
	if err != nil {
		return nil, fmt.Errorf("error parsing environment: %w", err)
	}

	log.SetOutput(os.Stderr)
	log.SetTimeFormat(time.Kitchen)
	log.SetReportTimestamp(true)
	if opts.Debug {
		log.SetLevel(log.DebugLevel)
	}

	if opts.LogFile == "" {
		return func() error { return nil }, nil
	}
	f, err := os.OpenFile(opts.LogFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	log.SetOutput(f)
	log.SetLevel(log.DebugLevel)
	return f.Close, nil
}
