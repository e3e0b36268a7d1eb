package main

import (
	"context"
	"fmt"
	"time"

	cvsnap "github.com/alnah/go-cvsnap"
	"github.com/alnah/go-cvsnap/internal/config"
)

// Snapshotter is the interface for the snapshot service.
type Snapshotter interface {
	Snapshot(ctx context.Context, input cvsnap.Input) (*cvsnap.Result, error)
	Close() error
}

// Compile-time interface implementation check.
var _ Snapshotter = (*cvsnap.Service)(nil)

// serviceFactory builds a Snapshotter; swapped out in tests.
type serviceFactory func(ledgerPath string, timeout time.Duration) Snapshotter

// newService is the production factory.
func newService(ledgerPath string, timeout time.Duration) Snapshotter {
	opts := []cvsnap.Option{cvsnap.WithLedgerPath(ledgerPath)}
	if timeout > 0 {
		opts = append(opts, cvsnap.WithTimeout(timeout))
	}
	return cvsnap.New(opts...)
}

// runSnapshot orchestrates the snapshot command.
func runSnapshot(ctx context.Context, flags *snapshotFlags, newSvc serviceFactory, env *Environment) error {
	envCfg := loadEnvConfig()
	warnUnknownEnvVars(env.Stderr)

	// Load configuration
	cfg := config.DefaultConfig()
	configPath := flags.common.config
	if configPath == "" {
		configPath = envCfg.ConfigPath
	}
	if configPath != "" {
		var err error
		cfg, err = config.LoadConfig(configPath)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// Precedence: CLI flags > env vars > config file
	applyEnvConfig(envCfg, cfg)
	mergeFlags(flags, cfg)

	timeout, err := resolveTimeout(cfg, envCfg)
	if err != nil {
		return err
	}

	svc := newSvc(resolveLedgerPath(cfg), timeout)
	defer func() { _ = svc.Close() }()

	start := env.Now()
	result, err := svc.Snapshot(ctx, buildInput(flags, cfg))
	if err != nil {
		return err
	}

	if flags.common.quiet {
		return nil
	}
	if flags.common.verbose {
		elapsed := env.Now().Sub(start).Round(time.Millisecond)
		fmt.Fprintf(env.Stdout, "Recorded %s at %s (%v)\n", result.Entry.ID, result.Entry.Commit, elapsed)
	} else {
		fmt.Fprintf(env.Stdout, "Recorded %s\n", result.Entry.ID)
	}
	fmt.Fprintf(env.Stdout, "Created %s\n", result.PDFPath)
	return nil
}

// mergeFlags merges CLI flags into config. CLI values override config values.
func mergeFlags(flags *snapshotFlags, cfg *config.Config) {
	// Source flags
	if flags.source.repo != "" {
		cfg.Repo.Path = flags.source.repo
	}
	if flags.source.ref != "" {
		cfg.Repo.Ref = flags.source.ref
	}

	// I/O flags
	if flags.ledger != "" {
		cfg.Ledger.Path = flags.ledger
	}
	if flags.output != "" {
		cfg.Output.Dir = flags.output
	}

	// Render flags
	if flags.render.converter != "" {
		cfg.Render.Converter = flags.render.converter
	}
	if flags.render.style != "" {
		cfg.Render.Style = flags.render.style
	}
	if flags.render.timeout != "" {
		cfg.Render.Timeout = flags.render.timeout
	}
	if flags.render.noStampCSS {
		cfg.Stamp.DisableCSS = true
	}

	// Stamp flags
	if flags.stamp.position != "" {
		cfg.Stamp.Position = flags.stamp.position
	}
	if flags.stamp.showRef {
		cfg.Stamp.ShowRef = true
	}
	if flags.stamp.showDate {
		cfg.Stamp.ShowDate = true
	}
}

// buildInput assembles the service input from merged configuration.
// The note never comes from config: it describes this invocation, not a default.
func buildInput(flags *snapshotFlags, cfg *config.Config) cvsnap.Input {
	var stamp *cvsnap.Stamp
	if cfg.Stamp.Position != "" || cfg.Stamp.ShowRef || cfg.Stamp.ShowDate {
		stamp = &cvsnap.Stamp{
			Position: cfg.Stamp.Position,
			ShowRef:  cfg.Stamp.ShowRef,
			ShowDate: cfg.Stamp.ShowDate,
		}
	}

	return cvsnap.Input{
		RepoPath:   cfg.Repo.Path,
		Ref:        cfg.Repo.Ref,
		Note:       flags.source.note,
		OutputPath: cfg.Output.Dir,
		Converter:  cfg.Render.Converter,
		StylePath:  cfg.Render.Style,
		NoStampCSS: cfg.Stamp.DisableCSS,
		Stamp:      stamp,
	}
}

// resolveLedgerPath determines the ledger file from config or the default.
func resolveLedgerPath(cfg *config.Config) string {
	if cfg.Ledger.Path != "" {
		return cfg.Ledger.Path
	}
	return cvsnap.DefaultLedgerPath
}

// resolveTimeout parses the configured timeout. Zero means library default.
func resolveTimeout(cfg *config.Config, envCfg *envConfig) (time.Duration, error) {
	if cfg.Render.Timeout != "" {
		d, err := time.ParseDuration(cfg.Render.Timeout)
		if err != nil || d <= 0 {
			return 0, fmt.Errorf("invalid timeout %q (use formats like 30s, 2m)", cfg.Render.Timeout)
		}
		return d, nil
	}
	if envCfg.Timeout > 0 {
		return envCfg.Timeout, nil
	}
	return 0, nil
}
