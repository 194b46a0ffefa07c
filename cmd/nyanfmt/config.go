package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"nyanfmt/internal/diag"
	"nyanfmt/internal/driver"
	"nyanfmt/internal/project"
)

// loadConfig discovers nyanfmt.toml from the working directory and applies
// fmt flag overrides on top of it.
func loadConfig(cmd *cobra.Command) (project.Config, error) {
	cfg, err := project.Discover(".")
	if err != nil {
		return project.Config{}, fmt.Errorf("%s: %w", diag.ProjInvalidConfig.ID(), err)
	}
	if f := cmd.Flags().Lookup("jobs"); f != nil && f.Changed {
		jobs, err := cmd.Flags().GetInt("jobs")
		if err != nil {
			return project.Config{}, err
		}
		if jobs < 0 {
			return project.Config{}, fmt.Errorf("--jobs must be >= 0, got %d", jobs)
		}
		cfg.Format.Jobs = jobs
	}
	if f := cmd.Flags().Lookup("cache"); f != nil && f.Changed {
		enabled, err := cmd.Flags().GetBool("cache")
		if err != nil {
			return project.Config{}, err
		}
		cfg.Cache.Enabled = enabled
	}
	return cfg, nil
}

// openCache returns nil when caching is off.
func openCache(cfg project.Config) (*driver.DiskCache, error) {
	if !cfg.Cache.Enabled {
		return nil, nil
	}
	dir, err := cfg.CacheDir()
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return driver.OpenDiskCache(dir)
}
