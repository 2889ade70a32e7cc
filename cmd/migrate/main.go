package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"marketplace-api/internal/pkg/config"

	"ariga.io/atlas-go-sdk/atlasexec"
	"github.com/spf13/pflag"
)

type options struct {
	dir     string
	url     string
	atlas   string
	dryRun  bool
	timeout time.Duration
}

func main() {
	if err := run(os.Args[1:]); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		slog.Error("Migration failed", "error", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	var opts options
	flagSet := pflag.NewFlagSet("migrate", pflag.ContinueOnError)
	flagSet.StringVar(&opts.dir, "dir", "migrations", "directory holding the versioned SQL files")
	flagSet.StringVar(&opts.url, "url", "", "database url (default: built from DB_* environment variables)")
	flagSet.StringVar(&opts.atlas, "atlas-bin", "atlas", "atlas executable")
	flagSet.BoolVar(&opts.dryRun, "dry-run", false, "print pending migrations without applying them")
	flagSet.DurationVar(&opts.timeout, "timeout", 2*time.Minute, "overall timeout")
	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if opts.url == "" {
		cfg, err := config.LoadConfig()
		if err != nil {
			return err
		}
		opts.url = cfg.DB.BuildDSN()
	}

	ctx, cancel := context.WithTimeout(context.Background(), opts.timeout)
	defer cancel()

	workdir, err := atlasexec.NewWorkingDir(atlasexec.WithMigrations(os.DirFS(opts.dir)))
	if err != nil {
		return fmt.Errorf("failed to prepare migration directory: %w", err)
	}
	defer workdir.Close()

	client, err := atlasexec.NewClient(workdir.Path(), opts.atlas)
	if err != nil {
		return fmt.Errorf("failed to create atlas client: %w", err)
	}

	res, err := client.MigrateApply(ctx, &atlasexec.MigrateApplyParams{
		URL:    opts.url,
		DryRun: opts.dryRun,
	})
	if err != nil {
		return err
	}

	for _, f := range res.Applied {
		slog.Info("Applied migration", "version", f.Version, "name", f.Name)
	}
	slog.Info("Migrations complete", "current", res.Current, "target", res.Target, "applied", len(res.Applied), "dry_run", opts.dryRun)
	return nil
}
