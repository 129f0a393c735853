package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/3-lines-studio/toolpages/internal/adapters/cli"
	"github.com/3-lines-studio/toolpages/internal/adapters/fs"
	"github.com/3-lines-studio/toolpages/internal/config"
	"github.com/3-lines-studio/toolpages/internal/usecase"
)

type options struct {
	configPath string
	configSet  bool
	dryRun     bool
	logLevel   slog.Level
}

func parseArgs(args []string, output io.Writer) (options, error) {
	flagSet := flag.NewFlagSet("toolpages", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `Usage: toolpages [options]

Scans the widget directory and writes one page per widget.
With no options the defaults (or ./toolpages.yaml) are used.

Options:
`)
		flagSet.PrintDefaults()
	}

	configPath := flagSet.String("config", config.DefaultFile, "Path to the YAML config file.")
	dryRun := flagSet.Bool("dry-run", false, "Render pages without writing them.")
	logLevel := flagSet.String("log-level", "warn", "Diagnostic log level: debug, info, warn or error.")

	if err := flagSet.Parse(args); err != nil {
		return options{}, err
	}
	if flagSet.NArg() > 0 {
		return options{}, fmt.Errorf("unexpected argument %q", flagSet.Arg(0))
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToLower(*logLevel))); err != nil {
		return options{}, fmt.Errorf("invalid -log-level %q", *logLevel)
	}

	opts := options{
		configPath: *configPath,
		dryRun:     *dryRun,
		logLevel:   level,
	}
	flagSet.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			opts.configSet = true
		}
	})
	return opts, nil
}

func run(ctx context.Context, opts options, output *cli.Output) error {
	cfg, err := config.Load(opts.configPath, opts.configSet)
	if err != nil {
		return err
	}
	slog.Debug("config loaded", "path", opts.configPath, "source_dir", cfg.SourceDir, "pages_dir", cfg.PagesDir)

	service := usecase.NewGenerateService(fs.NewAFSFileSystem("."), output)
	_, err = service.GeneratePages(ctx, usecase.GenerateInput{
		Config: cfg,
		DryRun: opts.dryRun,
	})
	return err
}

func main() {
	output := cli.NewOutput()

	opts, err := parseArgs(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		output.PrintError("%v", err)
		os.Exit(2)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: opts.logLevel})))

	if err := run(context.Background(), opts, output); err != nil {
		output.PrintError("%v", err)
		os.Exit(1)
	}
}
