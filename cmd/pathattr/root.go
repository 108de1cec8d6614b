package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/marmos91/pathattr/internal/logger"
	"github.com/marmos91/pathattr/pkg/config"
	"github.com/marmos91/pathattr/pkg/metrics"
	"github.com/marmos91/pathattr/pkg/pathattr"
)

// pushTimeout bounds the single Pushgateway request made at exit.
const pushTimeout = 5 * time.Second

// skipConfigAnnotation marks commands that run without loading configuration.
const skipConfigAnnotation = "pathattr/skip-config"

// app is the state shared by all subcommands of one invocation.
type app struct {
	configPath string
	logLevel   string
	output     string

	cfg     *config.Config
	helper  *pathattr.Helper
	push    *metrics.PushConfig
	printer *printer
}

func newRootCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pathattr",
		Short: "Inspect extended attributes, file metadata and URLs",
		Long: `pathattr reads and writes extended attributes, reports file metadata
and content type identifiers, and takes apart URL strings.

Paths may be given as native paths or as file:// URLs.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       versionString(),
	}

	cmd.PersistentFlags().StringVar(&a.configPath, "config", "", "Path to config file (default: $XDG_CONFIG_HOME/pathattr/config.yaml)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "Override the log level (DEBUG, INFO, WARN, ERROR)")
	cmd.PersistentFlags().StringVarP(&a.output, "output", "o", "", "Override the output format (text, json, yaml)")

	if err := cmd.MarkPersistentFlagFilename("config", "yaml", "yml", "toml"); err != nil {
		panic(err)
	}

	cmd.PersistentPreRunE = func(cc *cobra.Command, _ []string) error {
		return a.setup(cc)
	}

	cmd.AddCommand(
		newXattrCmd(a),
		newStatCmd(a),
		newSizeCmd(a),
		newTypeCmd(a),
		newURLCmd(a),
		newConfigCmd(),
		newVersionCmd(),
	)

	return cmd
}

// setup loads configuration, applies flag overrides and builds the helper.
func (a *app) setup(cc *cobra.Command) error {
	if _, skip := cc.Annotations[skipConfigAnnotation]; skip {
		return nil
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if a.logLevel != "" {
		cfg.Logging.Level = a.logLevel
	}
	if a.output != "" {
		cfg.Output.Format = a.output
	}
	// Flag overrides go through the same defaults and validation as the file
	config.ApplyDefaults(cfg)
	if err := config.Validate(cfg); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	if err := logger.Configure(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.Output); err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}

	result, err := config.InitializeMetrics(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize metrics: %w", err)
	}

	a.cfg = cfg
	a.helper = pathattr.New(result.HelperMetrics)
	a.push = result.Push
	a.printer = newPrinter(cc.OutOrStdout(), cfg.Output.Format)

	logger.Debug("Configuration loaded (output=%s, metrics=%t)", cfg.Output.Format, cfg.Metrics.Enabled)
	return nil
}

// execute runs cmd and then delivers the collected metrics, whatever the
// outcome of the command.
//
// A failed push is logged rather than returned so that it never changes the
// outcome of the command itself.
func (a *app) execute(ctx context.Context, cmd *cobra.Command) error {
	err := cmd.ExecuteContext(ctx)

	if a.push != nil {
		pushCtx, cancel := context.WithTimeout(ctx, pushTimeout)
		defer cancel()

		if pushErr := metrics.Push(pushCtx, *a.push); pushErr != nil {
			logger.Warn("Metrics push failed: %v", pushErr)
		}
	}

	return err
}
