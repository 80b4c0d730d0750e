package cli

import (
	"os"

	"checkout-domains/internal/config"
	"checkout-domains/internal/env"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type options struct {
	configPath string
	env        string
	stageHost  string
	location   string
	logLevel   string
}

func Execute() {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func NewRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:          "domains",
		Short:        "Resolve PayPal endpoints and check trusted PayPal and Venmo domains",
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "path to config.yaml (defaults to $CONFIG_PATH or ./config.yaml)")
	flags.StringVar(&opts.env, "env", "", "deployment environment: production, sandbox, stage, local, test")
	flags.StringVar(&opts.stageHost, "stage-host", "", "stage host used by the stage and local environments")
	flags.StringVar(&opts.location, "location", "", "current location the resolvers evaluate from")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	cmd.AddCommand(checkCmd(opts))
	cmd.AddCommand(endpointsCmd(opts))
	cmd.AddCommand(serveCmd(opts))
	return cmd
}

// load resolves config in the order defaults, file, environment, flags.
func (o *options) load() (config.Config, env.Context, error) {
	var (
		cfg config.Config
		err error
	)
	if o.configPath != "" {
		cfg, err = config.LoadFile(o.configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return config.Config{}, env.Context{}, err
	}

	if o.env != "" {
		cfg.Env = o.env
	}
	if o.stageHost != "" {
		cfg.StageHost = o.stageHost
	}
	if o.location != "" {
		cfg.Location = o.location
	}
	if o.logLevel != "" {
		cfg.LogLevel = o.logLevel
	}

	ctx, err := cfg.Context()
	if err != nil {
		return config.Config{}, env.Context{}, err
	}
	return cfg, ctx, nil
}

func (o *options) logger(cfg config.Config) (*zap.Logger, error) {
	return config.BuildLogger(cfg.LogLevel)
}
