package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"checkout-domains/internal/auth"
	"checkout-domains/internal/domains"
	"checkout-domains/internal/location"
	"checkout-domains/internal/server"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var errCheckFailed = errors.New("one or more hosts could not be parsed")

func checkCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check <host>...",
		Short: "Check whether hosts belong to PayPal or Venmo",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, base, err := opts.load()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			failed := false
			for _, raw := range args {
				loc, err := location.Parse(raw)
				if err != nil || loc.Empty() {
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: invalid host\n", raw)
					failed = true
					continue
				}
				ctx := base.WithLocation(loc)
				fmt.Fprintf(out, "%s paypal=%t venmo=%t trusted=%t\n",
					raw,
					domains.IsPayPalDomain(ctx),
					domains.IsVenmoDomain(ctx),
					domains.IsPayPalTrustedDomain(ctx),
				)
			}
			if failed {
				return errCheckFailed
			}
			return nil
		},
	}
}

func endpointsCmd(opts *options) *cobra.Command {
	var fetchToken bool

	cmd := &cobra.Command{
		Use:   "endpoints",
		Short: "Print the resolved PayPal endpoints",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, ctx, err := opts.load()
			if err != nil {
				return err
			}

			loggerURL, err := domains.PayPalLoggerURL(ctx)
			if err != nil {
				return fmt.Errorf("logger: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "env:        %s\n", ctx.Env)
			fmt.Fprintf(out, "logger:     %s\n", loggerURL)
			fmt.Fprintf(out, "auth api:   %s\n", domains.AuthAPIURL(ctx))
			fmt.Fprintf(out, "orders api: %s\n", domains.OrderAPIURL(ctx))
			if cfg.Auth.ClientID != "" {
				creds := auth.ClientCredentials(ctx, cfg.Auth.ClientID, cfg.Auth.ClientSecret)
				fmt.Fprintf(out, "client:     %s -> %s\n", creds.ClientID, creds.TokenURL)
				if fetchToken {
					token, err := auth.TokenSource(cmd.Context(), ctx, cfg.Auth.ClientID, cfg.Auth.ClientSecret).Token()
					if err != nil {
						return fmt.Errorf("token: %w", err)
					}
					fmt.Fprintf(out, "token:      %s expires %s\n", token.Type(), token.Expiry.Format(time.RFC3339))
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&fetchToken, "fetch-token", false, "request an access token with the configured client credentials")
	return cmd
}

func serveCmd(opts *options) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve health, trust, and endpoint lookups over HTTP",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, ctx, err := opts.load()
			if err != nil {
				return err
			}
			logger, err := opts.logger(cfg)
			if err != nil {
				return err
			}
			defer func() {
				_ = logger.Sync()
			}()

			if addr == "" {
				addr = cfg.Health.Addr
			}
			if !cfg.Health.Enabled {
				logger.Info("http server disabled")
				return nil
			}

			srv := server.New(addr, ctx, logger)
			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe()
			}()

			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
			defer signal.Stop(sigCh)
			select {
			case err := <-errCh:
				if err != nil {
					logger.Error("http server error", zap.Error(err))
				}
				return err
			case <-sigCh:
				logger.Info("shutdown requested")
			}

			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (defaults to health.addr)")
	return cmd
}
