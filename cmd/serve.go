package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/altcast/lightaudit/internal/api"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the audit engine over a JSON HTTP API",
	Long: `Expose the scanner as a small HTTP API:

  POST /api/v1/audits          run an audit ({"url": "example.com"})
  GET  /api/v1/audits/{slug}   fetch a stored report
  GET  /api/v1/audits          list recent reports
  GET  /api/v1/health          liveness probe

Set serve.auth_token to require X-Auth-Token on audit routes.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := newStore(cmd.Context())
		if err != nil {
			return err
		}

		srv := api.NewServer(api.Config{
			Auditor:     newEngine(st),
			Store:       st,
			AuthToken:   viper.GetString("serve.auth_token"),
			Logger:      logger.Desugar(),
			CORSOrigins: viper.GetStringSlice("serve.cors_origins"),
			RateLimit:   viper.GetInt("serve.rate_limit"),
			RateBurst:   viper.GetInt("serve.rate_burst"),
			RecentLimit: viper.GetInt("serve.recent_limit"),
		})

		addr := viper.GetString("serve.addr")
		httpSrv := &http.Server{
			Addr:              addr,
			Handler:           srv,
			ReadHeaderTimeout: 5 * time.Second,
		}

		errCh := make(chan error, 1)
		go func() {
			logger.Infow("api listening", "addr", addr)
			errCh <- httpSrv.ListenAndServe()
		}()

		stop := make(chan os.Signal, 1)
		signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				return fmt.Errorf("api server: %w", err)
			}
			return nil
		case sig := <-stop:
			logger.Infow("shutting down", "signal", sig.String())
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return httpSrv.Shutdown(ctx)
		}
	},
}
