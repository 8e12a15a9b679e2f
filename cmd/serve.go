package cmd

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/chainpay-labs/paybot/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the paybot HTTP server",
	Long:  `Starts the HTTP API serving chat, analytics, employee and payment endpoints, plus a WebSocket chat channel for the dashboard.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		st, database, err := openStore(cfg)
		if err != nil {
			return err
		}
		defer database.Close()

		engine, err := buildEngine(cfg)
		if err != nil {
			return err
		}

		srv := server.New(server.Config{
			Port:        cfg.Server.Port,
			CompanyName: cfg.CompanyName,
			AllowAll:    cfg.Server.AllowAllOrigins,
		}, st, engine)

		// Shut down cleanly on SIGINT/SIGTERM.
		done := make(chan error, 1)
		go func() { done <- srv.Start() }()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-done:
			if err != nil && err != http.ErrServerClosed {
				return fmt.Errorf("server: %w", err)
			}
			return nil
		case <-sig:
			ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(ctx)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
