package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/marcus/ocean-notes/internal/config"
	"github.com/marcus/ocean-notes/internal/server"
	"github.com/marcus/ocean-notes/internal/store/local"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the notes API from the local store",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		logger := newLogger(os.Stderr)

		addr := cfg.Server.Addr
		if serveAddr != "" {
			addr = serveAddr
		}

		s, err := local.Open(cfg.Local.Driver, cfg.Local.Path, local.WithIDFunc(server.NewID))
		if err != nil {
			return fmt.Errorf("open local store: %w", err)
		}
		defer s.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		return server.New(s, logger).ListenAndServe(ctx, addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config: "+config.Default().Server.Addr+")")
}
