package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/cristianoliveira/jobdeck/cmd"
	"github.com/cristianoliveira/jobdeck/internal/logging"
	"github.com/cristianoliveira/jobdeck/internal/server"
	"github.com/spf13/cobra"
)

// NewServeCmd creates the serve command with explicit dependencies.
func NewServeCmd(open storeOpener) *cobra.Command {
	if open == nil {
		panic("NewServeCmd: store opener cannot be nil")
	}

	var addr string

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve collections over HTTP",
		Long: `Serve collections over a JSON HTTP API until interrupted.

USAGE:
    jobdeck serve [--addr <host:port>]

ENDPOINTS:
    GET  /health
    GET  /api/stats
    GET  /api/{kind}?q=&filter=field:value&sort=&page=&page_size=
    GET  /api/{kind}/{id}
    POST /api/{kind}/{id}/status   {"status": "shortlisted"}`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := server.ConfigFromGlobal()
			if addr != "" {
				cfg.Addr = addr
			}

			store, err := open()
			if err != nil {
				return err
			}
			defer store.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			messages.Info(fmt.Sprintf("Serving on %s (Ctrl+C to stop)", cfg.Addr))
			return server.New(store, cfg, logging.GetGlobal()).Run(ctx)
		},
	}

	serveCmd.Flags().StringVar(&addr, "addr", "", "Listen address (default: http_addr setting)")

	return serveCmd
}

var serveCmd = NewServeCmd(openStore)

func init() {
	cmd.RootCmd.AddCommand(serveCmd)
}
