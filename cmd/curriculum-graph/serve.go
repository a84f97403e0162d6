// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/curriculum-graph/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP API",
	Long: `Serve starts the HTTP API:

  POST   /api/analyze       upload a document (multipart field "file")
  GET    /api/files         list stored files, newest first
  GET    /api/files/{id}    stored record with its graph
  DELETE /api/files/{id}    delete a stored record
  POST   /api/multi-graph   combined graph over a JSON array of ids
  GET    /healthz           liveness

The server stops gracefully on SIGINT or SIGTERM.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		rt, err := newRuntime(true)
		if err != nil {
			return err
		}
		defer rt.close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		rt.logger.Info("starting server", "db", rt.cfg.Store.Path, "max_upload_bytes", rt.cfg.Server.MaxUploadBytes)
		return server.New(rt.svc, rt.cfg.Server, rt.logger).ListenAndServe(ctx)
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8080)")
	viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))

	rootCmd.AddCommand(serveCmd)
}
