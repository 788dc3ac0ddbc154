package cli

import (
	osignal "os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"signalpro/internal/server"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the signal generation HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := osignal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		a := getApp()
		addr := serveAddr
		if addr == "" {
			addr = a.Config.Server.Addr
		}

		return server.New(a).Start(ctx, addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Listen address (default from config)")
}
