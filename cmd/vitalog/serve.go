// ABOUTME: CLI command for starting the HTTP server.
// ABOUTME: Hosts the records API, the avatar tool endpoint, and the session broker.
package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/harperreed/vitalog/internal/api"
	"github.com/harperreed/vitalog/internal/avatar"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start HTTP server",
	Long: `Start the HTTP server used by the web UI and the talking-avatar agent.

ROUTES:

  GET  /healthz              Liveness probe
  GET  /api/records          The full health document
  POST /api/avatar-tool      Tool invocation callback for the avatar agent
  POST /api/avatar/session   Broker a session token from the avatar service

The avatar session route needs VITALOG_AVATAR_API_KEY (or avatar_api_key in
the config file). Without it, tool dispatch and the records API still work.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

		var avatarClient *avatar.Client
		if cfg.AvatarAPIKey != "" {
			avatarCfg := avatar.DefaultClientConfig()
			avatarCfg.APIKey = cfg.AvatarAPIKey
			avatarCfg.ToolHandlerURL = cfg.ToolHandlerURL()
			if cfg.AvatarAPIURL != "" {
				avatarCfg.BaseURL = cfg.AvatarAPIURL
			}
			avatarClient = avatar.NewClient(avatarCfg, logger)
		} else {
			logger.Warn().Msg("avatar API key not set; /api/avatar/session disabled")
		}

		server := api.NewServer(st, avatarClient, logger)

		addr := serveAddr
		if addr == "" {
			addr = cfg.GetListenAddr()
		}
		return server.Run(addr)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config, :9002)")
	rootCmd.AddCommand(serveCmd)
}
