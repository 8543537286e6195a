package cmd

import (
	"fmt"

	"commitlens/internal/apihandlers"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	serveAddr string // Listen address
	servePort string // Listen port
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run Commitlens as an HTTP API server",
	Long: `Starts an HTTP server exposing the commit message classifier
(classify, classify/batch, types, stats) as a JSON API for CLIs, editors,
and CI checks.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// Retrieve the application instance from context
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err // Error already formatted by GetAppFromContext
		}

		router := apihandlers.NewRouter(appInstance)

		// Flags override the configured listen address.
		addr := appInstance.Config.Server.Addr
		port := appInstance.Config.Server.Port
		if serveAddr != "" {
			addr = serveAddr
		}
		if servePort != "" {
			port = servePort
		}

		listenAddr := fmt.Sprintf("%s:%s", addr, port)
		log.Infof("Starting Commitlens API server on http://%s", listenAddr)

		// router.Run blocks unless an error occurs
		if err := router.Run(listenAddr); err != nil {
			log.Errorf("Failed to run API server: %v", err)
			return fmt.Errorf("failed to run API server: %w", err)
		}

		log.Info("Commitlens API server stopped.")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	// Add flags for server configuration
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to listen on (overrides config)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (overrides config)")
}
