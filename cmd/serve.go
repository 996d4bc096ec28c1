package cmd

import (
	"fmt"
	"net/http"
	"time"

	"github.com/markmals/workbench-docs/handlers"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the site config and a navigation preview",
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetString("port")

		cfg, err := siteConfig()
		if err != nil {
			return err
		}
		routes, err := contentRoutes(settings.GetString("content"))
		if err != nil {
			return err
		}

		router, err := handlers.SetupRouter(cfg, settings.GetString("origin"), routes)
		if err != nil {
			return errors.Wrap(err, "error setting up router")
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Starting server on port %s\n", port)
		server := &http.Server{
			Addr:              ":" + port,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		}
		log.Logger.Info().Str("addr", server.Addr).Msg("preview server listening")
		return errors.WithStack(server.ListenAndServe())
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("port", "p", "9010", "Port to run the server on")
}
