package main

import (
	"github.com/spf13/cobra"

	"github.com/eringen/folio"
	"github.com/eringen/folio/views"
)

func newServeCmd(load configLoader) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the web server",
		Example: `  # Serve with folio.yaml in the current directory
  folio serve

  # Override the listen address
  folio serve --addr :8080`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			if addr != "" {
				cfg.Addr = addr
			}
			app := folio.New(cfg, views.New(cfg))
			defer app.Close()
			return app.Run(cmd.Context())
		},
	}
	cmd.Flags().StringVarP(&addr, "addr", "a", "", "Listen address (overrides config)")
	return cmd
}
