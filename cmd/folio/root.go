package main

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/eringen/folio"
)

const defaultConfigPath = "folio.yaml"

func newRootCmd() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "folio",
		Short: "A personal website engine with a blog, gallery and bookshelf",
		Long: `folio serves a personal website: a blog backed by SQLite, a photo
gallery, a bookshelf and prose pages loaded from a content directory.

Configuration is read from folio.yaml and FOLIO_* environment variables.
A .env file in the working directory is loaded first if present.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			_ = godotenv.Load()
		},
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", defaultConfigPath, "Path to the YAML config file")

	load := func() (folio.SiteConfig, error) {
		return folio.LoadConfig(configPath)
	}
	cmd.AddCommand(
		newServeCmd(load),
		newPreviewCmd(load),
		newNewCmd(),
	)
	return cmd
}

type configLoader func() (folio.SiteConfig, error)
