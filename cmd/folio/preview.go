package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/folio"
	"github.com/eringen/folio/lightbox"
	"github.com/eringen/folio/preview"
)

func newPreviewCmd(load configLoader) *cobra.Command {
	return &cobra.Command{
		Use:       "preview [gallery|bookshelf]",
		Short:     "Browse the gallery or bookshelf in the terminal",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"gallery", "bookshelf"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := load()
			if err != nil {
				return err
			}
			content, err := folio.LoadContent(cfg.ContentDir)
			if err != nil {
				return err
			}
			which := "gallery"
			if len(args) == 1 {
				which = args[0]
			}
			var title string
			var items []lightbox.Item
			switch which {
			case "bookshelf":
				title, items = "Bookshelf", content.BookItems()
			default:
				title, items = "Gallery", content.GalleryItems()
			}
			if len(items) == 0 {
				return fmt.Errorf("no %s items in %s", which, cfg.ContentDir)
			}
			return preview.Run(cmd.Context(), title, items)
		},
	}
}
