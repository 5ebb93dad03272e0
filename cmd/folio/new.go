package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/folio/scaffold"
)

func newNewCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "new <name>",
		Short:   "Create a new site directory",
		Args:    cobra.ExactArgs(1),
		Example: `  folio new my-site`,
		RunE: func(cmd *cobra.Command, args []string) error {
			data := scaffold.NewData(args[0])
			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "Creating new folio site: %s\n\n", data.ProjectName)
			if err := scaffold.Create(data.ProjectName, data, out); err != nil {
				return err
			}

			fmt.Fprintln(out)
			fmt.Fprintln(out, "Done! Next steps:")
			fmt.Fprintln(out)
			fmt.Fprintf(out, "  cd %s\n", data.ProjectName)
			fmt.Fprintln(out, "  cp .env.example .env   # set FOLIO_ADMIN_PASSWORD and FOLIO_SESSION_SECRET")
			fmt.Fprintln(out, "  folio serve")
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Edit content/*.yaml and content/pages/*.md, put images and htmx.min.js in public/.")
			return nil
		},
	}
}
