package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-paramform/pkg/openapi"
	"github.com/goliatone/go-paramform/pkg/schemafile"
)

func newSchemasCommand() *cobra.Command {
	var (
		dir      string
		document string
	)
	cmd := &cobra.Command{
		Use:   "schemas",
		Short: "List schema documents in a directory or components of an OpenAPI document",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var names []string
			if document != "" {
				src, err := openapi.ParseSource(document)
				if err != nil {
					return err
				}
				adapter := openapi.NewAdapter(openapi.NewLoader(openapi.WithHTTPFallback(0)), nil)
				names, err = adapter.Components(cmd.Context(), src)
				if err != nil {
					return err
				}
			} else {
				store, err := schemafile.LoadFS(os.DirFS(dir))
				if err != nil {
					return err
				}
				names = store.Names()
			}
			for _, name := range names {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "directory scanned for schema files")
	cmd.Flags().StringVar(&document, "openapi", "", "OpenAPI document path or URL")
	return cmd
}
