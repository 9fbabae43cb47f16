package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

var version = "0.1.0"

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

type globalFlags struct {
	config string
	debug  bool
}

func newRootCommand(out, errOut io.Writer) *cobra.Command {
	globals := &globalFlags{}
	root := &cobra.Command{
		Use:   "paramform",
		Short: "Bind parameter schemas to interactive controls",
		Long: `paramform reads a parameter schema from a JSON/YAML schema file or an
OpenAPI component, binds every parameter to a control and shows the controls
in the terminal, as text or as an HTML fragment. The current values are
printed as JSON each time the form fires.`,
		SilenceUsage: true,
	}
	root.SetOut(out)
	root.SetErr(errOut)

	root.PersistentFlags().StringVar(&globals.config, "config", "", "config file (default is $HOME/.config/paramform/paramform.yaml)")
	root.PersistentFlags().BoolVar(&globals.debug, "debug", false, "enable debug logging")

	root.AddCommand(newShowCommand(globals))
	root.AddCommand(newSchemasCommand())
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "paramform version %s\n", version)
		},
	})
	return root
}
