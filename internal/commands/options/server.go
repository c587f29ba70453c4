package options

import (
	"github.com/spf13/cobra"
)

// ServerOptions override parts of the environment configuration.
type ServerOptions struct {
	Port string
}

func AddServerArgs(cmd *cobra.Command, so *ServerOptions) {
	cmd.Flags().StringVarP(&so.Port, "port", "p", "",
		"Port to listen on. Overrides PORT.")
}
