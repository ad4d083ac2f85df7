// Package freightdeskcmder
package freightdeskcmder

import (
	"github.com/spf13/cobra"

	seedcmder "github.com/haulflow/freightdesk/cmd/freightdesk/seed"
	servecmder "github.com/haulflow/freightdesk/cmd/freightdesk/serve"
	versioncmder "github.com/haulflow/freightdesk/cmd/freightdesk/version"
)

const freightdeskLongDesc string = `Freightdesk is the customer-support and freight-quoting backend.

Run services using:
  freightdesk serve    Run the chat API server
  freightdesk seed     Seed knowledge-base documents`

const freightdeskShortDesc string = "Freightdesk - freight quoting and support chat"

func NewFreightdeskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "freightdesk",
		Short: freightdeskShortDesc,
		Long:  freightdeskLongDesc,
	}

	// Global flags
	cmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().String("config-dir", "", "Directory containing config.toml")

	// Add subcommands
	cmd.AddCommand(servecmder.NewServeCmd())
	cmd.AddCommand(seedcmder.NewSeedCmd())
	cmd.AddCommand(versioncmder.NewVersionCmd())

	return cmd
}
