package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newRatesCmd(provider HandlerProvider) *cobra.Command {
	flags := &shipmentFlags{}

	cmd := &cobra.Command{
		Use:   "rates",
		Short: "Quote rates for a shipment",
		Long:  "Create a shipment from the given addresses and parcel and list the rates the carriers quoted for it.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			shp, err := buildShipment(cmd.Context(), provider, flags)
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderShipment(shp))
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}
