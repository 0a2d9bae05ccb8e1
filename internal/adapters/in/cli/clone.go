package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"shipping/internal/core/application/usecases/commands"
)

func newCloneCmd(provider HandlerProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "clone <shipment-id>",
		Short: "Clone a shipment",
		Long:  "Fetch a shipment by its identifier and create a new one from the same addresses, parcel and options. The clone gets its own identifier and freshly quoted rates.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source, err := fetchShipment(cmd.Context(), provider, args[0])
			if err != nil {
				return err
			}

			handler, err := provider.CreateCloneShipmentCommandHandler()
			if err != nil {
				return err
			}

			cloneCmd, err := commands.NewCloneShipmentCommand(source)
			if err != nil {
				return err
			}

			clone, err := handler.Handle(cmd.Context(), cloneCmd)
			if err != nil {
				return fmt.Errorf("cloning shipment %s: %w", source.ID(), err)
			}

			fmt.Fprint(cmd.OutOrStdout(), renderShipment(clone))
			return nil
		},
	}
}
