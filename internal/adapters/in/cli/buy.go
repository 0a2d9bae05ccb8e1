package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/services"
)

func newBuyCmd(provider HandlerProvider) *cobra.Command {
	flags := &shipmentFlags{}
	var (
		service string
		lowest  bool
	)

	cmd := &cobra.Command{
		Use:   "buy",
		Short: "Buy a shipping label",
		Long:  "Create a shipment from the given addresses and parcel, pick one of its quoted rates and purchase the postage label.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			selection, err := selectionFromFlags(lowest, service)
			if err != nil {
				return err
			}

			shp, err := buildShipment(cmd.Context(), provider, flags)
			if err != nil {
				return err
			}

			handler, err := provider.CreateBuyShipmentCommandHandler()
			if err != nil {
				return err
			}

			buyCmd, err := commands.NewBuyShipmentCommand(shp, selection)
			if err != nil {
				return err
			}

			lbl, err := handler.Handle(cmd.Context(), buyCmd)
			if err != nil {
				return fmt.Errorf("buying shipment %s: %w", shp.ID(), err)
			}

			fmt.Fprint(cmd.OutOrStdout(), renderLabel(lbl))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&service, "service", "", `Carrier service to buy (e.g. "Priority")`)
	cmd.Flags().BoolVar(&lowest, "lowest", false, "Buy the cheapest quoted rate")
	return cmd
}

func selectionFromFlags(lowest bool, service string) (services.RateSelection, error) {
	switch {
	case lowest && service != "":
		return services.RateSelection{}, errors.New("--lowest and --service are mutually exclusive")
	case lowest:
		return services.LowestRate(), nil
	case service != "":
		return services.ServiceNamed(service), nil
	default:
		return services.RateSelection{}, errors.New("one of --lowest or --service is required")
	}
}
