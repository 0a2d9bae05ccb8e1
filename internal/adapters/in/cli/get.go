package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
)

func newGetCmd(provider HandlerProvider) *cobra.Command {
	return &cobra.Command{
		Use:   "get <shipment-id>",
		Short: "Retrieve a shipment",
		Long:  "Fetch a shipment by its identifier and show its addresses, parcel, options and quoted rates.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			shp, err := fetchShipment(cmd.Context(), provider, args[0])
			if err != nil {
				return err
			}

			fmt.Fprint(cmd.OutOrStdout(), renderShipmentDetails(shp))
			return nil
		},
	}
}

func fetchShipment(ctx context.Context, provider HandlerProvider, rawID string) (*shipment.Shipment, error) {
	id, err := kernel.NewResourceID(rawID)
	if err != nil {
		return nil, err
	}

	handler, err := provider.CreateGetShipmentQueryHandler()
	if err != nil {
		return nil, err
	}

	query, err := queries.NewGetShipmentQuery(id)
	if err != nil {
		return nil, err
	}

	shp, err := handler.Handle(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("fetching shipment %s: %w", rawID, err)
	}
	return shp, nil
}
