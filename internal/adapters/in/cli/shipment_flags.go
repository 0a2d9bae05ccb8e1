package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/parcel"
	"shipping/internal/core/domain/model/shipment"
)

// shipmentFlags collects the flags describing a shipment to create: the two
// addresses, the parcel and free-form carrier options. Validation stays with
// the domain drafts, so missing fields surface as the same errors library
// callers get.
type shipmentFlags struct {
	fromName    string
	fromCompany string
	fromStreet1 string
	fromStreet2 string
	fromCity    string
	fromState   string
	fromZip     string
	fromCountry string
	fromPhone   string

	toName    string
	toCompany string
	toStreet1 string
	toStreet2 string
	toCity    string
	toState   string
	toZip     string
	toCountry string
	toPhone   string

	length            float64
	width             float64
	height            float64
	weight            float64
	predefinedPackage string

	options map[string]string
}

func (f *shipmentFlags) register(cmd *cobra.Command) {
	flags := cmd.Flags()

	flags.StringVar(&f.fromName, "from-name", "", "Sender name")
	flags.StringVar(&f.fromCompany, "from-company", "", "Sender company")
	flags.StringVar(&f.fromStreet1, "from-street1", "", "Sender street line 1")
	flags.StringVar(&f.fromStreet2, "from-street2", "", "Sender street line 2")
	flags.StringVar(&f.fromCity, "from-city", "", "Sender city")
	flags.StringVar(&f.fromState, "from-state", "", "Sender state")
	flags.StringVar(&f.fromZip, "from-zip", "", "Sender postal code")
	flags.StringVar(&f.fromCountry, "from-country", "", "Sender country code")
	flags.StringVar(&f.fromPhone, "from-phone", "", "Sender phone number")

	flags.StringVar(&f.toName, "to-name", "", "Recipient name")
	flags.StringVar(&f.toCompany, "to-company", "", "Recipient company")
	flags.StringVar(&f.toStreet1, "to-street1", "", "Recipient street line 1")
	flags.StringVar(&f.toStreet2, "to-street2", "", "Recipient street line 2")
	flags.StringVar(&f.toCity, "to-city", "", "Recipient city")
	flags.StringVar(&f.toState, "to-state", "", "Recipient state")
	flags.StringVar(&f.toZip, "to-zip", "", "Recipient postal code")
	flags.StringVar(&f.toCountry, "to-country", "", "Recipient country code")
	flags.StringVar(&f.toPhone, "to-phone", "", "Recipient phone number")

	flags.Float64Var(&f.length, "length", 0, "Parcel length in inches")
	flags.Float64Var(&f.width, "width", 0, "Parcel width in inches")
	flags.Float64Var(&f.height, "height", 0, "Parcel height in inches")
	flags.Float64Var(&f.weight, "weight", 0, "Parcel weight in ounces")
	flags.StringVar(&f.predefinedPackage, "predefined-package", "", `Carrier package type (e.g. "FlatRateEnvelope")`)

	flags.StringToStringVar(&f.options, "option", nil, "Carrier option as key=value (repeatable)")
}

func (f *shipmentFlags) fromDraft() address.Draft {
	return address.Draft{
		Name:    f.fromName,
		Company: f.fromCompany,
		Street1: f.fromStreet1,
		Street2: f.fromStreet2,
		City:    f.fromCity,
		State:   f.fromState,
		Zip:     f.fromZip,
		Country: f.fromCountry,
		Phone:   f.fromPhone,
	}
}

func (f *shipmentFlags) toDraft() address.Draft {
	return address.Draft{
		Name:    f.toName,
		Company: f.toCompany,
		Street1: f.toStreet1,
		Street2: f.toStreet2,
		City:    f.toCity,
		State:   f.toState,
		Zip:     f.toZip,
		Country: f.toCountry,
		Phone:   f.toPhone,
	}
}

func (f *shipmentFlags) parcelDraft() parcel.Draft {
	return parcel.Draft{
		Length:            f.length,
		Width:             f.width,
		Height:            f.height,
		Weight:            f.weight,
		PredefinedPackage: f.predefinedPackage,
	}
}

// buildShipment persists the flag-described resources and creates the
// shipment referencing them. Every step is a separate service round trip, the
// same pipeline library callers run.
func buildShipment(ctx context.Context, provider HandlerProvider, flags *shipmentFlags) (*shipment.Shipment, error) {
	from, err := createAddress(ctx, provider, flags.fromDraft())
	if err != nil {
		return nil, fmt.Errorf("sender address: %w", err)
	}

	to, err := createAddress(ctx, provider, flags.toDraft())
	if err != nil {
		return nil, fmt.Errorf("recipient address: %w", err)
	}

	prcl, err := createParcel(ctx, provider, flags.parcelDraft())
	if err != nil {
		return nil, fmt.Errorf("parcel: %w", err)
	}

	handler, err := provider.CreateCreateShipmentCommandHandler()
	if err != nil {
		return nil, err
	}

	createCmd, err := commands.NewCreateShipmentCommand(shipment.Draft{
		From:    from,
		To:      to,
		Parcel:  prcl,
		Options: flags.options,
	})
	if err != nil {
		return nil, err
	}

	shp, err := handler.Handle(ctx, createCmd)
	if err != nil {
		return nil, fmt.Errorf("creating shipment: %w", err)
	}
	return shp, nil
}

func createAddress(ctx context.Context, provider HandlerProvider, draft address.Draft) (*address.Address, error) {
	handler, err := provider.CreateCreateAddressCommandHandler()
	if err != nil {
		return nil, err
	}

	createCmd, err := commands.NewCreateAddressCommand(draft)
	if err != nil {
		return nil, err
	}

	return handler.Handle(ctx, createCmd)
}

func createParcel(ctx context.Context, provider HandlerProvider, draft parcel.Draft) (*parcel.Parcel, error) {
	handler, err := provider.CreateCreateParcelCommandHandler()
	if err != nil {
		return nil, err
	}

	createCmd, err := commands.NewCreateParcelCommand(draft)
	if err != nil {
		return nil, err
	}

	return handler.Handle(ctx, createCmd)
}
