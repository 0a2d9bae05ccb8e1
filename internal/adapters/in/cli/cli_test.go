package cli_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shipping/internal/adapters/in/cli"
	"shipping/internal/core/application/usecases/commands"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/label"
	"shipping/internal/core/domain/model/parcel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/core/domain/services"
	"shipping/internal/pkg/errs"
)

// stubQuote seeds one rate the stub backend quotes per created shipment.
type stubQuote struct {
	carrier string
	service string
	cents   int64
}

type stubAddressGateway struct{ createCalls int }

func (g *stubAddressGateway) Create(_ context.Context, draft address.Draft) (*address.Address, error) {
	g.createCalls++
	id, err := kernel.NewResourceID(fmt.Sprintf("adr_%d", g.createCalls))
	if err != nil {
		return nil, err
	}
	return address.RestoreAddress(id, draft)
}

type stubParcelGateway struct{ createCalls int }

func (g *stubParcelGateway) Create(_ context.Context, draft parcel.Draft) (*parcel.Parcel, error) {
	g.createCalls++
	id, err := kernel.NewResourceID(fmt.Sprintf("prcl_%d", g.createCalls))
	if err != nil {
		return nil, err
	}
	return parcel.RestoreParcel(id, draft)
}

type stubShipmentGateway struct {
	createCalls int
	quotes      []stubQuote
	stored      *shipment.Shipment
	bought      *shipment.Rate
}

func (g *stubShipmentGateway) Create(_ context.Context, draft shipment.Draft) (*shipment.Shipment, error) {
	g.createCalls++
	id, err := kernel.NewResourceID(fmt.Sprintf("shp_%d", g.createCalls))
	if err != nil {
		return nil, err
	}

	rates := make([]shipment.Rate, 0, len(g.quotes))
	for i, quote := range g.quotes {
		rateID, rateErr := kernel.NewResourceID(fmt.Sprintf("rate_%d_%d", g.createCalls, i+1))
		if rateErr != nil {
			return nil, rateErr
		}
		price, priceErr := kernel.NewMoneyFromCents(quote.cents)
		if priceErr != nil {
			return nil, priceErr
		}
		rate, rateErr := shipment.NewRate(rateID, id, quote.carrier, quote.service, price)
		if rateErr != nil {
			return nil, rateErr
		}
		rates = append(rates, rate)
	}

	return shipment.RestoreShipment(id, draft, rates)
}

func (g *stubShipmentGateway) Buy(_ context.Context, _ kernel.ResourceID, rate shipment.Rate) (*label.Label, error) {
	g.bought = &rate

	id, err := kernel.NewResourceID("pl_1")
	if err != nil {
		return nil, err
	}
	return label.RestoreLabel(id, "https://files.test/labels/pl_1.png", "image/png", "9400TRACK", rate)
}

func (g *stubShipmentGateway) Get(_ context.Context, shipmentID kernel.ResourceID) (*shipment.Shipment, error) {
	if g.stored == nil || !g.stored.ID().IsEqual(shipmentID) {
		return nil, errs.NewObjectNotFoundError("shipment id", shipmentID.String())
	}
	return g.stored, nil
}

// testProvider wires real handlers over the stub gateways. A non-nil err
// makes every factory fail, standing in for unusable service configuration.
type testProvider struct {
	addresses *stubAddressGateway
	parcels   *stubParcelGateway
	shipments *stubShipmentGateway
	err       error
}

func newTestProvider(quotes ...stubQuote) *testProvider {
	return &testProvider{
		addresses: &stubAddressGateway{},
		parcels:   &stubParcelGateway{},
		shipments: &stubShipmentGateway{quotes: quotes},
	}
}

func (p *testProvider) CreateCreateAddressCommandHandler() (commands.CreateAddressCommandHandler, error) {
	if p.err != nil {
		return commands.CreateAddressCommandHandler{}, p.err
	}
	return commands.NewCreateAddressCommandHandler(p.addresses), nil
}

func (p *testProvider) CreateCreateParcelCommandHandler() (commands.CreateParcelCommandHandler, error) {
	if p.err != nil {
		return commands.CreateParcelCommandHandler{}, p.err
	}
	return commands.NewCreateParcelCommandHandler(p.parcels), nil
}

func (p *testProvider) CreateCreateShipmentCommandHandler() (commands.CreateShipmentCommandHandler, error) {
	if p.err != nil {
		return commands.CreateShipmentCommandHandler{}, p.err
	}
	return commands.NewCreateShipmentCommandHandler(p.shipments), nil
}

func (p *testProvider) CreateBuyShipmentCommandHandler() (commands.BuyShipmentCommandHandler, error) {
	if p.err != nil {
		return commands.BuyShipmentCommandHandler{}, p.err
	}
	return commands.NewBuyShipmentCommandHandler(p.shipments), nil
}

func (p *testProvider) CreateCloneShipmentCommandHandler() (commands.CloneShipmentCommandHandler, error) {
	if p.err != nil {
		return commands.CloneShipmentCommandHandler{}, p.err
	}
	return commands.NewCloneShipmentCommandHandler(p.shipments), nil
}

func (p *testProvider) CreateGetShipmentQueryHandler() (queries.GetShipmentQueryHandler, error) {
	if p.err != nil {
		return queries.GetShipmentQueryHandler{}, p.err
	}
	return queries.NewGetShipmentQueryHandler(p.shipments), nil
}

func runCommand(t *testing.T, provider cli.HandlerProvider, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCmd(provider)
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return buf.String(), err
}

// shipmentArgs prefixes the named subcommand to a complete set of shipment
// flags.
func shipmentArgs(command string, extra ...string) []string {
	args := []string{
		command,
		"--from-name", "Dr. Steve Brule",
		"--from-street1", "179 N Harbor Dr",
		"--from-city", "Redondo Beach",
		"--from-state", "CA",
		"--from-zip", "90277",
		"--to-street1", "417 Montgomery St",
		"--to-city", "San Francisco",
		"--to-state", "CA",
		"--to-zip", "94104",
		"--length", "20.2",
		"--width", "10.9",
		"--height", "5",
		"--weight", "65.9",
	}
	return append(args, extra...)
}

// storedShipment creates a shipment through the stub gateway and registers it
// so the get and clone commands can fetch it by id.
func storedShipment(t *testing.T, provider *testProvider) *shipment.Shipment {
	t.Helper()

	draft := shipment.Draft{
		From:    testAddress(t, "179 N Harbor Dr", "Redondo Beach", "90277"),
		To:      testAddress(t, "417 Montgomery St", "San Francisco", "94104"),
		Parcel:  testParcel(t),
		Options: map[string]string{"label_format": "PNG"},
	}

	shp, err := provider.shipments.Create(t.Context(), draft)
	require.NoError(t, err)

	provider.shipments.stored = shp
	return shp
}

func testAddress(t *testing.T, street1, city, zip string) *address.Address {
	t.Helper()

	id, err := kernel.NewResourceID("adr_" + zip)
	require.NoError(t, err)

	addr, err := address.RestoreAddress(id, address.Draft{Street1: street1, City: city, Zip: zip})
	require.NoError(t, err)
	return addr
}

func testParcel(t *testing.T) *parcel.Parcel {
	t.Helper()

	id, err := kernel.NewResourceID("prcl_fixture")
	require.NoError(t, err)

	prcl, err := parcel.RestoreParcel(id, parcel.Draft{Length: 20.2, Width: 10.9, Height: 5, Weight: 65.9})
	require.NoError(t, err)
	return prcl
}

func TestRatesCommand(t *testing.T) {
	provider := newTestProvider(
		stubQuote{carrier: "USPS", service: "Priority", cents: 758},
		stubQuote{carrier: "USPS", service: "Express", cents: 3125},
	)

	out, err := runCommand(t, provider, shipmentArgs("rates")...)
	require.NoError(t, err)

	assert.Contains(t, out, "shp_1")
	assert.Contains(t, out, "Priority")
	assert.Contains(t, out, "7.58")
	assert.Contains(t, out, "Express")
	assert.Contains(t, out, "31.25")

	assert.Equal(t, 2, provider.addresses.createCalls, "one address per side")
	assert.Equal(t, 1, provider.parcels.createCalls)
	assert.Equal(t, 1, provider.shipments.createCalls)
}

func TestRatesCommand_MissingRecipient(t *testing.T) {
	provider := newTestProvider()

	_, err := runCommand(t, provider, "rates",
		"--from-street1", "179 N Harbor Dr",
		"--from-city", "Redondo Beach",
		"--from-zip", "90277",
		"--weight", "65.9",
		"--length", "20.2",
		"--width", "10.9",
		"--height", "5",
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	assert.Contains(t, err.Error(), "recipient address")
	assert.Equal(t, 0, provider.shipments.createCalls, "no shipment call without valid resources")
}

func TestBuyCommand_LowestRate(t *testing.T) {
	provider := newTestProvider(
		stubQuote{carrier: "USPS", service: "Express", cents: 3125},
		stubQuote{carrier: "USPS", service: "Priority", cents: 758},
	)

	out, err := runCommand(t, provider, shipmentArgs("buy", "--lowest")...)
	require.NoError(t, err)

	require.NotNil(t, provider.shipments.bought)
	assert.Equal(t, "Priority", provider.shipments.bought.Service())

	assert.Contains(t, out, "Label purchased")
	assert.Contains(t, out, "9400TRACK")
	assert.Contains(t, out, "https://files.test/labels/pl_1.png")
	assert.Contains(t, out, "EASYPOST_LABEL_pl_1.png")
}

func TestBuyCommand_ServiceSelection(t *testing.T) {
	provider := newTestProvider(
		stubQuote{carrier: "USPS", service: "Express", cents: 3125},
		stubQuote{carrier: "USPS", service: "Priority", cents: 758},
	)

	_, err := runCommand(t, provider, shipmentArgs("buy", "--service", "Express")...)
	require.NoError(t, err)

	require.NotNil(t, provider.shipments.bought)
	assert.Equal(t, "Express", provider.shipments.bought.Service())
}

func TestBuyCommand_UnknownService(t *testing.T) {
	provider := newTestProvider(stubQuote{carrier: "USPS", service: "Priority", cents: 758})

	_, err := runCommand(t, provider, shipmentArgs("buy", "--service", "Overnight")...)

	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNoMatchingRate)
	assert.Contains(t, err.Error(), "Priority 7.58")
	assert.Nil(t, provider.shipments.bought, "an unmatched selection must not purchase anything")
}

func TestBuyCommand_SelectionFlags(t *testing.T) {
	t.Run("both directives conflict", func(t *testing.T) {
		provider := newTestProvider()

		_, err := runCommand(t, provider, "buy", "--lowest", "--service", "Priority")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "mutually exclusive")
		assert.Equal(t, 0, provider.addresses.createCalls, "flag errors fail before any service call")
	})

	t.Run("no directive", func(t *testing.T) {
		provider := newTestProvider()

		_, err := runCommand(t, provider, "buy")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "--lowest or --service")
		assert.Equal(t, 0, provider.addresses.createCalls)
	})
}

func TestGetCommand(t *testing.T) {
	provider := newTestProvider(stubQuote{carrier: "USPS", service: "Priority", cents: 758})
	stored := storedShipment(t, provider)

	out, err := runCommand(t, provider, "get", stored.ID().String())
	require.NoError(t, err)

	assert.Contains(t, out, stored.ID().String())
	assert.Contains(t, out, "179 N Harbor Dr")
	assert.Contains(t, out, "417 Montgomery St")
	assert.Contains(t, out, "20.2 x 10.9 x 5 in, 65.9 oz")
	assert.Contains(t, out, "label_format=PNG")
	assert.Contains(t, out, "Priority")
	assert.Contains(t, out, "7.58")
}

func TestGetCommand_UnknownShipment(t *testing.T) {
	provider := newTestProvider()

	_, err := runCommand(t, provider, "get", "shp_missing")

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCloneCommand(t *testing.T) {
	provider := newTestProvider(stubQuote{carrier: "USPS", service: "Priority", cents: 758})
	source := storedShipment(t, provider)

	out, err := runCommand(t, provider, "clone", source.ID().String())
	require.NoError(t, err)

	assert.Contains(t, out, "shp_2", "the clone is a new resource with its own id")
	assert.Equal(t, 2, provider.shipments.createCalls, "cloning issues exactly one additional create")
}

func TestVersionCommand(t *testing.T) {
	out, err := runCommand(t, newTestProvider(), "version")

	require.NoError(t, err)
	assert.Contains(t, out, "shipping")
}

func TestCommands_HandlerConstructionFailure(t *testing.T) {
	provider := newTestProvider()
	provider.err = errors.New("EASYPOST_API_KEY is not set")

	_, err := runCommand(t, provider, shipmentArgs("rates")...)
	require.Error(t, err)
	assert.ErrorContains(t, err, "EASYPOST_API_KEY")

	out, err := runCommand(t, provider, "version")
	require.NoError(t, err, "version works without handlers")
	assert.Contains(t, out, "shipping")
}
