package commands_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/customs"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/parcel"
	"shipping/internal/core/domain/model/shipment"
)

func testResourceID(t *testing.T, raw string) kernel.ResourceID {
	t.Helper()

	id, err := kernel.NewResourceID(raw)
	require.NoError(t, err)
	return id
}

func testMoney(t *testing.T, raw string) kernel.Money {
	t.Helper()

	money, err := kernel.NewMoneyFromString(raw)
	require.NoError(t, err)
	return money
}

func testAddressDraft() address.Draft {
	return address.Draft{
		Name:    "Dr. Steve Brule",
		Street1: "179 N Harbor Dr",
		City:    "Redondo Beach",
		State:   "CA",
		Zip:     "90277",
		Country: "US",
	}
}

func testAddress(t *testing.T, rawID string) *address.Address {
	t.Helper()

	addr, err := address.RestoreAddress(testResourceID(t, rawID), testAddressDraft())
	require.NoError(t, err)
	return addr
}

func testParcelDraft() parcel.Draft {
	return parcel.Draft{
		Length: 20.2,
		Width:  10.9,
		Height: 5,
		Weight: 65.9,
	}
}

func testParcel(t *testing.T, rawID string) *parcel.Parcel {
	t.Helper()

	prcl, err := parcel.RestoreParcel(testResourceID(t, rawID), testParcelDraft())
	require.NoError(t, err)
	return prcl
}

func testCustomsDraft(t *testing.T) customs.Draft {
	t.Helper()

	return customs.Draft{
		CustomsCertify: true,
		CustomsSigner:  "Steve Brule",
		ContentsType:   "merchandise",
		EELPFC:         "NOEEI 30.37(a)",
		Items: []customs.Item{
			{
				Description:   "Sweet shirts",
				Quantity:      2,
				Value:         testMoney(t, "23.00"),
				Weight:        11,
				OriginCountry: "US",
			},
		},
	}
}

func testShipmentDraft(t *testing.T) shipment.Draft {
	t.Helper()

	return shipment.Draft{
		From:   testAddress(t, "adr_from"),
		To:     testAddress(t, "adr_to"),
		Parcel: testParcel(t, "prcl_1"),
	}
}

func testRate(t *testing.T, rawID, rawShipmentID, service, price string) shipment.Rate {
	t.Helper()

	rate, err := shipment.NewRate(
		testResourceID(t, rawID),
		testResourceID(t, rawShipmentID),
		"USPS",
		service,
		testMoney(t, price),
	)
	require.NoError(t, err)
	return rate
}

func testShipment(t *testing.T, rawID string, rates ...shipment.Rate) *shipment.Shipment {
	t.Helper()

	shp, err := shipment.RestoreShipment(testResourceID(t, rawID), testShipmentDraft(t), rates)
	require.NoError(t, err)
	return shp
}
