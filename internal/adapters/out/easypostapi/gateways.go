package easypostapi

import (
	"shipping/internal/core/ports"
)

// AddressGateway returns the address port backed by this client.
// Handlers narrow the port further to the operations they issue.
func (c *Client) AddressGateway() ports.AddressGateway {
	return NewAddressGateway(c)
}

// ParcelGateway returns the parcel port backed by this client.
func (c *Client) ParcelGateway() ports.ParcelGateway {
	return NewParcelGateway(c)
}

// CustomsInfoGateway returns the customs declaration port backed by this client.
func (c *Client) CustomsInfoGateway() ports.CustomsInfoGateway {
	return NewCustomsInfoGateway(c)
}

// ShipmentGateway returns the shipment lifecycle port backed by this client.
func (c *Client) ShipmentGateway() ports.ShipmentGateway {
	return NewShipmentGateway(c)
}
