package easypostapi

import (
	"net/url"

	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/kernel"
)

// addressDTO represents the wire structure of a persisted address.
type addressDTO struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Street1 string `json:"street1"`
	Street2 string `json:"street2"`
	City    string `json:"city"`
	State   string `json:"state"`
	Zip     string `json:"zip"`
	Country string `json:"country"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

// addressForm serializes a draft into the service's flat key convention.
// Empty optional fields produce no key at all.
func addressForm(draft address.Draft) url.Values {
	form := url.Values{}
	setFormValue(form, "address[name]", draft.Name)
	setFormValue(form, "address[company]", draft.Company)
	setFormValue(form, "address[street1]", draft.Street1)
	setFormValue(form, "address[street2]", draft.Street2)
	setFormValue(form, "address[city]", draft.City)
	setFormValue(form, "address[state]", draft.State)
	setFormValue(form, "address[zip]", draft.Zip)
	setFormValue(form, "address[country]", draft.Country)
	setFormValue(form, "address[phone]", draft.Phone)
	setFormValue(form, "address[email]", draft.Email)
	return form
}

// toDomain converts the wire structure to an address aggregate.
func (dto addressDTO) toDomain() (*address.Address, error) {
	id, err := kernel.NewResourceID(dto.ID)
	if err != nil {
		return nil, err
	}

	return address.RestoreAddress(id, address.Draft{
		Name:    dto.Name,
		Company: dto.Company,
		Street1: dto.Street1,
		Street2: dto.Street2,
		City:    dto.City,
		State:   dto.State,
		Zip:     dto.Zip,
		Country: dto.Country,
		Phone:   dto.Phone,
		Email:   dto.Email,
	})
}
