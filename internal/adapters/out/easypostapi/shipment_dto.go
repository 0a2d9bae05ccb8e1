package easypostapi

import (
	"net/url"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/label"
	"shipping/internal/core/domain/model/scanform"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
)

// shipmentDTO represents the wire structure of a persisted shipment.
// Creation responses are read for their identifier and quoted rates only;
// retrieval maps the full document back into the aggregate.
type shipmentDTO struct {
	ID          string            `json:"id"`
	FromAddress *addressDTO       `json:"from_address"`
	ToAddress   *addressDTO       `json:"to_address"`
	Parcel      *parcelDTO        `json:"parcel"`
	CustomsInfo *customsInfoDTO   `json:"customs_info"`
	ScanForm    *scanFormDTO      `json:"scan_form"`
	Options     map[string]string `json:"options"`
	Rates       []rateDTO         `json:"rates"`
}

// rateDTO represents one quoted rate. The price travels as a decimal string
// and is parsed exactly, never through floating point.
type rateDTO struct {
	ID      string `json:"id"`
	Carrier string `json:"carrier"`
	Service string `json:"service"`
	Rate    string `json:"rate"`
}

// scanFormDTO represents the scan form embedded in a shipment document.
type scanFormDTO struct {
	ID            string   `json:"id"`
	FormURL       string   `json:"form_url"`
	FormFileType  string   `json:"form_file_type"`
	TrackingCodes []string `json:"tracking_codes"`
}

// buyResponseDTO represents the document a purchase answers with. The
// tracking code sits at the top level; the label document and the rate the
// purchase was made at are embedded objects.
type buyResponseDTO struct {
	TrackingCode string          `json:"tracking_code"`
	PostageLabel postageLabelDTO `json:"postage_label"`
	SelectedRate rateDTO         `json:"selected_rate"`
}

type postageLabelDTO struct {
	ID            string `json:"id"`
	LabelURL      string `json:"label_url"`
	LabelFileType string `json:"label_file_type"`
}

// shipmentForm serializes a draft into the service's flat key convention:
// shipment[<field>][id] for each defined resource reference and
// shipment[options][<key>] for each option. Absent optional references
// produce no key at all. Rates and scan forms are response state and never
// travel in requests.
func shipmentForm(draft shipment.Draft) url.Values {
	form := url.Values{}
	form.Set("shipment[from_address][id]", draft.From.ID().String())
	form.Set("shipment[to_address][id]", draft.To.ID().String())
	form.Set("shipment[parcel][id]", draft.Parcel.ID().String())
	if draft.CustomsInfo != nil {
		form.Set("shipment[customs_info][id]", draft.CustomsInfo.ID().String())
	}
	for key, value := range draft.Options {
		form.Set("shipment[options]["+key+"]", value)
	}
	return form
}

// rateForm serializes the rate a purchase pays for, under the rate role.
func rateForm(rate shipment.Rate) url.Values {
	form := url.Values{}
	form.Set("rate[id]", rate.ID().String())
	form.Set("rate[carrier]", rate.Carrier())
	form.Set("rate[service]", rate.Service())
	form.Set("rate[rate]", rate.Price().String())
	return form
}

// toDomainWithDraft restores a shipment from a creation response. The caller
// already holds the draft it submitted, so only the assigned identifier and
// the quoted rates are read off the wire.
func (dto shipmentDTO) toDomainWithDraft(draft shipment.Draft) (*shipment.Shipment, error) {
	id, err := kernel.NewResourceID(dto.ID)
	if err != nil {
		return nil, err
	}

	rates, err := mapRates(dto.Rates, id)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(id, draft, rates)
}

// toDomain restores a shipment from a full retrieval document, rebuilding
// every referenced resource from its embedded representation.
func (dto shipmentDTO) toDomain() (*shipment.Shipment, error) {
	id, err := kernel.NewResourceID(dto.ID)
	if err != nil {
		return nil, err
	}

	draft, err := dto.draftFromWire()
	if err != nil {
		return nil, err
	}

	rates, err := mapRates(dto.Rates, id)
	if err != nil {
		return nil, err
	}

	shp, err := shipment.RestoreShipment(id, draft, rates)
	if err != nil {
		return nil, err
	}

	if dto.ScanForm != nil {
		form, formErr := dto.ScanForm.toDomain()
		if formErr != nil {
			return nil, formErr
		}
		if attachErr := shp.AttachScanForm(form); attachErr != nil {
			return nil, attachErr
		}
	}

	return shp, nil
}

func (dto shipmentDTO) draftFromWire() (shipment.Draft, error) {
	if dto.FromAddress == nil {
		return shipment.Draft{}, errs.NewValueIsRequiredError("from_address")
	}
	if dto.ToAddress == nil {
		return shipment.Draft{}, errs.NewValueIsRequiredError("to_address")
	}
	if dto.Parcel == nil {
		return shipment.Draft{}, errs.NewValueIsRequiredError("parcel")
	}

	from, err := dto.FromAddress.toDomain()
	if err != nil {
		return shipment.Draft{}, err
	}
	to, err := dto.ToAddress.toDomain()
	if err != nil {
		return shipment.Draft{}, err
	}
	prcl, err := dto.Parcel.toDomain()
	if err != nil {
		return shipment.Draft{}, err
	}

	draft := shipment.Draft{
		From:    from,
		To:      to,
		Parcel:  prcl,
		Options: dto.Options,
	}

	if dto.CustomsInfo != nil {
		info, infoErr := dto.CustomsInfo.toDomain()
		if infoErr != nil {
			return shipment.Draft{}, infoErr
		}
		draft.CustomsInfo = info
	}

	return draft, nil
}

// mapRates builds the rate list of a shipment document. Every quoted rate
// belongs to the shipment the document describes, so the owning identifier
// is injected rather than read per element.
func mapRates(dtos []rateDTO, shipmentID kernel.ResourceID) ([]shipment.Rate, error) {
	rates := make([]shipment.Rate, 0, len(dtos))
	for _, dto := range dtos {
		rate, err := dto.toDomain(shipmentID)
		if err != nil {
			return nil, err
		}
		rates = append(rates, rate)
	}
	return rates, nil
}

// toDomain converts a quoted rate to its domain value. The owning shipment
// identifier comes from the caller: creation injects the freshly assigned
// identifier, purchase the identifier the request addressed.
func (dto rateDTO) toDomain(shipmentID kernel.ResourceID) (shipment.Rate, error) {
	id, err := kernel.NewResourceID(dto.ID)
	if err != nil {
		return shipment.Rate{}, err
	}

	price, err := kernel.NewMoneyFromString(dto.Rate)
	if err != nil {
		return shipment.Rate{}, err
	}

	return shipment.NewRate(id, shipmentID, dto.Carrier, dto.Service, price)
}

// toDomain converts the embedded scan form to its domain value.
func (dto scanFormDTO) toDomain() (*scanform.ScanForm, error) {
	id, err := kernel.NewResourceID(dto.ID)
	if err != nil {
		return nil, err
	}

	return scanform.RestoreScanForm(id, dto.FormURL, dto.FormFileType, dto.TrackingCodes)
}

// toDomain builds the purchased label. The label document fields come from
// the embedded postage label, the tracking code from the top level, and the
// rate from the selected rate object.
func (dto buyResponseDTO) toDomain(shipmentID kernel.ResourceID) (*label.Label, error) {
	id, err := kernel.NewResourceID(dto.PostageLabel.ID)
	if err != nil {
		return nil, err
	}

	rate, err := dto.SelectedRate.toDomain(shipmentID)
	if err != nil {
		return nil, err
	}

	return label.RestoreLabel(
		id,
		dto.PostageLabel.LabelURL,
		dto.PostageLabel.LabelFileType,
		dto.TrackingCode,
		rate,
	)
}
