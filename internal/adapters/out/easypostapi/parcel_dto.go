package easypostapi

import (
	"net/url"
	"strconv"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/parcel"
)

// parcelDTO represents the wire structure of a persisted parcel.
// Dimensions travel as decimal strings in both directions.
type parcelDTO struct {
	ID                string  `json:"id"`
	Length            float64 `json:"length"`
	Width             float64 `json:"width"`
	Height            float64 `json:"height"`
	Weight            float64 `json:"weight"`
	PredefinedPackage string  `json:"predefined_package"`
}

// parcelForm serializes a draft into the service's flat key convention.
// Unset dimensions of predefined packages produce no key.
func parcelForm(draft parcel.Draft) url.Values {
	form := url.Values{}
	setFormValue(form, "parcel[length]", formatDimension(draft.Length))
	setFormValue(form, "parcel[width]", formatDimension(draft.Width))
	setFormValue(form, "parcel[height]", formatDimension(draft.Height))
	setFormValue(form, "parcel[weight]", formatDimension(draft.Weight))
	setFormValue(form, "parcel[predefined_package]", draft.PredefinedPackage)
	return form
}

// formatDimension renders a dimension with two decimals, the service's
// convention for inches and ounces. Zero means unset and yields no value.
func formatDimension(value float64) string {
	if value == 0 {
		return ""
	}
	return strconv.FormatFloat(value, 'f', 2, 64)
}

// toDomain converts the wire structure to a parcel aggregate.
func (dto parcelDTO) toDomain() (*parcel.Parcel, error) {
	id, err := kernel.NewResourceID(dto.ID)
	if err != nil {
		return nil, err
	}

	return parcel.RestoreParcel(id, parcel.Draft{
		Length:            dto.Length,
		Width:             dto.Width,
		Height:            dto.Height,
		Weight:            dto.Weight,
		PredefinedPackage: dto.PredefinedPackage,
	})
}
