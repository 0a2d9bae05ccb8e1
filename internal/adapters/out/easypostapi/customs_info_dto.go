package easypostapi

import (
	"fmt"
	"net/url"
	"strconv"

	"shipping/internal/core/domain/model/customs"
	"shipping/internal/core/domain/model/kernel"
)

// customsInfoDTO represents the wire structure of a persisted customs
// declaration. Item values travel as decimal strings.
type customsInfoDTO struct {
	ID                  string           `json:"id"`
	CustomsCertify      bool             `json:"customs_certify"`
	CustomsSigner       string           `json:"customs_signer"`
	ContentsType        string           `json:"contents_type"`
	ContentsExplanation string           `json:"contents_explanation"`
	RestrictionType     string           `json:"restriction_type"`
	EELPFC              string           `json:"eel_pfc"`
	CustomsItems        []customsItemDTO `json:"customs_items"`
}

type customsItemDTO struct {
	Description    string  `json:"description"`
	Quantity       int     `json:"quantity"`
	Value          string  `json:"value"`
	Weight         float64 `json:"weight"`
	HSTariffNumber string  `json:"hs_tariff_number"`
	OriginCountry  string  `json:"origin_country"`
}

// customsInfoForm serializes a draft into the service's flat key convention.
// Declared items use the indexed extension of the bracket convention:
// customs_info[customs_items][<i>][<field>].
func customsInfoForm(draft customs.Draft) url.Values {
	form := url.Values{}
	if draft.CustomsCertify {
		form.Set("customs_info[customs_certify]", strconv.FormatBool(draft.CustomsCertify))
	}
	setFormValue(form, "customs_info[customs_signer]", draft.CustomsSigner)
	setFormValue(form, "customs_info[contents_type]", draft.ContentsType)
	setFormValue(form, "customs_info[contents_explanation]", draft.ContentsExplanation)
	setFormValue(form, "customs_info[restriction_type]", draft.RestrictionType)
	setFormValue(form, "customs_info[eel_pfc]", draft.EELPFC)

	for i, item := range draft.Items {
		prefix := fmt.Sprintf("customs_info[customs_items][%d]", i)
		setFormValue(form, prefix+"[description]", item.Description)
		form.Set(prefix+"[quantity]", strconv.Itoa(item.Quantity))
		form.Set(prefix+"[value]", item.Value.String())
		setFormValue(form, prefix+"[weight]", formatDimension(item.Weight))
		setFormValue(form, prefix+"[hs_tariff_number]", item.HSTariffNumber)
		setFormValue(form, prefix+"[origin_country]", item.OriginCountry)
	}

	return form
}

// toDomain converts the wire structure to a customs info aggregate.
func (dto customsInfoDTO) toDomain() (*customs.Info, error) {
	id, err := kernel.NewResourceID(dto.ID)
	if err != nil {
		return nil, err
	}

	items := make([]customs.Item, 0, len(dto.CustomsItems))
	for _, itemDTO := range dto.CustomsItems {
		value, valueErr := kernel.NewMoneyFromString(itemDTO.Value)
		if valueErr != nil {
			return nil, valueErr
		}

		items = append(items, customs.Item{
			Description:    itemDTO.Description,
			Quantity:       itemDTO.Quantity,
			Value:          value,
			Weight:         itemDTO.Weight,
			HSTariffNumber: itemDTO.HSTariffNumber,
			OriginCountry:  itemDTO.OriginCountry,
		})
	}

	return customs.RestoreCustomsInfo(id, customs.Draft{
		CustomsCertify:      dto.CustomsCertify,
		CustomsSigner:       dto.CustomsSigner,
		ContentsType:        dto.ContentsType,
		ContentsExplanation: dto.ContentsExplanation,
		RestrictionType:     dto.RestrictionType,
		EELPFC:              dto.EELPFC,
		Items:               items,
	})
}
