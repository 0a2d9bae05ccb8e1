package scanform

import (
	"errors"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrScanFormIsNotConstructed is returned when using an improperly initialized ScanForm.
var ErrScanFormIsNotConstructed = errors.New("ScanForm must be created via RestoreScanForm constructor")

// ScanForm represents a carrier manifest produced by the shipping service for a
// batch of shipments. Scan forms are created by the service, never requested
// field-by-field, so the type only restores what a response carried. A scan
// form attached to a shipment is excluded from all request payloads.
type ScanForm struct {
	id            kernel.ResourceID
	formURL       string
	formFileType  string
	trackingCodes []string
	guard         guard.ConstructorGuard
}

// RestoreScanForm reconstructs a ScanForm from the data the shipping service returned.
//
// Parameters:
//   - id: Identifier assigned by the service (must be valid)
//   - formURL: Location of the printable form document (must be non-empty)
//   - formFileType: MIME type of the form document
//   - trackingCodes: Tracking codes of the shipments covered by the form
//
// Returns:
//   - *ScanForm: The restored scan form
//   - error: Validation error if the identifier or URL is invalid
func RestoreScanForm(
	id kernel.ResourceID,
	formURL string,
	formFileType string,
	trackingCodes []string,
) (*ScanForm, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if formURL == "" {
		return nil, errs.NewValueIsRequiredError("form url")
	}

	form := &ScanForm{
		id:           id,
		formURL:      formURL,
		formFileType: formFileType,
		guard:        guard.NewConstructorGuard(),
	}
	form.trackingCodes = make([]string, len(trackingCodes))
	copy(form.trackingCodes, trackingCodes)

	return form, nil
}

// Validate checks if the ScanForm was properly constructed via RestoreScanForm.
func (sf *ScanForm) Validate() error {
	if sf == nil {
		return ErrScanFormIsNotConstructed
	}
	return sf.guard.Validate(ErrScanFormIsNotConstructed)
}

// ID returns the identifier the shipping service assigned to this scan form.
func (sf *ScanForm) ID() kernel.ResourceID {
	return sf.id
}

// FormURL returns the location of the printable form document.
func (sf *ScanForm) FormURL() string {
	return sf.formURL
}

// FormFileType returns the MIME type of the form document.
func (sf *ScanForm) FormFileType() string {
	return sf.formFileType
}

// TrackingCodes returns the tracking codes covered by this form.
// The returned slice is a copy to prevent external modification.
func (sf *ScanForm) TrackingCodes() []string {
	out := make([]string, len(sf.trackingCodes))
	copy(out, sf.trackingCodes)
	return out
}
