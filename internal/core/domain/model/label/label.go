package label

import (
	"errors"
	"fmt"
	"strings"

	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"
	"shipping/internal/pkg/errs"
	"shipping/internal/pkg/guard"
)

// ErrLabelIsNotConstructed is returned when using an improperly initialized Label.
var ErrLabelIsNotConstructed = errors.New("Label must be created via RestoreLabel constructor")

// Label is the purchased postage document for a shipment. It carries the
// printable document location, the tracking code the carrier assigned and
// the rate the purchase was made at.
type Label struct {
	id           kernel.ResourceID
	url          string
	fileType     string
	trackingCode string
	rate         shipment.Rate
	guard        guard.ConstructorGuard
}

// RestoreLabel reconstructs a Label from the data a purchase returned.
//
// Parameters:
//   - id: Identifier the shipping service assigned to the label
//   - url: Location of the printable label document (must be non-empty)
//   - fileType: MIME type of the document, such as "application/pdf"
//   - trackingCode: Tracking code the carrier assigned, may be empty
//   - rate: Rate the purchase was made at (must be valid)
//
// Returns:
//   - *Label: The restored label
//   - error: Validation error if any field is invalid
func RestoreLabel(
	id kernel.ResourceID,
	url string,
	fileType string,
	trackingCode string,
	rate shipment.Rate,
) (*Label, error) {
	if err := errors.Join(
		id.Validate(),
		validateURL(url),
		validateFileType(fileType),
		rate.Validate(),
	); err != nil {
		return nil, err
	}

	return &Label{
		id:           id,
		url:          url,
		fileType:     fileType,
		trackingCode: trackingCode,
		rate:         rate,
		guard:        guard.NewConstructorGuard(),
	}, nil
}

func validateURL(url string) error {
	if url == "" {
		return errs.NewValueIsRequiredError("label url")
	}
	return nil
}

// validateFileType requires a MIME type shaped value. The part after the
// first '/' becomes the extension of the suggested file name.
func validateFileType(fileType string) error {
	if fileType == "" {
		return errs.NewValueIsRequiredError("label file type")
	}
	if !strings.Contains(fileType, "/") {
		return errs.NewValueIsInvalidErrorWithCause(
			"label file type",
			fmt.Errorf("%q is not a MIME type", fileType),
		)
	}
	return nil
}

// Validate checks if the Label was properly constructed via RestoreLabel.
func (l *Label) Validate() error {
	if l == nil {
		return ErrLabelIsNotConstructed
	}
	return l.guard.Validate(ErrLabelIsNotConstructed)
}

// ID returns the identifier the shipping service assigned to this label.
func (l *Label) ID() kernel.ResourceID {
	return l.id
}

// URL returns the location of the printable label document.
func (l *Label) URL() string {
	return l.url
}

// FileType returns the MIME type of the label document.
func (l *Label) FileType() string {
	return l.fileType
}

// TrackingCode returns the tracking code the carrier assigned, or an empty
// string if the carrier did not report one.
func (l *Label) TrackingCode() string {
	return l.trackingCode
}

// Rate returns the rate the purchase was made at.
func (l *Label) Rate() shipment.Rate {
	return l.rate
}

// Filename suggests a file name for storing the label document locally:
// "EASYPOST_LABEL_<id>.<extension>", with the extension taken from the part
// of the MIME type after the first '/'.
func (l *Label) Filename() string {
	_, extension, _ := strings.Cut(l.fileType, "/")
	return fmt.Sprintf("EASYPOST_LABEL_%s.%s", l.id.String(), extension)
}

// IsEqual compares two labels by identifier.
//
// Parameters:
//   - other: Label to compare with
//
// Returns:
//   - bool: true if both labels carry the same identifier
func (l *Label) IsEqual(other *Label) bool {
	if other == nil {
		return false
	}
	return l.id.IsEqual(other.id)
}
