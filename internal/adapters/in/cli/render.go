package cli

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"shipping/internal/core/domain/model/address"
	"shipping/internal/core/domain/model/label"
	"shipping/internal/core/domain/model/parcel"
	"shipping/internal/core/domain/model/shipment"
)

var (
	accent = lipgloss.Color("#38BDF8") // sky blue
	green  = lipgloss.Color("#22C55E")
	gray   = lipgloss.Color("#6B7280")
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(accent)
	idStyle     = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(gray)
	fieldStyle  = lipgloss.NewStyle().Foreground(gray)
	priceStyle  = lipgloss.NewStyle().Foreground(green)
)

// renderShipment shows a freshly created shipment: its identifier and the
// rates quoted for it.
func renderShipment(shp *shipment.Shipment) string {
	var b strings.Builder

	b.WriteString("\n  " + titleStyle.Render("Shipment") + " " + idStyle.Render(shp.ID().String()) + "\n\n")
	renderRateTable(&b, shp.Rates())
	return b.String()
}

// renderShipmentDetails shows a retrieved shipment in full: the resources it
// was created from, its options and scan form, and its quoted rates.
func renderShipmentDetails(shp *shipment.Shipment) string {
	var b strings.Builder

	b.WriteString("\n  " + titleStyle.Render("Shipment") + " " + idStyle.Render(shp.ID().String()) + "\n\n")
	renderDetailRow(&b, "From", addressLine(shp.From()))
	renderDetailRow(&b, "To", addressLine(shp.To()))
	renderDetailRow(&b, "Parcel", parcelLine(shp.Parcel()))
	if info := shp.CustomsInfo(); info != nil {
		renderDetailRow(&b, "Customs", info.ID().String())
	}
	if options := optionsLine(shp.Options()); options != "" {
		renderDetailRow(&b, "Options", options)
	}
	if form := shp.ScanForm(); form != nil {
		renderDetailRow(&b, "Scan form", form.FormURL())
	}

	b.WriteString("\n")
	renderRateTable(&b, shp.Rates())
	return b.String()
}

// renderLabel shows a purchased label: what was bought, for how much, and
// where the printable document lives.
func renderLabel(lbl *label.Label) string {
	var b strings.Builder
	rate := lbl.Rate()

	b.WriteString("\n  " + titleStyle.Render("Label purchased") + "\n\n")
	renderDetailRow(&b, "Service", rate.Carrier()+" "+rate.Service())
	renderDetailRow(&b, "Price", priceStyle.Render(rate.Price().String()))
	if lbl.TrackingCode() != "" {
		renderDetailRow(&b, "Tracking", lbl.TrackingCode())
	}
	renderDetailRow(&b, "Document", lbl.URL())
	renderDetailRow(&b, "Save as", lbl.Filename())
	return b.String()
}

func renderRateTable(b *strings.Builder, rates []shipment.Rate) {
	if len(rates) == 0 {
		b.WriteString("  " + fieldStyle.Render("No rates quoted.") + "\n")
		return
	}

	carrierWidth, serviceWidth := len("CARRIER"), len("SERVICE")
	for _, rate := range rates {
		carrierWidth = max(carrierWidth, len(rate.Carrier()))
		serviceWidth = max(serviceWidth, len(rate.Service()))
	}

	header := padRight("CARRIER", carrierWidth) + "  " + padRight("SERVICE", serviceWidth) + "  RATE"
	b.WriteString("  " + headerStyle.Render(header) + "\n")

	for _, rate := range rates {
		fmt.Fprintf(b, "  %s  %s  %s\n",
			padRight(rate.Carrier(), carrierWidth),
			padRight(rate.Service(), serviceWidth),
			priceStyle.Render(rate.Price().String()),
		)
	}
}

func renderDetailRow(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "  %s %s\n", fieldStyle.Render(padRight(name, 10)), value)
}

func addressLine(addr *address.Address) string {
	draft := addr.Draft()

	parts := make([]string, 0, 4)
	if draft.Name != "" {
		parts = append(parts, draft.Name)
	}
	parts = append(parts, draft.Street1)
	if draft.Street2 != "" {
		parts = append(parts, draft.Street2)
	}

	locality := draft.City
	if draft.State != "" {
		locality += " " + draft.State
	}
	locality += " " + draft.Zip
	parts = append(parts, locality)

	if draft.Country != "" {
		parts = append(parts, draft.Country)
	}
	return strings.Join(parts, ", ")
}

func parcelLine(prcl *parcel.Parcel) string {
	draft := prcl.Draft()
	weight := formatMeasure(draft.Weight) + " oz"

	if draft.PredefinedPackage != "" {
		return draft.PredefinedPackage + ", " + weight
	}
	return fmt.Sprintf("%s x %s x %s in, %s",
		formatMeasure(draft.Length),
		formatMeasure(draft.Width),
		formatMeasure(draft.Height),
		weight,
	)
}

func optionsLine(options map[string]string) string {
	if len(options) == 0 {
		return ""
	}

	keys := make([]string, 0, len(options))
	for key := range options {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, key := range keys {
		pairs = append(pairs, key+"="+options[key])
	}
	return strings.Join(pairs, ", ")
}

func formatMeasure(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
