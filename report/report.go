// Package report implements the document builders: each accepts a fully
// resolved domain data object and produces an ordered page sequence by
// composing the compose and chart layout grammar.
//
// Builders never reach into storage or the network; their inputs are plain
// data and their output is a reportkit.Document ready for stamping and
// rasterization.
package report

import (
	"bytes"
	"fmt"
	"image/png"
	"strings"

	"github.com/boombuler/barcode"
	"github.com/shopspring/decimal"
	"github.com/wattmatt/reportkit"
)

// Builder is a document builder. Type is a stable slug ("cost-report",
// "cable-schedule", ...) used by the CLI and the conformance registry.
type Builder interface {
	Type() string
	Build() (*reportkit.Document, error)
}

// CurrencySymbol is the fixed local currency prefix used by every money
// formatter in the module.
const CurrencySymbol = "R"

// FormatMoney renders an amount with the currency symbol and thousands
// separators. Negative amounts carry a leading "-": "-R 12,500".
func FormatMoney(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-" + CurrencySymbol + " " + groupDigits(d.Abs().Round(0).String())
	}
	return CurrencySymbol + " " + groupDigits(d.Round(0).String())
}

// FormatSigned renders an amount as its absolute value with an explicit
// leading "+" or "-", used where the sign is colored separately from the
// magnitude (variance columns, totals).
func FormatSigned(d decimal.Decimal) string {
	sign := "+"
	if d.IsNegative() {
		sign = "-"
	}
	return sign + CurrencySymbol + " " + groupDigits(d.Abs().Round(0).String())
}

// groupDigits inserts comma thousands separators into a plain integer
// string.
func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}
	var sb strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		sb.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}

// compactMoney abbreviates large amounts for chart annotations, where a
// full grouped figure would not fit: "R 1.2M", "R 840k".
func compactMoney(v float64) string {
	abs := v
	sign := ""
	if abs < 0 {
		abs = -abs
		sign = "-"
	}
	switch {
	case abs >= 1e6:
		return fmt.Sprintf("%s%s %.1fM", sign, CurrencySymbol, abs/1e6)
	case abs >= 1e4:
		return fmt.Sprintf("%s%s %.0fk", sign, CurrencySymbol, abs/1e3)
	default:
		return fmt.Sprintf("%s%s %.0f", sign, CurrencySymbol, abs)
	}
}

// varianceColor maps a variance amount to the shared palette: under budget
// (positive variance) is Success, over budget is Danger.
func varianceColor(d decimal.Decimal) reportkit.RGBColor {
	if d.IsNegative() {
		return reportkit.Palette.Danger
	}
	return reportkit.Palette.Success
}

// statusColor maps an approval state to its badge color.
func statusColor(status string) reportkit.RGBColor {
	switch strings.ToLower(status) {
	case "approved":
		return reportkit.Palette.Success
	case "rejected":
		return reportkit.Palette.Danger
	default: // pending and anything unrecognized
		return reportkit.Palette.Warning
	}
}

// barcodePNG scales a barcode to the given pixel size and encodes it as
// PNG for placement as an image primitive.
func barcodePNG(bc barcode.Barcode, w, h int) ([]byte, error) {
	scaled, err := barcode.Scale(bc, w, h)
	if err != nil {
		return nil, fmt.Errorf("report: scaling barcode: %w", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaled); err != nil {
		return nil, fmt.Errorf("report: encoding barcode: %w", err)
	}
	return buf.Bytes(), nil
}
