package report

import (
	"fmt"

	"github.com/boombuler/barcode/pdf417"
	"github.com/shopspring/decimal"
	"github.com/wattmatt/reportkit"
	"github.com/wattmatt/reportkit/compose"
)

// Payslip builds a single-page staff payslip: earnings and deductions
// tables, a highlighted net-pay row and a PDF417 barcode carrying the
// payroll record reference.
type Payslip struct {
	Data PayslipData
}

// Type implements Builder.
func (Payslip) Type() string { return "payslip" }

// Build lays out the payslip on a single content page.
func (p Payslip) Build() (*reportkit.Document, error) {
	d := p.Data
	doc := &reportkit.Document{
		Title:    "Payslip",
		Project:  d.Employer,
		Filename: fmt.Sprintf("payslip-%s-%s.pdf", d.EmployeeNumber, d.Period),
	}
	doc.Append(compose.Cover(compose.CoverData{
		Title:       "Payslip",
		Subtitle:    d.Period,
		ProjectName: d.Employer,
		PreparedFor: []string{d.EmployeeName, d.Role, "Employee No. " + d.EmployeeNumber},
		PreparedBy:  []string{d.Employer, "Payroll"},
		Date:        d.Period,
	}))

	page := reportkit.NewPage()
	y := compose.SectionTitle(page, reportkit.ContentTop, d.EmployeeName+" - "+d.Period)

	cols := []compose.Column{
		{Header: "Description", Key: "desc", Width: 130},
		{Header: "Amount", Key: "amount", Width: 50, Align: compose.AlignRight},
	}

	_, y = compose.Table(cols, payRows(d.Earnings, "Total earnings"), compose.TableOptions{
		Title: "Earnings", StartPage: page, StartY: y + 2,
	})
	_, y = compose.Table(cols, payRows(d.Deductions, "Total deductions"), compose.TableOptions{
		Title: "Deductions", StartPage: page, StartY: y + 6,
	})

	net := d.Net()
	banner := reportkit.Palette.Primary
	page.Add(reportkit.Rect{
		X: reportkit.ContentLeft, Y: y + 8, W: reportkit.ContentWidth, H: 14,
		Fill: &banner, Radius: 1.5,
	})
	page.Add(reportkit.Text{
		X: reportkit.ContentLeft + 4, Y: y + 17,
		S:     "NET PAY",
		Font:  reportkit.Font("B", 12),
		Color: reportkit.White,
	})
	page.Add(reportkit.Text{
		X: reportkit.ContentRight - 4, Y: y + 17,
		S:      FormatMoney(net),
		Font:   reportkit.Font("B", 12),
		Color:  reportkit.White,
		Anchor: reportkit.AnchorEnd,
	})

	ref := fmt.Sprintf("%s|%s|%s|%s", d.Employer, d.EmployeeNumber, d.Period, net.StringFixed(2))
	code, err := pdf417.Encode(ref, 4)
	if err != nil {
		return nil, fmt.Errorf("report: encoding payslip barcode: %w", err)
	}
	pngData, err := barcodePNG(code, 360, 120)
	if err != nil {
		return nil, err
	}
	page.Add(reportkit.Image{
		X: reportkit.ContentLeft, Y: y + 30, W: 60, H: 20,
		Name: "payslip-ref", PNG: pngData,
	})
	page.Add(reportkit.Text{
		X: reportkit.ContentLeft, Y: y + 55,
		S:     "Record reference " + d.EmployeeNumber + "/" + d.Period,
		Font:  reportkit.Font("", 8),
		Color: reportkit.Palette.Muted,
	})
	doc.Append(page)

	compose.Stamp(doc)
	return doc, nil
}

// payRows converts pay items to table rows with a bold highlighted total.
func payRows(items []PayItem, totalLabel string) []compose.Row {
	rows := make([]compose.Row, 0, len(items)+1)
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
		rows = append(rows, compose.Row{Cells: map[string]string{
			"desc":   item.Description,
			"amount": FormatMoney(item.Amount),
		}})
	}
	if len(rows) == 0 {
		return rows
	}
	light := reportkit.Palette.Light
	rows = append(rows, compose.Row{
		Cells:     map[string]string{"desc": totalLabel, "amount": FormatMoney(total)},
		Bold:      true,
		Highlight: &light,
	})
	return rows
}
