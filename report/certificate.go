package report

import (
	"fmt"

	"github.com/boombuler/barcode/qr"
	"github.com/wattmatt/reportkit"
	"github.com/wattmatt/reportkit/compose"
)

// Certificate builds a single-page verification certificate with a QR code
// linking to the online verification record.
type Certificate struct {
	Data CertificateData
}

// Type implements Builder.
func (Certificate) Type() string { return "certificate" }

// Build lays out the certificate. Unlike the report builders there is no
// cover page: the certificate is its own single content page, stamped with
// a footer only.
func (c Certificate) Build() (*reportkit.Document, error) {
	d := c.Data
	doc := &reportkit.Document{
		Title:    "Certificate of Compliance",
		Project:  d.Project.Name,
		Filename: fmt.Sprintf("certificate-%s.pdf", d.CertificateNumber),
	}
	doc.Append(compose.Cover(compose.CoverData{
		LogoPNG:       d.Project.LogoPNG,
		Title:         "Certificate of Compliance",
		Subtitle:      d.Standard,
		ProjectName:   d.Project.Name,
		ProjectNumber: d.Project.Number,
		PreparedFor:   []string{d.Project.Client},
		PreparedBy:    []string{d.Inspector},
		Date:          d.IssueDate,
		Revision:      d.Project.Revision,
	}))

	p := reportkit.NewPage()
	y := compose.SectionTitle(p, reportkit.ContentTop, "Certificate "+d.CertificateNumber)

	cols := []compose.Column{
		{Header: "Field", Key: "field", Width: 60},
		{Header: "Detail", Key: "detail", Width: 120},
	}
	rows := []compose.Row{
		{Cells: map[string]string{"field": "Certificate number", "detail": d.CertificateNumber}, Bold: true},
		{Cells: map[string]string{"field": "Applicable standard", "detail": d.Standard}},
		{Cells: map[string]string{"field": "Installation", "detail": d.Installation}},
		{Cells: map[string]string{"field": "Inspector", "detail": d.Inspector}},
		{Cells: map[string]string{"field": "Date of issue", "detail": d.IssueDate}},
		{Cells: map[string]string{"field": "Valid until", "detail": d.ExpiryDate}},
	}
	_, y = compose.Table(cols, rows, compose.TableOptions{StartPage: p, StartY: y + 2})

	payload := d.VerifyURL
	if payload == "" {
		payload = d.CertificateNumber
	}
	code, err := qr.Encode(payload, qr.M, qr.Auto)
	if err != nil {
		return nil, fmt.Errorf("report: encoding certificate QR: %w", err)
	}
	pngData, err := barcodePNG(code, 256, 256)
	if err != nil {
		return nil, err
	}

	const qrSize = 36.0
	qy := y + 12
	p.Add(reportkit.Image{
		X: reportkit.ContentLeft, Y: qy, W: qrSize, H: qrSize,
		Name: "certificate-qr", PNG: pngData,
	})
	p.Add(reportkit.Text{
		X: reportkit.ContentLeft + qrSize + 6, Y: qy + qrSize/2,
		S:     "Scan to verify this certificate",
		Font:  reportkit.Font("I", 10),
		Color: reportkit.Palette.Muted,
	})

	sigY := reportkit.ContentBottom - 14
	border := reportkit.Palette.Border
	p.Add(reportkit.Line{
		X1: reportkit.ContentLeft, Y1: sigY,
		X2: reportkit.ContentLeft + 70, Y2: sigY,
		Color: border, Width: 0.3,
	})
	p.Add(reportkit.Text{
		X: reportkit.ContentLeft, Y: sigY + 5,
		S:     d.Inspector + " (Registered Person)",
		Font:  reportkit.Font("", 9),
		Color: reportkit.Palette.Dark,
	})
	doc.Append(p)

	compose.Stamp(doc)
	return doc, nil
}
