package conformance

import (
	"github.com/shopspring/decimal"

	"github.com/wattmatt/reportkit"
	"github.com/wattmatt/reportkit/report"
)

// Entry is one registered document type with a build function over
// representative mock data.
type Entry struct {
	Name  string
	Build func() (*reportkit.Document, error)
}

func mockProject() report.ProjectInfo {
	return report.ProjectInfo{
		Name:       "Northgate Industrial Park",
		Number:     "P-1900",
		Client:     "Northgate Property Fund",
		Consultant: "WattMatt Consulting",
		Date:       "August 2026",
		Revision:   "2",
	}
}

func amount(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

// DefaultRegistry returns an entry for every document type, each with
// enough mock data to exercise its full layout.
func DefaultRegistry() []Entry {
	return []Entry{
		{Name: "cost-report", Build: func() (*reportkit.Document, error) {
			return report.CostReport{Data: report.CostReportData{
				Project: mockProject(),
				Categories: []report.CostCategory{
					{Name: "MV Reticulation", Items: []report.CostLineItem{
						{Description: "11kV switchgear", Budget: amount(1850000), Previous: amount(1800000), Anticipated: amount(1920000)},
						{Description: "Ring main cabling", Budget: amount(640000), Previous: amount(640000), Anticipated: amount(610000)},
					}},
					{Name: "LV Distribution", Items: []report.CostLineItem{
						{Description: "Main distribution boards", Budget: amount(920000), Previous: amount(900000), Anticipated: amount(905000)},
						{Description: "Sub-distribution boards", Budget: amount(380000), Previous: amount(380000), Anticipated: amount(392000)},
					}},
				},
				Variations: []report.Variation{
					{Code: "VO-01", Description: "Additional tenant DB", Status: "approved", Amount: amount(84000)},
					{Code: "VO-02", Description: "Revised cable routes", Status: "pending", Amount: amount(-12000)},
				},
				Notes: "## Commentary\n\nCopper pricing remains the dominant risk.\n\n- Switchgear delivery confirmed for October.\n- Tenant DB scope under review.",
			}}.Build()
		}},
		{Name: "cable-schedule", Build: func() (*reportkit.Document, error) {
			return report.CableSchedule{Data: report.CableScheduleData{
				Project: mockProject(),
				Cables: []report.Cable{
					{Tag: "C-01", From: "Main DB", To: "DB-1A", Size: "4C x 70mm", LengthM: 85, VoltageDropPct: 2.1},
					{Tag: "C-02", From: "Main DB", To: "DB-2B", Size: "4C x 16mm", LengthM: 240, VoltageDropPct: 6.4},
					{Tag: "C-03", From: "DB-1A", To: "MCC-1", Size: "4C x 35mm", LengthM: 60, VoltageDropPct: 1.4},
				},
			}}.Build()
		}},
		{Name: "certificate", Build: func() (*reportkit.Document, error) {
			return report.Certificate{Data: report.CertificateData{
				Project:           mockProject(),
				CertificateNumber: "COC-2026-0187",
				Standard:          "SANS 10142-1",
				Installation:      "Tenant DB, Unit 14",
				Inspector:         "N. Dlamini",
				IssueDate:         "2026-08-12",
				ExpiryDate:        "2028-08-12",
				VerifyURL:         "https://verify.example.com/coc/COC-2026-0187",
			}}.Build()
		}},
		{Name: "generator-study", Build: func() (*reportkit.Document, error) {
			return report.GeneratorStudy{Data: report.GeneratorStudyData{
				Project: mockProject(),
				Sets: []report.GeneratorSet{
					{Name: "GEN-1", CapacityKVA: 800, DemandKVA: 620, TankLitres: 2000},
					{Name: "GEN-2", CapacityKVA: 500, DemandKVA: 430, TankLitres: 1200},
				},
				Fuel: []report.FuelPoint{
					{Set: "GEN-1", LoadPct: 75, LitresPerHour: 132, AutonomyHours: 15.2},
					{Set: "GEN-1", LoadPct: 100, LitresPerHour: 172, AutonomyHours: 11.6},
					{Set: "GEN-2", LoadPct: 100, LitresPerHour: 110, AutonomyHours: 10.9},
				},
			}}.Build()
		}},
		{Name: "tenant-tracker", Build: func() (*reportkit.Document, error) {
			return report.TenantTracker{Data: report.TenantTrackerData{
				Project: mockProject(),
				Tenants: []report.Tenant{
					{Unit: "S-01", Name: "Coffee Collective", Status: "connected", AreaSQM: 88, LoadKVA: 18.5},
					{Unit: "S-02", Name: "Hardware Hub", Status: "pending", AreaSQM: 240, LoadKVA: 42},
					{Unit: "S-03", Name: "", Status: "vacant", AreaSQM: 65, LoadKVA: 0},
				},
			}}.Build()
		}},
		{Name: "payslip", Build: func() (*reportkit.Document, error) {
			return report.Payslip{Data: report.PayslipData{
				Employer:       "WattMatt Consulting",
				EmployeeName:   "T. Mokoena",
				EmployeeNumber: "EMP-014",
				Role:           "Senior Technologist",
				Period:         "2026-08",
				Earnings: []report.PayItem{
					{Description: "Basic salary", Amount: amount(48000)},
					{Description: "Travel allowance", Amount: amount(3500)},
				},
				Deductions: []report.PayItem{
					{Description: "PAYE", Amount: amount(11200)},
					{Description: "UIF", Amount: amount(177)},
				},
			}}.Build()
		}},
	}
}
