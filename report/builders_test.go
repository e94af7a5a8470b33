package report

import (
	"fmt"
	"testing"

	"github.com/wattmatt/reportkit"
)

func sampleProject() ProjectInfo {
	return ProjectInfo{
		Name: "Riverside Mall Redevelopment", Number: "P-2041",
		Client: "Riverside Holdings", Consultant: "WattMatt Consulting",
		Date: "August 2026", Revision: "1",
	}
}

func TestCableScheduleFlagsExcessiveVoltageDrop(t *testing.T) {
	s := CableSchedule{Data: CableScheduleData{
		Project: sampleProject(),
		Cables: []Cable{
			{Tag: "C-01", From: "Main DB", To: "DB-1A", Size: "4C x 70mm", LengthM: 85, VoltageDropPct: 2.1},
			{Tag: "C-02", From: "Main DB", To: "DB-2B", Size: "4C x 16mm", LengthM: 240, VoltageDropPct: 6.4},
		},
	}}
	doc, err := s.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !docContains(doc, "C-02") {
		t.Fatal("cable row missing")
	}

	// The out-of-limit voltage drop cell is drawn in the danger color.
	flagged := false
	for _, p := range doc.Pages {
		for _, prim := range p.Primitives() {
			if txt, ok := prim.(reportkit.Text); ok && txt.S == "6.40" && txt.Color == reportkit.Palette.Danger {
				flagged = true
			}
		}
	}
	if !flagged {
		t.Error("voltage drop above 5% should be drawn in the danger color")
	}
}

func TestCableSchedulePaginatesLongRuns(t *testing.T) {
	cables := make([]Cable, 120)
	for i := range cables {
		cables[i] = Cable{Tag: fmt.Sprintf("C-%03d", i+1), From: "Main DB", To: "DB", Size: "4C x 35mm", LengthM: 40, VoltageDropPct: 1}
	}
	doc, err := CableSchedule{Data: CableScheduleData{Project: sampleProject(), Cables: cables}}.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(doc.Pages) < 4 {
		t.Fatalf("120 rows should span multiple pages, got %d", len(doc.Pages))
	}
	if !docContains(doc, "Cable Schedule (continued)") {
		t.Error("continuation pages should repeat the title with a suffix")
	}
}

func TestCertificateCarriesQRCode(t *testing.T) {
	c := Certificate{Data: CertificateData{
		Project:           sampleProject(),
		CertificateNumber: "COC-2026-0187",
		Standard:          "SANS 10142-1",
		Installation:      "Tenant DB, Shop 14",
		Inspector:         "N. Dlamini",
		IssueDate:         "2026-08-12",
		ExpiryDate:        "2028-08-12",
		VerifyURL:         "https://verify.example.com/coc/COC-2026-0187",
	}}
	doc, err := c.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	var img *reportkit.Image
	for _, prim := range doc.Pages[1].Primitives() {
		if i, ok := prim.(reportkit.Image); ok {
			img = &i
		}
	}
	if img == nil {
		t.Fatal("certificate page missing QR image")
	}
	if img.Name != "certificate-qr" || len(img.PNG) == 0 {
		t.Errorf("QR image malformed: name=%q, %d bytes", img.Name, len(img.PNG))
	}
	if !docContains(doc, "COC-2026-0187") {
		t.Error("certificate number missing")
	}
}

func TestGeneratorStudyGaugesAndFuel(t *testing.T) {
	g := GeneratorStudy{Data: GeneratorStudyData{
		Project: sampleProject(),
		Sets: []GeneratorSet{
			{Name: "GEN-1", CapacityKVA: 800, DemandKVA: 620, TankLitres: 2000},
			{Name: "GEN-2", CapacityKVA: 500, DemandKVA: 510, TankLitres: 1200},
		},
		Fuel: []FuelPoint{
			{Set: "GEN-1", LoadPct: 75, LitresPerHour: 132, AutonomyHours: 15.2},
			{Set: "GEN-1", LoadPct: 100, LitresPerHour: 172, AutonomyHours: 11.6},
			{Set: "GEN-2", LoadPct: 100, LitresPerHour: 110, AutonomyHours: 6.8},
		},
	}}
	doc, err := g.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, want := range []string{"Set Utilization", "Fuel Consumption", "Autonomy at Full Load", "GEN-2"} {
		if !docContains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestUtilizationPageStaysInsideContentExtent(t *testing.T) {
	data := GeneratorStudyData{Project: sampleProject()}
	for i := 0; i < 9; i++ {
		data.Sets = append(data.Sets, GeneratorSet{
			Name:        fmt.Sprintf("GEN-%d", i+1),
			CapacityKVA: 800,
			DemandKVA:   600,
			TankLitres:  2000,
		})
	}
	p := GeneratorStudy{Data: data}.utilizationPage()
	if m := pageMaxY(p); m > reportkit.ContentBottom {
		t.Errorf("dashboard page reaches %.1fmm, content extent ends at %.1fmm", m, reportkit.ContentBottom)
	}
}

func TestGeneratorStudyEmptySets(t *testing.T) {
	doc, err := GeneratorStudy{Data: GeneratorStudyData{Project: sampleProject()}}.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if !docContains(doc, "No data available") {
		t.Error("empty study should render placeholder text")
	}
}

func TestTenantTrackerCountsStatuses(t *testing.T) {
	tr := TenantTracker{Data: TenantTrackerData{
		Project: sampleProject(),
		Tenants: []Tenant{
			{Unit: "S-01", Name: "Coffee Collective", Status: "connected", AreaSQM: 88, LoadKVA: 18.5},
			{Unit: "S-02", Name: "Hardware Hub", Status: "pending", AreaSQM: 240, LoadKVA: 42},
			{Unit: "S-03", Name: "", Status: "vacant", AreaSQM: 65, LoadKVA: 0},
		},
	}}
	doc, err := tr.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, want := range []string{"Connection Status", "Tenant Schedule", "Coffee Collective"} {
		if !docContains(doc, want) {
			t.Errorf("document missing %q", want)
		}
	}
}

func TestPayslipNetAndBarcode(t *testing.T) {
	p := Payslip{Data: PayslipData{
		Employer:       "WattMatt Consulting",
		EmployeeName:   "T. Mokoena",
		EmployeeNumber: "EMP-014",
		Role:           "Senior Technologist",
		Period:         "2026-08",
		Earnings: []PayItem{
			{Description: "Basic salary", Amount: dec("48000")},
			{Description: "Travel allowance", Amount: dec("3500")},
		},
		Deductions: []PayItem{
			{Description: "PAYE", Amount: dec("11200")},
			{Description: "UIF", Amount: dec("177")},
		},
	}}
	doc, err := p.Build()
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	// 51,500 earned less 11,377 deducted.
	if !docContains(doc, "R 40,123") {
		t.Error("net pay missing")
	}
	hasBarcode := false
	for _, prim := range doc.Pages[1].Primitives() {
		if img, ok := prim.(reportkit.Image); ok && img.Name == "payslip-ref" && len(img.PNG) > 0 {
			hasBarcode = true
		}
	}
	if !hasBarcode {
		t.Error("payslip missing reference barcode")
	}
}

func TestBuilderTypesAreStable(t *testing.T) {
	types := map[string]Builder{
		"cost-report":     CostReport{},
		"cable-schedule":  CableSchedule{},
		"certificate":     Certificate{},
		"generator-study": GeneratorStudy{},
		"tenant-tracker":  TenantTracker{},
		"payslip":         Payslip{},
	}
	for want, b := range types {
		if got := b.Type(); got != want {
			t.Errorf("Type() = %q, want %q", got, want)
		}
	}
}
