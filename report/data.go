package report

import "github.com/shopspring/decimal"

// ProjectInfo identifies the project a document belongs to. Shared by
// every document type for the cover page and running headers.
type ProjectInfo struct {
	Name       string `json:"name"`
	Number     string `json:"number"`
	Client     string `json:"client"`
	Consultant string `json:"consultant"`
	Date       string `json:"date"`
	Revision   string `json:"revision"`

	// LogoPNG optionally places a pre-encoded PNG logo on the cover.
	LogoPNG []byte `json:"-"`
}

// CostLineItem is one priced line within a cost category.
type CostLineItem struct {
	Description string          `json:"description"`
	Budget      decimal.Decimal `json:"budget"`
	Previous    decimal.Decimal `json:"previous"`
	Anticipated decimal.Decimal `json:"anticipated"`
}

// Variance is budget minus anticipated: positive when under budget.
func (i CostLineItem) Variance() decimal.Decimal {
	return i.Budget.Sub(i.Anticipated)
}

// CostCategory groups line items under a trade heading.
type CostCategory struct {
	Name  string         `json:"name"`
	Items []CostLineItem `json:"items"`
}

// Budget returns the category's summed budget.
func (c CostCategory) Budget() decimal.Decimal { return c.sum(func(i CostLineItem) decimal.Decimal { return i.Budget }) }

// Previous returns the category's summed previously-reported cost.
func (c CostCategory) Previous() decimal.Decimal {
	return c.sum(func(i CostLineItem) decimal.Decimal { return i.Previous })
}

// Anticipated returns the category's summed anticipated final cost.
func (c CostCategory) Anticipated() decimal.Decimal {
	return c.sum(func(i CostLineItem) decimal.Decimal { return i.Anticipated })
}

// Variance returns the category's budget minus anticipated.
func (c CostCategory) Variance() decimal.Decimal { return c.Budget().Sub(c.Anticipated()) }

func (c CostCategory) sum(f func(CostLineItem) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, i := range c.Items {
		total = total.Add(f(i))
	}
	return total
}

// Variation is a priced scope change with an approval state.
type Variation struct {
	Code        string          `json:"code"`
	Description string          `json:"description"`
	Status      string          `json:"status"` // approved, pending, rejected
	Amount      decimal.Decimal `json:"amount"`
}

// CostReportData is the resolved input for the monthly cost report.
// Categories and Variations may be empty; the builder degrades to
// placeholder text rather than failing.
type CostReportData struct {
	Project    ProjectInfo    `json:"project"`
	Categories []CostCategory `json:"categories"`
	Variations []Variation    `json:"variations"`

	// Notes is optional markdown commentary rendered after the
	// variation schedule.
	Notes string `json:"notes,omitempty"`
}

// Cable is one run in a cable schedule.
type Cable struct {
	Tag            string  `json:"tag"`
	From           string  `json:"from"`
	To             string  `json:"to"`
	Size           string  `json:"size"`
	LengthM        float64 `json:"length_m"`
	VoltageDropPct float64 `json:"voltage_drop_pct"`
}

// CableScheduleData is the resolved input for a cable schedule document.
type CableScheduleData struct {
	Project ProjectInfo `json:"project"`
	Cables  []Cable     `json:"cables"`
}

// CertificateData is the resolved input for a verification certificate.
type CertificateData struct {
	Project           ProjectInfo `json:"project"`
	CertificateNumber string      `json:"certificate_number"`
	Standard          string      `json:"standard"`
	Installation      string      `json:"installation"`
	Inspector         string      `json:"inspector"`
	IssueDate         string      `json:"issue_date"`
	ExpiryDate        string      `json:"expiry_date"`

	// VerifyURL is encoded into the certificate's QR code; falls back to
	// the certificate number when empty.
	VerifyURL string `json:"verify_url,omitempty"`
}

// GeneratorSet is one standby plant unit under study.
type GeneratorSet struct {
	Name        string  `json:"name"`
	CapacityKVA float64 `json:"capacity_kva"`
	DemandKVA   float64 `json:"demand_kva"`
	TankLitres  float64 `json:"tank_litres"`
}

// Utilization returns demand as a percentage of capacity; 0 for an unrated
// set.
func (g GeneratorSet) Utilization() float64 {
	if g.CapacityKVA <= 0 {
		return 0
	}
	return 100 * g.DemandKVA / g.CapacityKVA
}

// FuelPoint is one row of a generator fuel-consumption table.
type FuelPoint struct {
	Set           string  `json:"set"`
	LoadPct       float64 `json:"load_pct"`
	LitresPerHour float64 `json:"litres_per_hour"`
	AutonomyHours float64 `json:"autonomy_hours"`
}

// GeneratorStudyData is the resolved input for a standby generator study.
type GeneratorStudyData struct {
	Project ProjectInfo    `json:"project"`
	Sets    []GeneratorSet `json:"sets"`
	Fuel    []FuelPoint    `json:"fuel"`
}

// Tenant is one unit in a tenant connection tracker.
type Tenant struct {
	Unit    string  `json:"unit"`
	Name    string  `json:"name"`
	Status  string  `json:"status"` // connected, pending, vacant
	AreaSQM float64 `json:"area_sqm"`
	LoadKVA float64 `json:"load_kva"`
}

// TenantTrackerData is the resolved input for a tenant tracker document.
type TenantTrackerData struct {
	Project ProjectInfo `json:"project"`
	Tenants []Tenant    `json:"tenants"`
}

// PayItem is one earning or deduction line on a payslip.
type PayItem struct {
	Description string          `json:"description"`
	Amount      decimal.Decimal `json:"amount"`
}

// PayslipData is the resolved input for a staff payslip.
type PayslipData struct {
	Employer       string    `json:"employer"`
	EmployeeName   string    `json:"employee_name"`
	EmployeeNumber string    `json:"employee_number"`
	Role           string    `json:"role"`
	Period         string    `json:"period"`
	Earnings       []PayItem `json:"earnings"`
	Deductions     []PayItem `json:"deductions"`
}

// Net returns total earnings minus total deductions.
func (p PayslipData) Net() decimal.Decimal {
	net := decimal.Zero
	for _, e := range p.Earnings {
		net = net.Add(e.Amount)
	}
	for _, d := range p.Deductions {
		net = net.Sub(d.Amount)
	}
	return net
}
