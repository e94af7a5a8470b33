package conformance

import (
	"errors"
	"testing"

	"github.com/wattmatt/reportkit"
)

func TestEveryBuilderPassesStandardInspections(t *testing.T) {
	for _, e := range DefaultRegistry() {
		doc, err := e.Build()
		if err != nil {
			t.Fatalf("%s: Build: %v", e.Name, err)
		}
		for _, ins := range StandardInspections() {
			if err := ins.Check(doc); err != nil {
				t.Errorf("%s: %s: %v", e.Name, ins.Name, err)
			}
		}
	}
}

func TestRunReport(t *testing.T) {
	report := Run(DefaultRegistry(), nil)
	if report.ID == "" {
		t.Error("run report missing ID")
	}
	if len(report.Results) != len(DefaultRegistry()) {
		t.Fatalf("got %d results, want %d", len(report.Results), len(DefaultRegistry()))
	}
	if !report.Passed() {
		for _, res := range report.Results {
			if !res.Passed() {
				t.Errorf("%s failed: build=%q failures=%v", res.Name, res.BuildErr, res.Failures)
			}
		}
	}
	for _, res := range report.Results {
		if res.Elapsed <= 0 {
			t.Errorf("%s: missing timing", res.Name)
		}
	}
}

func TestRunIsolatesFailingEntries(t *testing.T) {
	entries := []Entry{
		{Name: "panics", Build: func() (*reportkit.Document, error) { panic("boom") }},
		{Name: "errors", Build: func() (*reportkit.Document, error) { return nil, errors.New("no data source") }},
		DefaultRegistry()[0],
	}
	report := Run(entries, nil)
	if len(report.Results) != 3 {
		t.Fatalf("got %d results, want 3", len(report.Results))
	}
	if report.Results[0].BuildErr != "panic: boom" {
		t.Errorf("panic not captured: %q", report.Results[0].BuildErr)
	}
	if report.Results[1].BuildErr != "no data source" {
		t.Errorf("error not captured: %q", report.Results[1].BuildErr)
	}
	if !report.Results[2].Passed() {
		t.Error("healthy entry should still pass after earlier failures")
	}
	if report.Passed() {
		t.Error("report with failing entries must not pass")
	}
}

func TestFooterInspectionCatchesMisnumbering(t *testing.T) {
	doc, err := DefaultRegistry()[0].Build()
	if err != nil {
		t.Fatal(err)
	}
	// Forge a second, wrong footer on the first content page.
	doc.Pages[1].Add(reportkit.Text{
		X: 100, Y: 290, S: "Page 9 of 9",
		Font: reportkit.Font("", 8), Color: reportkit.Palette.Muted,
	})
	if err := checkFooterNumbering(doc); err == nil {
		t.Error("duplicate footer should fail the inspection")
	}
}
