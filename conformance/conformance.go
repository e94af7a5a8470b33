// Package conformance self-tests the document builders: every registered
// builder is built against representative mock data and its page structure
// is checked by a fixed set of inspections. The same inspections back the
// package's conventional tests, so a structural regression shows up both
// in CI and in a production `-check` run.
package conformance

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wattmatt/reportkit"
)

// Inspection is one structural check applied to a built document. It
// returns nil when the document passes.
type Inspection struct {
	Name  string
	Check func(doc *reportkit.Document) error
}

// minCoverTitleSize is the smallest font size accepted as a cover title.
const minCoverTitleSize = 20.0

// StandardInspections returns the checks every document type must pass.
func StandardInspections() []Inspection {
	return []Inspection{
		{Name: "multiple pages", Check: checkMultiplePages},
		{Name: "branded cover", Check: checkBrandedCover},
		{Name: "undecorated cover", Check: checkUndecoratedCover},
		{Name: "running headers", Check: checkRunningHeaders},
		{Name: "footer numbering", Check: checkFooterNumbering},
		{Name: "uniform page size", Check: checkUniformPageSize},
	}
}

func checkMultiplePages(doc *reportkit.Document) error {
	if len(doc.Pages) < 2 {
		return fmt.Errorf("conformance: got %d pages, want at least 2", len(doc.Pages))
	}
	return nil
}

// checkBrandedCover requires a Primary-colored fill and a title of at
// least 20pt on the first page.
func checkBrandedCover(doc *reportkit.Document) error {
	cover := doc.Pages[0]
	brandFill := false
	bigTitle := false
	for _, prim := range cover.Primitives() {
		switch p := prim.(type) {
		case reportkit.Rect:
			if p.Fill != nil && *p.Fill == reportkit.Palette.Primary {
				brandFill = true
			}
		case reportkit.Text:
			if p.Font.Size >= minCoverTitleSize {
				bigTitle = true
			}
		}
	}
	if !brandFill {
		return fmt.Errorf("conformance: cover has no primary-colored fill")
	}
	if !bigTitle {
		return fmt.Errorf("conformance: cover has no title of at least %.0fpt", minCoverTitleSize)
	}
	return nil
}

// checkUndecoratedCover requires the cover to carry neither the running
// header rule nor any footer text.
func checkUndecoratedCover(doc *reportkit.Document) error {
	for _, prim := range doc.Pages[0].Primitives() {
		switch p := prim.(type) {
		case reportkit.Line:
			if p.Color == reportkit.Palette.Accent && p.Y1 == p.Y2 && p.Y1 < 15 {
				return fmt.Errorf("conformance: cover carries a header rule")
			}
		case reportkit.Text:
			if strings.HasPrefix(p.S, "Page ") && strings.Contains(p.S, " of ") {
				return fmt.Errorf("conformance: cover carries footer text %q", p.S)
			}
		}
	}
	return nil
}

// checkRunningHeaders requires header artifacts on the second page.
func checkRunningHeaders(doc *reportkit.Document) error {
	for _, prim := range doc.Pages[1].Primitives() {
		if l, ok := prim.(reportkit.Line); ok && l.Y1 == l.Y2 && l.Y1 < 15 {
			return nil
		}
	}
	return fmt.Errorf("conformance: page 2 has no header rule")
}

// checkFooterNumbering requires every page after the cover to carry exactly
// one footer naming its own 1-based position and the shared total.
func checkFooterNumbering(doc *reportkit.Document) error {
	n := len(doc.Pages) - 1
	for i, page := range doc.Pages[1:] {
		want := fmt.Sprintf("Page %d of %d", i+1, n)
		count := 0
		for _, prim := range page.Primitives() {
			t, ok := prim.(reportkit.Text)
			if !ok || !strings.HasPrefix(t.S, "Page ") {
				continue
			}
			if t.S != want {
				return fmt.Errorf("conformance: page %d footer reads %q, want %q", i+2, t.S, want)
			}
			count++
		}
		if count != 1 {
			return fmt.Errorf("conformance: page %d has %d footers, want 1", i+2, count)
		}
	}
	return nil
}

func checkUniformPageSize(doc *reportkit.Document) error {
	w0, h0 := doc.Pages[0].Size()
	for i, page := range doc.Pages[1:] {
		if w, h := page.Size(); w != w0 || h != h0 {
			return fmt.Errorf("conformance: page %d is %.0fx%.0f, cover is %.0fx%.0f", i+2, w, h, w0, h0)
		}
	}
	return nil
}

// Result is the outcome of one registry entry: the failures keyed by
// inspection name, any build error or recovered panic, and wall-clock
// build time.
type Result struct {
	Name     string
	Failures map[string]string
	BuildErr string
	Elapsed  time.Duration
}

// Passed reports whether the entry built cleanly and passed every
// inspection.
func (r Result) Passed() bool {
	return r.BuildErr == "" && len(r.Failures) == 0
}

// Report is the outcome of a full conformance run.
type Report struct {
	ID      string // unique run identifier
	Results []Result
	Elapsed time.Duration
}

// Passed reports whether every entry passed.
func (r Report) Passed() bool {
	for _, res := range r.Results {
		if !res.Passed() {
			return false
		}
	}
	return true
}

// Run builds every registry entry in order and applies the standard
// inspections to each. A panic or error in one entry is captured in its
// result and does not stop the run.
func Run(entries []Entry, logger *zap.Logger) Report {
	if logger == nil {
		logger = zap.NewNop()
	}
	start := time.Now()
	report := Report{ID: uuid.NewString()}

	inspections := StandardInspections()
	for _, e := range entries {
		res := runEntry(e, inspections)
		if res.Passed() {
			logger.Info("conformance pass",
				zap.String("entry", e.Name),
				zap.Duration("elapsed", res.Elapsed))
		} else {
			logger.Warn("conformance fail",
				zap.String("entry", e.Name),
				zap.String("build_error", res.BuildErr),
				zap.Int("failures", len(res.Failures)))
		}
		report.Results = append(report.Results, res)
	}
	report.Elapsed = time.Since(start)
	logger.Info("conformance run complete",
		zap.String("run_id", report.ID),
		zap.Bool("passed", report.Passed()),
		zap.Duration("elapsed", report.Elapsed))
	return report
}

func runEntry(e Entry, inspections []Inspection) (res Result) {
	res = Result{Name: e.Name, Failures: map[string]string{}}
	start := time.Now()
	defer func() {
		res.Elapsed = time.Since(start)
		if r := recover(); r != nil {
			res.BuildErr = fmt.Sprintf("panic: %v", r)
		}
	}()

	doc, err := e.Build()
	if err != nil {
		res.BuildErr = err.Error()
		return res
	}
	if doc == nil || len(doc.Pages) == 0 {
		res.BuildErr = "builder returned an empty document"
		return res
	}
	for _, ins := range inspections {
		if err := ins.Check(doc); err != nil {
			res.Failures[ins.Name] = err.Error()
		}
	}
	return res
}
