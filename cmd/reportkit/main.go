// Command reportkit renders project documents to PDF from JSON data files
// and runs the structural conformance suite.
//
// # Installation
//
//	go install github.com/wattmatt/reportkit/cmd/reportkit@latest
//
// # Usage
//
// Render a document:
//
//	reportkit -type cost-report -data august.json -o cost-report.pdf
//
// Place a client logo on the cover (PNG, JPEG, GIF, BMP, TIFF or WebP):
//
//	reportkit -type cost-report -data august.json -logo client.png -o out.pdf
//
// Append an existing PDF (drawings, quotations) after the document:
//
//	reportkit -type cost-report -data august.json -appendix drawings.pdf -o out.pdf
//
// Run the conformance suite over every document type:
//
//	reportkit -check
//
// List the available document types:
//
//	reportkit -list
package main

import (
	"bytes"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"

	"go.uber.org/zap"

	"github.com/wattmatt/reportkit/conformance"
	"github.com/wattmatt/reportkit/raster"
	"github.com/wattmatt/reportkit/report"
)

func main() {
	var (
		docType  = flag.String("type", "", "document type to render (see -list)")
		dataPath = flag.String("data", "", "path to the JSON data file")
		outPath  = flag.String("o", "", "output PDF path (defaults to the document's suggested filename)")
		logoPath = flag.String("logo", "", "image file to place on the cover page")
		appendix = flag.String("appendix", "", "existing PDF to append after the document")
		check    = flag.Bool("check", false, "run the conformance suite and exit")
		list     = flag.Bool("list", false, "list available document types and exit")
		verbose  = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintf(os.Stderr, "reportkit: %v\n", err)
			os.Exit(1)
		}
		logger = l
		defer logger.Sync()
	}

	switch {
	case *list:
		for _, name := range documentTypes() {
			fmt.Println(name)
		}
	case *check:
		if !runCheck(logger) {
			os.Exit(1)
		}
	default:
		if err := render(*docType, *dataPath, *outPath, *logoPath, *appendix, logger); err != nil {
			fmt.Fprintf(os.Stderr, "reportkit: %v\n", err)
			os.Exit(1)
		}
	}
}

func documentTypes() []string {
	var names []string
	for _, e := range conformance.DefaultRegistry() {
		names = append(names, e.Name)
	}
	sort.Strings(names)
	return names
}

func runCheck(logger *zap.Logger) bool {
	rep := conformance.Run(conformance.DefaultRegistry(), logger)
	for _, res := range rep.Results {
		status := "PASS"
		if !res.Passed() {
			status = "FAIL"
		}
		fmt.Printf("%-4s %-18s %s\n", status, res.Name, res.Elapsed)
		if res.BuildErr != "" {
			fmt.Printf("     build: %s\n", res.BuildErr)
		}
		for name, msg := range res.Failures {
			fmt.Printf("     %s: %s\n", name, msg)
		}
	}
	fmt.Printf("run %s: %d/%d passed in %s\n",
		rep.ID, passedCount(rep), len(rep.Results), rep.Elapsed)
	return rep.Passed()
}

func passedCount(rep conformance.Report) int {
	n := 0
	for _, res := range rep.Results {
		if res.Passed() {
			n++
		}
	}
	return n
}

func render(docType, dataPath, outPath, logoPath, appendix string, logger *zap.Logger) error {
	if docType == "" {
		return fmt.Errorf("missing -type (one of: %v)", documentTypes())
	}
	if dataPath == "" {
		return fmt.Errorf("missing -data")
	}
	raw, err := os.ReadFile(dataPath)
	if err != nil {
		return err
	}
	logo, err := loadLogo(logoPath)
	if err != nil {
		return err
	}
	builder, err := builderFor(docType, raw, logo)
	if err != nil {
		return err
	}
	doc, err := builder.Build()
	if err != nil {
		return err
	}
	if outPath == "" {
		outPath = doc.Filename
	}

	opts := []raster.Option{raster.WithLogger(logger)}
	if appendix != "" {
		opts = append(opts, raster.WithAppendix(appendix))
	}
	if err := raster.RenderToFile(doc, outPath, opts...); err != nil {
		return err
	}
	fmt.Printf("wrote %s (%d pages)\n", outPath, len(doc.Pages))
	return nil
}

// loadLogo reads an image file and converts it to the cover's PNG form.
// An empty path means no logo.
func loadLogo(path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	logo, err := raster.NormalizeImage(raw)
	if err != nil {
		return nil, fmt.Errorf("loading logo %s: %w", path, err)
	}
	return logo, nil
}

// builderFor unmarshals raw JSON into the data shape for the named document
// type. A non-nil logo is placed on the cover of every document type that
// carries project info.
func builderFor(docType string, raw, logo []byte) (report.Builder, error) {
	decode := func(v interface{}) error {
		dec := json.NewDecoder(bytes.NewReader(raw))
		dec.DisallowUnknownFields()
		return dec.Decode(v)
	}
	switch docType {
	case "cost-report":
		var d report.CostReportData
		if err := decode(&d); err != nil {
			return nil, fmt.Errorf("parsing %s data: %w", docType, err)
		}
		d.Project.LogoPNG = logo
		return report.CostReport{Data: d}, nil
	case "cable-schedule":
		var d report.CableScheduleData
		if err := decode(&d); err != nil {
			return nil, fmt.Errorf("parsing %s data: %w", docType, err)
		}
		d.Project.LogoPNG = logo
		return report.CableSchedule{Data: d}, nil
	case "certificate":
		var d report.CertificateData
		if err := decode(&d); err != nil {
			return nil, fmt.Errorf("parsing %s data: %w", docType, err)
		}
		d.Project.LogoPNG = logo
		return report.Certificate{Data: d}, nil
	case "generator-study":
		var d report.GeneratorStudyData
		if err := decode(&d); err != nil {
			return nil, fmt.Errorf("parsing %s data: %w", docType, err)
		}
		d.Project.LogoPNG = logo
		return report.GeneratorStudy{Data: d}, nil
	case "tenant-tracker":
		var d report.TenantTrackerData
		if err := decode(&d); err != nil {
			return nil, fmt.Errorf("parsing %s data: %w", docType, err)
		}
		d.Project.LogoPNG = logo
		return report.TenantTracker{Data: d}, nil
	case "payslip":
		var d report.PayslipData
		if err := decode(&d); err != nil {
			return nil, fmt.Errorf("parsing %s data: %w", docType, err)
		}
		return report.Payslip{Data: d}, nil
	default:
		return nil, fmt.Errorf("unknown document type %q (one of: %v)", docType, documentTypes())
	}
}
