// Package observability provides formatted console output for validation runs.
package observability

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/harvest-validator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 72
	// maxItemsToShow is the default number of data points to display per report
	maxItemsToShow = 5
)

// Printer handles formatted console output
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		if len([]rune(line)) > boxWidth-4 {
			line = string([]rune(line)[:boxWidth-7]) + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintBanner prints a one-line section marker.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintBanner(text string) {
	pad := boxWidth - len([]rune(text)) - 2
	if pad < 2 {
		pad = 2
	}
	left := strings.Repeat("*", pad/2)
	right := strings.Repeat("*", pad-pad/2)
	fmt.Fprintf(p.out, "%s %s %s\n", left, text, right)
}

// PrintFileResult outputs the reports and failed checks for one measurement file.
func (p *Printer) PrintFileResult(result types.FileResult) {
	title := fmt.Sprintf("HARVEST DATA: %s", result.Path)

	if result.IngestError != "" {
		p.printBox(title, fmt.Sprintf("✗ %s", result.IngestError))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Records: %d\n", result.RecordCount))
	for _, report := range result.Reports {
		sb.WriteString("\n")
		writeReport(&sb, report)
	}
	for _, checkErr := range result.Errors {
		sb.WriteString("\n")
		sb.WriteString(fmt.Sprintf("✗ %s check failed (%s)\n", checkErr.Rule, checkErr.Kind))
		sb.WriteString(fmt.Sprintf("  %s\n", checkErr.Message))
	}

	p.printBox(title, strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPhotoResult outputs the duplicate photo check result.
func (p *Printer) PrintPhotoResult(result types.PhotoResult) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Images: %d\n\n", result.ImageCount))
	if result.Report == nil {
		sb.WriteString("✅ NO DUPLICATE PHOTOS FOUND")
	} else {
		writeReport(&sb, *result.Report)
	}
	p.printBox("PHOTO SUBMISSIONS", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintSummary outputs the totals for the whole run.
func (p *Printer) PrintSummary(run *types.RunResult) {
	if run == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Run:        %s\n", run.RunID))
	sb.WriteString(fmt.Sprintf("Directory:  %s\n", run.DataDirectory))
	sb.WriteString(fmt.Sprintf("Files:      %d\n", len(run.Files)))
	sb.WriteString(fmt.Sprintf("Images:     %d\n", run.Photos.ImageCount))
	sb.WriteString(fmt.Sprintf("Violations: %d\n", run.ViolationCount()))
	sb.WriteString(fmt.Sprintf("Errors:     %d", run.ErrorCount()))

	p.printBox("VALIDATION SUMMARY", sb.String())
}

func writeReport(sb *strings.Builder, report types.ViolationReport) {
	if !report.HasViolations() {
		sb.WriteString(fmt.Sprintf("✅ %s: no violations\n", report.Rule))
		return
	}

	sb.WriteString(fmt.Sprintf("⚠ %s (%d)\n", report.Rule, len(report.DataPoint)))
	sb.WriteString(fmt.Sprintf("  %s\n", report.ViolatedRule))

	count := min(len(report.DataPoint), maxItemsToShow)
	for i := 0; i < count; i++ {
		sb.WriteString(fmt.Sprintf("  • %s\n", summarizeDataPoint(report.DataPoint[i])))
	}
	if len(report.DataPoint) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(report.DataPoint)-maxItemsToShow))
	}
}

// summarizeDataPoint renders a data point on one line: records show their
// farm and crop, strings are printed as they are.
func summarizeDataPoint(item any) string {
	switch v := item.(type) {
	case string:
		return v
	case *types.Measurement:
		farmID, _ := v.Get(types.FieldFarmID)
		crop, _ := v.Get(types.FieldCrop)
		dry, _ := v.Get(types.FieldDryWeight)
		return fmt.Sprintf("farm %v / %v (dry %v)", farmID, crop, dry)
	default:
		encoded, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprintf("%v", v)
		}
		return string(encoded)
	}
}
