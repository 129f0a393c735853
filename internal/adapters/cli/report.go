package cli

import (
	"fmt"
	"time"
)

// GenerateReport collects the pages of one run and builds the closing
// summary line.
type GenerateReport struct {
	startTime time.Time
	pages     []string
	outputDir string
	dryRun    bool
}

func NewGenerateReport(outputDir string, dryRun bool) *GenerateReport {
	return &GenerateReport{
		startTime: time.Now(),
		pages:     make([]string, 0),
		outputDir: outputDir,
		dryRun:    dryRun,
	}
}

func (r *GenerateReport) AddPage(path string) {
	r.pages = append(r.pages, path)
}

func (r *GenerateReport) Summary() string {
	verb := "Generated"
	if r.dryRun {
		verb = "Would generate"
	}

	noun := "pages"
	if len(r.pages) == 1 {
		noun = "page"
	}

	summary := fmt.Sprintf("%s %d %s", verb, len(r.pages), noun)
	if r.outputDir != "" {
		summary += " in " + r.outputDir
	}
	return summary + " (" + formatDuration(time.Since(r.startTime)) + ")"
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.1fs", float64(d)/float64(time.Second))
}
