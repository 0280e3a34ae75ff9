package errors

import (
	"fmt"
	"io"
)

// Reporter formats collected batch failures for display
type Reporter struct {
	collector *Collector
	writer    io.Writer
}

// NewReporter creates a new Reporter
func NewReporter(collector *Collector, writer io.Writer) *Reporter {
	return &Reporter{
		collector: collector,
		writer:    writer,
	}
}

// PrintSummary prints a summary of all collected failures
func (r *Reporter) PrintSummary() {
	fmt.Fprintf(r.writer, "\n")
	fmt.Fprintf(r.writer, "========================================\n")
	fmt.Fprintf(r.writer, "Error Summary\n")
	fmt.Fprintf(r.writer, "========================================\n")
	fmt.Fprintf(r.writer, "Total Errors:      %d\n", r.collector.Count())
	fmt.Fprintf(r.writer, "Missing Countries: %d\n", r.collector.NotFoundCount())
	fmt.Fprintf(r.writer, "========================================\n")
}

// PrintDetailed prints every collected failure, up to maxErrors (0 = all)
func (r *Reporter) PrintDetailed(maxErrors int) {
	entries := r.collector.Entries()

	if len(entries) == 0 {
		fmt.Fprintf(r.writer, "No errors to report.\n")
		return
	}

	count := len(entries)
	if maxErrors > 0 && maxErrors < count {
		count = maxErrors
	}

	for i := 0; i < count; i++ {
		entry := entries[i]
		fmt.Fprintf(r.writer, "  %-24s %v\n", entry.Country, entry.Err)
	}

	if maxErrors > 0 && len(entries) > maxErrors {
		fmt.Fprintf(r.writer, "  ... and %d more errors\n", len(entries)-maxErrors)
	}
}
