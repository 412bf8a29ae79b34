package app

import (
	"fmt"
	"io"
	"strings"

	"zonemigrate/internal/zone"
)

// PrintReport summarizes one parsed zone transfer: totals, per-type counts,
// and every line that matched no known record type.
func PrintReport(w io.Writer, set *zone.RecordSet) {
	fmt.Fprintf(w, "Lines considered: %d\n", set.Considered)
	fmt.Fprintf(w, "Valid records:    %d\n", set.ValidCount)
	fmt.Fprintf(w, "Invalid records:  %d\n", set.InvalidCount)
	for _, t := range set.Types() {
		fmt.Fprintf(w, "  records[%s]=%d\n", t, len(set.Records(t)))
	}
	if len(set.Unclassified) > 0 {
		fmt.Fprintf(w, "Unclassified lines (%d):\n", len(set.Unclassified))
		for _, line := range set.Unclassified {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
	fmt.Fprintln(w, strings.Repeat("-", 72))
}
