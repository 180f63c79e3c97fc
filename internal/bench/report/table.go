package report

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
)

func WriteTable(r *Report, w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)

	fmt.Fprintf(tw, "\n=== Expression Suite: %s ===\n", r.Meta.Suite)
	fmt.Fprintf(tw, "warmup=%d runs=%d\n\n", r.Meta.WarmupRuns, r.Meta.Runs)

	writeSummaryTable(tw, r.Summary)
	writeCaseTable(tw, r.Cases)

	return tw.Flush()
}

func writeSummaryTable(tw *tabwriter.Writer, summary []EngineReport) {
	fmt.Fprintf(tw, "Summary\n\n")
	writeRow(tw, "Engine", "Cases", "Passed", "Failed", "Errors", "Pass %", "p50", "p90", "p99", "Mean")
	writeSeparator(tw, 10)

	for _, s := range summary {
		writeRow(tw,
			s.Engine,
			fmt.Sprintf("%d", s.Cases),
			fmt.Sprintf("%d", s.Passed),
			fmt.Sprintf("%d", s.Failed),
			fmt.Sprintf("%d", s.Errors),
			fmt.Sprintf("%.2f", s.PassRate),
			fmtMicros(s.Latency.P50Us),
			fmtMicros(s.Latency.P90Us),
			fmtMicros(s.Latency.P99Us),
			fmtMicros(s.Latency.MeanUs),
		)
	}
	fmt.Fprintln(tw)
}

func writeCaseTable(tw *tabwriter.Writer, cases []Entry) {
	fmt.Fprintf(tw, "Cases\n\n")
	writeRow(tw, "Case", "Engine", "Expression", "Expected", "Got", "p50", "Status")
	writeSeparator(tw, 7)

	for _, e := range cases {
		writeRow(tw,
			e.CaseID,
			e.Engine,
			quote(e.Expression),
			e.Expected,
			e.Got,
			fmtMicros(e.Latency.P50Us),
			status(e),
		)
	}
	fmt.Fprintln(tw)
}

func status(e Entry) string {
	switch {
	case e.Error != "":
		return "ERR"
	case e.Inconsistent:
		return "FLAKY"
	case e.Passed:
		return "OK"
	default:
		return "FAIL"
	}
}

func writeRow(tw *tabwriter.Writer, cols ...string) {
	fmt.Fprintln(tw, strings.Join(cols, "\t"))
}

func writeSeparator(tw *tabwriter.Writer, n int) {
	sep := make([]string, n)
	for i := range sep {
		sep[i] = "---"
	}
	writeRow(tw, sep...)
}

func quote(s string) string {
	if s == "" {
		return `""`
	}
	return s
}

func fmtMicros(us float64) string {
	switch {
	case us == 0:
		return "-"
	case us < 1000:
		return fmt.Sprintf("%.1fµs", us)
	case us < 1_000_000:
		return fmt.Sprintf("%.2fms", us/1000)
	default:
		return fmt.Sprintf("%.2fs", us/1_000_000)
	}
}
