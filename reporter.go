package timeit

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// Reporter writes human-readable summaries of recorded measurements.
// Headings are emphasized when the output is a terminal.
type Reporter struct {
	output io.Writer
	color  bool
}

// NewReporter creates a reporter writing to output.
func NewReporter(output io.Writer) *Reporter {
	r := &Reporter{output: output}
	if f, ok := output.(*os.File); ok {
		r.color = term.IsTerminal(int(f.Fd()))
	}
	return r
}

// Report writes a summary of f's most recent measurement under the given
// name. If f has not completed a measured Call, a single line saying so is
// written instead.
func (r *Reporter) Report(name string, f *Func) {
	timings := f.Timings()
	if len(timings) == 0 {
		fmt.Fprintf(r.output, "%s: no measurements\n", r.heading(name))
		return
	}

	var total time.Duration
	max := timings[0]
	for _, t := range timings {
		total += t
		if t > max {
			max = t
		}
	}
	avg := total / time.Duration(len(timings))

	fmt.Fprintf(r.output, "%s\n", r.heading(name))
	fmt.Fprintf(r.output, "  Trials:     %d\n", len(timings))
	fmt.Fprintf(r.output, "  Total time: %s\n", formatDuration(total))
	fmt.Fprintf(r.output, "  Min time:   %s\n", formatDuration(f.MinTime()))
	fmt.Fprintf(r.output, "  Avg time:   %s\n", formatDuration(avg))
	fmt.Fprintf(r.output, "  Max time:   %s\n", formatDuration(max))
}

func (r *Reporter) heading(name string) string {
	if r.color {
		return "\033[1m" + name + "\033[0m"
	}
	return name
}

// formatDuration formats a duration in a human-readable way, choosing an
// appropriate unit.
func formatDuration(d time.Duration) string {
	if d < time.Microsecond {
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
	if d < time.Millisecond {
		return fmt.Sprintf("%.2fµs", float64(d.Nanoseconds())/1000.0)
	}
	if d < time.Second {
		return fmt.Sprintf("%.2fms", float64(d.Nanoseconds())/1000000.0)
	}
	return fmt.Sprintf("%.2fs", d.Seconds())
}
