package progress

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/schollz/progressbar/v3"
)

// Reporter provides progress feedback while a character is generated.
type Reporter interface {
	Start(total int)
	Update(current int, message string)
	Finish()
}

// NewReporter returns a TerminalReporter if running in an interactive terminal,
// or a CIReporter if the CI environment variable is set.
func NewReporter(w io.Writer) Reporter {
	if os.Getenv("CI") != "" || os.Getenv("GITHUB_ACTIONS") != "" {
		return &CIReporter{w: w}
	}
	return &TerminalReporter{w: w}
}

// TerminalReporter displays a progress bar in the terminal.
type TerminalReporter struct {
	w   io.Writer
	bar *progressbar.ProgressBar
}

func (r *TerminalReporter) Start(total int) {
	r.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(r.w),
		progressbar.OptionSetDescription("Generating character"),
		progressbar.OptionSetWidth(40),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (r *TerminalReporter) Update(current int, message string) {
	if r.bar != nil {
		r.bar.Describe(message)
		_ = r.bar.Set(current)
	}
}

func (r *TerminalReporter) Finish() {
	if r.bar != nil {
		_ = r.bar.Finish()
	}
}

// CIReporter prints line-by-line progress suitable for CI logs.
type CIReporter struct {
	w     io.Writer
	total int
}

func (r *CIReporter) Start(total int) {
	r.total = total
	fmt.Fprintf(r.w, "Starting character generation (%d steps)\n", total)
}

func (r *CIReporter) Update(current int, message string) {
	fmt.Fprintf(r.w, "[%d/%d] %s\n", current, r.total, message)
}

func (r *CIReporter) Finish() {
	fmt.Fprintln(r.w, "Character generation complete")
}

// Steps is the number of progress steps Track reports for one generation.
const Steps = 10

// stages are the messages shown as a generation advances.
var stages = []string{
	"Rolling attributes",
	"Drafting the portrait",
	"Writing the profile",
}

// Track reports the progress of a generation that started at start and is
// expected to take delay, until done is closed or ctx ends. Progress is
// estimated from elapsed time and held one step short until done closes.
func Track(ctx context.Context, r Reporter, done <-chan struct{}, start time.Time, delay time.Duration) error {
	r.Start(Steps)
	defer r.Finish()

	tick := delay / Steps
	if tick <= 0 {
		tick = time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	last := -1
	for {
		select {
		case <-done:
			r.Update(Steps, "Done")
			return nil
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			step := estimate(time.Since(start), delay)
			if step != last {
				r.Update(step, stageFor(step))
				last = step
			}
		}
	}
}

// estimate maps elapsed time to a step in [0, Steps-1].
func estimate(elapsed, delay time.Duration) int {
	if delay <= 0 {
		return Steps - 1
	}
	step := int(int64(Steps) * int64(elapsed) / int64(delay))
	return min(max(step, 0), Steps-1)
}

func stageFor(step int) string {
	i := step * len(stages) / Steps
	return stages[min(i, len(stages)-1)]
}
