package joblist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"
)

// MaxLineBytes caps the length of a single job line. A longer line is
// a read error that aborts the run, never a silently shortened job.
const MaxLineBytes = 1024 * 1024

// JobFunc runs one job parsed from a job line.
type JobFunc func(fields []string) error

// Stats aggregates the outcome of a run.
type Stats struct {
	// Jobs counts the lines that parsed and ran.
	Jobs int `json:"jobs"`
	// Failed counts the jobs whose JobFunc returned an error.
	Failed int `json:"failed"`
	// BadLines counts the lines with the wrong number of fields.
	BadLines int `json:"bad_lines"`
}

// Scan reads rd line by line and calls visit for every job line with
// its 1-based physical line number and whitespace-split fields. Lines
// starting with '#' and lines holding only whitespace are skipped but
// still count toward line numbers. An error from visit stops the scan.
func Scan(rd io.Reader, visit func(line int, fields []string) error) error {
	scanner := bufio.NewScanner(rd)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)

	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		if skippable(line) {
			continue
		}
		if err := visit(n, strings.Fields(line)); err != nil {
			return err
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read job list: %w", err)
	}
	return nil
}

func skippable(line string) bool {
	if strings.HasPrefix(line, "#") {
		return true
	}
	return strings.TrimSpace(line) == ""
}

// Runner executes the jobs of a line-oriented job list. A failing job
// is logged with its line number and the run moves on to the next line.
type Runner struct {
	logger *zap.Logger
	fields int
	run    JobFunc
}

// NewRunner creates a runner whose job lines hold exactly fields
// whitespace-separated fields.
func NewRunner(logger *zap.Logger, fields int, run JobFunc) *Runner {
	return &Runner{logger: logger, fields: fields, run: run}
}

// Run executes every job line read from rd and reports the run totals.
// The returned error covers reading rd only; job failures are counted,
// not returned.
func (r *Runner) Run(rd io.Reader) (Stats, error) {
	var stats Stats
	err := Scan(rd, func(line int, fields []string) error {
		if len(fields) != r.fields {
			stats.BadLines++
			r.logger.Error("Bad job line",
				zap.Int("line", line),
				zap.Int("fields", len(fields)),
				zap.Int("want", r.fields),
			)
			return nil
		}
		stats.Jobs++
		if err := r.run(fields); err != nil {
			stats.Failed++
			r.logger.Error("Job failed", zap.Int("line", line), zap.Error(err))
		}
		return nil
	})
	return stats, err
}

// RunFile opens the job list at path and runs it.
func (r *Runner) RunFile(path string) (Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return Stats{}, fmt.Errorf("failed to open job list %s: %w", path, err)
	}
	defer f.Close()

	return r.Run(f)
}
