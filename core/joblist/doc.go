// Package joblist runs line-oriented batch job files.
//
// A job list holds one job per line, fields separated by whitespace.
// Lines starting with '#' are comments; blank lines are ignored. Both
// still count toward the 1-based line numbers used in error reports,
// so a report always points at the physical line in the file.
//
// A run never stops at a failing job: the failure is logged with its
// line number and the remaining lines still execute. The caller gets
// the totals back as Stats and decides what the process exit means.
//
// # Usage
//
//	runner := joblist.NewRunner(log, 2, func(fields []string) error {
//	    return svc.MergeInto(fields[0], fields[1])
//	})
//	stats, err := runner.RunFile("txd-merge.txt")
package joblist
