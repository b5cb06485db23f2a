// Package doctor runs environment diagnostics for folio: configuration,
// content directories, backups, the listen address and the editor.
package doctor

import "time"

// Check is one diagnostic. Run fills Status, Message and optionally
// Details and FixHint; the runner sets Name and Category.
type Check interface {
	Name() string
	Category() string
	Run() *CheckResult
}

// Runner runs checks in registration order.
type Runner struct {
	checks []Check
	now    func() time.Time
}

// NewRunner creates a runner over checks.
func NewRunner(checks ...Check) *Runner {
	return &Runner{checks: checks, now: time.Now}
}

// AddCheck appends c to the run.
func (r *Runner) AddCheck(c Check) {
	r.checks = append(r.checks, c)
}

// Run executes every check and returns the report.
func (r *Runner) Run() *Report {
	report := &Report{
		Timestamp: r.now().UTC(),
		Results:   make([]*CheckResult, 0, len(r.checks)),
	}
	for _, check := range r.checks {
		result := check.Run()
		result.Name = check.Name()
		result.Category = check.Category()
		report.Results = append(report.Results, result)
		report.Summary.add(result.Status)
	}
	return report
}

// Report is the outcome of one Run.
type Report struct {
	Timestamp time.Time      `json:"timestamp"`
	Results   []*CheckResult `json:"results"`
	Summary   Summary        `json:"summary"`
}

// Worst returns the most severe status in the report, SeverityPass when
// it is empty.
func (r *Report) Worst() Severity {
	switch {
	case r.Summary.Errors > 0:
		return SeverityError
	case r.Summary.Warnings > 0:
		return SeverityWarning
	case r.Summary.Info > 0:
		return SeverityInfo
	default:
		return SeverityPass
	}
}

// AtLeast returns the results whose status is floor or worse, in run order.
func (r *Report) AtLeast(floor Severity) []*CheckResult {
	var out []*CheckResult
	for _, res := range r.Results {
		if res.Status >= floor {
			out = append(out, res)
		}
	}
	return out
}
