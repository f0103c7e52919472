package pipeline

import (
	"time"

	"github.com/google/uuid"
)

// Outcome summarizes how a run finished.
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeDegraded Outcome = "degraded"
	OutcomeFailed   Outcome = "failed"
)

// IssueSeverity distinguishes recoverable problems from run-ending ones.
type IssueSeverity string

const (
	SeverityWarning IssueSeverity = "warning"
	SeverityError   IssueSeverity = "error"
)

// Issue is one recorded problem, always tied to the stage and source path it
// came from so the orchestration layer can list every failure.
type Issue struct {
	Stage    Stage
	Path     string
	Severity IssueSeverity
	Err      error
}

// RunReport accumulates everything observed during one generation run.
// Recoverable errors land here instead of aborting the run; the report is
// what the CLI translates into a process exit code.
type RunReport struct {
	RunID          string
	StartedAt      time.Time
	FinishedAt     time.Time
	StageDurations map[Stage]time.Duration
	Issues         []Issue
	PagesConverted int
	AssetsCopied   int
	Fatal          error
}

// NewRunReport creates an empty report with a fresh run ID.
func NewRunReport() *RunReport {
	return &RunReport{
		RunID:          uuid.NewString(),
		StartedAt:      time.Now(),
		StageDurations: make(map[Stage]time.Duration),
	}
}

// AddIssue records a recoverable problem.
func (r *RunReport) AddIssue(stage Stage, path string, severity IssueSeverity, err error) {
	r.Issues = append(r.Issues, Issue{Stage: stage, Path: path, Severity: severity, Err: err})
}

// Errors returns the recorded error-severity issues.
func (r *RunReport) Errors() []Issue {
	var out []Issue
	for _, issue := range r.Issues {
		if issue.Severity == SeverityError {
			out = append(out, issue)
		}
	}
	return out
}

// Outcome derives the run outcome: failed if a fatal error aborted the run,
// degraded if recoverable errors were recorded, success otherwise.
func (r *RunReport) Outcome() Outcome {
	if r.Fatal != nil {
		return OutcomeFailed
	}
	if len(r.Errors()) > 0 {
		return OutcomeDegraded
	}
	return OutcomeSuccess
}

// Finish stamps the end of the run.
func (r *RunReport) Finish() {
	r.FinishedAt = time.Now()
}
