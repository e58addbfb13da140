package batch

import (
	"fmt"
	"strings"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/minigame-tools/confpatch/internal/models"
)

// FieldFailure records one field that could not be patched for a project
type FieldFailure struct {
	Field  models.Field `json:"field"`
	Reason string       `json:"reason"`
}

// ProjectResult itemizes the outcome of one project in a batch run
type ProjectResult struct {
	Project string `json:"project"`
	Path    string `json:"path"`

	// Changed lists fields whose new value was written
	Changed []models.Field `json:"changed,omitempty"`

	// Failed lists fields that could not be patched, with reason
	Failed []FieldFailure `json:"failed,omitempty"`

	// Unchanged is set when every requested value already matched and
	// nothing was written
	Unchanged bool `json:"unchanged,omitempty"`
}

func (pr *ProjectResult) markChanged(field models.Field) {
	for _, f := range pr.Changed {
		if f == field {
			return
		}
	}
	pr.Changed = append(pr.Changed, field)
}

func (pr *ProjectResult) fail(field models.Field, reason string) {
	pr.Failed = append(pr.Failed, FieldFailure{Field: field, Reason: reason})
}

// Report aggregates the per-project results of one batch run
type Report struct {
	RunID     string           `json:"runId"`
	CreatedAt time.Time        `json:"createdAt"`
	Results   []*ProjectResult `json:"results"`
}

// NewReport creates an empty report with a fresh run ID
func NewReport() *Report {
	id, err := gonanoid.New(8)
	if err != nil {
		id = "unknown"
	}

	return &Report{
		RunID:     id,
		CreatedAt: time.Now(),
	}
}

// ChangedCount returns the number of projects with at least one written
// field
func (r *Report) ChangedCount() int {
	count := 0
	for _, res := range r.Results {
		if len(res.Changed) > 0 {
			count++
		}
	}
	return count
}

// FailedCount returns the number of projects with at least one failed
// field
func (r *Report) FailedCount() int {
	count := 0
	for _, res := range r.Results {
		if len(res.Failed) > 0 {
			count++
		}
	}
	return count
}

// UnchangedCount returns the number of projects where nothing was written
func (r *Report) UnchangedCount() int {
	count := 0
	for _, res := range r.Results {
		if res.Unchanged {
			count++
		}
	}
	return count
}

// HasFailures reports whether any field failed anywhere in the batch
func (r *Report) HasFailures() bool {
	return r.FailedCount() > 0
}

// Summary renders a one-line outcome for the status bar. A project can
// count as both updated and failed when only some of its fields landed.
func (r *Report) Summary() string {
	return fmt.Sprintf("%d project(s) updated, %d failed, %d unchanged",
		r.ChangedCount(), r.FailedCount(), r.UnchangedCount())
}

// Describe renders a multi-line plain text account of the run
func (r *Report) Describe() string {
	var b strings.Builder
	for _, res := range r.Results {
		switch {
		case len(res.Failed) > 0:
			b.WriteString(fmt.Sprintf("✗ %s\n", res.Project))
			for _, failure := range res.Failed {
				b.WriteString(fmt.Sprintf("    %s: %s\n", failure.Field, failure.Reason))
			}
			for _, field := range res.Changed {
				b.WriteString(fmt.Sprintf("    %s: updated\n", field))
			}
		case res.Unchanged:
			b.WriteString(fmt.Sprintf("- %s (unchanged)\n", res.Project))
		default:
			fields := make([]string, len(res.Changed))
			for i, field := range res.Changed {
				fields[i] = field.String()
			}
			b.WriteString(fmt.Sprintf("✓ %s (%s)\n", res.Project, strings.Join(fields, ", ")))
		}
	}
	return b.String()
}
