package repository

import (
	"context"
	"time"

	"netmodel/internal/rdf"

	"github.com/google/uuid"
)

// Run records a single pass of the emission pipeline
type Run struct {
	ID           string    `json:"id"`
	Source       string    `json:"source"`
	StartedAt    time.Time `json:"started_at"`
	EntityCount  int       `json:"entity_count"`
	TripleCount  int       `json:"triple_count"`
	FailureCount int       `json:"failure_count"`
	Conforms     *bool     `json:"conforms,omitempty"`
}

// NewRun creates a run record with a fresh identifier
func NewRun(source string) *Run {
	return &Run{
		ID:        uuid.NewString(),
		Source:    source,
		StartedAt: time.Now().UTC(),
	}
}

// SetConforms records the conformance verdict for this run
func (r *Run) SetConforms(conforms bool) {
	r.Conforms = &conforms
}

// ConformanceLabel renders the verdict for display.
// A run that was never checked reports "unchecked".
func (r *Run) ConformanceLabel() string {
	switch {
	case r.Conforms == nil:
		return "unchecked"
	case *r.Conforms:
		return "pass"
	default:
		return "fail"
	}
}

// Repository defines the interface for run history access
type Repository interface {
	// SaveRun persists a run together with the triples it produced
	SaveRun(ctx context.Context, run *Run, triples []rdf.Triple) error

	// GetRun retrieves a single run by ID; nil when not found
	GetRun(ctx context.Context, id string) (*Run, error)

	// ListRuns returns runs newest first; limit <= 0 means all
	ListRuns(ctx context.Context, limit int) ([]*Run, error)

	// GetTriples returns the stored triples of a run in stored order
	GetTriples(ctx context.Context, runID string) ([]rdf.Triple, error)

	// DeleteRun removes a run and its triples
	DeleteRun(ctx context.Context, id string) error

	// Close releases resources
	Close() error
}
