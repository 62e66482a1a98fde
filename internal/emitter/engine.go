// Package emitter folds a collection of domain entities into a triple graph.
//
// Emission runs in two passes over the input, self pass first. The self pass
// writes every entity's intrinsic triples so each subject exists before any
// edge targets it; the relations pass then writes cross-references, which may
// point at entities anywhere in the collection because identities are
// computable without emission. Forward references and cycles need no
// topological ordering.
//
// A failing entity never aborts the batch. Each failure is captured in the
// run report and the entity is skipped for the remainder of the run.
package emitter

import (
	"fmt"

	"netmodel/internal/domain"
	"netmodel/internal/rdf"
)

// EmissionError wraps a single entity's failure during an emission pass
type EmissionError struct {
	EntityID string
	Err      error
}

// Error returns the failure with the entity that caused it
func (e *EmissionError) Error() string {
	return fmt.Sprintf("entity %s: %v", e.EntityID, e.Err)
}

// Unwrap returns the underlying cause
func (e *EmissionError) Unwrap() error {
	return e.Err
}

// Report summarizes one emission run
type Report struct {
	Entities int              `json:"entities"`
	Emitted  int              `json:"emitted"`
	Failures []*EmissionError `json:"-"`
}

// HasFailures reports whether any entity failed to emit
func (r *Report) HasFailures() bool {
	return len(r.Failures) > 0
}

// Engine emits entity collections into graphs under a fixed vocabulary
type Engine struct {
	vocab rdf.Vocabulary
}

// New creates an engine that emits into the given vocabulary's namespaces
func New(vocab rdf.Vocabulary) *Engine {
	return &Engine{vocab: vocab}
}

// EmitAll materializes the entities into a fresh graph and reports
// per-entity failures.
//
// An entity whose EmitSelf fails contributes nothing to the graph and is
// excluded from the relations pass, so a misconfigured entity yields exactly
// one failure. An entity failing only in the relations pass remains
// partially present: its intrinsic triples stay, its edges do not. The
// resulting triple set does not depend on input order.
func (e *Engine) EmitAll(entities []domain.Entity) (*rdf.Graph, *Report) {
	g := rdf.NewGraph(e.vocab)
	report := &Report{Entities: len(entities)}
	failed := make([]bool, len(entities))

	for idx, ent := range entities {
		if err := ent.EmitSelf(g); err != nil {
			failed[idx] = true
			report.Failures = append(report.Failures, &EmissionError{EntityID: ent.EntityID(), Err: err})
		}
	}

	for idx, ent := range entities {
		if failed[idx] {
			continue
		}
		if err := ent.EmitRelations(g); err != nil {
			failed[idx] = true
			report.Failures = append(report.Failures, &EmissionError{EntityID: ent.EntityID(), Err: err})
		}
	}

	for _, f := range failed {
		if !f {
			report.Emitted++
		}
	}
	return g, report
}
