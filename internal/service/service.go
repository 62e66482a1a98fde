package service

import (
	"context"
	"fmt"
	"io"
	"os"

	"netmodel/internal/codec"
	"netmodel/internal/conformance"
	"netmodel/internal/domain"
	"netmodel/internal/emitter"
	"netmodel/internal/rdf"
	"netmodel/internal/repository"
)

// Pipeline emits entity collections and fans the result out to the
// optional collaborators attached to it.
type Pipeline struct {
	vocab   rdf.Vocabulary
	checker *conformance.Checker
	repo    repository.Repository
}

// New creates a pipeline emitting into the given vocabulary's
// namespaces. Without further options it only emits.
func New(vocab rdf.Vocabulary) *Pipeline {
	return &Pipeline{vocab: vocab}
}

// WithChecker makes every run check its graph against the shapes.
func (p *Pipeline) WithChecker(c *conformance.Checker) *Pipeline {
	p.checker = c
	return p
}

// WithRepository makes every run persist itself and its triples.
func (p *Pipeline) WithRepository(repo repository.Repository) *Pipeline {
	p.repo = repo
	return p
}

// RunResult is the outcome of one pipeline run.
type RunResult struct {
	Run         *repository.Run
	Graph       *rdf.Graph
	Report      *emitter.Report
	Conformance *conformance.Result // nil when the run did not check
}

// Run emits the entities into a fresh graph, checks and persists it when
// the pipeline is configured to, and returns everything produced.
//
// Emission failures do not abort the run; they are available on the
// report and counted on the run record. A persistence failure does.
func (p *Pipeline) Run(ctx context.Context, source string, entities []domain.Entity) (*RunResult, error) {
	graph, report := emitter.New(p.vocab).EmitAll(entities)

	run := repository.NewRun(source)
	run.EntityCount = report.Entities
	run.TripleCount = graph.Len()
	run.FailureCount = len(report.Failures)

	var check *conformance.Result
	if p.checker != nil {
		check = p.checker.Check(graph)
		run.SetConforms(check.Conforms)
	}

	if p.repo != nil {
		if err := p.repo.SaveRun(ctx, run, graph.Triples()); err != nil {
			return nil, fmt.Errorf("failed to save run: %w", err)
		}
	}

	return &RunResult{
		Run:         run,
		Graph:       graph,
		Report:      report,
		Conformance: check,
	}, nil
}

// Export serializes the graph in the named format.
func (p *Pipeline) Export(g *rdf.Graph, format string, w io.Writer) error {
	exporter, err := codec.ExporterFor(format)
	if err != nil {
		return err
	}
	return exporter.Export(g, w)
}

// ExportTo serializes the graph to a file path. An empty path or "-"
// writes to stdout.
func (p *Pipeline) ExportTo(g *rdf.Graph, format, path string) error {
	if path == "" || path == "-" {
		return p.Export(g, format, os.Stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := p.Export(g, format, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
