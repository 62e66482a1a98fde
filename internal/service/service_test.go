package service

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"netmodel/internal/conformance"
	"netmodel/internal/domain"
	"netmodel/internal/repository/sqlite"
	"netmodel/internal/rdf"
	"netmodel/internal/sample"
)

func newTestRepo(t *testing.T) *sqlite.Repository {
	t.Helper()
	repo, err := sqlite.New(":memory:")
	if err != nil {
		t.Fatalf("failed to open test repository: %v", err)
	}
	t.Cleanup(func() { repo.Close() })
	return repo
}

func TestPipelineRun(t *testing.T) {
	ctx := context.Background()
	vocab := rdf.DefaultVocabulary()
	repo := newTestRepo(t)

	p := New(vocab).
		WithChecker(conformance.NewChecker(vocab)).
		WithRepository(repo)

	entities := sample.Network()
	result, err := p.Run(ctx, "sample", entities)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.Report.Entities != len(entities) {
		t.Errorf("expected %d entities reported, got %d", len(entities), result.Report.Entities)
	}
	if result.Report.HasFailures() {
		t.Errorf("unexpected emission failures: %v", result.Report.Failures)
	}
	if result.Graph.Len() == 0 {
		t.Fatal("expected a non-empty graph")
	}
	if result.Run.TripleCount != result.Graph.Len() {
		t.Errorf("expected run to count %d triples, got %d", result.Graph.Len(), result.Run.TripleCount)
	}

	if result.Conformance == nil {
		t.Fatal("expected a conformance result")
	}
	if !result.Conformance.Conforms {
		t.Errorf("expected the sample network to conform:\n%s", result.Conformance.Report())
	}
	if result.Run.Conforms == nil || !*result.Run.Conforms {
		t.Error("expected the run record to carry the verdict")
	}

	stored, err := repo.GetRun(ctx, result.Run.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stored == nil {
		t.Fatal("expected the run to be persisted")
	}
	triples, err := repo.GetTriples(ctx, result.Run.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(triples) != result.Graph.Len() {
		t.Errorf("expected %d stored triples, got %d", result.Graph.Len(), len(triples))
	}
}

func TestPipelineEmitOnly(t *testing.T) {
	p := New(rdf.DefaultVocabulary())

	result, err := p.Run(context.Background(), "sample", sample.Network())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Conformance != nil {
		t.Error("expected no conformance result without a checker")
	}
	if result.Run.Conforms != nil {
		t.Error("expected an unchecked run verdict")
	}
}

func TestPipelineFailureIsolation(t *testing.T) {
	p := New(rdf.DefaultVocabulary())

	bad := &domain.Iface{
		BaseAttributes: domain.BaseAttributes{ID: "bad0"},
		PortMode:       domain.PortModeAccess,
		AllowedVLANs:   []int{10},
	}
	entities := append(sample.Network(), bad)

	result, err := p.Run(context.Background(), "sample", entities)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Report.Failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(result.Report.Failures))
	}
	if result.Report.Failures[0].EntityID != "bad0" {
		t.Errorf("expected bad0 to fail, got %s", result.Report.Failures[0].EntityID)
	}
	if result.Run.FailureCount != 1 {
		t.Errorf("expected the run to count the failure, got %d", result.Run.FailureCount)
	}
	if result.Graph.Len() == 0 {
		t.Error("expected the healthy entities to emit")
	}
}

func TestPipelineExport(t *testing.T) {
	p := New(rdf.DefaultVocabulary())
	result, err := p.Run(context.Background(), "sample", sample.Network())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, format := range []string{"turtle", "ntriples", "json"} {
		t.Run(format, func(t *testing.T) {
			var buf bytes.Buffer
			if err := p.Export(result.Graph, format, &buf); err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if buf.Len() == 0 {
				t.Error("expected serialized output")
			}
		})
	}

	t.Run("unknown format", func(t *testing.T) {
		var buf bytes.Buffer
		if err := p.Export(result.Graph, "xml", &buf); err == nil {
			t.Error("expected error for unknown format")
		}
	})
}

func TestPipelineExportTo(t *testing.T) {
	p := New(rdf.DefaultVocabulary())
	result, err := p.Run(context.Background(), "sample", sample.Network())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path := filepath.Join(t.TempDir(), "out.ttl")
	if err := p.ExportTo(result.Graph, "turtle", path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read output: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected the output file to have content")
	}
}
