package sqlite

import (
	"context"
	"database/sql"
	"reflect"
	"testing"
	"time"

	"netmodel/internal/rdf"
	"netmodel/internal/repository"
)

var _ repository.Repository = (*Repository)(nil)

// ============================================================================
// Test Helpers
// ============================================================================

// newTestRepo creates an in-memory SQLite repository for testing
func newTestRepo(t *testing.T) *Repository {
	t.Helper()
	repo, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test repository: %v", err)
	}

	t.Cleanup(func() {
		repo.Close()
	})
	return repo
}

// assertNoError fails the test if err is not nil
func assertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

// assertEqual fails the test if expected != actual
func assertEqual(t *testing.T, expected, actual interface{}) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Fatalf("expected %v, got %v", expected, actual)
	}
}

// testTriples returns a small router-and-subnet triple set
func testTriples() []rdf.Triple {
	vocab := rdf.DefaultVocabulary()
	router := vocab.Node("R1")
	subnet := vocab.Node("Subnet_10.0.0.0_24")

	return []rdf.Triple{
		{Subject: router, Predicate: rdf.RDFType, Object: rdf.Ref(vocab.Class(rdf.ClassRouter))},
		{Subject: router, Predicate: rdf.RDFSLabel, Object: rdf.Text("R1")},
		{Subject: router, Predicate: vocab.Prop(rdf.PropHWStatus), Object: rdf.Text("ON")},
		{Subject: router, Predicate: vocab.Prop(rdf.PropRoutesSubnet), Object: rdf.Ref(subnet)},
		{Subject: subnet, Predicate: rdf.RDFType, Object: rdf.Ref(vocab.Class(rdf.ClassSubnet))},
		{Subject: subnet, Predicate: rdf.RDFSLabel, Object: rdf.Text("Subnet_10.0.0.0_24")},
		{Subject: subnet, Predicate: vocab.Prop(rdf.PropSubnetCIDR), Object: rdf.TypedText("10.0.0.0/24")},
	}
}

// savedRun persists a run with the standard test triples and returns it
func savedRun(t *testing.T, repo *Repository, source string, startedAt time.Time) *repository.Run {
	t.Helper()

	triples := testTriples()
	run := repository.NewRun(source)
	run.StartedAt = startedAt
	run.EntityCount = 2
	run.TripleCount = len(triples)

	if err := repo.SaveRun(context.Background(), run, triples); err != nil {
		t.Fatalf("failed to save run: %v", err)
	}
	return run
}

// ============================================================================
// Helper Function Tests
// ============================================================================

func TestBoolPtrToNull(t *testing.T) {
	yes, no := true, false

	tests := []struct {
		name     string
		input    *bool
		expected sql.NullInt64
	}{
		{
			name:     "nil pointer",
			input:    nil,
			expected: sql.NullInt64{},
		},
		{
			name:     "true",
			input:    &yes,
			expected: sql.NullInt64{Int64: 1, Valid: true},
		},
		{
			name:     "false",
			input:    &no,
			expected: sql.NullInt64{Int64: 0, Valid: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := boolPtrToNull(tt.input)
			assertEqual(t, tt.expected, result)
		})
	}
}

func TestNullToBoolPtr(t *testing.T) {
	tests := []struct {
		name     string
		input    sql.NullInt64
		expected *bool
	}{
		{
			name:     "null",
			input:    sql.NullInt64{},
			expected: nil,
		},
		{
			name:     "non-zero",
			input:    sql.NullInt64{Int64: 1, Valid: true},
			expected: boolPtr(true),
		},
		{
			name:     "zero",
			input:    sql.NullInt64{Int64: 0, Valid: true},
			expected: boolPtr(false),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := nullToBoolPtr(tt.input)
			if tt.expected == nil {
				if result != nil {
					t.Fatalf("expected nil, got %v", *result)
				}
				return
			}
			if result == nil {
				t.Fatal("expected non-nil result")
			}
			assertEqual(t, *tt.expected, *result)
		})
	}
}

func boolPtr(b bool) *bool { return &b }

// ============================================================================
// Row Scanner Tests
// ============================================================================

func TestTripleRowToDomain(t *testing.T) {
	t.Run("reference object", func(t *testing.T) {
		row := tripleRow{
			Subject:    "http://www.example.org/network-instance#eth0",
			Predicate:  "http://www.example.org/network-ontology#BelongsToNode",
			ObjectKind: "ref",
			ObjectIRI:  sql.NullString{String: "http://www.example.org/network-instance#R1", Valid: true},
		}

		triple := row.toDomain()
		assertEqual(t, rdf.IRI("http://www.example.org/network-instance#eth0"), triple.Subject)
		assertEqual(t, true, triple.Object.IsRef())
		assertEqual(t, rdf.IRI("http://www.example.org/network-instance#R1"), triple.Object.IRI)
	})

	t.Run("plain literal", func(t *testing.T) {
		row := tripleRow{
			Subject:    "http://www.example.org/network-instance#eth0",
			Predicate:  "http://www.example.org/network-ontology#HWStatus",
			ObjectKind: "literal",
			ObjectValue: sql.NullString{
				String: "ON",
				Valid:  true,
			},
		}

		triple := row.toDomain()
		assertEqual(t, rdf.Text("ON"), triple.Object)
	})

	t.Run("typed literal", func(t *testing.T) {
		row := tripleRow{
			Subject:        "http://www.example.org/network-instance#Subnet_10.0.0.0_24",
			Predicate:      "http://www.example.org/network-ontology#subnetCidr",
			ObjectKind:     "literal",
			ObjectValue:    sql.NullString{String: "10.0.0.0/24", Valid: true},
			ObjectDatatype: sql.NullString{String: string(rdf.XSDString), Valid: true},
		}

		triple := row.toDomain()
		assertEqual(t, rdf.TypedText("10.0.0.0/24"), triple.Object)
	})
}

func TestTripleInsertArgs(t *testing.T) {
	t.Run("reference object", func(t *testing.T) {
		triple := rdf.Triple{
			Subject:   "s",
			Predicate: "p",
			Object:    rdf.Ref("o"),
		}

		args := tripleInsertArgs("run1", triple)
		assertEqual(t, 7, len(args))
		assertEqual(t, "run1", args[0])
		assertEqual(t, "s", args[1])
		assertEqual(t, "p", args[2])
		assertEqual(t, "ref", args[3])
		assertEqual(t, sql.NullString{String: "o", Valid: true}, args[4])
		assertEqual(t, sql.NullString{}, args[5])
		assertEqual(t, sql.NullString{}, args[6])
	})

	t.Run("integer literal", func(t *testing.T) {
		triple := rdf.Triple{
			Subject:   "s",
			Predicate: "p",
			Object:    rdf.Integer(42),
		}

		args := tripleInsertArgs("run1", triple)
		assertEqual(t, "literal", args[3])
		assertEqual(t, sql.NullString{}, args[4])
		assertEqual(t, sql.NullString{String: "42", Valid: true}, args[5])
		assertEqual(t, sql.NullString{String: string(rdf.XSDInteger), Valid: true}, args[6])
	})

	t.Run("empty plain literal keeps its value", func(t *testing.T) {
		triple := rdf.Triple{
			Subject:   "s",
			Predicate: "p",
			Object:    rdf.Text(""),
		}

		args := tripleInsertArgs("run1", triple)
		assertEqual(t, sql.NullString{String: "", Valid: true}, args[5])
	})
}

// ============================================================================
// Run CRUD Tests
// ============================================================================

func TestSaveRun(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	t.Run("save and retrieve", func(t *testing.T) {
		startedAt := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		run := savedRun(t, repo, "topology.yaml", startedAt)

		retrieved, err := repo.GetRun(ctx, run.ID)
		assertNoError(t, err)
		if retrieved == nil {
			t.Fatal("expected run to be found")
		}
		assertEqual(t, run.ID, retrieved.ID)
		assertEqual(t, "topology.yaml", retrieved.Source)
		assertEqual(t, 2, retrieved.EntityCount)
		assertEqual(t, len(testTriples()), retrieved.TripleCount)
		assertEqual(t, 0, retrieved.FailureCount)
		if !retrieved.StartedAt.Equal(startedAt) {
			t.Fatalf("expected start time %v, got %v", startedAt, retrieved.StartedAt)
		}
		if retrieved.Conforms != nil {
			t.Fatal("expected unchecked verdict for an unchecked run")
		}
	})

	t.Run("conformance verdict survives", func(t *testing.T) {
		checked := repository.NewRun("checked.yaml")
		checked.SetConforms(true)
		assertNoError(t, repo.SaveRun(ctx, checked, nil))

		retrieved, err := repo.GetRun(ctx, checked.ID)
		assertNoError(t, err)
		if retrieved.Conforms == nil || !*retrieved.Conforms {
			t.Fatal("expected conforming verdict to survive the round-trip")
		}
	})

	t.Run("duplicate run ID fails", func(t *testing.T) {
		run := savedRun(t, repo, "dup.yaml", time.Now().UTC())
		err := repo.SaveRun(ctx, run, nil)
		if err == nil {
			t.Fatal("expected error saving duplicate run")
		}
	})
}

func TestGetRun(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	t.Run("get existing run", func(t *testing.T) {
		run := savedRun(t, repo, "topology.yaml", time.Now().UTC())

		retrieved, err := repo.GetRun(ctx, run.ID)
		assertNoError(t, err)
		if retrieved == nil {
			t.Fatal("expected run to be found")
		}
		assertEqual(t, run.ID, retrieved.ID)
	})

	t.Run("get non-existent run returns nil", func(t *testing.T) {
		retrieved, err := repo.GetRun(ctx, "nonexistent")
		assertNoError(t, err)
		if retrieved != nil {
			t.Fatalf("expected nil, got %+v", retrieved)
		}
	})
}

func TestListRuns(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	first := savedRun(t, repo, "first.yaml", base)
	second := savedRun(t, repo, "second.yaml", base.Add(time.Minute))
	third := savedRun(t, repo, "third.yaml", base.Add(2*time.Minute))

	t.Run("list all newest first", func(t *testing.T) {
		runs, err := repo.ListRuns(ctx, 0)
		assertNoError(t, err)
		assertEqual(t, 3, len(runs))
		assertEqual(t, third.ID, runs[0].ID)
		assertEqual(t, second.ID, runs[1].ID)
		assertEqual(t, first.ID, runs[2].ID)
	})

	t.Run("limit caps the result", func(t *testing.T) {
		runs, err := repo.ListRuns(ctx, 2)
		assertNoError(t, err)
		assertEqual(t, 2, len(runs))
		assertEqual(t, third.ID, runs[0].ID)
	})

	t.Run("empty store lists nothing", func(t *testing.T) {
		empty := newTestRepo(t)
		runs, err := empty.ListRuns(ctx, 0)
		assertNoError(t, err)
		assertEqual(t, 0, len(runs))
	})
}

func TestGetTriples(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	run := savedRun(t, repo, "topology.yaml", time.Now().UTC())

	t.Run("triples survive the round-trip", func(t *testing.T) {
		stored, err := repo.GetTriples(ctx, run.ID)
		assertNoError(t, err)

		want := rdf.NewGraph(rdf.DefaultVocabulary())
		for _, triple := range testTriples() {
			want.Add(triple)
		}
		got := rdf.NewGraph(rdf.DefaultVocabulary())
		for _, triple := range stored {
			got.Add(triple)
		}

		if !got.Equal(want) {
			t.Fatalf("stored triples differ from saved ones:\nwant %d triples, got %d", want.Len(), got.Len())
		}
	})

	t.Run("unknown run has no triples", func(t *testing.T) {
		stored, err := repo.GetTriples(ctx, "nonexistent")
		assertNoError(t, err)
		assertEqual(t, 0, len(stored))
	})
}

func TestDeleteRun(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(t)

	t.Run("delete existing run", func(t *testing.T) {
		run := savedRun(t, repo, "topology.yaml", time.Now().UTC())

		assertNoError(t, repo.DeleteRun(ctx, run.ID))

		retrieved, err := repo.GetRun(ctx, run.ID)
		assertNoError(t, err)
		if retrieved != nil {
			t.Fatal("expected run to be gone")
		}

		triples, err := repo.GetTriples(ctx, run.ID)
		assertNoError(t, err)
		assertEqual(t, 0, len(triples))
	})

	t.Run("delete non-existent run fails", func(t *testing.T) {
		err := repo.DeleteRun(ctx, "nonexistent")
		if err == nil {
			t.Fatal("expected error deleting non-existent run")
		}
	})
}

// ============================================================================
// Persistence Tests
// ============================================================================

func TestOnDiskRoundTrip(t *testing.T) {
	ctx := context.Background()
	dbPath := t.TempDir() + "/runs.db"

	repo, err := New(dbPath)
	assertNoError(t, err)

	run := savedRun(t, repo, "topology.yaml", time.Now().UTC())
	assertNoError(t, repo.Close())

	// Reopen and verify the run survived
	reopened, err := New(dbPath)
	assertNoError(t, err)
	defer reopened.Close()

	retrieved, err := reopened.GetRun(ctx, run.ID)
	assertNoError(t, err)
	if retrieved == nil {
		t.Fatal("expected run to survive reopen")
	}
	assertEqual(t, run.ID, retrieved.ID)

	triples, err := reopened.GetTriples(ctx, run.ID)
	assertNoError(t, err)
	assertEqual(t, len(testTriples()), len(triples))
}
