package sqlite

import (
	"database/sql"
	"time"

	"netmodel/internal/rdf"
	"netmodel/internal/repository"
)

// ============================================================================
// Null Type Conversion Helpers
// ============================================================================

// nullToString safely converts sql.NullString to string
func nullToString(ns sql.NullString) string {
	if ns.Valid {
		return ns.String
	}
	return ""
}

// stringToNull safely converts string to sql.NullString
func stringToNull(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// nullToBoolPtr converts sql.NullInt64 to *bool (NULL means unchecked)
func nullToBoolPtr(ni sql.NullInt64) *bool {
	if !ni.Valid {
		return nil
	}
	v := ni.Int64 != 0
	return &v
}

// boolPtrToNull converts *bool to sql.NullInt64
func boolPtrToNull(b *bool) sql.NullInt64 {
	if b == nil {
		return sql.NullInt64{}
	}
	var v int64
	if *b {
		v = 1
	}
	return sql.NullInt64{Int64: v, Valid: true}
}

// ============================================================================
// Run Row Scanner
// ============================================================================

// runRow holds all columns from a run query for scanning
type runRow struct {
	ID           string
	Source       string
	StartedAt    time.Time
	EntityCount  int
	TripleCount  int
	FailureCount int
	Conforms     sql.NullInt64
}

// scanArgs returns pointers to all fields for sql.Scan().
// MUST match runColumns order exactly.
func (r *runRow) scanArgs() []interface{} {
	return []interface{}{
		&r.ID,
		&r.Source,
		&r.StartedAt,
		&r.EntityCount,
		&r.TripleCount,
		&r.FailureCount,
		&r.Conforms,
	}
}

// toDomain converts the scanned row to a repository.Run
func (r *runRow) toDomain() *repository.Run {
	return &repository.Run{
		ID:           r.ID,
		Source:       r.Source,
		StartedAt:    r.StartedAt,
		EntityCount:  r.EntityCount,
		TripleCount:  r.TripleCount,
		FailureCount: r.FailureCount,
		Conforms:     nullToBoolPtr(r.Conforms),
	}
}

// runColumns returns the SELECT column list for run queries
const runColumns = `id, source, started_at, entity_count, triple_count, failure_count, conforms`

// ============================================================================
// Triple Row Scanner
// ============================================================================

// tripleRow holds all columns from a triple query for scanning
type tripleRow struct {
	Subject        string
	Predicate      string
	ObjectKind     string
	ObjectIRI      sql.NullString
	ObjectValue    sql.NullString
	ObjectDatatype sql.NullString
}

// scanArgs returns pointers to all fields for sql.Scan().
// MUST match tripleColumns order exactly.
func (r *tripleRow) scanArgs() []interface{} {
	return []interface{}{
		&r.Subject,
		&r.Predicate,
		&r.ObjectKind,
		&r.ObjectIRI,
		&r.ObjectValue,
		&r.ObjectDatatype,
	}
}

// toDomain converts the scanned row to an rdf.Triple
func (r *tripleRow) toDomain() rdf.Triple {
	obj := rdf.Object{Kind: rdf.ObjectKind(r.ObjectKind)}
	if obj.Kind == rdf.ObjectRef {
		obj.IRI = rdf.IRI(nullToString(r.ObjectIRI))
	} else {
		obj.Lex = nullToString(r.ObjectValue)
		obj.Datatype = rdf.IRI(nullToString(r.ObjectDatatype))
	}

	return rdf.Triple{
		Subject:   rdf.IRI(r.Subject),
		Predicate: rdf.IRI(r.Predicate),
		Object:    obj,
	}
}

// tripleColumns returns the SELECT column list for triple queries
const tripleColumns = `subject, predicate, object_kind, object_iri, object_value, object_datatype`

// ============================================================================
// Triple Write Helpers
// ============================================================================

// tripleInsertArgs prepares arguments for a triple INSERT.
// Returns: run_id, subject, predicate, object_kind, object_iri,
// object_value, object_datatype
func tripleInsertArgs(runID string, t rdf.Triple) []interface{} {
	var iri, value, datatype sql.NullString
	if t.Object.IsRef() {
		iri = stringToNull(string(t.Object.IRI))
	} else {
		value = sql.NullString{String: t.Object.Lex, Valid: true}
		datatype = stringToNull(string(t.Object.Datatype))
	}

	return []interface{}{
		runID,
		string(t.Subject),
		string(t.Predicate),
		string(t.Object.Kind),
		iri,
		value,
		datatype,
	}
}
