package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"netmodel/internal/rdf"
	"netmodel/internal/repository"

	_ "modernc.org/sqlite"
)

// Repository implements repository.Repository using SQLite
type Repository struct {
	db *sql.DB
}

// New creates a new SQLite repository
func New(dbPath string) (*Repository, error) {
	db, err := sql.Open("sqlite", dsn(dbPath))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if dbPath == ":memory:" {
		// Each pooled connection would otherwise see its own empty
		// in-memory database.
		db.SetMaxOpenConns(1)
	}

	repo := &Repository{db: db}
	if err := repo.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return repo, nil
}

// dsn appends the connection pragmas for on-disk databases.
// In-memory databases are opened as-is.
func dsn(dbPath string) string {
	if dbPath == ":memory:" {
		return dbPath
	}
	return dbPath + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)"
}

func (r *Repository) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		source TEXT NOT NULL,
		started_at TIMESTAMP NOT NULL,
		entity_count INTEGER NOT NULL DEFAULT 0,
		triple_count INTEGER NOT NULL DEFAULT 0,
		failure_count INTEGER NOT NULL DEFAULT 0,
		conforms INTEGER
	);

	CREATE TABLE IF NOT EXISTS triples (
		run_id TEXT NOT NULL,
		subject TEXT NOT NULL,
		predicate TEXT NOT NULL,
		object_kind TEXT NOT NULL,
		object_iri TEXT,
		object_value TEXT,
		object_datatype TEXT,
		FOREIGN KEY (run_id) REFERENCES runs(id) ON DELETE CASCADE
	);

	CREATE INDEX IF NOT EXISTS idx_triples_run ON triples(run_id);
	CREATE INDEX IF NOT EXISTS idx_runs_started ON runs(started_at);
	`

	_, err := r.db.Exec(schema)
	return err
}

// SaveRun persists a run and its triples in one transaction
func (r *Repository) SaveRun(ctx context.Context, run *repository.Run, triples []rdf.Triple) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO runs (id, source, started_at, entity_count, triple_count, failure_count, conforms)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.Source, run.StartedAt, run.EntityCount, run.TripleCount, run.FailureCount, boolPtrToNull(run.Conforms))
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO triples (run_id, subject, predicate, object_kind, object_iri, object_value, object_datatype)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare triple statement: %w", err)
	}
	defer stmt.Close()

	for _, triple := range triples {
		if _, err := stmt.ExecContext(ctx, tripleInsertArgs(run.ID, triple)...); err != nil {
			return fmt.Errorf("failed to insert triple for %s: %w", triple.Subject, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetRun retrieves a single run by ID
func (r *Repository) GetRun(ctx context.Context, id string) (*repository.Run, error) {
	var row runRow
	err := r.db.QueryRowContext(ctx, `
		SELECT `+runColumns+` FROM runs WHERE id = ?
	`, id).Scan(row.scanArgs()...)

	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query run: %w", err)
	}

	return row.toDomain(), nil
}

// ListRuns returns runs newest first, all of them when limit <= 0
func (r *Repository) ListRuns(ctx context.Context, limit int) ([]*repository.Run, error) {
	query := `SELECT ` + runColumns + ` FROM runs ORDER BY started_at DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []*repository.Run
	for rows.Next() {
		var row runRow
		if err := rows.Scan(row.scanArgs()...); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		runs = append(runs, row.toDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating runs: %w", err)
	}
	return runs, nil
}

// GetTriples returns the stored triples of a run in insertion order
func (r *Repository) GetTriples(ctx context.Context, runID string) ([]rdf.Triple, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+tripleColumns+` FROM triples WHERE run_id = ?
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to query triples: %w", err)
	}
	defer rows.Close()

	var triples []rdf.Triple
	for rows.Next() {
		var row tripleRow
		if err := rows.Scan(row.scanArgs()...); err != nil {
			return nil, fmt.Errorf("failed to scan triple: %w", err)
		}
		triples = append(triples, row.toDomain())
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating triples: %w", err)
	}
	return triples, nil
}

// DeleteRun removes a run and its triples.
// Triples are deleted explicitly so the store does not depend on the
// foreign_keys pragma being enabled.
func (r *Repository) DeleteRun(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM triples WHERE run_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete triples: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM runs WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("run %s not found", id)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// Close closes the database connection
func (r *Repository) Close() error {
	return r.db.Close()
}
