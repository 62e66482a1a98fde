// Package repository defines the data access interface for run history.
//
// Every invocation of the emission pipeline produces a Run record: where
// the entities came from, how many were emitted, how many failed, and the
// conformance verdict when a check was requested. The run is stored
// together with the full triple set it produced, so earlier model states
// can be listed, re-exported, or compared after the fact.
//
// # Repository Interface
//
// The Repository interface defines save, lookup, list, and delete
// operations for runs and retrieval of their stored triples. Lookups
// return nil without error when a run does not exist.
//
// # SQLite Implementation
//
// The sqlite subpackage provides a complete repository using SQLite with
// WAL mode for concurrency. Runs and triples live in separate tables;
// saves are transactional so a run never lands without its triples.
//
// # Testing
//
// The sqlite repository is tested against in-memory databases.
package repository
