// Package service runs the emission pipeline shared by the generate,
// discover, and watch commands.
//
// A Pipeline takes an entity collection from any source (the built-in
// sample, a topology document, a network sweep), emits it into a triple
// graph, optionally checks the graph against the shape constraints, and
// optionally records the run and its triples in the repository. Callers
// export the resulting graph through the codec of their choice.
//
// Per-entity emission failures never abort a run; they are counted on
// the run record and reported back so the caller can surface them.
package service
