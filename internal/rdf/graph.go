package rdf

// Graph is a triple set with insertion order preserved for serialization.
// Add is presence-checked, so re-adding a triple is a no-op; that property
// is what makes inverse and symmetric edge emission idempotent.
//
// A Graph is owned by a single emission run and is not safe for concurrent
// mutation.
type Graph struct {
	vocab   Vocabulary
	triples []Triple
	index   map[Triple]struct{}
}

// NewGraph creates an empty graph bound to the given vocabulary
func NewGraph(vocab Vocabulary) *Graph {
	return &Graph{
		vocab: vocab,
		index: make(map[Triple]struct{}),
	}
}

// Vocab returns the vocabulary the graph was created with
func (g *Graph) Vocab() Vocabulary {
	return g.vocab
}

// Add inserts a triple if absent. Returns true when the triple was new.
func (g *Graph) Add(t Triple) bool {
	if _, ok := g.index[t]; ok {
		return false
	}
	g.index[t] = struct{}{}
	g.triples = append(g.triples, t)
	return true
}

// Has reports whether the triple is present
func (g *Graph) Has(t Triple) bool {
	_, ok := g.index[t]
	return ok
}

// Len returns the number of distinct triples
func (g *Graph) Len() int {
	return len(g.triples)
}

// Triples returns the triples in insertion order. The slice is a copy.
func (g *Graph) Triples() []Triple {
	out := make([]Triple, len(g.triples))
	copy(out, g.triples)
	return out
}

// Subjects returns the distinct subjects in first-seen order
func (g *Graph) Subjects() []IRI {
	seen := make(map[IRI]struct{}, len(g.triples))
	var out []IRI
	for _, t := range g.triples {
		if _, ok := seen[t.Subject]; ok {
			continue
		}
		seen[t.Subject] = struct{}{}
		out = append(out, t.Subject)
	}
	return out
}

// TriplesFor returns the triples with the given subject, in insertion order
func (g *Graph) TriplesFor(subject IRI) []Triple {
	var out []Triple
	for _, t := range g.triples {
		if t.Subject == subject {
			out = append(out, t)
		}
	}
	return out
}

// Objects returns the objects of all (subject, predicate, *) triples
func (g *Graph) Objects(subject, predicate IRI) []Object {
	var out []Object
	for _, t := range g.triples {
		if t.Subject == subject && t.Predicate == predicate {
			out = append(out, t.Object)
		}
	}
	return out
}

// Equal reports set equality with another graph, ignoring insertion order
func (g *Graph) Equal(other *Graph) bool {
	if other == nil || len(g.index) != len(other.index) {
		return false
	}
	for t := range g.index {
		if _, ok := other.index[t]; !ok {
			return false
		}
	}
	return true
}
