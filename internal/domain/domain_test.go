package domain

import (
	"testing"

	"netmodel/internal/rdf"
)

// Compile-time interface compliance checks
var (
	_ Entity = (*VLAN)(nil)
	_ Entity = (*Subnet)(nil)
	_ Entity = (*AddressAssignment)(nil)
	_ Entity = (*Iface)(nil)
	_ Entity = (*Link)(nil)
	_ Entity = (*Node)(nil)
	_ Entity = (*Router)(nil)
)

func newTestGraph() *rdf.Graph {
	return rdf.NewGraph(rdf.DefaultVocabulary())
}

// emitAll runs both emission passes over every entity, self pass first,
// the way the engine does
func emitAll(t *testing.T, g *rdf.Graph, entities ...Entity) {
	t.Helper()
	for _, e := range entities {
		if err := e.EmitSelf(g); err != nil {
			t.Fatalf("EmitSelf %s: %v", e.EntityID(), err)
		}
	}
	for _, e := range entities {
		if err := e.EmitRelations(g); err != nil {
			t.Fatalf("EmitRelations %s: %v", e.EntityID(), err)
		}
	}
}

func assertType(t *testing.T, g *rdf.Graph, subject, class string) {
	t.Helper()
	v := g.Vocab()
	tr := rdf.Triple{Subject: v.Node(subject), Predicate: rdf.RDFType, Object: rdf.Ref(v.Class(class))}
	if !g.Has(tr) {
		t.Errorf("%s should have type %s", subject, class)
	}
}

func assertLabel(t *testing.T, g *rdf.Graph, subject, label string) {
	t.Helper()
	v := g.Vocab()
	tr := rdf.Triple{Subject: v.Node(subject), Predicate: rdf.RDFSLabel, Object: rdf.Text(label)}
	if !g.Has(tr) {
		t.Errorf("%s should have label %q", subject, label)
	}
}

func assertEdge(t *testing.T, g *rdf.Graph, subject, prop, object string) {
	t.Helper()
	v := g.Vocab()
	tr := rdf.Triple{Subject: v.Node(subject), Predicate: v.Prop(prop), Object: rdf.Ref(v.Node(object))}
	if !g.Has(tr) {
		t.Errorf("missing edge %s %s %s", subject, prop, object)
	}
}

func assertAbsent(t *testing.T, g *rdf.Graph, subject, prop string) {
	t.Helper()
	v := g.Vocab()
	if objs := g.Objects(v.Node(subject), v.Prop(prop)); len(objs) != 0 {
		t.Errorf("%s should have no %s triple, got %v", subject, prop, objs)
	}
}

func assertLiteral(t *testing.T, g *rdf.Graph, subject, prop string, want rdf.Object) {
	t.Helper()
	v := g.Vocab()
	tr := rdf.Triple{Subject: v.Node(subject), Predicate: v.Prop(prop), Object: want}
	if !g.Has(tr) {
		t.Errorf("%s should have %s literal %+v", subject, prop, want)
	}
}
