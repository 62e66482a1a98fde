package conformance

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"netmodel/internal/domain"
	"netmodel/internal/emitter"
	"netmodel/internal/rdf"
)

func emitNetwork(t *testing.T, entities ...domain.Entity) *rdf.Graph {
	t.Helper()
	g, report := emitter.New(rdf.DefaultVocabulary()).EmitAll(entities)
	if report.HasFailures() {
		t.Fatalf("emission failed: %v", report.Failures)
	}
	return g
}

// typedSubject hand-builds a minimally typed subject for negative tests
func typedSubject(g *rdf.Graph, name, class string) rdf.IRI {
	v := g.Vocab()
	s := v.Node(name)
	g.Add(rdf.Triple{Subject: s, Predicate: rdf.RDFType, Object: rdf.Ref(v.Class(class))})
	g.Add(rdf.Triple{Subject: s, Predicate: rdf.RDFSLabel, Object: rdf.Text(name)})
	return s
}

func hasViolation(r *Result, path, fragment string) bool {
	for _, v := range r.Violations {
		if v.Path == path && strings.Contains(v.Message, fragment) {
			return true
		}
	}
	return false
}

func TestCheckConformingNetwork(t *testing.T) {
	r1 := domain.NewRouter("R1")
	r1.AddIface("R1_Eth0")
	r1.AddNeighbor("Sw1")
	r1.AddRoutedSubnet("10.0.0.0/24")

	eth0, err := domain.NewIface("R1_Eth0", domain.PortModeUnconfigured)
	if err != nil {
		t.Fatalf("build iface: %v", err)
	}
	eth0.BelongsTo = "R1"
	eth0.ConnectedLink = "L1"
	eth0.Assignments = []string{"addr1"}

	sw1 := domain.NewSwitch("Sw1")
	sw1.AddIface("Sw1_G0")
	sw1.AddNeighbor("R1")

	g0, err := domain.NewIface("Sw1_G0", domain.PortModeTrunk)
	if err != nil {
		t.Fatalf("build iface: %v", err)
	}
	g0.BelongsTo = "Sw1"
	g0.ConnectedLink = "L1"
	g0.AllowedVLANs = []int{10}

	link := domain.NewLink("L1", "R1_Eth0", "Sw1_G0")
	link.Bandwidth = 1000

	vlan := domain.NewVLAN("v10", 10)
	vlan.Subnets = []string{"10.0.0.0/24"}

	subnet := domain.NewSubnet("s1", "10.0.0.0/24")

	addr := domain.NewAddressAssignment("addr1", "10.0.0.1")
	addr.OnSubnet = "10.0.0.0/24"

	g := emitNetwork(t, r1, eth0, sw1, g0, link, vlan, subnet, addr)

	result := NewChecker(g.Vocab()).Check(g)
	if !result.Conforms {
		t.Fatalf("expected conforming graph:\n%s", result.Report())
	}
	if err := result.Err(); err != nil {
		t.Errorf("conforming result should have nil error, got %v", err)
	}
	if !strings.Contains(result.Report(), "Conforms: true") {
		t.Errorf("unexpected report:\n%s", result.Report())
	}
}

func TestCheckMissingRequiredProperties(t *testing.T) {
	g := rdf.NewGraph(rdf.DefaultVocabulary())
	typedSubject(g, "eth0", "Iface")

	result := NewChecker(g.Vocab()).Check(g)
	if result.Conforms {
		t.Fatal("expected violations")
	}
	if !hasViolation(result, "portMode", "at least 1") {
		t.Errorf("missing portMode violation: %+v", result.Violations)
	}
	// HWStatus is required through the HWNetEntity superclass
	if !hasViolation(result, "HWStatus", "at least 1") {
		t.Errorf("missing inherited HWStatus violation: %+v", result.Violations)
	}
}

func TestCheckDatatypeMismatch(t *testing.T) {
	g := rdf.NewGraph(rdf.DefaultVocabulary())
	v := g.Vocab()
	s := typedSubject(g, "Subnet_10.0.0.0_24", "Subnet")
	// Plain literal where xsd:string is required
	g.Add(rdf.Triple{Subject: s, Predicate: v.Prop("subnetCidr"), Object: rdf.Text("10.0.0.0/24")})

	result := NewChecker(v).Check(g)
	if !hasViolation(result, "subnetCidr", "xsd:string") {
		t.Errorf("missing datatype violation: %+v", result.Violations)
	}
}

func TestCheckDisallowedValue(t *testing.T) {
	g := rdf.NewGraph(rdf.DefaultVocabulary())
	v := g.Vocab()
	s := typedSubject(g, "L1", "Link")
	g.Add(rdf.Triple{Subject: s, Predicate: v.Prop("HWStatus"), Object: rdf.Text("BROKEN")})

	result := NewChecker(v).Check(g)
	if !hasViolation(result, "HWStatus", "allowed values") {
		t.Errorf("missing allowed-values violation: %+v", result.Violations)
	}
}

func TestCheckDanglingReference(t *testing.T) {
	g := rdf.NewGraph(rdf.DefaultVocabulary())
	v := g.Vocab()
	s := typedSubject(g, "eth0", "Iface")
	g.Add(rdf.Triple{Subject: s, Predicate: v.Prop("HWStatus"), Object: rdf.Text("ON")})
	g.Add(rdf.Triple{Subject: s, Predicate: v.Prop("portMode"), Object: rdf.Text("UNCONFIGURED")})
	g.Add(rdf.Triple{Subject: s, Predicate: v.Prop("BelongsToNode"), Object: rdf.Ref(v.Node("ghost"))})

	result := NewChecker(v).Check(g)
	if !hasViolation(result, "BelongsToNode", "is not a Node") {
		t.Errorf("missing dangling reference violation: %+v", result.Violations)
	}
}

func TestCheckCardinality(t *testing.T) {
	g := rdf.NewGraph(rdf.DefaultVocabulary())
	v := g.Vocab()
	s := typedSubject(g, "VLAN10", "VLAN")
	g.Add(rdf.Triple{Subject: s, Predicate: v.Prop("vlanId"), Object: rdf.Integer(10)})
	g.Add(rdf.Triple{Subject: s, Predicate: v.Prop("vlanId"), Object: rdf.Integer(11)})

	result := NewChecker(v).Check(g)
	if !hasViolation(result, "vlanId", "at most 1") {
		t.Errorf("missing cardinality violation: %+v", result.Violations)
	}
}

func TestConformanceFailureError(t *testing.T) {
	g := rdf.NewGraph(rdf.DefaultVocabulary())
	typedSubject(g, "eth0", "Iface")

	err := NewChecker(g.Vocab()).Check(g).Err()
	if err == nil {
		t.Fatal("expected failure")
	}
	var failure *ConformanceFailure
	if !strings.Contains(err.Error(), "Validation Report") {
		t.Errorf("error should carry the report: %v", err)
	}
	if !errors.As(err, &failure) {
		t.Fatalf("expected ConformanceFailure, got %T", err)
	}
	if !strings.Contains(failure.Report, "Focus Node: ex:eth0") {
		t.Errorf("report should name the focus node:\n%s", failure.Report)
	}
}

func TestShapesHierarchy(t *testing.T) {
	shapes := DefaultShapes()

	want := []string{"Node", "HWNetEntity", "BaseEntity"}
	got := shapes.Ancestors("Router")
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}

	closure := shapes.Closure([]string{"Switch"})
	for _, class := range []string{"Switch", "Node", "HWNetEntity", "BaseEntity"} {
		if !closure[class] {
			t.Errorf("closure should include %s", class)
		}
	}
}

func TestLoadShapes(t *testing.T) {
	t.Run("custom file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "shapes.yaml")
		doc := "subclasses:\n  Leaf: Root\nclasses:\n  Root:\n    properties:\n      rdfs:label:\n        min_count: 1\n"
		if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
			t.Fatalf("write shapes: %v", err)
		}

		shapes, err := LoadShapes(path)
		if err != nil {
			t.Fatalf("load shapes: %v", err)
		}
		if shapes.Subclasses["Leaf"] != "Root" {
			t.Error("subclass table not loaded")
		}
	})

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadShapes(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed document", func(t *testing.T) {
		if _, err := ParseShapes([]byte("classes: [not, a, map]")); err == nil {
			t.Error("expected error for malformed shapes")
		}
	})
}
