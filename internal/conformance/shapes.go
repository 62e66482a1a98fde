package conformance

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed shapes.yaml
var defaultShapesYAML []byte

// PropertyShape constrains one property of a class
type PropertyShape struct {
	MinCount int      `yaml:"min_count,omitempty"`
	MaxCount int      `yaml:"max_count,omitempty"` // 0 means unbounded
	Kind     string   `yaml:"kind,omitempty"`      // "ref" or "literal"
	Datatype string   `yaml:"datatype,omitempty"`  // "string", "integer", or "plain"
	Class    string   `yaml:"class,omitempty"`     // required class of referenced nodes
	In       []string `yaml:"in,omitempty"`        // allowed literal values
}

// ClassShape constrains the subjects typed with one class
type ClassShape struct {
	Properties map[string]PropertyShape `yaml:"properties"`
}

// Shapes is the full constraint document: the class hierarchy plus the
// per-class property shapes. Constraints attached to a class apply to
// every subject whose type closure includes it.
type Shapes struct {
	Subclasses map[string]string     `yaml:"subclasses"` // class -> direct superclass
	Classes    map[string]ClassShape `yaml:"classes"`
}

// DefaultShapes returns the built-in shape definitions for the network
// ontology
func DefaultShapes() Shapes {
	s, err := ParseShapes(defaultShapesYAML)
	if err != nil {
		// The embedded document is fixed at build time
		panic(fmt.Sprintf("embedded shapes are invalid: %v", err))
	}
	return s
}

// ParseShapes reads shape definitions from YAML
func ParseShapes(data []byte) (Shapes, error) {
	var s Shapes
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse shapes: %w", err)
	}
	return s, nil
}

// LoadShapes reads shape definitions from a YAML file
func LoadShapes(path string) (Shapes, error) {
	f, err := os.Open(path)
	if err != nil {
		return Shapes{}, fmt.Errorf("failed to open shapes file: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return Shapes{}, fmt.Errorf("failed to read shapes file: %w", err)
	}
	return ParseShapes(data)
}

// Ancestors returns the superclass chain of a class, nearest first
func (s Shapes) Ancestors(class string) []string {
	var chain []string
	seen := map[string]bool{class: true}
	for {
		parent, ok := s.Subclasses[class]
		if !ok || seen[parent] {
			return chain
		}
		chain = append(chain, parent)
		seen[parent] = true
		class = parent
	}
}

// Closure returns the set of classes implied by the declared ones,
// including every superclass
func (s Shapes) Closure(declared []string) map[string]bool {
	closure := make(map[string]bool, len(declared))
	for _, class := range declared {
		closure[class] = true
		for _, ancestor := range s.Ancestors(class) {
			closure[ancestor] = true
		}
	}
	return closure
}
