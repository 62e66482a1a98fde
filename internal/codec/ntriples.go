package codec

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"netmodel/internal/rdf"
)

// NTriplesCodec reads and writes the line-oriented N-Triples format
type NTriplesCodec struct {
	vocab rdf.Vocabulary
}

// NewNTriplesCodec creates a codec whose parsed graphs carry the given
// vocabulary
func NewNTriplesCodec(vocab rdf.Vocabulary) *NTriplesCodec {
	return &NTriplesCodec{vocab: vocab}
}

// Format returns the codec format identifier
func (c *NTriplesCodec) Format() string {
	return "ntriples"
}

// Export writes one triple per line in emission order
func (c *NTriplesCodec) Export(g *rdf.Graph, w io.Writer) error {
	bw := bufio.NewWriter(w)
	for _, tr := range g.Triples() {
		var obj string
		switch {
		case tr.Object.IsRef():
			obj = "<" + string(tr.Object.IRI) + ">"
		case tr.Object.Datatype != "":
			obj = quoteLiteral(tr.Object.Lex) + "^^<" + string(tr.Object.Datatype) + ">"
		default:
			obj = quoteLiteral(tr.Object.Lex)
		}
		fmt.Fprintf(bw, "<%s> <%s> %s .\n", tr.Subject, tr.Predicate, obj)
	}
	return bw.Flush()
}

// Parse reads N-Triples lines into a graph, skipping blank lines and
// comments
func (c *NTriplesCodec) Parse(r io.Reader) (*rdf.Graph, error) {
	g := rdf.NewGraph(c.vocab)
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		tr, err := parseTripleLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", lineNo, err)
		}
		g.Add(tr)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return g, nil
}

func parseTripleLine(line string) (rdf.Triple, error) {
	var t rdf.Triple

	subject, rest, err := parseIRIRef(line)
	if err != nil {
		return t, fmt.Errorf("subject: %w", err)
	}
	predicate, rest, err := parseIRIRef(rest)
	if err != nil {
		return t, fmt.Errorf("predicate: %w", err)
	}
	object, rest, err := parseObject(rest)
	if err != nil {
		return t, fmt.Errorf("object: %w", err)
	}
	if strings.TrimSpace(rest) != "." {
		return t, fmt.Errorf("missing terminating dot")
	}

	t.Subject = subject
	t.Predicate = predicate
	t.Object = object
	return t, nil
}

func parseIRIRef(s string) (rdf.IRI, string, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "<") {
		return "", "", fmt.Errorf("expected IRI reference")
	}
	end := strings.IndexByte(s, '>')
	if end < 0 {
		return "", "", fmt.Errorf("unterminated IRI reference")
	}
	return rdf.IRI(s[1:end]), s[end+1:], nil
}

func parseObject(s string) (rdf.Object, string, error) {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "<") {
		iri, rest, err := parseIRIRef(s)
		if err != nil {
			return rdf.Object{}, "", err
		}
		return rdf.Ref(iri), rest, nil
	}
	if !strings.HasPrefix(s, `"`) {
		return rdf.Object{}, "", fmt.Errorf("expected IRI reference or literal")
	}

	end := -1
	for i := 1; i < len(s); i++ {
		if s[i] == '\\' {
			i++
			continue
		}
		if s[i] == '"' {
			end = i
			break
		}
	}
	if end < 0 {
		return rdf.Object{}, "", fmt.Errorf("unterminated literal")
	}

	obj := rdf.Object{Kind: rdf.ObjectLiteral, Lex: unescapeLiteral(s[1:end])}
	rest := s[end+1:]

	switch {
	case strings.HasPrefix(rest, "^^"):
		datatype, r, err := parseIRIRef(rest[2:])
		if err != nil {
			return rdf.Object{}, "", fmt.Errorf("datatype: %w", err)
		}
		obj.Datatype = datatype
		rest = r
	case strings.HasPrefix(rest, "@"):
		// Tolerate language tags on input; this domain never emits them
		if idx := strings.IndexAny(rest, " \t"); idx >= 0 {
			rest = rest[idx:]
		} else {
			rest = ""
		}
	}
	return obj, rest, nil
}

var literalEscaper = strings.NewReplacer(
	`\`, `\\`,
	`"`, `\"`,
	"\n", `\n`,
	"\r", `\r`,
	"\t", `\t`,
)

func quoteLiteral(s string) string {
	return `"` + literalEscaper.Replace(s) + `"`
}

func unescapeLiteral(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' || i == len(s)-1 {
			b.WriteByte(c)
			continue
		}
		i++
		switch s[i] {
		case 'n':
			b.WriteByte('\n')
		case 'r':
			b.WriteByte('\r')
		case 't':
			b.WriteByte('\t')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		default:
			b.WriteByte('\\')
			b.WriteByte(s[i])
		}
	}
	return b.String()
}
