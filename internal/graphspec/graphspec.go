package graphspec

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/seqgraph/triegraph/alphabet"
	"github.com/seqgraph/triegraph/seqgraph"
)

// Sentinel errors for graph description parsing.
var (
	ErrNoAlphabet    = errors.New("graphspec: alphabet must list at least one symbol")
	ErrDuplicateNode = errors.New("graphspec: duplicate node id")
	ErrUnknownNode   = errors.New("graphspec: edge references unknown node id")
	ErrEmptySegment  = errors.New("graphspec: node segment must be non-empty")
	ErrUnknownSymbol = errors.New("graphspec: segment contains a symbol not listed in alphabet")
)

// NodeSpec is one node entry of a Spec: a caller-chosen id (used to name
// edges and for diagnostics) and its segment, spelled out as a string
// over Spec.Alphabet.
type NodeSpec struct {
	ID      string `yaml:"id"`
	Segment string `yaml:"segment"`
}

// EdgeSpec is one directed edge entry of a Spec, naming endpoints by
// NodeSpec.ID.
type EdgeSpec struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
}

// Spec is the root of a --graph file: the alphabet's symbols (in the
// order they map to dense alphabet.Symbol values), the node list, and
// the edge list.
type Spec struct {
	Alphabet string     `yaml:"alphabet"`
	Nodes    []NodeSpec `yaml:"nodes"`
	Edges    []EdgeSpec `yaml:"edges"`
}

// Parse unmarshals raw YAML bytes into a Spec. The same unmarshaler
// accepts JSON too, since every JSON document is valid YAML.
func Parse(raw []byte) (*Spec, error) {
	var spec Spec
	if err := yaml.Unmarshal(raw, &spec); err != nil {
		return nil, fmt.Errorf("graphspec.Parse: %w", err)
	}
	return &spec, nil
}

// Build turns a Spec into a seqgraph.Graph plus the dense Alphabet its
// segments were encoded against. Node ids are resolved in declaration
// order; duplicate ids, empty segments, out-of-alphabet symbols, or
// edges naming an unknown id are all rejected.
func (s *Spec) Build() (*seqgraph.Graph, alphabet.Alphabet, error) {
	if len(s.Alphabet) == 0 {
		return nil, alphabet.Alphabet{}, fmt.Errorf("graphspec.Build: %w", ErrNoAlphabet)
	}
	symbolOf := make(map[rune]alphabet.Symbol, len(s.Alphabet))
	for _, r := range s.Alphabet {
		if _, dup := symbolOf[r]; !dup {
			symbolOf[r] = alphabet.Symbol(len(symbolOf))
		}
	}
	alpha, err := alphabet.New(uint64(len(symbolOf)))
	if err != nil {
		return nil, alphabet.Alphabet{}, fmt.Errorf("graphspec.Build: %w", err)
	}

	b := seqgraph.NewBuilder()
	ids := make(map[string]seqgraph.NodeID, len(s.Nodes))
	for _, n := range s.Nodes {
		if _, dup := ids[n.ID]; dup {
			return nil, alphabet.Alphabet{}, fmt.Errorf("graphspec.Build: %w: %q", ErrDuplicateNode, n.ID)
		}
		if len(n.Segment) == 0 {
			return nil, alphabet.Alphabet{}, fmt.Errorf("graphspec.Build: %w: %q", ErrEmptySegment, n.ID)
		}
		seg := make([]alphabet.Symbol, 0, len(n.Segment))
		for _, r := range n.Segment {
			sym, ok := symbolOf[r]
			if !ok {
				return nil, alphabet.Alphabet{}, fmt.Errorf("graphspec.Build: %w: %q in node %q", ErrUnknownSymbol, r, n.ID)
			}
			seg = append(seg, sym)
		}
		id, err := b.AddNode(seg, n.ID)
		if err != nil {
			return nil, alphabet.Alphabet{}, fmt.Errorf("graphspec.Build: %w", err)
		}
		ids[n.ID] = id
	}

	for _, e := range s.Edges {
		from, ok := ids[e.From]
		if !ok {
			return nil, alphabet.Alphabet{}, fmt.Errorf("graphspec.Build: %w: %q", ErrUnknownNode, e.From)
		}
		to, ok := ids[e.To]
		if !ok {
			return nil, alphabet.Alphabet{}, fmt.Errorf("graphspec.Build: %w: %q", ErrUnknownNode, e.To)
		}
		b.AddEdge(from, to)
	}

	g, err := b.Build()
	if err != nil {
		return nil, alphabet.Alphabet{}, fmt.Errorf("graphspec.Build: %w", err)
	}
	return g, alpha, nil
}
