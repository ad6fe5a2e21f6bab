package gremlin

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Graph is the entry point for building traversal chains. It mirrors the
// remote query language's global g object.
type Graph struct{}

// NewGraph returns a Graph entry point.
func NewGraph() *Graph {
	return &Graph{}
}

// V returns a new vertex chain. With no ids the chain starts from every
// vertex (g.V()); with ids it starts from the listed vertices, each id
// individually quoted (g.V('a','b')).
func (*Graph) V(ids ...string) *Vertex {
	if len(ids) == 0 {
		return newVertex(NewStep("g.V()"))
	}
	quoted := make([]string, len(ids))
	for i, id := range ids {
		quoted[i] = "'" + id + "'"
	}
	return newVertex(NewStep("g.V(%s)", strings.Join(quoted, ",")))
}

// Vertex is an alias for V.
func (g *Graph) Vertex(ids ...string) *Vertex {
	return g.V(ids...)
}

// M returns a new morphism chain rooted at g.Morphism().
func (*Graph) M() *Morphism {
	return newMorphism()
}

// Morphism is an alias for M.
func (g *Graph) Morphism() *Morphism {
	return g.M()
}

// Emit returns a standalone g.Emit(...) fragment embedding the JSON form
// of data, independent of any chain. Plain structs serialize as their
// field mapping; values needing custom output implement json.Marshaler.
func (*Graph) Emit(data any) (string, error) {
	encoded, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("gremlin: emit: %w", err)
	}
	return fmt.Sprintf("g.Emit(%s)", encoded), nil
}
