package gremlin

// Vertex is a chain rooted at a concrete set of graph nodes (or all of
// them). It is directly executable by the query endpoint, so unlike a
// Morphism it carries the terminal All and GetLimit steps.
type Vertex struct {
	Path[*Vertex]
}

func (*Vertex) expr() {}

func newVertex(root Step) *Vertex {
	v := &Vertex{}
	v.self = v
	v.steps = []Step{root}
	return v
}

// All marks the chain to return every matching result.
func (v *Vertex) All() *Vertex {
	return v.put("All()")
}

// GetLimit caps the number of results at n, embedded as a bare integer.
func (v *Vertex) GetLimit(n int) *Vertex {
	return v.put("GetLimit(%d)", n)
}
