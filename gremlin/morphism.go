package gremlin

// Morphism is a reusable traversal fragment rooted at g.Morphism(). It is
// never executed directly; chains apply it with Follow and FollowR.
type Morphism struct {
	Path[*Morphism]
}

func (*Morphism) expr() {}

func newMorphism() *Morphism {
	m := &Morphism{}
	m.self = m
	m.steps = []Step{NewStep("g.Morphism()")}
	return m
}
