// Package gremlin builds Gremlin-dialect graph traversal queries as text.
//
// A chain starts at a Graph entry point and grows one Step per fluent
// call; serializing the chain joins the steps with "." into the query the
// remote endpoint executes:
//
//	g := gremlin.NewGraph()
//	query, err := g.V("alice").Out("follows").All().Build()
//	// query == "g.V('alice').Out('follows').All()"
//
// Vertex chains are directly executable; Morphism chains are reusable
// fragments that other chains apply with Follow and FollowR.
package gremlin

import "fmt"

// Step is one formatted fragment of a traversal: a format token plus the
// ordered arguments substituted into it.
type Step struct {
	format string
	args   []any
}

// NewStep returns a Step with the given format token and arguments. The
// arguments must already be formatted for embedding; a placeholder count
// that does not match the arguments surfaces through fmt's error
// reporting in the serialized text.
func NewStep(format string, args ...any) Step {
	return Step{format: format, args: args}
}

// String serializes the step by substituting the arguments into the token
// in order, or returns the token verbatim when there are none.
func (s Step) String() string {
	if len(s.args) == 0 {
		return s.format
	}
	return fmt.Sprintf(s.format, s.args...)
}
