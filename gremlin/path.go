package gremlin

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Expr is the closed set of expressions a chain can embed: another chain
// or a Raw fragment. Intersect and Union accept vertex chains, Follow and
// FollowR accept morphisms, and Raw text is accepted everywhere.
type Expr interface {
	fmt.Stringer
	// expr restricts implementations to *Vertex, *Morphism and Raw.
	expr()
}

// Raw is a pre-serialized query fragment embedded verbatim.
type Raw string

func (r Raw) String() string { return string(r) }

func (Raw) expr() {}

// Path carries the traversal vocabulary shared by Vertex and Morphism.
// The type parameter is the concrete chain every fluent call returns, so
// chained calls keep their static type.
//
// Fluent calls mutate the chain in place and append exactly one step; a
// rejected call appends nothing and records the first error, which Build
// reports. A chain is exclusively owned by its builder and is not safe
// for concurrent use.
type Path[T any] struct {
	self  T
	steps []Step
	err   error
}

// put appends one step and returns the concrete chain.
func (p *Path[T]) put(format string, args ...any) T {
	p.steps = append(p.steps, NewStep(format, args...))
	return p.self
}

// fail records the first builder error without appending a step.
func (p *Path[T]) fail(err error) T {
	if p.err == nil {
		p.err = err
	}
	return p.self
}

// Err returns the first error recorded by a rejected fluent call, if any.
func (p *Path[T]) Err() error {
	return p.err
}

// String returns the serialized chain: every step joined with "." in
// order. A rejected call appends no step, so it leaves this form
// unchanged.
func (p *Path[T]) String() string {
	parts := make([]string, len(p.steps))
	for i, s := range p.steps {
		parts[i] = s.String()
	}
	return strings.Join(parts, ".")
}

// Build returns the final query text, or the first error recorded while
// the chain was assembled.
func (p *Path[T]) Build() (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return p.String(), nil
}

// Out traverses edges away from the current nodes. It takes up to two
// bounds, a predicate and a tag set: with none it emits Out(), with a
// predicate alone Out(<predicate>), with both Out(<predicate>, <tags>).
// Each bound is rendered by the bound-value rule; see formatBound.
func (p *Path[T]) Out(bounds ...any) T {
	return p.bounds("Out", bounds)
}

// In traverses edges pointing at the current nodes. See Out for the bound
// handling.
func (p *Path[T]) In(bounds ...any) T {
	return p.bounds("In", bounds)
}

// Both traverses edges in either direction. See Out for the bound
// handling.
func (p *Path[T]) Both(bounds ...any) T {
	return p.bounds("Both", bounds)
}

func (p *Path[T]) bounds(method string, bounds []any) T {
	var predicate, tags any
	if len(bounds) > 0 {
		predicate = bounds[0]
	}
	if len(bounds) > 1 {
		tags = bounds[1]
	}
	switch {
	case predicate == nil && tags == nil:
		return p.put("%s()", method)
	case tags == nil:
		return p.put("%s(%s)", method, formatBound(predicate))
	default:
		return p.put("%s(%s, %s)", method, formatBound(predicate), formatBound(tags))
	}
}

// formatBound renders one bound value for embedding in a step: strings are
// single-quoted, maps and json.Marshaler values are JSON-encoded, and nil
// becomes the literal null. Anything else falls through to its default
// fmt representation. Note that a plain tag slice therefore is not
// JSON-encoded and may not be valid input to the remote query language;
// TestPathOutTagsSliceVerbatim pins the current output.
func formatBound(v any) string {
	switch v := v.(type) {
	case nil:
		return "null"
	case string:
		return "'" + v + "'"
	case map[string]string, map[string]any, json.Marshaler:
		data, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(data)
	default:
		return fmt.Sprint(v)
	}
}

// Is filters the current nodes to the given identifiers. Multiple ids are
// rendered as one quoted, comma-separated run: Is('a', 'b').
func (p *Path[T]) Is(ids ...string) T {
	return p.put("Is('%s')", strings.Join(ids, "', '"))
}

// Has filters the current nodes to those carrying the given predicate and
// object, both quoted as text.
func (p *Path[T]) Has(predicate, object string) T {
	return p.put("Has('%s', '%s')", predicate, object)
}

// Tag marks the current nodes under the given tags, embedded as a single
// JSON array argument.
func (p *Path[T]) Tag(tags ...string) T {
	return p.put("Tag(%s)", jsonList(tags))
}

// Back returns to the nodes marked with tag.
func (p *Path[T]) Back(tag string) T {
	return p.put("Back('%s')", tag)
}

// Save stores the value reached through predicate under tag.
func (p *Path[T]) Save(predicate, tag string) T {
	return p.put("Save('%s', '%s')", predicate, tag)
}

// Intersect keeps only nodes also produced by query, which must be a
// vertex chain or a Raw fragment. Any other expression is rejected with
// an InvalidParameterError and no step is appended.
func (p *Path[T]) Intersect(query Expr) T {
	if !isVertexExpr(query) {
		return p.fail(&InvalidParameterError{op: "Intersect", value: query})
	}
	return p.put("Intersect(%s)", query.String())
}

// Union adds the nodes produced by query, which must be a vertex chain or
// a Raw fragment. Any other expression is rejected with an
// InvalidParameterError and no step is appended.
func (p *Path[T]) Union(query Expr) T {
	if !isVertexExpr(query) {
		return p.fail(&InvalidParameterError{op: "Union", value: query})
	}
	return p.put("Union(%s)", query.String())
}

// Follow applies the morphism (or Raw fragment) forward from the current
// nodes. Any other expression is rejected with an InvalidParameterError
// and no step is appended.
func (p *Path[T]) Follow(query Expr) T {
	if !isMorphismExpr(query) {
		return p.fail(&InvalidParameterError{op: "Follow", value: query})
	}
	return p.put("Follow(%s)", query.String())
}

// FollowR applies the morphism (or Raw fragment) in reverse from the
// current nodes. Any other expression is rejected with an
// InvalidParameterError and no step is appended.
func (p *Path[T]) FollowR(query Expr) T {
	if !isMorphismExpr(query) {
		return p.fail(&InvalidParameterError{op: "FollowR", value: query})
	}
	return p.put("FollowR(%s)", query.String())
}

func isVertexExpr(q Expr) bool {
	switch q.(type) {
	case *Vertex, Raw:
		return true
	default:
		return false
	}
}

func isMorphismExpr(q Expr) bool {
	switch q.(type) {
	case *Morphism, Raw:
		return true
	default:
		return false
	}
}

// jsonList renders the strings as a JSON array with ", " separators, the
// list form the remote endpoint expects for tag arguments.
func jsonList(items []string) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, item := range items {
		if i > 0 {
			b.WriteString(", ")
		}
		data, _ := json.Marshal(item)
		b.Write(data)
	}
	b.WriteByte(']')
	return b.String()
}
