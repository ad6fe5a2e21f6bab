package quad

import (
	"encoding/json"
	"fmt"

	"github.com/tidwall/btree"
)

// Set is a deduplicated collection of quads with deterministic iteration
// order: adding a quad equal to an existing member is a no-op, and members
// are always yielded in canonical field order.
//
// A Set is owned by the caller building it and is not safe for concurrent
// mutation.
type Set struct {
	tree *btree.BTreeG[Quad]
}

// quadLess orders quads by canonical field, with an unlabeled quad sorting
// before labeled quads sharing the same triple.
func quadLess(a, b Quad) bool {
	switch {
	case a.subject != b.subject:
		return a.subject < b.subject
	case a.predicate != b.predicate:
		return a.predicate < b.predicate
	case a.object != b.object:
		return a.object < b.object
	case a.hasLabel != b.hasLabel:
		return !a.hasLabel
	default:
		return a.label < b.label
	}
}

// NewSet returns a Set holding the given quads, deduplicated.
func NewSet(quads ...Quad) *Set {
	s := &Set{tree: btree.NewBTreeG[Quad](quadLess)}
	s.AddAll(quads...)
	return s
}

// FromRecords builds a Set by converting every record with FromRecord and
// deduplicating the results.
func FromRecords(records []map[string]string) (*Set, error) {
	s := NewSet()
	for i, rec := range records {
		q, err := FromRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		s.Add(q)
	}
	return s, nil
}

// ParseSet builds a Set from a JSON array of quad records.
func ParseSet(text []byte) (*Set, error) {
	var records []map[string]string
	if err := json.Unmarshal(text, &records); err != nil {
		return nil, &InvalidQuadError{reason: "malformed quad array", err: err}
	}
	return FromRecords(records)
}

// Add inserts q and reports whether the set grew. Adding a quad equal to
// an existing member leaves the set unchanged.
func (s *Set) Add(q Quad) bool {
	_, replaced := s.tree.Set(q)
	return !replaced
}

// AddAll merges the given quads into the current content in place.
func (s *Set) AddAll(quads ...Quad) {
	for _, q := range quads {
		s.tree.Set(q)
	}
}

// Merge adds every member of other into s (set union, in place), leaving
// other untouched. A nil other is a no-op.
func (s *Set) Merge(other *Set) {
	if other == nil {
		return
	}
	other.tree.Scan(func(q Quad) bool {
		s.tree.Set(q)
		return true
	})
}

// Contains reports whether an equal quad is already a member.
func (s *Set) Contains(q Quad) bool {
	_, ok := s.tree.Get(q)
	return ok
}

// Len returns the number of quads in the set.
func (s *Set) Len() int {
	return s.tree.Len()
}

// Quads returns the members in their deterministic order.
func (s *Set) Quads() []Quad {
	out := make([]Quad, 0, s.tree.Len())
	s.tree.Scan(func(q Quad) bool {
		out = append(out, q)
		return true
	})
	return out
}

// MarshalJSON encodes the set as a JSON array of member records, each
// following the label-omission rule. This is the exact payload the write
// endpoint consumes.
func (s *Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Quads())
}

// String returns the JSON array text form of the set.
func (s *Set) String() string {
	data, _ := s.MarshalJSON()
	return string(data)
}
