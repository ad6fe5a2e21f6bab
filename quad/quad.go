// Package quad models directed, optionally labeled graph edges ("quads")
// and deduplicated collections of them, serialized as the JSON payload a
// Cayley-compatible write endpoint expects.
//
// Every field is stored in canonical form: leading and trailing whitespace
// stripped, internal spaces replaced with underscores, letters lowercased.
// Equality, hashing and serialization operate on the canonical form only,
// and a missing label is distinct from an empty one.
package quad

import (
	"encoding/json"
	"fmt"
	"hash/fnv"
	"strings"
)

// Record field names accepted by FromRecord.
const (
	fieldSubject   = "subject"
	fieldPredicate = "predicate"
	fieldObject    = "object"
	fieldLabel     = "label"
)

// Normalize returns the canonical form of a quad field: leading and
// trailing whitespace stripped, every space replaced with an underscore,
// and all letters lowercased. It is total and idempotent.
func Normalize(s string) string {
	return strings.ToLower(strings.ReplaceAll(strings.TrimSpace(s), " ", "_"))
}

// Quad is one directed, optionally labeled graph edge. The zero value is
// an unlabeled quad with empty fields; use New or NewLabeled to build one
// from raw input.
//
// A Quad is a comparable value: two quads are equal iff all four canonical
// fields match, with label absence distinct from an empty label.
type Quad struct {
	subject   string
	predicate string
	object    string
	label     string
	hasLabel  bool
}

// New returns a Quad with the given subject, predicate and object, each
// stored in canonical form. The result carries no label.
func New(subject, predicate, object string) Quad {
	return Quad{
		subject:   Normalize(subject),
		predicate: Normalize(predicate),
		object:    Normalize(object),
	}
}

// NewLabeled returns a labeled Quad. The label is canonicalized like every
// other field; an empty label is still a present label.
func NewLabeled(subject, predicate, object, label string) Quad {
	q := New(subject, predicate, object)
	q.label = Normalize(label)
	q.hasLabel = true
	return q
}

// Subject returns the canonical subject.
func (q Quad) Subject() string { return q.subject }

// Predicate returns the canonical predicate.
func (q Quad) Predicate() string { return q.predicate }

// Object returns the canonical object.
func (q Quad) Object() string { return q.object }

// Label returns the canonical label and whether one is present.
func (q Quad) Label() (string, bool) { return q.label, q.hasLabel }

// FromRecord builds a Quad from a structured record with the required keys
// "subject", "predicate" and "object" plus an optional "label". Missing
// required keys and unknown keys are rejected with an *InvalidQuadError.
func FromRecord(rec map[string]string) (Quad, error) {
	for key := range rec {
		switch key {
		case fieldSubject, fieldPredicate, fieldObject, fieldLabel:
		default:
			return Quad{}, NewInvalidQuadError(fmt.Sprintf("unknown field %q", key))
		}
	}
	for _, key := range [...]string{fieldSubject, fieldPredicate, fieldObject} {
		if _, ok := rec[key]; !ok {
			return Quad{}, NewInvalidQuadError(fmt.Sprintf("missing required field %q", key))
		}
	}
	if label, ok := rec[fieldLabel]; ok {
		return NewLabeled(rec[fieldSubject], rec[fieldPredicate], rec[fieldObject], label), nil
	}
	return New(rec[fieldSubject], rec[fieldPredicate], rec[fieldObject]), nil
}

// Parse builds a Quad from its serialized JSON object form. Text that does
// not decode into a flat string record is rejected with an
// *InvalidQuadError wrapping the decode failure.
func Parse(text []byte) (Quad, error) {
	var rec map[string]string
	if err := json.Unmarshal(text, &rec); err != nil {
		return Quad{}, &InvalidQuadError{reason: "malformed quad text", err: err}
	}
	return FromRecord(rec)
}

// ToRecord returns the structured record form of the quad: subject,
// predicate and object, plus the label key only when a label is present.
func (q Quad) ToRecord() map[string]string {
	rec := map[string]string{
		fieldSubject:   q.subject,
		fieldPredicate: q.predicate,
		fieldObject:    q.object,
	}
	if q.hasLabel {
		rec[fieldLabel] = q.label
	}
	return rec
}

// jsonQuad is the wire form of a Quad.
type jsonQuad struct {
	Subject   string  `json:"subject"`
	Predicate string  `json:"predicate"`
	Object    string  `json:"object"`
	Label     *string `json:"label,omitempty"`
}

// MarshalJSON encodes the quad as its record form, omitting the label key
// entirely when no label is present.
func (q Quad) MarshalJSON() ([]byte, error) {
	jq := jsonQuad{Subject: q.subject, Predicate: q.predicate, Object: q.object}
	if q.hasLabel {
		jq.Label = &q.label
	}
	return json.Marshal(jq)
}

// UnmarshalJSON decodes a JSON object into a canonical Quad, applying the
// same validation as Parse.
func (q *Quad) UnmarshalJSON(data []byte) error {
	parsed, err := Parse(data)
	if err != nil {
		return err
	}
	*q = parsed
	return nil
}

// String returns the JSON text form of the quad.
func (q Quad) String() string {
	data, _ := q.MarshalJSON()
	return string(data)
}

// Equal reports whether both quads have identical canonical fields,
// including label presence.
func (q Quad) Equal(other Quad) bool {
	return q == other
}

// Matches reports whether v represents the same edge as q. Beyond Quad
// values it accepts the structured record form and serialized JSON text:
// record conversion is tried first, then text parsing. Values that convert
// through neither report false rather than an error.
func (q Quad) Matches(v any) bool {
	switch v := v.(type) {
	case Quad:
		return q == v
	case *Quad:
		return v != nil && q == *v
	case map[string]string:
		other, err := FromRecord(v)
		return err == nil && q == other
	case string:
		other, err := Parse([]byte(v))
		return err == nil && q == other
	case []byte:
		other, err := Parse(v)
		return err == nil && q == other
	default:
		return false
	}
}

// Prime weights for the per-field hash combination. Distinct weights keep
// field transpositions from colliding.
const (
	subjectWeight   = 3
	predicateWeight = 5
	objectWeight    = 7
	labelWeight     = 11
)

// absentLabelHash is the fixed contribution of a missing label, keeping it
// distinct from the hash of an empty-string label across calls.
const absentLabelHash uint64 = 0x9e3779b97f4a7c15

// Hash returns a 64-bit hash combined from the four canonical fields,
// each weighted by a distinct prime. Quads that compare equal hash equal.
func (q Quad) Hash() uint64 {
	labelHash := absentLabelHash
	if q.hasLabel {
		labelHash = hashField(q.label)
	}
	return subjectWeight*hashField(q.subject) +
		predicateWeight*hashField(q.predicate) +
		objectWeight*hashField(q.object) +
		labelWeight*labelHash
}

func hashField(s string) uint64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return h.Sum64()
}
