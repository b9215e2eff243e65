package rdfent

import "github.com/wdstream/wdstream/ntriples"

// Entity is one accumulated group of contiguous N-Triples sharing a
// subject. ID and IsEntity are empty/false when the subject wasn't a
// Wikidata entity IRI (the "non-entity pseudo-entity" of spec section
// 4.2), in which case the entity exists only to carry its triples through
// unchanged.
type Entity struct {
	ID       string
	IsEntity bool

	subjectKey string
	lines      []entityLine
	claims     map[string]map[string]struct{}
}

// entityLine is one line belonging to an entity: either a successfully
// parsed triple, or an opaque line carried along verbatim because it
// didn't parse as `<s> <p> <o> .` (spec section 7's "recoverable
// malformation").
type entityLine struct {
	raw    string
	triple ntriples.Triple
	parsed bool
}

func newEntity(t ntriples.Triple) *Entity {
	id, isEntity := ntriples.ExtractEntityID(t.Subject)

	return &Entity{
		ID:         id,
		IsEntity:   isEntity,
		subjectKey: t.Subject,
		claims:     map[string]map[string]struct{}{},
	}
}

func newRawEntity(line string) *Entity {
	return &Entity{lines: []entityLine{{raw: line, parsed: false}}}
}

func (e *Entity) appendParsed(raw string, t ntriples.Triple) {
	e.lines = append(e.lines, entityLine{raw: raw, triple: t, parsed: true})

	kind, _, _, entityID := ntriples.ClassifyObject(t.Object)
	if kind != ntriples.ObjectEntityIRI {
		return
	}

	prop := ntriples.LocalName(t.Predicate)
	if e.claims[prop] == nil {
		e.claims[prop] = map[string]struct{}{}
	}

	e.claims[prop][entityID] = struct{}{}
}

func (e *Entity) appendRaw(raw string) {
	e.lines = append(e.lines, entityLine{raw: raw, parsed: false})
}

// Lines returns the entity's surviving triple lines in original order and
// original bytes.
func (e *Entity) Lines() []string {
	out := make([]string, len(e.lines))
	for i, l := range e.lines {
		out[i] = l.raw
	}

	return out
}

// Claims returns the property -> referenced-entity-id sets accumulated
// from this entity's entity-valued triples. The returned map must not be
// mutated by callers outside this package.
func (e *Entity) Claims() map[string]map[string]struct{} {
	return e.claims
}

// HasProperty implements [github.com/wdstream/wdstream/claimexpr.Entity].
func (e *Entity) HasProperty(prop string) bool {
	return len(e.claims[prop]) > 0
}

// PropertyHasValue implements
// [github.com/wdstream/wdstream/claimexpr.Entity].
func (e *Entity) PropertyHasValue(prop string, values map[string]struct{}) bool {
	for v := range e.claims[prop] {
		if _, ok := values[v]; ok {
			return true
		}
	}

	return false
}
