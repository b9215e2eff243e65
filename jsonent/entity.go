package jsonent

import (
	"strings"
)

// Entity is a Wikidata JSON entity document, kept as an untyped tree so
// unknown top-level or nested fields round-trip unchanged. The recognized
// top-level attributes are id, type, labels, descriptions, aliases,
// claims, and sitelinks (see [RecognizedAttributes]), but any others
// present on input survive filtering untouched.
type Entity map[string]any

// RecognizedAttributes is the exact set of top-level attribute names the
// keep/omit projection (spec section 4.3.1) understands.
var RecognizedAttributes = map[string]struct{}{
	"id":           {},
	"type":         {},
	"labels":       {},
	"descriptions": {},
	"aliases":      {},
	"claims":       {},
	"sitelinks":    {},
}

// ParseLine parses one line of NDJSON (or a line from the
// `latest-all.json` array-wrapped dump) into an [Entity]. Leading/trailing
// array brackets and commas are stripped first; a blank result after
// stripping yields ok=false with a nil error, distinguishing "nothing to
// parse here" from a genuine parse failure.
func ParseLine(raw []byte) (ent Entity, ok bool, err error) {
	line := strings.TrimSpace(string(raw))
	line = strings.TrimPrefix(line, "[")
	line = strings.TrimSuffix(line, "]")
	line = strings.TrimSuffix(line, ",")
	line = strings.TrimSpace(line)

	if line == "" {
		return nil, false, nil
	}

	if err := Unmarshal([]byte(line), &ent); err != nil {
		return nil, true, err
	}

	return ent, true, nil
}

// ID returns the entity's "id" attribute, or "" if absent or not a string.
func (e Entity) ID() string {
	id, _ := e["id"].(string)

	return id
}

// Type returns the entity's "type" attribute, or "" if absent or not a
// string.
func (e Entity) Type() string {
	typ, _ := e["type"].(string)

	return typ
}

// Serialize marshals the entity back to a single JSON line using the
// configured codec.
func (e Entity) Serialize() ([]byte, error) {
	return Marshal(map[string]any(e))
}

// claims returns the entity's "claims" object, or nil if absent or
// malformed.
func (e Entity) claims() map[string]any {
	claims, _ := e["claims"].(map[string]any)

	return claims
}

// HasProperty implements [github.com/wdstream/wdstream/claimexpr.Entity]:
// true iff the entity has at least one statement under property prop.
func (e Entity) HasProperty(prop string) bool {
	stmts, ok := e.claims()[prop].([]any)

	return ok && len(stmts) > 0
}

// PropertyHasValue implements
// [github.com/wdstream/wdstream/claimexpr.Entity]: true iff some statement
// under prop has a wikibase-entityid datavalue whose id is in values.
func (e Entity) PropertyHasValue(prop string, values map[string]struct{}) bool {
	stmts, ok := e.claims()[prop].([]any)
	if !ok {
		return false
	}

	for _, s := range stmts {
		id, dvType, ok := statementEntityValue(s)
		if !ok || dvType != "wikibase-entityid" {
			continue
		}

		if _, matched := values[id]; matched {
			return true
		}
	}

	return false
}

// statementEntityValue extracts the mainsnak.datavalue.type and, when it is
// "wikibase-entityid", the referenced entity id from one claim statement.
func statementEntityValue(s any) (id, dvType string, ok bool) {
	stmt, ok := s.(map[string]any)
	if !ok {
		return "", "", false
	}

	mainsnak, ok := stmt["mainsnak"].(map[string]any)
	if !ok {
		return "", "", false
	}

	datavalue, ok := mainsnak["datavalue"].(map[string]any)
	if !ok {
		return "", "", false
	}

	dvType, _ = datavalue["type"].(string)

	if dvType != "wikibase-entityid" {
		return "", dvType, true
	}

	value, ok := datavalue["value"].(map[string]any)
	if !ok {
		return "", dvType, true
	}

	id, _ = value["id"].(string)

	return id, dvType, true
}
