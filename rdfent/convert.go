package rdfent

import (
	"strings"

	"github.com/wdstream/wdstream/jsonent"
	"github.com/wdstream/wdstream/ntriples"
)

// ToJSON projects e into the JSON entity model per spec section 4.2's
// reverse direction: ok is false for a non-entity pseudo-entity, which has
// no JSON representation. Literal-valued claims are intentionally
// discarded -- only entity-referencing claims survive RDF -> JSON, per
// spec section 1's non-goals.
func (e *Entity) ToJSON() (ent jsonent.Entity, ok bool) {
	if e.ID == "" {
		return nil, false
	}

	out := jsonent.Entity{"id": e.ID, "type": entityTypeString(e.ID)}

	labels := map[string]any{}
	descriptions := map[string]any{}
	aliases := map[string]any{}
	claims := map[string]any{}

	for _, l := range e.lines {
		if !l.parsed {
			continue
		}

		switch l.triple.Predicate {
		case ntriples.LabelPredicateIRI:
			addMonolingual(labels, l.triple.Object)

			continue
		case ntriples.DescriptionPredicateIRI:
			addMonolingual(descriptions, l.triple.Object)

			continue
		case ntriples.AltLabelPredicateIRI:
			addAlias(aliases, l.triple.Object)

			continue
		}

		if !strings.HasPrefix(l.triple.Predicate, ntriples.PropDirectIRIPrefix) {
			continue
		}

		kind, _, _, entityID := ntriples.ClassifyObject(l.triple.Object)
		if kind != ntriples.ObjectEntityIRI {
			continue
		}

		prop := ntriples.LocalName(l.triple.Predicate)
		stmt := map[string]any{
			"mainsnak": map[string]any{
				"snaktype": "value",
				"property": prop,
				"datavalue": map[string]any{
					"type": "wikibase-entityid",
					"value": map[string]any{
						"entity-type": entityTypeString(entityID),
						"id":          entityID,
					},
				},
			},
			"type": "statement",
			"rank": "normal",
		}

		list, _ := claims[prop].([]any)
		claims[prop] = append(list, stmt)
	}

	if len(labels) > 0 {
		out["labels"] = labels
	}

	if len(descriptions) > 0 {
		out["descriptions"] = descriptions
	}

	if len(aliases) > 0 {
		out["aliases"] = aliases
	}

	if len(claims) > 0 {
		out["claims"] = claims
	}

	return out, true
}

// addMonolingual records the last rdfs:label or schema:description value
// seen for a language ("last wins", per spec section 4.2).
func addMonolingual(m map[string]any, object string) {
	kind, value, lang, _ := ntriples.ClassifyObject(object)
	if kind != ntriples.ObjectLangLiteral {
		return
	}

	lang = strings.ToLower(lang)
	m[lang] = map[string]any{"language": lang, "value": value}
}

func addAlias(m map[string]any, object string) {
	kind, value, lang, _ := ntriples.ClassifyObject(object)
	if kind != ntriples.ObjectLangLiteral {
		return
	}

	lang = strings.ToLower(lang)

	list, _ := m[lang].([]any)
	m[lang] = append(list, map[string]any{"language": lang, "value": value})
}

func entityTypeString(id string) string {
	if strings.HasPrefix(id, "P") {
		return "property"
	}

	return "item"
}
