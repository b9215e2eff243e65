package jsonent

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/wdstream/wdstream/ntriples"
)

// ToRDFLines converts e to N-Triples lines per spec section 4.3's reverse
// direction: labels, then descriptions, then aliases, then claims in
// property-ascending order. Within each group entries are emitted in
// language (or property) ascending order so the same entity always
// produces the same lines, regardless of Go's randomized map iteration.
//
// A statement whose mainsnak datavalue type isn't one of
// wikibase-entityid, string, monolingualtext, quantity, time, or
// globecoordinate is silently skipped: there's no RDF shape for it to
// take.
func (e Entity) ToRDFLines() []string {
	id := e.ID()
	if id == "" {
		return nil
	}

	var lines []string

	lines = append(lines, e.labelLines(id)...)
	lines = append(lines, e.descriptionLines(id)...)
	lines = append(lines, e.aliasLines(id)...)
	lines = append(lines, e.claimLines(id)...)

	return lines
}

func (e Entity) labelLines(id string) []string {
	return e.monolingualAttrLines(id, "labels", ntriples.LabelPredicateIRI)
}

func (e Entity) descriptionLines(id string) []string {
	return e.monolingualAttrLines(id, "descriptions", ntriples.DescriptionPredicateIRI)
}

func (e Entity) monolingualAttrLines(id, attr, predicate string) []string {
	m, ok := e[attr].(map[string]any)
	if !ok {
		return nil
	}

	subject := ntriples.EntityIRIPrefix + id

	var lines []string

	for _, tag := range sortedKeys(m) {
		lang, value, ok := extractLangValue(m[tag], tag)
		if !ok {
			continue
		}

		lines = append(lines, ntriples.FormatLine(subject, predicate, ntriples.FormatLangLiteral(value, lang)))
	}

	return lines
}

func (e Entity) aliasLines(id string) []string {
	m, ok := e["aliases"].(map[string]any)
	if !ok {
		return nil
	}

	subject := ntriples.EntityIRIPrefix + id

	var lines []string

	for _, tag := range sortedKeys(m) {
		arr, ok := m[tag].([]any)
		if !ok {
			continue
		}

		for _, item := range arr {
			lang, value, ok := extractLangValue(item, tag)
			if !ok {
				continue
			}

			lines = append(lines, ntriples.FormatLine(subject, ntriples.AltLabelPredicateIRI, ntriples.FormatLangLiteral(value, lang)))
		}
	}

	return lines
}

func (e Entity) claimLines(id string) []string {
	claims := e.claims()
	if claims == nil {
		return nil
	}

	subject := ntriples.EntityIRIPrefix + id

	var lines []string

	for _, prop := range sortedProps(claims) {
		stmts, ok := claims[prop].([]any)
		if !ok {
			continue
		}

		predicate := ntriples.PropDirectIRIPrefix + prop

		for _, s := range stmts {
			object, ok := statementObject(s)
			if !ok {
				continue
			}

			lines = append(lines, ntriples.FormatLine(subject, predicate, object))
		}
	}

	return lines
}

// statementObject formats the already-bracketed/quoted object token for one
// claim statement, dispatching on its mainsnak datavalue type.
func statementObject(s any) (object string, ok bool) {
	stmt, ok := s.(map[string]any)
	if !ok {
		return "", false
	}

	mainsnak, ok := stmt["mainsnak"].(map[string]any)
	if !ok {
		return "", false
	}

	datavalue, ok := mainsnak["datavalue"].(map[string]any)
	if !ok {
		return "", false
	}

	dvType, _ := datavalue["type"].(string)

	switch dvType {
	case "wikibase-entityid":
		value, ok := datavalue["value"].(map[string]any)
		if !ok {
			return "", false
		}

		targetID, _ := value["id"].(string)
		if targetID == "" {
			return "", false
		}

		return ntriples.FormatEntityIRI(targetID), true

	case "string":
		value, _ := datavalue["value"].(string)

		return ntriples.FormatStringLiteral(value), true

	case "monolingualtext":
		value, ok := datavalue["value"].(map[string]any)
		if !ok {
			return "", false
		}

		text, _ := value["text"].(string)
		lang, _ := value["language"].(string)

		return ntriples.FormatLangLiteral(text, lang), true

	case "quantity":
		value, ok := datavalue["value"].(map[string]any)
		if !ok {
			return "", false
		}

		amount, _ := value["amount"].(string)
		amount = strings.TrimPrefix(amount, "+")

		return ntriples.FormatTypedLiteral(amount, ntriples.XSDDecimalIRI), true

	case "time":
		value, ok := datavalue["value"].(map[string]any)
		if !ok {
			return "", false
		}

		timeValue, _ := value["time"].(string)

		return ntriples.FormatTypedLiteral(timeValue, ntriples.XSDDateTimeIRI), true

	case "globecoordinate":
		value, ok := datavalue["value"].(map[string]any)
		if !ok {
			return "", false
		}

		lat, latOK := toFloat(value["latitude"])
		lon, lonOK := toFloat(value["longitude"])

		if !latOK || !lonOK {
			return "", false
		}

		wkt := fmt.Sprintf("Point(%s %s)", formatCoord(lon), formatCoord(lat))

		return ntriples.FormatTypedLiteral(wkt, ntriples.GeoWKTLiteralIRI), true

	default:
		return "", false
	}
}

// extractLangValue reads a (language, value) pair from a JSON label,
// description, or alias entry. Wikidata's own dump format uses
// {"language": lang, "value": v} objects; a bare string is also accepted,
// falling back to fallbackLang, for JSON produced by other tools.
func extractLangValue(item any, fallbackLang string) (lang, value string, ok bool) {
	switch v := item.(type) {
	case string:
		return fallbackLang, v, true
	case map[string]any:
		val, _ := v["value"].(string)

		l, _ := v["language"].(string)
		if l == "" {
			l = fallbackLang
		}

		return l, val, true
	default:
		return "", "", false
	}
}

func toFloat(v any) (float64, bool) {
	f, ok := v.(float64)

	return f, ok
}

func formatCoord(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// sortedProps orders property ids numerically ("P9" before "P10"), not
// lexicographically, matching spec section 4.3's "property-ascending
// order".
func sortedProps(claims map[string]any) []string {
	props := make([]string, 0, len(claims))
	for p := range claims {
		props = append(props, p)
	}

	sort.Slice(props, func(i, j int) bool {
		return propNum(props[i]) < propNum(props[j])
	})

	return props
}

func propNum(p string) int {
	n, _ := strconv.Atoi(strings.TrimPrefix(p, "P"))

	return n
}
