package rdfent

import (
	"github.com/wdstream/wdstream/claimexpr"
	"github.com/wdstream/wdstream/entityfilter"
	"github.com/wdstream/wdstream/ntriples"
)

// FilterConfig is the compiled per-entity filter chain from spec section
// 4.2, applied in this order by [Entity.Filter]: subject, type, property,
// language, claim expression. It applies uniformly to non-entity
// pseudo-entities too -- spec section 4.2 says those are "emitted
// unchanged (subject to global filters)", not exempt from them.
type FilterConfig struct {
	Subject  entityfilter.IDSet
	Type     entityfilter.EntityType
	Property entityfilter.IDSet
	Language entityfilter.Language
	Claim    claimexpr.Expr
}

// Filter applies the filter chain to e in place (pruning lines for the
// property and language steps), returning false if e should be dropped
// entirely.
func (e *Entity) Filter(cfg FilterConfig) bool {
	if !cfg.Subject.Contains(e.ID) {
		return false
	}

	if !cfg.Type.Match(e.ID) {
		return false
	}

	if cfg.Property.Enabled() {
		e.pruneByProperty(cfg.Property)

		if len(e.lines) == 0 {
			return false
		}
	}

	if cfg.Language.Enabled() {
		e.pruneLangLiterals(cfg.Language)
	}

	if cfg.Claim != nil && !cfg.Claim.Eval(e) {
		return false
	}

	return true
}

// pruneByProperty drops every parsed triple whose predicate's local name
// isn't in allow; opaque (unparsed) lines have no predicate to test and are
// always kept. The claims map is rebuilt from the surviving lines so claim
// evaluation sees the same pruning.
func (e *Entity) pruneByProperty(allow entityfilter.IDSet) {
	kept := e.lines[:0]

	for _, l := range e.lines {
		if !l.parsed || allow.Contains(ntriples.LocalName(l.triple.Predicate)) {
			kept = append(kept, l)
		}
	}

	e.lines = kept
	e.rebuildClaims()
}

// pruneLangLiterals drops triples whose object is a language-tagged
// literal with a non-matching tag. Other triples, including opaque lines,
// are left alone.
func (e *Entity) pruneLangLiterals(lang entityfilter.Language) {
	kept := e.lines[:0]

	for _, l := range e.lines {
		if !l.parsed {
			kept = append(kept, l)

			continue
		}

		kind, _, litLang, _ := ntriples.ClassifyObject(l.triple.Object)
		if kind == ntriples.ObjectLangLiteral && !lang.Match(litLang) {
			continue
		}

		kept = append(kept, l)
	}

	e.lines = kept
}

func (e *Entity) rebuildClaims() {
	e.claims = map[string]map[string]struct{}{}

	for _, l := range e.lines {
		if !l.parsed {
			continue
		}

		kind, _, _, entityID := ntriples.ClassifyObject(l.triple.Object)
		if kind != ntriples.ObjectEntityIRI {
			continue
		}

		prop := ntriples.LocalName(l.triple.Predicate)
		if e.claims[prop] == nil {
			e.claims[prop] = map[string]struct{}{}
		}

		e.claims[prop][entityID] = struct{}{}
	}
}
