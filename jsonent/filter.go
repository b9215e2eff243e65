package jsonent

import (
	"github.com/wdstream/wdstream/claimexpr"
	"github.com/wdstream/wdstream/entityfilter"
)

// FilterConfig is the compiled per-entity filter chain from spec section
// 4.3, applied in this order by [Entity.Filter]: subject, type, property,
// language, keep/omit, claim expression. Attribute projection runs before
// claim evaluation, so an entity whose "claims" attribute is projected
// away by keep/omit cannot match a non-trivial claim expression.
type FilterConfig struct {
	Subject  entityfilter.IDSet
	Type     entityfilter.EntityType
	Property entityfilter.IDSet
	Language entityfilter.Language
	KeepOmit KeepOmit
	Claim    claimexpr.Expr
}

// Filter applies the filter chain to e in place, returning false if e
// should be dropped. On true, e has been mutated to reflect property,
// language, and keep/omit projection.
func (e Entity) Filter(cfg FilterConfig) bool {
	if !cfg.Subject.Contains(e.ID()) {
		return false
	}

	if !cfg.Type.MatchTypeString(e.Type()) {
		return false
	}

	if cfg.Property.Enabled() {
		pruneClaimsByProperty(e.claims(), cfg.Property)
	}

	if cfg.Language.Enabled() {
		pruneLangMap(e, "labels", cfg.Language)
		pruneLangMap(e, "descriptions", cfg.Language)
		pruneAliases(e, cfg.Language)
		pruneMonolingualClaims(e, cfg.Language)
	}

	if cfg.KeepOmit.Enabled() {
		cfg.KeepOmit.Apply(e)
	}

	if cfg.Claim != nil && !cfg.Claim.Eval(e) {
		return false
	}

	return true
}

func pruneClaimsByProperty(claims map[string]any, property entityfilter.IDSet) {
	for prop := range claims {
		if !property.Contains(prop) {
			delete(claims, prop)
		}
	}
}

func pruneLangMap(e Entity, key string, lang entityfilter.Language) {
	m, ok := e[key].(map[string]any)
	if !ok {
		return
	}

	for tag := range m {
		if !lang.Match(tag) {
			delete(m, tag)
		}
	}
}

// pruneAliases is like pruneLangMap but aliases map to a list of entries
// per language rather than a single object; a retained language's list is
// kept whole, with nothing further pruned within it.
func pruneAliases(e Entity, lang entityfilter.Language) {
	pruneLangMap(e, "aliases", lang)
}

// pruneMonolingualClaims drops monolingualtext claim values whose language
// doesn't match, leaving other datavalue types untouched.
func pruneMonolingualClaims(e Entity, lang entityfilter.Language) {
	claims := e.claims()
	if claims == nil {
		return
	}

	for prop, v := range claims {
		stmts, ok := v.([]any)
		if !ok {
			continue
		}

		kept := stmts[:0]

		for _, s := range stmts {
			if keepMonolingualStatement(s, lang) {
				kept = append(kept, s)
			}
		}

		claims[prop] = kept
	}
}

func keepMonolingualStatement(s any, lang entityfilter.Language) bool {
	stmt, ok := s.(map[string]any)
	if !ok {
		return true
	}

	mainsnak, ok := stmt["mainsnak"].(map[string]any)
	if !ok {
		return true
	}

	datavalue, ok := mainsnak["datavalue"].(map[string]any)
	if !ok {
		return true
	}

	if t, _ := datavalue["type"].(string); t != "monolingualtext" {
		return true
	}

	value, ok := datavalue["value"].(map[string]any)
	if !ok {
		return true
	}

	tag, _ := value["language"].(string)

	return lang.Match(tag)
}
