// Package claimexpr implements the claim expression boolean language: a
// small grammar of property existence and value-membership predicates
// combined with `&`, `|`, and `~`.
//
// An expression is compiled once with [Compile] into an [Expr] tree and then
// evaluated against many entities. The evaluator is defined against the
// abstract [Entity] view rather than any concrete data model, so the same
// compiled [Expr] runs unchanged over both RDF and JSON entities:
//
//	expr, err := claimexpr.Compile("P31:Q5&~P576")
//	if err != nil {
//	    // err wraps ErrClaimSyntax
//	}
//	if expr.Eval(entity) {
//	    // entity matches
//	}
//
// An empty expression string compiles to an [Expr] that matches every
// entity, per the "no claim expression supplied" rule.
package claimexpr
