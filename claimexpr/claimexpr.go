package claimexpr

// Entity is the abstract view the claim engine evaluates expressions
// against. Both the RDF and JSON entity models implement it, so a compiled
// [Expr] is agnostic to which data model produced the entity it's given.
type Entity interface {
	// HasProperty reports whether the entity has at least one claim under
	// property prop.
	HasProperty(prop string) bool

	// PropertyHasValue reports whether at least one value under property
	// prop is an entity id present in values. Only entity-reference values
	// participate: for JSON, mainsnak.datavalue.type == "wikibase-entityid";
	// for RDF, only entity-IRI objects.
	PropertyHasValue(prop string, values map[string]struct{}) bool
}

// Expr is a compiled claim expression node. Expr trees are built once by
// [Compile] and are safe for concurrent, read-only evaluation by many
// workers.
type Expr interface {
	Eval(e Entity) bool
}

// alwaysExpr matches every entity. Compiling an empty expression string
// yields this, so callers never need to special-case "no filter configured".
type alwaysExpr struct{}

func (alwaysExpr) Eval(Entity) bool { return true }

// existsExpr is the Exists(P) node: true iff the entity has any claim under
// property Prop.
type existsExpr struct {
	Prop string
}

func (x existsExpr) Eval(e Entity) bool {
	return e.HasProperty(x.Prop)
}

// hasAnyValueExpr is the HasAnyValue(P, V) node: true iff some value under
// property Prop is an entity id in Values.
type hasAnyValueExpr struct {
	Prop   string
	Values map[string]struct{}
}

func (x hasAnyValueExpr) Eval(e Entity) bool {
	return e.PropertyHasValue(x.Prop, x.Values)
}

// andExpr is the And(L, R) node, evaluated with short-circuit semantics.
type andExpr struct {
	L, R Expr
}

func (x andExpr) Eval(e Entity) bool {
	return x.L.Eval(e) && x.R.Eval(e)
}

// orExpr is the Or(L, R) node, evaluated with short-circuit semantics.
type orExpr struct {
	L, R Expr
}

func (x orExpr) Eval(e Entity) bool {
	return x.L.Eval(e) || x.R.Eval(e)
}

// notExpr is the Not(X) node.
type notExpr struct {
	X Expr
}

func (x notExpr) Eval(e Entity) bool {
	return !x.X.Eval(e)
}
