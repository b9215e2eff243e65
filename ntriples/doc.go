// Package ntriples holds the N-Triples line grammar shared by the RDF and
// JSON entity models: parsing a line into subject/predicate/object,
// extracting a Wikidata entity id from a subject or object IRI, and
// formatting triples back out.
//
// It exists so [rdfent] (which parses N-Triples) and [jsonent] (which
// emits N-Triples when converting from JSON) can share the same wire
// grammar without importing each other.
package ntriples
