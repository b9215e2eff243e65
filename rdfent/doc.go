// Package rdfent implements the RDF (N-Triples) entity model: grouping
// contiguous triples that share a subject into entities, filtering them,
// and converting them to the JSON entity model.
//
// An [Entity] is accumulated by a [Reader] reading one N-Triples line at a
// time; completed entities are handed off (by the caller, typically the
// pipeline's grouper) once the subject changes or EOF is reached. Use
// [Entity.Filter] to apply the per-entity filter chain from spec section
// 4.2, and [Entity.ToJSON] to project an entity into the JSON entity tree.
package rdfent
