// Package pipeline implements the parallel batch pipeline from spec
// section 4.4: a single reader goroutine groups a stream of entities into
// sequence-numbered batches, a pool of worker goroutines filters and
// serializes each entity, and a single writer goroutine re-imposes input
// order before emitting bytes.
//
// The pipeline is generic over the entity type so the same [Run] drives
// both the RDF entity model ([github.com/wdstream/wdstream/rdfent]) and the
// JSON entity model ([github.com/wdstream/wdstream/jsonent]): both expose
// an [EntitySource], and the caller supplies a [ProcessFunc] closing over
// the appropriate filter configuration and conversion.
package pipeline
