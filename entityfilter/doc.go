// Package entityfilter holds the filter primitives shared by the RDF and
// JSON entity models: language-tag matching, entity type classification,
// and subject/property allowlists.
//
// These are pure, read-only predicates built once at startup from parsed
// configuration and then shared without synchronization across every
// pipeline worker.
package entityfilter
