// Package jsonent implements the JSON entity model: parsing NDJSON lines
// into an untyped tree so unknown fields round-trip, filtering that tree
// (by subject, type, property, language, and attribute keep/omit), and
// converting it to N-Triples.
//
// An [Entity] is a thin wrapper around map[string]any; use [ParseLine] to
// read one from an NDJSON (or `latest-all.json`-wrapped) line, [Entity.Filter]
// to apply the filter chain from spec section 4.3, and [Entity.ToRDFLines]
// to project it to N-Triples.
//
// The JSON codec is pluggable via [SetCodec]; it defaults to
// [github.com/bytedance/sonic] for throughput on multi-gigabyte dumps.
package jsonent
