// Package ioformat implements the I/O boundary from spec section 6:
// selecting a decompressor/compressor by name or by sniffing a filename
// suffix, and auto-detecting whether a stream holds N-Triples or NDJSON.
//
// None of this touches entity semantics -- it exists purely to hand the
// rest of the pipeline a plain io.Reader/io.Writer, matching spec section
// 1's framing of the CLI surface and compression choice as collaborators
// around the core.
package ioformat
