package ioformat

import (
	"bufio"
	"fmt"
	"strings"
)

// Format names which entity model an input or output stream uses.
type Format string

const (
	FormatAuto Format = "auto"
	FormatRDF  Format = "rdf"
	FormatJSON Format = "json"
)

// ErrUndetectableFormat indicates auto-detection couldn't classify a
// stream or filename as either rdf or json.
var ErrUndetectableFormat = fmt.Errorf("undetectable format")

var compressionSuffixes = []string{".gz", ".bz2", ".lz4"}

// DetectFormatFromFilename infers a [Format] from a filename's suffix, per
// spec section 6: ".nt*" is rdf, ".json*"/".ndjson*" is json, ignoring any
// trailing compression suffix. ok is false when the suffix is
// unrecognized, in which case the caller should fall back to
// [SniffFormat] on the stream's content.
func DetectFormatFromFilename(filename string) (format Format, ok bool) {
	base := filename
	for _, suf := range compressionSuffixes {
		base = strings.TrimSuffix(base, suf)
	}

	switch {
	case strings.HasSuffix(base, ".nt"):
		return FormatRDF, true
	case strings.HasSuffix(base, ".json"), strings.HasSuffix(base, ".ndjson"):
		return FormatJSON, true
	default:
		return "", false
	}
}

// SniffFormat inspects r's first non-empty line's first byte to decide
// between rdf ('<') and json ('{'), for stdin in auto mode where there's
// no filename to go by. It only peeks, so r can still be read normally
// afterward.
func SniffFormat(r *bufio.Reader) (Format, error) {
	for {
		b, err := r.Peek(1)
		if err != nil {
			return "", fmt.Errorf("sniffing format: %w", err)
		}

		switch b[0] {
		case '<':
			return FormatRDF, nil
		case '{':
			return FormatJSON, nil
		case '\n', '\r', ' ', '\t':
			if _, err := r.ReadByte(); err != nil {
				return "", fmt.Errorf("sniffing format: %w", err)
			}
		default:
			return "", fmt.Errorf("%w: unexpected leading byte %q", ErrUndetectableFormat, b[0])
		}
	}
}
