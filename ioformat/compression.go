package ioformat

import (
	"compress/bzip2"
	"fmt"
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/pierrec/lz4/v4"
)

// Compression names the supported decompressor/compressor codecs, as named
// by the `compress`/`format` configuration surface in spec section 6.
type Compression string

const (
	CompressionNone     Compression = "none"
	CompressionBzip2    Compression = "bzip2"
	CompressionGzip     Compression = "gzip"
	CompressionLZ4Frame Compression = "lz4-frame"
)

// ErrUnsupportedCompression indicates a codec name outside the set
// [NewDecompressor]/[NewCompressor] understands, or one the requested
// direction doesn't support (bzip2 has no encoder).
var ErrUnsupportedCompression = fmt.Errorf("unsupported compression")

// NewDecompressor wraps r with the decompressor named by c. "" and
// [CompressionNone] return r unchanged.
func NewDecompressor(r io.Reader, c Compression) (io.Reader, error) {
	switch c {
	case "", CompressionNone:
		return r, nil
	case CompressionBzip2:
		return bzip2.NewReader(r), nil
	case CompressionGzip:
		gr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("opening gzip stream: %w", err)
		}

		return gr, nil
	case CompressionLZ4Frame:
		return lz4.NewReader(r), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCompression, c)
	}
}

// nopWriteCloser adapts an io.Writer with no Close of its own (the
// CompressionNone case) to io.WriteCloser.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// NewCompressor wraps w with the compressor named by c. "" and
// [CompressionNone] return w unchanged, adapted to io.WriteCloser.
// [CompressionBzip2] is rejected: the standard library and the pack ship
// no bzip2 encoder, and spec section 6 restricts bzip2 to the input
// decompressor set only.
func NewCompressor(w io.Writer, c Compression) (io.WriteCloser, error) {
	switch c {
	case "", CompressionNone:
		return nopWriteCloser{w}, nil
	case CompressionGzip:
		return gzip.NewWriter(w), nil
	case CompressionLZ4Frame:
		return lz4.NewWriter(w), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedCompression, c)
	}
}

// DetectCompression infers a [Compression] from a filename's suffix, per
// spec section 6's detection precedence (an explicit flag overrides this;
// this is the fallback). An unrecognized or absent suffix yields
// [CompressionNone].
func DetectCompression(filename string) Compression {
	switch {
	case strings.HasSuffix(filename, ".bz2"):
		return CompressionBzip2
	case strings.HasSuffix(filename, ".gz"):
		return CompressionGzip
	case strings.HasSuffix(filename, ".lz4"):
		return CompressionLZ4Frame
	default:
		return CompressionNone
	}
}
