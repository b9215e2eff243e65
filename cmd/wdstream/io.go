package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/wdstream/wdstream/ioformat"
)

// openInput opens path (or stdin, for "" or "-") and wraps it with the
// decompressor chosen from the filename suffix, falling back to none.
// Stdin is always read uncompressed, and no option overrides the suffix
// for input.
func openInput(path string) (io.Reader, func() error, error) {
	var (
		raw  io.Reader
		file *os.File
		err  error
	)

	if path == "" || path == "-" {
		raw = os.Stdin
	} else {
		file, err = os.Open(path)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %w", ErrReadInput, err)
		}

		raw = file
	}

	compression := ioformat.CompressionNone
	if path != "" && path != "-" {
		compression = ioformat.DetectCompression(path)
	}

	decompressed, err := ioformat.NewDecompressor(raw, compression)
	if err != nil {
		if file != nil {
			file.Close()
		}

		return nil, nil, fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	return decompressed, closeIfFile(file), nil
}

// openOutput opens cfg.Output (or stdout, for "" or "-") and wraps it with
// the compressor named by compiled.OutputCompression, or, if unset, the
// output filename's suffix.
func openOutput(outPath, compress string) (io.WriteCloser, error) {
	var (
		raw  io.Writer
		file *os.File
		err  error
	)

	if outPath == "" || outPath == "-" {
		raw = os.Stdout
	} else {
		file, err = os.Create(outPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
		}

		raw = file
	}

	compression := ioformat.Compression(compress)
	if compression == "" && outPath != "" && outPath != "-" {
		compression = ioformat.DetectCompression(outPath)
	}

	wc, err := ioformat.NewCompressor(raw, compression)
	if err != nil {
		if file != nil {
			file.Close()
		}

		return nil, fmt.Errorf("%w: %w", ErrWriteOutput, err)
	}

	return &compositeCloser{WriteCloser: wc, file: file}, nil
}

// compositeCloser closes both the compressor and, if present, the
// underlying file, reporting the first error either produces.
type compositeCloser struct {
	io.WriteCloser
	file *os.File
}

func (c *compositeCloser) Close() error {
	err := c.WriteCloser.Close()

	if c.file != nil {
		if fileErr := c.file.Close(); err == nil {
			err = fileErr
		}
	}

	return err
}

func closeIfFile(file *os.File) func() error {
	return func() error {
		if file == nil {
			return nil
		}

		return file.Close()
	}
}

// detectFormat resolves the input format per spec section 6: an explicit
// override wins; otherwise the input filename's suffix; otherwise, for
// stdin or an unrecognized suffix, the stream's content is sniffed. The
// returned *bufio.Reader must be used for all further reads: sniffing
// peeks into it without consuming bytes.
func detectFormat(r io.Reader, inputPath string, override ioformat.Format) (ioformat.Format, *bufio.Reader, error) {
	br := bufio.NewReader(r)

	if override != "" && override != ioformat.FormatAuto {
		return override, br, nil
	}

	if inputPath != "" && inputPath != "-" {
		if f, ok := ioformat.DetectFormatFromFilename(inputPath); ok {
			return f, br, nil
		}
	}

	f, err := ioformat.SniffFormat(br)
	if err != nil {
		return "", br, err
	}

	return f, br, nil
}
