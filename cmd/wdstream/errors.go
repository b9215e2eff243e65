package main

import "errors"

var (
	// ErrReadInput indicates an I/O error occurred opening or reading
	// the input stream (fatal IOError, spec section 7).
	ErrReadInput = errors.New("read input")
	// ErrWriteOutput indicates an I/O error occurred opening or writing
	// the output stream (fatal IOError, spec section 7).
	ErrWriteOutput = errors.New("write output")
)
