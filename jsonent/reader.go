package jsonent

import (
	"bufio"
	"io"
)

// Reader reads NDJSON (or array-wrapped latest-all.json) line by line,
// skipping blank lines and stray array brackets, implementing
// [github.com/wdstream/wdstream/pipeline.EntitySource].
type Reader struct {
	sc      *bufio.Scanner
	lineNum int
}

// NewReader wraps r for entity-at-a-time reading.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	return &Reader{sc: sc}
}

// LinesRead returns the number of input lines consumed so far.
func (rd *Reader) LinesRead() int {
	return rd.lineNum
}

// Next returns the next entity, or [io.EOF] once the stream is exhausted.
func (rd *Reader) Next() (Entity, error) {
	for {
		if !rd.sc.Scan() {
			if err := rd.sc.Err(); err != nil {
				return nil, err
			}

			return nil, io.EOF
		}

		rd.lineNum++

		ent, ok, err := ParseLine(rd.sc.Bytes())
		if err != nil {
			return nil, err
		}

		if !ok {
			continue
		}

		return ent, nil
	}
}
