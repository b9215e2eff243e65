package rdfent

import (
	"bufio"
	"io"

	"github.com/wdstream/wdstream/ntriples"
)

// Reader groups an N-Triples byte stream into [Entity] values, implementing
// the state machine from spec section 4.2: empty -> accumulating(s) -> emit
// -> accumulating(s'), with EOF flushing whatever is currently
// accumulating.
//
// A line that doesn't parse as `<s> <p> <o> .` is passed through as its own
// standalone non-entity when it arrives outside any entity (the N-Triples
// prelude); once an entity is being accumulated, an unparsable line is
// carried along as one of its opaque lines instead of ending it.
type Reader struct {
	sc      *bufio.Scanner
	current *Entity

	lineNum int
	scanErr error
}

// NewReader wraps r for entity-at-a-time reading. The default
// [bufio.Scanner] buffer is widened to tolerate the long `sitelinks`-style
// lines Wikidata dumps occasionally produce.
func NewReader(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	return &Reader{sc: sc}
}

// LinesRead returns the number of input lines consumed so far.
func (rd *Reader) LinesRead() int {
	return rd.lineNum
}

// Next returns the next complete entity, or [io.EOF] once the stream and
// any final accumulating entity have both been exhausted.
func (rd *Reader) Next() (*Entity, error) {
	for {
		if rd.scanErr != nil {
			return rd.flush(rd.scanErr)
		}

		if !rd.sc.Scan() {
			if err := rd.sc.Err(); err != nil {
				rd.scanErr = err
			} else {
				rd.scanErr = io.EOF
			}

			return rd.flush(rd.scanErr)
		}

		rd.lineNum++
		line := rd.sc.Text()
		t, ok := ntriples.ParseLine(line)

		if rd.current == nil {
			if !ok {
				return newRawEntity(line), nil
			}

			rd.current = newEntity(t)
			rd.current.appendParsed(line, t)

			continue
		}

		if !ok {
			rd.current.appendRaw(line)

			continue
		}

		if t.Subject != rd.current.subjectKey {
			done := rd.current
			rd.current = newEntity(t)
			rd.current.appendParsed(line, t)

			return done, nil
		}

		rd.current.appendParsed(line, t)
	}
}

// flush returns the currently accumulating entity, if any, once the
// underlying scan has ended; otherwise it returns the terminal error
// (typically [io.EOF]).
func (rd *Reader) flush(scanErr error) (*Entity, error) {
	if rd.current == nil {
		return nil, scanErr
	}

	done := rd.current
	rd.current = nil

	return done, nil
}
