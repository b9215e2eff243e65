package pipeline

import (
	"bufio"
	"io"
)

// SkipLines returns an io.Reader over r with its first n lines discarded,
// per spec section 4.4's skip_lines option: the cut happens before entity
// grouping, so the caller must pick a cut that lands on an entity
// boundary to get sensible results. n<=0 returns r unchanged.
//
// If r has fewer than n lines, the returned reader is exhausted
// immediately (reads yield io.EOF).
func SkipLines(r io.Reader, n int) io.Reader {
	if n <= 0 {
		return r
	}

	br := bufio.NewReader(r)

	for i := 0; i < n; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			break
		}
	}

	return br
}
