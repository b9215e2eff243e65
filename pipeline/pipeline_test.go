package pipeline_test

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wdstream/wdstream/pipeline"
	"github.com/wdstream/wdstream/progress"
)

// intSource is a minimal [pipeline.EntitySource] over a fixed slice of
// ints, one "line" per item, for exercising the pipeline without a real
// entity model.
type intSource struct {
	items []int
	pos   int
}

func (s *intSource) Next() (int, error) {
	if s.pos >= len(s.items) {
		return 0, io.EOF
	}

	v := s.items[s.pos]
	s.pos++

	return v, nil
}

func (s *intSource) LinesRead() int {
	return s.pos
}

func TestRun_PreservesOrderAndFiltersItems(t *testing.T) {
	t.Parallel()

	src := &intSource{items: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}}

	process := func(item int) ([]byte, bool, error) {
		if item%2 != 0 {
			return nil, false, nil
		}

		return []byte(strconv.Itoa(item)), true, nil
	}

	var buf bytes.Buffer

	counters := progress.NewCounters()
	cfg := pipeline.Config{Workers: 4, BatchSize: 3}

	err := pipeline.Run(context.Background(), src, process, &buf, cfg, counters)
	require.NoError(t, err)

	assert.Equal(t, "2\n4\n6\n8\n10\n", buf.String())
	assert.Equal(t, int64(10), counters.EntitiesSeen.Load())
	assert.Equal(t, int64(5), counters.EntitiesMatched.Load())
	assert.Positive(t, counters.BytesWritten.Load())
}

func TestRun_SingleWorkerMatchesManyWorkers(t *testing.T) {
	t.Parallel()

	items := make([]int, 500)
	for i := range items {
		items[i] = i
	}

	process := func(item int) ([]byte, bool, error) {
		return []byte(strconv.Itoa(item)), true, nil
	}

	var buf1, bufN bytes.Buffer

	require.NoError(t, pipeline.Run(context.Background(), &intSource{items: items}, process, &buf1,
		pipeline.Config{Workers: 1, BatchSize: 7}, nil))
	require.NoError(t, pipeline.Run(context.Background(), &intSource{items: items}, process, &bufN,
		pipeline.Config{Workers: 8, BatchSize: 7}, nil))

	assert.Equal(t, buf1.String(), bufN.String())
}

func TestRun_PropagatesProcessError(t *testing.T) {
	t.Parallel()

	src := &intSource{items: []int{1, 2, 3}}
	boom := fmt.Errorf("boom")

	process := func(item int) ([]byte, bool, error) {
		if item == 2 {
			return nil, false, boom
		}

		return []byte(strconv.Itoa(item)), true, nil
	}

	var buf bytes.Buffer

	err := pipeline.Run(context.Background(), src, process, &buf, pipeline.Config{Workers: 2, BatchSize: 1}, nil)
	require.Error(t, err)
}

func TestRun_MaxLinesStopsEarly(t *testing.T) {
	t.Parallel()

	src := &intSource{items: []int{1, 2, 3, 4, 5}}

	process := func(item int) ([]byte, bool, error) {
		return []byte(strconv.Itoa(item)), true, nil
	}

	var buf bytes.Buffer

	cfg := pipeline.Config{Workers: 1, BatchSize: 1, MaxLines: 3}
	require.NoError(t, pipeline.Run(context.Background(), src, process, &buf, cfg, nil))

	assert.Equal(t, "1\n2\n3\n", buf.String())
}

func TestSkipLines(t *testing.T) {
	t.Parallel()

	t.Run("skips the requested number of lines", func(t *testing.T) {
		t.Parallel()

		r := pipeline.SkipLines(strings.NewReader("a\nb\nc\n"), 2)
		out, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "c\n", string(out))
	})

	t.Run("zero is a no-op", func(t *testing.T) {
		t.Parallel()

		r := pipeline.SkipLines(strings.NewReader("a\nb\n"), 0)
		out, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Equal(t, "a\nb\n", string(out))
	})

	t.Run("skipping more lines than present exhausts the reader", func(t *testing.T) {
		t.Parallel()

		r := pipeline.SkipLines(strings.NewReader("a\nb\n"), 10)
		out, err := io.ReadAll(r)
		require.NoError(t, err)
		assert.Empty(t, out)
	})
}
