package batch_test

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/transversal/batch"
	"github.com/katalvlaran/transversal/combin"
	"github.com/katalvlaran/transversal/orbit"
	"github.com/katalvlaran/transversal/partition"
)

// triangleSquareHeader is the triangle 1-2-3 plus the 4-cycle 4-5-6-7.
const triangleSquareHeader = `7 2
7 1 2 3 4 5 6 7
7 2 1 3 4 5 6 7
7 3 2 1 4 5 6 7
7 4 5 7 1 2 6 3
7 5 4 6 2 1 3 7
7 6 5 7 4 2 1 3
7 7 6 4 3 5 2 1
2 2 3
`

// completePairsHeader is every pair of {1,2,3,4}.
const completePairsHeader = `4 2
4 1 2 3 4
4 2 1 3 4
4 3 2 1 4
4 4 2 3 1
3 2 3 4
`

func TestReader_Tokens(t *testing.T) {
	r := batch.NewReader(strings.NewReader("  12\t-3\n+4 "))

	for _, want := range []int{12, -3, 4} {
		v, err := r.Int()
		require.NoError(t, err)
		assert.Equal(t, want, v)
	}
	assert.Equal(t, int64(11), r.Offset())

	_, err := r.Int()
	assert.ErrorIs(t, err, batch.ErrTruncated)
}

func TestReader_Malformed(t *testing.T) {
	cases := map[string]struct {
		in   string
		want error
	}{
		"letters":         {"abc", batch.ErrMalformed},
		"digits then tag": {"12abc", batch.ErrMalformed},
		"double sign":     {"--1", batch.ErrMalformed},
		"overflow":        {"99999999999", batch.ErrMalformed},
		"sign at eof":     {"-", batch.ErrTruncated},
		"empty":           {"  \n", batch.ErrTruncated},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := batch.NewReader(strings.NewReader(tc.in)).Int()
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReader_ConsumesOneDelimiter(t *testing.T) {
	src := strings.NewReader("5\n\nrest")
	v, err := batch.NewReader(src).Int()
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.Equal(t, len("\nrest"), src.Len())
}

func TestReader_List(t *testing.T) {
	r := batch.NewReader(strings.NewReader("3 1 2 3\n0\n"))
	list, err := r.List()
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, list)

	list, err = r.List()
	require.NoError(t, err)
	assert.Empty(t, list)

	_, err = r.List()
	assert.ErrorIs(t, err, io.EOF)

	_, err = batch.NewReader(strings.NewReader("-1 5")).List()
	assert.ErrorIs(t, err, batch.ErrMalformed)

	_, err = batch.NewReader(strings.NewReader("3 1 2")).List()
	assert.ErrorIs(t, err, batch.ErrTruncated)
}

func TestReadHeader(t *testing.T) {
	h, err := batch.ReadHeader(batch.NewReader(strings.NewReader(triangleSquareHeader)), nil)
	require.NoError(t, err)
	assert.Equal(t, 7, h.N)
	assert.Equal(t, 2, h.K)
	assert.Equal(t, []int{2, 3}, h.Descriptor.ReferenceAdjacency())
	assert.Equal(t, [][]int{{4, 5}, {4, 7}}, h.Descriptor.Members(4))
}

func TestReadHeader_Errors(t *testing.T) {
	cases := map[string]struct {
		in   string
		want error
	}{
		"k too small":       {"4 1\n", orbit.ErrBadDimensions},
		"k exceeds n":       {"2 3\n", orbit.ErrBadDimensions},
		"missing k":         {"4", batch.ErrTruncated},
		"missing cosetreps": {"4 2\n4 1 2 3 4\n", batch.ErrTruncated},
		"missing adjacency": {strings.TrimSuffix(completePairsHeader, "3 2 3 4\n"), batch.ErrTruncated},
		"short cosetrep":    {"2 2\n2 1 2\n1 2\n1 2\n", orbit.ErrBadCosetRep},
		"bad adjacency":     {"2 2\n2 1 2\n2 2 1\n1 1\n", orbit.ErrBadAdjacency},
		"negative length":   {"2 2\n-2\n", batch.ErrMalformed},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := batch.ReadHeader(batch.NewReader(strings.NewReader(tc.in)), combin.NewCache())
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestReadHeader_TableTooLarge(t *testing.T) {
	cache := combin.NewCache(combin.WithMaxSize(2))
	_, err := batch.ReadHeader(batch.NewReader(strings.NewReader(completePairsHeader)), cache)
	assert.ErrorIs(t, err, combin.ErrTooLarge)
}

func TestDriver_StopsAtFirstFalse(t *testing.T) {
	src := strings.NewReader(triangleSquareHeader + "1 4\n1 1\ngarbage\n")
	var out bytes.Buffer

	d := batch.Driver{Witness: true}
	sum, err := d.Run(context.Background(), src, &out)
	require.NoError(t, err)

	assert.Equal(t, "0\n", out.String())
	assert.Equal(t, len("garbage\n"), src.Len(), "bytes after the failing block stay unread")
	assert.False(t, sum.Holds)
	assert.Equal(t, 2, sum.Queries)
	assert.Equal(t, []int{1}, sum.FailingSeed)
	assert.Equal(t, []int{1, 1, 1, 2, 2, 2, 2}, sum.Witness)
	assert.Equal(t, 2, sum.Degree)
}

func TestDriver_AllSeedsHold(t *testing.T) {
	for name, tail := range map[string]string{
		"terminated":   "1 1\n1 2\n1 3\n1 4\n0\n",
		"end of input": "1 1\n1 2\n1 3\n1 4",
		"no seeds":     "0\n",
	} {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			sum, err := (&batch.Driver{}).Run(context.Background(), strings.NewReader(completePairsHeader+tail), &out)
			require.NoError(t, err)
			assert.Equal(t, "1\n", out.String())
			assert.True(t, sum.Holds)
			assert.Nil(t, sum.FailingSeed)
		})
	}
}

func TestDriver_ParallelAgrees(t *testing.T) {
	var out bytes.Buffer
	d := batch.Driver{ParallelDepth: 2}
	_, err := d.Run(context.Background(), strings.NewReader(triangleSquareHeader+"1 4\n1 1\n0\n"), &out)
	require.NoError(t, err)
	assert.Equal(t, "0\n", out.String())
}

func TestDriver_Errors(t *testing.T) {
	cases := map[string]struct {
		in         string
		checkOrbit bool
		want       error
	}{
		"bad header":        {"3 4\n", false, orbit.ErrBadDimensions},
		"seed too long":     {completePairsHeader + "2 1 2\n0\n", false, partition.ErrBadSeed},
		"seed out of range": {completePairsHeader + "1 9\n0\n", false, partition.ErrBadSeed},
		"truncated seed":    {completePairsHeader + "1", false, batch.ErrTruncated},
		"garbage seed":      {completePairsHeader + "x\n", false, batch.ErrMalformed},
		"orbit contract":    {"4 2\n4 1 2 3 4\n4 2 1 3 4\n4 3 2 1 4\n4 4 2 3 1\n2 2 2\n0\n", true, orbit.ErrContractViolation},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			d := batch.Driver{CheckOrbit: tc.checkOrbit}
			_, err := d.Run(context.Background(), strings.NewReader(tc.in), &out)
			assert.ErrorIs(t, err, tc.want)
			assert.Empty(t, out.String(), "no verdict on error")
		})
	}
}

func TestDriver_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var out bytes.Buffer
	_, err := (&batch.Driver{}).Run(ctx, strings.NewReader(completePairsHeader+"1 1\n0\n"), &out)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, out.String())
}

func TestDriver_LogsRunID(t *testing.T) {
	var logs, out bytes.Buffer
	d := batch.Driver{Logger: slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))}

	sum, err := d.Run(context.Background(), strings.NewReader(completePairsHeader+"1 1\n0\n"), &out)
	require.NoError(t, err)

	assert.NotEmpty(t, sum.RunID)
	assert.Contains(t, logs.String(), "run="+sum.RunID)
	assert.Contains(t, logs.String(), "msg=\"query decided\"")
	assert.Contains(t, logs.String(), "msg=\"batch done\"")
}

func TestWriter_RoundTrip(t *testing.T) {
	d, err := orbit.Cyclic(6, []int{1, 2, 4})
	require.NoError(t, err)
	seeds, err := batch.AnchoredSeeds(6, 3)
	require.NoError(t, err)
	assert.Len(t, seeds, 5)
	assert.Equal(t, []int{1, 2}, seeds[0])
	assert.Equal(t, []int{1, 6}, seeds[4])

	var buf bytes.Buffer
	w := batch.NewWriter(&buf)
	require.NoError(t, w.WriteHeader(d))
	for _, s := range seeds {
		require.NoError(t, w.WriteSeed(s))
	}
	require.NoError(t, w.Close())
	assert.True(t, strings.HasPrefix(buf.String(), "6 3\n6 1 2 3 4 5 6\n6 2 3 4 5 6 1\n"))
	assert.True(t, strings.HasSuffix(buf.String(), "2 1 6\n0\n"))

	r := batch.NewReader(bytes.NewReader(buf.Bytes()))
	h, err := batch.ReadHeader(r, nil)
	require.NoError(t, err)
	assert.Equal(t, d.ReferenceAdjacency(), h.Descriptor.ReferenceAdjacency())
	for p := 1; p <= 6; p++ {
		assert.Equal(t, d.CosetRep(p), h.Descriptor.CosetRep(p))
	}
	for _, want := range seeds {
		got, err := r.List()
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestAnchoredSeeds(t *testing.T) {
	seeds, err := batch.AnchoredSeeds(4, 2)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}}, seeds)

	_, err = batch.AnchoredSeeds(2, 3)
	assert.ErrorIs(t, err, orbit.ErrBadDimensions)
}
