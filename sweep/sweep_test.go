package sweep

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/tension/errors"
	"github.com/teranos/tension/scale"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestGrid(t *testing.T) {
	tests := []struct {
		n    int
		want []float64
	}{
		{1, []float64{0}},
		{2, []float64{0, 1}},
		{3, []float64{0, 0.5, 1}},
		{5, []float64{0, 0.25, 0.5, 0.75, 1}},
	}
	for _, tt := range tests {
		got, err := Grid(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "n=%d", tt.n)
	}
}

func TestGridEndpoints(t *testing.T) {
	for _, n := range []int{2, 7, 199, 200, 1001} {
		grid, err := Grid(n)
		require.NoError(t, err)
		require.Len(t, grid, n)
		assert.Equal(t, 0.0, grid[0])
		assert.Equal(t, 1.0, grid[n-1])
		for i := 1; i < n; i++ {
			assert.Less(t, grid[i-1], grid[i])
			assert.InDelta(t, 1/float64(n-1), grid[i]-grid[i-1], 1e-12)
		}
	}
}

func TestGridDegenerate(t *testing.T) {
	for _, n := range []int{0, -1, -200} {
		_, err := Grid(n)
		require.Error(t, err)
		assert.True(t, errors.IsDegenerateInput(err), "n=%d", n)
		assert.NotEmpty(t, errors.GetAllHints(err))

		_, err = Run(scale.Default(), n)
		assert.True(t, errors.IsDegenerateInput(err))

		_, err = RunParallel(context.Background(), scale.Default(), n, 4)
		assert.True(t, errors.IsDegenerateInput(err))
	}
}

func TestRunDeterministic(t *testing.T) {
	c := scale.Default()

	first, err := Run(c, 200)
	require.NoError(t, err)
	second, err := Run(c, 200)
	require.NoError(t, err)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("sweep not deterministic (-first +second):\n%s", diff)
	}
	require.Len(t, first, 200)
	assert.Equal(t, 0.0, first[0].Tension)
	assert.Equal(t, 1.0, first[199].Tension)
}

func TestRunSingleSample(t *testing.T) {
	samples, err := Run(scale.Default(), 1)
	require.NoError(t, err)
	require.Len(t, samples, 1)
	assert.Equal(t, 0.0, samples[0].Tension)
	assert.InDelta(t, 1.0, samples[0].Distribution.Sum(), 1e-9)
}

func TestRunEverySampleCoversCatalog(t *testing.T) {
	c := scale.Default()
	samples, err := Run(c, 50)
	require.NoError(t, err)

	for _, s := range samples {
		assert.Len(t, s.Distribution, c.Len())
		assert.InDelta(t, 1.0, s.Distribution.Sum(), 1e-9, "tension %v", s.Tension)
	}
}

func TestRunParallelMatchesRun(t *testing.T) {
	c := scale.Default()
	want, err := Run(c, 200)
	require.NoError(t, err)

	for _, workers := range []int{0, 1, 3, 8, 500} {
		got, err := RunParallel(context.Background(), c, 200, workers)
		require.NoError(t, err)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("workers=%d: parallel sweep differs (-want +got):\n%s", workers, diff)
		}
	}
}

func TestRunParallelCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := RunParallel(ctx, scale.Default(), 200, 4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestRunPropagatesInvariantViolation(t *testing.T) {
	c, err := scale.New(scale.Entry{Name: "low", ReferenceTension: 0, Category: scale.Consonant})
	require.NoError(t, err)

	_, err = Run(c, 5)
	require.Error(t, err)
	assert.True(t, errors.IsInvariantViolation(err))

	_, err = RunParallel(context.Background(), c, 5, 2)
	require.Error(t, err)
	assert.True(t, errors.IsInvariantViolation(err))
}

func TestPivot(t *testing.T) {
	c := scale.Default()
	samples, err := Run(c, 3)
	require.NoError(t, err)

	tensions, series := Pivot(c, samples)
	assert.Equal(t, []float64{0, 0.5, 1}, tensions)
	require.Len(t, series, c.Len())
	for i, s := range series {
		assert.Equal(t, c.Names()[i], s.Name)
		require.Len(t, s.Values, 3)
		for j := range samples {
			assert.Equal(t, samples[j].Distribution[s.Name], s.Values[j])
		}
	}

	major := series[0]
	assert.Equal(t, scale.Consonant, major.Category)
	assert.Greater(t, major.Values[0], 0.0)
	assert.Equal(t, 0.0, major.Values[2])
}
