package sweep

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/teranos/tension/errors"
	"github.com/teranos/tension/logger"
	"github.com/teranos/tension/scale"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestDriverSweep(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	d := NewDriver(scale.Default(), zap.New(core).Sugar())
	assert.Equal(t, scale.Default().Len(), d.Catalog().Len())

	for _, parallel := range []bool{false, true} {
		samples, err := d.Sweep(context.Background(), Options{Samples: 20, Parallel: parallel, Workers: 2})
		require.NoError(t, err)
		assert.Len(t, samples, 20)
	}

	complete := logs.FilterMessage("sweep complete").All()
	require.Len(t, complete, 2)

	first := complete[0].ContextMap()[logger.FieldRunID].(string)
	second := complete[1].ContextMap()[logger.FieldRunID].(string)
	_, err := uuid.Parse(first)
	assert.NoError(t, err)
	assert.NotEqual(t, first, second)
	assert.Equal(t, int64(20), complete[0].ContextMap()[logger.FieldSamples])
}

func TestDriverSweepError(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	d := NewDriver(scale.Default(), zap.New(core).Sugar())

	_, err := d.Sweep(context.Background(), Options{Samples: 0})
	require.Error(t, err)
	assert.True(t, errors.IsDegenerateInput(err))
	assert.Equal(t, 1, logs.FilterMessage("sweep failed").Len())
	assert.Equal(t, 0, logs.FilterMessage("sweep complete").Len())
}

func TestNewDriverDefaultLogger(t *testing.T) {
	d := NewDriver(scale.Default(), nil)
	samples, err := d.Sweep(context.Background(), Options{Samples: 2})
	require.NoError(t, err)
	assert.Len(t, samples, 2)
}

func TestDriverParallelFailureLogsToInjectedLogger(t *testing.T) {
	// No color or high scales: tensions above 0.55 have nothing eligible.
	c := scale.MustNew(scale.Entry{Name: "E Major", ReferenceTension: 0, Category: scale.Consonant})

	core, logs := observer.New(zapcore.DebugLevel)
	d := NewDriver(c, zap.New(core).Sugar())

	_, err := d.Sweep(context.Background(), Options{Samples: 5, Parallel: true, Workers: 5})
	require.Error(t, err)
	assert.True(t, errors.IsInvariantViolation(err))

	failed := logs.FilterMessage("sweep failed").All()
	require.Len(t, failed, 1)
	runID := failed[0].ContextMap()[logger.FieldRunID]

	chunks := logs.FilterMessage("sweep chunk failed").All()
	require.NotEmpty(t, chunks)
	for _, e := range chunks {
		assert.Equal(t, runID, e.ContextMap()[logger.FieldRunID])
	}
}
