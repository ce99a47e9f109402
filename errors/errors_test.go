package errors

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewf(t *testing.T) {
	err := Newf("tension %.2f out of %s", 1.5, "range")
	require.NotNil(t, err)
	assert.Equal(t, "tension 1.50 out of range", err.Error())
}

func TestWrap(t *testing.T) {
	original := New("original")
	wrapped := Wrap(original, "wrapped")

	assert.Contains(t, wrapped.Error(), "wrapped")
	assert.Contains(t, wrapped.Error(), "original")
	assert.True(t, Is(wrapped, original))
}

func TestWithHint(t *testing.T) {
	err := WithHintf(New("error"), "try --samples %d", 200)

	hints := GetAllHints(err)
	require.Len(t, hints, 1)
	assert.Equal(t, "try --samples 200", hints[0])
}

func TestStackTrace(t *testing.T) {
	err := New("with stack")

	detailed := fmt.Sprintf("%+v", err)
	assert.Contains(t, detailed, "errors_test.go")
}

func TestNilHandling(t *testing.T) {
	assert.Nil(t, Wrap(nil, "context"))
	assert.Nil(t, Wrapf(nil, "context %d", 1))
	assert.Nil(t, WithHint(nil, "hint"))
	assert.False(t, IsInvalidRequestError(nil))
	assert.False(t, IsDegenerateInput(nil))
	assert.False(t, IsInvariantViolation(nil))
}

func TestSentinelHelpers(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		invalid    bool
		degenerate bool
		invariant  bool
	}{
		{
			name:    "invalid request",
			err:     NewInvalidRequestError("unknown format %q", "png"),
			invalid: true,
		},
		{
			name:       "degenerate input",
			err:        NewDegenerateInputError("samples must be >= 1, got %d", 0),
			degenerate: true,
		},
		{
			name:      "invariant violation",
			err:       NewInvariantViolation("no band matches tension %v", 0.5),
			invariant: true,
		},
		{
			name: "unrelated",
			err:  New("boom"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.invalid, IsInvalidRequestError(tt.err))
			assert.Equal(t, tt.degenerate, IsDegenerateInput(tt.err))
			assert.Equal(t, tt.invariant, IsInvariantViolation(tt.err))
		})
	}
}

func TestSentinelSurvivesWrapping(t *testing.T) {
	err := Wrap(NewDegenerateInputError("samples must be >= 1, got %d", -3), "sweep")
	err = WithHint(err, "use a positive sample count")

	assert.True(t, IsDegenerateInput(err))
	assert.Contains(t, err.Error(), "sweep")
	assert.Contains(t, err.Error(), "got -3")
	assert.Contains(t, GetAllHints(err), "use a positive sample count")
}

func TestInvariantViolationIsAssertion(t *testing.T) {
	err := NewInvariantViolation("empty band at %v", 0.3)
	assert.True(t, HasAssertionFailure(err))
	assert.True(t, Is(err, ErrInvariantViolation))
}

func ExampleWrap() {
	baseErr := New("no eligible scales")
	err := Wrap(baseErr, "failed to weigh band")
	fmt.Println(err)
	// Output: failed to weigh band: no eligible scales
}
