package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo_SucceedsFirstAttempt(t *testing.T) {
	t.Parallel()
	attempts := 0

	err := Do(context.Background(), func(int) error {
		attempts++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, attempts)
}

func TestDo_SucceedsAfterRetries(t *testing.T) {
	t.Parallel()
	var seen []int

	err := Do(context.Background(), func(attempt int) error {
		seen = append(seen, attempt)
		if attempt < 3 {
			return errors.New("radio asleep")
		}
		return nil
	}, WithMaxRetries(3), WithInitialDelay(time.Millisecond))

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestDo_ExhaustsBudget(t *testing.T) {
	t.Parallel()
	attempts := 0
	cause := errors.New("connect refused")

	err := Do(context.Background(), func(int) error {
		attempts++
		return cause
	}, WithMaxRetries(2), WithInitialDelay(time.Millisecond))

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 3, attempts, "one attempt plus two retries")
	assert.Contains(t, err.Error(), "failed after 3 attempts")
}

func TestDo_ZeroRetries(t *testing.T) {
	t.Parallel()
	attempts := 0

	err := Do(context.Background(), func(int) error {
		attempts++
		return errors.New("nope")
	}, WithMaxRetries(0))

	require.Error(t, err)
	assert.Equal(t, 1, attempts)
}

func TestDo_FatalStopsImmediately(t *testing.T) {
	t.Parallel()
	attempts := 0
	cause := errors.New("invalid address")

	err := Do(context.Background(), func(int) error {
		attempts++
		return Fatal(cause)
	}, WithMaxRetries(5), WithInitialDelay(time.Millisecond))

	require.Error(t, err)
	assert.True(t, IsFatal(err))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, 1, attempts)
}

func TestDo_ContextCancelled(t *testing.T) {
	t.Parallel()
	ctx, cancel := context.WithCancel(context.Background())
	attempts := 0

	err := Do(ctx, func(int) error {
		attempts++
		cancel()
		return errors.New("transient")
	}, WithMaxRetries(5), WithInitialDelay(time.Second))

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, attempts)
}

func TestFatal(t *testing.T) {
	assert.Nil(t, Fatal(nil))
	assert.False(t, IsFatal(errors.New("plain")))

	wrapped := Fatal(errors.New("boom"))
	assert.Equal(t, "boom", wrapped.Error())
	assert.True(t, IsFatal(wrapped))
}

func TestWithMaxRetries_ClampsNegative(t *testing.T) {
	cfg := &Config{MaxRetries: 4}
	WithMaxRetries(-1)(cfg)
	assert.Equal(t, 0, cfg.MaxRetries)
}
