package chflow

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReceive(t *testing.T) {
	t.Run("receives a buffered value", func(t *testing.T) {
		ch := make(chan int, 1)
		ch <- 42

		got, ok := Receive(t.Context(), ch)
		assert.True(t, ok)
		assert.Equal(t, 42, got)
	})

	t.Run("reports a closed channel", func(t *testing.T) {
		ch := make(chan string)
		close(ch)

		got, ok := Receive(t.Context(), ch)
		assert.False(t, ok)
		assert.Empty(t, got)
	})

	t.Run("returns zero value when context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		cancel()

		got, ok := Receive(ctx, make(chan int))
		assert.False(t, ok)
		assert.Zero(t, got)
	})
}

func TestSend(t *testing.T) {
	t.Run("sends when the receiver is ready", func(t *testing.T) {
		ch := make(chan int, 1)

		ok := Send(t.Context(), ch, 7)
		require.True(t, ok)
		assert.Equal(t, 7, <-ch)
	})

	t.Run("gives up when the context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(t.Context(), 10*time.Millisecond)
		defer cancel()

		ok := Send(ctx, make(chan int), 7)
		assert.False(t, ok)
	})
}

func TestGenerate(t *testing.T) {
	t.Run("emits every value in order and closes", func(t *testing.T) {
		ch := Generate(t.Context(), slices.Values([]int{5, 4, 3, 2, 1}))

		var got []int
		for v := range ch {
			got = append(got, v)
		}

		assert.Equal(t, []int{5, 4, 3, 2, 1}, got)
	})

	t.Run("stops emitting once the context is canceled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(t.Context())
		ch := Generate(ctx, slices.Values([]int{1, 2, 3, 4}))

		first, ok := <-ch
		require.True(t, ok)
		assert.Equal(t, 1, first)

		cancel()

		// at most one value may already be in flight before the close is observed
		count := 0
		for range ch {
			count++
		}
		assert.LessOrEqual(t, count, 1)
	})
}
