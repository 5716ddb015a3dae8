package walletscan

import (
	"context"
	"slices"
	"testing"

	"github.com/gabapcia/walletlink/internal/pkg/resilience/retry"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		svc := New(NewPageSourceMock(t), NewPageParserMock(t))

		assert.Equal(t, DefaultMaxConcurrency, svc.maxConcurrency)
		assert.NotNil(t, svc.handshakeRetry)
		assert.Nil(t, svc.onProgress)
		assert.NotNil(t, svc.instruments.tracer)
	})

	t.Run("applies options", func(t *testing.T) {
		r := retry.New(retry.WithAttempts(4))
		called := false

		svc := New(NewPageSourceMock(t), NewPageParserMock(t),
			WithMaxConcurrency(8),
			WithHandshakeRetry(r),
			WithProgress(func(context.Context, PageProgress) { called = true }),
		)

		assert.Equal(t, 8, svc.maxConcurrency)
		assert.Same(t, r, svc.handshakeRetry)

		svc.onProgress(t.Context(), PageProgress{})
		assert.True(t, called)
	})

	t.Run("floors concurrency at one", func(t *testing.T) {
		svc := New(NewPageSourceMock(t), NewPageParserMock(t), WithMaxConcurrency(0))
		assert.Equal(t, 1, svc.maxConcurrency)
	})
}

func TestDescendingPages(t *testing.T) {
	assert.Equal(t, []int{4, 3, 2, 1}, slices.Collect(descendingPages(4)))
	assert.Empty(t, slices.Collect(descendingPages(0)))
}

func TestAccumulator(t *testing.T) {
	acc := newAccumulator(3)

	kept := acc.merge(incoming(testWallet, "0xa", "0xb", "0xa"))
	assert.Equal(t, 2, kept)
	assert.False(t, acc.full())

	kept = acc.merge(incoming(testWallet, "0xb", "0xc", "0xd"))
	assert.Equal(t, 1, kept)
	assert.True(t, acc.full())
	assert.Equal(t, []string{"0xa", "0xb", "0xc"}, froms(acc.transactions))
}

func TestSession_IsEmpty(t *testing.T) {
	assert.True(t, Session{}.IsEmpty())
	assert.False(t, Session{Token: "sid"}.IsEmpty())
	assert.False(t, Session{Cookies: map[string]string{"k": "v"}}.IsEmpty())
}
