// Package chflow provides context-aware helpers for receiving from and
// sending to Go channels. It helps ensure that operations respect
// cancellation and deadlines via context.Context.
package chflow

import (
	"context"
	"iter"
)

// Receive waits to receive a value from the provided channel or for the context to be canceled.
// It returns the value (zero value if canceled) and a boolean indicating if the receive was successful.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send attempts to send a value to the provided channel unless the context is canceled first.
// It returns true if the send was successful, false if the context was done before sent.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// Generate starts a goroutine that sends every value of seq, in order, on the
// returned channel. The channel is closed once seq is exhausted or ctx is done,
// whichever happens first; values not yet sent at that point are dropped.
func Generate[T any](ctx context.Context, seq iter.Seq[T]) <-chan T {
	ch := make(chan T)

	go func() {
		defer close(ch)

		for v := range seq {
			if ctx.Err() != nil || !Send(ctx, ch, v) {
				return
			}
		}
	}()

	return ch
}
