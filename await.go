package filefutures

import "context"

// chanWaker parks Await on a 1-buffered channel. Wake never blocks and
// collapses repeated notifications, so spurious wake-ups cost one re-poll.
type chanWaker chan struct{}

func (w chanWaker) Wake() {
	select {
	case w <- struct{}{}:
	default:
	}
}

// Await drives f to completion, blocking the calling goroutine between
// polls. It is the minimal scheduler collaborator; callers embedding the
// futures in their own poll loop do not need it.
//
// Cancelling ctx abandons the future: the blocking call still runs to
// completion on the executor and the handle it owns is not reclaimed.
func Await[T any](ctx context.Context, f *Future[T]) (T, error) {
	w := make(chanWaker, 1)
	for {
		v, ready, err := f.Poll(w)
		if ready {
			return v, err
		}
		select {
		case <-w:
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
}
