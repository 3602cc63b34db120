package render

import (
	"context"
	"sync"
)

// Stream is a readable stream of rendered chunks. Chunks arrive on
// Chunks() in document order; the channel closes when the render ends,
// after which Err reports how it ended. The producing walk runs in its own
// goroutine and blocks whenever the consumer is not reading, so an unread
// stream exerts backpressure all the way into the tree walk.
type Stream struct {
	ch     chan string
	done   chan struct{}
	cancel context.CancelFunc
	once   sync.Once
	err    error
}

// Chunks returns the channel of rendered chunks. It is closed when the
// render completes or fails; check Err afterwards.
func (s *Stream) Chunks() <-chan string {
	return s.ch
}

// Err blocks until the render has ended and returns nil on success, or the
// first error raised by a component, the tree, or the sink.
func (s *Stream) Err() error {
	<-s.done
	return s.err
}

// Close aborts the render. The walk observes the cancellation at its next
// chunk boundary and releases all in-flight component instances. Close is
// idempotent and safe to call from any goroutine.
func (s *Stream) Close() error {
	s.once.Do(func() {
		s.cancel()
		// Drain so the producer's pending send can complete.
		go func() {
			for range s.ch {
			}
		}()
	})
	<-s.done
	return nil
}

// chanSink delivers chunks to the stream's channel, honoring cancellation.
type chanSink struct {
	ctx context.Context
	ch  chan string
}

func (c *chanSink) writeChunk(chunk string) error {
	// Cancellation wins over a ready receiver, so an aborted render
	// never delivers another chunk.
	if err := c.ctx.Err(); err != nil {
		return err
	}
	select {
	case c.ch <- chunk:
		return nil
	case <-c.ctx.Done():
		return c.ctx.Err()
	}
}
