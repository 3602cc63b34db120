package render

import (
	"context"
	"io"
	"time"

	"github.com/strand-ui/strand/pkg/vdom"
)

// RenderToString renders a tree synchronously and returns the concatenation
// of all chunks. On error no partial result is returned. The result equals,
// byte for byte, what RenderToStream delivers for the same inputs.
func RenderToString(node any, ctx vdom.Context, opts Options) (string, error) {
	out := &stringSink{}
	d := newDriver(out)
	w := &walker{d: d, opts: opts}

	start := time.Now()
	err := w.walk(node, ctx, false, false)
	if err == nil {
		err = d.finish()
	}
	observeRender(modeString(opts), time.Since(start), d.chunkCount(), err)

	if err != nil {
		return "", err
	}
	return out.b.String(), nil
}

// ShallowRender renders the tree one component level deep: the root
// component expands, every component below it emits as a pseudo-tag named
// by its display name.
func ShallowRender(node any, ctx vdom.Context) (string, error) {
	return RenderToString(node, ctx, Options{Shallow: true})
}

// RenderToWriter streams a tree into w, checking ctx between chunks. The
// write path sees the same chunk boundaries as RenderToStream.
func RenderToWriter(ctx context.Context, w io.Writer, node any, vctx vdom.Context, opts Options) error {
	d := newDriver(&ctxWriterSink{ctx: ctx, w: w})
	wk := &walker{d: d, opts: opts}

	start := time.Now()
	err := wk.walk(node, vctx, false, false)
	if err == nil {
		err = d.finish()
	}
	observeRender(modeString(opts), time.Since(start), d.chunkCount(), err)
	return err
}

// RenderToStream renders a tree in a background goroutine and returns the
// resulting chunk stream. Cancelling ctx, or calling Close on the stream,
// aborts the walk at its next chunk boundary.
func RenderToStream(ctx context.Context, node any, vctx vdom.Context, opts Options) *Stream {
	cctx, cancel := context.WithCancel(ctx)
	s := &Stream{
		ch:     make(chan string),
		done:   make(chan struct{}),
		cancel: cancel,
	}

	go func() {
		defer cancel()
		d := newDriver(&chanSink{ctx: cctx, ch: s.ch})
		w := &walker{d: d, opts: opts}

		start := time.Now()
		err := w.walk(node, vctx, false, false)
		if err == nil {
			err = d.finish()
		}
		observeRender("stream", time.Since(start), d.chunkCount(), err)

		s.err = err
		close(s.ch)
		close(s.done)
	}()

	return s
}

// ctxWriterSink writes chunks to an io.Writer, aborting once ctx is done.
type ctxWriterSink struct {
	ctx context.Context
	w   io.Writer
}

func (s *ctxWriterSink) writeChunk(chunk string) error {
	if err := s.ctx.Err(); err != nil {
		return err
	}
	_, err := io.WriteString(s.w, chunk)
	return err
}

func modeString(opts Options) string {
	if opts.Shallow {
		return "shallow"
	}
	return "string"
}
