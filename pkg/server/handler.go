package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/strand-ui/strand/pkg/render"
	"github.com/strand-ui/strand/pkg/vdom"
)

// Page produces the tree for a request, plus the ambient context handed to
// components. Returning a nil tree yields an empty 200 response.
type Page func(r *http.Request) (node any, ctx vdom.Context)

// Config configures the streaming handlers.
type Config struct {
	// Logger receives request and render errors. Default: slog.Default().
	Logger *slog.Logger

	// Options is the render configuration applied to every request.
	Options render.Options

	// ContentType overrides the Content-Type header.
	// Default: "text/html; charset=utf-8", or "application/xml; charset=utf-8"
	// in XML mode.
	ContentType string

	// TracerName names the OpenTelemetry tracer (default: "strand").
	TracerName string
}

// Option configures the streaming handlers.
type Option func(*Config)

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = logger
	}
}

// WithOptions sets the render options.
func WithOptions(opts render.Options) Option {
	return func(c *Config) {
		c.Options = opts
	}
}

// WithContentType overrides the response content type.
func WithContentType(ct string) Option {
	return func(c *Config) {
		c.ContentType = ct
	}
}

// WithTracerName sets the OpenTelemetry tracer name.
func WithTracerName(name string) Option {
	return func(c *Config) {
		c.TracerName = name
	}
}

func newConfig(opts []Option) Config {
	c := Config{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c Config) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

func (c Config) contentType() string {
	if c.ContentType != "" {
		return c.ContentType
	}
	if c.Options.XML {
		return "application/xml; charset=utf-8"
	}
	return "text/html; charset=utf-8"
}

// Handler returns an http.Handler that renders the page into the response
// as a chunk stream. Each chunk is flushed as soon as it is produced; a
// client that disconnects cancels the request context, which aborts the
// walk at its next chunk boundary.
//
// A render error before the first byte produces a 500. After the first
// byte the response is already committed, so the error is logged and the
// response ends after the last chunk written.
func Handler(page Page, opts ...Option) http.Handler {
	cfg := newConfig(opts)

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startRenderSpan(r, cfg)
		defer span.End()

		node, vctx := page(r)
		stream := render.RenderToStream(ctx, node, vctx, cfg.Options)

		flusher, _ := w.(http.Flusher)
		wrote := false
		for chunk := range stream.Chunks() {
			if chunk == "" {
				continue
			}
			if !wrote {
				w.Header().Set("Content-Type", cfg.contentType())
				w.WriteHeader(http.StatusOK)
				wrote = true
			}
			if _, err := w.Write([]byte(chunk)); err != nil {
				stream.Close()
				recordSpanError(span, err)
				cfg.logger().Error("response write failed", "path", r.URL.Path, "error", err)
				return
			}
			if flusher != nil {
				flusher.Flush()
			}
		}

		if err := stream.Err(); err != nil {
			recordSpanError(span, err)
			cfg.logger().Error("render failed", "path", r.URL.Path, "error", err)
			if !wrote {
				http.Error(w, "internal server error", http.StatusInternalServerError)
			}
			return
		}

		if !wrote {
			w.Header().Set("Content-Type", cfg.contentType())
			w.WriteHeader(http.StatusOK)
		}
		finishRenderSpan(span)
	})
}

// Router mounts pages on a chi router, one streaming handler per pattern.
func Router(pages map[string]Page, opts ...Option) chi.Router {
	r := chi.NewRouter()
	for pattern, page := range pages {
		r.Get(pattern, Handler(page, opts...).ServeHTTP)
	}
	return r
}
