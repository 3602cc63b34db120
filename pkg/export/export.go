// Package export renders a set of routes ahead of time and stores the
// output through a Sink: the local filesystem or an S3 bucket. Pages are
// streamed into the sink, so exporting a large site never buffers a whole
// page in memory.
package export

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	"github.com/strand-ui/strand/pkg/render"
	"github.com/strand-ui/strand/pkg/vdom"
)

// Sink stores one rendered page under a key.
type Sink interface {
	Store(ctx context.Context, key string, body io.Reader) error
}

// Route is one page to export.
type Route struct {
	// Path is the URL path of the page (e.g. "/", "/about").
	Path string

	// Node is the tree to render.
	Node any

	// Ctx is the ambient context handed to components. May be nil.
	Ctx vdom.Context
}

// Exporter renders routes and stores the results.
type Exporter struct {
	sink   Sink
	opts   render.Options
	logger *slog.Logger
}

// New creates an Exporter writing through sink with the given render
// options. logger may be nil, in which case slog.Default() is used.
func New(sink Sink, opts render.Options, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{sink: sink, opts: opts, logger: logger}
}

// Export renders every route and stores it under its output key. The first
// failure aborts the export.
func (e *Exporter) Export(ctx context.Context, routes []Route) error {
	for _, route := range routes {
		key, ok := outputKey(route.Path)
		if !ok {
			return fmt.Errorf("export: unusable route path %q", route.Path)
		}

		pr, pw := io.Pipe()
		go func() {
			err := render.RenderToWriter(ctx, pw, route.Node, route.Ctx, e.opts)
			pw.CloseWithError(err)
		}()

		if err := e.sink.Store(ctx, key, pr); err != nil {
			pr.CloseWithError(err)
			return fmt.Errorf("export %s: %w", route.Path, err)
		}
		e.logger.Info("exported page", "path", route.Path, "key", key)
	}
	return nil
}

// outputKey maps a URL path to a storage key: "/" and directory-style
// paths get an index.html, everything else keeps its name. Traversal and
// absolute-path tricks are rejected so an export cannot escape its sink
// root.
func outputKey(urlPath string) (string, bool) {
	if urlPath == "" || urlPath == "/" {
		return "index.html", true
	}

	rel := strings.TrimPrefix(urlPath, "/")

	// Reject NUL early (can appear via %00).
	if strings.IndexByte(rel, 0) != -1 {
		return "", false
	}

	// Reject platform-dependent separators.
	if strings.Contains(rel, "\\") {
		return "", false
	}

	// Reject dot-segments before cleaning to avoid "cleaning away"
	// traversal attempts.
	for _, seg := range strings.Split(rel, "/") {
		if seg == "." || seg == ".." {
			return "", false
		}
	}

	clean := path.Clean(rel)
	if clean == "." || clean == "" || strings.HasPrefix(clean, "../") || strings.HasPrefix(clean, "/") {
		return "", false
	}

	if path.Ext(clean) == "" {
		clean += "/index.html"
	}
	return clean, true
}
