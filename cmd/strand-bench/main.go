// Command strand-bench measures render throughput on a synthetic
// component/element tree and can expose render metrics over HTTP.
//
// Usage:
//
//	strand-bench --depth 6 --breadth 4 --duration 10s
//	strand-bench --metrics-addr :9090
package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/strand-ui/strand/pkg/render"
	"github.com/strand-ui/strand/pkg/vdom"
)

var (
	flagDepth       int
	flagBreadth     int
	flagDuration    time.Duration
	flagStream      bool
	flagMetricsAddr string
)

func main() {
	root := &cobra.Command{
		Use:   "strand-bench",
		Short: "Benchmark the strand streaming renderer",
		RunE:  runBench,
	}

	root.Flags().IntVar(&flagDepth, "depth", 6, "tree depth")
	root.Flags().IntVar(&flagBreadth, "breadth", 4, "children per node")
	root.Flags().DurationVar(&flagDuration, "duration", 10*time.Second, "how long to run")
	root.Flags().BoolVar(&flagStream, "stream", false, "use RenderToStream instead of RenderToString")
	root.Flags().StringVar(&flagMetricsAddr, "metrics-addr", "", "serve prometheus metrics on this address")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runBench(cmd *cobra.Command, args []string) error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if flagMetricsAddr != "" {
		render.EnableMetrics()
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		go func() {
			if err := http.ListenAndServe(flagMetricsAddr, mux); err != nil {
				logger.Error("metrics server failed", "error", err)
			}
		}()
		logger.Info("serving metrics", "addr", flagMetricsAddr)
	}

	tree := buildTree(flagDepth, flagBreadth)
	logger.Info("starting bench",
		"depth", flagDepth, "breadth", flagBreadth,
		"duration", flagDuration, "stream", flagStream)

	var (
		iterations int
		bytes      int64
		deadline   = time.Now().Add(flagDuration)
		start      = time.Now()
	)

	for time.Now().Before(deadline) {
		n, err := renderOnce(tree)
		if err != nil {
			return fmt.Errorf("render failed: %w", err)
		}
		bytes += int64(n)
		iterations++
	}

	elapsed := time.Since(start)
	perOp := elapsed / time.Duration(iterations)
	fmt.Printf("iterations: %d\n", iterations)
	fmt.Printf("per render: %s\n", perOp)
	fmt.Printf("throughput: %.1f MB/s\n", float64(bytes)/elapsed.Seconds()/(1<<20))
	return nil
}

func renderOnce(tree *vdom.VNode) (int, error) {
	if !flagStream {
		out, err := render.RenderToString(tree, nil, render.Options{})
		return len(out), err
	}

	s := render.RenderToStream(context.Background(), tree, nil, render.Options{})
	n := 0
	for chunk := range s.Chunks() {
		n += len(chunk)
	}
	return n, s.Err()
}

// item is a classful component so the bench exercises the component path,
// not just element emission.
type item struct {
	vdom.Base
}

func (c *item) Render(props vdom.Props, state vdom.State, ctx vdom.Context) any {
	return vdom.H("li",
		vdom.A("class", "item"),
		props["label"],
		props["children"],
	)
}

var itemType = &vdom.ComponentType{
	Name: "Item",
	New:  func() vdom.Component { return &item{} },
}

func buildTree(depth, breadth int) *vdom.VNode {
	if depth == 0 {
		return vdom.Text("leaf")
	}
	children := make([]any, 0, breadth)
	for i := 0; i < breadth; i++ {
		children = append(children,
			vdom.H(itemType, vdom.A("label", fmt.Sprintf("node-%d-%d", depth, i)),
				buildTree(depth-1, breadth)))
	}
	return vdom.H("ul", vdom.A("class", "level"), children)
}
