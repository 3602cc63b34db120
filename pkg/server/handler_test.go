package server

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/strand-ui/strand/pkg/render"
	"github.com/strand-ui/strand/pkg/vdom"
)

func staticPage(node any) Page {
	return func(r *http.Request) (any, vdom.Context) {
		return node, nil
	}
}

func TestHandlerStreamsPage(t *testing.T) {
	h := Handler(staticPage(vdom.H("div", vdom.A("class", "page"), "hello")))
	srv := httptest.NewServer(h)
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Errorf("status = %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Errorf("content type = %q", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != `<div class="page">hello</div>` {
		t.Errorf("body = %q", string(body))
	}
}

func TestHandlerPassesRequestToPage(t *testing.T) {
	page := func(r *http.Request) (any, vdom.Context) {
		return vdom.H("p", r.URL.Query().Get("name")), nil
	}
	srv := httptest.NewServer(Handler(page))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "?name=ada")
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "<p>ada</p>" {
		t.Errorf("body = %q", string(body))
	}
}

func TestHandlerErrorBeforeFirstByteIs500(t *testing.T) {
	boom := &vdom.ComponentType{
		Name: "Boom",
		Func: func(props vdom.Props, ctx vdom.Context) any {
			panic("no page for you")
		},
	}
	srv := httptest.NewServer(Handler(staticPage(vdom.H(boom))))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", resp.StatusCode)
	}
}

func TestHandlerXMLContentType(t *testing.T) {
	h := Handler(staticPage(vdom.H("feed")), WithOptions(render.Options{XML: true}))
	srv := httptest.NewServer(h)
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("GET: %v", err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "application/xml; charset=utf-8" {
		t.Errorf("content type = %q", ct)
	}
	body, _ := io.ReadAll(resp.Body)
	if string(body) != "<feed />" {
		t.Errorf("body = %q", string(body))
	}
}

func TestRouterMountsPages(t *testing.T) {
	router := Router(map[string]Page{
		"/":      staticPage(vdom.H("h1", "home")),
		"/about": staticPage(vdom.H("h1", "about")),
	})
	srv := httptest.NewServer(router)
	defer srv.Close()

	for path, want := range map[string]string{
		"/":      "<h1>home</h1>",
		"/about": "<h1>about</h1>",
	} {
		resp, err := http.Get(srv.URL + path)
		if err != nil {
			t.Fatalf("GET %s: %v", path, err)
		}
		body, _ := io.ReadAll(resp.Body)
		resp.Body.Close()
		if string(body) != want {
			t.Errorf("GET %s body = %q, want %q", path, string(body), want)
		}
	}

	resp, err := http.Get(srv.URL + "/missing")
	if err != nil {
		t.Fatalf("GET /missing: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unmounted path status = %d", resp.StatusCode)
	}
}

func TestConfigDefaults(t *testing.T) {
	cfg := newConfig(nil)
	if cfg.TracerName != defaultTracerName {
		t.Errorf("tracer name = %q", cfg.TracerName)
	}
	if got := cfg.contentType(); !strings.HasPrefix(got, "text/html") {
		t.Errorf("content type = %q", got)
	}
	if cfg.logger() == nil {
		t.Error("logger must default")
	}
}
