package http

import (
	stdhttp "net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
)

func serve(r Router, method, path string) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	r.Mux().ServeHTTP(rr, httptest.NewRequest(method, path, nil))
	return rr
}

func tagMw(header string) func(stdhttp.Handler) stdhttp.Handler {
	return func(next stdhttp.Handler) stdhttp.Handler {
		return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.Header().Set(header, "1")
			next.ServeHTTP(w, req)
		})
	}
}

func textHandler(status int, body string) Handler {
	return func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func TestAdaptChi_MiddlewareScoping(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())
	r.Use(tagMw("X-Root"))
	r.Get("/topics", textHandler(200, "topics"))

	r.Group(func(gr Router) {
		gr.Use(tagMw("X-Group"))
		if gr.Mux() == nil {
			t.Fatal("group Mux() is nil")
		}
		gr.Get("/reasons", textHandler(200, "reasons"))
	})

	r.Route("/api", func(sr Router) {
		sr.Use(tagMw("X-Api"))
		if sr.Mux() == nil {
			t.Fatal("route Mux() is nil")
		}
		sr.Get("/votes", textHandler(200, "votes"))
	})

	cases := []struct {
		path    string
		body    string
		headers map[string]bool // header -> expected present
	}{
		{"/topics", "topics", map[string]bool{"X-Root": true, "X-Group": false, "X-Api": false}},
		{"/reasons", "reasons", map[string]bool{"X-Root": true, "X-Group": true, "X-Api": false}},
		{"/api/votes", "votes", map[string]bool{"X-Root": true, "X-Group": false, "X-Api": true}},
	}

	for _, tc := range cases {
		rr := serve(r, stdhttp.MethodGet, tc.path)
		if rr.Code != 200 || rr.Body.String() != tc.body {
			t.Fatalf("GET %s = %d %q, want 200 %q", tc.path, rr.Code, rr.Body.String(), tc.body)
		}
		for h, want := range tc.headers {
			if got := rr.Header().Get(h) == "1"; got != want {
				t.Fatalf("GET %s header %s present=%v, want %v", tc.path, h, got, want)
			}
		}
	}
}

func TestAdaptChi_VerbsAndNesting(t *testing.T) {
	t.Parallel()

	r := AdaptChi(chi.NewRouter())

	r.Handle("/metrics", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
		w.WriteHeader(200)
		_, _ = w.Write([]byte("metrics"))
	}))

	r.Group(func(gr Router) {
		gr.Post("/reasons", textHandler(201, ""))
		gr.Put("/reasons/r1", textHandler(200, ""))
		gr.Patch("/reasons/r1", textHandler(200, ""))
		gr.Delete("/votes/v1", textHandler(204, ""))
		gr.Handle("/export", stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, req *stdhttp.Request) {
			w.WriteHeader(200)
			_, _ = w.Write([]byte("export"))
		}))
		gr.Group(func(ngr Router) {
			ngr.Get("/inner", textHandler(200, "inner"))
		})
	})

	r.Route("/api", func(sr Router) {
		sr.Post("/claims", textHandler(201, ""))
		sr.Route("/v1", func(nr Router) {
			nr.Get("/topics", textHandler(200, "v1topics"))
		})
	})

	cases := []struct {
		method string
		path   string
		code   int
		body   string
	}{
		{stdhttp.MethodGet, "/metrics", 200, "metrics"},
		{stdhttp.MethodPost, "/reasons", 201, ""},
		{stdhttp.MethodPut, "/reasons/r1", 200, ""},
		{stdhttp.MethodPatch, "/reasons/r1", 200, ""},
		{stdhttp.MethodDelete, "/votes/v1", 204, ""},
		{stdhttp.MethodGet, "/export", 200, "export"},
		{stdhttp.MethodGet, "/inner", 200, "inner"},
		{stdhttp.MethodPost, "/api/claims", 201, ""},
		{stdhttp.MethodGet, "/api/v1/topics", 200, "v1topics"},
	}

	for _, tc := range cases {
		rr := serve(r, tc.method, tc.path)
		if rr.Code != tc.code || rr.Body.String() != tc.body {
			t.Fatalf("%s %s = %d %q, want %d %q",
				tc.method, tc.path, rr.Code, rr.Body.String(), tc.code, tc.body)
		}
	}
}
