package httpkit

import (
	"net/http"

	phttp "prokontra/internal/platform/net/http"
)

// mountRec is one recorded route registration
type mountRec struct {
	verb string
	path string
	ph   phttp.Handler
	h    http.Handler
}

// routeRecorder is the Router double shared by this package's tests. It
// records registrations and hands itself back for Route and Group so
// nested closures run against the same log
type routeRecorder struct {
	prefixes []string
	useCount int
	mwSeen   int
	recs     []mountRec
}

func (f *routeRecorder) add(verb, path string, ph phttp.Handler, h http.Handler) {
	f.recs = append(f.recs, mountRec{verb: verb, path: path, ph: ph, h: h})
}

func (f *routeRecorder) Route(prefix string, fn func(Router)) {
	f.prefixes = append(f.prefixes, prefix)
	fn(f)
}

func (f *routeRecorder) Group(fn func(Router)) { fn(f) }

func (f *routeRecorder) Use(mw ...func(http.Handler) http.Handler) {
	f.useCount++
	f.mwSeen = len(mw)
}

func (f *routeRecorder) Mux() http.Handler { return http.NewServeMux() }

func (f *routeRecorder) Handle(path string, h http.Handler) { f.add("HANDLE", path, nil, h) }
func (f *routeRecorder) Get(path string, h phttp.Handler)   { f.add("GET", path, h, nil) }
func (f *routeRecorder) Post(path string, h phttp.Handler)  { f.add("POST", path, h, nil) }
func (f *routeRecorder) Put(path string, h phttp.Handler)   { f.add("PUT", path, h, nil) }
func (f *routeRecorder) Patch(path string, h phttp.Handler) { f.add("PATCH", path, h, nil) }
func (f *routeRecorder) Delete(path string, h phttp.Handler) {
	f.add("DELETE", path, h, nil)
}

var _ Router = (*routeRecorder)(nil)
