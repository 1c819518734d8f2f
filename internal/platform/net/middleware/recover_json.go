package middleware

import (
	stdjson "encoding/json"
	stdhttp "net/http"
	"runtime/debug"
	"strings"

	perr "prokontra/internal/platform/errors"
	"prokontra/internal/platform/logger"
	pnet "prokontra/internal/platform/net"
)

type panicWire struct {
	StatusCode int    `json:"status_code"`
	Status     string `json:"status"`
	Error      string `json:"error,omitempty"`
	RequestID  string `json:"request_id,omitempty"`
}

// RecoverJSON turns a handler panic into a JSON 500 and logs the stack
// under the request id.
func RecoverJSON(next stdhttp.Handler) stdhttp.Handler {
	return stdhttp.HandlerFunc(func(w stdhttp.ResponseWriter, r *stdhttp.Request) {
		defer func() {
			if v := recover(); v != nil {
				logPanic(r, v)
				writePanicJSON(w, pnet.RequestID(r.Context()))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func logPanic(r *stdhttp.Request, v any) {
	// indent continuation lines so the stack stays one log record
	lines := strings.Split(string(debug.Stack()), "\n")
	stack := strings.Join(lines, "\n\t")

	log := logger.C(r.Context())
	if log == nil {
		log = logger.Named("http")
	}
	log.Error().
		Str("request_id", pnet.RequestID(r.Context())).
		Interface("panic", v).
		Msgf("panic recovered\n%s", stack)
}

func writePanicJSON(w stdhttp.ResponseWriter, reqID string) {
	if reqID != "" {
		w.Header().Set("X-Request-ID", reqID)
	}
	body := panicWire{
		StatusCode: stdhttp.StatusInternalServerError,
		Status:     stdhttp.StatusText(stdhttp.StatusInternalServerError),
		Error:      perr.Root(perr.PanicErrf("panic recovered")).Error(),
		RequestID:  reqID,
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(stdhttp.StatusInternalServerError)
	_ = stdjson.NewEncoder(w).Encode(body)
}
