package middleware

import (
	"net/http"
)

type Middleware func(http.Handler) http.Handler

// Chain wraps h with middlewares in order; the last one runs first.
func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}

// statusRW records the status code written by the wrapped handler.
type statusRW struct {
	http.ResponseWriter
	status      int
	wroteHeader bool
}

func newStatusRW(w http.ResponseWriter) *statusRW {
	return &statusRW{ResponseWriter: w, status: http.StatusOK}
}

func (w *statusRW) WriteHeader(code int) {
	if !w.wroteHeader {
		w.status = code
		w.wroteHeader = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusRW) Write(b []byte) (int, error) {
	w.wroteHeader = true
	return w.ResponseWriter.Write(b)
}

func (w *statusRW) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
