package middlewares

import (
	"log"
	"net/http"
	"runtime/debug"

	"github.com/5w1tchy/bookshelf-api/internal/api/httpx"
)

// Recovery turns a handler panic into a 500 error envelope. The client never
// sees the panic value; the log gets it with the stack and the request id.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			rid := GetRequestID(r)
			if rid == "" {
				rid = "unknown"
			}
			log.Printf("[PANIC] RequestID=%s %s %s: %v\n%s",
				rid, r.Method, r.URL.Path, rec, debug.Stack())

			w.Header().Set("Connection", "close")
			httpx.Error(w, http.StatusInternalServerError, "Internal Server Error")
		}()
		next.ServeHTTP(w, r)
	})
}
