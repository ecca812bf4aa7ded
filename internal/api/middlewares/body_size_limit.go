package middlewares

import "net/http"

// BodySizeLimit caps request bodies of POST, PUT and PATCH at limit bytes.
// Reads past the cap fail with *http.MaxBytesError; handlers answer 413.
func BodySizeLimit(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			switch r.Method {
			case http.MethodPost, http.MethodPut, http.MethodPatch:
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
