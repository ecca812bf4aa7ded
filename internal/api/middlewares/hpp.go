package middlewares

import (
	"net/http"
	"slices"
)

// HPPOptions configures HTTP parameter pollution filtering.
type HPPOptions struct {
	Whitelist []string
}

// DefaultHPPOptions whitelists the query parameters the shelf understands.
func DefaultHPPOptions() HPPOptions {
	return HPPOptions{
		Whitelist: []string{"name", "reading", "finished", "lang"},
	}
}

// HPP keeps only the first value of each repeated query parameter and drops
// parameters that are not whitelisted, so ?reading=1&reading=0 means reading=1.
func HPP(opts HPPOptions) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.RawQuery != "" {
				query := r.URL.Query()
				for k, v := range query {
					if !slices.Contains(opts.Whitelist, k) {
						query.Del(k)
						continue
					}
					if len(v) > 1 {
						query.Set(k, v[0])
					}
				}
				r.URL.RawQuery = query.Encode()
			}
			next.ServeHTTP(w, r)
		})
	}
}
