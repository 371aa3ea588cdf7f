package middleware

import "net/http"

// BodyLimit returns middleware that caps request body reads at limit
// bytes. Reads past the limit fail and close the connection. A limit of
// zero or less disables the cap.
func BodyLimit(limit int64) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if limit > 0 && r.Body != nil {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
