package middleware

import "net/http"

// CORSConfig holds configuration for the CORS middleware
type CORSConfig struct {
	// AllowOrigin is the value sent in the Access-Control-Allow-Origin
	// header. An empty string disables CORS headers entirely.
	AllowOrigin string
}

// DefaultCORSConfig returns a configuration with CORS disabled
func DefaultCORSConfig() CORSConfig {
	return CORSConfig{
		AllowOrigin: "",
	}
}

// CORS returns a middleware that adds cross-origin response headers for
// browser players hosted on another origin. Accept-Ranges and
// Content-Range are exposed so scripted players can seek within audio
// files. With an empty origin the middleware passes requests through
// untouched.
func CORS(config CORSConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if config.AllowOrigin == "" {
			return next
		}

		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Access-Control-Allow-Origin", config.AllowOrigin)
			w.Header().Set("Access-Control-Expose-Headers", "Accept-Ranges, Content-Range")
			if config.AllowOrigin != "*" {
				w.Header().Add("Vary", "Origin")
			}
			next.ServeHTTP(w, r)
		})
	}
}
