package server

import (
	"net/http"
	"net/url"
	"strings"
)

// corsPolicy decides which cross-origin callers may reach the API.
// Same-origin requests carry no Origin header and are always allowed.
// Cross-origin requests are allowed from hostnames under the configured
// hosting-platform suffix and from the configured local development
// host; everything else is rejected.
type corsPolicy struct {
	// AllowedSuffix matches hostnames by suffix, e.g. ".web.app".
	AllowedSuffix string
	// LocalDevHost matches an exact host:port, e.g. "localhost:5173".
	LocalDevHost string
}

// allows reports whether the given Origin header value may access the
// API. An empty origin means a same-origin or non-browser request.
func (p corsPolicy) allows(origin string) bool {
	if origin == "" {
		return true
	}

	parsed, err := url.Parse(origin)
	if err != nil || parsed.Hostname() == "" {
		return false
	}

	if p.AllowedSuffix != "" && strings.HasSuffix(parsed.Hostname(), p.AllowedSuffix) {
		return true
	}
	if p.LocalDevHost != "" && parsed.Host == p.LocalDevHost {
		return true
	}
	return false
}

// withCORS enforces the origin policy and sets CORS headers for
// allowed cross-origin callers.
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")

		if !s.cors.allows(origin) {
			s.errorResponse(w, http.StatusForbidden, "Origin not allowed by CORS policy")
			return
		}

		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		}

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
