package http

import (
	"net/http"

	"github.com/MKhiriev/hopwhistle/internal/logger"
)

const (
	originHeader        = "Origin"
	requestMethodHeader = "Access-Control-Request-Method"
	requestHeaders      = "Access-Control-Request-Headers"

	allowedMethods  = "GET, POST, PUT, PATCH, DELETE, OPTIONS"
	allowedHeaders  = "Authorization, Content-Type, X-Trace-ID"
	preflightMaxAge = "600"
)

// withCORS applies the CORS policy built from the configured origins list.
//
// Requests from an allowed origin get the origin reflected back together
// with credentials support. Preflight requests (OPTIONS carrying
// Access-Control-Request-Method) are answered here: 204 for allowed
// origins, 403 otherwise. Simple requests from other origins are served
// without CORS headers, leaving the browser to block the response.
func (h *Handler) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get(originHeader)
		if origin == "" {
			next.ServeHTTP(w, r)
			return
		}

		header := w.Header()
		header.Add("Vary", originHeader)
		preflight := r.Method == http.MethodOptions && r.Header.Get(requestMethodHeader) != ""

		if !h.settings.CORSOrigins.Allows(origin) {
			if preflight {
				logger.FromRequest(r).Warn().Str("origin", origin).Msg("CORS preflight from disallowed origin")
				w.WriteHeader(http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		header.Set("Access-Control-Allow-Origin", origin)
		header.Set("Access-Control-Allow-Credentials", "true")
		header.Set("Access-Control-Expose-Headers", traceIDHeader)

		if preflight {
			header.Add("Vary", requestMethodHeader)
			header.Add("Vary", requestHeaders)
			header.Set("Access-Control-Allow-Methods", allowedMethods)
			if requested := r.Header.Get(requestHeaders); requested != "" {
				header.Set("Access-Control-Allow-Headers", requested)
			} else {
				header.Set("Access-Control-Allow-Headers", allowedHeaders)
			}
			header.Set("Access-Control-Max-Age", preflightMaxAge)
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
