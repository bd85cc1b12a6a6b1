package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/hopwhistle/internal/config"
	"github.com/MKhiriev/hopwhistle/internal/logger"
)

// newTestHandler creates a Handler with a nop logger and the given origins.
func newTestHandler(origins ...string) *Handler {
	return &Handler{
		settings: &config.Settings{
			CORSOrigins: config.Origins(origins),
			Environment: "test",
		},
		logger: logger.Nop(),
	}
}

// makeRequest creates a test request carrying a logger that writes to buf,
// the same way withTraceID does.
func makeRequest(method, path string, buf *bytes.Buffer) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	l := zerolog.New(buf).With().Timestamp().Logger()
	return req.WithContext(l.WithContext(req.Context()))
}

// okHandler records that it was called and answers 200 "OK".
func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		_, _ = w.Write([]byte("OK"))
	})
}
