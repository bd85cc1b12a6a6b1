// Package http implements the HTTP transport layer of the hopwhistle API.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, and CORS are handled in
// this package; the CORS allow-list comes from [config.Settings.CORSOrigins].
package http
