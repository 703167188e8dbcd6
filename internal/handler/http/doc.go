// Package http implements the REST API of the remote store.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as authentication, request tracing, access logging, metrics
// and response compression are handled in this package before requests are
// delegated to the service layer.
package http
