// Package http implements the web front end.
//
// It renders a single server-side page for searching people and declaring a
// relationship between two of them, handles the form submission and exposes
// Prometheus metrics. Request tracing, access logging, request counting and
// response compression are applied as middleware before requests reach the
// service layer.
package http
