// Package server exposes the portal over HTTP: the rendered landing page, a
// JSON module directory, launch redirects, a health probe and Prometheus
// metrics.
package server
