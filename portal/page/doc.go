// Package page builds the landing page view model and renders it as a single
// self contained HTML document with the stylesheet inlined.
package page
