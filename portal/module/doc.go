// Package module describes the externally hosted tools advertised by the
// portal and decides, per module, whether a navigation link or a "not
// configured" warning is shown.
package module
