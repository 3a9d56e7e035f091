// Package action implements the "portal" Fluxor service. Its actions report
// which portal modules are configured and where they launch.
package action
