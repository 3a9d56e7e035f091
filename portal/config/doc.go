// Package config defines the YAML configuration model of the design suite
// portal together with helpers to load it from any afs supported location,
// overlay environment settings and resolve the module registry.
package config
