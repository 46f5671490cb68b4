// Package registry provides a generic, type-safe registry used to back
// the icon and color tables. Registries are built once and read
// concurrently afterwards.
package registry
