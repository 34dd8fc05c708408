// Package types defines the Store interface, entity types, Config, and
// standard error values for the kbase storage system.
package types
