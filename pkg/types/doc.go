// Package types defines the shelf document model: Shelf and Entry records,
// entry kinds, orientation, and the standard errors shared by the storage
// and window layers.
package types
