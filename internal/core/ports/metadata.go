// Package ports defines the core interfaces for the application.
package ports

// MetadataProvider reports resource modification times.
//
//go:generate go run go.uber.org/mock/mockgen -source=metadata.go -destination=mocks/mock_metadata.go -package=mocks
type MetadataProvider interface {
	// LastModified returns the modification time in milliseconds for the
	// resource at the given context-relative path, or 0 when unknown.
	LastModified(path string) int64
}
