package ports

import "io"

// ResourceReader opens resources by context-relative path.
//
//go:generate go run go.uber.org/mock/mockgen -source=reader.go -destination=mocks/mock_reader.go -package=mocks
type ResourceReader interface {
	// Open returns the resource's byte stream. It returns an error
	// matching domain.ErrNotFound when the resource does not exist.
	Open(path string) (io.ReadCloser, error)
}

// Walker enumerates resources beneath the document root.
type Walker interface {
	// List returns the context-relative paths of all resources with the
	// given extension, sorted.
	List(ext string) ([]string, error)
}
