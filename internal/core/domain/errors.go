package domain

import "go.trai.ch/zerr"

var (
	// ErrNotFound is returned when a source document or resource cannot be
	// found. It is surfaced to the caller and never cached as a negative
	// result.
	ErrNotFound = zerr.New("resource not found")

	// ErrMalformedReference is returned when a raw reference cannot be
	// resolved into a valid URL structure.
	ErrMalformedReference = zerr.New("malformed reference")

	// ErrNotRewritable is returned when a rewrite is requested for a
	// document type that is not parsed.
	ErrNotRewritable = zerr.New("document type is not rewritable")
)
