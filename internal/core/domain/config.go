package domain

// Cache-control defaults, in the order documented at
// https://developer.mozilla.org/en-US/docs/Web/HTTP/Headers/Cache-Control
const (
	// DefaultDocumentCacheControl is the short-term value applied to
	// rewritten documents served without a lastModified parameter.
	// Expiration is 5 minutes.
	DefaultDocumentCacheControl = "public" +
		",max-age=300" +
		",max-stale=300" +
		",stale-while-revalidate=300" +
		",stale-if-error=300"

	// DefaultStampedCacheControl is the long-term value applied to
	// responses requested with a lastModified parameter. A stamped URL
	// changes whenever its resource does, so the response is immutable.
	// Expiration is 1 year (365.25 days).
	DefaultStampedCacheControl = "public" +
		",max-age=31557600" +
		",max-stale=31557600" +
		",stale-while-revalidate=31557600" +
		",stale-if-error=31557600" +
		",immutable"
)

// Config holds the runtime configuration for the server.
type Config struct {
	// Root is the directory served as the application's resource
	// namespace. All context-relative paths are resolved beneath it.
	Root string

	// Listen is the TCP address the HTTP server binds to.
	Listen string

	// DocumentCacheControl is sent with rewritten documents that were not
	// themselves requested with a lastModified parameter.
	DocumentCacheControl string

	// StampedCacheControl is sent with any response whose request carried
	// a non-empty lastModified parameter.
	StampedCacheControl string
}
