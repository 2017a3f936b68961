package domain

import "strconv"

// ParamName is the name of the freshness parameter appended to rewritten
// local references. The name is URL-safe and needs no encoding.
const ParamName = "lastModified"

// RewriteHeader is the request header that enables or disables automatic
// lastModified parameters for a request.
const RewriteHeader = "X-Stamp-Rewrite"

// EncodeModTime encodes a modification time in milliseconds as whole seconds
// in base 32. The result is compact, non-padded, and contains no characters
// requiring URL escaping.
func EncodeModTime(millis int64) string {
	return strconv.FormatInt(millis/1000, 32)
}
