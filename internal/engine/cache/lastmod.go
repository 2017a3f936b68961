package cache

import (
	"path"
	"strings"

	"go.trai.ch/stamp/internal/core/domain"
	"go.trai.ch/stamp/internal/rewrite"
)

// rewritableExtension is the document type parsed for embedded references.
const rewritableExtension = "css"

// staticExtensions lists the extensions eligible for lastModified stamping
// under ModeDefault. HTML document types are excluded since stamping them
// produces duplicate content URLs.
var staticExtensions = map[string]bool{
	// CSS
	"css": true,
	// Diagrams
	"dia": true,
	// Java
	"jar":   true,
	"class": true,
	"jnlp":  true,
	"tld":   true,
	// JavaScript
	"js":   true,
	"spt":  true,
	"jsfl": true,
	// Image types
	"bmp":  true,
	"exif": true,
	"gif":  true,
	"ico":  true,
	"jfif": true,
	"jpg":  true,
	"jpeg": true,
	"jpe":  true,
	"mng":  true,
	"nitf": true,
	"png":  true,
	"svg":  true,
	"tif":  true,
	"tiff": true,
	"webp": true,
	// PDF document
	"pdf": true,
	// XML document
	"xml": true,
	"xsd": true,
	"rss": true,
	// Web development
	"less":    true,
	"sass":    true,
	"scss":    true,
	"css.map": true,
	"js.map":  true,
}

// IsRewritable reports whether the document at p is parsed and rewritten
// rather than served verbatim.
func IsRewritable(p string) bool {
	return strings.EqualFold(extensionOf(p), rewritableExtension)
}

func extensionOf(p string) string {
	ext := path.Ext(p)
	if ext == "" {
		return ""
	}
	return strings.ToLower(ext[1:])
}

// stampable applies the static-extension policy, including the double
// extension forms like "css.map".
func stampable(p string) bool {
	base := strings.ToLower(path.Base(p))
	i := strings.LastIndexByte(base, '.')
	if i < 0 {
		return false
	}
	if staticExtensions[base[i+1:]] {
		return true
	}
	j := strings.LastIndexByte(base[:i], '.')
	if j < 0 {
		return false
	}
	return staticExtensions[base[j+1:]]
}

// AddLastModified appends a freshness parameter to rawURL when it resolves to
// a known local resource. docPath is the context-relative path of the
// document the URL appears in. Under ModeDefault the static-extension policy
// decides eligibility; ModeEnabled always stamps resolvable URLs and
// ModeDisabled never modifies them. Rewritable documents are stamped with
// their aggregate newest time, everything else with its own.
func (c *Cache) AddLastModified(docPath, rawURL string, mode domain.RewriteMode) (string, error) {
	if mode == domain.ModeDisabled {
		return rawURL, nil
	}
	ref, err := rewrite.Resolve(docPath, rawURL)
	if err != nil {
		return "", err
	}
	if ref.External {
		return rawURL, nil
	}
	if mode == domain.ModeDefault && !stampable(ref.Path) {
		return rawURL, nil
	}

	var modTime int64
	if IsRewritable(ref.Path) {
		modTime = c.NewestModified(domain.Key{Mode: mode, Path: ref.Path})
	} else {
		modTime = c.meta.LastModified(ref.Path)
	}
	if modTime == 0 {
		return rawURL, nil
	}

	// Insert the parameter ahead of any fragment.
	base, fragment := rawURL, ""
	if i := strings.IndexByte(rawURL, '#'); i >= 0 {
		base, fragment = rawURL[:i], rawURL[i:]
	}
	sep := "?"
	if strings.ContainsRune(base, '?') {
		sep = "&"
	}
	return base + sep + domain.ParamName + "=" + domain.EncodeModTime(modTime) + fragment, nil
}
