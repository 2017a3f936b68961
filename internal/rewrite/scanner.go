// Package rewrite implements the lexical url(...) scan and document
// reassembly for stylesheet assets.
package rewrite

import "regexp"

// urlPattern matches url(<token>) directives, case-insensitive, with
// arbitrary whitespace around the token. The scan is deliberately lexical and
// line-oriented in spirit: it does not understand escape sequences, nested
// parentheses, or quoted parentheses.
var urlPattern = regexp.MustCompile(`(?i)url\s*\(\s*(\S+?)\s*\)`)

// match is one url(...) occurrence. tokenStart and tokenEnd bound the
// quote-stripped token; end is the end of the full directive.
type match struct {
	tokenStart int
	tokenEnd   int
	end        int
}

// scan returns all url(...) matches in content, stripping at most one layer
// of leading and trailing quote characters from each token.
func scan(content []byte) []match {
	idxs := urlPattern.FindAllSubmatchIndex(content, -1)
	matches := make([]match, 0, len(idxs))
	for _, idx := range idxs {
		start, end := idx[2], idx[3]
		if start < end && (content[start] == '"' || content[start] == '\'') {
			start++
		}
		if start < end && (content[end-1] == '"' || content[end-1] == '\'') {
			end--
		}
		matches = append(matches, match{tokenStart: start, tokenEnd: end, end: idx[1]})
	}
	return matches
}
