package rewrite

// Scan exposes the lexical scanner for tests.
func Scan(content []byte) []Match {
	ms := scan(content)
	out := make([]Match, len(ms))
	for i, m := range ms {
		out[i] = Match{
			Token: string(content[m.tokenStart:m.tokenEnd]),
			Start: m.tokenStart,
			End:   m.end,
		}
	}
	return out
}

// Match is the exported view of a scanner match.
type Match struct {
	Token string
	Start int
	End   int
}
