package lal

import "regexp"

// Source normalisation. The pipeline runs before tokenization, in order:
// comments are stripped, whitespace runs collapse to a single space, and
// spaces adjacent to parens are removed. The comment pass is not aware of
// string literals, so a '#' inside "..." is cut to the end of the line; this
// limitation is deliberate and pinned by tests.
var (
	commentRE    = regexp.MustCompile(`#[^\n]*\n?`)
	whitespaceRE = regexp.MustCompile(`\s+`)
	parenRE      = regexp.MustCompile(`\s*([()])\s*`)
)

func normalise(src string) string {
	src = commentRE.ReplaceAllString(src, "")
	src = whitespaceRE.ReplaceAllString(src, " ")
	return parenRE.ReplaceAllString(src, "$1")
}

func isTokenDelim(ch byte) bool {
	return ch == '(' || ch == ')' || ch == ' '
}

// readToken reads one token from normalised source starting at idx. A '"'
// opens a string literal consuming up to the matching '"'; anything else is
// a symbol read up to the next paren or space. It returns the token text,
// whether it was a string literal, and the index just past the token.
func readToken(src string, idx int) (tok string, isString bool, next int) {
	if src[idx] == '"' {
		idx++
		start := idx
		for idx < len(src) && src[idx] != '"' {
			idx++
		}
		// A missing closing quote consumes the rest of the input, like the
		// comment pass this is a documented normalisation limitation.
		tok = src[start:idx]
		if idx < len(src) {
			idx++
		}
		return tok, true, idx
	}
	start := idx
	for idx < len(src) && !isTokenDelim(src[idx]) {
		idx++
	}
	return src[start:idx], false, idx
}
