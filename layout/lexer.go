package layout

// The compiler runs in three stages, each one pass: the lexer below turns the
// description into tokens, ast.go shapes the tokens into component nodes, and
// item.go types and validates those nodes into the instruction sequence that
// Format and Parse execute.

// Version selects the format-description dialect.
type Version int

const (
	// V1 is the legacy dialect: "[[" is an escaped literal bracket and
	// nested [optional ...] / [first ...] groups are not available.
	V1 Version = 1
	// V2 is the current dialect: backslash escaping ("\[", "\]", "\\") and
	// nested groups.
	V2 Version = 2
)

type tokenKind int

const (
	tokLiteral tokenKind = iota
	tokBracketOpen
	tokBracketClose
	tokComponentPart
	tokDanglingEscape
)

// A token carries no semantic meaning yet; pos is its byte offset in the
// description, kept through every stage for error reporting.
type token struct {
	kind       tokenKind
	pos        int
	text       []byte
	whitespace bool // meaningful for tokComponentPart only
}

func isDescWhitespace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// lexDescription splits the description into literal runs, brackets, and
// component parts. Bracket depth is tracked so that "]" only closes when an
// opening bracket is pending; anywhere else it is literal text. The lexer
// itself cannot fail: unclosed brackets and dangling escapes surface at the
// AST stage.
func lexDescription(src []byte, version Version) []token {
	var (
		toks  []token
		depth int
		pos   int
	)
	for pos < len(src) {
		switch b := src[pos]; {
		case version == V2 && b == '\\':
			if pos+1 == len(src) {
				// A trailing backslash has nothing to escape; the AST stage
				// rejects it.
				toks = append(toks, token{kind: tokDanglingEscape, pos: pos})
				pos++
				continue
			}
			// Backslash escape; the next byte is literal text regardless of
			// bracket depth.
			toks = append(toks, token{kind: tokLiteral, pos: pos, text: src[pos+1 : pos+2]})
			pos += 2
		case b == '[':
			if version == V1 && pos+1 < len(src) && src[pos+1] == '[' {
				// Escaped bracket, kept as a literal.
				toks = append(toks, token{kind: tokLiteral, pos: pos, text: src[pos : pos+1]})
				pos += 2
				continue
			}
			toks = append(toks, token{kind: tokBracketOpen, pos: pos})
			depth++
			pos++
		case b == ']' && depth > 0:
			toks = append(toks, token{kind: tokBracketClose, pos: pos})
			depth--
			pos++
		case depth == 0:
			start := pos
			for pos < len(src) && src[pos] != '[' && !(version == V2 && src[pos] == '\\') {
				pos++
			}
			toks = append(toks, token{kind: tokLiteral, pos: start, text: src[start:pos]})
		default:
			start := pos
			ws := isDescWhitespace(src[pos])
			for pos < len(src) && src[pos] != '[' && src[pos] != ']' &&
				!(version == V2 && src[pos] == '\\') && isDescWhitespace(src[pos]) == ws {
				pos++
			}
			toks = append(toks, token{
				kind:       tokComponentPart,
				pos:        start,
				text:       src[start:pos],
				whitespace: ws,
			})
		}
	}
	return toks
}
