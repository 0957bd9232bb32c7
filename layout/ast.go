package layout

import "bytes"

// AST nodes. These are still untyped: a component here is just a name with
// key/value modifier strings, and nested groups hold sub-sequences of nodes.
// item.go turns them into validated instructions.

type astNode interface{ astNode() }

type astLiteral struct {
	pos  int
	text []byte
}

type astModifier struct {
	key, value       string
	keyPos, valuePos int
}

type astComponent struct {
	pos     int // opening bracket
	namePos int
	name    string
	mods    []astModifier
}

type astOptional struct {
	pos   int
	items []astNode
}

type astFirst struct {
	pos    int
	groups [][]astNode
}

func (*astLiteral) astNode()   {}
func (*astComponent) astNode() {}
func (*astOptional) astNode()  {}
func (*astFirst) astNode()     {}

type astParser struct {
	toks    []token
	i       int
	version Version
	srcLen  int
}

func parseAST(toks []token, version Version, srcLen int) ([]astNode, error) {
	p := &astParser{toks: toks, version: version, srcLen: srcLen}
	return p.sequence()
}

func (p *astParser) peek() (token, bool) {
	if p.i >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.i], true
}

// sequence parses nodes until end of input or until the closing bracket of
// the enclosing group (which is left unconsumed).
func (p *astParser) sequence() ([]astNode, error) {
	var nodes []astNode
	for {
		t, ok := p.peek()
		if !ok {
			return nodes, nil
		}
		switch t.kind {
		case tokLiteral:
			p.i++
			if len(t.text) > 0 {
				nodes = append(nodes, &astLiteral{pos: t.pos, text: t.text})
			}
		case tokBracketOpen:
			p.i++
			node, err := p.component(t.pos)
			if err != nil {
				return nil, err
			}
			nodes = append(nodes, node)
		case tokBracketClose:
			// Ends the enclosing nested group; the lexer only emits closing
			// brackets when an opening one is pending, so this cannot happen
			// at the top level.
			return nodes, nil
		case tokComponentPart:
			// Inside a nested group, plain runs between components are
			// literal text.
			p.i++
			nodes = append(nodes, &astLiteral{pos: t.pos, text: t.text})
		case tokDanglingEscape:
			return nil, descErr(TrailingEscape, t.pos, "")
		}
	}
}

// component parses everything after an opening bracket, including the
// matching closing bracket.
func (p *astParser) component(openPos int) (astNode, error) {
	nameIndex := openPos
	if t, ok := p.peek(); ok && t.kind == tokComponentPart && t.whitespace {
		p.i++
		nameIndex = t.pos + len(t.text)
	}

	t, ok := p.peek()
	if !ok {
		return nil, descErr(UnclosedOpeningBracket, openPos, "")
	}
	if t.kind == tokDanglingEscape {
		return nil, descErr(TrailingEscape, t.pos, "")
	}
	if t.kind != tokComponentPart || t.whitespace {
		return nil, descErr(MissingComponentName, nameIndex, "")
	}
	p.i++
	name := string(t.text)
	namePos := t.pos

	if bytes.Equal(t.text, []byte("optional")) || bytes.Equal(t.text, []byte("first")) {
		if p.version == V1 {
			return nil, descErr(NotSupported, namePos, "["+name+" ...] in a version 1 description")
		}
		return p.nestedGroups(openPos, name)
	}

	comp := &astComponent{pos: openPos, namePos: namePos, name: name}
	for {
		t, ok := p.peek()
		if !ok {
			return nil, descErr(UnclosedOpeningBracket, openPos, "")
		}
		switch {
		case t.kind == tokBracketClose:
			p.i++
			return comp, nil
		case t.kind == tokComponentPart && t.whitespace:
			p.i++
		case t.kind == tokComponentPart:
			p.i++
			mod, err := splitModifier(t)
			if err != nil {
				return nil, err
			}
			comp.mods = append(comp.mods, mod)
		case t.kind == tokDanglingEscape:
			return nil, descErr(TrailingEscape, t.pos, "")
		default:
			// An opening bracket inside a plain component.
			return nil, descErr(UnclosedOpeningBracket, openPos, "")
		}
	}
}

func splitModifier(t token) (astModifier, error) {
	colon := bytes.IndexByte(t.text, ':')
	if colon < 0 {
		return astModifier{}, descErr(InvalidModifier, t.pos, string(t.text))
	}
	if colon == 0 {
		return astModifier{}, descErr(InvalidModifier, t.pos, "")
	}
	if colon == len(t.text)-1 {
		return astModifier{}, descErr(InvalidModifier, t.pos+colon+1, "")
	}
	return astModifier{
		key:      string(t.text[:colon]),
		value:    string(t.text[colon+1:]),
		keyPos:   t.pos,
		valuePos: t.pos + colon + 1,
	}, nil
}

// nestedGroups parses the bodies of [optional [...]] and [first [...] ...],
// whose "values" are themselves descriptions.
func (p *astParser) nestedGroups(openPos int, keyword string) (astNode, error) {
	var groups [][]astNode
	for {
		t, ok := p.peek()
		if !ok {
			return nil, descErr(UnclosedOpeningBracket, openPos, "")
		}
		switch {
		case t.kind == tokComponentPart && t.whitespace:
			p.i++
		case t.kind == tokBracketOpen:
			p.i++
			items, err := p.sequence()
			if err != nil {
				return nil, err
			}
			if t, ok := p.peek(); !ok || t.kind != tokBracketClose {
				return nil, descErr(UnclosedOpeningBracket, openPos, "")
			}
			p.i++
			groups = append(groups, items)
		case t.kind == tokBracketClose:
			p.i++
			switch {
			case len(groups) == 0:
				return nil, descErr(MissingComponentName, t.pos, "")
			case keyword == "optional":
				if len(groups) > 1 {
					return nil, descErr(InvalidModifier, openPos, "optional takes a single nested description")
				}
				return &astOptional{pos: openPos, items: groups[0]}, nil
			default:
				return &astFirst{pos: openPos, groups: groups}, nil
			}
		case t.kind == tokDanglingEscape:
			return nil, descErr(TrailingEscape, t.pos, "")
		default:
			return nil, descErr(InvalidModifier, t.pos, string(t.text))
		}
	}
}
