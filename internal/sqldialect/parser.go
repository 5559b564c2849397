package sqldialect

import (
	"fmt"
	"strings"
)

// parser builds a tolerant fragment tree from a token stream. It recognizes
// call and group structure and leaves everything else as verbatim leaves:
// masked SQL contains placeholder words and truncated clauses that a strict
// grammar would reject, and the rewriter only needs function boundaries.
type parser struct {
	prof *profile
	toks []token
	pos  int
}

func (d *profile) parseTokens(toks []token) (*Seq, error) {
	p := &parser{prof: d, toks: toks}

	seq, err := p.parseSeq(false)
	if err != nil {
		return nil, err
	}

	if p.pos != len(p.toks) {
		return nil, fmt.Errorf("unexpected %q", p.toks[p.pos].text)
	}

	return seq, nil
}

// parseSeq consumes fragments until end of input, or until an unconsumed
// closing parenthesis when inParens is set.
func (p *parser) parseSeq(inParens bool) (*Seq, error) {
	seq := &Seq{}

	for p.pos < len(p.toks) {
		tok := p.toks[p.pos]

		switch tok.kind {
		case tokenRParen:
			if !inParens {
				return nil, fmt.Errorf("unbalanced closing parenthesis")
			}

			return seq, nil
		case tokenWord:
			if p.peekKind(1) == tokenLParen && isBareWord(tok.text) {
				call, err := p.parseCall()
				if err != nil {
					return nil, err
				}

				seq.Items = append(seq.Items, call)

				continue
			}

			seq.Items = append(seq.Items, &Leaf{Kind: tok.kind, Text: tok.text})
			p.pos++
		case tokenLParen:
			p.pos++

			inner, err := p.parseSeq(true)
			if err != nil {
				return nil, err
			}

			if err := p.expect(tokenRParen); err != nil {
				return nil, err
			}

			seq.Items = append(seq.Items, &Group{Inner: inner})
		default:
			seq.Items = append(seq.Items, &Leaf{Kind: tok.kind, Text: tok.text})
			p.pos++
		}
	}

	if inParens {
		return nil, fmt.Errorf("unbalanced opening parenthesis")
	}

	return seq, nil
}

// parseCall consumes NAME ( args ) with arguments split on top-level commas.
func (p *parser) parseCall() (*Call, error) {
	name := p.toks[p.pos].text
	p.pos += 2 // name and opening parenthesis

	call := &Call{
		Name: name,
		Impl: p.prof.functions[strings.ToUpper(name)],
	}

	if p.peekKind(0) == tokenRParen {
		p.pos++
		return call, nil
	}

	for {
		arg, err := p.parseArg()
		if err != nil {
			return nil, err
		}

		call.Args = append(call.Args, arg)

		switch p.peekKind(0) {
		case tokenComma:
			p.pos++
		case tokenRParen:
			p.pos++
			return call, nil
		default:
			return nil, fmt.Errorf("unterminated call to %s", name)
		}
	}
}

// parseArg is parseSeq limited to a single argument: it additionally stops
// at a top-level comma.
func (p *parser) parseArg() (*Seq, error) {
	seq := &Seq{}

	for p.pos < len(p.toks) {
		tok := p.toks[p.pos]

		switch tok.kind {
		case tokenComma, tokenRParen:
			return seq, nil
		case tokenWord:
			if p.peekKind(1) == tokenLParen && isBareWord(tok.text) {
				call, err := p.parseCall()
				if err != nil {
					return nil, err
				}

				seq.Items = append(seq.Items, call)

				continue
			}

			seq.Items = append(seq.Items, &Leaf{Kind: tok.kind, Text: tok.text})
			p.pos++
		case tokenLParen:
			p.pos++

			inner, err := p.parseSeq(true)
			if err != nil {
				return nil, err
			}

			if err := p.expect(tokenRParen); err != nil {
				return nil, err
			}

			seq.Items = append(seq.Items, &Group{Inner: inner})
		default:
			seq.Items = append(seq.Items, &Leaf{Kind: tok.kind, Text: tok.text})
			p.pos++
		}
	}

	return nil, fmt.Errorf("unterminated argument list")
}

func (p *parser) peekKind(ahead int) tokenKind {
	if p.pos+ahead >= len(p.toks) {
		return tokenKind(-1)
	}

	return p.toks[p.pos+ahead].kind
}

func (p *parser) expect(kind tokenKind) error {
	if p.peekKind(0) != kind {
		return fmt.Errorf("unbalanced parenthesis")
	}

	p.pos++

	return nil
}

// isBareWord reports whether text is an unquoted identifier; only bare words
// followed by a parenthesis form calls.
func isBareWord(text string) bool {
	return len(text) > 0 && text[0] != '"' && text[0] != '`'
}
