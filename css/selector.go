// Package css implements the selector engine backing collection queries:
// a small parser for the selector subset the library supports (tags, ids,
// classes, attribute selectors and the four combinators) and matching of
// parsed selectors against dom nodes.
package css

import (
	"strings"

	"github.com/pkg/errors"
)

// AttrSelector represents an attribute selector like `[href]` or
// `[target="_blank"]`.
type AttrSelector struct {
	Name     string
	Operator string // "", "=", "~=", "|=", "^=", "$=", "*="
	Value    string
}

// Simple represents the core components of one selector step (tag, id,
// classes, attributes).
type Simple struct {
	Tag     string
	ID      string
	Classes []string
	Attrs   []AttrSelector
}

// IsValid checks that the selector has at least one component.
func (s Simple) IsValid() bool {
	return s.Tag != "" || s.ID != "" || len(s.Classes) > 0 || len(s.Attrs) > 0
}

// Combinator defines the relationship between selector steps.
type Combinator int

const (
	CombinatorNone            Combinator = iota // first step
	CombinatorDescendant                        // space
	CombinatorChild                             // >
	CombinatorAdjacentSibling                   // +
	CombinatorGeneralSibling                    // ~
)

// Part pairs a simple selector with its preceding combinator.
type Part struct {
	Combinator Combinator
	Simple     Simple
}

// Selector is a sequence of steps joined by combinators (e.g. "div > p").
type Selector struct {
	Parts []Part
}

// SelectorList is a comma-separated selector group (e.g. "h1, h2 .title").
type SelectorList []Selector

// Parse analyzes a selector group. An empty or syntactically unsupported
// input is an error; matching against an erroneous selector is the caller's
// business (collections treat it as matching nothing).
func Parse(input string) (SelectorList, error) {
	p := &parser{input: input}
	var list SelectorList
	for {
		p.consumeWhitespace()
		if p.eof() {
			break
		}
		sel, err := p.parseSelector()
		if err != nil {
			return nil, err
		}
		if len(sel.Parts) > 0 {
			list = append(list, sel)
		}
		p.consumeWhitespace()
		if p.eof() {
			break
		}
		if p.currentChar() != ',' {
			return nil, errors.Errorf("unexpected %q in selector %q", p.currentChar(), input)
		}
		p.consumeChar()
	}
	if len(list) == 0 {
		return nil, errors.Errorf("empty selector %q", input)
	}
	return list, nil
}

// parser holds the scanning state.
type parser struct {
	input string
	pos   int
}

// parseSelector parses a sequence of simple selectors and combinators.
func (p *parser) parseSelector() (Selector, error) {
	var sel Selector
	combinator := CombinatorNone

	for {
		p.consumeWhitespace()
		if p.eof() || p.currentChar() == ',' {
			break
		}

		simple, err := p.parseSimple()
		if err != nil {
			return Selector{}, err
		}
		sel.Parts = append(sel.Parts, Part{Combinator: combinator, Simple: simple})

		sawSpace := p.consumeWhitespace()
		if p.eof() || p.currentChar() == ',' {
			break
		}

		switch p.currentChar() {
		case '>':
			combinator = CombinatorChild
			p.consumeChar()
		case '+':
			combinator = CombinatorAdjacentSibling
			p.consumeChar()
		case '~':
			combinator = CombinatorGeneralSibling
			p.consumeChar()
		default:
			if !sawSpace {
				return Selector{}, errors.Errorf("unexpected %q after selector step", p.currentChar())
			}
			combinator = CombinatorDescendant
		}
	}
	return sel, nil
}

// parseSimple parses a single selector step (e.g. div#id.class1.class2).
func (p *parser) parseSimple() (Simple, error) {
	simple := Simple{}

	// Universal or tag name.
	if !p.eof() {
		ch := p.currentChar()
		if ch == '*' {
			p.consumeChar()
			simple.Tag = "*"
		} else if isIdentifierStart(ch) {
			simple.Tag = strings.ToLower(p.parseIdentifier())
		}
	}

	// IDs, classes and attributes.
loop:
	for !p.eof() {
		switch p.currentChar() {
		case '#':
			p.consumeChar()
			simple.ID = p.parseIdentifier()
		case '.':
			p.consumeChar()
			simple.Classes = append(simple.Classes, p.parseIdentifier())
		case '[':
			p.consumeChar()
			attr, err := p.parseAttrSelector()
			if err != nil {
				return Simple{}, err
			}
			simple.Attrs = append(simple.Attrs, attr)
		default:
			break loop
		}
	}

	if !simple.IsValid() && simple.Tag != "*" {
		return Simple{}, errors.Errorf("invalid selector step at offset %d", p.pos)
	}
	return simple, nil
}

// parseAttrSelector parses the contents of `[...]`. The opening bracket has
// already been consumed.
func (p *parser) parseAttrSelector() (AttrSelector, error) {
	p.consumeWhitespace()
	name := p.parseIdentifier()
	p.consumeWhitespace()

	if p.eof() {
		return AttrSelector{}, errors.New("unexpected end of attribute selector")
	}

	// `[disabled]` style presence selector.
	if p.currentChar() == ']' {
		p.consumeChar()
		return AttrSelector{Name: name}, nil
	}

	var operator strings.Builder
	operator.WriteByte(p.consumeChar())
	if !p.eof() && p.currentChar() == '=' {
		operator.WriteByte(p.consumeChar())
	}
	p.consumeWhitespace()

	var value string
	if p.currentChar() == '"' || p.currentChar() == '\'' {
		quote := p.consumeChar()
		start := p.pos
		for !p.eof() && p.currentChar() != quote {
			p.pos++
		}
		value = p.input[start:p.pos]
		if !p.eof() {
			p.consumeChar()
		}
	} else {
		value = p.parseIdentifier()
	}
	p.consumeWhitespace()

	if p.eof() || p.currentChar() != ']' {
		return AttrSelector{}, errors.New("expected ']' to close attribute selector")
	}
	p.consumeChar()

	return AttrSelector{Name: name, Operator: operator.String(), Value: value}, nil
}

func (p *parser) eof() bool {
	return p.pos >= len(p.input)
}

func (p *parser) currentChar() byte {
	if p.eof() {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) consumeChar() byte {
	ch := p.currentChar()
	if !p.eof() {
		p.pos++
	}
	return ch
}

func (p *parser) consumeWhitespace() bool {
	seen := false
	for !p.eof() && isWhitespace(p.currentChar()) {
		p.pos++
		seen = true
	}
	return seen
}

func (p *parser) parseIdentifier() string {
	start := p.pos
	for !p.eof() && isIdentifierChar(p.currentChar()) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func isWhitespace(ch byte) bool {
	return ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r'
}

func isIdentifierStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_' || ch == '-'
}

func isIdentifierChar(ch byte) bool {
	return isIdentifierStart(ch) || (ch >= '0' && ch <= '9')
}
