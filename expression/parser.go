// Package expression parses class expressions written in a compact textual
// syntax, such as
//
//	Person and (hasPet some (Dog or Cat)) and not (age max 1)
//
// Names are resolved to typed entities by a pluggable EntityChecker.
package expression

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cayleygraph/quad"

	"github.com/cayleygraph/owlrdf/owl"
	vowl "github.com/cayleygraph/owlrdf/voc/owl"
)

// ErrNoChecker is returned by Parse when no EntityChecker was set.
var ErrNoChecker = errors.New("expression: no entity checker")

// EntityChecker resolves names to typed entities. Each method reports false
// if the name does not denote an entity of that type.
type EntityChecker interface {
	Class(name string) (owl.Class, bool)
	ObjectProperty(name string) (owl.ObjectProperty, bool)
	DataProperty(name string) (owl.DataProperty, bool)
	Datatype(name string) (owl.Datatype, bool)
	Individual(name string) (owl.NamedIndividual, bool)
}

// Parser parses expressions of type O.
type Parser[O any] interface {
	SetEntityChecker(c EntityChecker)
	Parse(s string) (O, error)
}

// ParseError is a syntax or name resolution error. Offset is a byte offset,
// Line and Column are 1-based.
type ParseError struct {
	Offset   int
	Line     int
	Column   int
	Token    string
	Expected []string
	Msg      string
}

func newError(src string, offset int, tok, msg string, expected ...string) *ParseError {
	line, col := 1, 1
	for _, r := range src[:offset] {
		if r == '\n' {
			line++
			col = 1
		} else {
			col++
		}
	}
	return &ParseError{Offset: offset, Line: line, Column: col, Token: tok, Expected: expected, Msg: msg}
}

func (e *ParseError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "line %d column %d", e.Line, e.Column)
	if e.Token != "" {
		fmt.Fprintf(&b, ": encountered %s", e.Token)
	}
	if e.Msg != "" {
		b.WriteString(": " + e.Msg)
	}
	if len(e.Expected) != 0 {
		b.WriteString(", expected one of: " + strings.Join(e.Expected, ", "))
	}
	return b.String()
}

// ClassExpressionParser parses class expressions.
//
//	expr        = conjunction { "or" conjunction }
//	conjunction = unary { ("and" | "that") unary }
//	unary       = "not" unary | primary
//	primary     = "(" expr ")" | "{" name { "," name } "}" | restriction | class
//	restriction = property ("some" | "only") filler
//	            | property "value" (individual | literal)
//	            | property "self"
//	            | property ("min" | "max" | "exactly") integer [filler]
//	property    = name | "inverse" ["("] name [")"]
//
// The filler of a data property restriction is a data range: a datatype with
// optional facets, such as xsd:integer[>= 18, < 65], a literal enumeration
// {1, 2}, or a boolean combination of those.
type ClassExpressionParser struct {
	checker EntityChecker
}

var _ Parser[owl.ClassExpression] = (*ClassExpressionParser)(nil)

// NewClassExpressionParser creates a parser resolving names with c.
func NewClassExpressionParser(c EntityChecker) *ClassExpressionParser {
	return &ClassExpressionParser{checker: c}
}

func (p *ClassExpressionParser) SetEntityChecker(c EntityChecker) {
	p.checker = c
}

func (p *ClassExpressionParser) Parse(s string) (owl.ClassExpression, error) {
	if p.checker == nil {
		return nil, ErrNoChecker
	}
	toks, err := lex(s)
	if err != nil {
		return nil, err
	}
	ps := &parser{src: s, toks: toks, check: p.checker}
	c, err := ps.classExpr()
	if err != nil {
		return nil, err
	}
	if t := ps.peek(); t.kind != tokEOF {
		return nil, ps.fail(t, "unexpected input after expression", "and", "or")
	}
	return c, nil
}

type parser struct {
	src   string
	toks  []token
	pos   int
	check EntityChecker
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) lookahead(n int) token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1]
	}
	return p.toks[p.pos+n]
}

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) fail(t token, msg string, expected ...string) *ParseError {
	return newError(p.src, t.offset, t.String(), msg, expected...)
}

func (p *parser) expect(punct string) error {
	if t := p.next(); !t.is(punct) {
		return p.fail(t, "", strconv.Quote(punct))
	}
	return nil
}

func isName(t token) bool {
	return t.kind == tokName || t.kind == tokIRI
}

var restrictionKeywords = []string{"some", "only", "value", "self", "min", "max", "exactly"}

func isRestrictionKeyword(t token) bool {
	for _, kw := range restrictionKeywords {
		if t.keyword(kw) {
			return true
		}
	}
	return false
}

func (p *parser) classExpr() (owl.ClassExpression, error) {
	first, err := p.conjunction()
	if err != nil {
		return nil, err
	}
	ops := []owl.ClassExpression{first}
	for p.peek().keyword("or") {
		p.next()
		c, err := p.conjunction()
		if err != nil {
			return nil, err
		}
		ops = append(ops, c)
	}
	if len(ops) == 1 {
		return first, nil
	}
	return owl.ObjectUnionOf(ops), nil
}

func (p *parser) conjunction() (owl.ClassExpression, error) {
	first, err := p.unary()
	if err != nil {
		return nil, err
	}
	ops := []owl.ClassExpression{first}
	for t := p.peek(); t.keyword("and") || t.keyword("that"); t = p.peek() {
		p.next()
		c, err := p.unary()
		if err != nil {
			return nil, err
		}
		ops = append(ops, c)
	}
	if len(ops) == 1 {
		return first, nil
	}
	return owl.ObjectIntersectionOf(ops), nil
}

func (p *parser) unary() (owl.ClassExpression, error) {
	if p.peek().keyword("not") {
		p.next()
		c, err := p.unary()
		if err != nil {
			return nil, err
		}
		return owl.ObjectComplementOf{Operand: c}, nil
	}
	return p.primary()
}

func (p *parser) primary() (owl.ClassExpression, error) {
	t := p.peek()
	switch {
	case t.is("("):
		p.next()
		c, err := p.classExpr()
		if err != nil {
			return nil, err
		}
		if err = p.expect(")"); err != nil {
			return nil, err
		}
		return c, nil
	case t.is("{"):
		return p.oneOf()
	case t.keyword("inverse"):
		return p.restriction()
	case isName(t):
		if isRestrictionKeyword(p.lookahead(1)) {
			return p.restriction()
		}
		p.next()
		c, ok := p.check.Class(t.text)
		if !ok {
			return nil, p.fail(t, "unknown class")
		}
		return c, nil
	}
	return nil, p.fail(t, "", "class name", `"("`, `"{"`, `"not"`)
}

func (p *parser) oneOf() (owl.ClassExpression, error) {
	p.next()
	var out owl.ObjectOneOf
	for {
		ind, err := p.individual()
		if err != nil {
			return nil, err
		}
		out = append(out, ind)
		t := p.next()
		if t.is("}") {
			return out, nil
		}
		if !t.is(",") {
			return nil, p.fail(t, "", `","`, `"}"`)
		}
	}
}

func (p *parser) individual() (owl.Individual, error) {
	t := p.next()
	if !isName(t) {
		return nil, p.fail(t, "", "individual name")
	}
	ind, ok := p.check.Individual(t.text)
	if !ok {
		return nil, p.fail(t, "unknown individual")
	}
	return ind, nil
}

func (p *parser) objectProperty() (owl.ObjectPropertyExpression, error) {
	p.next()
	paren := p.peek().is("(")
	if paren {
		p.next()
	}
	t := p.next()
	if !isName(t) {
		return nil, p.fail(t, "", "object property name")
	}
	op, ok := p.check.ObjectProperty(t.text)
	if !ok {
		return nil, p.fail(t, "unknown object property")
	}
	if paren {
		if err := p.expect(")"); err != nil {
			return nil, err
		}
	}
	return owl.ObjectInverseOf{Property: op}, nil
}

func (p *parser) restriction() (owl.ClassExpression, error) {
	var (
		prop owl.ObjectPropertyExpression
		err  error
	)
	if p.peek().keyword("inverse") {
		if prop, err = p.objectProperty(); err != nil {
			return nil, err
		}
	} else {
		t := p.next()
		if op, ok := p.check.ObjectProperty(t.text); ok {
			prop = op
		} else if dp, ok := p.check.DataProperty(t.text); ok {
			return p.dataRestriction(dp)
		} else {
			return nil, p.fail(t, "unknown property")
		}
	}
	r := &owl.ObjectRestriction{Property: prop}
	kw := p.next()
	switch kw.text {
	case "some", "only":
		r.Kind = owl.SomeValuesFrom
		if kw.text == "only" {
			r.Kind = owl.AllValuesFrom
		}
		if r.Filler, err = p.unary(); err != nil {
			return nil, err
		}
	case "value":
		r.Kind = owl.HasValue
		if r.Value, err = p.individual(); err != nil {
			return nil, err
		}
	case "self":
		r.Kind = owl.HasSelf
	case "min", "max", "exactly":
		r.Kind = cardinalityKind(kw.text)
		if r.Cardinality, err = p.cardinality(); err != nil {
			return nil, err
		}
		if p.startsPrimary() {
			if r.Filler, err = p.unary(); err != nil {
				return nil, err
			}
		}
	default:
		return nil, p.fail(kw, "", quoteAll(restrictionKeywords)...)
	}
	return r, nil
}

func (p *parser) dataRestriction(prop owl.DataProperty) (owl.ClassExpression, error) {
	r := &owl.DataRestriction{Property: prop}
	kw := p.next()
	var err error
	switch kw.text {
	case "some", "only":
		r.Kind = owl.SomeValuesFrom
		if kw.text == "only" {
			r.Kind = owl.AllValuesFrom
		}
		if r.Range, err = p.dataUnary(); err != nil {
			return nil, err
		}
	case "value":
		r.Kind = owl.HasValue
		if r.Value, err = p.literal(); err != nil {
			return nil, err
		}
	case "min", "max", "exactly":
		r.Kind = cardinalityKind(kw.text)
		if r.Cardinality, err = p.cardinality(); err != nil {
			return nil, err
		}
		if p.startsPrimary() {
			if r.Range, err = p.dataUnary(); err != nil {
				return nil, err
			}
		}
	default:
		return nil, p.fail(kw, "", `"some"`, `"only"`, `"value"`, `"min"`, `"max"`, `"exactly"`)
	}
	return r, nil
}

func cardinalityKind(kw string) owl.RestrictionKind {
	switch kw {
	case "min":
		return owl.MinCardinality
	case "max":
		return owl.MaxCardinality
	}
	return owl.ExactCardinality
}

func (p *parser) cardinality() (int, error) {
	t := p.next()
	if t.kind != tokInt {
		return 0, p.fail(t, "", "non-negative integer")
	}
	n, err := strconv.Atoi(t.text)
	if err != nil || n < 0 {
		return 0, p.fail(t, "cardinality must be a non-negative integer")
	}
	return n, nil
}

func (p *parser) startsPrimary() bool {
	t := p.peek()
	return t.is("(") || t.is("{") || t.keyword("not") || (isName(t) && !isConnective(t))
}

func isConnective(t token) bool {
	return t.keyword("and") || t.keyword("or") || t.keyword("that")
}

func (p *parser) dataRange() (owl.DataRange, error) {
	first, err := p.dataConjunction()
	if err != nil {
		return nil, err
	}
	ops := []owl.DataRange{first}
	for p.peek().keyword("or") {
		p.next()
		r, err := p.dataConjunction()
		if err != nil {
			return nil, err
		}
		ops = append(ops, r)
	}
	if len(ops) == 1 {
		return first, nil
	}
	return owl.DataUnionOf(ops), nil
}

func (p *parser) dataConjunction() (owl.DataRange, error) {
	first, err := p.dataUnary()
	if err != nil {
		return nil, err
	}
	ops := []owl.DataRange{first}
	for p.peek().keyword("and") {
		p.next()
		r, err := p.dataUnary()
		if err != nil {
			return nil, err
		}
		ops = append(ops, r)
	}
	if len(ops) == 1 {
		return first, nil
	}
	return owl.DataIntersectionOf(ops), nil
}

func (p *parser) dataUnary() (owl.DataRange, error) {
	t := p.peek()
	switch {
	case t.keyword("not"):
		p.next()
		r, err := p.dataUnary()
		if err != nil {
			return nil, err
		}
		return owl.DataComplementOf{Operand: r}, nil
	case t.is("("):
		p.next()
		r, err := p.dataRange()
		if err != nil {
			return nil, err
		}
		if err = p.expect(")"); err != nil {
			return nil, err
		}
		return r, nil
	case t.is("{"):
		p.next()
		var out owl.DataOneOf
		for {
			lit, err := p.literal()
			if err != nil {
				return nil, err
			}
			out = append(out, lit)
			t := p.next()
			if t.is("}") {
				return out, nil
			}
			if !t.is(",") {
				return nil, p.fail(t, "", `","`, `"}"`)
			}
		}
	case isName(t):
		p.next()
		dt, ok := p.check.Datatype(t.text)
		if !ok {
			return nil, p.fail(t, "unknown datatype")
		}
		if !p.peek().is("[") {
			return dt, nil
		}
		return p.facets(dt)
	}
	return nil, p.fail(t, "", "datatype name", `"("`, `"{"`, `"not"`)
}

var facetNames = map[string]string{
	">=":        vowl.XSDMinInclusive,
	">":         vowl.XSDMinExclusive,
	"<=":        vowl.XSDMaxInclusive,
	"<":         vowl.XSDMaxExclusive,
	"length":    vowl.XSDLength,
	"minLength": vowl.XSDMinLength,
	"maxLength": vowl.XSDMaxLength,
	"pattern":   vowl.XSDPattern,
	"langRange": vowl.XSDLangRange,
}

func (p *parser) facets(dt owl.Datatype) (owl.DataRange, error) {
	p.next()
	r := &owl.DatatypeRestriction{Datatype: dt}
	for {
		t := p.next()
		facet, ok := facetNames[t.text]
		if !ok || (t.kind != tokFacet && t.kind != tokName) {
			return nil, p.fail(t, "", "facet")
		}
		lit, err := p.literal()
		if err != nil {
			return nil, err
		}
		r.Facets = append(r.Facets, owl.FacetRestriction{Facet: owl.IRI(facet), Value: lit})
		t = p.next()
		if t.is("]") {
			return r, nil
		}
		if !t.is(",") {
			return nil, p.fail(t, "", `","`, `"]"`)
		}
	}
}

func (p *parser) literal() (owl.Literal, error) {
	t := p.next()
	switch t.kind {
	case tokInt:
		return typed(t.text, vowl.XSDInteger), nil
	case tokDecimal:
		return typed(t.text, vowl.XSDDecimal), nil
	case tokName:
		if t.text == "true" || t.text == "false" {
			return typed(t.text, vowl.XSDBoolean), nil
		}
	case tokString:
		switch n := p.peek(); {
		case n.is("^^"):
			p.next()
			dt := p.next()
			if !isName(dt) {
				return owl.Literal{}, p.fail(dt, "", "datatype name")
			}
			d, ok := p.check.Datatype(dt.text)
			if !ok {
				return owl.Literal{}, p.fail(dt, "unknown datatype")
			}
			return owl.Literal{Value: quad.TypedString{Value: quad.String(t.text), Type: d.IRI()}}, nil
		case n.kind == tokLang:
			p.next()
			return owl.Literal{Value: quad.LangString{Value: quad.String(t.text), Lang: n.text}}, nil
		}
		return owl.Literal{Value: quad.String(t.text)}, nil
	}
	return owl.Literal{}, p.fail(t, "", "literal")
}

func typed(lex, dt string) owl.Literal {
	return owl.Literal{Value: quad.TypedString{Value: quad.String(lex), Type: quad.IRI(dt)}}
}

func quoteAll(words []string) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = strconv.Quote(w)
	}
	return out
}
