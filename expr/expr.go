// Package expr reads and writes the Name(arg, ...) expressions used to store
// detector and distance band configurations as text.
package expr

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/scanner"
)

// ErrSyntax is returned for malformed expressions.
var ErrSyntax = errors.New("expr: syntax error")

// Value is an argument of a call. It is either a Number, an Ident, or a
// *Call.
type Value interface {
	fmt.Stringer
	isValue()
}

// Number is a numeric literal.
type Number float64

func (n Number) String() string {
	return strconv.FormatFloat(float64(n), 'g', -1, 64)
}

func (Number) isValue() {}

// Float32 is a numeric literal that prints with single precision, so that
// float32 configuration values round-trip without noise digits.
type Float32 float32

func (f Float32) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 32)
}

func (Float32) isValue() {}

// Ident is a bare identifier.
type Ident string

func (i Ident) String() string { return string(i) }

func (Ident) isValue() {}

// Call is Name(arg, ...).
type Call struct {
	Name string
	Args []Value
}

// NewCall creates a call expression.
func NewCall(name string, args ...Value) *Call {
	return &Call{Name: name, Args: args}
}

func (c *Call) isValue() {}

func (c *Call) String() string {
	var sb strings.Builder

	sb.WriteString(c.Name)
	sb.WriteByte('(')

	for i, a := range c.Args {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(a.String())
	}

	sb.WriteByte(')')

	return sb.String()
}

// Float32Arg returns the i-th argument as a float32.
func (c *Call) Float32Arg(i int) (float32, error) {
	if i >= len(c.Args) {
		return 0, fmt.Errorf("%w: %s has no argument %d", ErrSyntax, c.Name, i)
	}

	switch n := c.Args[i].(type) {
	case Number:
		return float32(n), nil
	case Float32:
		return float32(n), nil
	default:
		return 0, fmt.Errorf("%w: argument %d of %s is not a number",
			ErrSyntax, i, c.Name)
	}
}

// ExpectName checks the call name and number of arguments.
func (c *Call) ExpectName(name string, numArgs int) error {
	if c.Name != name {
		return fmt.Errorf("%w: expected %s, got %s", ErrSyntax, name, c.Name)
	}

	if len(c.Args) != numArgs {
		return fmt.Errorf("%w: %s takes %d arguments, got %d",
			ErrSyntax, name, numArgs, len(c.Args))
	}

	return nil
}

// Parse reads a single call expression.
func Parse(src string) (*Call, error) {
	p := &parser{}
	p.s.Init(strings.NewReader(src))
	p.s.Mode = scanner.ScanIdents | scanner.ScanFloats | scanner.ScanInts
	p.s.Error = func(_ *scanner.Scanner, msg string) { p.err = msg }
	p.next()

	call, err := p.parseCall()
	if err != nil {
		return nil, err
	}

	if p.tok != scanner.EOF {
		return nil, p.errorf("unexpected %q after expression", p.s.TokenText())
	}

	return call, nil
}

type parser struct {
	s   scanner.Scanner
	tok rune
	err string
}

func (p *parser) next() {
	p.tok = p.s.Scan()
}

func (p *parser) errorf(format string, args ...any) error {
	return fmt.Errorf("%w at %s: %s",
		ErrSyntax, p.s.Position, fmt.Sprintf(format, args...))
}

func (p *parser) expect(tok rune) error {
	if p.err != "" {
		return p.errorf("%s", p.err)
	}

	if p.tok != tok {
		return p.errorf("expected %q, got %q", tok, p.s.TokenText())
	}

	p.next()

	return nil
}

func (p *parser) parseCall() (*Call, error) {
	if p.tok != scanner.Ident {
		return nil, p.errorf("expected a name, got %q", p.s.TokenText())
	}

	call := &Call{Name: p.s.TokenText()}
	p.next()

	if err := p.expect('('); err != nil {
		return nil, err
	}

	if p.tok == ')' {
		p.next()
		return call, nil
	}

	for {
		arg, err := p.parseValue()
		if err != nil {
			return nil, err
		}

		call.Args = append(call.Args, arg)

		if p.tok == ',' {
			p.next()
			continue
		}

		if err := p.expect(')'); err != nil {
			return nil, err
		}

		return call, nil
	}
}

func (p *parser) parseValue() (Value, error) {
	switch p.tok {
	case '-', '+':
		sign := p.s.TokenText()
		p.next()

		if p.tok != scanner.Int && p.tok != scanner.Float {
			return nil, p.errorf("expected a number after %q", sign)
		}

		return p.parseNumber(sign)
	case scanner.Int, scanner.Float:
		return p.parseNumber("")
	case scanner.Ident:
		if p.s.Peek() == '(' {
			return p.parseCall()
		}

		name := p.s.TokenText()
		p.next()

		return Ident(name), nil
	default:
		return nil, p.errorf("unexpected %q", p.s.TokenText())
	}
}

func (p *parser) parseNumber(sign string) (Value, error) {
	text := sign + p.s.TokenText()

	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, p.errorf("bad number %q", text)
	}

	p.next()

	return Number(v), nil
}
