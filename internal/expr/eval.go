package expr

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joeycumines/go-bigrat"
	"golang.org/x/exp/slices"
)

const (
	maxDepth = 256
	// maxPowerBits bounds the estimated size of the result of ^
	maxPowerBits = 1 << 24
)

type (
	// Evaluator evaluates expressions. The zero value is ready to use,
	// with the defaults described on each field.
	Evaluator struct {
		// SqrtPrecision is the number of decimal places `sqrt` iterates
		// to, see bigrat.Rat.Sqrt. Defaults to 20 if zero.
		SqrtPrecision int
		// SqrtIterations bounds the iterations of `sqrt`. Defaults to 64
		// if zero.
		SqrtIterations int
	}

	// Result is the outcome of a successful evaluation.
	Result struct {
		Value bigrat.Rat
		// Approximate will be true if any square root did not converge
		// to the requested precision.
		Approximate bool
	}

	// Error is returned for invalid expressions, and evaluation failures,
	// and identifies the position in the input.
	Error struct {
		// Pos is the byte offset of the offending token.
		Pos int
		Msg string
		// Err is the underlying error, if any.
		Err error
	}

	parser struct {
		eval        *Evaluator
		tokens      []Token
		pos         int
		depth       int
		approximate bool
	}

	function func(p *parser, x bigrat.Rat) (bigrat.Rat, error)
)

var (
	// ErrSyntax is wrapped by errors for malformed expressions.
	ErrSyntax = errors.New(`syntax error`)

	// ErrTooLarge is wrapped by errors for powers with results too large
	// to compute.
	ErrTooLarge = errors.New(`result too large`)

	functions = map[string]function{
		`abs`:   func(_ *parser, x bigrat.Rat) (bigrat.Rat, error) { return x.Abs(), nil },
		`floor`: func(_ *parser, x bigrat.Rat) (bigrat.Rat, error) { return x.Floor(), nil },
		`ceil`:  func(_ *parser, x bigrat.Rat) (bigrat.Rat, error) { return x.Ceil(), nil },
		`round`: func(_ *parser, x bigrat.Rat) (bigrat.Rat, error) { return x.Round(bigrat.ToEven), nil },
		`trunc`: func(_ *parser, x bigrat.Rat) (bigrat.Rat, error) { return x.Trunc(), nil },
		`inv`:   func(_ *parser, x bigrat.Rat) (bigrat.Rat, error) { return x.Inv(), nil },
		`sqrt`:  (*parser).sqrt,
	}
)

// Functions returns the sorted names of the supported functions.
func Functions() []string {
	names := make([]string, 0, len(functions))
	for name := range functions {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Constants returns the names of the supported constants.
func Constants() []string {
	return []string{`inf`, `nan`}
}

func (x *Error) Error() string {
	var b strings.Builder
	b.WriteString(`expr: column `)
	fmt.Fprint(&b, x.Pos+1)
	b.WriteString(`: `)
	b.WriteString(x.Msg)
	if x.Err != nil {
		b.WriteString(`: `)
		b.WriteString(x.Err.Error())
	}
	return b.String()
}

func (x *Error) Unwrap() error {
	return x.Err
}

// Eval evaluates a single expression.
func (x *Evaluator) Eval(input string) (Result, error) {
	p := parser{
		eval:   x,
		tokens: Scan(input),
	}
	v, err := p.parseExpr()
	if err != nil {
		return Result{}, err
	}
	if t := p.peek(); t.Kind != TokenEOF {
		return Result{}, p.syntaxError(t, `unexpected `+describe(t))
	}
	return Result{Value: v, Approximate: p.approximate}, nil
}

func (x *Evaluator) sqrtPrecision() int {
	if x.SqrtPrecision == 0 {
		return 20
	}
	return x.SqrtPrecision
}

func (x *Evaluator) sqrtIterations() int {
	if x.SqrtIterations == 0 {
		return 64
	}
	return x.SqrtIterations
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) next() Token {
	t := p.tokens[p.pos]
	if t.Kind != TokenEOF {
		p.pos++
	}
	return t
}

func (p *parser) syntaxError(t Token, msg string) *Error {
	return &Error{Pos: t.Pos, Msg: msg, Err: ErrSyntax}
}

// parseExpr parses addition and subtraction
func (p *parser) parseExpr() (bigrat.Rat, error) {
	p.depth++
	defer func() { p.depth-- }()
	if p.depth > maxDepth {
		return bigrat.NaN(), p.syntaxError(p.peek(), `expression too deeply nested`)
	}

	x, err := p.parseTerm()
	if err != nil {
		return x, err
	}
	for {
		t := p.peek()
		if t.Kind != TokenOperator || (t.Text != `+` && t.Text != `-`) {
			return x, nil
		}
		p.next()
		y, err := p.parseTerm()
		if err != nil {
			return y, err
		}
		if t.Text == `+` {
			x = x.Add(y)
		} else {
			x = x.Sub(y)
		}
	}
}

// parseTerm parses multiplication, division, and remainder
func (p *parser) parseTerm() (bigrat.Rat, error) {
	x, err := p.parseUnary()
	if err != nil {
		return x, err
	}
	for {
		t := p.peek()
		if t.Kind != TokenOperator || (t.Text != `*` && t.Text != `/` && t.Text != `%`) {
			return x, nil
		}
		p.next()
		y, err := p.parseUnary()
		if err != nil {
			return y, err
		}
		switch t.Text {
		case `*`:
			x = x.Mul(y)
		case `/`:
			x = x.Quo(y)
		default:
			x = x.Rem(y)
		}
	}
}

// parseUnary parses sign prefixes, which bind looser than `^`, i.e.
// `-2^2 == -4`
func (p *parser) parseUnary() (bigrat.Rat, error) {
	t := p.peek()
	if t.Kind == TokenOperator && (t.Text == `-` || t.Text == `+`) {
		p.next()
		p.depth++
		defer func() { p.depth-- }()
		if p.depth > maxDepth {
			return bigrat.NaN(), p.syntaxError(t, `expression too deeply nested`)
		}
		x, err := p.parseUnary()
		if err != nil {
			return x, err
		}
		if t.Text == `-` {
			x = x.Neg()
		}
		return x, nil
	}
	return p.parsePower()
}

// parsePower parses the right associative exponent operator
func (p *parser) parsePower() (bigrat.Rat, error) {
	x, err := p.parsePrimary()
	if err != nil {
		return x, err
	}
	t := p.peek()
	if t.Kind != TokenOperator || t.Text != `^` {
		return x, nil
	}
	p.next()
	exp := p.peek()
	y, err := p.parseUnary()
	if err != nil {
		return y, err
	}
	n, err := bigrat.ToChecked[int](y)
	if err != nil {
		return bigrat.NaN(), &Error{Pos: exp.Pos, Msg: `exponent must be an integer`, Err: err}
	}
	if powerBits(x, n) > maxPowerBits {
		return bigrat.NaN(), &Error{Pos: exp.Pos, Msg: `exponent too large`, Err: ErrTooLarge}
	}
	v, err := x.Pow(n)
	if err != nil {
		return v, &Error{Pos: t.Pos, Msg: `invalid power`, Err: err}
	}
	return v, nil
}

// powerBits estimates the bit length of the larger of the numerator and
// denominator of x^n, or 0 if x is not normal
func powerBits(x bigrat.Rat, n int) uint64 {
	if !x.IsNormal() {
		return 0
	}
	bits := max(x.Num().BitLen(), x.Denom().BitLen()) - 1
	if n < 0 {
		n = -(n + 1)
		return uint64(bits) * (uint64(n) + 1)
	}
	return uint64(bits) * uint64(n)
}

func (p *parser) parsePrimary() (bigrat.Rat, error) {
	t := p.next()
	switch t.Kind {
	case TokenNumber:
		v, err := bigrat.Parse(t.Text)
		if err != nil {
			return v, &Error{Pos: t.Pos, Msg: `invalid number`, Err: err}
		}
		return v, nil

	case TokenLParen:
		v, err := p.parseExpr()
		if err != nil {
			return v, err
		}
		if r := p.next(); r.Kind != TokenRParen {
			return bigrat.NaN(), p.syntaxError(r, `expected ) but found `+describe(r))
		}
		return v, nil

	case TokenIdent:
		name := strings.ToLower(t.Text)
		switch name {
		case `nan`:
			return bigrat.NaN(), nil
		case `inf`, `infinity`:
			return bigrat.Inf(1), nil
		}
		fn, ok := functions[name]
		if !ok {
			return bigrat.NaN(), p.syntaxError(t, `unknown identifier `+t.Text)
		}
		if l := p.next(); l.Kind != TokenLParen {
			return bigrat.NaN(), p.syntaxError(l, `expected ( after `+t.Text)
		}
		arg, err := p.parseExpr()
		if err != nil {
			return arg, err
		}
		if r := p.next(); r.Kind != TokenRParen {
			return bigrat.NaN(), p.syntaxError(r, `expected ) but found `+describe(r))
		}
		v, err := fn(p, arg)
		if err != nil {
			return v, &Error{Pos: t.Pos, Msg: t.Text + ` failed`, Err: err}
		}
		return v, nil

	default:
		return bigrat.NaN(), p.syntaxError(t, `unexpected `+describe(t))
	}
}

func (p *parser) sqrt(x bigrat.Rat) (bigrat.Rat, error) {
	v, converged, err := x.Sqrt(p.eval.sqrtPrecision(), p.eval.sqrtIterations())
	if err != nil {
		return v, err
	}
	if !converged {
		p.approximate = true
	}
	return v, nil
}

func describe(t Token) string {
	switch t.Kind {
	case TokenEOF:
		return `end of input`
	case TokenInvalid:
		return `character ` + fmt.Sprintf(`%q`, t.Text)
	default:
		return fmt.Sprintf(`%q`, t.Text)
	}
}
