// Package expr implements a small expression language over bigrat.Rat
// values, for the bigrat command.
//
// Literals are any integer, decimal, or repeating decimal accepted by
// bigrat.Parse, e.g. `0.1(6)`. Fractions are written using the division
// operator. The operators are, from lowest to highest precedence,
// `+ -`, `* / %`, unary `+ -`, and `^`, which is right associative and
// requires an integer exponent. The constants are `nan` and `inf`, and
// the functions are listed by Functions.
package expr

import (
	"fmt"
)

// TokenKind classifies a Token.
type TokenKind uint8

const (
	TokenEOF TokenKind = iota
	TokenNumber
	TokenIdent
	TokenOperator
	TokenLParen
	TokenRParen
	TokenInvalid
)

// Token is a lexical element of an expression. Pos is the byte offset of
// Text within the input.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return `EOF`
	case TokenNumber:
		return `Number`
	case TokenIdent:
		return `Ident`
	case TokenOperator:
		return `Operator`
	case TokenLParen:
		return `LParen`
	case TokenRParen:
		return `RParen`
	case TokenInvalid:
		return `Invalid`
	default:
		return fmt.Sprintf(`TokenKind(%d)`, uint8(k))
	}
}

// Scan splits s into tokens, skipping whitespace. It never fails: input
// that is not a valid token is returned as a TokenInvalid, so that partial
// input may be highlighted. The last token is always TokenEOF.
func Scan(s string) []Token {
	var tokens []Token
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isSpace(c):
			i++
			continue
		case isDigit(c) || c == '.':
			n := scanNumber(s[i:])
			if n == 0 {
				tokens = append(tokens, Token{Kind: TokenInvalid, Text: s[i : i+1], Pos: i})
				i++
				continue
			}
			tokens = append(tokens, Token{Kind: TokenNumber, Text: s[i : i+n], Pos: i})
			i += n
			continue
		case isLetter(c):
			j := i + 1
			for j < len(s) && (isLetter(s[j]) || isDigit(s[j])) {
				j++
			}
			tokens = append(tokens, Token{Kind: TokenIdent, Text: s[i:j], Pos: i})
			i = j
			continue
		}

		kind := TokenInvalid
		switch c {
		case '+', '-', '*', '/', '%', '^':
			kind = TokenOperator
		case '(':
			kind = TokenLParen
		case ')':
			kind = TokenRParen
		}
		tokens = append(tokens, Token{Kind: kind, Text: s[i : i+1], Pos: i})
		i++
	}
	return append(tokens, Token{Kind: TokenEOF, Pos: len(s)})
}

// scanNumber returns the length of the number literal at the start of s,
// or 0 if there is none
func scanNumber(s string) int {
	i := skipDigits(s, 0)
	digits := i > 0
	if i < len(s) && s[i] == '.' {
		j := skipDigits(s, i+1)
		digits = digits || j > i+1
		i = j
		// a repeating group is only consumed if it is complete
		if i < len(s) && s[i] == '(' {
			if j := skipDigits(s, i+1); j > i+1 && j < len(s) && s[j] == ')' {
				digits = true
				i = j + 1
			}
		}
	}
	if !digits {
		return 0
	}
	return i
}

func skipDigits(s string, i int) int {
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	return i
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isLetter(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c == '_' }

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
