package expr

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestScan(t *testing.T) {
	for _, tt := range [...]struct {
		in   string
		want []Token
	}{
		{``, []Token{{Kind: TokenEOF}}},
		{
			` 1 + 0.1(6)*sqrt(2)`,
			[]Token{
				{TokenNumber, `1`, 1},
				{TokenOperator, `+`, 3},
				{TokenNumber, `0.1(6)`, 5},
				{TokenOperator, `*`, 11},
				{TokenIdent, `sqrt`, 12},
				{TokenLParen, `(`, 16},
				{TokenNumber, `2`, 17},
				{TokenRParen, `)`, 18},
				{TokenEOF, ``, 19},
			},
		},
		{
			`.5^-2%x_1`,
			[]Token{
				{TokenNumber, `.5`, 0},
				{TokenOperator, `^`, 2},
				{TokenOperator, `-`, 3},
				{TokenNumber, `2`, 4},
				{TokenOperator, `%`, 5},
				{TokenIdent, `x_1`, 6},
				{TokenEOF, ``, 9},
			},
		},
		{
			// incomplete repeating groups are not part of the number
			`1.(2`,
			[]Token{
				{TokenNumber, `1.`, 0},
				{TokenLParen, `(`, 2},
				{TokenNumber, `2`, 3},
				{TokenEOF, ``, 4},
			},
		},
		{
			`.(3) . $`,
			[]Token{
				{TokenNumber, `.(3)`, 0},
				{TokenInvalid, `.`, 5},
				{TokenInvalid, `$`, 7},
				{TokenEOF, ``, 8},
			},
		},
	} {
		if diff := cmp.Diff(tt.want, Scan(tt.in)); diff != `` {
			t.Errorf("%q: unexpected tokens (-want +got):\n%s", tt.in, diff)
		}
	}
}

func TestTokenKind_String(t *testing.T) {
	if s := TokenNumber.String(); s != `Number` {
		t.Error(s)
	}
	if s := TokenKind(99).String(); s != `TokenKind(99)` {
		t.Error(s)
	}
}
