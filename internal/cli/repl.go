package cli

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/joeycumines/go-bigrat/internal/expr"
	prompt "github.com/joeycumines/go-prompt"
	pstrings "github.com/joeycumines/go-prompt/strings"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

func (a *app) replCommand() *cobra.Command {
	return &cobra.Command{
		Use:   `repl`,
		Short: `Start an interactive session`,
		Long: `Start an interactive session, evaluating each line as an expression.
Type help for a list of functions, or exit to leave.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "bigrat %s (type help for help, exit to leave)\n", Version)
			prompt.New(
				func(in string) { a.execute(w, in) },
				prompt.WithTitle(`bigrat`),
				prompt.WithPrefix(`> `),
				prompt.WithPrefixTextColor(prompt.Blue),
				prompt.WithCompleter(complete),
				prompt.WithLexer(prompt.NewEagerLexer(lex)),
				prompt.WithExitChecker(isExit),
			).Run()
			return nil
		},
	}
}

// execute handles a single line of input, errors are printed rather than
// ending the session
func (a *app) execute(w io.Writer, in string) {
	in = strings.TrimSpace(in)
	switch {
	case in == ``:
	case isExitCommand(in):
	case in == `help`:
		fmt.Fprintf(w, "functions: %s\nconstants: %s\n",
			strings.Join(expr.Functions(), `, `),
			strings.Join(expr.Constants(), `, `))
	default:
		if err := a.eval(w, in); err != nil {
			fmt.Fprintf(w, "error: %v\n", err)
		}
	}
}

func isExit(in string, breakline bool) bool {
	return breakline && isExitCommand(strings.TrimSpace(in))
}

func isExitCommand(in string) bool {
	return in == `exit` || in == `quit`
}

func complete(in prompt.Document) ([]prompt.Suggest, pstrings.RuneNumber, pstrings.RuneNumber) {
	endIndex := in.CurrentRuneIndex()
	w := identSuffix(in.GetWordBeforeCursor())
	startIndex := endIndex - pstrings.RuneCountInString(w)
	return suggest(w), startIndex, endIndex
}

// suggest returns the completions for the (possibly empty) identifier
// prefix w
func suggest(w string) []prompt.Suggest {
	if w == `` {
		return nil
	}
	var s []prompt.Suggest
	for _, name := range expr.Functions() {
		s = append(s, prompt.Suggest{Text: name + `(`, Description: `function`})
	}
	for _, name := range expr.Constants() {
		s = append(s, prompt.Suggest{Text: name, Description: `constant`})
	}
	s = append(s,
		prompt.Suggest{Text: `help`, Description: `list functions and constants`},
		prompt.Suggest{Text: `exit`, Description: `end the session`},
		prompt.Suggest{Text: `quit`, Description: `end the session`},
	)
	return prompt.FilterHasPrefix(s, w, true)
}

// identSuffix returns the trailing identifier characters of s, e.g. `sq`
// for `1+sq`
func identSuffix(s string) string {
	i := strings.LastIndexFunc(s, func(r rune) bool {
		return !(r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || r == '_')
	})
	if i < 0 {
		return s
	}
	_, n := utf8.DecodeRuneInString(s[i:])
	return s[i+n:]
}

// lex colors the input, per the expression tokens
func lex(line string) []prompt.Token {
	var (
		tokens []prompt.Token
		end    int
	)
	for _, t := range expr.Scan(line) {
		// invalid tokens are single bytes, but must cover whole runes
		if t.Kind == expr.TokenEOF || t.Pos < end {
			continue
		}
		n := len(t.Text)
		if t.Kind == expr.TokenInvalid {
			_, n = utf8.DecodeRuneInString(line[t.Pos:])
		}
		end = t.Pos + n
		tokens = append(tokens, prompt.NewSimpleToken(
			pstrings.ByteNumber(t.Pos),
			pstrings.ByteNumber(end-1),
			prompt.SimpleTokenWithColor(tokenColor(t)),
		))
	}
	return tokens
}

func tokenColor(t expr.Token) prompt.Color {
	switch t.Kind {
	case expr.TokenNumber:
		return prompt.Green
	case expr.TokenIdent:
		if slices.Contains(expr.Functions(), strings.ToLower(t.Text)) {
			return prompt.Turquoise
		}
		return prompt.Yellow
	case expr.TokenOperator, expr.TokenLParen, expr.TokenRParen:
		return prompt.White
	default:
		return prompt.Red
	}
}
