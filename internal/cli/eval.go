package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

func (a *app) evalCommand() *cobra.Command {
	return &cobra.Command{
		Use:   `eval EXPR...`,
		Short: `Evaluate expressions`,
		Long: `Evaluate each expression, printing one result per line.

Expressions support + - * / % and ^ (integer exponents), parentheses,
the constants nan and inf, and the functions abs, ceil, floor, inv,
round, sqrt, and trunc. Numbers may be written as decimals, with an
optional repeating group, e.g. 0.1(6).

Use -- before expressions starting with a minus sign.`,
		Example: `  bigrat eval '1/3 + 1/6'
  bigrat --output decimal eval '22/7'
  bigrat eval -- '-2^2'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, arg := range args {
				if err := a.eval(cmd.OutOrStdout(), arg); err != nil {
					return err
				}
			}
			return nil
		},
	}
}

// eval evaluates and prints a single expression.
func (a *app) eval(w io.Writer, input string) error {
	a.logger.Debug().Str(`expr`, input).Log(`evaluating`)

	result, err := a.evaluator().Eval(input)
	if err != nil {
		a.logger.Err().Err(err).Str(`expr`, input).Log(`evaluation failed`)
		return err
	}

	if result.Approximate {
		a.logger.Warning().
			Str(`expr`, input).
			Int(`precision`, a.config.Sqrt.Precision).
			Int(`iterations`, a.config.Sqrt.Iterations).
			Log(`square root did not converge`)
	}

	out := a.config.Format(result.Value)
	a.logger.Debug().Str(`expr`, input).Str(`result`, out).Log(`evaluated`)

	_, err = fmt.Fprintln(w, out)
	return err
}
