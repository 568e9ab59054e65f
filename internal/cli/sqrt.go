package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var errNotPerfectSquare = errors.New(`not a perfect square`)

func (a *app) sqrtCommand() *cobra.Command {
	var exact bool

	cmd := &cobra.Command{
		Use:   `sqrt VALUE`,
		Short: `Calculate a square root`,
		Long: `Calculate the square root of a non-negative value.

Roots that are not rational are approximated to --sqrt-precision decimal
places, unless --exact is set, in which case they are an error.`,
		Example: `  bigrat sqrt 9/4
  bigrat --output decimal --digits 10 sqrt 2`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			x, err := a.config.BigratSymbols().Parse(args[0])
			if err != nil {
				return err
			}

			if exact {
				root, ok := x.SqrtExact()
				if !ok {
					return fmt.Errorf("sqrt %s: %w", args[0], errNotPerfectSquare)
				}
				_, err = fmt.Fprintln(cmd.OutOrStdout(), a.config.Format(root))
				return err
			}

			root, converged, err := x.Sqrt(a.config.Sqrt.Precision, a.config.Sqrt.Iterations)
			if err != nil {
				a.logger.Err().Err(err).Str(`value`, args[0]).Log(`sqrt failed`)
				return err
			}
			if !converged {
				a.logger.Warning().
					Str(`value`, args[0]).
					Int(`precision`, a.config.Sqrt.Precision).
					Int(`iterations`, a.config.Sqrt.Iterations).
					Log(`square root did not converge`)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), a.config.Format(root))
			return err
		},
	}

	cmd.Flags().BoolVar(&exact, `exact`, false, `fail unless the root is rational`)

	return cmd
}
