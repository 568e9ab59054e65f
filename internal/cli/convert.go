package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joeycumines/go-bigrat"
	"github.com/spf13/cobra"
	"golang.org/x/exp/slices"
)

type converter func(x bigrat.Rat, policy bigrat.Policy) (string, error)

var converters = map[string]converter{
	`int`:     convertTo[int],
	`int8`:    convertTo[int8],
	`int16`:   convertTo[int16],
	`int32`:   convertTo[int32],
	`int64`:   convertTo[int64],
	`uint`:    convertTo[uint],
	`uint8`:   convertTo[uint8],
	`uint16`:  convertTo[uint16],
	`uint32`:  convertTo[uint32],
	`uint64`:  convertTo[uint64],
	`float32`: convertTo[float32],
	`float64`: convertTo[float64],
}

var policies = [...]bigrat.Policy{
	bigrat.Checked,
	bigrat.Saturating,
	bigrat.Truncating,
}

func (a *app) convertCommand() *cobra.Command {
	var (
		to     string
		policy string
	)

	cmd := &cobra.Command{
		Use:   `convert VALUE`,
		Short: `Convert a value to a fixed size Go number type`,
		Long: `Convert a value to a fixed size Go number type, printing the result.

The policy determines the handling of values that the type cannot
represent: checked fails, saturating clamps to the nearest extreme,
and truncating truncates toward zero then wraps (integers only).`,
		Example: `  bigrat convert 1/3 --to float32
  bigrat convert 300 --to uint8 --policy truncating`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			convert, ok := converters[to]
			if !ok {
				return fmt.Errorf("invalid type %q (supported: %s)", to, strings.Join(convertTypes(), `, `))
			}

			p, err := parsePolicy(policy)
			if err != nil {
				return err
			}

			x, err := a.config.BigratSymbols().Parse(args[0])
			if err != nil {
				return err
			}

			out, err := convert(x, p)
			if err != nil {
				a.logger.Err().
					Err(err).
					Str(`value`, args[0]).
					Str(`type`, to).
					Str(`policy`, p.String()).
					Log(`conversion failed`)
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}

	cmd.Flags().StringVar(&to, `to`, `float64`, `target type (`+strings.Join(convertTypes(), `, `)+`)`)
	cmd.Flags().StringVar(&policy, `policy`, `checked`, `conversion policy (checked, saturating, truncating)`)

	return cmd
}

func convertTo[T bigrat.Number](x bigrat.Rat, policy bigrat.Policy) (string, error) {
	v, err := bigrat.Convert[T](x, policy)
	if err != nil {
		return ``, err
	}
	switch v := any(v).(type) {
	case float32:
		return strconv.FormatFloat(float64(v), 'g', -1, 32), nil
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64), nil
	default:
		return fmt.Sprint(v), nil
	}
}

func convertTypes() []string {
	names := make([]string, 0, len(converters))
	for name := range converters {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func parsePolicy(s string) (bigrat.Policy, error) {
	for _, p := range policies {
		if strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("invalid policy %q (supported: checked, saturating, truncating)", s)
}
