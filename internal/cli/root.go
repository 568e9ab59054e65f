// Package cli implements the bigrat command.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/joeycumines/go-bigrat/internal/config"
	"github.com/joeycumines/go-bigrat/internal/expr"
	"github.com/joeycumines/logiface"
	"github.com/joeycumines/stumpy"
	"github.com/spf13/cobra"
)

// Version is the version of the bigrat command.
var Version = `0.1.0-dev`

type app struct {
	configFile string
	config     *config.Config
	logger     *logiface.Logger[logiface.Event]
}

// Execute runs the bigrat command, exiting the process on failure.
// This is called by main.main().
func Execute() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// NewRootCommand returns the bigrat command, with all subcommands.
func NewRootCommand() *cobra.Command {
	var a app

	cmd := &cobra.Command{
		Use:   `bigrat`,
		Short: `Arbitrary-precision rational arithmetic`,
		Long: `bigrat evaluates expressions over exact rational numbers, including
NaN and the infinities, and prints the results as fractions or as
decimals with repeating groups, e.g. 0.1(6) for 1/6.`,
		Version:           Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.init,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.configFile, `config`, ``, `configuration file path`)
	flags.StringP(`output`, `o`, config.OutputFraction, `output format (`+config.OutputFraction+`, `+config.OutputDecimal+`)`)
	flags.Int(`digits`, -1, `maximum decimal places, negative for unlimited`)
	flags.Bool(`repeating`, true, `show repeating decimal groups in parentheses`)
	flags.Int(`sqrt-precision`, 20, `decimal places of square root approximations`)
	flags.Int(`sqrt-iterations`, 64, `maximum iterations of square root approximations`)
	flags.String(`log-level`, logiface.LevelWarning.String(), `log level (e.g. err, warning, info, debug)`)

	cmd.AddCommand(
		a.evalCommand(),
		a.replCommand(),
		a.convertCommand(),
		a.sqrtCommand(),
		versionCommand(),
	)

	return cmd
}

func (a *app) init(cmd *cobra.Command, _ []string) error {
	v := config.New()
	if err := config.BindFlags(v, cmd.Flags()); err != nil {
		return err
	}

	c, err := config.Load(v, a.configFile)
	if err != nil {
		return err
	}

	level, err := c.Level()
	if err != nil {
		return err
	}

	a.config = c
	a.logger = newLogger(cmd.ErrOrStderr(), level)

	a.logger.Debug().
		Str(`output`, c.Output).
		Int(`digits`, c.Digits).
		Log(`loaded config`)

	return nil
}

func newLogger(w io.Writer, level logiface.Level) *logiface.Logger[logiface.Event] {
	return stumpy.L.New(
		stumpy.L.WithStumpy(stumpy.WithWriter(w)),
		stumpy.L.WithLevel(level),
	).Logger()
}

func (a *app) evaluator() *expr.Evaluator {
	return &expr.Evaluator{
		SqrtPrecision:  a.config.Sqrt.Precision,
		SqrtIterations: a.config.Sqrt.Iterations,
	}
}
