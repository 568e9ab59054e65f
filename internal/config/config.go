// Package config loads the settings of the bigrat command, from defaults,
// an optional config file, environment variables (BIGRAT_ prefix), and
// command line flags, in increasing order of priority.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/joeycumines/go-bigrat"
	"github.com/joeycumines/logiface"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix is the prefix of the environment variables, e.g.
// BIGRAT_SQRT_PRECISION sets `sqrt.precision`.
const EnvPrefix = `BIGRAT`

// Output formats.
const (
	OutputFraction = `fraction`
	OutputDecimal  = `decimal`
)

// Keys.
const (
	KeyOutput                  = `output`
	KeyDigits                  = `digits`
	KeyRepeating               = `repeating`
	KeySqrtPrecision           = `sqrt.precision`
	KeySqrtIterations          = `sqrt.iterations`
	KeyLogLevel                = `log-level`
	KeySymbolsNaN              = `symbols.nan`
	KeySymbolsInfinity         = `symbols.infinity`
	KeySymbolsNegativeInfinity = `symbols.negative-infinity`
)

type (
	// Config models the settings of the bigrat command.
	Config struct {
		// Output is either OutputFraction or OutputDecimal.
		Output string `mapstructure:"output"`
		// Digits is the maximum number of decimal places, for
		// OutputDecimal, or negative for unlimited.
		Digits int `mapstructure:"digits"`
		// Repeating indicates that repeating groups should be kept, in
		// parentheses, for OutputDecimal.
		Repeating bool          `mapstructure:"repeating"`
		Sqrt      SqrtConfig    `mapstructure:"sqrt"`
		LogLevel  string        `mapstructure:"log-level"`
		Symbols   SymbolsConfig `mapstructure:"symbols"`
	}

	SqrtConfig struct {
		Precision  int `mapstructure:"precision"`
		Iterations int `mapstructure:"iterations"`
	}

	// SymbolsConfig overrides the corresponding bigrat.InvariantSymbols.
	SymbolsConfig struct {
		NaN              string `mapstructure:"nan"`
		Infinity         string `mapstructure:"infinity"`
		NegativeInfinity string `mapstructure:"negative-infinity"`
	}
)

// New returns a viper instance with the defaults set, and environment
// variables enabled.
func New() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(`.`, `_`, `-`, `_`))
	v.AutomaticEnv()
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyOutput, OutputFraction)
	v.SetDefault(KeyDigits, -1) // unlimited
	v.SetDefault(KeyRepeating, true)
	v.SetDefault(KeySqrtPrecision, 20)
	v.SetDefault(KeySqrtIterations, 64)
	v.SetDefault(KeyLogLevel, logiface.LevelWarning.String())
	v.SetDefault(KeySymbolsNaN, bigrat.InvariantSymbols.NaN)
	v.SetDefault(KeySymbolsInfinity, bigrat.InvariantSymbols.PositiveInfinity)
	v.SetDefault(KeySymbolsNegativeInfinity, bigrat.InvariantSymbols.NegativeInfinity)
}

// BindFlags binds any flags named after keys, e.g. `--digits`. Nested
// keys use a dash, e.g. `--sqrt-precision`.
func BindFlags(v *viper.Viper, flags *pflag.FlagSet) error {
	for _, key := range [...]string{
		KeyOutput,
		KeyDigits,
		KeyRepeating,
		KeySqrtPrecision,
		KeySqrtIterations,
		KeyLogLevel,
	} {
		if f := flags.Lookup(strings.ReplaceAll(key, `.`, `-`)); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("failed to bind flag %s: %w", f.Name, err)
			}
		}
	}
	return nil
}

// Load reads the config file, if configFile is not empty, then unmarshals
// and validates the configuration.
func Load(v *viper.Viper, configFile string) (*Config, error) {
	if configFile != `` {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

// Validate checks the configuration for errors.
func (x *Config) Validate() error {
	switch x.Output {
	case OutputFraction, OutputDecimal:
	default:
		return fmt.Errorf("invalid %s: %q (supported: %s, %s)", KeyOutput, x.Output, OutputFraction, OutputDecimal)
	}
	if x.Sqrt.Precision <= 0 {
		return fmt.Errorf("invalid %s: %d", KeySqrtPrecision, x.Sqrt.Precision)
	}
	if x.Sqrt.Iterations <= 0 {
		return fmt.Errorf("invalid %s: %d", KeySqrtIterations, x.Sqrt.Iterations)
	}
	if _, err := x.Level(); err != nil {
		return err
	}
	if err := x.BigratSymbols().Validate(); err != nil {
		return err
	}
	return nil
}

// Level returns the parsed LogLevel, which must be one of the names
// returned by [logiface.Level.String], e.g. `err` or `debug`.
func (x *Config) Level() (logiface.Level, error) {
	for level := logiface.LevelDisabled; level <= logiface.LevelTrace; level++ {
		if strings.EqualFold(x.LogLevel, level.String()) {
			return level, nil
		}
	}
	return logiface.LevelDisabled, errors.New(`invalid ` + KeyLogLevel + `: ` + x.LogLevel)
}

// BigratSymbols returns bigrat.InvariantSymbols, with any overrides.
func (x *Config) BigratSymbols() bigrat.Symbols {
	s := bigrat.InvariantSymbols
	if x.Symbols.NaN != `` {
		s.NaN = x.Symbols.NaN
	}
	if x.Symbols.Infinity != `` {
		s.PositiveInfinity = x.Symbols.Infinity
	}
	if x.Symbols.NegativeInfinity != `` {
		s.NegativeInfinity = x.Symbols.NegativeInfinity
	}
	return s
}

// Format formats a value per the configured output.
func (x *Config) Format(v bigrat.Rat) string {
	s := x.BigratSymbols()
	if x.Output == OutputDecimal {
		return s.DecimalString(v, x.Digits, x.Repeating)
	}
	return s.FractionString(v)
}
