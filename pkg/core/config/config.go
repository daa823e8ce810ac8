package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/pinkmath/foundation/core/error"
	"github.com/msto63/pinkmath/foundation/core/errors"
	"github.com/msto63/pinkmath/foundation/core/log"
	"github.com/msto63/pinkmath/foundation/utils/mathx"
)

// Environment variables read by LoadFromEnv and applyEnv
const (
	EnvConfig     = "PINK_CONFIG"
	EnvLogLevel   = "PINK_LOG_LEVEL"
	EnvLogFormat  = "PINK_LOG_FORMAT"
	EnvChain      = "PINK_CHAIN"
	EnvPrecision  = "PINK_PRECISION"
	EnvLoanMethod = "PINK_LOAN_METHOD"
	EnvLoanMonths = "PINK_LOAN_MONTHS"
	EnvOutput     = "PINK_OUTPUT"
	EnvNoColor    = "PINK_NO_COLOR"
)

// Output formats
const (
	OutputTable = "table"
	OutputJSON  = "json"
)

const maxPrecision = 20

// Config holds the complete application configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Engine  EngineConfig  `toml:"engine" yaml:"engine"`
	Loan    LoanConfig    `toml:"loan" yaml:"loan"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// EngineConfig holds calculator engine settings.
// Precision 0 prints results in shortest form.
type EngineConfig struct {
	Chain     bool `toml:"chain" yaml:"chain"`
	Precision int  `toml:"precision" yaml:"precision"`
}

// LoanConfig holds defaults for the loan command
type LoanConfig struct {
	Method string `toml:"method" yaml:"method"`
	Months int    `toml:"months" yaml:"months"`
}

// OutputConfig holds rendering settings
type OutputConfig struct {
	Format  string `toml:"format" yaml:"format"`
	NoColor bool   `toml:"no_color" yaml:"no_color"`
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file, chosen by extension.
// Environment overrides are applied after the file is decoded.
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(errors.ModuleConfig, "load", path)
		}
		return nil, errors.ModuleError(errors.ModuleConfig, "load", err, map[string]interface{}{"path": path})
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	default:
		return nil, errors.InvalidFormat(errors.ModuleConfig, path, ".toml, .yaml or .yml")
	}
	if err != nil {
		return nil, errors.NewErrorBuilder(errors.ModuleConfig).
			Operation("parse").
			Message("failed to parse config").
			Cause(err).
			Detail("path", path).
			Build()
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv reads .env files, then loads the file named by PINK_CONFIG or
// the first default location that exists. Without any file the defaults
// plus environment overrides are returned.
func LoadFromEnv() (*Config, error) {
	if err := LoadDotEnv(".env"); err != nil {
		return nil, err
	}

	path := os.Getenv(EnvConfig)
	if path == "" {
		defaultPaths := []string{
			"./pink.toml",
			"./pink.yaml",
			filepath.Join(os.Getenv("HOME"), ".config/pink/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path != "" {
		return Load(path)
	}

	cfg := &Config{}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadDotEnv loads the given .env files into the process environment.
// Missing files are skipped and variables already set are kept.
func LoadDotEnv(paths ...string) error {
	for _, p := range paths {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			return errors.NewErrorBuilder(errors.ModuleConfig).
				Operation("env").
				Message("failed to read env file").
				Cause(err).
				Detail("path", p).
				Build()
		}
	}
	return nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.Name == "" {
		c.General.Name = "pink"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}

	if c.Loan.Method == "" {
		c.Loan.Method = string(mathx.EqualInstalment)
	}
	if c.Loan.Months == 0 {
		c.Loan.Months = 12
	}

	if c.Output.Format == "" {
		c.Output.Format = OutputTable
	}
}

// applyEnv overrides file values with PINK_* environment variables
func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.General.LogLevel = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.General.LogFormat = v
	}
	if v := os.Getenv(EnvLoanMethod); v != "" {
		c.Loan.Method = v
	}
	if v := os.Getenv(EnvOutput); v != "" {
		c.Output.Format = v
	}

	if err := envBool(EnvChain, &c.Engine.Chain); err != nil {
		return err
	}
	if err := envBool(EnvNoColor, &c.Output.NoColor); err != nil {
		return err
	}
	if err := envInt(EnvPrecision, &c.Engine.Precision); err != nil {
		return err
	}
	return envInt(EnvLoanMonths, &c.Loan.Months)
}

func envBool(key string, dst *bool) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return envError(key, v, err)
	}
	*dst = b
	return nil
}

func envInt(key string, dst *int) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return envError(key, v, err)
	}
	*dst = n
	return nil
}

func envError(key, value string, cause error) error {
	return errors.NewErrorBuilder(errors.ModuleConfig).
		Operation("env").
		Messagef("invalid value for %s", key).
		Cause(cause).
		Detail("variable", key).
		Detail("value", value).
		Build()
}

// Validate checks every section and returns the first problem found
func (c *Config) Validate() error {
	if _, err := log.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err)
	}
	if _, err := log.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, err)
	}
	if err := errors.ValidateRange(errors.ModuleConfig, "engine.precision", c.Engine.Precision, 0, maxPrecision); err != nil {
		return err
	}
	if _, err := mathx.ParseLoanMethod(c.Loan.Method); err != nil {
		return invalid("loan.method", c.Loan.Method, err)
	}
	if err := errors.ValidateRange(errors.ModuleConfig, "loan.months", c.Loan.Months, 1, mathx.MaxLoanMonths); err != nil {
		return err
	}
	switch c.Output.Format {
	case OutputTable, OutputJSON:
	default:
		return errors.ValidationFailed(errors.ModuleConfig, "output.format", c.Output.Format, "must be table or json")
	}
	return nil
}

func invalid(field string, value interface{}, cause error) error {
	return errors.NewErrorBuilder(errors.ModuleConfig).
		Operation("validate").
		Messagef("invalid value for %s", field).
		Cause(cause).
		Code(mdwerror.CodeInvalidConfig).
		Detail("field", field).
		Detail("value", value).
		Build()
}

// LoanMethod returns the configured default repayment method
func (c *Config) LoanMethod() mathx.LoanMethod {
	m, err := mathx.ParseLoanMethod(c.Loan.Method)
	if err != nil {
		return mathx.EqualInstalment
	}
	return m
}
