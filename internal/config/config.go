package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	apperrors "roomroster/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
	Export  ExportConfig  `yaml:"export" envconfig:"EXPORT"`
	Tracing TracingConfig `yaml:"tracing" envconfig:"TRACING"`
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level    string `yaml:"level" envconfig:"LEVEL"`
	Output   string `yaml:"output" envconfig:"OUTPUT"`
	FilePath string `yaml:"file_path" envconfig:"FILE_PATH"`
}

// ExportConfig contains output defaults
type ExportConfig struct {
	Format string `yaml:"format" envconfig:"FORMAT"`
}

// TracingConfig contains OpenTelemetry tracing configuration
type TracingConfig struct {
	Exporter    string  `yaml:"exporter" envconfig:"EXPORTER"`
	ServiceName string  `yaml:"service_name" envconfig:"SERVICE_NAME"`
	SampleRatio float64 `yaml:"sample_ratio" envconfig:"SAMPLE_RATIO"`
}

// Load builds the configuration from defaults, then the YAML file at
// configFile (or the first file found in the usual locations when empty),
// then ROOMROSTER_* environment variables. Later sources win.
func Load(configFile string) (*Config, error) {
	cfg := Default()

	if configFile == "" {
		configFile = getConfigFilePath()
	}
	if configFile != "" {
		if err := loadFromFile(configFile, cfg); err != nil {
			return nil, apperrors.NewConfigError(
				fmt.Sprintf("failed to load config from file %s", configFile), err)
		}
	}

	// Fields without a matching variable are left untouched.
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, apperrors.NewConfigError("failed to load config from env", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadFromFile overlays the YAML file onto cfg
func loadFromFile(filePath string, cfg *Config) error {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// validate validates the configuration
func (c *Config) validate() error {
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		c.Logging.Level = DefaultLogLevel
	}

	c.Logging.Output = strings.ToLower(strings.TrimSpace(c.Logging.Output))
	switch c.Logging.Output {
	case LogOutputStderr, LogOutputFile, LogOutputBoth, LogOutputNone:
	default:
		// Anything else, stdout included, falls back to stderr
		c.Logging.Output = DefaultLogOutput
	}

	if c.Logging.FilePath == "" {
		c.Logging.FilePath = DefaultLogFile
	}

	if !isExportFormat(c.Export.Format) {
		return apperrors.NewConfigError(
			fmt.Sprintf("invalid export format %q: must be one of %s",
				c.Export.Format, strings.Join(ExportFormats, ", ")), nil)
	}

	switch c.Tracing.Exporter {
	case TraceExporterNone, TraceExporterConsole:
	default:
		return apperrors.NewConfigError(
			fmt.Sprintf("unsupported trace exporter: %s", c.Tracing.Exporter), nil)
	}

	if c.Tracing.SampleRatio < 0 || c.Tracing.SampleRatio > 1 {
		return apperrors.NewConfigError(
			fmt.Sprintf("trace sample ratio must be between 0 and 1, got %g", c.Tracing.SampleRatio), nil)
	}
	if c.Tracing.ServiceName == "" {
		c.Tracing.ServiceName = ServiceName
	}

	return nil
}

func isExportFormat(format string) bool {
	for _, f := range ExportFormats {
		if format == f {
			return true
		}
	}
	return false
}

// getConfigFilePath returns the path to the config file
func getConfigFilePath() string {
	// Check for config file in common locations
	locations := []string{
		"roomroster.yaml",
		"configs/roomroster.yaml",
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location
		}
	}

	return "" // No config file found, use env vars only
}

// Default returns default configuration
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:    DefaultLogLevel,
			Output:   DefaultLogOutput,
			FilePath: DefaultLogFile,
		},
		Export: ExportConfig{
			Format: DefaultExportFormat,
		},
		Tracing: TracingConfig{
			Exporter:    DefaultTraceExporter,
			ServiceName: ServiceName,
			SampleRatio: DefaultSampleRatio,
		},
	}
}
