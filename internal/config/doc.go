// Package config loads roomroster's runtime configuration.
//
// # Configuration Sources
//
// Configuration is loaded from the following sources in order of precedence:
//
//  1. Environment variables (highest priority)
//  2. YAML configuration file (--config, or roomroster.yaml / configs/roomroster.yaml)
//  3. Default values (lowest priority)
//
// # Environment Variables
//
// All environment variables follow the pattern ROOMROSTER_* for namespacing:
//
//	ROOMROSTER_LOGGING_LEVEL=debug
//	ROOMROSTER_LOGGING_OUTPUT=file
//	ROOMROSTER_LOGGING_FILE_PATH=/var/log/roomroster.log
//	ROOMROSTER_EXPORT_FORMAT=xml
//	ROOMROSTER_TRACING_EXPORTER=console
//
// # Validation
//
// Unknown log levels and outputs are normalised to the defaults; stdout is
// never accepted as a log output because it carries the command's result.
// An unknown export format or trace exporter is a CONFIG error.
//
// # Usage
//
//	cfg, err := config.Load(configFile)
//	if err != nil {
//	    return err
//	}
package config
