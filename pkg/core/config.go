/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: config.go
Description: Engine configuration from viper. Keys that are not set keep their
defaults so that config files, MENTOR_* variables and flags only override what
they name.
*/

package core

import (
	"fmt"

	"github.com/kleascm/mentor/pkg/logging"
	"github.com/spf13/viper"
)

// Viper keys read by ConfigFromViper
const (
	KeyMaxSteps          = "tm.max_steps"
	KeyMaxConfigurations = "pda.max_configurations"
	KeyMaxForms          = "generate.max_forms"
	KeyPDFTimeout        = "render.pdf_timeout"
	KeyLogLevel          = "log_level"
	KeyLogFormat         = "log_format"
	KeyLogDir            = "log_dir"
	KeyLogMaxFiles       = "log_max_files"
)

// ConfigFromViper builds and validates a Config from v
func ConfigFromViper(v *viper.Viper) (*Config, error) {
	config := DefaultConfig()
	if v.IsSet(KeyMaxSteps) {
		config.MaxSteps = v.GetInt(KeyMaxSteps)
	}
	if v.IsSet(KeyMaxConfigurations) {
		config.MaxConfigurations = v.GetInt(KeyMaxConfigurations)
	}
	if v.IsSet(KeyMaxForms) {
		config.MaxForms = v.GetInt(KeyMaxForms)
	}
	if v.IsSet(KeyPDFTimeout) {
		config.PDFTimeout = v.GetDuration(KeyPDFTimeout)
	}

	if v.IsSet(KeyLogLevel) {
		config.Logging.Level = normalizeLevel(v.GetString(KeyLogLevel))
	}
	if v.IsSet(KeyLogFormat) {
		config.Logging.Format = logging.LogFormat(v.GetString(KeyLogFormat))
	}
	if v.IsSet(KeyLogDir) {
		config.Logging.OutputDir = v.GetString(KeyLogDir)
	}
	if v.IsSet(KeyLogMaxFiles) {
		config.Logging.MaxFiles = v.GetInt(KeyLogMaxFiles)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

func normalizeLevel(level string) logging.LogLevel {
	if level == "warn" {
		return logging.LogLevelWarning
	}
	return logging.LogLevel(level)
}
