/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: utils.go
Description: Shared utilities for the mentor commands. Provides configuration
loading, engine setup and description loading used by every command.
*/

package commands

import (
	"fmt"
	"strings"

	"github.com/kleascm/mentor/pkg/core"
	"github.com/kleascm/mentor/pkg/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// LoadConfig loads configuration from files and environment
func LoadConfig() error {
	// Set config file if specified
	if configFile := viper.GetString("config"); configFile != "" {
		viper.SetConfigFile(configFile)
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	// Set environment variable prefix
	viper.SetEnvPrefix("MENTOR")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	return nil
}

// SetupEngine builds an engine from the loaded configuration. Log output goes to
// the command's error stream.
func SetupEngine(cmd *cobra.Command) (*core.Engine, error) {
	if err := LoadConfig(); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	config, err := core.ConfigFromViper(viper.GetViper())
	if err != nil {
		return nil, err
	}
	config.Logging.Output = cmd.ErrOrStderr()
	return core.NewEngine(config, nil)
}

// DeclaredKind returns the --type override, or the zero Kind when none is given
func DeclaredKind() (model.Kind, error) {
	name := viper.GetString("type")
	if name == "" {
		return 0, nil
	}
	return model.ParseKind(name)
}

// loadWithType loads a description honouring --type
func loadWithType(engine *core.Engine, path string) (*model.Model, error) {
	kind, err := DeclaredKind()
	if err != nil {
		return nil, err
	}
	return engine.Load(path, kind)
}

// openModel sets up an engine and loads the command's description file
func openModel(cmd *cobra.Command, path string) (*core.Engine, *model.Model, error) {
	engine, err := SetupEngine(cmd)
	if err != nil {
		return nil, nil, err
	}
	m, err := loadWithType(engine, path)
	if err != nil {
		engine.Close()
		return nil, nil, err
	}
	return engine, m, nil
}

// inputWord maps the command-line spelling ε of the empty word to ""
func inputWord(arg string) string {
	if arg == "ε" {
		return ""
	}
	return arg
}
