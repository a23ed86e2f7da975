// Config loading for the tablekeep CLI.
package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/mesh-intelligence/tablekeep/pkg/types"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// cfgKeyConditions holds the conditions setting applied by the
	// compose command: true, a key-character string, a list of names, or a
	// map with "conditions" and "attachEvents".
	cfgKeyConditions = "conditions"
)

// loadConfig reads config.yaml from the config directory. A missing file or
// directory is not an error; defaults apply.
func loadConfig(configDir string) (*viper.Viper, error) {
	v := viper.New()
	v.SetDefault(cfgKeyConditions, true)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return v, nil
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	return v, nil
}

// configuredSettings resolves the conditions setting from config.
func configuredSettings() (types.Settings, error) {
	s, err := types.ParseSetting(cfg.Get(cfgKeyConditions))
	if err != nil {
		return types.Settings{}, fmt.Errorf("config %q: %w", cfgKeyConditions, err)
	}
	return s, nil
}
