// Init command: create the config directory and a default config.yaml.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// configFile holds the structure written to config.yaml.
type configFile struct {
	Conditions any `yaml:"conditions"`
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize tablekeep configuration",
	Long:  "Create the configuration directory and a default config.yaml.",
	Args:  cobra.NoArgs,
	RunE:  runInit,
}

func runInit(cmd *cobra.Command, args []string) error {
	configDir := resolveConfigDir()

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	path := filepath.Join(configDir, configFileName+"."+configFileType)
	if err := writeConfigIfMissing(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Tablekeep initialized successfully")
	return nil
}

// writeConfigIfMissing creates config.yaml with default values if the file
// does not exist. If it already exists, the function returns nil (idempotent).
func writeConfigIfMissing(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	data, err := yaml.Marshal(&configFile{Conditions: true})
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
