package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"goveectl/internal/appcfg"
)

func init() {
	configCmd.AddCommand(configPathCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect goveectl configuration",
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the settings and registry file locations",
	RunE: func(cmd *cobra.Command, args []string) error {
		path := settingsPath
		if path == "" {
			var err error
			path, err = appcfg.SettingsPath()
			if err != nil {
				return err
			}
		}
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		registryPath, err := settings.ResolveRegistryPath()
		if err != nil {
			return err
		}

		fmt.Printf("settings: %s\n", path)
		fmt.Printf("registry: %s\n", registryPath)
		return nil
	},
}
