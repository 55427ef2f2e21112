package main

import (
	"os"

	"github.com/spf13/cobra"

	"goveectl/internal/appcfg"
	"goveectl/internal/govee"
	"goveectl/internal/registry"
	"goveectl/internal/resolve"
)

// Shared flags
var (
	settingsPath string

	// Selector flags, shared by every action command.
	flagName   string
	flagGroup  string
	flagDevice string
	flagModel  string
)

// addTargetFlags registers the shared selector flags on an action
// command.
func addTargetFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagName, "name", "", "Nickname from the registry")
	cmd.Flags().StringVar(&flagGroup, "group", "", "Group name from the registry")
	cmd.Flags().StringVarP(&flagDevice, "device", "d", "", "Govee device id (from 'list')")
	cmd.Flags().StringVarP(&flagModel, "model", "m", "", "Govee model (e.g. H6008)")
}

func selector() resolve.Selector {
	return resolve.Selector{
		Name:   flagName,
		Group:  flagGroup,
		Device: flagDevice,
		Model:  flagModel,
	}
}

// loadSettings reads the settings file named by --config, or the
// default location.
func loadSettings() (*appcfg.Settings, error) {
	return appcfg.Load(settingsPath)
}

// openRegistry loads the registry fresh from disk. Mutating commands
// save through the returned store once their mutation succeeds.
func openRegistry(settings *appcfg.Settings) (*registry.Store, *registry.Registry, error) {
	path, err := settings.ResolveRegistryPath()
	if err != nil {
		return nil, nil, err
	}
	store := registry.NewStore(path)
	reg, err := store.Load()
	if err != nil {
		return nil, nil, err
	}
	return store, reg, nil
}

func newClient(settings *appcfg.Settings) *govee.Client {
	return govee.NewClient(settings.APIBaseURL, settings.ResolveAPIKey(), settings.Timeout())
}

func newResolver(reg *registry.Registry, client *govee.Client, settings *appcfg.Settings) *resolve.Resolver {
	return &resolve.Resolver{
		Registry:        reg,
		Devices:         client,
		AutoDetectModel: settings.AutoDetectModel,
		Notices:         os.Stdout,
	}
}
