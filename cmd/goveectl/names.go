package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"goveectl/internal/format"
	"goveectl/internal/registry"
)

func init() {
	namesAddCmd.Flags().StringVarP(&flagDevice, "device", "d", "", "Govee device id")
	namesAddCmd.Flags().StringVarP(&flagModel, "model", "m", "", "Govee model (e.g. H6008)")
	_ = namesAddCmd.MarkFlagRequired("device")
	_ = namesAddCmd.MarkFlagRequired("model")

	namesCmd.AddCommand(namesListCmd)
	namesCmd.AddCommand(namesAddCmd)
	namesCmd.AddCommand(namesRemoveCmd)
	rootCmd.AddCommand(namesCmd)
}

var namesCmd = &cobra.Command{
	Use:   "names",
	Short: "Manage device nicknames",
}

var namesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List nicknames",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		_, reg, err := openRegistry(settings)
		if err != nil {
			return err
		}
		fmt.Print(format.Nicknames(reg.Nicknames))
		return nil
	},
}

var namesAddCmd = &cobra.Command{
	Use:     "add <nickname>",
	Short:   "Add or overwrite a nickname",
	Example: "  goveectl names add lamp -d AA:BB:CC:DD:EE:FF:11:22 -m H6008",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		store, reg, err := openRegistry(settings)
		if err != nil {
			return err
		}

		nick := args[0]
		ref := registry.DeviceRef{ID: flagDevice, Model: flagModel}
		if err := reg.SetNickname(nick, ref); err != nil {
			return err
		}
		if err := store.Save(reg); err != nil {
			return err
		}

		fmt.Printf("Saved nickname %q -> id=%s model=%s in %s\n", nick, ref.ID, ref.Model, store.Path())
		return nil
	},
}

var namesRemoveCmd = &cobra.Command{
	Use:   "remove <nickname>",
	Short: "Remove a nickname (and prune it from all groups)",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		store, reg, err := openRegistry(settings)
		if err != nil {
			return err
		}

		nick := args[0]
		if !reg.RemoveNickname(nick) {
			fmt.Printf("Nickname %q not found in %s\n", nick, store.Path())
			return nil
		}
		if err := store.Save(reg); err != nil {
			return err
		}

		fmt.Printf("Removed nickname %q from %s and all groups\n", nick, store.Path())
		return nil
	},
}
