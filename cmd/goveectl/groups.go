package main

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/spf13/cobra"

	"goveectl/internal/format"
	"goveectl/internal/registry"
)

// Membership flags
var (
	flagMemberNames []string
	flagMemberPairs []string
)

func init() {
	for _, cmd := range []*cobra.Command{groupsAddMembersCmd, groupsRemoveMembersCmd} {
		cmd.Flags().StringSliceVar(&flagMemberNames, "names", nil, "Nicknames, comma separated or repeated")
		cmd.Flags().StringSliceVar(&flagMemberPairs, "pairs", nil, "Inline device pairs id:model, comma separated or repeated")
	}

	groupsCmd.AddCommand(groupsListCmd)
	groupsCmd.AddCommand(groupsShowCmd)
	groupsCmd.AddCommand(groupsAddCmd)
	groupsCmd.AddCommand(groupsRemoveCmd)
	groupsCmd.AddCommand(groupsAddMembersCmd)
	groupsCmd.AddCommand(groupsRemoveMembersCmd)
	rootCmd.AddCommand(groupsCmd)
}

var groupsCmd = &cobra.Command{
	Use:   "groups",
	Short: "Manage device groups",
}

var groupsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List groups and their members",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		_, reg, err := openRegistry(settings)
		if err != nil {
			return err
		}
		fmt.Print(format.Groups(reg.Groups))
		return nil
	},
}

var groupsShowCmd = &cobra.Command{
	Use:   "show <group>",
	Short: "Show a group's members",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		_, reg, err := openRegistry(settings)
		if err != nil {
			return err
		}
		members, err := reg.Group(args[0])
		if err != nil {
			return err
		}
		fmt.Print(format.Group(args[0], members))
		return nil
	},
}

var groupsAddCmd = &cobra.Command{
	Use:   "add <group>",
	Short: "Create an empty group",
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

		name := args[0]
		if err := reg.CreateGroup(name); err != nil {
			if registry.IsGroupExists(err) {
				// Informative no-op, not a failure.
				fmt.Printf("Group %q already exists.\n", name)
				return nil
			}
			return err
		}
		if err := store.Save(reg); err != nil {
			return err
		}

		fmt.Printf("Created group %q in %s\n", name, store.Path())
		return nil
	},
}

var groupsRemoveCmd = &cobra.Command{
	Use:   "remove <group>",
	Short: "Delete a group",
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

		name := args[0]
		if !reg.DeleteGroup(name) {
			fmt.Printf("Group %q not found.\n", name)
			return nil
		}
		if err := store.Save(reg); err != nil {
			return err
		}

		fmt.Printf("Removed group %q.\n", name)
		return nil
	},
}

var groupsAddMembersCmd = &cobra.Command{
	Use:   "add-members <group>",
	Short: "Add members to a group",
	Example: `  goveectl groups add-members livingroom --names lamp,desk
  goveectl groups add-members livingroom --pairs AA:BB:CC:DD:EE:FF:11:22:H6008`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := loadSettings()
		if err != nil {
			return err
		}
		store, reg, err := openRegistry(settings)
		if err != nil {
			return err
		}

		pairs := make([]registry.DeviceRef, 0, len(flagMemberPairs))
		for _, p := range flagMemberPairs {
			ref, err := registry.ParsePair(p)
			if err != nil {
				return err
			}
			pairs = append(pairs, ref)
		}

		name := args[0]
		if err := reg.AddGroupMembers(name, flagMemberNames, pairs); err != nil {
			return err
		}
		if err := store.Save(reg); err != nil {
			return err
		}

		fmt.Printf("Added members to %q.\n", name)
		return nil
	},
}

var groupsRemoveMembersCmd = &cobra.Command{
	Use:   "remove-members <group>",
	Short: "Remove members from a group",
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

		// Pair arguments are matched against stored inline members by
		// their id:model signature; normalize through ParsePair so the
		// match is shape-checked up front.
		sigs := make([]string, 0, len(flagMemberPairs))
		for _, p := range flagMemberPairs {
			ref, err := registry.ParsePair(p)
			if err != nil {
				return err
			}
			sigs = append(sigs, ref.Signature())
		}

		name := args[0]
		if err := reg.RemoveGroupMembers(name, lo.Uniq(flagMemberNames), lo.Uniq(sigs)); err != nil {
			return err
		}
		if err := store.Save(reg); err != nil {
			return err
		}

		fmt.Printf("Removed members from %q.\n", name)
		return nil
	},
}
