// Goveectl controls Govee smart lights through the vendor cloud API.
//
// It addresses devices by nickname, by named group, or by explicit
// device id and model, and keeps a local registry mapping nicknames
// and groups to vendor identifiers. Power, brightness, color and
// color-temperature commands fan out to every device the selector
// resolves to.
//
// Usage:
//
//	goveectl [command] [flags]
//
// See 'goveectl --help' for available commands.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"goveectl/internal/logging"
	"goveectl/internal/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := logging.InitializeFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	defer logging.Sync()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

var rootCmd = &cobra.Command{
	Use:   "goveectl",
	Short: "Control Govee lights via the cloud API",
	Long: `Control Govee smart lights through the Govee developer cloud API.

Devices are addressed by nickname, by group, or by explicit device id
and model. Nicknames and groups live in a local registry file and are
managed with the 'names' and 'groups' commands.

Set GOVEE_API_KEY to your developer API key before use.`,
	Version:       version.Version,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	rootCmd.PersistentFlags().StringVar(&settingsPath, "config", "", "Settings file path (default: platform config dir)")

	rootCmd.AddCommand(versionCmd)
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goveectl %s (commit: %s)\n", version.Version, version.Commit)
	},
}
