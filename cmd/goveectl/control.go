package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"goveectl/internal/dispatch"
	"goveectl/internal/format"
	"goveectl/internal/govee"
)

// Color command flags
var (
	flagHex string
	flagRGB []int
)

func init() {
	addTargetFlags(powerCmd)
	addTargetFlags(brightnessCmd)
	addTargetFlags(colorCmd)
	addTargetFlags(cctCmd)

	colorCmd.Flags().StringVar(&flagHex, "hex", "", "Hex color like #ff8800")
	colorCmd.Flags().IntSliceVar(&flagRGB, "rgb", nil, "RGB components 0-255, e.g. --rgb 255,136,0")
	colorCmd.MarkFlagsOneRequired("hex", "rgb")
	colorCmd.MarkFlagsMutuallyExclusive("hex", "rgb")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(powerCmd)
	rootCmd.AddCommand(brightnessCmd)
	rootCmd.AddCommand(colorCmd)
	rootCmd.AddCommand(cctCmd)
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List account devices (shows any configured nicknames)",
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	_, reg, err := openRegistry(settings)
	if err != nil {
		return err
	}

	devices, err := newClient(settings).ListDevices(cmd.Context())
	if err != nil {
		return err
	}

	fmt.Print(format.DeviceList(devices, reg.Nicknames))
	return nil
}

var powerCmd = &cobra.Command{
	Use:   "power on|off",
	Short: "Turn the targeted devices on or off",
	Example: `  # Turn a nicknamed device on
  goveectl power on --name lamp

  # Turn a whole group off
  goveectl power off --group livingroom`,
	Args: cobra.ExactArgs(1),
	RunE: runPower,
}

func runPower(cmd *cobra.Command, args []string) error {
	state := strings.ToLower(args[0])
	if state != "on" && state != "off" {
		return fmt.Errorf("power state must be \"on\" or \"off\", got %q", args[0])
	}
	return applyToTargets(cmd, govee.Power(state == "on"))
}

var brightnessCmd = &cobra.Command{
	Use:   "brightness <0-100>",
	Short: "Set brightness",
	Args:  cobra.ExactArgs(1),
	RunE:  runBrightness,
}

func runBrightness(cmd *cobra.Command, args []string) error {
	level, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid brightness level %q: %w", args[0], err)
	}
	return applyToTargets(cmd, govee.Brightness(level))
}

var colorCmd = &cobra.Command{
	Use:   "color (--hex #rrggbb | --rgb R,G,B)",
	Short: "Set color",
	Example: `  goveectl color --hex '#ffaa00' --group livingroom
  goveectl color --rgb 255,136,0 --name lamp`,
	RunE: runColor,
}

func runColor(cmd *cobra.Command, args []string) error {
	var command govee.Command
	switch {
	case flagHex != "":
		var err error
		command, err = govee.ColorFromHex(flagHex)
		if err != nil {
			return err
		}
	default:
		if len(flagRGB) != 3 {
			return fmt.Errorf("--rgb needs exactly three components, got %d", len(flagRGB))
		}
		command = govee.Color(flagRGB[0], flagRGB[1], flagRGB[2])
	}
	return applyToTargets(cmd, command)
}

var cctCmd = &cobra.Command{
	Use:   "cct <kelvin>",
	Short: "Set color temperature in Kelvin (e.g. 2700-6500)",
	Args:  cobra.ExactArgs(1),
	RunE:  runCCT,
}

func runCCT(cmd *cobra.Command, args []string) error {
	kelvin, err := strconv.Atoi(args[0])
	if err != nil {
		return fmt.Errorf("invalid color temperature %q: %w", args[0], err)
	}
	return applyToTargets(cmd, govee.ColorTemp(kelvin))
}

// applyToTargets resolves the selector flags to a target list and fans
// the command out. Resolution failures abort before any send; send
// failures are reported per target and never change the exit code.
func applyToTargets(cmd *cobra.Command, command govee.Command) error {
	settings, err := loadSettings()
	if err != nil {
		return err
	}
	_, reg, err := openRegistry(settings)
	if err != nil {
		return err
	}

	client := newClient(settings)
	targets, err := newResolver(reg, client, settings).Resolve(cmd.Context(), selector())
	if err != nil {
		return err
	}

	for _, result := range dispatch.Apply(cmd.Context(), client, targets, command) {
		fmt.Print(format.DispatchResult(result))
	}
	return nil
}
