package govee

import (
	"fmt"
	"regexp"
	"strings"
)

// Value ranges accepted by the control endpoint.
const (
	MinBrightness = 0
	MaxBrightness = 100
	MinKelvin     = 2000
	MaxKelvin     = 9000
)

var hexColorPattern = regexp.MustCompile(`^[0-9a-f]{6}$`)

// Power builds an on/off command.
func Power(on bool) Command {
	value := "off"
	if on {
		value = "on"
	}
	return Command{Name: "turn", Value: value}
}

// Brightness builds a brightness command, clamped to 0-100.
func Brightness(level int) Command {
	return Command{Name: "brightness", Value: clamp(level, MinBrightness, MaxBrightness)}
}

// Color builds a color command from RGB components, each clamped to
// 0-255.
func Color(r, g, b int) Command {
	return Command{Name: "color", Value: RGB{
		R: clamp(r, 0, 255),
		G: clamp(g, 0, 255),
		B: clamp(b, 0, 255),
	}}
}

// ColorFromHex builds a color command from a "#rrggbb" string. The
// leading "#" is optional and case is ignored.
func ColorFromHex(hex string) (Command, error) {
	h := strings.ToLower(strings.TrimSpace(hex))
	h = strings.TrimPrefix(h, "#")
	if !hexColorPattern.MatchString(h) {
		return Command{}, fmt.Errorf("hex color must look like #RRGGBB (e.g. #ff8800), got %q", hex)
	}
	var r, g, b int
	fmt.Sscanf(h, "%02x%02x%02x", &r, &g, &b)
	return Color(r, g, b), nil
}

// ColorTemp builds a color temperature command, clamped to the
// supported Kelvin range.
func ColorTemp(kelvin int) Command {
	return Command{Name: "colorTem", Value: clamp(kelvin, MinKelvin, MaxKelvin)}
}

func clamp(n, lo, hi int) int {
	if n < lo {
		return lo
	}
	if n > hi {
		return hi
	}
	return n
}
