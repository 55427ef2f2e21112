package appcfg

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"gopkg.in/yaml.v3"

	"goveectl/internal/govee"
)

const (
	appName      = "goveectl"
	settingsFile = "config.yaml"
	registryFile = "devices.json"

	// APIKeyEnvVar overrides the api_key setting when set.
	APIKeyEnvVar = "GOVEE_API_KEY"

	// DefaultAutoDetectModel is the single hardware model eligible for
	// implicit target selection when no selector is given.
	DefaultAutoDetectModel = "H6008"
)

// Settings is the optional application settings file. Every field has
// a working default; a missing file is fine.
type Settings struct {
	APIKey          string `yaml:"api_key,omitempty"`
	APIBaseURL      string `yaml:"api_base_url,omitempty"`
	TimeoutSeconds  int    `yaml:"timeout_seconds,omitempty"`
	AutoDetectModel string `yaml:"auto_detect_model,omitempty"`
	RegistryPath    string `yaml:"registry_path,omitempty"`
}

// Defaults returns settings with every field at its default value.
func Defaults() *Settings {
	return &Settings{
		APIBaseURL:      govee.DefaultBaseURL,
		TimeoutSeconds:  int(govee.DefaultTimeout / time.Second),
		AutoDetectModel: DefaultAutoDetectModel,
	}
}

// ConfigDir returns the OS-appropriate configuration directory:
//   - Linux: $XDG_CONFIG_HOME/goveectl or $HOME/.config/goveectl
//   - macOS: $HOME/.config/goveectl
//   - Windows: %LOCALAPPDATA%\goveectl
func ConfigDir() (string, error) {
	var baseDir string

	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			userProfile := os.Getenv("USERPROFILE")
			if userProfile == "" {
				return "", fmt.Errorf("cannot determine user profile directory (LOCALAPPDATA and USERPROFILE not set)")
			}
			baseDir = filepath.Join(userProfile, "AppData", "Local", appName)
		} else {
			baseDir = filepath.Join(localAppData, appName)
		}

	default:
		// Linux, macOS and other Unix-like systems: XDG_CONFIG_HOME or
		// $HOME/.config.
		xdgConfigHome := os.Getenv("XDG_CONFIG_HOME")
		if xdgConfigHome != "" {
			baseDir = filepath.Join(xdgConfigHome, appName)
		} else {
			homeDir, err := os.UserHomeDir()
			if err != nil {
				return "", fmt.Errorf("cannot determine home directory: %w", err)
			}
			baseDir = filepath.Join(homeDir, ".config", appName)
		}
	}

	return baseDir, nil
}

// SettingsPath returns the full path to the settings file.
func SettingsPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, settingsFile), nil
}

// Load reads settings from path, or from the default location when
// path is empty. A missing file yields defaults; a malformed file is
// an error naming the path.
func Load(path string) (*Settings, error) {
	if path == "" {
		var err error
		path, err = SettingsPath()
		if err != nil {
			return nil, err
		}
	}

	settings := Defaults()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return settings, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read settings file %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, settings); err != nil {
		return nil, fmt.Errorf("settings file %s is invalid: %w", path, err)
	}

	if settings.APIBaseURL == "" {
		settings.APIBaseURL = govee.DefaultBaseURL
	}
	if settings.TimeoutSeconds <= 0 {
		settings.TimeoutSeconds = int(govee.DefaultTimeout / time.Second)
	}
	if settings.AutoDetectModel == "" {
		settings.AutoDetectModel = DefaultAutoDetectModel
	}

	return settings, nil
}

// ResolveAPIKey returns the API key to use: the environment variable
// when set, the settings value otherwise.
func (s *Settings) ResolveAPIKey() string {
	if key := os.Getenv(APIKeyEnvVar); key != "" {
		return key
	}
	return s.APIKey
}

// Timeout returns the configured request timeout.
func (s *Settings) Timeout() time.Duration {
	return time.Duration(s.TimeoutSeconds) * time.Second
}

// ResolveRegistryPath returns the registry file location: the
// registry_path setting when present, the config directory otherwise.
func (s *Settings) ResolveRegistryPath() (string, error) {
	if s.RegistryPath != "" {
		return s.RegistryPath, nil
	}
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, registryFile), nil
}
