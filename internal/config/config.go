package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/agentx-labs/blueprint/internal/branding"
	"github.com/agentx-labs/blueprint/internal/logging"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	KeyOutputDir      = "output_dir"
	KeyLogLevel       = "log_level"
	KeyLogFormat      = "log_format"
	KeyPackageManager = "package_manager"
)

// Log formats accepted for KeyLogFormat.
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

var defaults = map[string]string{
	KeyOutputDir:      ".",
	KeyLogLevel:       "warn",
	KeyLogFormat:      LogFormatConsole,
	KeyPackageManager: "npm",
}

// Keys returns the known configuration keys in sorted order.
func Keys() []string {
	keys := make([]string, 0, len(defaults))
	for k := range defaults {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Dir returns the path to the config directory (~/.blueprint/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.blueprint/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	key = strings.ToLower(key)
	if _, ok := defaults[key]; !ok {
		return fmt.Errorf("unknown config key %q (known keys: %s)", key, strings.Join(Keys(), ", "))
	}
	if err := checkValue(key, value); err != nil {
		return err
	}

	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}

func checkValue(key, value string) error {
	switch key {
	case KeyLogLevel:
		if _, err := logging.ParseLevel(value); err != nil {
			return fmt.Errorf("invalid %s %q: %w", key, value, err)
		}
	case KeyLogFormat:
		if value != LogFormatConsole && value != LogFormatJSON {
			return fmt.Errorf("invalid %s %q: expected %s or %s", key, value, LogFormatConsole, LogFormatJSON)
		}
	case KeyPackageManager:
		if strings.TrimSpace(value) == "" {
			return fmt.Errorf("%s must not be empty", key)
		}
	}
	return nil
}

// OutputDir returns the default synthesis output directory.
func OutputDir() string { return Get(KeyOutputDir) }

// LogLevel returns the configured log level name.
func LogLevel() string { return Get(KeyLogLevel) }

// LogFormat returns the configured log encoding, console or json.
func LogFormat() string { return Get(KeyLogFormat) }

// PackageManager returns the binary used to install dependencies.
func PackageManager() string { return Get(KeyPackageManager) }
