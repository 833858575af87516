// Package config manages user-level settings stored at ~/.blueprint/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the default output directory, the log level, and the package manager used
// after synthesis.
package config
