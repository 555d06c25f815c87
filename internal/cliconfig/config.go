// Package cliconfig backs the zb8 command-line tool with viper-managed
// defaults and an optional config file, the way ejoy/goscon's config.go
// seeds viper.SetDefault calls at init and reloads from disk on demand.
package cliconfig

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the settings the zb8 CLI reads from viper's defaults and an
// optional config file. Environment variables are not consulted; the CLI's
// -validate flag, when set, overrides Validate.
type Config struct {
	// Stdout is loaded from the "stdout" key; cmd/zb8 does not act on it,
	// so output goes only to the -o file when -o is set.
	Stdout bool
	// Validate runs Validate on decode instead of trusting the frame.
	Validate bool
	// Namespace prefixes the Prometheus metrics emitted by -metrics.
	Namespace string
}

func init() {
	viper.SetDefault("stdout", false)
	viper.SetDefault("validate", false)
	viper.SetDefault("namespace", "zb8")
}

// Load reads defaults, then merges in the config file at path if path is
// non-empty. An empty path is not an error: the CLI runs on defaults alone.
func Load(path string) (Config, error) {
	if path != "" {
		viper.SetConfigFile(path)
		if err := viper.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("cliconfig: reading %s: %w", path, err)
		}
	}

	return Config{
		Stdout:    viper.GetBool("stdout"),
		Validate:  viper.GetBool("validate"),
		Namespace: viper.GetString("namespace"),
	}, nil
}
