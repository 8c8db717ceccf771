package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime settings of the assessment tool. Everything
// has a working default; the config file and environment are optional.
type Config struct {
	// DataDir is where the session snapshot lives.
	DataDir string
	// OutputDir receives the exported PDF report.
	OutputDir string
	// FontPath pins the TrueType font used for the report. Empty means
	// probe the usual system locations.
	FontPath string
	// Debug lowers the log level to DEBUG.
	Debug bool
}

// Load reads togari-config.json from $HOME or the working directory,
// then applies TOGARI_* environment overrides. A missing config file is
// not an error.
func Load() (Config, error) {
	v := viper.New()
	v.SetConfigName("togari-config")
	v.SetConfigType("json")
	v.AddConfigPath("$HOME")
	v.AddConfigPath(".")

	v.SetDefault("data_dir", "~/.togari")
	v.SetDefault("output_dir", ".")
	v.SetDefault("font", "")
	v.SetDefault("debug", false)

	v.SetEnvPrefix("togari")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	return Config{
		DataDir:   v.GetString("data_dir"),
		OutputDir: v.GetString("output_dir"),
		FontPath:  v.GetString("font"),
		Debug:     v.GetBool("debug"),
	}, nil
}
