package store

import (
	"fmt"
	"os"

	"github.com/mitchellh/go-homedir"
	"github.com/spf13/viper"
)

// Config supplies the base path for on-disk persistence.
type Config interface {
	BasePath() string
}

// LoadConfig resolves configuration from a .selah config file, SELAH_*
// environment variables, and defaults, in viper's usual order.
func LoadConfig() (Config, error) {
	viper.SetDefault("path", "~/.selah.db")
	viper.SetConfigName(".selah") // .yaml is implicit
	viper.SetEnvPrefix("SELAH")
	viper.AutomaticEnv()

	if override := os.Getenv("SELAH_CONFIG_PATH"); override != "" {
		viper.AddConfigPath(override)
	}
	viper.AddConfigPath("./")
	viper.AddConfigPath("$HOME")

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("store: read config: %w", err)
		}
	}

	path, err := homedir.Expand(viper.GetString("path"))
	if err != nil {
		return nil, fmt.Errorf("store: expand path: %w", err)
	}

	return &fileConfig{Path: path}, nil
}

type fileConfig struct {
	Path string `json:"path"`
}

func (f *fileConfig) BasePath() string {
	return f.Path
}

// CorpusPath resolves the verse corpus data directory. The corpus ships
// separately from the journal database so upgrades never touch user data.
func CorpusPath() (string, error) {
	viper.SetDefault("corpus", "~/.selah.corpus")
	path, err := homedir.Expand(viper.GetString("corpus"))
	if err != nil {
		return "", fmt.Errorf("store: expand corpus path: %w", err)
	}
	return path, nil
}
