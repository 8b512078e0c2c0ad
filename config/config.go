package config

import (
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	ConfigDebug         = "debug"
	ConfigBookPath      = "book-path"
	ConfigRecordWorkers = "record-workers"
	ConfigCPUProfile    = "cpu-profile"
	ConfigMemProfile    = "mem-profile"
)

type Config struct {
	*viper.Viper
}

func DefaultConfig() *Config {
	c := &Config{Viper: viper.New()}
	c.setDefaults()
	return c
}

func (c *Config) setDefaults() {
	c.SetDefault(ConfigDebug, false)
	c.SetDefault(ConfigBookPath, "./data/book.yaml")
	c.SetDefault(ConfigRecordWorkers, 4)
	c.SetDefault(ConfigCPUProfile, "")
	c.SetDefault(ConfigMemProfile, "")
}

// Load reads settings from, in increasing order of precedence, an optional
// config.yaml in the working directory, SHOGIMOVE_* environment variables
// and --key=value arguments. Arguments that are not flags are left alone.
func (c *Config) Load(args []string) error {
	c.Viper = viper.New()
	c.setDefaults()

	c.SetConfigName("config")
	c.SetConfigType("yaml")
	c.AddConfigPath(".")
	if err := c.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return err
		}
	}

	c.SetEnvPrefix("shogimove")
	c.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	c.AutomaticEnv()

	for _, arg := range args {
		if !strings.HasPrefix(arg, "--") {
			continue
		}
		key, val, found := strings.Cut(strings.TrimPrefix(arg, "--"), "=")
		if !found {
			val = "true"
		}
		c.Set(key, val)
	}
	return nil
}

// AdjustRelativePaths makes relative data paths relative to basePath,
// usually the directory of the executable.
func (c *Config) AdjustRelativePaths(basePath string) {
	for _, key := range []string{ConfigBookPath} {
		p := c.GetString(key)
		if p == "" || filepath.IsAbs(p) {
			continue
		}
		c.Set(key, filepath.Join(basePath, p))
	}
}

// SanitizedSettings is suitable for logging.
func (c *Config) SanitizedSettings() map[string]any {
	return c.AllSettings()
}
