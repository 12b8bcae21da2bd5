package config

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvPrefix namespaces every environment variable the CLI reads.
const EnvPrefix = "BIDCALC"

// Keys shared between viper defaults, env vars, and cobra flag bindings.
const (
	KeyHost   = "host"
	KeyPort   = "port"
	KeyDebug  = "debug"
	KeyLocale = "locale"
)

// Config holds runtime settings for the presentation surfaces. Bid rates are
// not configurable and do not live here.
type Config struct {
	Host   string
	Port   int
	Debug  bool
	Locale string
}

// Addr is the listen address for the web presenter.
func (c Config) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// New returns a viper instance with defaults and BIDCALC_* env binding.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyHost, "127.0.0.1")
	v.SetDefault(KeyPort, 3000)
	v.SetDefault(KeyDebug, false)
	v.SetDefault(KeyLocale, "en-US")
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	return v
}

// LoadDotEnv loads KEY=value pairs from the given files into the process
// environment without overriding what is already set. Missing files are
// skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("loading %s: %w", p, err)
		}
	}
	return nil
}

// From reads a Config out of v.
func From(v *viper.Viper) (Config, error) {
	c := Config{
		Host:   v.GetString(KeyHost),
		Port:   v.GetInt(KeyPort),
		Debug:  v.GetBool(KeyDebug),
		Locale: v.GetString(KeyLocale),
	}
	if c.Port <= 0 || c.Port > 65535 {
		return Config{}, fmt.Errorf("%s_PORT out of range: %d", EnvPrefix, c.Port)
	}
	if c.Locale == "" {
		return Config{}, fmt.Errorf("%s_LOCALE must not be empty", EnvPrefix)
	}
	return c, nil
}
