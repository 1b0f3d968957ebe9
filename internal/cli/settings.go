package cli

import (
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Setting keys. Each maps to a NAVFILTER_* environment variable with dots and
// dashes replaced by underscores.
const (
	keyConfig    = "config"
	keyBaseURL   = "base-url"
	keyFilters   = "filters"
	keyLogLevel  = "log.level"
	keyLogFormat = "log.format"
	keyTimeout   = "http.timeout"
	keyPageSize  = "http.page-size"
	keyAddr      = "serve.addr"
)

// Settings is the resolved configuration for one command run.
type Settings struct {
	BaseURL   string
	Filters   string
	LogLevel  string
	LogFormat string
	Timeout   time.Duration
	PageSize  int
	Addr      string
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault(keyBaseURL, "http://127.0.0.1:8080")
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyLogFormat, "text")
	v.SetDefault(keyTimeout, 10*time.Second)
	v.SetDefault(keyPageSize, 100)
	v.SetDefault(keyAddr, "127.0.0.1:8080")

	v.SetEnvPrefix("NAVFILTER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return v
}

// readConfig loads the optional settings file named by --config. Without
// one, navfilter.yaml in the working directory is used when present.
func readConfig(v *viper.Viper) error {
	if file := v.GetString(keyConfig); file != "" {
		v.SetConfigFile(file)
		return v.ReadInConfig()
	}
	v.SetConfigName("navfilter")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return nil
		}
		return err
	}
	return nil
}

func settingsFrom(v *viper.Viper) Settings {
	return Settings{
		BaseURL:   strings.TrimRight(strings.TrimSpace(v.GetString(keyBaseURL)), "/"),
		Filters:   strings.TrimSpace(v.GetString(keyFilters)),
		LogLevel:  v.GetString(keyLogLevel),
		LogFormat: v.GetString(keyLogFormat),
		Timeout:   v.GetDuration(keyTimeout),
		PageSize:  v.GetInt(keyPageSize),
		Addr:      v.GetString(keyAddr),
	}
}
