package core

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config holds the client settings. It is loaded once at startup and handed
// to the components that need it; this package keeps no global state.
type Config struct {
	AppName      string
	ProductTitle string
	Env          string // DEV (default), TEST, QA, PROD
	Debug        bool
	TestMode     bool
	Build        string

	// BaseURL is the API root, prefix included, eg. https://darasa.app/api/v1
	BaseURL string
	// StoragePath is the directory holding the persisted session state.
	StoragePath string

	RollbarToken string
}

func LoadConfig() (*Config, error) {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	// defaults
	v.SetDefault("debug", true)
	v.SetDefault("appName", "Darasa")
	v.SetDefault("productTitle", "Darasa Smart Course Platform")
	v.SetDefault("baseURL", "http://localhost:8080/api/v1")
	v.SetDefault("storagePath", defaultStoragePath())
	v.SetDefault("rollbarToken", "")
	v.SetDefault("build", "")

	env := os.Getenv("ENV")
	switch env {
	case "":
		env = "DEV"
	case "TEST":
		v.SetDefault("testMode", true)
	}
	v.SetEnvPrefix(env)

	// load .env if it exists (ignore if it does not)
	dotEnvPath := filepath.Join("config", ".env."+strings.ToLower(env))
	if _, err := os.Stat(dotEnvPath); err == nil {
		if err := godotenv.Load(dotEnvPath); err != nil {
			return nil, errors.Wrapf(err, "config.godotenv(%s)", dotEnvPath)
		}
	} else if !os.IsNotExist(err) {
		return nil, errors.Wrapf(err, "config.os.Stat(%s)", dotEnvPath)
	}
	v.AutomaticEnv()

	conf := &Config{
		AppName:      v.GetString("appName"),
		ProductTitle: v.GetString("productTitle"),
		Env:          env,
		Debug:        v.GetBool("debug"),
		TestMode:     v.GetBool("testMode"),
		Build:        v.GetString("build"),
		BaseURL:      strings.TrimRight(v.GetString("baseURL"), "/"),
		StoragePath:  v.GetString("storagePath"),
		RollbarToken: v.GetString("rollbarToken"),
	}
	return conf, nil
}

func defaultStoragePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".darasa"
	}
	return filepath.Join(home, ".darasa")
}
