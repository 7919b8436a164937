package core

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		assert.NoError(t, os.Unsetenv("ENV"))
		conf, err := LoadConfig()
		assert.NoError(t, err)
		assert.Equal(t, "DEV", conf.Env)
		assert.Equal(t, "Darasa", conf.AppName)
		assert.Equal(t, "http://localhost:8080/api/v1", conf.BaseURL)
		assert.True(t, conf.Debug)
		assert.False(t, conf.TestMode)
		assert.NotEmpty(t, conf.StoragePath)
	})

	t.Run("test env flips test mode", func(t *testing.T) {
		assert.NoError(t, os.Setenv("ENV", "TEST"))
		defer os.Unsetenv("ENV")

		conf, err := LoadConfig()
		assert.NoError(t, err)
		assert.Equal(t, "TEST", conf.Env)
		assert.True(t, conf.TestMode)
	})
}
