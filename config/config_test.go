package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "librequests", cfg.Client.Product)
	assert.Equal(t, "0.1", cfg.Client.Version)
	assert.Zero(t, cfg.HTTP.Timeout)
	assert.Zero(t, cfg.HTTP.MaxBodySize)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("LIBREQUESTS_PRODUCT", "myclient")
	t.Setenv("LIBREQUESTS_VERSION", "2.3")
	t.Setenv("LIBREQUESTS_TIMEOUT", "5s")
	t.Setenv("LIBREQUESTS_MAX_BODY_SIZE", "1024")

	cfg := Load("testdata/absent.env")

	assert.Equal(t, "myclient", cfg.Client.Product)
	assert.Equal(t, "2.3", cfg.Client.Version)
	assert.Equal(t, 5*time.Second, cfg.HTTP.Timeout)
	assert.Equal(t, int64(1024), cfg.HTTP.MaxBodySize)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LIBREQUESTS_PRODUCT", "")
	t.Setenv("LIBREQUESTS_VERSION", "")

	cfg := Load("testdata/absent.env")

	assert.Equal(t, "librequests", cfg.Client.Product)
	assert.Equal(t, "0.1", cfg.Client.Version)
}

func TestLoad_MalformedValuesFallBack(t *testing.T) {
	t.Setenv("LIBREQUESTS_TIMEOUT", "soon")
	t.Setenv("LIBREQUESTS_MAX_BODY_SIZE", "lots")

	cfg := Load("testdata/absent.env")

	assert.Zero(t, cfg.HTTP.Timeout)
	assert.Zero(t, cfg.HTTP.MaxBodySize)
}
