package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("VINYL_TEST_INT", "12")
	t.Setenv("VINYL_TEST_BAD_INT", "twelve")
	t.Setenv("VINYL_TEST_BOOL", "true")
	t.Setenv("VINYL_TEST_EMPTY", "")

	assert.Equal(t, 12, getEnvAsInt("VINYL_TEST_INT", 1))
	assert.Equal(t, 1, getEnvAsInt("VINYL_TEST_BAD_INT", 1))
	assert.Equal(t, 7, getEnvAsInt("VINYL_TEST_MISSING", 7))
	assert.True(t, getEnvAsBool("VINYL_TEST_BOOL", false))
	assert.False(t, getEnvAsBool("VINYL_TEST_EMPTY", false))
	assert.Equal(t, "", getEnv("VINYL_TEST_EMPTY", "fallback"))
	assert.Equal(t, "fallback", getEnv("VINYL_TEST_MISSING", "fallback"))
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("PORT", "9090")
	t.Setenv("AUTO_RESET", "1")
	t.Setenv("LOG_LEVEL", "debug")
	defer SetLogLevel("info")

	LoadEnv()
	assert.Equal(t, "9090", PORT)
	assert.Equal(t, "s3cret", JWT_SECRET)
	assert.Equal(t, 24, JWT_TTL)
	assert.True(t, AUTO_RESET)
	assert.Equal(t, logrus.DebugLevel, GetLogger().GetLevel())
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(&buf)

	LogError(logger, "database", "ImportCatalog", "row 3", map[string]int{"line": 3}, errors.New("bad year"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "bad year", entry["msg"])
	assert.Equal(t, "database", entry["module"])
	assert.Equal(t, "ImportCatalog", entry["funcName"])
	assert.NotNil(t, entry["data"])
}
