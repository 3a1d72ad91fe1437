package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {
			"token_sign_key": "jwt_secret",
			"token_issuer": "journal",
			"session_duration": "168h",
			"version": "1.0.0"
		},
		"storage": {
			"db": {"driver": "sqlite3", "dsn": "file:journal.db"}
		},
		"server": {
			"http_address": "0.0.0.0:9000",
			"request_timeout": "45s"
		},
		"email": {
			"host": "smtp.example.com",
			"port": 465,
			"user": "mailer@example.com",
			"pass": "secret",
			"from": "journal@example.com"
		},
		"assistant": {"api_key": "sk-json", "model": "gpt-4o"},
		"news": {"feed_url": "https://news.example.com", "request_timeout": "5s"},
		"workers": {"report_interval": "24h"}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "jwt_secret", cfg.App.TokenSignKey)
	assert.Equal(t, "journal", cfg.App.TokenIssuer)
	assert.Equal(t, 168*time.Hour, cfg.App.SessionDuration)
	assert.Equal(t, "1.0.0", cfg.App.Version)

	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "file:journal.db", cfg.Storage.DB.DSN)

	assert.Equal(t, "0.0.0.0:9000", cfg.Server.HTTPAddress)
	assert.Equal(t, 45*time.Second, cfg.Server.RequestTimeout)

	assert.Equal(t, "smtp.example.com", cfg.Email.Host)
	assert.Equal(t, 465, cfg.Email.Port)
	assert.Equal(t, "journal@example.com", cfg.Email.From)

	assert.Equal(t, "sk-json", cfg.Assistant.APIKey)
	assert.Equal(t, "gpt-4o", cfg.Assistant.Model)

	assert.Equal(t, "https://news.example.com", cfg.News.FeedURL)
	assert.Equal(t, 5*time.Second, cfg.News.RequestTimeout)

	assert.Equal(t, 24*time.Hour, cfg.Workers.ReportInterval)

	// A parsed JSON config never re-points at another file.
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_DurationAsNumber(t *testing.T) {
	path := writeTempJSON(t, `{"server": {"request_timeout": 30000000000}}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	require.Error(t, err)
}

func TestParseJSON_MalformedFile(t *testing.T) {
	path := writeTempJSON(t, `{"app": `)

	_, err := parseJSON(path)
	require.Error(t, err)
}

func TestDuration_UnmarshalInvalidString(t *testing.T) {
	var d Duration
	err := d.UnmarshalJSON([]byte(`"abc"`))
	require.Error(t, err)
}
