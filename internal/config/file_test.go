package config

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFile_JSON(t *testing.T) {
	// Arrange
	path := writeTempFile(t, "config.json", `{
		"database": {"url": "postgres://json@localhost/db", "enable_timescale": true},
		"jwt": {"secret": "json_secret", "algorithm": "HS384", "expiration_hours": 6},
		"ai": {"openai_api_key": "sk-o", "openai_base_url": "https://o.example/v1", "deepseek_api_key": "sk-d"},
		"spaces": {"endpoint": "https://spaces.example", "key": "k", "secret": "s", "bucket": "b"},
		"server": {"address": "127.0.0.1:8000"},
		"cors_origins": ["http://a.com", "http://b.com"],
		"environment": "staging"
	}`)

	// Act
	cfg, err := parseFile(path)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, Database{URL: "postgres://json@localhost/db", EnableTimescale: true}, cfg.Database)
	assert.Equal(t, Auth{Secret: "json_secret", Algorithm: "HS384", ExpirationHours: 6}, cfg.Auth)
	assert.Equal(t, AI{OpenAIAPIKey: "sk-o", OpenAIBaseURL: "https://o.example/v1", DeepSeekAPIKey: "sk-d"}, cfg.AI)
	assert.Equal(t, Spaces{Endpoint: "https://spaces.example", AccessKey: "k", SecretKey: "s", Bucket: "b"}, cfg.Spaces)
	assert.Equal(t, "127.0.0.1:8000", cfg.Server.Address)
	assert.Equal(t, Origins{"http://a.com", "http://b.com"}, cfg.CORSOrigins)
	assert.Equal(t, "staging", cfg.Environment)
	assert.Len(t, cfg.keys, 15)
}

func TestParseFile_RecordsOnlyPresentKeys(t *testing.T) {
	path := writeTempFile(t, "config.json", `{
		"database": {"enable_timescale": false},
		"jwt": {"expiration_hours": 0, "secret": ""},
		"cors_origins": []
	}`)

	cfg, err := parseFile(path)

	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{
		"ENABLE_TIMESCALE":     {},
		"JWT_EXPIRATION_HOURS": {},
		"JWT_SECRET":           {},
		"CORS_ORIGINS":         {},
	}, cfg.keys)
	assert.Equal(t, Origins{}, cfg.CORSOrigins)
}

func TestParseFile_TypeErrorNamesField(t *testing.T) {
	path := writeTempFile(t, "config.json", `{"database": {"enable_timescale": "sometimes"}}`)

	_, err := parseFile(path)

	var coercionErr *CoercionError
	require.ErrorAs(t, err, &coercionErr)
	assert.Equal(t, "database.enable_timescale", coercionErr.Key)
	assert.Equal(t, "a boolean", coercionErr.Type)
}

func TestParseFile_YAML(t *testing.T) {
	path := writeTempFile(t, "config.yaml", `
database:
  url: postgres://yaml@localhost/db
jwt:
  secret: yaml_secret
  expiration_hours: 8
cors_origins:
  - http://a.com
  - http://b.com
environment: production
`)

	cfg, err := parseFile(path)

	require.NoError(t, err)
	assert.Equal(t, "postgres://yaml@localhost/db", cfg.Database.URL)
	assert.Equal(t, "yaml_secret", cfg.Auth.Secret)
	assert.Equal(t, 8, cfg.Auth.ExpirationHours)
	assert.Equal(t, Origins{"http://a.com", "http://b.com"}, cfg.CORSOrigins)
	assert.Equal(t, "production", cfg.Environment)
}

func TestParseFile_OriginsForms(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    Origins
	}{
		{"json comma string", "c.json", `{"cors_origins": "http://a.com, http://b.com"}`, Origins{"http://a.com", "http://b.com"}},
		{"json array string", "c.json", `{"cors_origins": "[\"http://a.com\"]"}`, Origins{"http://a.com"}},
		{"json number", "c.json", `{"cors_origins": 42}`, Origins{DefaultCORSOrigin}},
		{"json null", "c.json", `{"cors_origins": null}`, nil},
		{"json absent", "c.json", `{}`, nil},
		{"yaml string", "c.yml", "cors_origins: http://a.com,http://b.com\n", Origins{"http://a.com", "http://b.com"}},
		{"yaml number", "c.yml", "cors_origins: 42\n", Origins{DefaultCORSOrigin}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, tt.file, tt.content)

			cfg, err := parseFile(path)

			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.CORSOrigins)
		})
	}
}

func TestParseFile_Errors(t *testing.T) {
	tests := []struct {
		name         string
		file         string
		content      string
		wantContains string
		wantCoercion bool
	}{
		{"malformed json", "c.json", `{"database":`, "error decoding json configs", false},
		{"malformed yaml", "c.yaml", "database: [unclosed\n", "error decoding yaml configs", false},
		{"wrong json type", "c.json", `{"jwt": {"expiration_hours": "soon"}}`, "expiration_hours must be an integer", true},
		{"wrong yaml type", "c.yaml", "jwt:\n  expiration_hours: soon\n", "error decoding yaml configs", true},
		{"non-string origin", "c.json", `{"cors_origins": ["http://a.com", 1]}`, "cors_origins", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTempFile(t, tt.file, tt.content)

			cfg, err := parseFile(path)

			require.Error(t, err)
			assert.Nil(t, cfg)
			assert.Contains(t, err.Error(), tt.wantContains)
			assert.Equal(t, tt.wantCoercion, errors.Is(err, ErrTypeCoercion))
		})
	}
}
