package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// fileSettings mirrors [Settings] in the layout of the JSON and YAML config
// files. Pointer fields stay nil when the file omits the key. CORSOrigins
// stays untyped so that a list, a string or any other value goes through
// [ParseOrigins].
type fileSettings struct {
	Database struct {
		URL             *string `json:"url" yaml:"url"`
		EnableTimescale *bool   `json:"enable_timescale" yaml:"enable_timescale"`
	} `json:"database" yaml:"database"`

	JWT struct {
		Secret          *string `json:"secret" yaml:"secret"`
		Algorithm       *string `json:"algorithm" yaml:"algorithm"`
		ExpirationHours *int    `json:"expiration_hours" yaml:"expiration_hours"`
	} `json:"jwt" yaml:"jwt"`

	AI struct {
		OpenAIAPIKey   *string `json:"openai_api_key" yaml:"openai_api_key"`
		OpenAIBaseURL  *string `json:"openai_base_url" yaml:"openai_base_url"`
		DeepSeekAPIKey *string `json:"deepseek_api_key" yaml:"deepseek_api_key"`
	} `json:"ai" yaml:"ai"`

	Spaces struct {
		Endpoint *string `json:"endpoint" yaml:"endpoint"`
		Key      *string `json:"key" yaml:"key"`
		Secret   *string `json:"secret" yaml:"secret"`
		Bucket   *string `json:"bucket" yaml:"bucket"`
	} `json:"spaces" yaml:"spaces"`

	Server struct {
		Address *string `json:"address" yaml:"address"`
	} `json:"server" yaml:"server"`

	CORSOrigins any     `json:"cors_origins" yaml:"cors_origins"`
	Environment *string `json:"environment" yaml:"environment"`
}

// parseFile reads a layer from the config file at path. Files ending in
// .yaml or .yml are decoded as YAML, everything else as JSON.
func parseFile(path string) (*layer, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fileCfg fileSettings
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", yamlDecodeError(path, err))
		}
	default:
		if err := json.NewDecoder(bytes.NewReader(data)).Decode(&fileCfg); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", jsonDecodeError(err))
		}
	}

	l := newLayer()
	assign(l, "DATABASE_URL", &l.Database.URL, fileCfg.Database.URL)
	assign(l, "ENABLE_TIMESCALE", &l.Database.EnableTimescale, fileCfg.Database.EnableTimescale)
	assign(l, "JWT_SECRET", &l.Auth.Secret, fileCfg.JWT.Secret)
	assign(l, "JWT_ALGORITHM", &l.Auth.Algorithm, fileCfg.JWT.Algorithm)
	assign(l, "JWT_EXPIRATION_HOURS", &l.Auth.ExpirationHours, fileCfg.JWT.ExpirationHours)
	assign(l, "OPENAI_API_KEY", &l.AI.OpenAIAPIKey, fileCfg.AI.OpenAIAPIKey)
	assign(l, "OPENAI_BASE_URL", &l.AI.OpenAIBaseURL, fileCfg.AI.OpenAIBaseURL)
	assign(l, "DEEPSEEK_API_KEY", &l.AI.DeepSeekAPIKey, fileCfg.AI.DeepSeekAPIKey)
	assign(l, "SPACES_ENDPOINT", &l.Spaces.Endpoint, fileCfg.Spaces.Endpoint)
	assign(l, "SPACES_KEY", &l.Spaces.AccessKey, fileCfg.Spaces.Key)
	assign(l, "SPACES_SECRET", &l.Spaces.SecretKey, fileCfg.Spaces.Secret)
	assign(l, "SPACES_BUCKET", &l.Spaces.Bucket, fileCfg.Spaces.Bucket)
	assign(l, "SERVER_ADDRESS", &l.Server.Address, fileCfg.Server.Address)
	assign(l, "ENVIRONMENT", &l.Environment, fileCfg.Environment)

	if fileCfg.CORSOrigins != nil {
		origins, err := ParseOrigins(fileCfg.CORSOrigins)
		if err != nil {
			return nil, &CoercionError{Key: "cors_origins", Type: "a list of strings", Err: err}
		}
		list := Origins(origins)
		assign(l, "CORS_ORIGINS", &l.CORSOrigins, &list)
	}

	return l, nil
}

// jsonDecodeError turns a value of the wrong type into a [*CoercionError]
// keyed by the dotted path of the offending field.
func jsonDecodeError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return err
	}

	return &CoercionError{Key: typeErr.Field, Type: typeName(typeErr.Type), Err: err}
}

// yamlDecodeError turns type mismatches into a [*CoercionError]. yaml.v3
// reports them by line only, so the key is the file path.
func yamlDecodeError(path string, err error) error {
	var typeErr *yaml.TypeError
	if !errors.As(err, &typeErr) {
		return err
	}

	return &CoercionError{Key: path, Type: typeName(nil), Err: err}
}
