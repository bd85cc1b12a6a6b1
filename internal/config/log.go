package config

import (
	"strconv"

	"github.com/rs/zerolog"
)

const redacted = "***"

// MarshalZerologObject implements [zerolog.LogObjectMarshaler]. Secrets are
// masked and the database URL is reduced to host, port and database name.
func (s *Settings) MarshalZerologObject(e *zerolog.Event) {
	e.Str("environment", s.Environment).
		Str("server_address", s.Server.Address).
		Strs("cors_origins", s.CORSOrigins).
		Str("database", s.Database.summary()).
		Bool("enable_timescale", s.Database.EnableTimescale).
		Str("jwt_secret", mask(s.Auth.Secret)).
		Str("jwt_algorithm", s.Auth.Algorithm).
		Int("jwt_expiration_hours", s.Auth.ExpirationHours).
		Str("openai_api_key", mask(s.AI.OpenAIAPIKey)).
		Str("openai_base_url", s.AI.OpenAIBaseURL).
		Str("deepseek_api_key", mask(s.AI.DeepSeekAPIKey)).
		Str("spaces_endpoint", s.Spaces.Endpoint).
		Str("spaces_key", mask(s.Spaces.AccessKey)).
		Str("spaces_secret", mask(s.Spaces.SecretKey)).
		Str("spaces_bucket", s.Spaces.Bucket)
}

func (d Database) summary() string {
	poolCfg, err := d.PoolConfig()
	if err != nil {
		return "invalid"
	}

	conn := poolCfg.ConnConfig
	return conn.Host + ":" + strconv.Itoa(int(conn.Port)) + "/" + conn.Database
}

func mask(secret string) string {
	if secret == "" {
		return ""
	}

	return redacted
}
