package config

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolConfig parses URL into a pgxpool configuration for the database
// layer. No connection is opened.
func (d Database) PoolConfig() (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(d.URL)
	if err != nil {
		return nil, fmt.Errorf("error parsing DATABASE_URL: %w", err)
	}

	return poolCfg, nil
}

// SigningMethod resolves Algorithm into a registered JWT signing method.
// The unsigned "none" method is rejected.
func (a Auth) SigningMethod() (jwt.SigningMethod, error) {
	method := jwt.GetSigningMethod(a.Algorithm)
	if method == nil || method.Alg() == "none" {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, a.Algorithm)
	}

	return method, nil
}
