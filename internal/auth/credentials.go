// Package auth resolves the query-parameter credentials the Trello API
// expects on every request.
package auth

import (
	"net/url"
	"os"

	"github.com/fourleaf-io/trello-client/internal/constants"
)

// Source yields the credential query parameters to inject into a request.
type Source interface {
	Values() url.Values
}

// Static holds a fixed application key and optional member token.
type Static struct {
	key   string
	token string
}

// NewStatic creates a static credential source.
func NewStatic(key, token string) *Static {
	return &Static{key: key, token: token}
}

// Values implements Source.
func (s *Static) Values() url.Values {
	return credentialValues(s.key, s.token)
}

// Env resolves credentials from TRELLO_KEY and TRELLO_TOKEN at request time,
// so tokens rotated in the environment are picked up without rebuilding the
// client.
type Env struct{}

// FromEnv creates an environment-backed credential source.
func FromEnv() *Env {
	return &Env{}
}

// Values implements Source.
func (e *Env) Values() url.Values {
	return credentialValues(os.Getenv(constants.EnvKey), os.Getenv(constants.EnvToken))
}

func credentialValues(key, token string) url.Values {
	values := make(url.Values)

	if key != "" {
		values.Set(constants.QueryParamKey, key)
	}

	if token != "" {
		values.Set(constants.QueryParamToken, token)
	}

	return values
}
