package trelloclient

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/fourleaf-io/trello-client/internal/constants"
	"github.com/fourleaf-io/trello-client/pkg/trello"
)

// LoadConfig reads client configuration from a YAML config file and TRELLO_*
// environment variables; the environment wins over the file. When path is
// empty, $HOME/.trello/config.yml is used if it exists, and a missing file is
// not an error.
func LoadConfig(path string) (*trello.Config, error) {
	v := viper.New()

	v.SetEnvPrefix(constants.EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("base_url", constants.DefaultBaseURL)
	v.SetDefault("version", constants.DefaultAPIVersion)
	v.SetDefault("identifier", constants.DefaultIdentifier)
	v.SetDefault("fatal_errors", true)

	if path != "" {
		v.SetConfigFile(path)

		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	} else if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".trello"))
		v.SetConfigName("config")
		v.SetConfigType("yml")

		// The default config file is optional.
		_ = v.ReadInConfig()
	}

	config := &trello.Config{
		BaseURL:      v.GetString("base_url"),
		Key:          v.GetString("key"),
		Token:        v.GetString("token"),
		Identifier:   v.GetString("identifier"),
		Version:      v.GetString("version"),
		CamelCase:    v.GetBool("camel_case"),
		Debug:        v.GetBool("debug"),
		FatalErrors:  v.GetBool("fatal_errors"),
		RetryMax:     v.GetInt("retry_max"),
		RetryWaitMin: v.GetDuration("retry_wait_min"),
		RetryWaitMax: v.GetDuration("retry_wait_max"),
		HTTPTimeout:  v.GetDuration("http_timeout"),
	}

	return config, nil
}
