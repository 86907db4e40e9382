package constants

import "time"

// API defaults.
const (
	// DefaultBaseURL is the Trello API endpoint used when none is configured.
	DefaultBaseURL = "https://api.trello.com"

	// DefaultAPIVersion is the Trello API version path prefix.
	DefaultAPIVersion = "1"

	// DefaultIdentifier is the User-Agent label sent when none is configured.
	DefaultIdentifier = "trello-client-go"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits.
const (
	// DefaultRetryMax is the default maximum number of retries.
	DefaultRetryMax = 3

	// DefaultRetryWaitMin is the minimum wait time between retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Environment variable names read by credential and config loaders.
const (
	// EnvPrefix is the prefix for all environment variables.
	EnvPrefix = "TRELLO"

	// EnvKey holds the API key.
	EnvKey = "TRELLO_KEY"

	// EnvToken holds the member access token.
	EnvToken = "TRELLO_TOKEN"
)

// Reserved query parameter names injected on every request.
const (
	// QueryParamKey carries the API key.
	QueryParamKey = "key"

	// QueryParamToken carries the member access token.
	QueryParamToken = "token"
)
