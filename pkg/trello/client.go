package trello

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"time"
)

// Resource is an immutable, path-scoped handle on the Trello API. Descending
// returns a new Resource; the receiver is never mutated.
type Resource interface {
	// Resource descends into a named sub-resource. Segments are interpreted
	// as ordered segment/value pairs; a trailing unpaired segment is appended
	// verbatim. A malformed call poisons the returned instance, and the
	// deferred error is reported by Err and by the next dispatch.
	Resource(name string, segments ...string) Resource

	// Path returns the fully resolved request path, including the API
	// version prefix (e.g. "/1/boards/4d5ea62fd76a").
	Path() string

	// Err reports a deferred chaining error, if any.
	Err() error

	// Action dispatches verb against the scoped path. An empty verb issues a
	// GET. Only the query and data carried by opts are forwarded; transport
	// errors are returned unmodified.
	Action(ctx context.Context, verb string, opts *CallOptions) (*Result, error)

	// Create is shorthand for Action with POST.
	Create(ctx context.Context, opts *CallOptions) (*Result, error)
	// Fetch is shorthand for Action with GET.
	Fetch(ctx context.Context, opts *CallOptions) (*Result, error)
	// Update is shorthand for Action with PUT.
	Update(ctx context.Context, opts *CallOptions) (*Result, error)
	// Delete is shorthand for Action with DELETE.
	Delete(ctx context.Context, opts *CallOptions) (*Result, error)
}

// Client is the root Resource plus named entry points for the well-known
// top-level Trello resources. The named wrappers are sugar over Resource with
// a static name; they exist so callers get the ergonomics of the dynamic API
// without open-ended method dispatch.
type Client interface {
	Resource

	Actions(segments ...string) Resource
	Batch(segments ...string) Resource
	Boards(segments ...string) Resource
	Cards(segments ...string) Resource
	Checklists(segments ...string) Resource
	Enterprises(segments ...string) Resource
	Labels(segments ...string) Resource
	Lists(segments ...string) Resource
	Members(segments ...string) Resource
	Notifications(segments ...string) Resource
	Organizations(segments ...string) Resource
	Search(segments ...string) Resource
	Tokens(segments ...string) Resource
	Types(segments ...string) Resource
	Webhooks(segments ...string) Resource
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// CallOptions carries the caller-supplied parameters for a dispatch. All
// other request shaping (credentials, content type, user agent) is handled by
// the transport.
type CallOptions struct {
	// Query is merged with the injected key/token parameters. Caller values
	// win for the reserved "key" and "token" names.
	Query url.Values
	// Data is serialized as the JSON request body when non-nil.
	Data interface{}
}

// Result is the outcome of a dispatched action: the response body as raw
// JSON plus the raw transaction.
type Result struct {
	// Body is the unparsed response body.
	Body json.RawMessage
	// Response is the raw transaction the transport observed.
	Response *Response
}

// Decode unmarshals the response body into v.
func (r *Result) Decode(v interface{}) error {
	err := json.Unmarshal(r.Body, v)
	if err != nil {
		return fmt.Errorf("decoding response body: %w", err)
	}

	return nil
}

// Config represents client configuration for building a trello.Client.
//
// # Credentials
//
// Key is the Trello application key and is required by trelloclient.New. The
// member Token is optional; when present it is sent alongside the key as a
// query parameter on every request. If Key is empty when constructing the
// internal client directly, credentials are resolved from the TRELLO_KEY and
// TRELLO_TOKEN environment variables at request time.
//
// # Errors, retries, and timeouts
//
// FatalErrors converts 4xx/5xx responses into *APIError returns; when false
// the raw response passes through without error. Retry behavior can be tuned
// via RetryMax/RetryWaitMin/RetryWaitMax and applies to 429, 5xx, and
// connection errors. Per-request cancellation should generally be controlled
// via the context passed to dispatch methods; HTTPTimeout bounds each
// underlying attempt.
type Config struct {
	// BaseURL: base URL for the Trello API. trelloclient.New normalizes this
	// value by trimming a trailing slash and adding "https://" if no scheme
	// is present; empty means https://api.trello.com.
	BaseURL string `yaml:"base_url"`
	// Key: Trello application key, injected as the "key" query parameter.
	Key string `yaml:"key"`
	// Token: member access token, injected as the "token" query parameter
	// when non-empty.
	Token string `yaml:"token"`
	// Identifier: User-Agent label; empty means a library default.
	Identifier string `yaml:"identifier"`
	// Version: API version path prefix; empty means "1".
	Version string `yaml:"version"`

	// CamelCase rewrites snake_case segment names in segment/value pairs
	// ("due_date" -> "dueDate"). Only paired segment names are rewritten,
	// never resource names or unpaired trailing segments.
	CamelCase bool `yaml:"camel_case"`
	// Debug enables verbose HTTP request/response logging when a Logger is
	// provided.
	Debug bool `yaml:"debug"`
	// FatalErrors: when true, 4xx/5xx responses are returned as *APIError.
	FatalErrors bool `yaml:"fatal_errors"`

	// RetryMax: maximum number of retries for transient failures. If 0, a
	// library default is used.
	RetryMax int `yaml:"retry_max"`
	// RetryWaitMin: minimum backoff between retries.
	RetryWaitMin time.Duration `yaml:"retry_wait_min"`
	// RetryWaitMax: maximum backoff between retries.
	RetryWaitMax time.Duration `yaml:"retry_wait_max"`
	// HTTPTimeout: timeout applied to each underlying HTTP attempt.
	HTTPTimeout time.Duration `yaml:"http_timeout"`

	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger `yaml:"-"`
}
