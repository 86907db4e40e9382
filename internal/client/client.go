// Package client implements the trello.Client interface: the resource router
// plus transport wiring.
package client

import (
	"context"

	"github.com/fourleaf-io/trello-client/internal/auth"
	"github.com/fourleaf-io/trello-client/internal/constants"
	"github.com/fourleaf-io/trello-client/internal/http"
	"github.com/fourleaf-io/trello-client/pkg/trello"
)

// Client implements trello.Client. It is the root Resource scoped to the API
// version prefix, holding an immutable copy of the configuration.
type Client struct {
	root Resource
}

var (
	_ trello.Client   = (*Client)(nil)
	_ trello.Resource = (*Resource)(nil)
)

// New creates a new Trello API client from config. The config is copied;
// later mutation of the caller's value has no effect on the client.
func New(config *trello.Config) (*Client, error) {
	if config == nil {
		return nil, trello.ErrConfigRequired
	}

	if config.BaseURL == "" {
		return nil, trello.ErrBaseURLRequired
	}

	cfg := *config
	if cfg.Version == "" {
		cfg.Version = constants.DefaultAPIVersion
	}

	httpClient := http.NewClient(cfg.BaseURL, credentialSource(&cfg), httpOptions(&cfg)...)

	return &Client{
		root: Resource{
			httpClient: httpClient,
			config:     cfg,
			path:       "/" + cfg.Version,
		},
	}, nil
}

// credentialSource picks static credentials from the config, falling back to
// request-time environment lookup when no key is configured.
func credentialSource(config *trello.Config) auth.Source {
	if config.Key == "" && config.Token == "" {
		return auth.FromEnv()
	}

	return auth.NewStatic(config.Key, config.Token)
}

// httpOptions builds transport options from config.
func httpOptions(config *trello.Config) []http.Option {
	opts := []http.Option{
		http.WithFatalErrors(config.FatalErrors),
	}

	if config.Logger != nil {
		opts = append(opts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		opts = append(opts, http.WithDebug(true))
	}

	if config.Identifier != "" {
		opts = append(opts, http.WithUserAgent(config.Identifier))
	}

	if config.HTTPTimeout > 0 {
		opts = append(opts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		waitMin := constants.DefaultRetryWaitMin
		waitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			waitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			waitMax = config.RetryWaitMax
		}

		opts = append(opts, http.WithRetryConfig(config.RetryMax, waitMin, waitMax))
	}

	return opts
}

// Resource implements trello.Resource.Resource.
func (c *Client) Resource(name string, segments ...string) trello.Resource {
	return c.root.Resource(name, segments...)
}

// Path implements trello.Resource.Path.
func (c *Client) Path() string {
	return c.root.Path()
}

// Err implements trello.Resource.Err.
func (c *Client) Err() error {
	return c.root.Err()
}

// Action implements trello.Resource.Action against the version root.
func (c *Client) Action(ctx context.Context, verb string, opts *trello.CallOptions) (*trello.Result, error) {
	return c.root.Action(ctx, verb, opts)
}

// Create implements trello.Resource.Create.
func (c *Client) Create(ctx context.Context, opts *trello.CallOptions) (*trello.Result, error) {
	return c.root.Create(ctx, opts)
}

// Fetch implements trello.Resource.Fetch.
func (c *Client) Fetch(ctx context.Context, opts *trello.CallOptions) (*trello.Result, error) {
	return c.root.Fetch(ctx, opts)
}

// Update implements trello.Resource.Update.
func (c *Client) Update(ctx context.Context, opts *trello.CallOptions) (*trello.Result, error) {
	return c.root.Update(ctx, opts)
}

// Delete implements trello.Resource.Delete.
func (c *Client) Delete(ctx context.Context, opts *trello.CallOptions) (*trello.Result, error) {
	return c.root.Delete(ctx, opts)
}

// Named resource wrappers over the static well-known resource list.

// Actions implements trello.Client.Actions.
func (c *Client) Actions(segments ...string) trello.Resource {
	return c.Resource("actions", segments...)
}

// Batch implements trello.Client.Batch.
func (c *Client) Batch(segments ...string) trello.Resource {
	return c.Resource("batch", segments...)
}

// Boards implements trello.Client.Boards.
func (c *Client) Boards(segments ...string) trello.Resource {
	return c.Resource("boards", segments...)
}

// Cards implements trello.Client.Cards.
func (c *Client) Cards(segments ...string) trello.Resource {
	return c.Resource("cards", segments...)
}

// Checklists implements trello.Client.Checklists.
func (c *Client) Checklists(segments ...string) trello.Resource {
	return c.Resource("checklists", segments...)
}

// Enterprises implements trello.Client.Enterprises.
func (c *Client) Enterprises(segments ...string) trello.Resource {
	return c.Resource("enterprises", segments...)
}

// Labels implements trello.Client.Labels.
func (c *Client) Labels(segments ...string) trello.Resource {
	return c.Resource("labels", segments...)
}

// Lists implements trello.Client.Lists.
func (c *Client) Lists(segments ...string) trello.Resource {
	return c.Resource("lists", segments...)
}

// Members implements trello.Client.Members.
func (c *Client) Members(segments ...string) trello.Resource {
	return c.Resource("members", segments...)
}

// Notifications implements trello.Client.Notifications.
func (c *Client) Notifications(segments ...string) trello.Resource {
	return c.Resource("notifications", segments...)
}

// Organizations implements trello.Client.Organizations.
func (c *Client) Organizations(segments ...string) trello.Resource {
	return c.Resource("organizations", segments...)
}

// Search implements trello.Client.Search.
func (c *Client) Search(segments ...string) trello.Resource {
	return c.Resource("search", segments...)
}

// Tokens implements trello.Client.Tokens.
func (c *Client) Tokens(segments ...string) trello.Resource {
	return c.Resource("tokens", segments...)
}

// Types implements trello.Client.Types.
func (c *Client) Types(segments ...string) trello.Resource {
	return c.Resource("types", segments...)
}

// Webhooks implements trello.Client.Webhooks.
func (c *Client) Webhooks(segments ...string) trello.Resource {
	return c.Resource("webhooks", segments...)
}
