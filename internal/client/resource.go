package client

import (
	"context"
	"fmt"
	nethttp "net/http"
	"regexp"
	"strings"

	"github.com/fourleaf-io/trello-client/internal/http"
	"github.com/fourleaf-io/trello-client/pkg/trello"
)

// Resource implements trello.Resource. Instances are immutable: every descend
// allocates a new Resource carrying a fully resolved path, so a parent is
// never affected by its children and may be shared across goroutines.
type Resource struct {
	httpClient *http.Client
	config     trello.Config
	path       string
	err        error
}

// camelSegment matches an underscore followed by a lowercase letter. This is
// deliberately narrower than general snake_case handling (leading digits and
// double underscores pass through); Trello parameter names all fit this shape.
var camelSegment = regexp.MustCompile("_[a-z]")

func camelCase(segment string) string {
	return camelSegment.ReplaceAllStringFunc(segment, func(match string) string {
		return strings.ToUpper(match[1:])
	})
}

var verbs = map[string]struct{}{
	nethttp.MethodGet:     {},
	nethttp.MethodPost:    {},
	nethttp.MethodPut:     {},
	nethttp.MethodDelete:  {},
	nethttp.MethodHead:    {},
	nethttp.MethodOptions: {},
	nethttp.MethodPatch:   {},
}

// descend resolves the child path for name and segments. A poisoned parent
// propagates its error; a malformed call poisons the child.
func descend(parent *Resource, name string, segments []string) *Resource {
	child := &Resource{
		httpClient: parent.httpClient,
		config:     parent.config,
		path:       parent.path,
		err:        parent.err,
	}

	if child.err != nil {
		return child
	}

	if name == "" {
		child.err = fmt.Errorf("descending from %q: %w", parent.path, trello.ErrEmptyResourceName)

		return child
	}

	parts := make([]string, 0, len(segments)+2)
	parts = append(parts, parent.path, name)

	i := 0
	for ; i+1 < len(segments); i += 2 {
		segment, value := segments[i], segments[i+1]
		if segment == "" {
			child.err = fmt.Errorf("descending into %q: %w", name, trello.ErrEmptySegment)

			return child
		}

		if child.config.CamelCase {
			segment = camelCase(segment)
		}

		parts = append(parts, segment, value)
	}

	// A trailing unpaired segment is appended verbatim, never camelCased.
	if i < len(segments) {
		segment := segments[i]
		if segment == "" {
			child.err = fmt.Errorf("descending into %q: %w", name, trello.ErrEmptySegment)

			return child
		}

		parts = append(parts, segment)
	}

	child.path = strings.Join(parts, "/")

	return child
}

// Resource implements trello.Resource.Resource.
func (r *Resource) Resource(name string, segments ...string) trello.Resource {
	return descend(r, name, segments)
}

// Path implements trello.Resource.Path.
func (r *Resource) Path() string {
	return r.path
}

// Err implements trello.Resource.Err.
func (r *Resource) Err() error {
	return r.err
}

// Action implements trello.Resource.Action. The verb is upper-cased and
// forwarded together with the caller's query and data; transport results and
// errors are returned unmodified.
func (r *Resource) Action(ctx context.Context, verb string, opts *trello.CallOptions) (*trello.Result, error) {
	if r.err != nil {
		return nil, r.err
	}

	if verb == "" {
		verb = nethttp.MethodGet
	}

	verb = strings.ToUpper(verb)
	if _, ok := verbs[verb]; !ok {
		return nil, fmt.Errorf("dispatching %q: %w %q", r.path, trello.ErrUnsupportedVerb, verb)
	}

	req := &http.Request{
		Method: verb,
		Path:   r.path,
	}

	if opts != nil {
		req.Query = opts.Query
		req.Body = opts.Data
	}

	resp, err := r.httpClient.Do(ctx, req)
	if resp == nil {
		return nil, err
	}

	result := &trello.Result{
		Body: resp.Body,
		Response: &trello.Response{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
			Error:      err,
		},
	}

	return result, err
}

// Create implements trello.Resource.Create.
func (r *Resource) Create(ctx context.Context, opts *trello.CallOptions) (*trello.Result, error) {
	return r.Action(ctx, nethttp.MethodPost, opts)
}

// Fetch implements trello.Resource.Fetch.
func (r *Resource) Fetch(ctx context.Context, opts *trello.CallOptions) (*trello.Result, error) {
	return r.Action(ctx, nethttp.MethodGet, opts)
}

// Update implements trello.Resource.Update.
func (r *Resource) Update(ctx context.Context, opts *trello.CallOptions) (*trello.Result, error) {
	return r.Action(ctx, nethttp.MethodPut, opts)
}

// Delete implements trello.Resource.Delete.
func (r *Resource) Delete(ctx context.Context, opts *trello.CallOptions) (*trello.Result, error) {
	return r.Action(ctx, nethttp.MethodDelete, opts)
}
