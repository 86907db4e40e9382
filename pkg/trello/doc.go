// Package trello provides types, interfaces, and helpers for working with the
// Trello REST API through a generic, auto-routing client.
//
// # Overview
//
// The trello package defines the Client and Resource interfaces, the Config
// used to construct a client, the error types returned by the API, and
// request/response interceptors. A concrete implementation is provided by the
// trelloclient package, which wires configuration, transport, and credential
// injection. Most consumers should import trelloclient to construct a client
// and then chain resources through the interfaces exposed here.
//
// The client is a thin pass-through: it builds resource paths and dispatches
// HTTP verbs, and returns response bodies without interpreting them. There are
// no endpoint-specific methods; any Trello route is reachable by chaining.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fourleaf-io/trello-client/pkg/trello"
//	  "github.com/fourleaf-io/trello-client/pkg/trelloclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := trelloclient.NewWithKeyToken("app-key", "member-token")
//	  if err != nil { log.Fatal(err) }
//
//	  // GET /1/boards/4d5ea62fd76aa1136000000c
//	  res, err := cli.Boards("4d5ea62fd76aa1136000000c").Fetch(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = res.Body
//	}
//
// # Resource chaining
//
// Resource produces a new, more specifically-scoped instance; the parent is
// never mutated, so concurrent callers may descend from a shared client
// safely. Segments after the resource name are interpreted as segment/value
// pairs; when Config.CamelCase is set, paired segment names are rewritten from
// snake_case ("due_date" becomes "dueDate"). A trailing unpaired segment is
// appended verbatim.
//
//	// GET /1/boards/<id>/cards/open
//	cli.Resource("boards", "4d5ea62fd76a").Resource("cards", "open").Fetch(ctx, nil)
//
// # Dispatch
//
// Action issues an arbitrary verb against the scoped path; Create, Fetch,
// Update, and Delete are shorthands for POST, GET, PUT, and DELETE. The
// configured key (and token, if present) are merged into the query of every
// request; caller-supplied values for those parameters are never overwritten.
//
// # Errors
//
// API errors are represented by APIError when Config.FatalErrors is enabled;
// helpers such as IsNotFound, IsUnauthorized, and IsRateLimited make it easy
// to branch on common cases. Malformed chaining calls surface as wrapped
// ErrEmptyResourceName, ErrEmptySegment, or ErrUnsupportedVerb.
package trello
