// Package trelloclient wires configuration, transport, and credentials into a
// ready-to-use trello.Client.
//
// The simplest construction takes an application key and member token:
//
//	cli, err := trelloclient.NewWithKeyToken("app-key", "member-token")
//
// For full control, build a trello.Config and pass it to New; for
// environment-driven setups, NewFromEnv reads TRELLO_KEY, TRELLO_TOKEN, and
// friends, plus an optional $HOME/.trello/config.yml.
package trelloclient
