package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fourleaf-io/trello-client/pkg/trello"
)

func TestNew(t *testing.T) {
	t.Parallel()

	t.Run("nil config", func(t *testing.T) {
		t.Parallel()

		client, err := New(nil)
		assert.Nil(t, client)
		assert.ErrorIs(t, err, trello.ErrConfigRequired)
	})

	t.Run("missing base URL", func(t *testing.T) {
		t.Parallel()

		client, err := New(&trello.Config{Key: "K"})
		assert.Nil(t, client)
		assert.ErrorIs(t, err, trello.ErrBaseURLRequired)
	})

	t.Run("version defaults to 1", func(t *testing.T) {
		t.Parallel()

		client, err := New(&trello.Config{BaseURL: "https://api.trello.com", Key: "K"})
		require.NoError(t, err)
		assert.Equal(t, "/1", client.Path())
	})

	t.Run("custom version", func(t *testing.T) {
		t.Parallel()

		client, err := New(&trello.Config{BaseURL: "https://api.trello.com", Key: "K", Version: "2"})
		require.NoError(t, err)
		assert.Equal(t, "/2", client.Path())
	})

	t.Run("config is copied", func(t *testing.T) {
		t.Parallel()

		config := &trello.Config{BaseURL: "https://api.trello.com", Key: "K", CamelCase: true}

		client, err := New(config)
		require.NoError(t, err)

		config.CamelCase = false

		resource := client.Resource("cards", "due_date", "x")
		assert.Equal(t, "/1/cards/dueDate/x", resource.Path())
	})
}

func TestClient_NamedWrappers(t *testing.T) {
	t.Parallel()

	client, err := New(&trello.Config{BaseURL: "https://api.trello.com", Key: "K"})
	require.NoError(t, err)

	tests := []struct {
		name     string
		resource trello.Resource
		expected string
	}{
		{"Actions", client.Actions("id1"), "/1/actions/id1"},
		{"Batch", client.Batch(), "/1/batch"},
		{"Boards", client.Boards("id1"), "/1/boards/id1"},
		{"Cards", client.Cards(), "/1/cards"},
		{"Checklists", client.Checklists("id1"), "/1/checklists/id1"},
		{"Enterprises", client.Enterprises("id1"), "/1/enterprises/id1"},
		{"Labels", client.Labels("id1"), "/1/labels/id1"},
		{"Lists", client.Lists("id1"), "/1/lists/id1"},
		{"Members", client.Members("me"), "/1/members/me"},
		{"Notifications", client.Notifications(), "/1/notifications"},
		{"Organizations", client.Organizations("id1"), "/1/organizations/id1"},
		{"Search", client.Search(), "/1/search"},
		{"Tokens", client.Tokens("id1"), "/1/tokens/id1"},
		{"Types", client.Types("id1"), "/1/types/id1"},
		{"Webhooks", client.Webhooks("id1"), "/1/webhooks/id1"},
	}

	// One wrapper per well-known resource, no more, no fewer.
	assert.Len(t, tests, len(trello.ResourceNames))

	for _, testCase := range tests {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			require.NoError(t, testCase.resource.Err())
			assert.Equal(t, testCase.expected, testCase.resource.Path())
		})
	}
}
