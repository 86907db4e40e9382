package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fourleaf-io/trello-client/internal/auth"
)

func TestStatic_Values(t *testing.T) {
	t.Parallel()

	t.Run("key and token", func(t *testing.T) {
		t.Parallel()

		values := auth.NewStatic("test-key", "test-token").Values()
		assert.Equal(t, "test-key", values.Get("key"))
		assert.Equal(t, "test-token", values.Get("token"))
	})

	t.Run("token omitted when empty", func(t *testing.T) {
		t.Parallel()

		values := auth.NewStatic("test-key", "").Values()
		assert.Equal(t, "test-key", values.Get("key"))
		assert.False(t, values.Has("token"))
	})

	t.Run("empty credentials yield no parameters", func(t *testing.T) {
		t.Parallel()

		values := auth.NewStatic("", "").Values()
		assert.Empty(t, values)
	})
}

func TestEnv_Values(t *testing.T) {
	t.Setenv("TRELLO_KEY", "env-key")
	t.Setenv("TRELLO_TOKEN", "env-token")

	values := auth.FromEnv().Values()
	assert.Equal(t, "env-key", values.Get("key"))
	assert.Equal(t, "env-token", values.Get("token"))
}

func TestEnv_ValuesResolvedPerRequest(t *testing.T) {
	t.Setenv("TRELLO_KEY", "first")

	source := auth.FromEnv()
	assert.Equal(t, "first", source.Values().Get("key"))

	t.Setenv("TRELLO_KEY", "rotated")
	assert.Equal(t, "rotated", source.Values().Get("key"))
}
