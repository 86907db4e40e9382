package trello_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fourleaf-io/trello-client/pkg/trello"
)

func TestResourceNames(t *testing.T) {
	t.Parallel()

	assert.True(t, sort.StringsAreSorted(trello.ResourceNames))

	seen := make(map[string]bool, len(trello.ResourceNames))
	for _, name := range trello.ResourceNames {
		assert.False(t, seen[name], "duplicate resource name %q", name)
		assert.NotEmpty(t, name)
		seen[name] = true
	}
}
