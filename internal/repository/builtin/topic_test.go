package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicRepo_LoadTopics(t *testing.T) {
	repo := NewTopicRepo()

	topics, err := repo.LoadTopics()
	require.NoError(t, err)
	assert.NotEmpty(t, topics)

	for name, pairs := range topics {
		assert.NotEmpty(t, name)
		assert.NotEmpty(t, pairs, name)
		for _, p := range pairs {
			assert.True(t, p.Valid(), "%s: %+v", name, p)
		}
	}
}

func TestTopicRepo_ReturnsCopy(t *testing.T) {
	repo := NewTopicRepo()

	first, err := repo.LoadTopics()
	require.NoError(t, err)
	first["uni_life"][0].English = "changed"
	delete(first, "travel")

	second, err := repo.LoadTopics()
	require.NoError(t, err)
	assert.Equal(t, "lecture", second["uni_life"][0].English)
	assert.Contains(t, second, "travel")
}
