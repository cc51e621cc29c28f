package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCatalog(t *testing.T) {
	source := map[string][]WordPair{
		"uni_life": {
			{English: "lecture", Chinese: "讲座"},
			{English: " ", Chinese: "空"},
			{English: "tutor ", Chinese: " 导师"},
		},
		"airport": {
			{English: "gate", Chinese: "登机口"},
		},
		"empty": {
			{English: "", Chinese: ""},
		},
	}

	catalog := NewCatalog(source)

	assert.Equal(t, 2, catalog.Len())
	assert.Equal(t, []string{"airport", "uni_life"}, catalog.Names())

	topic, ok := catalog.Get("uni_life")
	require.True(t, ok)
	assert.Equal(t, []WordPair{
		{English: "lecture", Chinese: "讲座"},
		{English: "tutor", Chinese: "导师"},
	}, topic.Pairs)

	_, ok = catalog.Get("empty")
	assert.False(t, ok)
}

func TestCatalog_NamesIsACopy(t *testing.T) {
	catalog := NewCatalog(map[string][]WordPair{
		"a": {{English: "a", Chinese: "甲"}},
	})

	names := catalog.Names()
	names[0] = "changed"

	assert.Equal(t, []string{"a"}, catalog.Names())
}

func TestRound_Summary(t *testing.T) {
	r := &Round{Pairs: make([]WordPair, 4), Score: 3}
	assert.Equal(t, 4, r.Total())
	assert.Equal(t, "3 / 4", r.Summary())
}

func TestStateData_Reset(t *testing.T) {
	s := &StateData{
		State:     StateQuizzing,
		Topic:     "uni_life",
		Pairs:     []WordPair{{English: "a", Chinese: "甲"}},
		Direction: ChineseToEnglish,
	}

	s.Reset()

	assert.Equal(t, StateData{State: StateMainMenu}, *s)
}
