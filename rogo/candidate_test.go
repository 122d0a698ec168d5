package rogo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rduo1009/vocab-tuister/lego"
	"github.com/rduo1009/vocab-tuister/rogo"
)

func mustReadList(t *testing.T, text string) *lego.VocabList {
	t.Helper()
	list, err := lego.ReadList([]byte(text))
	require.NoError(t, err)
	return list
}

func TestBuildPool_CoversEveryDistinctKey(t *testing.T) {
	list := mustReadList(t, "@ Noun\nfarmer: agricola, agricolae, (m)\n")
	pool := rogo.BuildPool(list)
	assert.NotEmpty(t, pool)

	seen := map[string]bool{}
	for _, c := range pool {
		seen[c.Key.String()] = true
	}
	assert.True(t, seen["nominative plural"])
	assert.True(t, seen["genitive singular"])
}

func TestFilterPool_ExcludesWholePartOfSpeech(t *testing.T) {
	list := mustReadList(t, "@ Noun\nfarmer: agricola, agricolae, (m)\n\n@ Verb\ntake: capio, capere, cepi, captus\n")
	pool := rogo.BuildPool(list)

	settings, err := rogo.ParseSettings(map[string]interface{}{
		"number-of-questions":           5.0,
		"number-multiplechoice-options": 4.0,
		"exclude-nouns":                  true,
	})
	require.NoError(t, err)

	filtered := rogo.FilterPool(pool, settings)
	require.NotEmpty(t, filtered)
	for _, c := range filtered {
		assert.NotEqual(t, "agricola", c.Entity().Headword())
	}
}

func TestFilterPool_ExcludesGrammaticalCell(t *testing.T) {
	list := mustReadList(t, "@ Noun\nfarmer: agricola, agricolae, (m)\n")
	pool := rogo.BuildPool(list)

	settings, err := rogo.ParseSettings(map[string]interface{}{
		"number-of-questions":           5.0,
		"number-multiplechoice-options": 4.0,
		"exclude-number-plural":          true,
	})
	require.NoError(t, err)

	filtered := rogo.FilterPool(pool, settings)
	for _, c := range filtered {
		assert.NotEqual(t, "plural", c.Key.Number.String())
	}
}

func TestFilterPool_ExcludesVerbSubcategory(t *testing.T) {
	list := mustReadList(t, "@ Verb\ntry: conor, conari, conatus sum\n")
	pool := rogo.BuildPool(list)

	settings, err := rogo.ParseSettings(map[string]interface{}{
		"number-of-questions":           5.0,
		"number-multiplechoice-options": 4.0,
		"exclude-verb-deponent":          true,
	})
	require.NoError(t, err)

	filtered := rogo.FilterPool(pool, settings)
	assert.Empty(t, filtered)
}
