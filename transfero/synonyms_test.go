package transfero_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rduo1009/vocab-tuister/transfero"
)

func TestEmbeddedSynonyms_KnownWord(t *testing.T) {
	syns, err := transfero.DefaultSynonyms().Synonyms("king")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"monarch", "sovereign", "ruler"}, syns)
}

func TestEmbeddedSynonyms_UnknownWordIsNilNotError(t *testing.T) {
	syns, err := transfero.DefaultSynonyms().Synonyms("notinthedatabase")
	require.NoError(t, err)
	assert.Nil(t, syns)
}

func TestEmbeddedSynonyms_LazyLoadIsIdempotent(t *testing.T) {
	first, err := transfero.DefaultSynonyms().Synonyms("enemy")
	require.NoError(t, err)
	second, err := transfero.DefaultSynonyms().Synonyms("enemy")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
