package transfero_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rduo1009/vocab-tuister/accido"
	"github.com/rduo1009/vocab-tuister/transfero"
)

func TestFindInflections_NounCaseProduct(t *testing.T) {
	morph := transfero.NewRuleMorph(nil)
	key := accido.EndingKey{Case: accido.Ablative, Number: accido.Singular}

	forms, err := transfero.FindInflections(transfero.POSNoun, "farmer", key, false, morph)
	require.NoError(t, err)

	assert.Contains(t, forms, "by a farmer")
	assert.Contains(t, forms, "with the farmer")
	assert.Contains(t, forms, "by means of farmer")
}

func TestFindInflections_DeponentVerbIsAlwaysActive(t *testing.T) {
	morph := transfero.NewRuleMorph(nil)
	key := accido.EndingKey{
		Tense: accido.Present, Voice: accido.Passive, Mood: accido.Indicative,
		Person: accido.Third, Number: accido.Singular,
	}

	deponentForms, err := transfero.FindInflections(transfero.POSVerb, "try", key, true, morph)
	require.NoError(t, err)
	for _, f := range deponentForms {
		assert.NotContains(t, f, "is tryed")
		assert.NotContains(t, f, "being")
	}

	ordinaryForms, err := transfero.FindInflections(transfero.POSVerb, "try", key, false, morph)
	require.NoError(t, err)
	assert.NotEqual(t, deponentForms, ordinaryForms)
}

func TestFindInflections_ResultsAreSortedAndDeduped(t *testing.T) {
	morph := transfero.NewRuleMorph(nil)
	key := accido.EndingKey{Degree: accido.Superlative}

	forms, err := transfero.FindInflections(transfero.POSAdjective, "big", key, false, morph)
	require.NoError(t, err)
	require.NotEmpty(t, forms)

	sorted := append([]string{}, forms...)
	assert.True(t, isSorted(sorted))

	seen := make(map[string]bool)
	for _, f := range forms {
		assert.False(t, seen[f], "duplicate form %q", f)
		seen[f] = true
	}
}

func TestFindMainInflection_IsFirstOfSortedSet(t *testing.T) {
	morph := transfero.NewRuleMorph(nil)
	key := accido.EndingKey{Case: accido.Nominative, Number: accido.Singular}

	all, err := transfero.FindInflections(transfero.POSNoun, "house", key, false, morph)
	require.NoError(t, err)

	main, err := transfero.FindMainInflection(transfero.POSNoun, "house", key, false, morph)
	require.NoError(t, err)
	assert.Equal(t, all[0], main)
}

func TestFindSynonyms_UnknownWordIsEmptyNotError(t *testing.T) {
	syns, err := transfero.FindSynonyms("zzzznotaword", transfero.DefaultSynonyms())
	require.NoError(t, err)
	assert.Empty(t, syns)
}

func TestFindSynonyms_KnownWordIsSortedAndDeduped(t *testing.T) {
	syns, err := transfero.FindSynonyms("big", transfero.DefaultSynonyms())
	require.NoError(t, err)
	assert.NotEmpty(t, syns)
	assert.True(t, isSorted(syns))
}

func isSorted(s []string) bool {
	for i := 1; i < len(s); i++ {
		if s[i-1] > s[i] {
			return false
		}
	}
	return true
}
