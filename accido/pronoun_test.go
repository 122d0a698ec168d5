package accido_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rduo1009/vocab-tuister/accido"
)

func TestPronoun_HicHaecHoc_GenitivePluralFeminine(t *testing.T) {
	// spec.md scenario 5: genitive plural feminine of hic/haec/hoc is "harum".
	p, err := accido.MakePronoun(accido.PronounHicHaecHoc, accido.Meanings{"this"})
	require.NoError(t, err)
	assert.Equal(t, "hic", p.Headword())

	forms, err := p.Get(accido.EndingKey{Case: accido.Genitive, Number: accido.Plural, Gender: accido.Feminine})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"harum"}, forms)
}

func TestPronoun_FindKeys(t *testing.T) {
	p, err := accido.MakePronoun(accido.PronounIsEaId, accido.Meanings{"he/she/it"})
	require.NoError(t, err)

	keys := p.FindKeys("eius")
	require.Len(t, keys, 3) // genitive singular, all three genders share "eius"
}

func TestMakePronoun_RejectsUnsupportedKind(t *testing.T) {
	_, err := accido.MakePronoun(accido.PronounKindUnknown, accido.Meanings{"x"})
	require.Error(t, err)
}
