package accido_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rduo1009/vocab-tuister/accido"
)

func TestAdjective212_Paradigm(t *testing.T) {
	a, err := accido.MakeAdjective212("bonus", "bona", "bonum", accido.Meanings{"good"})
	require.NoError(t, err)
	assert.Equal(t, accido.Termination212, a.Termination())

	forms, err := a.Get(accido.EndingKey{
		Degree: accido.Positive, Case: accido.Nominative, Number: accido.Singular, Gender: accido.Feminine,
	})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"bona"}, forms)

	forms, err = a.Get(accido.EndingKey{
		Degree: accido.Comparative, Case: accido.Nominative, Number: accido.Singular, Gender: accido.Masculine,
	})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"bonior"}, forms)

	forms, err = a.Get(accido.EndingKey{
		Degree: accido.Superlative, Case: accido.Nominative, Number: accido.Singular, Gender: accido.Masculine,
	})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"bonissimus"}, forms)
}

func TestAdjective3rd_Levis32(t *testing.T) {
	// levis (m/f), leve (n): a 3-2 termination adjective (spec.md scenario 3).
	a, err := accido.MakeAdjective3rd(accido.Termination3Term2, "levis", "", "leve", "levis", accido.Meanings{"light"})
	require.NoError(t, err)

	forms, err := a.Get(accido.EndingKey{
		Degree: accido.Positive, Case: accido.Nominative, Number: accido.Singular, Gender: accido.Neuter,
	})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"leve"}, forms)

	forms, err = a.Get(accido.EndingKey{
		Degree: accido.Positive, Case: accido.Genitive, Number: accido.Singular, Gender: accido.Masculine,
	})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"levis"}, forms)
}

func TestAdjective_ErErrimusSuperlative(t *testing.T) {
	a, err := accido.MakeAdjective212("pulcher", "pulchra", "pulchrum", accido.Meanings{"beautiful"})
	require.NoError(t, err)

	forms, err := a.Get(accido.EndingKey{
		Degree: accido.Superlative, Case: accido.Nominative, Number: accido.Singular, Gender: accido.Masculine,
	})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"pulcherrimus"}, forms)
}

func TestAdjective_IllisSuperlative(t *testing.T) {
	a, err := accido.MakeAdjective3rd(accido.Termination3Term2, "facilis", "", "facile", "facilis", accido.Meanings{"easy"})
	require.NoError(t, err)

	forms, err := a.Get(accido.EndingKey{
		Degree: accido.Superlative, Case: accido.Nominative, Number: accido.Singular, Gender: accido.Masculine,
	})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"facillimus"}, forms)
}

func TestMakeAdjective212_RejectsMissingForms(t *testing.T) {
	_, err := accido.MakeAdjective212("bonus", "", "bonum", accido.Meanings{"good"})
	require.Error(t, err)
	assert.Equal(t, "InvalidInputError", accido.ErrorKind(err))
}
