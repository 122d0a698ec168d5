package accido_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rduo1009/vocab-tuister/accido"
)

func TestRegularWord_SingleForm(t *testing.T) {
	w, err := accido.MakeRegularWord("sed", accido.Meanings{"but"})
	require.NoError(t, err)

	forms, err := w.Get(accido.EndingKey{})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"sed"}, forms)

	_, err = w.Get(accido.EndingKey{Case: accido.Nominative})
	require.Error(t, err)
	assert.Equal(t, "NoEndingError", accido.ErrorKind(err))

	assert.Equal(t, []accido.EndingKey{{}}, w.FindKeys("sed"))
	assert.Nil(t, w.FindKeys("nonexistent"))
}

func TestMakeRegularWord_RejectsEmpty(t *testing.T) {
	_, err := accido.MakeRegularWord("", accido.Meanings{"x"})
	require.Error(t, err)
}
