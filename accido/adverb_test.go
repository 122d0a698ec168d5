package accido_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rduo1009/vocab-tuister/accido"
)

func TestDeriveAdverbPositive(t *testing.T) {
	tests := []struct {
		name        string
		adjNomMasc  string
		termination accido.Termination
		obliqueStem string
		want        string
	}{
		{"212 laetus", "laetus", accido.Termination212, "", "laete"},
		{"3rd fortis", "fortis", accido.Termination3Term2, "fort", "fortiter"},
		{"3rd -nt sapiens", "sapiens", accido.Termination3Term1, "sapient", "sapienter"},
		{"irregular bonus/bene", "bonus", accido.Termination212, "", "bene"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accido.DeriveAdverbPositive(tt.adjNomMasc, tt.termination, tt.obliqueStem)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMakeAdverb_Laete(t *testing.T) {
	adv, err := accido.MakeAdverb("laete", "laetus", accido.Termination212, "", accido.Meanings{"happily"})
	require.NoError(t, err)

	forms, err := adv.Get(accido.EndingKey{Degree: accido.Positive})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"laete"}, forms)

	forms, err = adv.Get(accido.EndingKey{Degree: accido.Comparative})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"laetius"}, forms)

	forms, err = adv.Get(accido.EndingKey{Degree: accido.Superlative})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"laetissime"}, forms)
}

func TestMakeAdverb_RejectsEmptyPositive(t *testing.T) {
	_, err := accido.MakeAdverb("", "laetus", accido.Termination212, "", accido.Meanings{"happily"})
	require.Error(t, err)
}
