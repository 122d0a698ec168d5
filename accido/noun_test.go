package accido_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rduo1009/vocab-tuister/accido"
)

func TestMakeNoun_DeclensionInference(t *testing.T) {
	tests := []struct {
		name   string
		nom    string
		gen    string
		gender accido.Gender
		want   accido.Declension
	}{
		{"first declension", "agricola", "agricolae", accido.Masculine, accido.FirstDeclension},
		{"second declension masc", "dominus", "domini", accido.Masculine, accido.SecondDeclension},
		{"second declension neut", "bellum", "belli", accido.Neuter, accido.SecondDeclension},
		{"third declension", "rex", "regis", accido.Masculine, accido.ThirdDeclension},
		{"fourth declension", "manus", "manus", accido.Masculine, accido.FourthDeclension},
		{"fifth declension", "res", "rei", accido.Feminine, accido.FifthDeclension},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := accido.MakeNoun(tt.nom, tt.gen, tt.gender, accido.Meanings{"x"})
			require.NoError(t, err)
			assert.Equal(t, tt.want, n.Declension())
		})
	}
}

func TestMakeNoun_FourthDeclension(t *testing.T) {
	n, err := accido.MakeNoun("manus", "manus", accido.Masculine, accido.Meanings{"hand"})
	require.NoError(t, err)
	assert.Equal(t, accido.FourthDeclension, n.Declension())

	forms, err := n.Get(accido.EndingKey{Case: accido.Dative, Number: accido.Singular})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"manui"}, forms)
}

func TestNoun_AgricolaParadigm(t *testing.T) {
	n, err := accido.MakeNoun("agricola", "agricolae", accido.Masculine, accido.Meanings{"farmer"})
	require.NoError(t, err)

	tests := []struct {
		key  accido.EndingKey
		want string
	}{
		{accido.EndingKey{Case: accido.Nominative, Number: accido.Singular}, "agricola"},
		{accido.EndingKey{Case: accido.Genitive, Number: accido.Singular}, "agricolae"},
		{accido.EndingKey{Case: accido.Dative, Number: accido.Plural}, "agricolis"},
		{accido.EndingKey{Case: accido.Accusative, Number: accido.Plural}, "agricolas"},
	}
	for _, tt := range tests {
		t.Run(tt.key.String(), func(t *testing.T) {
			forms, err := n.Get(tt.key)
			require.NoError(t, err)
			assert.Contains(t, forms, tt.want)
		})
	}
}

func TestNoun_NeuterSyncretism(t *testing.T) {
	n, err := accido.MakeNoun("bellum", "belli", accido.Neuter, accido.Meanings{"war"})
	require.NoError(t, err)

	nom, err := n.Get(accido.EndingKey{Case: accido.Nominative, Number: accido.Singular})
	require.NoError(t, err)
	acc, err := n.Get(accido.EndingKey{Case: accido.Accusative, Number: accido.Singular})
	require.NoError(t, err)
	voc, err := n.Get(accido.EndingKey{Case: accido.Vocative, Number: accido.Singular})
	require.NoError(t, err)

	assert.Equal(t, nom, acc)
	assert.Equal(t, nom, voc)
}

func TestNoun_FindKeys_RoundTrip(t *testing.T) {
	n, err := accido.MakeNoun("agricola", "agricolae", accido.Masculine, accido.Meanings{"farmer"})
	require.NoError(t, err)

	matched := true
	n.Forms(func(key accido.EndingKey, form string) bool {
		keys := n.FindKeys(form)
		found := false
		for _, k := range keys {
			if k == key {
				found = true
			}
		}
		if !found {
			matched = false
		}
		return true
	})
	assert.True(t, matched, "every recorded form must round-trip through FindKeys")
}

func TestMakeNoun_RejectsEmptyPrincipalParts(t *testing.T) {
	_, err := accido.MakeNoun("", "agricolae", accido.Masculine, accido.Meanings{"farmer"})
	require.Error(t, err)
	assert.Equal(t, "InvalidInputError", accido.ErrorKind(err))
}

func TestMakeIrregularNoun(t *testing.T) {
	table := map[accido.EndingKey]string{
		{Case: accido.Nominative, Number: accido.Singular}: "domus",
		{Case: accido.Genitive, Number: accido.Singular}:   "domus",
		{Case: accido.Ablative, Number: accido.Singular}:   "domo",
	}
	n := accido.MakeIrregularNoun("domus", accido.Feminine, accido.Meanings{"house"}, table)
	assert.Equal(t, accido.IrregularDeclension, n.Declension())

	forms, err := n.Get(accido.EndingKey{Case: accido.Ablative, Number: accido.Singular})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"domo"}, forms)
}
