package transfero_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rduo1009/vocab-tuister/accido"
	"github.com/rduo1009/vocab-tuister/transfero"
)

func TestRuleMorph_SingularIsBareLemma(t *testing.T) {
	m := transfero.NewRuleMorph(nil)
	forms, err := m.Inflect("house", accido.Singular)
	require.NoError(t, err)
	assert.Equal(t, []string{"house"}, forms)
}

func TestRuleMorph_IrregularPlural(t *testing.T) {
	m := transfero.NewRuleMorph(nil)
	forms, err := m.Inflect("child", accido.Plural)
	require.NoError(t, err)
	assert.Equal(t, []string{"children"}, forms)
}

func TestRuleMorph_MechanicalPluralRules(t *testing.T) {
	m := transfero.NewRuleMorph(nil)

	cases := map[string]string{
		"city": "cities",
		"fox":  "foxes",
		"wife": "wives",
		"king": "kings",
	}
	for lemma, want := range cases {
		t.Run(lemma, func(t *testing.T) {
			forms, err := m.Inflect(lemma, accido.Plural)
			require.NoError(t, err)
			assert.Equal(t, []string{want}, forms)
		})
	}
}

func TestRuleMorph_RegisterIrregularPlural(t *testing.T) {
	m := transfero.NewRuleMorph(nil)
	m.RegisterIrregularPlural("ox", "oxen")

	forms, err := m.Inflect("ox", accido.Plural)
	require.NoError(t, err)
	assert.Equal(t, []string{"oxen"}, forms)
}

func TestRuleMorph_AdjToAdvOverride(t *testing.T) {
	m := transfero.NewRuleMorph(map[string]string{"bonus": "bene"})

	adv, ok := m.AdjToAdv("bonus")
	assert.True(t, ok)
	assert.Equal(t, "bene", adv)

	_, ok = m.AdjToAdv("laetus")
	assert.False(t, ok)
}
