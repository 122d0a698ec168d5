package accido_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rduo1009/vocab-tuister/accido"
)

func TestDetectConjugation(t *testing.T) {
	tests := []struct {
		name       string
		present    string
		infinitive string
		deponent   bool
		want       accido.Conjugation
	}{
		{"first", "amo", "amare", false, accido.FirstConj},
		{"second", "moneo", "monere", false, accido.SecondConj},
		{"third", "duco", "ducere", false, accido.ThirdConj},
		{"mixed (capio)", "capio", "capere", false, accido.MixedConj},
		{"fourth", "audio", "audire", false, accido.FourthConj},
		{"first deponent", "conor", "conari", true, accido.FirstConj},
		{"third deponent", "sequor", "sequi", true, accido.ThirdConj},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v, err := accido.MakeVerb(tt.present, tt.infinitive, "", "", accido.Meanings{"x"}, tt.deponent)
			require.NoError(t, err)
			assert.Equal(t, tt.want, v.Conjugation())
		})
	}
}

func TestVerb_CapioParadigm(t *testing.T) {
	v, err := accido.MakeVerb("capio", "capere", "cepi", "captus", accido.Meanings{"take"}, false)
	require.NoError(t, err)
	assert.Equal(t, accido.MixedConj, v.Conjugation())

	forms, err := v.Get(accido.EndingKey{
		Tense: accido.Present, Voice: accido.Active, Mood: accido.Indicative,
		Person: accido.First, Number: accido.Singular,
	})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"capio"}, forms)

	forms, err = v.Get(accido.EndingKey{
		Tense: accido.Present, Voice: accido.Active, Mood: accido.Indicative,
		Person: accido.Third, Number: accido.Plural,
	})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"capiunt"}, forms)

	perfForms, err := v.Get(accido.EndingKey{
		Tense: accido.Perfect, Voice: accido.Active, Mood: accido.Indicative,
		Person: accido.First, Number: accido.Singular,
	})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"cepi"}, perfForms)
}

func TestVerb_PassivePerfectPeriphrasis(t *testing.T) {
	v, err := accido.MakeVerb("amo", "amare", "amavi", "amatus", accido.Meanings{"love"}, false)
	require.NoError(t, err)

	forms, err := v.Get(accido.EndingKey{
		Tense: accido.Perfect, Voice: accido.Passive, Mood: accido.Indicative,
		Person: accido.Third, Number: accido.Singular,
	})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"amatus est"}, forms)
}

func TestVerb_DeponentActiveSenseMorphology(t *testing.T) {
	v, err := accido.MakeVerb("conor", "conari", "", "conatus", accido.Meanings{"try"}, true)
	require.NoError(t, err)
	assert.True(t, v.Deponent())

	// present system is passive-shaped
	forms, err := v.Get(accido.EndingKey{
		Tense: accido.Present, Voice: accido.Passive, Mood: accido.Indicative,
		Person: accido.First, Number: accido.Singular,
	})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"conor"}, forms)

	// perfect system is stored as Active for the deponent's active sense
	perfForms, err := v.Get(accido.EndingKey{
		Tense: accido.Perfect, Voice: accido.Active, Mood: accido.Indicative,
		Person: accido.Third, Number: accido.Singular,
	})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"conatus est"}, perfForms)
}

func TestVerb_Infinitives(t *testing.T) {
	v, err := accido.MakeVerb("amo", "amare", "amavi", "amatus", accido.Meanings{"love"}, false)
	require.NoError(t, err)

	forms, err := v.Get(accido.EndingKey{Tense: accido.Present, Voice: accido.Active, Mood: accido.Infinitive})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"amare"}, forms)

	forms, err = v.Get(accido.EndingKey{Tense: accido.Perfect, Voice: accido.Active, Mood: accido.Infinitive})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"amavisse"}, forms)
}

func TestVerb_Gerund(t *testing.T) {
	v, err := accido.MakeVerb("amo", "amare", "amavi", "amatus", accido.Meanings{"love"}, false)
	require.NoError(t, err)

	forms, err := v.Get(accido.EndingKey{Mood: accido.Gerund, Case: accido.Genitive})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"amandi"}, forms)
}

func TestVerb_PresentParticiple(t *testing.T) {
	v, err := accido.MakeVerb("amo", "amare", "amavi", "amatus", accido.Meanings{"love"}, false)
	require.NoError(t, err)

	forms, err := v.Get(accido.EndingKey{
		Tense: accido.Present, Voice: accido.Active, Mood: accido.Participle,
		Case: accido.Nominative, Number: accido.Singular, Gender: accido.Masculine,
	})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"amans"}, forms)

	forms, err = v.Get(accido.EndingKey{
		Tense: accido.Present, Voice: accido.Active, Mood: accido.Participle,
		Case: accido.Genitive, Number: accido.Singular, Gender: accido.Feminine,
	})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"amantis"}, forms)
}

func TestMakeVerb_RejectsUnrecognisedPrincipalParts(t *testing.T) {
	_, err := accido.MakeVerb("xyz", "xyzzy", "", "", accido.Meanings{"nonsense"}, false)
	require.Error(t, err)
	assert.Equal(t, "InvalidInputError", accido.ErrorKind(err))
}

func TestMakeNamedIrregularVerb_Sum(t *testing.T) {
	v, err := accido.MakeNamedIrregularVerb("sum", accido.Meanings{"be"})
	require.NoError(t, err)
	assert.Equal(t, accido.IrregularConj, v.Conjugation())

	forms, err := v.Get(accido.EndingKey{
		Tense: accido.Present, Voice: accido.Active, Mood: accido.Indicative,
		Person: accido.Third, Number: accido.Singular,
	})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"est"}, forms)

	// perfect is built from the regular active perfect path (fui, fuisti...)
	perfForms, err := v.Get(accido.EndingKey{
		Tense: accido.Perfect, Voice: accido.Active, Mood: accido.Indicative,
		Person: accido.First, Number: accido.Singular,
	})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"fui"}, perfForms)
}

func TestMakeNamedIrregularVerb_Fero(t *testing.T) {
	v, err := accido.MakeNamedIrregularVerb("fero", accido.Meanings{"carry"})
	require.NoError(t, err)

	active, err := v.Get(accido.EndingKey{
		Tense: accido.Present, Voice: accido.Active, Mood: accido.Indicative,
		Person: accido.Third, Number: accido.Singular,
	})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"fert"}, active)

	passive, err := v.Get(accido.EndingKey{
		Tense: accido.Present, Voice: accido.Passive, Mood: accido.Indicative,
		Person: accido.Third, Number: accido.Singular,
	})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"fertur"}, passive)

	perfActive, err := v.Get(accido.EndingKey{
		Tense: accido.Perfect, Voice: accido.Active, Mood: accido.Indicative,
		Person: accido.First, Number: accido.Singular,
	})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"tuli"}, perfActive)

	// ppp-derived passive perfect periphrasis is still built alongside the
	// active perfect, since fero/tuli/latus carries both principal parts.
	perfPassive, err := v.Get(accido.EndingKey{
		Tense: accido.Perfect, Voice: accido.Passive, Mood: accido.Indicative,
		Person: accido.Third, Number: accido.Singular,
	})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"latus est"}, perfPassive)
}

func TestMakeNamedIrregularVerb_UnrecognisedHeadword(t *testing.T) {
	_, err := accido.MakeNamedIrregularVerb("amo", accido.Meanings{"love"})
	require.Error(t, err)
	assert.Equal(t, "InvalidInputError", accido.ErrorKind(err))
}

func TestMakeSemiDeponentVerb_AudeoMorphology(t *testing.T) {
	v, err := accido.MakeSemiDeponentVerb("audeo", "audere", "ausus", accido.Meanings{"dare"})
	require.NoError(t, err)
	assert.False(t, v.Deponent(), "semi-deponent verb reports Deponent()==false: its present system is already active-shaped")

	// present system is active-shaped, same as an ordinary active verb
	present, err := v.Get(accido.EndingKey{
		Tense: accido.Present, Voice: accido.Active, Mood: accido.Indicative,
		Person: accido.First, Number: accido.Singular,
	})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"audeo"}, present)

	// perfect system is built from ppp alone, active-sense periphrasis
	perf, err := v.Get(accido.EndingKey{
		Tense: accido.Perfect, Voice: accido.Active, Mood: accido.Indicative,
		Person: accido.Third, Number: accido.Singular,
	})
	require.NoError(t, err)
	assert.Equal(t, accido.EndingValue{"ausus est"}, perf)
}
