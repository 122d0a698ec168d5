package rogo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rduo1009/vocab-tuister/accido"
	"github.com/rduo1009/vocab-tuister/lego"
)

func findCandidate(t *testing.T, pool []Candidate, headword string, key accido.EndingKey) Candidate {
	t.Helper()
	for _, c := range pool {
		if c.Entity().Headword() == headword && c.Key == key {
			return c
		}
	}
	t.Fatalf("no candidate for %q at %v", headword, key)
	return Candidate{}
}

// Scenario 1 (spec.md §8): agricolae is syncretic across four cells; the
// Parse question sampled at nominative plural must report every syncretic
// reading as an acceptable answer and its own cell as main_answer.
func TestGolden_ParseWordLatToComp_AgricolaeSyncretism(t *testing.T) {
	list, err := lego.ReadList([]byte("@ Noun\nfarmer: agricola, agricolae, (m)\n"))
	require.NoError(t, err)
	pool := BuildPool(list)

	c := findCandidate(t, pool, "agricola", accido.EndingKey{Case: accido.Nominative, Number: accido.Plural})
	q, err := assembleParseWordLatToComp(c)
	require.NoError(t, err)

	payload := q.Payload.(parseWordLatToCompPayload)
	assert.Equal(t, "agricolae", payload.Prompt)
	assert.Equal(t, "nominative plural", payload.MainAnswer)
	assert.Contains(t, payload.Answers, "dative singular")
	assert.Contains(t, payload.Answers, "genitive singular")
	assert.Contains(t, payload.Answers, "nominative plural")
	assert.Contains(t, payload.Answers, "vocative plural")
}

// Scenario 2: the present active participle of capio, neuter accusative
// singular, is capiens.
func TestGolden_ParseWordCompToLat_CapiensParticiple(t *testing.T) {
	list, err := lego.ReadList([]byte("@ Verb\ntake: capio, capere, cepi, captus\n"))
	require.NoError(t, err)
	pool := BuildPool(list)

	key := accido.EndingKey{
		Mood: accido.Participle, Tense: accido.Present, Voice: accido.Active,
		Case: accido.Accusative, Number: accido.Singular, Gender: accido.Neuter,
	}
	c := findCandidate(t, pool, "capio", key)
	q, err := assembleParseWordCompToLat(c)
	require.NoError(t, err)

	payload := q.Payload.(parseWordCompToLatPayload)
	assert.Equal(t, "capiens", payload.MainAnswer)
}

// Scenario 3: the comparative of levis ("light") accepts at least
// "lighter" and "more light".
func TestGolden_TypeInLatToEng_LeviorisComparative(t *testing.T) {
	list, err := lego.ReadList([]byte("@ Adjective\nlight: levis, leve, (3-2)\n"))
	require.NoError(t, err)
	pool := BuildPool(list)

	key := accido.EndingKey{Degree: accido.Comparative, Case: accido.Nominative, Number: accido.Singular, Gender: accido.Masculine}
	c := findCandidate(t, pool, "levis", key)
	q, err := assembleTypeInLatToEng(c, testMorph(), nil)
	require.NoError(t, err)

	payload := q.Payload.(typeInPayload)
	assert.Contains(t, payload.Answers, "lighter")
	assert.Contains(t, payload.Answers, "more light")
}

// Scenario 4: the genitive plural feminine of hic/haec/hoc is harum.
func TestGolden_ParseWordCompToLat_HarumPronoun(t *testing.T) {
	list, err := lego.ReadList([]byte("@ Pronoun\nthis: hic, haec, hoc\n"))
	require.NoError(t, err)
	pool := BuildPool(list)

	key := accido.EndingKey{Case: accido.Genitive, Number: accido.Plural, Gender: accido.Feminine}
	c := findCandidate(t, pool, "hic", key)
	q, err := assembleParseWordCompToLat(c)
	require.NoError(t, err)

	payload := q.Payload.(parseWordCompToLatPayload)
	assert.Equal(t, "harum", payload.MainAnswer)
}

func testMorph() *testMorphImpl { return &testMorphImpl{} }

// testMorphImpl is a minimal stand-in for transfero.RuleMorph so this
// golden test doesn't need to import transfero (which would make rogo and
// transfero import each other's test packages circularly is not actually
// a risk here, but keeping the golden test dependency-light mirrors the
// teacher's own golden_test.go files, which exercise only their own
// package's public surface).
type testMorphImpl struct{}

func (testMorphImpl) Inflect(lemma string, number accido.Number) ([]string, error) {
	if number == accido.Plural {
		return []string{lemma + "s"}, nil
	}
	return []string{lemma}, nil
}

func (testMorphImpl) AdjToAdv(lemma string) (string, bool) { return "", false }
