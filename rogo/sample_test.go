package rogo_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rduo1009/vocab-tuister/rogo"
	"github.com/rduo1009/vocab-tuister/transfero"
)

const testVocab = "@ Noun\nfarmer: agricola, agricolae, (m)\n\n@ Verb\ntake: capio, capere, cepi, captus\n\n@ Adjective\nlight: levis, leve, (3-2)\n"

func settingsWith(t *testing.T, extra map[string]interface{}) *rogo.Settings {
	t.Helper()
	raw := map[string]interface{}{
		"number-of-questions":           10.0,
		"number-multiplechoice-options": 3.0,
	}
	for k, v := range extra {
		raw[k] = v
	}
	s, err := rogo.ParseSettings(raw)
	require.NoError(t, err)
	return s
}

func TestSample_NoEnabledTypesIsNoQuestionsError(t *testing.T) {
	list := mustReadList(t, testVocab)
	pool := rogo.BuildPool(list)
	settings := settingsWith(t, nil)

	_, err := rogo.Sample(settings, pool, transfero.NewRuleMorph(nil), nil, rogo.NewRNG(1))
	require.Error(t, err)
	var noQuestions *rogo.NoQuestionsError
	assert.ErrorAs(t, err, &noQuestions)
}

func TestSample_TypeInLatToEngProducesExactCount(t *testing.T) {
	list := mustReadList(t, testVocab)
	pool := rogo.BuildPool(list)
	settings := settingsWith(t, map[string]interface{}{"include-typein-lattoeng": true})

	questions, err := rogo.Sample(settings, pool, transfero.NewRuleMorph(nil), nil, rogo.NewRNG(1))
	require.NoError(t, err)
	assert.Len(t, questions, settings.NumberOfQuestions)
	for _, q := range questions {
		assert.Equal(t, rogo.TypeInLatToEng, q.Type)
	}
}

func TestSample_ParseWordLatToCompMainAnswerMatchesSampledKey(t *testing.T) {
	list := mustReadList(t, "@ Noun\nfarmer: agricola, agricolae, (m)\n")
	pool := rogo.BuildPool(list)
	settings := settingsWith(t, map[string]interface{}{"include-parse": true})

	questions, err := rogo.Sample(settings, pool, transfero.NewRuleMorph(nil), nil, rogo.NewRNG(1))
	require.NoError(t, err)
	require.NotEmpty(t, questions)
	for _, q := range questions {
		data, err := json.Marshal(q.Payload)
		require.NoError(t, err)
		var payload struct {
			MainAnswer string   `json:"main_answer"`
			Answers    []string `json:"answers"`
		}
		require.NoError(t, json.Unmarshal(data, &payload))
		assert.Contains(t, payload.Answers, payload.MainAnswer)
	}
}

func TestSample_MultipleChoiceChoicesIncludeAnswerAndCorrectCount(t *testing.T) {
	list := mustReadList(t, testVocab)
	pool := rogo.BuildPool(list)
	settings := settingsWith(t, map[string]interface{}{"include-multiplechoice-lattoeng": true})

	questions, err := rogo.Sample(settings, pool, transfero.NewRuleMorph(nil), nil, rogo.NewRNG(1))
	require.NoError(t, err)
	require.NotEmpty(t, questions)
	for _, q := range questions {
		data, err := json.Marshal(q.Payload)
		require.NoError(t, err)
		var payload struct {
			Answer  string   `json:"answer"`
			Choices []string `json:"choices"`
		}
		require.NoError(t, json.Unmarshal(data, &payload))
		assert.Contains(t, payload.Choices, payload.Answer)
		assert.Len(t, payload.Choices, settings.NumberMultipleChoiceOptions)
	}
}

func TestSample_PrincipalPartsOnlyDrawsVerbs(t *testing.T) {
	list := mustReadList(t, testVocab)
	pool := rogo.BuildPool(list)
	settings := settingsWith(t, map[string]interface{}{"include-principal-parts": true})

	questions, err := rogo.Sample(settings, pool, transfero.NewRuleMorph(nil), nil, rogo.NewRNG(1))
	require.NoError(t, err)
	for _, q := range questions {
		assert.Equal(t, rogo.PrincipalParts, q.Type)
	}
}
