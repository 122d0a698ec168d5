package rogo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rduo1009/vocab-tuister/rogo"
)

func TestParseSettings_MinimalValid(t *testing.T) {
	s, err := rogo.ParseSettings(map[string]interface{}{
		"number-of-questions":           5.0,
		"number-multiplechoice-options": 4.0,
	})
	require.NoError(t, err)
	assert.Equal(t, 5, s.NumberOfQuestions)
	assert.Equal(t, 4, s.NumberMultipleChoiceOptions)
}

func TestParseSettings_MissingRequiredKey(t *testing.T) {
	_, err := rogo.ParseSettings(map[string]interface{}{
		"number-multiplechoice-options": 4.0,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Required settings are missing: 'number-of-questions'. (InvalidSettingsError)")
}

func TestParseSettings_UnrecognisedKey(t *testing.T) {
	_, err := rogo.ParseSettings(map[string]interface{}{
		"number-of-questions":           5.0,
		"number-multiplechoice-options": 4.0,
		"exclude-nonsense":               true,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unrecognised settings were provided")
}

func TestParseSettings_WrongTypeForRequiredInt(t *testing.T) {
	_, err := rogo.ParseSettings(map[string]interface{}{
		"number-of-questions":           "5",
		"number-multiplechoice-options": 4.0,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'number-of-questions' must be an integer (got type str)")
}

func TestParseSettings_WrongTypeForBoolean(t *testing.T) {
	_, err := rogo.ParseSettings(map[string]interface{}{
		"number-of-questions":           5.0,
		"number-multiplechoice-options": 4.0,
		"include-typein-lattoeng":        "yes",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "'include-typein-lattoeng' must be a boolean (got type str)")
}

func TestParseSettings_NumberOfQuestionsMustBeAtLeastOne(t *testing.T) {
	_, err := rogo.ParseSettings(map[string]interface{}{
		"number-of-questions":           0.0,
		"number-multiplechoice-options": 4.0,
	})
	require.Error(t, err)
}

func TestParseSettings_MultipleChoiceOptionsMustBeAtLeastTwo(t *testing.T) {
	_, err := rogo.ParseSettings(map[string]interface{}{
		"number-of-questions":           5.0,
		"number-multiplechoice-options": 1.0,
	})
	require.Error(t, err)
}

func TestParseSettings_ExcludeAndIncludeFlagsPopulated(t *testing.T) {
	s, err := rogo.ParseSettings(map[string]interface{}{
		"number-of-questions":           5.0,
		"number-multiplechoice-options": 4.0,
		"include-typein-engtolat":        true,
		"exclude-verbs":                  true,
	})
	require.NoError(t, err)
	assert.True(t, s.Include["include-typein-engtolat"])
	assert.True(t, s.Exclude["exclude-verbs"])
}
