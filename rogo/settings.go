package rogo

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// requiredIntSettings are the integer settings spec.md §6.3 requires on
// every /session call.
var requiredIntSettings = []string{"number-multiplechoice-options", "number-of-questions"}

// includeBoolSettings gate which question types are enabled, per spec.md
// §4.4 step 3.
var includeBoolSettings = []string{
	"include-typein-engtolat", "include-typein-lattoeng",
	"include-parse", "include-inflect", "include-principal-parts",
	"include-multiplechoice-engtolat", "include-multiplechoice-lattoeng",
}

// posBlanketSettings exclude an entire part of speech from the candidate
// pool, per spec.md §4.4's "per-PoS blankets".
var posBlanketSettings = []string{
	"exclude-verbs", "exclude-nouns", "exclude-adjectives",
	"exclude-adverbs", "exclude-pronouns", "exclude-regulars",
}

var verbSubcategorySettings = []string{
	"exclude-verb-first-conjugation", "exclude-verb-second-conjugation",
	"exclude-verb-third-conjugation", "exclude-verb-mixed-conjugation",
	"exclude-verb-fourth-conjugation", "exclude-verb-irregular-conjugation",
	"exclude-verb-deponent",
}

var nounSubcategorySettings = []string{
	"exclude-noun-first-declension", "exclude-noun-second-declension",
	"exclude-noun-third-declension", "exclude-noun-fourth-declension",
	"exclude-noun-fifth-declension", "exclude-noun-irregular-declension",
}

var adjectiveSubcategorySettings = []string{
	"exclude-adjective-212", "exclude-adjective-3-1",
	"exclude-adjective-3-2", "exclude-adjective-3-3",
}

var caseSettings = []string{
	"exclude-case-nominative", "exclude-case-vocative", "exclude-case-accusative",
	"exclude-case-genitive", "exclude-case-dative", "exclude-case-ablative",
}
var numberSettings = []string{"exclude-number-singular", "exclude-number-plural"}
var genderSettings = []string{"exclude-gender-masculine", "exclude-gender-feminine", "exclude-gender-neuter"}
var degreeSettings = []string{"exclude-degree-positive", "exclude-degree-comparative", "exclude-degree-superlative"}
var tenseSettings = []string{
	"exclude-tense-present", "exclude-tense-imperfect", "exclude-tense-future",
	"exclude-tense-perfect", "exclude-tense-pluperfect", "exclude-tense-futureperfect",
}
var voiceSettings = []string{"exclude-voice-active", "exclude-voice-passive"}
var moodSettings = []string{
	"exclude-mood-indicative", "exclude-mood-subjunctive", "exclude-mood-imperative",
	"exclude-mood-infinitive", "exclude-mood-participle", "exclude-mood-gerund",
	"exclude-mood-gerundive", "exclude-mood-supine",
}
var personSettings = []string{"exclude-person-first", "exclude-person-second", "exclude-person-third"}

// allExcludeSettings is every recognised exclude-* flag, built once from
// the category lists above the way the teacher's dict.go builds its
// lemma/POS slices once from embedded data at init time.
var allExcludeSettings = concatAll(
	posBlanketSettings, verbSubcategorySettings, nounSubcategorySettings,
	adjectiveSubcategorySettings, caseSettings, numberSettings, genderSettings,
	degreeSettings, tenseSettings, voiceSettings, moodSettings, personSettings,
)

func concatAll(lists ...[]string) []string {
	var out []string
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

// Settings is the parsed, validated /session request body.
type Settings struct {
	NumberOfQuestions           int
	NumberMultipleChoiceOptions int
	Include                     map[string]bool
	Exclude                     map[string]bool
}

// ParseSettings validates raw (a JSON object decoded generically, as
// encoding/json produces from a map[string]any target) against the
// closed settings schema of spec.md §6.3/§4.4, in validation order:
// missing required keys, then unrecognised keys, then type mismatches.
func ParseSettings(raw map[string]interface{}) (*Settings, error) {
	if missing := missingKeys(raw, requiredIntSettings); len(missing) > 0 {
		return nil, &InvalidSettingsError{
			Reason: fmt.Sprintf("Required settings are missing: %s.", quoteJoin(missing)),
		}
	}

	recognized := make(map[string]bool, len(requiredIntSettings)+len(includeBoolSettings)+len(allExcludeSettings))
	for _, k := range requiredIntSettings {
		recognized[k] = true
	}
	for _, k := range includeBoolSettings {
		recognized[k] = true
	}
	for _, k := range allExcludeSettings {
		recognized[k] = true
	}

	var unrecognized []string
	for k := range raw {
		if !recognized[k] {
			unrecognized = append(unrecognized, k)
		}
	}
	if len(unrecognized) > 0 {
		sort.Strings(unrecognized)
		return nil, &InvalidSettingsError{
			Reason: fmt.Sprintf("Unrecognised settings were provided: %s.", quoteJoin(unrecognized)),
		}
	}

	s := &Settings{Include: map[string]bool{}, Exclude: map[string]bool{}}

	numQuestions, err := asInt("number-of-questions", raw["number-of-questions"])
	if err != nil {
		return nil, err
	}
	numChoices, err := asInt("number-multiplechoice-options", raw["number-multiplechoice-options"])
	if err != nil {
		return nil, err
	}
	if numQuestions < 1 {
		return nil, &InvalidSettingsError{Reason: "'number-of-questions' must be at least 1."}
	}
	if numChoices < 2 {
		return nil, &InvalidSettingsError{Reason: "'number-multiplechoice-options' must be at least 2."}
	}
	s.NumberOfQuestions = numQuestions
	s.NumberMultipleChoiceOptions = numChoices

	for _, k := range includeBoolSettings {
		v, ok := raw[k]
		if !ok {
			continue
		}
		b, err := asBool(k, v)
		if err != nil {
			return nil, err
		}
		s.Include[k] = b
	}
	for _, k := range allExcludeSettings {
		v, ok := raw[k]
		if !ok {
			continue
		}
		b, err := asBool(k, v)
		if err != nil {
			return nil, err
		}
		s.Exclude[k] = b
	}

	return s, nil
}

func missingKeys(raw map[string]interface{}, required []string) []string {
	var missing []string
	for _, k := range required {
		if _, ok := raw[k]; !ok {
			missing = append(missing, k)
		}
	}
	sort.Strings(missing)
	return missing
}

func quoteJoin(keys []string) string {
	quoted := make([]string, len(keys))
	for i, k := range keys {
		quoted[i] = "'" + k + "'"
	}
	return strings.Join(quoted, ", ")
}

// asInt validates that v decodes to a whole-number JSON value, returning
// the Python-flavoured type name spec.md §4.4's wire format uses ("str",
// "bool", "float", ...) on mismatch.
func asInt(key string, v interface{}) (int, error) {
	f, ok := v.(float64)
	if !ok || f != math.Trunc(f) {
		return 0, &InvalidSettingsError{
			Reason: fmt.Sprintf("'%s' must be an integer (got type %s)", key, pyTypeName(v)),
		}
	}
	return int(f), nil
}

func asBool(key string, v interface{}) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, &InvalidSettingsError{
			Reason: fmt.Sprintf("'%s' must be a boolean (got type %s)", key, pyTypeName(v)),
		}
	}
	return b, nil
}

func pyTypeName(v interface{}) string {
	switch t := v.(type) {
	case string:
		return "str"
	case bool:
		return "bool"
	case float64:
		if t == math.Trunc(t) {
			return "int"
		}
		return "float"
	case nil:
		return "NoneType"
	default:
		return "object"
	}
}
