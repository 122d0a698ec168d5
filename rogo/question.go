package rogo

import (
	"encoding/json"
	"sort"

	"github.com/rduo1009/vocab-tuister/accido"
)

// QuestionType names one of the seven question shapes spec.md §6.2
// enumerates.
type QuestionType int

const (
	TypeInEngToLat QuestionType = iota
	TypeInLatToEng
	ParseWordLatToComp
	ParseWordCompToLat
	PrincipalParts
	MultipleChoiceEngToLat
	MultipleChoiceLatToEng
)

var questionTypeNames = [...]string{
	TypeInEngToLat:         "TypeInEngToLatQuestion",
	TypeInLatToEng:         "TypeInLatToEngQuestion",
	ParseWordLatToComp:     "ParseWordLatToCompQuestion",
	ParseWordCompToLat:     "ParseWordCompToLatQuestion",
	PrincipalParts:         "PrincipalPartsQuestion",
	MultipleChoiceEngToLat: "MultipleChoiceEngToLatQuestion",
	MultipleChoiceLatToEng: "MultipleChoiceLatToEngQuestion",
}

func (t QuestionType) Name() string { return questionTypeNames[t] }

// includeSettingFor names the include-* flag that gates t, per spec.md
// §4.4 step 3.
var includeSettingFor = map[QuestionType]string{
	TypeInEngToLat:         "include-typein-engtolat",
	TypeInLatToEng:         "include-typein-lattoeng",
	ParseWordLatToComp:     "include-parse",
	ParseWordCompToLat:     "include-inflect",
	PrincipalParts:         "include-principal-parts",
	MultipleChoiceEngToLat: "include-multiplechoice-engtolat",
	MultipleChoiceLatToEng: "include-multiplechoice-lattoeng",
}

func enabledTypes(settings *Settings) []QuestionType {
	var out []QuestionType
	for _, t := range []QuestionType{
		TypeInEngToLat, TypeInLatToEng, ParseWordLatToComp, ParseWordCompToLat,
		PrincipalParts, MultipleChoiceEngToLat, MultipleChoiceLatToEng,
	} {
		if settings.Include[includeSettingFor[t]] {
			out = append(out, t)
		}
	}
	return out
}

// Question is one generated question, assembled per spec.md §6.2's
// per-type payload shape. MarshalJSON renders the single-key
// discriminated envelope the wire format uses: {"question_type": name,
// name: payload}.
type Question struct {
	Type    QuestionType
	Payload interface{}
}

func (q Question) MarshalJSON() ([]byte, error) {
	name := q.Type.Name()
	return json.Marshal(map[string]interface{}{
		"question_type": name,
		name:            q.Payload,
	})
}

type typeInPayload struct {
	Prompt     string   `json:"prompt"`
	MainAnswer string   `json:"main_answer"`
	Answers    []string `json:"answers"`
}

type multipleChoicePayload struct {
	Prompt  string   `json:"prompt"`
	Answer  string   `json:"answer"`
	Choices []string `json:"choices"`
}

type parseWordLatToCompPayload struct {
	Prompt          string   `json:"prompt"`
	DictionaryEntry string   `json:"dictionary_entry"`
	MainAnswer      string   `json:"main_answer"`
	Answers         []string `json:"answers"`
}

type parseWordCompToLatPayload struct {
	Prompt     string   `json:"prompt"`
	Components string   `json:"components"`
	MainAnswer string   `json:"main_answer"`
	Answers    []string `json:"answers"`
}

type principalPartsPayload struct {
	Prompt         string   `json:"prompt"`
	PrincipalParts []string `json:"principal_parts"`
}

type dictionaryEntryer interface {
	DictionaryEntry() string
}

func dictionaryEntryOf(e accido.Entity) string {
	if d, ok := e.(dictionaryEntryer); ok {
		return d.DictionaryEntry()
	}
	return e.Headword()
}

func firstSorted(values []string) string {
	if len(values) == 0 {
		return ""
	}
	cp := append([]string(nil), values...)
	sort.Strings(cp)
	return cp[0]
}

func dedupeSortedStrings(values []string) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v == "" || seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
