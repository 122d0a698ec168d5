package accido

import "strings"

// Adverb is a Latin adverb entity: a positive-degree citation form plus
// its comparative/superlative paradigm (spec.md §4.3's "adverbs decline
// only by degree, not by case/number/gender").
type Adverb struct {
	positive string
	meanings Meanings
	endings  endings
}

// adjToAdvOverrides holds irregular adverb derivations that do not follow
// the mechanical -e/-iter and comparative/superlative rules (e.g. "bene"
// from "bonus", "multum" used adverbially). Populated from the embedded
// override table in data/adj_to_adv.json via RegisterAdjToAdvOverride.
var adjToAdvOverrides = map[string]string{
	"bonus": "bene",
	"multus": "multum",
}

// RegisterAdjToAdvOverride adds or replaces an irregular adjective-stem to
// adverb-positive mapping, used by the data-loading step at startup to
// apply data/adj_to_adv.json on top of the built-in table.
func RegisterAdjToAdvOverride(adjectiveNomMasc, adverbPositive string) {
	adjToAdvOverrides[adjectiveNomMasc] = adverbPositive
}

// DeriveAdverbPositive computes the positive-degree adverb form from an
// adjective's masculine nominative singular and termination, per spec.md
// §4.3: 212 adjectives take stem+"e" (laete from laetus), third-declension
// adjectives take stem+"iter" (fortiter from fortis), with "-nt" stems
// taking stem+"er" instead of stem+"iter" (sapienter from sapiens).
// Irregular overrides take precedence over the mechanical rule.
func DeriveAdverbPositive(adjNomMasc string, termination Termination, obliqueStem string) string {
	if override, ok := adjToAdvOverrides[adjNomMasc]; ok {
		return override
	}
	if termination == Termination212 {
		return strings.TrimSuffix(adjNomMasc, "us") + "e"
	}
	if strings.HasSuffix(obliqueStem, "nt") {
		return obliqueStem + "er"
	}
	return obliqueStem + "iter"
}

// MakeAdverb constructs an Adverb from its positive-degree citation form,
// deriving comparative ("stem+ius", identical to the adjective's neuter
// comparative) and superlative (the adjective's superlative stem + "e")
// from the adjective stem: adjNomMasc minus "-us" for 212 adjectives,
// obliqueStem otherwise. The positive form itself is not parsed.
func MakeAdverb(positive string, adjNomMasc string, termination Termination, obliqueStem string, meaning Meanings) (*Adverb, error) {
	if positive == "" {
		return nil, &InvalidInputError{Reason: "adverb requires a non-empty positive form"}
	}
	adv := &Adverb{positive: positive, meanings: meaning, endings: newEndings()}
	adv.build(adjNomMasc, termination, obliqueStem)
	return adv, nil
}

func (adv *Adverb) build(adjNomMasc string, termination Termination, obliqueStem string) {
	adv.endings.add(EndingKey{Degree: Positive}, adv.positive)

	var stem string
	if termination == Termination212 {
		stem = strings.TrimSuffix(adjNomMasc, "us")
	} else {
		stem = obliqueStem
	}
	adv.endings.add(EndingKey{Degree: Comparative}, stem+"ius")

	var supAdjStem string
	switch {
	case strings.HasSuffix(adjNomMasc, "er"):
		supAdjStem = adjNomMasc + "rim"
	case sixLlisAdjectives[adjNomMasc]:
		supAdjStem = stem + "lim"
	default:
		supAdjStem = stem + "issim"
	}
	adv.endings.add(EndingKey{Degree: Superlative}, supAdjStem+"e")
}

func (adv *Adverb) Headword() string  { return adv.positive }
func (adv *Adverb) Meanings() Meanings { return adv.meanings }

func (adv *Adverb) Get(key EndingKey) (EndingValue, error) {
	return adv.endings.get(key, adv.positive)
}
func (adv *Adverb) FindKeys(form string) []EndingKey         { return adv.endings.findKeys(form) }
func (adv *Adverb) Forms(yield func(EndingKey, string) bool) { adv.endings.forEach(yield) }

// DictionaryEntry renders the adverb's citation line.
func (adv *Adverb) DictionaryEntry() string {
	return adv.meanings.Principal() + ": " + adv.positive
}
