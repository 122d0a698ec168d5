// Package transfero derives the English-side equivalents of a Latin word's
// paradigm cells and the reverse: the set of English surface forms a
// learner may legitimately write for a given (lemma, grammatical key) pair.
package transfero

import (
	"sort"

	"github.com/rduo1009/vocab-tuister/accido"
)

// PartOfSpeech selects which derivation rules apply to a key, since
// accido.EndingKey alone is ambiguous across entity kinds (a bare Case, for
// instance, means something different on a Noun than on a Pronoun).
type PartOfSpeech int

const (
	POSUnknown PartOfSpeech = iota
	POSNoun
	POSVerb
	POSAdjective
	POSAdverb
	POSPronoun
	POSParticiple
	POSRegular
)

// EnglishMorph is the narrow external collaborator for English
// lemma-level morphology: noun pluralisation and adjective-to-adverb
// derivation. The built-in implementation (RuleMorph) is table-driven,
// grounded on cv-go-inflect's irregular-map-plus-suffix-rule pattern;
// callers may substitute their own.
type EnglishMorph interface {
	// Inflect returns every English surface form of lemma in the given
	// number (only Number is consulted; other EndingKey fields are
	// ignored). An unknown lemma degrades to {lemma} rather than erroring,
	// per spec.md §4.3's "missing-form" failure semantics.
	Inflect(lemma string, number accido.Number) ([]string, error)
	// AdjToAdv reports the irregular adverb derived from an adjective
	// lemma, if one is registered.
	AdjToAdv(lemma string) (string, bool)
}

// SynonymProvider is the narrow external collaborator for WordNet-style
// synonym lookup.
type SynonymProvider interface {
	// Synonyms returns every registered synonym of word. An unknown word
	// returns (nil, nil): a missing synonym set is not an error (spec.md
	// §4.3).
	Synonyms(word string) ([]string, error)
}

// FindInflections enumerates every English surface form a learner may
// legitimately write for lemma at key, given its part of speech. deponent
// only affects POSVerb: when true, passive-voice-shaped finite keys are
// translated with active-sense English only (spec.md P3).
func FindInflections(pos PartOfSpeech, lemma string, key accido.EndingKey, deponent bool, morph EnglishMorph) ([]string, error) {
	var forms []string
	switch pos {
	case POSNoun:
		forms = nounForms(lemma, key, morph)
	case POSVerb:
		forms = verbForms(lemma, key, deponent)
	case POSAdjective:
		forms = degreeForms(lemma, key.Degree)
	case POSAdverb:
		forms = adverbDegreeForms(lemma, key.Degree)
	case POSParticiple:
		forms = participleForms(lemma, key)
	default:
		forms = []string{lemma}
	}
	if len(forms) == 0 {
		forms = []string{lemma}
	}
	return dedupeSorted(forms), nil
}

// FindMainInflection returns the single deterministic representative form
// used as a question's main_answer: the first element of the (already
// sorted) inflection set, per spec.md §4.3's "stable iteration order"
// requirement.
func FindMainInflection(pos PartOfSpeech, lemma string, key accido.EndingKey, deponent bool, morph EnglishMorph) (string, error) {
	forms, err := FindInflections(pos, lemma, key, deponent, morph)
	if err != nil {
		return "", err
	}
	return forms[0], nil
}

// FindSynonyms returns meaning's registered synonyms, sorted for
// deterministic output, or an empty slice if meaning is unknown.
func FindSynonyms(meaning string, provider SynonymProvider) ([]string, error) {
	syns, err := provider.Synonyms(meaning)
	if err != nil {
		return nil, err
	}
	return dedupeSorted(syns), nil
}

func dedupeSorted(forms []string) []string {
	seen := make(map[string]bool, len(forms))
	out := make([]string, 0, len(forms))
	for _, f := range forms {
		if f == "" || seen[f] {
			continue
		}
		seen[f] = true
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}
