package transfero

import (
	"strings"
	"sync"

	"github.com/rduo1009/vocab-tuister/accido"
)

// RuleMorph is the built-in EnglishMorph: an irregular-map-plus-suffix-rule
// engine grounded on cv-go-inflect's Engine (irregularPlurals map built
// once, consulted before the mechanical -s/-es/-ies rule applies), adapted
// from a general-purpose English inflector down to just the two operations
// Transfero needs.
type RuleMorph struct {
	mu               sync.RWMutex
	irregularPlurals map[string]string
	adjToAdv         map[string]string
}

// defaultIrregularPlurals seeds the handful of common irregular English
// noun plurals a vocabulary learner is likely to meet as a translation.
var defaultIrregularPlurals = map[string]string{
	"man":    "men",
	"woman":  "women",
	"child":  "children",
	"foot":   "feet",
	"tooth":  "teeth",
	"mouse":  "mice",
	"person": "people",
	"goose":  "geese",
}

// NewRuleMorph constructs a RuleMorph seeded with the built-in irregular
// plural map and adjToAdv overrides. adjToAdvOverrides may be nil.
func NewRuleMorph(adjToAdvOverrides map[string]string) *RuleMorph {
	irregulars := make(map[string]string, len(defaultIrregularPlurals))
	for k, v := range defaultIrregularPlurals {
		irregulars[k] = v
	}
	overrides := make(map[string]string, len(adjToAdvOverrides))
	for k, v := range adjToAdvOverrides {
		overrides[k] = v
	}
	return &RuleMorph{irregularPlurals: irregulars, adjToAdv: overrides}
}

// Inflect returns the singular or plural English surface form of lemma.
func (m *RuleMorph) Inflect(lemma string, number accido.Number) ([]string, error) {
	if number != accido.Plural {
		return []string{lemma}, nil
	}

	m.mu.RLock()
	plural, ok := m.irregularPlurals[strings.ToLower(lemma)]
	m.mu.RUnlock()
	if ok {
		return []string{plural}, nil
	}

	return []string{mechanicalPlural(lemma)}, nil
}

// mechanicalPlural applies the ordinary English noun-plural suffix rules.
func mechanicalPlural(lemma string) string {
	switch {
	case strings.HasSuffix(lemma, "y") && !isVowel(lemma, len(lemma)-2):
		return strings.TrimSuffix(lemma, "y") + "ies"
	case strings.HasSuffix(lemma, "s"), strings.HasSuffix(lemma, "x"), strings.HasSuffix(lemma, "z"),
		strings.HasSuffix(lemma, "ch"), strings.HasSuffix(lemma, "sh"):
		return lemma + "es"
	case strings.HasSuffix(lemma, "f"):
		return strings.TrimSuffix(lemma, "f") + "ves"
	case strings.HasSuffix(lemma, "fe"):
		return strings.TrimSuffix(lemma, "fe") + "ves"
	default:
		return lemma + "s"
	}
}

// AdjToAdv reports a registered irregular adverb derivation.
func (m *RuleMorph) AdjToAdv(lemma string) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	adv, ok := m.adjToAdv[lemma]
	return adv, ok
}

// RegisterIrregularPlural adds or replaces an irregular noun plural.
func (m *RuleMorph) RegisterIrregularPlural(singular, plural string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.irregularPlurals[strings.ToLower(singular)] = plural
}
