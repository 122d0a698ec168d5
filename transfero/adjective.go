package transfero

import "github.com/rduo1009/vocab-tuister/accido"

// degreeForms implements spec.md §4.3's adjective degree rewrite table.
func degreeForms(lemma string, degree accido.Degree) []string {
	switch degree {
	case accido.Comparative:
		return []string{"more " + lemma, lemma + "er"}
	case accido.Superlative:
		return []string{
			"most " + lemma, "very " + lemma, "extremely " + lemma,
			"rather " + lemma, "quite " + lemma, "too " + lemma, lemma + "est",
		}
	default:
		return []string{lemma}
	}
}

// adverbDegreeForms mirrors degreeForms for adverbs; spec.md §4.3 does not
// distinguish adverb periphrasis from adjective periphrasis beyond the
// positive-form source.
func adverbDegreeForms(lemma string, degree accido.Degree) []string {
	return degreeForms(lemma, degree)
}
