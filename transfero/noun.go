package transfero

import "github.com/rduo1009/vocab-tuister/accido"

// nounForms implements spec.md §4.3's noun cross product: {singular,
// plural} (via morph.Inflect) x {bare, with article} x {with preposition
// governed by case}.
func nounForms(lemma string, key accido.EndingKey, morph EnglishMorph) []string {
	bases, err := morph.Inflect(lemma, key.Number)
	if err != nil || len(bases) == 0 {
		bases = []string{lemma}
	}

	var out []string
	for _, base := range bases {
		out = append(out, casePrepositionForms(base, key.Case)...)
	}
	return out
}

// casePrepositionForms applies spec.md §4.3's case -> English preposition
// map to one bare noun surface form.
func casePrepositionForms(form string, c accido.Case) []string {
	withArticles := []string{form, "a " + form, "the " + form}

	switch c {
	case accido.Nominative, accido.Accusative, accido.NoCase:
		return withArticles
	case accido.Vocative:
		out := []string{"O " + form}
		out = append(out, withArticles...)
		return out
	case accido.Genitive:
		return []string{"of " + form, "of a " + form, "of the " + form}
	case accido.Dative:
		return []string{"to " + form, "to a " + form, "to the " + form, "for " + form, "for a " + form, "for the " + form}
	case accido.Ablative:
		out := []string{}
		for _, prep := range []string{"by", "with", "by means of"} {
			out = append(out, prep+" "+form, prep+" a "+form, prep+" the "+form)
		}
		return out
	default:
		return withArticles
	}
}
