package transfero

import "github.com/rduo1009/vocab-tuister/accido"

// participleForms implements spec.md §4.3's participle decomposition by
// tense/voice, plus the gerund/gerundive/supine spaces (verbal-noun and
// verbal-adjective uses of the same lemma).
func participleForms(lemma string, key accido.EndingKey) []string {
	ing := presentParticipleForm(lemma)
	pastParticiple := lemma + "ed"

	switch key.Mood {
	case accido.Gerund:
		return []string{ing}
	case accido.Gerundive:
		return []string{"to be " + lemma + "ed", "fit to be " + lemma + "ed"}
	case accido.Supine:
		return []string{"to " + lemma}
	}

	switch key.Tense {
	case accido.Present:
		return []string{ing}
	case accido.Perfect:
		return []string{"having been " + pastParticiple}
	case accido.Future:
		if key.Voice == accido.Passive {
			return []string{"about to be " + lemma + "ed", "going to be " + lemma + "ed"}
		}
		return []string{"about to " + lemma, "going to " + lemma}
	}
	return []string{lemma + "ing"}
}
