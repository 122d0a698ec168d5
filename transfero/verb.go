package transfero

import (
	"strings"

	"github.com/rduo1009/vocab-tuister/accido"
)

// verbForms implements spec.md §4.3's verb periphrasis table. lemma is the
// bare English infinitive ("hear"). Third-person singular forms get
// {"he ...", "she ...", "it ..."} gender expansion; deponent verbs are
// always translated as active voice regardless of their (passive-shaped)
// morphological key, per spec.md P3.
func verbForms(lemma string, key accido.EndingKey, deponent bool) []string {
	voice := key.Voice
	if deponent {
		voice = accido.Active
	}

	switch key.Mood {
	case accido.Imperative:
		return imperativeForms(lemma, key.Number)
	case accido.Infinitive:
		return infinitiveForms(lemma, voice, key.Tense)
	case accido.Participle, accido.Gerund, accido.Gerundive, accido.Supine:
		return participleForms(lemma, key)
	}

	base := finiteForms(lemma, key.Tense, voice, key.Mood)
	return expandPersonGender(base, key.Person, key.Number)
}

// finiteForms produces the ungendered, unexpanded English periphrases for
// a finite (tense, voice, mood) slot, always in 3rd-singular-agreement
// shape; expandPersonGender fixes up agreement and adds gendered pronouns.
func finiteForms(lemma string, tense accido.Tense, voice accido.Voice, mood accido.Mood) []string {
	thirdSg := thirdPersonSingular(lemma)
	ing := presentParticipleForm(lemma)
	pastParticiple := lemma // English past participle approximated by the bare lemma form; irregular verbs are the rare, acceptable miss here.

	if voice == accido.Passive {
		switch tense {
		case accido.Present:
			return []string{"is " + pastParticiple + "ed", "is being " + pastParticiple + "ed"}
		case accido.Imperfect:
			return []string{"was " + pastParticiple + "ed", "was being " + pastParticiple + "ed"}
		case accido.Future:
			return []string{"will be " + pastParticiple + "ed", "shall be " + pastParticiple + "ed"}
		case accido.Perfect:
			return []string{"has been " + pastParticiple + "ed"}
		case accido.Pluperfect:
			return []string{"had been " + pastParticiple + "ed"}
		case accido.FuturePerfect:
			return []string{"will have been " + pastParticiple + "ed"}
		}
		return []string{"is " + pastParticiple + "ed"}
	}

	if mood == accido.Subjunctive {
		switch tense {
		case accido.Present:
			return []string{"may " + lemma, "might " + lemma}
		case accido.Imperfect:
			return []string{"might " + lemma, "would " + lemma}
		case accido.Perfect:
			return []string{"may have " + lemma, "might have " + lemma}
		case accido.Pluperfect:
			return []string{"might have " + lemma, "would have " + lemma}
		}
	}

	switch tense {
	case accido.Present:
		return []string{thirdSg, "is " + ing, "does " + lemma}
	case accido.Imperfect:
		return []string{"was " + ing, "used to " + lemma}
	case accido.Future:
		return []string{"will " + lemma, "shall " + lemma, "will be " + ing, "shall be " + ing}
	case accido.Perfect:
		return []string{pastParticiple + "ed", "has " + pastParticiple + "ed"}
	case accido.Pluperfect:
		return []string{"had " + pastParticiple + "ed"}
	case accido.FuturePerfect:
		return []string{"will have " + pastParticiple + "ed"}
	}
	return []string{lemma}
}

// expandPersonGender adjusts the ungendered 3sg-shaped forms for the
// actual person/number cell and, for 3rd-singular, adds the
// {"he", "she", "it"} pronoun expansion spec.md §4.3 requires.
func expandPersonGender(forms []string, person accido.Person, number accido.Number) []string {
	if person == accido.Third && number == accido.Singular {
		out := append([]string{}, forms...)
		for _, f := range forms {
			out = append(out, "he "+f, "she "+f, "it "+f)
		}
		return out
	}

	pronoun := personPronoun(person, number)
	auxiliaries := map[string]string{"is ": "are ", "was ": "were ", "does ": "do ", "has ": "have "}
	if person == accido.First && number == accido.Singular {
		auxiliaries["is "], auxiliaries["was "] = "am ", "was "
	}
	var out []string
	for _, f := range forms {
		for from, to := range auxiliaries {
			if strings.HasPrefix(f, from) {
				f = to + strings.TrimPrefix(f, from)
				break
			}
		}
		out = append(out, pronoun+" "+depluralize(f))
	}
	return out
}

func personPronoun(person accido.Person, number accido.Number) string {
	switch {
	case person == accido.First && number == accido.Singular:
		return "I"
	case person == accido.Second && number == accido.Singular:
		return "you"
	case person == accido.First && number == accido.Plural:
		return "we"
	case person == accido.Second && number == accido.Plural:
		return "you"
	case person == accido.Third && number == accido.Plural:
		return "they"
	default:
		return "they"
	}
}

// depluralize strips the bare-lemma agreement suffix ("hears" -> "hear")
// so forms built against a 3sg base read correctly for other persons.
func depluralize(form string) string {
	for _, suf := range []string{"ies", "es", "s"} {
		if strings.HasSuffix(form, suf) && !strings.Contains(form, " ") {
			stem := strings.TrimSuffix(form, suf)
			if suf == "ies" {
				return stem + "y"
			}
			return stem
		}
	}
	return form
}

func imperativeForms(lemma string, number accido.Number) []string {
	forms := []string{lemma, "let " + pluralSubject(number) + " " + lemma}
	return forms
}

func pluralSubject(number accido.Number) string {
	if number == accido.Plural {
		return "them"
	}
	return "him/her/it"
}

func infinitiveForms(lemma string, voice accido.Voice, tense accido.Tense) []string {
	if voice == accido.Passive {
		if tense == accido.Perfect {
			return []string{"to have been " + lemma + "ed"}
		}
		return []string{"to be " + lemma + "ed"}
	}
	if tense == accido.Perfect {
		return []string{"to have " + lemma + "ed"}
	}
	if tense == accido.Future {
		return []string{"to be about to " + lemma}
	}
	return []string{"to " + lemma}
}

// thirdPersonSingular applies the ordinary English present-tense
// agreement suffix rules.
func thirdPersonSingular(lemma string) string {
	switch {
	case strings.HasSuffix(lemma, "y") && !isVowel(lemma, len(lemma)-2):
		return strings.TrimSuffix(lemma, "y") + "ies"
	case strings.HasSuffix(lemma, "s"), strings.HasSuffix(lemma, "x"),
		strings.HasSuffix(lemma, "ch"), strings.HasSuffix(lemma, "sh"), strings.HasSuffix(lemma, "o"):
		return lemma + "es"
	default:
		return lemma + "s"
	}
}

func presentParticipleForm(lemma string) string {
	if strings.HasSuffix(lemma, "e") && lemma != "be" {
		return strings.TrimSuffix(lemma, "e") + "ing"
	}
	return lemma + "ing"
}

func isVowel(s string, i int) bool {
	if i < 0 || i >= len(s) {
		return false
	}
	switch s[i] {
	case 'a', 'e', 'i', 'o', 'u':
		return true
	}
	return false
}
