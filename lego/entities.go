package lego

import (
	"strings"

	"github.com/rduo1009/vocab-tuister/accido"
)

var genderTokens = map[string]accido.Gender{
	"(m)": accido.Masculine,
	"(f)": accido.Feminine,
	"(n)": accido.Neuter,
}

// buildNoun handles entries of shape "meaning: nominative, genitive, (gender)".
// "(irregular)" may additionally appear but this grammar carries no inline
// paradigm table, so it is accepted and otherwise ignored: declension
// inference still applies (an accepted simplification).
func buildNoun(parts, metadata []string, meaning accido.Meanings) (accido.Entity, bool, error) {
	if len(parts) != 2 {
		return nil, false, &accido.InvalidInputError{Reason: "noun requires exactly two principal parts (nominative, genitive)"}
	}

	var gender accido.Gender
	found := false
	for _, m := range metadata {
		if g, ok := genderTokens[strings.ToLower(m)]; ok {
			gender = g
			found = true
			break
		}
	}
	if !found {
		return nil, false, &accido.InvalidInputError{Reason: "noun requires a (m)/(f)/(n) gender marker"}
	}

	n, err := accido.MakeNoun(parts[0], parts[1], gender, meaning)
	return n, false, err
}

// buildVerb handles entries of shape "meaning: present, infinitive, perfect, ppp"
// (four parts, ordinary verb), "meaning: present, infinitive, perfect-participle sum"
// (three parts, deponent verb — the ppp field carries the participle and an
// implied "sum" rather than a literal fourth principal part), a
// "(semi-deponent)" metadata token over the same three-part shape (active
// present, deponent-style perfect: audeo, audere, ausus sum), or an
// "(irregular)" metadata token naming one of the ten hand-tabled irregular
// verbs by its headword alone (sum, possum, volo, nolo, malo, eo, fero,
// fio, edo, inquam).
func buildVerb(parts, metadata []string, meaning accido.Meanings) (accido.Entity, bool, error) {
	if hasMetadata(metadata, "(irregular)") {
		if len(parts) == 0 {
			return nil, false, &accido.InvalidInputError{Reason: "irregular verb entry requires its present-tense headword as the first principal part"}
		}
		v, err := accido.MakeNamedIrregularVerb(parts[0], meaning)
		return v, false, err
	}

	if hasMetadata(metadata, "(semi-deponent)") {
		if len(parts) != 3 {
			return nil, false, &accido.InvalidInputError{Reason: "semi-deponent verb requires three principal parts (present, infinitive, perfect participle)"}
		}
		v, err := accido.MakeSemiDeponentVerb(parts[0], parts[1], firstWord(parts[2]), meaning)
		return v, false, err
	}

	switch len(parts) {
	case 4:
		v, err := accido.MakeVerb(parts[0], parts[1], parts[2], parts[3], meaning, false)
		return v, false, err
	case 3:
		v, err := accido.MakeVerb(parts[0], parts[1], "", firstWord(parts[2]), meaning, true)
		return v, true, err
	default:
		return nil, false, &accido.InvalidInputError{Reason: "verb requires three (deponent/semi-deponent) or four (ordinary) principal parts"}
	}
}

// firstWord returns the leading word of a field such as "ausus sum",
// where the grammar writes the implied "sum" inline rather than as a
// separate principal part.
func firstWord(field string) string {
	if fields := strings.Fields(field); len(fields) > 0 {
		return fields[0]
	}
	return field
}

// buildAdjective dispatches on the termination metadata token. Absent
// metadata with three principal parts defaults to 2-1-2, the common case
// (bonus, bona, bonum).
func buildAdjective(parts, metadata []string, meaning accido.Meanings) (accido.Entity, bool, error) {
	term := adjectiveTermination(metadata)

	switch term {
	case accido.Termination212:
		if len(parts) != 3 {
			return nil, false, &accido.InvalidInputError{Reason: "2-1-2 adjective requires three principal parts"}
		}
		a, err := accido.MakeAdjective212(parts[0], parts[1], parts[2], meaning)
		return a, false, err

	case accido.Termination3Term1:
		if len(parts) != 2 {
			return nil, false, &accido.InvalidInputError{Reason: "3-1 adjective requires two principal parts (nominative, genitive)"}
		}
		a, err := accido.MakeAdjective3rd(term, parts[0], "", "", parts[1], meaning)
		return a, false, err

	case accido.Termination3Term2:
		if len(parts) != 2 {
			return nil, false, &accido.InvalidInputError{Reason: "3-2 adjective requires two principal parts (masculine/feminine, neuter)"}
		}
		a, err := accido.MakeAdjective3rd(term, parts[0], "", parts[1], parts[0], meaning)
		return a, false, err

	case accido.Termination3Term3:
		if len(parts) != 3 {
			return nil, false, &accido.InvalidInputError{Reason: "3-3 adjective requires three principal parts (masculine, feminine, neuter)"}
		}
		a, err := accido.MakeAdjective3rd(term, parts[0], parts[1], parts[2], parts[1], meaning)
		return a, false, err

	default:
		return nil, false, &accido.InvalidInputError{Reason: "unrecognised adjective termination metadata"}
	}
}

func adjectiveTermination(metadata []string) accido.Termination {
	for _, m := range metadata {
		switch strings.ToLower(m) {
		case "(2-1-2)":
			return accido.Termination212
		case "(3-1)":
			return accido.Termination3Term1
		case "(3-2)":
			return accido.Termination3Term2
		case "(3-3)":
			return accido.Termination3Term3
		}
	}
	return accido.Termination212
}

// buildAdverb handles "meaning: positive" or "meaning: positive, adjNomMasc".
// The second form lets the comparative/superlative derivation follow the
// cited adjective's actual pattern; the first form reconstructs a
// plausible adjective citation from the adverb's own ending, since Lego's
// grammar gives adverbs no further metadata to disambiguate (an accepted
// simplification — see DESIGN.md).
func buildAdverb(parts []string, meaning accido.Meanings) (accido.Entity, bool, error) {
	var positive, adjNomMasc string
	switch len(parts) {
	case 1:
		positive = parts[0]
		adjNomMasc = reconstructAdjective(positive)
	case 2:
		positive, adjNomMasc = parts[0], parts[1]
	default:
		return nil, false, &accido.InvalidInputError{Reason: "adverb requires one or two principal parts"}
	}

	var termination accido.Termination
	var obliqueStem string
	if strings.HasSuffix(adjNomMasc, "us") {
		termination = accido.Termination212
	} else {
		termination = accido.Termination3Term1
		obliqueStem = adverbObliqueStem(positive)
	}

	adv, err := accido.MakeAdverb(positive, adjNomMasc, termination, obliqueStem, meaning)
	return adv, false, err
}

func reconstructAdjective(positive string) string {
	switch {
	case strings.HasSuffix(positive, "e"):
		return strings.TrimSuffix(positive, "e") + "us"
	case strings.HasSuffix(positive, "nter"):
		return strings.TrimSuffix(positive, "ter") + "s"
	case strings.HasSuffix(positive, "iter"):
		return strings.TrimSuffix(positive, "iter") + "is"
	default:
		return positive
	}
}

func adverbObliqueStem(positive string) string {
	switch {
	case strings.HasSuffix(positive, "nter"):
		return strings.TrimSuffix(positive, "er")
	case strings.HasSuffix(positive, "iter"):
		return strings.TrimSuffix(positive, "iter")
	default:
		return positive
	}
}

// buildPronoun resolves the entry's first principal part (the masculine
// nominative singular citation form) to a known PronounKind.
func buildPronoun(parts []string, meaning accido.Meanings) (accido.Entity, bool, error) {
	if len(parts) == 0 {
		return nil, false, &accido.InvalidInputError{Reason: "pronoun entry requires at least one principal part"}
	}
	kind, ok := accido.PronounKindByHeadword(parts[0])
	if !ok {
		return nil, false, &accido.InvalidInputError{Reason: "unrecognised pronoun: " + parts[0]}
	}
	p, err := accido.MakePronoun(kind, meaning)
	return p, false, err
}

func buildRegular(parts []string, meaning accido.Meanings) (accido.Entity, bool, error) {
	if len(parts) != 1 {
		return nil, false, &accido.InvalidInputError{Reason: "regular word requires exactly one principal part"}
	}
	r, err := accido.MakeRegularWord(parts[0], meaning)
	return r, false, err
}
