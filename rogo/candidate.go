package rogo

import (
	"github.com/rduo1009/vocab-tuister/accido"
	"github.com/rduo1009/vocab-tuister/lego"
	"github.com/rduo1009/vocab-tuister/transfero"
)

// Candidate is one (word, ending-key) pair drawn from a held VocabList,
// the unit spec.md §4.4 step 2 filters and step 4 samples.
type Candidate struct {
	Entry lego.Entry
	Key   accido.EndingKey
}

func (c Candidate) Entity() accido.Entity { return c.Entry.Entity }

// BuildPool enumerates every (word, ending-key) pair in list, in
// (section order, entry order, key-enum order) — the deterministic
// iteration order spec.md §9 requires, inherited directly from each
// Entity's own Forms() order.
func BuildPool(list *lego.VocabList) []Candidate {
	var pool []Candidate
	for _, entry := range list.Entries {
		seen := make(map[accido.EndingKey]bool)
		entry.Entity.Forms(func(key accido.EndingKey, _ string) bool {
			if !seen[key] {
				seen[key] = true
				pool = append(pool, Candidate{Entry: entry, Key: key})
			}
			return true
		})
	}
	return pool
}

// FilterPool removes every candidate excluded by settings' exclusion
// flags. Exclusions compose as an intersection of "kept" predicates
// (spec.md §4.4 step 2 / P8): a candidate survives only if no enabled
// exclusion flag's criterion matches it.
func FilterPool(pool []Candidate, settings *Settings) []Candidate {
	out := make([]Candidate, 0, len(pool))
	for _, c := range pool {
		if excludedByPOS(c.Entry, settings) {
			continue
		}
		if excludedBySubcategory(c.Entry, settings) {
			continue
		}
		if excludedByCell(c.Key, settings) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func excludedByPOS(entry lego.Entry, settings *Settings) bool {
	switch entry.PartOfSpeech {
	case transfero.POSVerb:
		return settings.Exclude["exclude-verbs"]
	case transfero.POSNoun:
		return settings.Exclude["exclude-nouns"]
	case transfero.POSAdjective:
		return settings.Exclude["exclude-adjectives"]
	case transfero.POSAdverb:
		return settings.Exclude["exclude-adverbs"]
	case transfero.POSPronoun:
		return settings.Exclude["exclude-pronouns"]
	case transfero.POSRegular:
		return settings.Exclude["exclude-regulars"]
	}
	return false
}

// excludedBySubcategory applies the per-PoS-subcategory flags (verb
// conjugation/deponent, noun declension, adjective termination). For
// pronouns, per spec.md §4.4 "an exclusion on a grammatical category
// removes cells carrying that tag regardless of pronoun identity" — there
// is no pronoun subcategory beyond the per-cell exclusions handled by
// excludedByCell.
func excludedBySubcategory(entry lego.Entry, settings *Settings) bool {
	switch e := entry.Entity.(type) {
	case *accido.Verb:
		if entry.Deponent && settings.Exclude["exclude-verb-deponent"] {
			return true
		}
		switch e.Conjugation() {
		case accido.FirstConj:
			return settings.Exclude["exclude-verb-first-conjugation"]
		case accido.SecondConj:
			return settings.Exclude["exclude-verb-second-conjugation"]
		case accido.ThirdConj:
			return settings.Exclude["exclude-verb-third-conjugation"]
		case accido.MixedConj:
			return settings.Exclude["exclude-verb-mixed-conjugation"]
		case accido.FourthConj:
			return settings.Exclude["exclude-verb-fourth-conjugation"]
		case accido.IrregularConj:
			return settings.Exclude["exclude-verb-irregular-conjugation"]
		}
	case *accido.Noun:
		switch e.Declension() {
		case accido.FirstDeclension:
			return settings.Exclude["exclude-noun-first-declension"]
		case accido.SecondDeclension:
			return settings.Exclude["exclude-noun-second-declension"]
		case accido.ThirdDeclension:
			return settings.Exclude["exclude-noun-third-declension"]
		case accido.FourthDeclension:
			return settings.Exclude["exclude-noun-fourth-declension"]
		case accido.FifthDeclension:
			return settings.Exclude["exclude-noun-fifth-declension"]
		case accido.IrregularDeclension:
			return settings.Exclude["exclude-noun-irregular-declension"]
		}
	case *accido.Adjective:
		switch e.Termination() {
		case accido.Termination212:
			return settings.Exclude["exclude-adjective-212"]
		case accido.Termination3Term1:
			return settings.Exclude["exclude-adjective-3-1"]
		case accido.Termination3Term2:
			return settings.Exclude["exclude-adjective-3-2"]
		case accido.Termination3Term3:
			return settings.Exclude["exclude-adjective-3-3"]
		}
	}
	return false
}

// cellFlag pairs an exclusion setting name with the predicate over a key
// that it governs.
type cellFlag struct {
	name    string
	matches func(accido.EndingKey) bool
}

var cellFlags = buildCellFlags()

func buildCellFlags() []cellFlag {
	var flags []cellFlag
	add := func(name string, match func(accido.EndingKey) bool) {
		flags = append(flags, cellFlag{name: name, matches: match})
	}

	cases := []accido.Case{accido.Nominative, accido.Vocative, accido.Accusative, accido.Genitive, accido.Dative, accido.Ablative}
	for i, name := range caseSettings {
		c := cases[i]
		add(name, func(k accido.EndingKey) bool { return k.Case == c })
	}
	numbers := []accido.Number{accido.Singular, accido.Plural}
	for i, name := range numberSettings {
		n := numbers[i]
		add(name, func(k accido.EndingKey) bool { return k.Number == n })
	}
	genders := []accido.Gender{accido.Masculine, accido.Feminine, accido.Neuter}
	for i, name := range genderSettings {
		g := genders[i]
		add(name, func(k accido.EndingKey) bool { return k.Gender == g })
	}
	degrees := []accido.Degree{accido.Positive, accido.Comparative, accido.Superlative}
	for i, name := range degreeSettings {
		d := degrees[i]
		add(name, func(k accido.EndingKey) bool { return k.Degree == d })
	}
	tenses := []accido.Tense{accido.Present, accido.Imperfect, accido.Future, accido.Perfect, accido.Pluperfect, accido.FuturePerfect}
	for i, name := range tenseSettings {
		t := tenses[i]
		add(name, func(k accido.EndingKey) bool { return k.Tense == t })
	}
	voices := []accido.Voice{accido.Active, accido.Passive}
	for i, name := range voiceSettings {
		v := voices[i]
		add(name, func(k accido.EndingKey) bool { return k.Voice == v })
	}
	moods := []accido.Mood{
		accido.Indicative, accido.Subjunctive, accido.Imperative, accido.Infinitive,
		accido.Participle, accido.Gerund, accido.Gerundive, accido.Supine,
	}
	for i, name := range moodSettings {
		m := moods[i]
		add(name, func(k accido.EndingKey) bool { return k.Mood == m })
	}
	persons := []accido.Person{accido.First, accido.Second, accido.Third}
	for i, name := range personSettings {
		p := persons[i]
		add(name, func(k accido.EndingKey) bool { return k.Person == p })
	}
	return flags
}

func excludedByCell(key accido.EndingKey, settings *Settings) bool {
	for _, flag := range cellFlags {
		if settings.Exclude[flag.name] && flag.matches(key) {
			return true
		}
	}
	return false
}

// candidatesForType narrows pool to the candidates compatible with
// question type t: Parse questions need a non-vacuous grammatical key,
// PrincipalParts needs a verb entity and is deduplicated to one candidate
// per entry (the principal parts are a property of the word, not a cell).
func candidatesForType(pool []Candidate, t QuestionType) []Candidate {
	switch t {
	case ParseWordLatToComp, ParseWordCompToLat:
		var out []Candidate
		for _, c := range pool {
			if len(c.Key.Tags()) > 0 {
				out = append(out, c)
			}
		}
		return out
	case PrincipalParts:
		seen := make(map[accido.Entity]bool)
		var out []Candidate
		for _, c := range pool {
			if _, ok := c.Entity().(*accido.Verb); ok && !seen[c.Entity()] {
				seen[c.Entity()] = true
				out = append(out, Candidate{Entry: c.Entry})
			}
		}
		return out
	default:
		return pool
	}
}
