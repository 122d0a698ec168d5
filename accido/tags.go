// Package accido is the Latin morphology kernel: word entities and their
// complete ending tables, each ending tagged by a closed grammatical
// vocabulary (case, number, gender, degree, tense, voice, mood, person).
package accido

import (
	"encoding/json"
	"fmt"
)

// Case is the grammatical case of a nominal form. NoCase marks a key that
// does not carry case (e.g. a finite verb form).
type Case int

const (
	NoCase Case = iota
	Nominative
	Vocative
	Accusative
	Genitive
	Dative
	Ablative
)

var caseNames = [...]string{
	NoCase:     "",
	Nominative: "nominative",
	Vocative:   "vocative",
	Accusative: "accusative",
	Genitive:   "genitive",
	Dative:     "dative",
	Ablative:   "ablative",
}

var caseFromName = reverse(caseNames[:])

func (c Case) String() string { return nameOrFmt(int(c), caseNames[:], "Case") }

// MarshalJSON encodes the case as its lower-case tag name.
func (c Case) MarshalJSON() ([]byte, error) { return json.Marshal(c.String()) }

// UnmarshalJSON decodes a lower-case tag name into a Case.
func (c *Case) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, caseFromName, "case")
	if err != nil {
		return err
	}
	*c = Case(v)
	return nil
}

// Number is grammatical number.
type Number int

const (
	NoNumber Number = iota
	Singular
	Plural
)

var numberNames = [...]string{
	NoNumber: "",
	Singular: "singular",
	Plural:   "plural",
}

var numberFromName = reverse(numberNames[:])

func (n Number) String() string { return nameOrFmt(int(n), numberNames[:], "Number") }

func (n Number) MarshalJSON() ([]byte, error) { return json.Marshal(n.String()) }

func (n *Number) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, numberFromName, "number")
	if err != nil {
		return err
	}
	*n = Number(v)
	return nil
}

// Gender is grammatical gender.
type Gender int

const (
	NoGender Gender = iota
	Masculine
	Feminine
	Neuter
)

var genderNames = [...]string{
	NoGender:  "",
	Masculine: "masculine",
	Feminine:  "feminine",
	Neuter:    "neuter",
}

var genderFromName = reverse(genderNames[:])

func (g Gender) String() string { return nameOrFmt(int(g), genderNames[:], "Gender") }

func (g Gender) MarshalJSON() ([]byte, error) { return json.Marshal(g.String()) }

func (g *Gender) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, genderFromName, "gender")
	if err != nil {
		return err
	}
	*g = Gender(v)
	return nil
}

// Degree is the degree of comparison for adjectives and adverbs.
type Degree int

const (
	NoDegree Degree = iota
	Positive
	Comparative
	Superlative
)

var degreeNames = [...]string{
	NoDegree:    "",
	Positive:    "positive",
	Comparative: "comparative",
	Superlative: "superlative",
}

var degreeFromName = reverse(degreeNames[:])

func (d Degree) String() string { return nameOrFmt(int(d), degreeNames[:], "Degree") }

func (d Degree) MarshalJSON() ([]byte, error) { return json.Marshal(d.String()) }

func (d *Degree) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, degreeFromName, "degree")
	if err != nil {
		return err
	}
	*d = Degree(v)
	return nil
}

// Tense is verbal tense.
type Tense int

const (
	NoTense Tense = iota
	Present
	Imperfect
	Future
	Perfect
	Pluperfect
	FuturePerfect
)

var tenseNames = [...]string{
	NoTense:       "",
	Present:       "present",
	Imperfect:     "imperfect",
	Future:        "future",
	Perfect:       "perfect",
	Pluperfect:    "pluperfect",
	FuturePerfect: "future perfect",
}

var tenseFromName = reverse(tenseNames[:])

func (t Tense) String() string { return nameOrFmt(int(t), tenseNames[:], "Tense") }

func (t Tense) MarshalJSON() ([]byte, error) { return json.Marshal(t.String()) }

func (t *Tense) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, tenseFromName, "tense")
	if err != nil {
		return err
	}
	*t = Tense(v)
	return nil
}

// Voice is verbal voice.
type Voice int

const (
	NoVoice Voice = iota
	Active
	Passive
)

var voiceNames = [...]string{
	NoVoice: "",
	Active:  "active",
	Passive: "passive",
}

var voiceFromName = reverse(voiceNames[:])

func (v Voice) String() string { return nameOrFmt(int(v), voiceNames[:], "Voice") }

func (v Voice) MarshalJSON() ([]byte, error) { return json.Marshal(v.String()) }

func (v *Voice) UnmarshalJSON(data []byte) error {
	val, err := unmarshalEnum(data, voiceFromName, "voice")
	if err != nil {
		return err
	}
	*v = Voice(val)
	return nil
}

// Mood is verbal mood, generalised here to also select the non-finite
// paradigm spaces (infinitive, participle, gerund, gerundive, supine) so
// that a single EndingKey shape covers every verb cell.
type Mood int

const (
	NoMood Mood = iota
	Indicative
	Subjunctive
	Imperative
	Infinitive
	Participle
	Gerund
	Gerundive
	Supine
)

var moodNames = [...]string{
	NoMood:      "",
	Indicative:  "indicative",
	Subjunctive: "subjunctive",
	Imperative:  "imperative",
	Infinitive:  "infinitive",
	Participle:  "participle",
	Gerund:      "gerund",
	Gerundive:   "gerundive",
	Supine:      "supine",
}

var moodFromName = reverse(moodNames[:])

func (m Mood) String() string { return nameOrFmt(int(m), moodNames[:], "Mood") }

func (m Mood) MarshalJSON() ([]byte, error) { return json.Marshal(m.String()) }

func (m *Mood) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, moodFromName, "mood")
	if err != nil {
		return err
	}
	*m = Mood(v)
	return nil
}

// Person is grammatical person.
type Person int

const (
	NoPerson Person = iota
	First
	Second
	Third
)

var personNames = [...]string{
	NoPerson: "",
	First:    "first",
	Second:   "second",
	Third:    "third",
}

var personFromName = reverse(personNames[:])

func (p Person) String() string { return nameOrFmt(int(p), personNames[:], "Person") }

func (p Person) MarshalJSON() ([]byte, error) { return json.Marshal(p.String()) }

func (p *Person) UnmarshalJSON(data []byte) error {
	v, err := unmarshalEnum(data, personFromName, "person")
	if err != nil {
		return err
	}
	*p = Person(v)
	return nil
}

// EndingKey is the tuple of grammatical tags identifying one cell of a
// word's paradigm. Fields that are vacuous for a given entity carry their
// zero value (NoCase, NoGender, ...) rather than being omitted from the
// struct, so EndingKey stays a plain comparable map key.
type EndingKey struct {
	Case   Case
	Number Number
	Gender Gender
	Degree Degree
	Tense  Tense
	Voice  Voice
	Mood   Mood
	Person Person
}

// Tags returns the tag words of the key in display order (the order a
// human would read a grammatical description: tense/voice/mood/person,
// then case, then number, then gender, then degree), skipping any tag
// that is absent (zero value) for this key. This is the "tag tuple
// rendered as space-joined tag words" that spec.md §6.2 requires for
// Parse question answers.
func (k EndingKey) Tags() []string {
	var tags []string
	add := func(s string) {
		if s != "" {
			tags = append(tags, s)
		}
	}
	add(k.Tense.String())
	add(k.Voice.String())
	add(k.Mood.String())
	add(k.Person.String())
	add(k.Case.String())
	add(k.Number.String())
	add(k.Gender.String())
	add(k.Degree.String())
	return tags
}

// String renders the key the way Parse question prompts/answers do:
// space-joined tag words, e.g. "nominative plural" or "present active
// indicative first singular".
func (k EndingKey) String() string {
	tags := k.Tags()
	s := ""
	for i, t := range tags {
		if i > 0 {
			s += " "
		}
		s += t
	}
	return s
}

func nameOrFmt(v int, names []string, label string) string {
	if v >= 0 && v < len(names) {
		return names[v]
	}
	return fmt.Sprintf("%s(%d)", label, v)
}

func reverse(names []string) map[string]int {
	m := make(map[string]int, len(names))
	for i, n := range names {
		if n != "" {
			m[n] = i
		}
	}
	return m
}

func unmarshalEnum(data []byte, from map[string]int, label string) (int, error) {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return 0, err
	}
	v, ok := from[s]
	if !ok {
		return 0, fmt.Errorf("accido: unknown %s: %q", label, s)
	}
	return v, nil
}
