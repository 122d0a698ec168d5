package accido

import "strings"

// Declension is the inferred noun declension class.
type Declension int

const (
	DeclensionUnknown Declension = iota
	FirstDeclension
	SecondDeclension
	ThirdDeclension
	FourthDeclension
	FifthDeclension
	IrregularDeclension
)

// Noun is a Latin noun entity: nominative, genitive, gender, and the
// derived declension and case x number paradigm.
type Noun struct {
	nominative   string
	genitive     string
	gender       Gender
	declension   Declension
	pluraleTant  bool
	meanings     Meanings
	endings      endings
}

// firstDeclEndings, ... are the per-declension case endings applied to the
// genitive-derived stem, keyed by (case, number). Neuter nouns override
// accusative/vocative with the nominative form at construction time, per
// spec.md §4.1's "nominative = accusative = vocative in every number" rule.
var (
	firstDeclEndings = map[EndingKey]string{
		{Case: Nominative, Number: Singular}: "a",
		{Case: Vocative, Number: Singular}:   "a",
		{Case: Accusative, Number: Singular}: "am",
		{Case: Genitive, Number: Singular}:   "ae",
		{Case: Dative, Number: Singular}:     "ae",
		{Case: Ablative, Number: Singular}:   "a",
		{Case: Nominative, Number: Plural}:   "ae",
		{Case: Vocative, Number: Plural}:     "ae",
		{Case: Accusative, Number: Plural}:   "as",
		{Case: Genitive, Number: Plural}:     "arum",
		{Case: Dative, Number: Plural}:       "is",
		{Case: Ablative, Number: Plural}:     "is",
	}

	secondDeclEndingsMasc = map[EndingKey]string{
		{Case: Nominative, Number: Singular}: "us",
		{Case: Vocative, Number: Singular}:   "e",
		{Case: Accusative, Number: Singular}: "um",
		{Case: Genitive, Number: Singular}:   "i",
		{Case: Dative, Number: Singular}:     "o",
		{Case: Ablative, Number: Singular}:   "o",
		{Case: Nominative, Number: Plural}:   "i",
		{Case: Vocative, Number: Plural}:     "i",
		{Case: Accusative, Number: Plural}:   "os",
		{Case: Genitive, Number: Plural}:     "orum",
		{Case: Dative, Number: Plural}:       "is",
		{Case: Ablative, Number: Plural}:     "is",
	}

	secondDeclEndingsNeut = map[EndingKey]string{
		{Case: Nominative, Number: Singular}: "um",
		{Case: Vocative, Number: Singular}:   "um",
		{Case: Accusative, Number: Singular}: "um",
		{Case: Genitive, Number: Singular}:   "i",
		{Case: Dative, Number: Singular}:     "o",
		{Case: Ablative, Number: Singular}:   "o",
		{Case: Nominative, Number: Plural}:   "a",
		{Case: Vocative, Number: Plural}:     "a",
		{Case: Accusative, Number: Plural}:   "a",
		{Case: Genitive, Number: Plural}:     "orum",
		{Case: Dative, Number: Plural}:       "is",
		{Case: Ablative, Number: Plural}:     "is",
	}

	// third declension consonant-stem endings (non-neuter); applied to the
	// genitive-singular stem (genitive minus "is").
	thirdDeclEndings = map[EndingKey]string{
		{Case: Nominative, Number: Singular}: "", // nominative is irregular/given, not derived
		{Case: Vocative, Number: Singular}:   "",
		{Case: Accusative, Number: Singular}: "em",
		{Case: Genitive, Number: Singular}:   "is",
		{Case: Dative, Number: Singular}:     "i",
		{Case: Ablative, Number: Singular}:   "e",
		{Case: Nominative, Number: Plural}:   "es",
		{Case: Vocative, Number: Plural}:     "es",
		{Case: Accusative, Number: Plural}:   "es",
		{Case: Genitive, Number: Plural}:     "um",
		{Case: Dative, Number: Plural}:       "ibus",
		{Case: Ablative, Number: Plural}:     "ibus",
	}

	// third declension i-stem endings (non-neuter): ablative singular -i
	// is attested for some (pure i-stems) but the common adjective-derived
	// pattern uses -e; accusative plural -is is classical, -es is common.
	// This table keeps -e ablative singular and -es accusative plural and
	// differs from the consonant-stem table only in its -ium genitive plural.
	// Neuter third-declension nouns use thirdDeclNeutEndings whether or not
	// they are i-stems.
	thirdDeclIStemEndings = map[EndingKey]string{
		{Case: Nominative, Number: Singular}: "",
		{Case: Vocative, Number: Singular}:   "",
		{Case: Accusative, Number: Singular}: "em",
		{Case: Genitive, Number: Singular}:   "is",
		{Case: Dative, Number: Singular}:     "i",
		{Case: Ablative, Number: Singular}:   "e",
		{Case: Nominative, Number: Plural}:   "es",
		{Case: Vocative, Number: Plural}:     "es",
		{Case: Accusative, Number: Plural}:   "es",
		{Case: Genitive, Number: Plural}:     "ium",
		{Case: Dative, Number: Plural}:       "ibus",
		{Case: Ablative, Number: Plural}:     "ibus",
	}

	thirdDeclNeutEndings = map[EndingKey]string{
		{Case: Nominative, Number: Singular}: "",
		{Case: Vocative, Number: Singular}:   "",
		{Case: Accusative, Number: Singular}: "",
		{Case: Genitive, Number: Singular}:   "is",
		{Case: Dative, Number: Singular}:     "i",
		{Case: Ablative, Number: Singular}:   "e",
		{Case: Nominative, Number: Plural}:   "a",
		{Case: Vocative, Number: Plural}:     "a",
		{Case: Accusative, Number: Plural}:   "a",
		{Case: Genitive, Number: Plural}:     "um",
		{Case: Dative, Number: Plural}:       "ibus",
		{Case: Ablative, Number: Plural}:     "ibus",
	}

	fourthDeclEndingsMasc = map[EndingKey]string{
		{Case: Nominative, Number: Singular}: "us",
		{Case: Vocative, Number: Singular}:   "us",
		{Case: Accusative, Number: Singular}: "um",
		{Case: Genitive, Number: Singular}:   "us",
		{Case: Dative, Number: Singular}:     "ui",
		{Case: Ablative, Number: Singular}:   "u",
		{Case: Nominative, Number: Plural}:   "us",
		{Case: Vocative, Number: Plural}:     "us",
		{Case: Accusative, Number: Plural}:   "us",
		{Case: Genitive, Number: Plural}:     "uum",
		{Case: Dative, Number: Plural}:       "ibus",
		{Case: Ablative, Number: Plural}:     "ibus",
	}

	fourthDeclEndingsNeut = map[EndingKey]string{
		{Case: Nominative, Number: Singular}: "u",
		{Case: Vocative, Number: Singular}:   "u",
		{Case: Accusative, Number: Singular}: "u",
		{Case: Genitive, Number: Singular}:   "us",
		{Case: Dative, Number: Singular}:     "u",
		{Case: Ablative, Number: Singular}:   "u",
		{Case: Nominative, Number: Plural}:   "ua",
		{Case: Vocative, Number: Plural}:     "ua",
		{Case: Accusative, Number: Plural}:   "ua",
		{Case: Genitive, Number: Plural}:     "uum",
		{Case: Dative, Number: Plural}:       "ibus",
		{Case: Ablative, Number: Plural}:     "ibus",
	}

	fifthDeclEndings = map[EndingKey]string{
		{Case: Nominative, Number: Singular}: "es",
		{Case: Vocative, Number: Singular}:   "es",
		{Case: Accusative, Number: Singular}: "em",
		{Case: Genitive, Number: Singular}:   "ei",
		{Case: Dative, Number: Singular}:     "ei",
		{Case: Ablative, Number: Singular}:   "e",
		{Case: Nominative, Number: Plural}:   "es",
		{Case: Vocative, Number: Plural}:     "es",
		{Case: Accusative, Number: Plural}:   "es",
		{Case: Genitive, Number: Plural}:     "erum",
		{Case: Dative, Number: Plural}:       "ebus",
		{Case: Ablative, Number: Plural}:     "ebus",
	}
)

// inferDeclension applies the declension pick table of spec.md §4.1 to the
// (nominative, genitive, gender) triple.
func inferDeclension(nom, gen string, gender Gender) (Declension, error) {
	switch {
	case strings.HasSuffix(gen, "ae"):
		return FirstDeclension, nil
	case strings.HasSuffix(gen, "i") && !strings.HasSuffix(gen, "ei"):
		return SecondDeclension, nil
	case strings.HasSuffix(gen, "is"):
		return ThirdDeclension, nil
	case strings.HasSuffix(gen, "us") && (gender == Masculine || gender == Neuter):
		return FourthDeclension, nil
	case strings.HasSuffix(gen, "ei"):
		return FifthDeclension, nil
	default:
		return DeclensionUnknown, &InvalidInputError{
			Reason: "unrecognised genitive/gender combination: genitive=" + gen,
		}
	}
}

// isIStem applies the common textbook heuristic for third-declension
// i-stems: nominative singular ends in -is/-es, or the genitive stem ends
// in two consonants, per spec.md §4.1's "i-stem detected by nominative
// shape". Syllable counts of nominative and genitive are not compared.
func isIStem(nom, genStem string) bool {
	if strings.HasSuffix(nom, "is") || strings.HasSuffix(nom, "es") {
		return true
	}
	if len(genStem) >= 2 {
		last := genStem[len(genStem)-1]
		secondLast := genStem[len(genStem)-2]
		if !isVowelByte(last) && !isVowelByte(secondLast) {
			return true
		}
	}
	return false
}

func isVowelByte(b byte) bool {
	switch b {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}

// MakeNoun constructs a Noun, inferring its declension from the
// nominative/genitive pair and gender, and eagerly building the full
// case x number paradigm.
func MakeNoun(nominative, genitive string, gender Gender, meaning Meanings) (*Noun, error) {
	if nominative == "" || genitive == "" {
		return nil, &InvalidInputError{Reason: "noun requires non-empty nominative and genitive"}
	}
	declension, err := inferDeclension(nominative, genitive, gender)
	if err != nil {
		return nil, err
	}

	n := &Noun{
		nominative: nominative,
		genitive:   genitive,
		gender:     gender,
		declension: declension,
		meanings:   meaning,
		endings:    newEndings(),
	}
	n.build()
	return n, nil
}

// MakeIrregularNoun constructs a Noun with an explicit, hand-authored
// ending table (e.g. domus, vis, Iuppiter), bypassing declension
// inference per spec.md §4.1's "Irregular nouns carry explicit tables."
func MakeIrregularNoun(nominative string, gender Gender, meaning Meanings, table map[EndingKey]string) *Noun {
	n := &Noun{
		nominative: nominative,
		gender:     gender,
		declension: IrregularDeclension,
		meanings:   meaning,
		endings:    newEndings(),
	}
	for k, form := range table {
		n.endings.add(k, form)
	}
	return n
}

func (n *Noun) build() {
	var table map[EndingKey]string
	stem := ""

	switch n.declension {
	case FirstDeclension:
		stem = strings.TrimSuffix(n.genitive, "ae")
		table = firstDeclEndings
	case SecondDeclension:
		stem = strings.TrimSuffix(n.genitive, "i")
		if n.gender == Neuter {
			table = secondDeclEndingsNeut
		} else {
			table = secondDeclEndingsMasc
		}
	case ThirdDeclension:
		stem = strings.TrimSuffix(n.genitive, "is")
		switch {
		case n.gender == Neuter:
			table = thirdDeclNeutEndings
		case isIStem(n.nominative, stem):
			table = thirdDeclIStemEndings
		default:
			table = thirdDeclEndings
		}
	case FourthDeclension:
		stem = strings.TrimSuffix(n.genitive, "us")
		if n.gender == Neuter {
			table = fourthDeclEndingsNeut
		} else {
			table = fourthDeclEndingsMasc
		}
	case FifthDeclension:
		stem = strings.TrimSuffix(n.genitive, "ei")
		table = fifthDeclEndings
	default:
		return
	}

	for key, ending := range table {
		var form string
		switch {
		case key.Case == Nominative && key.Number == Singular:
			form = n.nominative
		case ending == "":
			// third declension nominative/vocative singular: irregular,
			// not mechanically derivable from the genitive stem.
			form = n.nominative
		default:
			form = stem + ending
		}
		n.endings.add(key, form)
	}

	// Neuter rule: nominative = accusative = vocative in every number.
	if n.gender == Neuter {
		for _, num := range []Number{Singular, Plural} {
			if nomForms, err := n.endings.get(EndingKey{Case: Nominative, Number: num}, n.nominative); err == nil {
				for _, f := range nomForms {
					n.endings.add(EndingKey{Case: Accusative, Number: num}, f)
					n.endings.add(EndingKey{Case: Vocative, Number: num}, f)
				}
			}
		}
	}
}

func (n *Noun) Headword() string  { return n.nominative }
func (n *Noun) Meanings() Meanings { return n.meanings }
func (n *Noun) Declension() Declension { return n.declension }
func (n *Noun) Gender() Gender     { return n.gender }
func (n *Noun) PluraleTantum() bool { return n.pluraleTant }

func (n *Noun) Get(key EndingKey) (EndingValue, error) { return n.endings.get(key, n.nominative) }
func (n *Noun) FindKeys(form string) []EndingKey        { return n.endings.findKeys(form) }
func (n *Noun) Forms(yield func(EndingKey, string) bool) { n.endings.forEach(yield) }

// DictionaryEntry renders the "headword: nominative, genitive, (gender)"
// form used as ParseWordLatToCompQuestion.dictionary_entry in spec.md §6.2.
func (n *Noun) DictionaryEntry() string {
	genderAbbrev := map[Gender]string{Masculine: "m", Feminine: "f", Neuter: "n"}[n.gender]
	return n.meanings.Principal() + ": " + n.nominative + ", " + n.genitive + ", (" + genderAbbrev + ")"
}
