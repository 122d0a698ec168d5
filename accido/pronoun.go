package accido

// PronounKind enumerates the closed set of pronouns this kernel supports,
// each carrying its own hand-authored table rather than a declension rule
// (pronoun paradigms are too irregular to derive mechanically; spec.md
// §4.5's "pronouns are a closed list").
type PronounKind int

const (
	PronounKindUnknown PronounKind = iota
	PronounHicHaecHoc
	PronounIlleIllaIllud
	PronounIsEaId
	PronounQuiQuaeQuod
	PronounIpseIpsaIpsum
)

// Pronoun is a Latin pronoun entity. Unlike Noun/Adjective it carries no
// stem-derivation logic at all: build() just loads the literal table for
// its kind.
type Pronoun struct {
	kind     PronounKind
	meanings Meanings
	endings  endings
}

var pronounHeadwords = map[PronounKind]string{
	PronounHicHaecHoc:    "hic",
	PronounIlleIllaIllud: "ille",
	PronounIsEaId:        "is",
	PronounQuiQuaeQuod:   "qui",
	PronounIpseIpsaIpsum: "ipse",
}

// pronounTables holds the complete (case, number, gender) -> form table
// for each supported pronoun, hand-transcribed from the standard paradigm
// (spec.md §8 scenario 5 cites "hic, haec, hoc" genitive plural feminine
// "harum" as a worked example).
var pronounTables = map[PronounKind]map[EndingKey]string{
	PronounHicHaecHoc: {
		{Case: Nominative, Number: Singular, Gender: Masculine}: "hic",
		{Case: Nominative, Number: Singular, Gender: Feminine}:  "haec",
		{Case: Nominative, Number: Singular, Gender: Neuter}:    "hoc",
		{Case: Accusative, Number: Singular, Gender: Masculine}: "hunc",
		{Case: Accusative, Number: Singular, Gender: Feminine}:  "hanc",
		{Case: Accusative, Number: Singular, Gender: Neuter}:    "hoc",
		{Case: Genitive, Number: Singular, Gender: Masculine}:   "huius",
		{Case: Genitive, Number: Singular, Gender: Feminine}:    "huius",
		{Case: Genitive, Number: Singular, Gender: Neuter}:      "huius",
		{Case: Dative, Number: Singular, Gender: Masculine}:     "huic",
		{Case: Dative, Number: Singular, Gender: Feminine}:      "huic",
		{Case: Dative, Number: Singular, Gender: Neuter}:        "huic",
		{Case: Ablative, Number: Singular, Gender: Masculine}:   "hoc",
		{Case: Ablative, Number: Singular, Gender: Feminine}:    "hac",
		{Case: Ablative, Number: Singular, Gender: Neuter}:      "hoc",
		{Case: Nominative, Number: Plural, Gender: Masculine}:   "hi",
		{Case: Nominative, Number: Plural, Gender: Feminine}:    "hae",
		{Case: Nominative, Number: Plural, Gender: Neuter}:      "haec",
		{Case: Accusative, Number: Plural, Gender: Masculine}:   "hos",
		{Case: Accusative, Number: Plural, Gender: Feminine}:    "has",
		{Case: Accusative, Number: Plural, Gender: Neuter}:      "haec",
		{Case: Genitive, Number: Plural, Gender: Masculine}:     "horum",
		{Case: Genitive, Number: Plural, Gender: Feminine}:      "harum",
		{Case: Genitive, Number: Plural, Gender: Neuter}:        "horum",
		{Case: Dative, Number: Plural, Gender: Masculine}:       "his",
		{Case: Dative, Number: Plural, Gender: Feminine}:        "his",
		{Case: Dative, Number: Plural, Gender: Neuter}:          "his",
		{Case: Ablative, Number: Plural, Gender: Masculine}:     "his",
		{Case: Ablative, Number: Plural, Gender: Feminine}:      "his",
		{Case: Ablative, Number: Plural, Gender: Neuter}:        "his",
	},
	PronounIsEaId: {
		{Case: Nominative, Number: Singular, Gender: Masculine}: "is",
		{Case: Nominative, Number: Singular, Gender: Feminine}:  "ea",
		{Case: Nominative, Number: Singular, Gender: Neuter}:    "id",
		{Case: Accusative, Number: Singular, Gender: Masculine}: "eum",
		{Case: Accusative, Number: Singular, Gender: Feminine}:  "eam",
		{Case: Accusative, Number: Singular, Gender: Neuter}:    "id",
		{Case: Genitive, Number: Singular, Gender: Masculine}:   "eius",
		{Case: Genitive, Number: Singular, Gender: Feminine}:    "eius",
		{Case: Genitive, Number: Singular, Gender: Neuter}:      "eius",
		{Case: Dative, Number: Singular, Gender: Masculine}:     "ei",
		{Case: Dative, Number: Singular, Gender: Feminine}:      "ei",
		{Case: Dative, Number: Singular, Gender: Neuter}:        "ei",
		{Case: Ablative, Number: Singular, Gender: Masculine}:   "eo",
		{Case: Ablative, Number: Singular, Gender: Feminine}:    "ea",
		{Case: Ablative, Number: Singular, Gender: Neuter}:      "eo",
		{Case: Nominative, Number: Plural, Gender: Masculine}:   "ei",
		{Case: Nominative, Number: Plural, Gender: Feminine}:    "eae",
		{Case: Nominative, Number: Plural, Gender: Neuter}:      "ea",
		{Case: Accusative, Number: Plural, Gender: Masculine}:   "eos",
		{Case: Accusative, Number: Plural, Gender: Feminine}:    "eas",
		{Case: Accusative, Number: Plural, Gender: Neuter}:      "ea",
		{Case: Genitive, Number: Plural, Gender: Masculine}:     "eorum",
		{Case: Genitive, Number: Plural, Gender: Feminine}:      "earum",
		{Case: Genitive, Number: Plural, Gender: Neuter}:        "eorum",
		{Case: Dative, Number: Plural, Gender: Masculine}:       "eis",
		{Case: Dative, Number: Plural, Gender: Feminine}:        "eis",
		{Case: Dative, Number: Plural, Gender: Neuter}:          "eis",
		{Case: Ablative, Number: Plural, Gender: Masculine}:     "eis",
		{Case: Ablative, Number: Plural, Gender: Feminine}:      "eis",
		{Case: Ablative, Number: Plural, Gender: Neuter}:        "eis",
	},
	PronounIlleIllaIllud: {
		{Case: Nominative, Number: Singular, Gender: Masculine}: "ille",
		{Case: Nominative, Number: Singular, Gender: Feminine}:  "illa",
		{Case: Nominative, Number: Singular, Gender: Neuter}:    "illud",
		{Case: Accusative, Number: Singular, Gender: Masculine}: "illum",
		{Case: Accusative, Number: Singular, Gender: Feminine}:  "illam",
		{Case: Accusative, Number: Singular, Gender: Neuter}:    "illud",
		{Case: Genitive, Number: Singular, Gender: Masculine}:   "illius",
		{Case: Genitive, Number: Singular, Gender: Feminine}:    "illius",
		{Case: Genitive, Number: Singular, Gender: Neuter}:      "illius",
		{Case: Dative, Number: Singular, Gender: Masculine}:     "illi",
		{Case: Dative, Number: Singular, Gender: Feminine}:      "illi",
		{Case: Dative, Number: Singular, Gender: Neuter}:        "illi",
		{Case: Ablative, Number: Singular, Gender: Masculine}:   "illo",
		{Case: Ablative, Number: Singular, Gender: Feminine}:    "illa",
		{Case: Ablative, Number: Singular, Gender: Neuter}:      "illo",
		{Case: Nominative, Number: Plural, Gender: Masculine}:   "illi",
		{Case: Nominative, Number: Plural, Gender: Feminine}:    "illae",
		{Case: Nominative, Number: Plural, Gender: Neuter}:      "illa",
		{Case: Accusative, Number: Plural, Gender: Masculine}:   "illos",
		{Case: Accusative, Number: Plural, Gender: Feminine}:    "illas",
		{Case: Accusative, Number: Plural, Gender: Neuter}:      "illa",
		{Case: Genitive, Number: Plural, Gender: Masculine}:     "illorum",
		{Case: Genitive, Number: Plural, Gender: Feminine}:      "illarum",
		{Case: Genitive, Number: Plural, Gender: Neuter}:        "illorum",
		{Case: Dative, Number: Plural, Gender: Masculine}:       "illis",
		{Case: Dative, Number: Plural, Gender: Feminine}:        "illis",
		{Case: Dative, Number: Plural, Gender: Neuter}:          "illis",
		{Case: Ablative, Number: Plural, Gender: Masculine}:     "illis",
		{Case: Ablative, Number: Plural, Gender: Feminine}:      "illis",
		{Case: Ablative, Number: Plural, Gender: Neuter}:        "illis",
	},
	PronounQuiQuaeQuod: {
		{Case: Nominative, Number: Singular, Gender: Masculine}: "qui",
		{Case: Nominative, Number: Singular, Gender: Feminine}:  "quae",
		{Case: Nominative, Number: Singular, Gender: Neuter}:    "quod",
		{Case: Accusative, Number: Singular, Gender: Masculine}: "quem",
		{Case: Accusative, Number: Singular, Gender: Feminine}:  "quam",
		{Case: Accusative, Number: Singular, Gender: Neuter}:    "quod",
		{Case: Genitive, Number: Singular, Gender: Masculine}:   "cuius",
		{Case: Genitive, Number: Singular, Gender: Feminine}:    "cuius",
		{Case: Genitive, Number: Singular, Gender: Neuter}:      "cuius",
		{Case: Dative, Number: Singular, Gender: Masculine}:     "cui",
		{Case: Dative, Number: Singular, Gender: Feminine}:      "cui",
		{Case: Dative, Number: Singular, Gender: Neuter}:        "cui",
		{Case: Ablative, Number: Singular, Gender: Masculine}:   "quo",
		{Case: Ablative, Number: Singular, Gender: Feminine}:    "qua",
		{Case: Ablative, Number: Singular, Gender: Neuter}:      "quo",
		{Case: Nominative, Number: Plural, Gender: Masculine}:   "qui",
		{Case: Nominative, Number: Plural, Gender: Feminine}:    "quae",
		{Case: Nominative, Number: Plural, Gender: Neuter}:      "quae",
		{Case: Accusative, Number: Plural, Gender: Masculine}:   "quos",
		{Case: Accusative, Number: Plural, Gender: Feminine}:    "quas",
		{Case: Accusative, Number: Plural, Gender: Neuter}:      "quae",
		{Case: Genitive, Number: Plural, Gender: Masculine}:     "quorum",
		{Case: Genitive, Number: Plural, Gender: Feminine}:      "quarum",
		{Case: Genitive, Number: Plural, Gender: Neuter}:        "quorum",
		{Case: Dative, Number: Plural, Gender: Masculine}:       "quibus",
		{Case: Dative, Number: Plural, Gender: Feminine}:        "quibus",
		{Case: Dative, Number: Plural, Gender: Neuter}:          "quibus",
		{Case: Ablative, Number: Plural, Gender: Masculine}:     "quibus",
		{Case: Ablative, Number: Plural, Gender: Feminine}:      "quibus",
		{Case: Ablative, Number: Plural, Gender: Neuter}:        "quibus",
	},
	PronounIpseIpsaIpsum: {
		{Case: Nominative, Number: Singular, Gender: Masculine}: "ipse",
		{Case: Nominative, Number: Singular, Gender: Feminine}:  "ipsa",
		{Case: Nominative, Number: Singular, Gender: Neuter}:    "ipsum",
		{Case: Accusative, Number: Singular, Gender: Masculine}: "ipsum",
		{Case: Accusative, Number: Singular, Gender: Feminine}:  "ipsam",
		{Case: Accusative, Number: Singular, Gender: Neuter}:    "ipsum",
		{Case: Genitive, Number: Singular, Gender: Masculine}:   "ipsius",
		{Case: Genitive, Number: Singular, Gender: Feminine}:    "ipsius",
		{Case: Genitive, Number: Singular, Gender: Neuter}:      "ipsius",
		{Case: Dative, Number: Singular, Gender: Masculine}:     "ipsi",
		{Case: Dative, Number: Singular, Gender: Feminine}:      "ipsi",
		{Case: Dative, Number: Singular, Gender: Neuter}:        "ipsi",
		{Case: Ablative, Number: Singular, Gender: Masculine}:   "ipso",
		{Case: Ablative, Number: Singular, Gender: Feminine}:    "ipsa",
		{Case: Ablative, Number: Singular, Gender: Neuter}:      "ipso",
		{Case: Nominative, Number: Plural, Gender: Masculine}:   "ipsi",
		{Case: Nominative, Number: Plural, Gender: Feminine}:    "ipsae",
		{Case: Nominative, Number: Plural, Gender: Neuter}:      "ipsa",
		{Case: Accusative, Number: Plural, Gender: Masculine}:   "ipsos",
		{Case: Accusative, Number: Plural, Gender: Feminine}:    "ipsas",
		{Case: Accusative, Number: Plural, Gender: Neuter}:      "ipsa",
		{Case: Genitive, Number: Plural, Gender: Masculine}:     "ipsorum",
		{Case: Genitive, Number: Plural, Gender: Feminine}:      "ipsarum",
		{Case: Genitive, Number: Plural, Gender: Neuter}:        "ipsorum",
		{Case: Dative, Number: Plural, Gender: Masculine}:       "ipsis",
		{Case: Dative, Number: Plural, Gender: Feminine}:        "ipsis",
		{Case: Dative, Number: Plural, Gender: Neuter}:          "ipsis",
		{Case: Ablative, Number: Plural, Gender: Masculine}:     "ipsis",
		{Case: Ablative, Number: Plural, Gender: Feminine}:      "ipsis",
		{Case: Ablative, Number: Plural, Gender: Neuter}:        "ipsis",
	},
}

// PronounKindByHeadword reports which PronounKind is cited by headword
// (its masculine nominative singular form, e.g. "hic" or "ille"), for Lego
// to resolve a vocab-file entry's first principal part to a kind without
// reaching into this package's internal table.
func PronounKindByHeadword(headword string) (PronounKind, bool) {
	for kind, hw := range pronounHeadwords {
		if hw == headword {
			return kind, true
		}
	}
	return PronounKindUnknown, false
}

// MakePronoun constructs a Pronoun by loading the literal table for kind.
func MakePronoun(kind PronounKind, meaning Meanings) (*Pronoun, error) {
	table, ok := pronounTables[kind]
	if !ok {
		return nil, &InvalidInputError{Reason: "unsupported pronoun kind"}
	}
	p := &Pronoun{kind: kind, meanings: meaning, endings: newEndings()}
	for k, form := range table {
		p.endings.add(k, form)
	}
	return p, nil
}

func (p *Pronoun) Headword() string  { return pronounHeadwords[p.kind] }
func (p *Pronoun) Meanings() Meanings { return p.meanings }
func (p *Pronoun) Kind() PronounKind  { return p.kind }

func (p *Pronoun) Get(key EndingKey) (EndingValue, error) {
	return p.endings.get(key, pronounHeadwords[p.kind])
}
func (p *Pronoun) FindKeys(form string) []EndingKey         { return p.endings.findKeys(form) }
func (p *Pronoun) Forms(yield func(EndingKey, string) bool) { p.endings.forEach(yield) }

// DictionaryEntry renders the pronoun's citation line.
func (p *Pronoun) DictionaryEntry() string {
	return p.meanings.Principal() + ": " + pronounHeadwords[p.kind]
}
