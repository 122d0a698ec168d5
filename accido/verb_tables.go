package accido

// sixForms holds the six person x number cells of a finite paradigm row,
// in the fixed order 1sg, 2sg, 3sg, 1pl, 2pl, 3pl.
type sixForms [6]string

var personNumberOrder = [6]struct {
	Person Person
	Number Number
}{
	{First, Singular}, {Second, Singular}, {Third, Singular},
	{First, Plural}, {Second, Plural}, {Third, Plural},
}

// addSix records forms across the six person x number cells under the
// given base key (which must leave Person and Number at their zero value).
func addSix(e *endings, base EndingKey, forms sixForms) {
	for i, pn := range personNumberOrder {
		if forms[i] == "" {
			continue
		}
		k := base
		k.Person = pn.Person
		k.Number = pn.Number
		e.add(k, forms[i])
	}
}

// presentSystemSuffixes is the literal, per-conjugation suffix table applied
// to the present stem (infinitive minus its theme ending) for every finite
// present-system slot. Declaring these as data rather than deriving them
// algorithmically mirrors the teacher's suffixRules: an explicit,
// hand-checkable table the engine walks rather than a rule interpreter.
type finiteSlot struct {
	Tense Tense
	Voice Voice
	Mood  Mood
}

var presentSystemSuffixes = map[Conjugation]map[finiteSlot]sixForms{
	FirstConj: {
		{Present, Active, Indicative}:    {"o", "as", "at", "amus", "atis", "ant"},
		{Present, Passive, Indicative}:   {"or", "aris", "atur", "amur", "amini", "antur"},
		{Imperfect, Active, Indicative}:  {"abam", "abas", "abat", "abamus", "abatis", "abant"},
		{Imperfect, Passive, Indicative}: {"abar", "abaris", "abatur", "abamur", "abamini", "abantur"},
		{Future, Active, Indicative}:     {"abo", "abis", "abit", "abimus", "abitis", "abunt"},
		{Future, Passive, Indicative}:    {"abor", "aberis", "abitur", "abimur", "abimini", "abuntur"},
		{Present, Active, Subjunctive}:   {"em", "es", "et", "emus", "etis", "ent"},
		{Present, Passive, Subjunctive}:  {"er", "eris", "etur", "emur", "emini", "entur"},
		{Imperfect, Active, Subjunctive}: {"arem", "ares", "aret", "aremus", "aretis", "arent"},
		{Imperfect, Passive, Subjunctive}: {"arer", "areris", "aretur", "aremur", "aremini", "arentur"},
	},
	SecondConj: {
		{Present, Active, Indicative}:    {"eo", "es", "et", "emus", "etis", "ent"},
		{Present, Passive, Indicative}:   {"eor", "eris", "etur", "emur", "emini", "entur"},
		{Imperfect, Active, Indicative}:  {"ebam", "ebas", "ebat", "ebamus", "ebatis", "ebant"},
		{Imperfect, Passive, Indicative}: {"ebar", "ebaris", "ebatur", "ebamur", "ebamini", "ebantur"},
		{Future, Active, Indicative}:     {"ebo", "ebis", "ebit", "ebimus", "ebitis", "ebunt"},
		{Future, Passive, Indicative}:    {"ebor", "eberis", "ebitur", "ebimur", "ebimini", "ebuntur"},
		{Present, Active, Subjunctive}:   {"eam", "eas", "eat", "eamus", "eatis", "eant"},
		{Present, Passive, Subjunctive}:  {"ear", "earis", "eatur", "eamur", "eamini", "eantur"},
		{Imperfect, Active, Subjunctive}: {"erem", "eres", "eret", "eremus", "eretis", "erent"},
		{Imperfect, Passive, Subjunctive}: {"erer", "ereris", "eretur", "eremur", "eremini", "erentur"},
	},
	ThirdConj: {
		{Present, Active, Indicative}:    {"o", "is", "it", "imus", "itis", "unt"},
		{Present, Passive, Indicative}:   {"or", "eris", "itur", "imur", "imini", "untur"},
		{Imperfect, Active, Indicative}:  {"ebam", "ebas", "ebat", "ebamus", "ebatis", "ebant"},
		{Imperfect, Passive, Indicative}: {"ebar", "ebaris", "ebatur", "ebamur", "ebamini", "ebantur"},
		{Future, Active, Indicative}:     {"am", "es", "et", "emus", "etis", "ent"},
		{Future, Passive, Indicative}:    {"ar", "eris", "etur", "emur", "emini", "entur"},
		{Present, Active, Subjunctive}:   {"am", "as", "at", "amus", "atis", "ant"},
		{Present, Passive, Subjunctive}:  {"ar", "aris", "atur", "amur", "amini", "antur"},
		{Imperfect, Active, Subjunctive}: {"erem", "eres", "eret", "eremus", "eretis", "erent"},
		{Imperfect, Passive, Subjunctive}: {"erer", "ereris", "eretur", "eremur", "eremini", "erentur"},
	},
	MixedConj: {
		{Present, Active, Indicative}:    {"io", "is", "it", "imus", "itis", "iunt"},
		{Present, Passive, Indicative}:   {"ior", "eris", "itur", "imur", "imini", "iuntur"},
		{Imperfect, Active, Indicative}:  {"iebam", "iebas", "iebat", "iebamus", "iebatis", "iebant"},
		{Imperfect, Passive, Indicative}: {"iebar", "iebaris", "iebatur", "iebamur", "iebamini", "iebantur"},
		{Future, Active, Indicative}:     {"iam", "ies", "iet", "iemus", "ietis", "ient"},
		{Future, Passive, Indicative}:    {"iar", "ieris", "ietur", "iemur", "iemini", "ientur"},
		{Present, Active, Subjunctive}:   {"iam", "ias", "iat", "iamus", "iatis", "iant"},
		{Present, Passive, Subjunctive}:  {"iar", "iaris", "iatur", "iamur", "iamini", "iantur"},
		{Imperfect, Active, Subjunctive}: {"erem", "eres", "eret", "eremus", "eretis", "erent"},
		{Imperfect, Passive, Subjunctive}: {"erer", "ereris", "eretur", "eremur", "eremini", "erentur"},
	},
	FourthConj: {
		{Present, Active, Indicative}:    {"io", "is", "it", "imus", "itis", "iunt"},
		{Present, Passive, Indicative}:   {"ior", "iris", "itur", "imur", "imini", "iuntur"},
		{Imperfect, Active, Indicative}:  {"iebam", "iebas", "iebat", "iebamus", "iebatis", "iebant"},
		{Imperfect, Passive, Indicative}: {"iebar", "iebaris", "iebatur", "iebamur", "iebamini", "iebantur"},
		{Future, Active, Indicative}:     {"iam", "ies", "iet", "iemus", "ietis", "ient"},
		{Future, Passive, Indicative}:    {"iar", "ieris", "ietur", "iemur", "iemini", "ientur"},
		{Present, Active, Subjunctive}:   {"iam", "ias", "iat", "iamus", "iatis", "iant"},
		{Present, Passive, Subjunctive}:  {"iar", "iaris", "iatur", "iamur", "iamini", "iantur"},
		{Imperfect, Active, Subjunctive}: {"irem", "ires", "iret", "iremus", "iretis", "irent"},
		{Imperfect, Passive, Subjunctive}: {"irer", "ireris", "iretur", "iremur", "iremini", "irentur"},
	},
}

// perfectSystemActiveSuffixes apply to the perfect stem for every active
// finite perfect-system slot.
var perfectSystemActiveSuffixes = map[finiteSlot]sixForms{
	{Perfect, Active, Indicative}:       {"i", "isti", "it", "imus", "istis", "erunt"},
	{Pluperfect, Active, Indicative}:    {"eram", "eras", "erat", "eramus", "eratis", "erant"},
	{FuturePerfect, Active, Indicative}: {"ero", "eris", "erit", "erimus", "eritis", "erint"},
	{Perfect, Active, Subjunctive}:      {"erim", "eris", "erit", "erimus", "eritis", "erint"},
	{Pluperfect, Active, Subjunctive}:   {"issem", "isses", "isset", "issemus", "issetis", "issent"},
}

// The sum* tables are the hand-authored paradigm of the irregular verb "esse" (to
// be), needed both as the entry for "sum" itself and to build the
// periphrastic passive perfect system of every regular/irregular verb.
var sumPresentIndicative = sixForms{"sum", "es", "est", "sumus", "estis", "sunt"}
var sumImperfectIndicative = sixForms{"eram", "eras", "erat", "eramus", "eratis", "erant"}
var sumFutureIndicative = sixForms{"ero", "eris", "erit", "erimus", "eritis", "erunt"}
var sumPresentSubjunctive = sixForms{"sim", "sis", "sit", "simus", "sitis", "sint"}
var sumImperfectSubjunctive = sixForms{"essem", "esses", "esset", "essemus", "essetis", "essent"}

// imperativeSuffixes apply to the present stem. Imperatives only have
// second and third person forms; first-person cells are left empty.
var imperativeSuffixes = map[Conjugation]map[finiteSlot]sixForms{
	FirstConj: {
		{Present, Active, Imperative}:  {"", "a", "", "", "ate", ""},
		{Present, Passive, Imperative}: {"", "are", "", "", "amini", ""},
		{Future, Active, Imperative}:   {"", "ato", "ato", "", "atote", "anto"},
		{Future, Passive, Imperative}:  {"", "ator", "ator", "", "", "antor"},
	},
	SecondConj: {
		{Present, Active, Imperative}:  {"", "e", "", "", "ete", ""},
		{Present, Passive, Imperative}: {"", "ere", "", "", "emini", ""},
		{Future, Active, Imperative}:   {"", "eto", "eto", "", "etote", "ento"},
		{Future, Passive, Imperative}:  {"", "etor", "etor", "", "", "entor"},
	},
	ThirdConj: {
		{Present, Active, Imperative}:  {"", "e", "", "", "ite", ""},
		{Present, Passive, Imperative}: {"", "ere", "", "", "imini", ""},
		{Future, Active, Imperative}:   {"", "ito", "ito", "", "itote", "unto"},
		{Future, Passive, Imperative}:  {"", "itor", "itor", "", "", "untor"},
	},
	MixedConj: {
		{Present, Active, Imperative}:  {"", "e", "", "", "ite", ""},
		{Present, Passive, Imperative}: {"", "ere", "", "", "imini", ""},
		{Future, Active, Imperative}:   {"", "ito", "ito", "", "itote", "iunto"},
		{Future, Passive, Imperative}:  {"", "itor", "itor", "", "", "iuntor"},
	},
	FourthConj: {
		{Present, Active, Imperative}:  {"", "i", "", "", "ite", ""},
		{Present, Passive, Imperative}: {"", "ire", "", "", "imini", ""},
		{Future, Active, Imperative}:   {"", "ito", "ito", "", "itote", "iunto"},
		{Future, Passive, Imperative}:  {"", "itor", "itor", "", "", "iuntor"},
	},
}

// presentActiveInfinitiveSuffix / presentPassiveInfinitiveSuffix: applied to the present stem;
// future active uses the future active participle stem + "esse", perfect
// active applies to the perfect stem.
var presentActiveInfinitiveSuffix = map[Conjugation]string{
	FirstConj: "are", SecondConj: "ere", ThirdConj: "ere", MixedConj: "ere", FourthConj: "ire",
}
var presentPassiveInfinitiveSuffix = map[Conjugation]string{
	FirstConj: "ari", SecondConj: "eri", ThirdConj: "i", MixedConj: "i", FourthConj: "iri",
}

// participle theme vowels per conjugation for the present active
// participle stem (-ns/-ntis) and the gerund / gerundive stem
// (-ndus/-ndi). The future active participle is built from the supine
// stem instead.
var presentParticipleTheme = map[Conjugation]string{
	FirstConj: "a", SecondConj: "e", ThirdConj: "e", MixedConj: "ie", FourthConj: "ie",
}
var gerundTheme = map[Conjugation]string{
	FirstConj: "and", SecondConj: "end", ThirdConj: "end", MixedConj: "iend", FourthConj: "iend",
}
