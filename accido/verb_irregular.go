package accido

// irregularVerbBuilders hand-authors the paradigm of each of the ten
// irregular verbs spec.md §4.1 names: their present systems fit no
// regular conjugation's suffix table, so each is built cell-by-cell
// instead of inferred from the infinitive shape. Coverage favours the
// forms vocabulary testing actually exercises (finite present system,
// infinitive, the commoner imperative/participle cells) over completism;
// the rarer archaic alternates (edo's es/est/essem doublets with sum,
// inquam's further defective forms) are left out.
var irregularVerbBuilders = map[string]func(Meanings) *Verb{
	"sum":    buildSum,
	"possum": buildPossum,
	"volo":   buildVolo,
	"nolo":   buildNolo,
	"malo":   buildMalo,
	"eo":     buildEo,
	"fero":   buildFero,
	"fio":    buildFio,
	"edo":    buildEdo,
	"inquam": buildInquam,
}

// MakeNamedIrregularVerb looks headword up among the ten irregular verbs
// and builds its hand-authored paradigm via MakeIrregularVerb.
func MakeNamedIrregularVerb(headword string, meaning Meanings) (*Verb, error) {
	build, ok := irregularVerbBuilders[headword]
	if !ok {
		return nil, &InvalidInputError{Reason: "unrecognised irregular verb: " + headword}
	}
	return build(meaning), nil
}

func buildSum(meaning Meanings) *Verb {
	return MakeIrregularVerb("sum", "esse", "fui", "", meaning, func(e *endings) {
		addSix(e, EndingKey{Tense: Present, Voice: Active, Mood: Indicative}, sumPresentIndicative)
		addSix(e, EndingKey{Tense: Imperfect, Voice: Active, Mood: Indicative}, sumImperfectIndicative)
		addSix(e, EndingKey{Tense: Future, Voice: Active, Mood: Indicative}, sumFutureIndicative)
		addSix(e, EndingKey{Tense: Present, Voice: Active, Mood: Subjunctive}, sumPresentSubjunctive)
		addSix(e, EndingKey{Tense: Imperfect, Voice: Active, Mood: Subjunctive}, sumImperfectSubjunctive)
		e.add(EndingKey{Tense: Present, Voice: Active, Mood: Infinitive}, "esse")
		e.add(EndingKey{Tense: Future, Voice: Active, Mood: Infinitive}, "futurus esse")
		addSix(e, EndingKey{Tense: Present, Voice: Active, Mood: Imperative}, sixForms{"", "es", "", "", "este", ""})
		addSix(e, EndingKey{Tense: Future, Voice: Active, Mood: Imperative}, sixForms{"", "esto", "esto", "", "estote", "sunto"})
		decline212(e, EndingKey{Tense: Future, Voice: Active, Mood: Participle}, "futur")
	})
}

func buildPossum(meaning Meanings) *Verb {
	return MakeIrregularVerb("possum", "posse", "potui", "", meaning, func(e *endings) {
		addSix(e, EndingKey{Tense: Present, Voice: Active, Mood: Indicative}, sixForms{"possum", "potes", "potest", "possumus", "potestis", "possunt"})
		addSix(e, EndingKey{Tense: Imperfect, Voice: Active, Mood: Indicative}, sixForms{"poteram", "poteras", "poterat", "poteramus", "poteratis", "poterant"})
		addSix(e, EndingKey{Tense: Future, Voice: Active, Mood: Indicative}, sixForms{"potero", "poteris", "poterit", "poterimus", "poteritis", "poterunt"})
		addSix(e, EndingKey{Tense: Present, Voice: Active, Mood: Subjunctive}, sixForms{"possim", "possis", "possit", "possimus", "possitis", "possint"})
		addSix(e, EndingKey{Tense: Imperfect, Voice: Active, Mood: Subjunctive}, sixForms{"possem", "posses", "posset", "possemus", "possetis", "possent"})
		e.add(EndingKey{Tense: Present, Voice: Active, Mood: Infinitive}, "posse")
	})
}

func buildVolo(meaning Meanings) *Verb {
	return MakeIrregularVerb("volo", "velle", "volui", "", meaning, func(e *endings) {
		addSix(e, EndingKey{Tense: Present, Voice: Active, Mood: Indicative}, sixForms{"volo", "vis", "vult", "volumus", "vultis", "volunt"})
		addSix(e, EndingKey{Tense: Imperfect, Voice: Active, Mood: Indicative}, sixForms{"volebam", "volebas", "volebat", "volebamus", "volebatis", "volebant"})
		addSix(e, EndingKey{Tense: Future, Voice: Active, Mood: Indicative}, sixForms{"volam", "voles", "volet", "volemus", "voletis", "volent"})
		addSix(e, EndingKey{Tense: Present, Voice: Active, Mood: Subjunctive}, sixForms{"velim", "velis", "velit", "velimus", "velitis", "velint"})
		addSix(e, EndingKey{Tense: Imperfect, Voice: Active, Mood: Subjunctive}, sixForms{"vellem", "velles", "vellet", "vellemus", "velletis", "vellent"})
		e.add(EndingKey{Tense: Present, Voice: Active, Mood: Infinitive}, "velle")
		decline3rdOneTermination(e, EndingKey{Tense: Present, Voice: Active, Mood: Participle}, "volent", "volens")
	})
}

func buildNolo(meaning Meanings) *Verb {
	return MakeIrregularVerb("nolo", "nolle", "nolui", "", meaning, func(e *endings) {
		addSix(e, EndingKey{Tense: Present, Voice: Active, Mood: Indicative}, sixForms{"nolo", "non vis", "non vult", "nolumus", "non vultis", "nolunt"})
		addSix(e, EndingKey{Tense: Imperfect, Voice: Active, Mood: Indicative}, sixForms{"nolebam", "nolebas", "nolebat", "nolebamus", "nolebatis", "nolebant"})
		addSix(e, EndingKey{Tense: Future, Voice: Active, Mood: Indicative}, sixForms{"nolam", "noles", "nolet", "nolemus", "noletis", "nolent"})
		addSix(e, EndingKey{Tense: Present, Voice: Active, Mood: Subjunctive}, sixForms{"nolim", "nolis", "nolit", "nolimus", "nolitis", "nolint"})
		addSix(e, EndingKey{Tense: Imperfect, Voice: Active, Mood: Subjunctive}, sixForms{"nollem", "nolles", "nollet", "nollemus", "nolletis", "nollent"})
		e.add(EndingKey{Tense: Present, Voice: Active, Mood: Infinitive}, "nolle")
		addSix(e, EndingKey{Tense: Present, Voice: Active, Mood: Imperative}, sixForms{"", "noli", "", "", "nolite", ""})
		decline3rdOneTermination(e, EndingKey{Tense: Present, Voice: Active, Mood: Participle}, "nolent", "nolens")
	})
}

func buildMalo(meaning Meanings) *Verb {
	return MakeIrregularVerb("malo", "malle", "malui", "", meaning, func(e *endings) {
		addSix(e, EndingKey{Tense: Present, Voice: Active, Mood: Indicative}, sixForms{"malo", "mavis", "mavult", "malumus", "mavultis", "malunt"})
		addSix(e, EndingKey{Tense: Imperfect, Voice: Active, Mood: Indicative}, sixForms{"malebam", "malebas", "malebat", "malebamus", "malebatis", "malebant"})
		addSix(e, EndingKey{Tense: Future, Voice: Active, Mood: Indicative}, sixForms{"malam", "males", "malet", "malemus", "maletis", "malent"})
		addSix(e, EndingKey{Tense: Present, Voice: Active, Mood: Subjunctive}, sixForms{"malim", "malis", "malit", "malimus", "malitis", "malint"})
		addSix(e, EndingKey{Tense: Imperfect, Voice: Active, Mood: Subjunctive}, sixForms{"mallem", "malles", "mallet", "mallemus", "malletis", "mallent"})
		e.add(EndingKey{Tense: Present, Voice: Active, Mood: Infinitive}, "malle")
	})
}

func buildEo(meaning Meanings) *Verb {
	return MakeIrregularVerb("eo", "ire", "ii", "", meaning, func(e *endings) {
		addSix(e, EndingKey{Tense: Present, Voice: Active, Mood: Indicative}, sixForms{"eo", "is", "it", "imus", "itis", "eunt"})
		addSix(e, EndingKey{Tense: Imperfect, Voice: Active, Mood: Indicative}, sixForms{"ibam", "ibas", "ibat", "ibamus", "ibatis", "ibant"})
		addSix(e, EndingKey{Tense: Future, Voice: Active, Mood: Indicative}, sixForms{"ibo", "ibis", "ibit", "ibimus", "ibitis", "ibunt"})
		addSix(e, EndingKey{Tense: Present, Voice: Active, Mood: Subjunctive}, sixForms{"eam", "eas", "eat", "eamus", "eatis", "eant"})
		addSix(e, EndingKey{Tense: Imperfect, Voice: Active, Mood: Subjunctive}, sixForms{"irem", "ires", "iret", "iremus", "iretis", "irent"})
		e.add(EndingKey{Tense: Present, Voice: Active, Mood: Infinitive}, "ire")
		addSix(e, EndingKey{Tense: Present, Voice: Active, Mood: Imperative}, sixForms{"", "i", "", "", "ite", ""})
		addSix(e, EndingKey{Tense: Future, Voice: Active, Mood: Imperative}, sixForms{"", "ito", "ito", "", "itote", "eunto"})
		decline3rdOneTermination(e, EndingKey{Tense: Present, Voice: Active, Mood: Participle}, "eunt", "iens")
		decline212(e, EndingKey{Tense: Future, Voice: Active, Mood: Participle}, "itur")
		e.add(EndingKey{Mood: Supine, Case: Accusative}, "itum")
		e.add(EndingKey{Mood: Supine, Case: Ablative}, "itu")
		e.add(EndingKey{Mood: Gerund, Case: Accusative}, "eundum")
		e.add(EndingKey{Mood: Gerund, Case: Genitive}, "eundi")
		e.add(EndingKey{Mood: Gerund, Case: Dative}, "eundo")
		e.add(EndingKey{Mood: Gerund, Case: Ablative}, "eundo")
	})
}

func buildFero(meaning Meanings) *Verb {
	return MakeIrregularVerb("fero", "ferre", "tuli", "latus", meaning, func(e *endings) {
		addSix(e, EndingKey{Tense: Present, Voice: Active, Mood: Indicative}, sixForms{"fero", "fers", "fert", "ferimus", "fertis", "ferunt"})
		addSix(e, EndingKey{Tense: Present, Voice: Passive, Mood: Indicative}, sixForms{"feror", "ferris", "fertur", "ferimur", "ferimini", "feruntur"})
		addSix(e, EndingKey{Tense: Imperfect, Voice: Active, Mood: Indicative}, sixForms{"ferebam", "ferebas", "ferebat", "ferebamus", "ferebatis", "ferebant"})
		addSix(e, EndingKey{Tense: Imperfect, Voice: Passive, Mood: Indicative}, sixForms{"ferebar", "ferebaris", "ferebatur", "ferebamur", "ferebamini", "ferebantur"})
		addSix(e, EndingKey{Tense: Future, Voice: Active, Mood: Indicative}, sixForms{"feram", "feres", "feret", "feremus", "feretis", "ferent"})
		addSix(e, EndingKey{Tense: Future, Voice: Passive, Mood: Indicative}, sixForms{"ferar", "fereris", "feretur", "feremur", "feremini", "ferentur"})
		addSix(e, EndingKey{Tense: Present, Voice: Active, Mood: Subjunctive}, sixForms{"feram", "feras", "ferat", "feramus", "feratis", "ferant"})
		addSix(e, EndingKey{Tense: Present, Voice: Passive, Mood: Subjunctive}, sixForms{"ferar", "feraris", "feratur", "feramur", "feramini", "ferantur"})
		addSix(e, EndingKey{Tense: Imperfect, Voice: Active, Mood: Subjunctive}, sixForms{"ferrem", "ferres", "ferret", "ferremus", "ferretis", "ferrent"})
		addSix(e, EndingKey{Tense: Imperfect, Voice: Passive, Mood: Subjunctive}, sixForms{"ferrer", "ferreris", "ferretur", "ferremur", "ferremini", "ferrentur"})
		e.add(EndingKey{Tense: Present, Voice: Active, Mood: Infinitive}, "ferre")
		e.add(EndingKey{Tense: Present, Voice: Passive, Mood: Infinitive}, "ferri")
		addSix(e, EndingKey{Tense: Present, Voice: Active, Mood: Imperative}, sixForms{"", "fer", "", "", "ferte", ""})
		addSix(e, EndingKey{Tense: Future, Voice: Active, Mood: Imperative}, sixForms{"", "ferto", "ferto", "", "fertote", "ferunto"})
		decline3rdOneTermination(e, EndingKey{Tense: Present, Voice: Active, Mood: Participle}, "ferent", "ferens")
		decline212(e, EndingKey{Tense: Perfect, Voice: Passive, Mood: Participle}, "lat")
		decline212(e, EndingKey{Tense: Future, Voice: Active, Mood: Participle}, "latur")
		e.add(EndingKey{Mood: Supine, Case: Accusative}, "latum")
		e.add(EndingKey{Mood: Supine, Case: Ablative}, "latu")
	})
}

// buildFio builds the suppletive passive of facio: present system
// active-shaped in form but passive in sense (fio, fis, fit...), perfect
// system genuinely passive and periphrastic (factus sum), unlike a
// deponent's passive-shaped-but-active-sense perfect.
func buildFio(meaning Meanings) *Verb {
	return MakeIrregularVerb("fio", "fieri", "", "factus", meaning, func(e *endings) {
		addSix(e, EndingKey{Tense: Present, Voice: Active, Mood: Indicative}, sixForms{"fio", "fis", "fit", "fimus", "fitis", "fiunt"})
		addSix(e, EndingKey{Tense: Imperfect, Voice: Active, Mood: Indicative}, sixForms{"fiebam", "fiebas", "fiebat", "fiebamus", "fiebatis", "fiebant"})
		addSix(e, EndingKey{Tense: Future, Voice: Active, Mood: Indicative}, sixForms{"fiam", "fies", "fiet", "fiemus", "fietis", "fient"})
		addSix(e, EndingKey{Tense: Present, Voice: Active, Mood: Subjunctive}, sixForms{"fiam", "fias", "fiat", "fiamus", "fiatis", "fiant"})
		addSix(e, EndingKey{Tense: Imperfect, Voice: Active, Mood: Subjunctive}, sixForms{"fierem", "fieres", "fieret", "fieremus", "fieretis", "fierent"})
		e.add(EndingKey{Tense: Present, Voice: Active, Mood: Infinitive}, "fieri")
		addSix(e, EndingKey{Tense: Present, Voice: Active, Mood: Imperative}, sixForms{"", "fi", "", "", "fite", ""})
	})
}

func buildEdo(meaning Meanings) *Verb {
	return MakeIrregularVerb("edo", "edere", "edi", "esus", meaning, func(e *endings) {
		addSix(e, EndingKey{Tense: Present, Voice: Active, Mood: Indicative}, sixForms{"edo", "edis", "edit", "edimus", "editis", "edunt"})
		addSix(e, EndingKey{Tense: Present, Voice: Passive, Mood: Indicative}, sixForms{"edor", "ederis", "editur", "edimur", "edimini", "eduntur"})
		addSix(e, EndingKey{Tense: Imperfect, Voice: Active, Mood: Indicative}, sixForms{"edebam", "edebas", "edebat", "edebamus", "edebatis", "edebant"})
		addSix(e, EndingKey{Tense: Future, Voice: Active, Mood: Indicative}, sixForms{"edam", "edes", "edet", "edemus", "edetis", "edent"})
		addSix(e, EndingKey{Tense: Present, Voice: Active, Mood: Subjunctive}, sixForms{"edam", "edas", "edat", "edamus", "edatis", "edant"})
		addSix(e, EndingKey{Tense: Imperfect, Voice: Active, Mood: Subjunctive}, sixForms{"ederem", "ederes", "ederet", "ederemus", "ederetis", "ederent"})
		e.add(EndingKey{Tense: Present, Voice: Active, Mood: Infinitive}, "edere")
		e.add(EndingKey{Tense: Present, Voice: Passive, Mood: Infinitive}, "edi")
		addSix(e, EndingKey{Tense: Present, Voice: Active, Mood: Imperative}, sixForms{"", "ede", "", "", "edite", ""})
		decline3rdOneTermination(e, EndingKey{Tense: Present, Voice: Active, Mood: Participle}, "edent", "edens")
		decline212(e, EndingKey{Tense: Perfect, Voice: Passive, Mood: Participle}, "es")
		decline212(e, EndingKey{Tense: Future, Voice: Active, Mood: Participle}, "esur")
	})
}

// buildInquam hand-authors the handful of forms classical usage actually
// attests for this defective verb of saying; every other cell (including
// the infinitive, which is simply never attested) is left unbuilt.
func buildInquam(meaning Meanings) *Verb {
	return MakeIrregularVerb("inquam", "", "", "", meaning, func(e *endings) {
		e.add(EndingKey{Tense: Present, Voice: Active, Mood: Indicative, Person: First, Number: Singular}, "inquam")
		e.add(EndingKey{Tense: Present, Voice: Active, Mood: Indicative, Person: Second, Number: Singular}, "inquis")
		e.add(EndingKey{Tense: Present, Voice: Active, Mood: Indicative, Person: Third, Number: Singular}, "inquit")
		e.add(EndingKey{Tense: Present, Voice: Active, Mood: Indicative, Person: First, Number: Plural}, "inquimus")
		e.add(EndingKey{Tense: Present, Voice: Active, Mood: Indicative, Person: Second, Number: Plural}, "inquitis")
		e.add(EndingKey{Tense: Present, Voice: Active, Mood: Indicative, Person: Third, Number: Plural}, "inquiunt")
		e.add(EndingKey{Tense: Future, Voice: Active, Mood: Indicative, Person: Second, Number: Singular}, "inquies")
		e.add(EndingKey{Tense: Future, Voice: Active, Mood: Indicative, Person: Third, Number: Singular}, "inquiet")
		e.add(EndingKey{Tense: Imperfect, Voice: Active, Mood: Indicative, Person: Third, Number: Singular}, "inquiebat")
		e.add(EndingKey{Tense: Perfect, Voice: Active, Mood: Indicative, Person: Third, Number: Singular}, "inquit")
		e.add(EndingKey{Tense: Present, Voice: Active, Mood: Imperative, Person: Second, Number: Singular}, "inque")
		e.add(EndingKey{Tense: Future, Voice: Active, Mood: Imperative, Person: Second, Number: Singular}, "inquito")
	})
}
