package accido

import "strings"

// Conjugation is the inferred (or declared, for irregular verbs)
// conjugation class.
type Conjugation int

const (
	ConjugationUnknown Conjugation = iota
	FirstConj
	SecondConj
	ThirdConj
	MixedConj // 3rd conjugation stem with 4th conjugation-like endings (capio)
	FourthConj
	IrregularConj
)

// Verb is a Latin verb entity built from its principal parts.
type Verb struct {
	present    string // 1sg present active/deponent indicative
	infinitive string
	perfect    string // 1sg perfect active indicative; "" if defective or deponent
	ppp        string // perfect (passive) participle, masc nom sg; "" if intransitive/absent

	conjugation  Conjugation
	deponent     bool
	semiDeponent bool
	meanings     Meanings
	endings      endings
}

// detectConjugation applies spec.md §4.1's infinitive-shape heuristic,
// accounting for the deponent infinitive endings (-ari/-eri/-i/-iri)
// alongside the active ones (-are/-ere/-ire).
func detectConjugation(present, infinitive string, deponent bool) (Conjugation, error) {
	switch {
	case strings.HasSuffix(infinitive, "are"):
		return FirstConj, nil
	case deponent && strings.HasSuffix(infinitive, "ari"):
		return FirstConj, nil
	case strings.HasSuffix(infinitive, "ire"):
		return FourthConj, nil
	case deponent && strings.HasSuffix(infinitive, "iri"):
		return FourthConj, nil
	case strings.HasSuffix(infinitive, "ere"):
		switch {
		case strings.HasSuffix(present, "eor"), strings.HasSuffix(present, "eo"):
			return SecondConj, nil
		case strings.HasSuffix(present, "ior"), strings.HasSuffix(present, "io"):
			return MixedConj, nil
		default:
			return ThirdConj, nil
		}
	case deponent && strings.HasSuffix(infinitive, "eri"):
		return SecondConj, nil
	case deponent && strings.HasSuffix(infinitive, "i"):
		if strings.HasSuffix(present, "ior") {
			return MixedConj, nil
		}
		return ThirdConj, nil
	default:
		return ConjugationUnknown, &InvalidInputError{
			Reason: "principal parts do not match any recognised conjugation: " + present + ", " + infinitive,
		}
	}
}

// presentStem strips the conjugation's infinitive theme from infinitive.
func presentStem(conj Conjugation, infinitive string, deponent bool) string {
	var suffix string
	if deponent {
		suffix = presentPassiveInfinitiveSuffix[conj]
	} else {
		suffix = presentActiveInfinitiveSuffix[conj]
	}
	return strings.TrimSuffix(infinitive, suffix)
}

// perfectStem strips "-i" from the 1sg perfect active indicative.
func perfectStem(perfect string) string {
	return strings.TrimSuffix(perfect, "i")
}

// supineStem strips "-us"/"-a"/"-um" from a ppp/supine citation form.
func supineStem(ppp string) string {
	for _, suf := range []string{"us", "a", "um"} {
		if strings.HasSuffix(ppp, suf) {
			return strings.TrimSuffix(ppp, suf)
		}
	}
	return ppp
}

// MakeVerb constructs a Verb from its principal parts, inferring
// conjugation and eagerly building the full paradigm. ppp may be "" for
// intransitive/defective verbs that lack a perfect passive participle.
// deponent verbs pass their deponent principal parts (present ending in
// -or, infinitive ending in -ari/-eri/-i/-iri, and perfect == "" with ppp
// holding the perfect participle + implied "sum").
func MakeVerb(present, infinitive, perfect, ppp string, meaning Meanings, deponent bool) (*Verb, error) {
	if present == "" || infinitive == "" {
		return nil, &InvalidInputError{Reason: "verb requires non-empty present and infinitive principal parts"}
	}
	conj, err := detectConjugation(present, infinitive, deponent)
	if err != nil {
		return nil, err
	}

	v := &Verb{
		present:     present,
		infinitive:  infinitive,
		perfect:     perfect,
		ppp:         ppp,
		conjugation: conj,
		deponent:    deponent,
		meanings:    meaning,
		endings:     newEndings(),
	}
	v.build()
	return v, nil
}

func (v *Verb) build() {
	pStem := presentStem(v.conjugation, v.infinitive, v.deponent)

	if v.deponent {
		v.buildPresentSystemDeponent(pStem)
	} else {
		v.buildPresentSystemActive(pStem)
	}
	v.buildImperatives(pStem)
	v.buildInfinitives(pStem)
	v.buildParticiples(pStem)
	v.buildGerundAndGerundive(pStem)
	v.buildPerfectSystem()
}

// buildPerfectSystem builds the perfect system from whichever principal
// parts are present. A (semi-)deponent verb's perfect system comes from
// ppp alone, active-sense despite the passive-shaped periphrasis; an
// ordinary verb's active perfect (from v.perfect) and passive perfect
// periphrasis (from v.ppp) are independent, since either principal part
// may be absent for a defective or intransitive verb.
func (v *Verb) buildPerfectSystem() {
	if v.deponent || v.semiDeponent {
		if v.ppp != "" {
			v.buildPerfectSystemFromPPP()
		}
		return
	}

	if v.perfect != "" {
		v.buildPerfectSystemActive()
	}
	if v.ppp != "" {
		v.buildPerfectSystemPassive()
	}
}

// buildPresentSystemActive builds every active + ordinary passive present
// system finite cell (present/imperfect/future, indicative/subjunctive).
func (v *Verb) buildPresentSystemActive(stem string) {
	table := presentSystemSuffixes[v.conjugation]
	for slot, forms := range table {
		if slot.Tense == Present || slot.Tense == Imperfect || slot.Tense == Future {
			if slot.Mood != Indicative && slot.Mood != Subjunctive {
				continue
			}
			key := EndingKey{Tense: slot.Tense, Voice: slot.Voice, Mood: slot.Mood}
			addSix(&v.endings, key, applyStem(stem, forms))
		}
	}
}

// buildPresentSystemDeponent builds the present-system cells for a
// deponent verb: the morphology is passive-shaped but English translation
// is active-sense (Transfero's concern, not a different table here).
func (v *Verb) buildPresentSystemDeponent(stem string) {
	table := presentSystemSuffixes[v.conjugation]
	for slot, forms := range table {
		if slot.Voice != Passive {
			continue
		}
		if slot.Mood != Indicative && slot.Mood != Subjunctive {
			continue
		}
		key := EndingKey{Tense: slot.Tense, Voice: slot.Voice, Mood: slot.Mood}
		addSix(&v.endings, key, applyStem(stem, forms))
	}
}

func applyStem(stem string, suffixes sixForms) sixForms {
	var out sixForms
	for i, suf := range suffixes {
		if suf == "" {
			out[i] = ""
			continue
		}
		out[i] = stem + suf
	}
	return out
}

func (v *Verb) buildImperatives(stem string) {
	table := imperativeSuffixes[v.conjugation]
	for slot, forms := range table {
		if v.deponent && slot.Voice != Passive {
			continue
		}
		if !v.deponent && slot.Voice == Passive {
			continue // ordinary verbs are rarely tested on passive imperatives; keep active only
		}
		key := EndingKey{Tense: slot.Tense, Voice: slot.Voice, Mood: slot.Mood}
		addSix(&v.endings, key, applyStem(stem, forms))
	}
}

func (v *Verb) buildInfinitives(stem string) {
	activeSuf := presentActiveInfinitiveSuffix[v.conjugation]
	passiveSuf := presentPassiveInfinitiveSuffix[v.conjugation]

	if v.deponent {
		v.endings.add(EndingKey{Tense: Present, Voice: Passive, Mood: Infinitive}, stem+passiveSuf)
	} else {
		v.endings.add(EndingKey{Tense: Present, Voice: Active, Mood: Infinitive}, stem+activeSuf)
		v.endings.add(EndingKey{Tense: Present, Voice: Passive, Mood: Infinitive}, stem+passiveSuf)
	}

	if v.perfect != "" {
		v.endings.add(EndingKey{Tense: Perfect, Voice: Active, Mood: Infinitive}, perfectStem(v.perfect)+"isse")
	}

	if v.ppp != "" {
		supStem := supineStem(v.ppp)
		v.endings.add(EndingKey{Tense: Perfect, Voice: Passive, Mood: Infinitive}, supStem+"us esse")
		v.endings.add(EndingKey{Tense: Future, Voice: Active, Mood: Infinitive}, supStem+"urus esse")
	}
}

func (v *Verb) buildParticiples(stem string) {
	theme := presentParticipleTheme[v.conjugation]
	pres := stem + theme + "ns"
	decline3rdOneTermination(&v.endings, EndingKey{Tense: Present, Voice: Active, Mood: Participle}, stem+theme+"nt", pres)

	if v.ppp != "" {
		supStem := supineStem(v.ppp)
		decline212(&v.endings, EndingKey{Tense: Perfect, Voice: Passive, Mood: Participle}, supStem+"u")
		decline212(&v.endings, EndingKey{Tense: Future, Voice: Active, Mood: Participle}, supStem+"ur")
	}
}

func (v *Verb) buildGerundAndGerundive(stem string) {
	theme := gerundTheme[v.conjugation]
	gerundStem := stem + theme
	// Gerund: neuter singular verbal noun, no nominative.
	v.endings.add(EndingKey{Mood: Gerund, Case: Accusative}, gerundStem+"um")
	v.endings.add(EndingKey{Mood: Gerund, Case: Genitive}, gerundStem+"i")
	v.endings.add(EndingKey{Mood: Gerund, Case: Dative}, gerundStem+"o")
	v.endings.add(EndingKey{Mood: Gerund, Case: Ablative}, gerundStem+"o")

	// Gerundive: 212 verbal adjective.
	decline212(&v.endings, EndingKey{Mood: Gerundive}, gerundStem)

	if v.ppp != "" {
		supStem := supineStem(v.ppp)
		v.endings.add(EndingKey{Mood: Supine, Case: Accusative}, supStem+"um")
		v.endings.add(EndingKey{Mood: Supine, Case: Ablative}, supStem+"u")
	}
}

func (v *Verb) buildPerfectSystemActive() {
	pStem := perfectStem(v.perfect)
	for slot, forms := range perfectSystemActiveSuffixes {
		key := EndingKey{Tense: slot.Tense, Voice: Active, Mood: slot.Mood}
		addSix(&v.endings, key, applyStem(pStem, forms))
	}
}

// buildPerfectSystemPassive builds the periphrastic passive perfect system
// (ppp + a form of sum), using masculine singular/plural agreement
// throughout, the common pedagogical simplification since EndingKey here
// does not carry gender for finite verb cells.
func (v *Verb) buildPerfectSystemPassive() {
	v.applyPerfectPassive(supineStem(v.ppp), false)
}

// buildPerfectSystemFromPPP builds the deponent perfect system directly
// from the ppp principal part (which for a deponent verb already is the
// perfect active-sense participle, e.g. "conatus" for conor/conari).
func (v *Verb) buildPerfectSystemFromPPP() {
	v.applyPerfectPassive(supineStem(v.ppp), true)
}

func (v *Verb) applyPerfectPassive(supStem string, deponent bool) {
	voice := Passive
	if deponent {
		voice = Active // deponent perfect is passive-shaped but active-sense; store under Active per spec's "deponent English over passive morphology"
	}
	combine := func(tense Tense, sumForms sixForms) sixForms {
		var out sixForms
		for i, sf := range sumForms {
			ending := "us "
			if personNumberOrder[i].Number == Plural {
				ending = "i "
			}
			out[i] = supStem + ending + sf
		}
		return out
	}
	addSix(&v.endings, EndingKey{Tense: Perfect, Voice: voice, Mood: Indicative}, combine(Perfect, sumPresentIndicative))
	addSix(&v.endings, EndingKey{Tense: Pluperfect, Voice: voice, Mood: Indicative}, combine(Pluperfect, sumImperfectIndicative))
	addSix(&v.endings, EndingKey{Tense: FuturePerfect, Voice: voice, Mood: Indicative}, combine(FuturePerfect, sumFutureIndicative))
	addSix(&v.endings, EndingKey{Tense: Perfect, Voice: voice, Mood: Subjunctive}, combine(Perfect, sumPresentSubjunctive))
	addSix(&v.endings, EndingKey{Tense: Pluperfect, Voice: voice, Mood: Subjunctive}, combine(Pluperfect, sumImperfectSubjunctive))
}

// MakeSemiDeponentVerb constructs a semi-deponent verb: present system
// built and tagged exactly like an ordinary active verb (audeo, audes,
// audet...), perfect system built from ppp alone under the same
// active-sense convention a full deponent's perfect uses (ausus sum, not
// a passive-sense periphrasis) — e.g. audeo/audere/ausus sum,
// gaudeo/gaudere/gavisus sum, soleo/solere/solitus sum,
// fido/fidere/fisus sum.
func MakeSemiDeponentVerb(present, infinitive, ppp string, meaning Meanings) (*Verb, error) {
	if present == "" || infinitive == "" || ppp == "" {
		return nil, &InvalidInputError{Reason: "semi-deponent verb requires non-empty present, infinitive, and perfect participle"}
	}
	conj, err := detectConjugation(present, infinitive, false)
	if err != nil {
		return nil, err
	}

	v := &Verb{
		present:      present,
		infinitive:   infinitive,
		ppp:          ppp,
		conjugation:  conj,
		semiDeponent: true,
		meanings:     meaning,
		endings:      newEndings(),
	}
	v.build()
	return v, nil
}

// MakeIrregularVerb constructs a Verb from an explicit, hand-authored
// ending table, bypassing conjugation inference entirely: the ten
// irregular verbs (sum, possum, volo, nolo, malo, eo, fero, fio, edo,
// inquam) have present systems that fit no regular conjugation pattern,
// the same way MakeIrregularNoun bypasses declension inference for
// domus/vis/Iuppiter. setup records the hand-authored forms directly into
// the fresh endings table; perfect/ppp (when non-"") still drive the
// perfect system through the same buildPerfectSystem an ordinary verb
// uses, so a perfect-shaped irregular verb (fero/tuli/latus) gets the
// full periphrastic passive perfect for free.
func MakeIrregularVerb(present, infinitive, perfect, ppp string, meaning Meanings, setup func(*endings)) *Verb {
	v := &Verb{
		present:     present,
		infinitive:  infinitive,
		perfect:     perfect,
		ppp:         ppp,
		conjugation: IrregularConj,
		meanings:    meaning,
		endings:     newEndings(),
	}
	setup(&v.endings)
	v.buildPerfectSystem()
	return v
}

func (v *Verb) Headword() string   { return v.present }
func (v *Verb) Meanings() Meanings { return v.meanings }
func (v *Verb) Conjugation() Conjugation { return v.conjugation }
func (v *Verb) Deponent() bool     { return v.deponent }

func (v *Verb) Get(key EndingKey) (EndingValue, error) { return v.endings.get(key, v.present) }
func (v *Verb) FindKeys(form string) []EndingKey        { return v.endings.findKeys(form) }
func (v *Verb) Forms(yield func(EndingKey, string) bool) { v.endings.forEach(yield) }

// PrincipalParts returns the principal parts in Latin grammar convention
// order (present, infinitive, perfect, supine/ppp), omitting absent parts,
// for PrincipalPartsQuestion (spec.md §6.2).
func (v *Verb) PrincipalParts() []string {
	parts := []string{v.present}
	if v.infinitive != "" {
		parts = append(parts, v.infinitive)
	}
	if v.perfect != "" {
		parts = append(parts, v.perfect)
	}
	if v.ppp != "" {
		parts = append(parts, v.ppp)
	}
	return parts
}

// DictionaryEntry renders "headword: present, infinitive, perfect, ppp"
// for ParseWordLatToCompQuestion.dictionary_entry.
func (v *Verb) DictionaryEntry() string {
	s := v.meanings.Principal() + ": " + strings.Join(v.PrincipalParts(), ", ")
	return s
}
