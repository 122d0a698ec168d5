package accido

import "strings"

// Termination is the declension pattern an adjective follows, named the
// way Latin grammars name it: 212 (2nd/1st/2nd, masc/fem/neut), or one of
// the three third-declension termination counts.
type Termination int

const (
	TerminationUnknown Termination = iota
	Termination212
	Termination3Term1 // one ending for all genders (e.g. atrox, atrocis)
	Termination3Term2 // two endings, masc/fem share one (e.g. fortis, forte)
	Termination3Term3 // three distinct endings (e.g. acer, acris, acre)
)

// Adjective is a Latin adjective entity: positive-degree principal parts
// plus the derived comparative/superlative paradigms.
type Adjective struct {
	nomMasc     string
	nomFem      string // "" for 3-1 termination (shares nomMasc)
	nomNeut     string // "" for 3-1 termination (shares nomMasc)
	genitive    string // oblique-stem indicator for 3rd-declension adjectives; "" for 212
	termination Termination
	meanings    Meanings
	endings     endings
}

// sixLlisAdjectives take -illimus rather than -issimus in the
// superlative, per spec.md §4.2's "facilis-class exception".
var sixLlisAdjectives = map[string]bool{
	"facilis": true, "difficilis": true, "similis": true,
	"dissimilis": true, "gracilis": true, "humilis": true,
}

// MakeAdjective212 constructs a 2-1-2 (second/first/second declension) adjective
// (bonus, bona, bonum) from its three nominative singular forms.
func MakeAdjective212(nomMasc, nomFem, nomNeut string, meaning Meanings) (*Adjective, error) {
	if nomMasc == "" || nomFem == "" || nomNeut == "" {
		return nil, &InvalidInputError{Reason: "212 adjective requires all three nominative forms"}
	}
	a := &Adjective{
		nomMasc: nomMasc, nomFem: nomFem, nomNeut: nomNeut,
		termination: Termination212,
		meanings:    meaning,
		endings:     newEndings(),
	}
	a.build()
	return a, nil
}

// MakeAdjective3rd constructs a third-declension adjective of the given
// termination count. For Termination3Term1, nomFem/nomNeut are ignored;
// for Termination3Term2, nomNeut is ignored.
func MakeAdjective3rd(term Termination, nomMasc, nomFem, nomNeut, genitive string, meaning Meanings) (*Adjective, error) {
	if nomMasc == "" || genitive == "" {
		return nil, &InvalidInputError{Reason: "third-declension adjective requires a masculine nominative and genitive stem indicator"}
	}
	a := &Adjective{
		nomMasc: nomMasc, nomFem: nomFem, nomNeut: nomNeut, genitive: genitive,
		termination: term,
		meanings:    meaning,
		endings:     newEndings(),
	}
	a.build()
	return a, nil
}

func (a *Adjective) build() {
	switch a.termination {
	case Termination212:
		stem := strings.TrimSuffix(a.nomMasc, "us")
		decline212(&a.endings, EndingKey{Degree: Positive}, stem)
		a.buildComparative(stem)
		a.buildSuperlative(a.nomMasc, stem)
	case Termination3Term1, Termination3Term2, Termination3Term3:
		stem := strings.TrimSuffix(a.genitive, "is")
		a.build3rdPositive(stem)
		a.buildComparative(stem)
		a.buildSuperlative(a.nomMasc, stem)
	}
}

// build3rdPositive declines the positive degree of a third-declension
// adjective. All termination counts share the same oblique paradigm;
// they differ only in which nominative singular surface forms exist,
// so this reuses decline3rdOneTermination for the shared cells and then
// overrides the nominative/vocative singular per gender when the
// adjective actually spells them differently (3-2 and 3-3).
func (a *Adjective) build3rdPositive(stem string) {
	base := EndingKey{Degree: Positive}
	shared := newEndings()
	decline3rdOneTermination(&shared, base, stem, a.nomMasc)

	switch a.termination {
	case Termination3Term2:
		if a.nomNeut != "" {
			k := base
			k.Case, k.Number, k.Gender = Nominative, Singular, Neuter
			a.endings.add(k, a.nomNeut)
			k.Case = Vocative
			a.endings.add(k, a.nomNeut)
			k.Case = Accusative
			a.endings.add(k, a.nomNeut)
		}
	case Termination3Term3:
		if a.nomFem != "" {
			k := base
			k.Case, k.Number, k.Gender = Nominative, Singular, Feminine
			a.endings.add(k, a.nomFem)
			k.Case = Vocative
			a.endings.add(k, a.nomFem)
		}
		if a.nomNeut != "" {
			k := base
			k.Case, k.Number, k.Gender = Nominative, Singular, Neuter
			a.endings.add(k, a.nomNeut)
			k.Case = Vocative
			a.endings.add(k, a.nomNeut)
			k.Case = Accusative
			a.endings.add(k, a.nomNeut)
		}
	}

	// a.endings holds only the overridden cells at this point.
	shared.forEach(func(k EndingKey, form string) bool {
		if _, overridden := a.endings.forward[k]; !overridden {
			a.endings.add(k, form)
		}
		return true
	})
}

// buildComparative declines the comparative degree: always third
// declension, one termination (e.g. fortior, fortius), formed from stem
// + "ior"/"ius".
func (a *Adjective) buildComparative(stem string) {
	base := EndingKey{Degree: Comparative}
	compStem := stem + "ior"

	add := func(c Case, n Number, g Gender, form string) {
		k := base
		k.Case, k.Number, k.Gender = c, n, g
		a.endings.add(k, form)
	}
	for _, g := range []Gender{Masculine, Feminine} {
		add(Nominative, Singular, g, compStem)
		add(Vocative, Singular, g, compStem)
		add(Accusative, Singular, g, compStem+"em")
		add(Nominative, Plural, g, compStem+"es")
		add(Vocative, Plural, g, compStem+"es")
		add(Accusative, Plural, g, compStem+"es")
	}
	neutNomSg := stem + "ius"
	add(Nominative, Singular, Neuter, neutNomSg)
	add(Vocative, Singular, Neuter, neutNomSg)
	add(Accusative, Singular, Neuter, neutNomSg)
	add(Nominative, Plural, Neuter, compStem+"a")
	add(Vocative, Plural, Neuter, compStem+"a")
	add(Accusative, Plural, Neuter, compStem+"a")

	for _, g := range []Gender{Masculine, Feminine, Neuter} {
		add(Genitive, Singular, g, compStem+"is")
		add(Dative, Singular, g, compStem+"i")
		add(Ablative, Singular, g, compStem+"e")
		add(Genitive, Plural, g, compStem+"um")
		add(Dative, Plural, g, compStem+"ibus")
		add(Ablative, Plural, g, compStem+"ibus")
	}
}

// buildSuperlative declines the superlative: always 212, formed with
// -issimus except for the handful of -er adjectives (-errimus) and the
// sixLlisAdjectives set (-illimus), per spec.md §4.2.
func (a *Adjective) buildSuperlative(nomMasc, positiveStem string) {
	var supStem string
	switch {
	case strings.HasSuffix(nomMasc, "er"):
		supStem = nomMasc + "rim"
	case sixLlisAdjectives[nomMasc]:
		supStem = positiveStem + "lim"
	default:
		supStem = positiveStem + "issim"
	}
	decline212(&a.endings, EndingKey{Degree: Superlative}, supStem)
}

func (a *Adjective) Headword() string  { return a.nomMasc }
func (a *Adjective) Meanings() Meanings { return a.meanings }
func (a *Adjective) Termination() Termination { return a.termination }

func (a *Adjective) Get(key EndingKey) (EndingValue, error) { return a.endings.get(key, a.nomMasc) }
func (a *Adjective) FindKeys(form string) []EndingKey        { return a.endings.findKeys(form) }
func (a *Adjective) Forms(yield func(EndingKey, string) bool) { a.endings.forEach(yield) }

// DictionaryEntry renders the adjective's citation line for
// ParseWordLatToCompQuestion.dictionary_entry.
func (a *Adjective) DictionaryEntry() string {
	switch a.termination {
	case Termination212:
		return a.meanings.Principal() + ": " + a.nomMasc + ", " + a.nomFem + ", " + a.nomNeut
	default:
		return a.meanings.Principal() + ": " + a.nomMasc + ", " + a.genitive
	}
}
