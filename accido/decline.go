package accido

// decline212 applies the 1st/2nd declension three-termination adjective
// pattern (masculine like 2nd decl -us, feminine like 1st decl -a, neuter
// like 2nd decl -um) to stem, recording every (case, number, gender) cell
// under base (which supplies Mood/Tense/Voice/Degree and leaves Case,
// Number, Gender at zero). Used for adjectives of termination 212 and for
// participles/gerundives that decline the same way.
func decline212(e *endings, base EndingKey, stem string) {
	table := map[struct {
		Case   Case
		Number Number
		Gender Gender
	}]string{
		{Nominative, Singular, Masculine}: "us", {Vocative, Singular, Masculine}: "e", {Accusative, Singular, Masculine}: "um",
		{Genitive, Singular, Masculine}: "i", {Dative, Singular, Masculine}: "o", {Ablative, Singular, Masculine}: "o",
		{Nominative, Plural, Masculine}: "i", {Vocative, Plural, Masculine}: "i", {Accusative, Plural, Masculine}: "os",
		{Genitive, Plural, Masculine}: "orum", {Dative, Plural, Masculine}: "is", {Ablative, Plural, Masculine}: "is",

		{Nominative, Singular, Feminine}: "a", {Vocative, Singular, Feminine}: "a", {Accusative, Singular, Feminine}: "am",
		{Genitive, Singular, Feminine}: "ae", {Dative, Singular, Feminine}: "ae", {Ablative, Singular, Feminine}: "a",
		{Nominative, Plural, Feminine}: "ae", {Vocative, Plural, Feminine}: "ae", {Accusative, Plural, Feminine}: "as",
		{Genitive, Plural, Feminine}: "arum", {Dative, Plural, Feminine}: "is", {Ablative, Plural, Feminine}: "is",

		{Nominative, Singular, Neuter}: "um", {Vocative, Singular, Neuter}: "um", {Accusative, Singular, Neuter}: "um",
		{Genitive, Singular, Neuter}: "i", {Dative, Singular, Neuter}: "o", {Ablative, Singular, Neuter}: "o",
		{Nominative, Plural, Neuter}: "a", {Vocative, Plural, Neuter}: "a", {Accusative, Plural, Neuter}: "a",
		{Genitive, Plural, Neuter}: "orum", {Dative, Plural, Neuter}: "is", {Ablative, Plural, Neuter}: "is",
	}
	for cell, ending := range table {
		k := base
		k.Case, k.Number, k.Gender = cell.Case, cell.Number, cell.Gender
		e.add(k, stem+ending)
	}
}

// decline3rdOneTermination applies the third-declension i-stem one
// termination pattern used by present active participles (amans,
// amantis): identical nominative singular for all genders, -ia/-ium
// neuter plural, otherwise ordinary 3rd i-stem endings. stem is the
// oblique stem (e.g. "amant"); nomSg is the nominative singular surface
// form shared by all genders (e.g. "amans").
func decline3rdOneTermination(e *endings, base EndingKey, stem, nomSg string) {
	add := func(c Case, n Number, g Gender, form string) {
		k := base
		k.Case, k.Number, k.Gender = c, n, g
		e.add(k, form)
	}

	// Nominative/vocative singular is nomSg for every gender; accusative
	// singular is nomSg for neuter (neuter nom=acc=voc) and stem+"em"
	// otherwise.
	for _, g := range []Gender{Masculine, Feminine, Neuter} {
		add(Nominative, Singular, g, nomSg)
		add(Vocative, Singular, g, nomSg)
	}
	add(Accusative, Singular, Neuter, nomSg)

	for _, g := range []Gender{Masculine, Feminine} {
		add(Accusative, Singular, g, stem+"em")
		add(Nominative, Plural, g, stem+"es")
		add(Vocative, Plural, g, stem+"es")
		add(Accusative, Plural, g, stem+"es")
	}
	for _, g := range []Gender{Masculine, Feminine, Neuter} {
		add(Genitive, Singular, g, stem+"is")
		add(Dative, Singular, g, stem+"i")
		add(Ablative, Singular, g, stem+"e")
		add(Genitive, Plural, g, stem+"ium")
		add(Dative, Plural, g, stem+"ibus")
		add(Ablative, Plural, g, stem+"ibus")
	}
	add(Nominative, Plural, Neuter, stem+"ia")
	add(Vocative, Plural, Neuter, stem+"ia")
	add(Accusative, Plural, Neuter, stem+"ia")
}
