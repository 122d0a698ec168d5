package accido

// RegularWord is a non-inflecting entity: adverbs-as-particles,
// prepositions, conjunctions, and interjections (spec.md §4.6's
// "regular words carry one invariant surface form"). It still
// satisfies Entity so the rest of the kernel can treat it uniformly.
type RegularWord struct {
	word     string
	meanings Meanings
}

// MakeRegularWord constructs a RegularWord. Its single EndingValue lives
// at the zero EndingKey, matching the "vacuous key" convention every
// other entity uses for tags it does not carry.
func MakeRegularWord(word string, meaning Meanings) (*RegularWord, error) {
	if word == "" {
		return nil, &InvalidInputError{Reason: "regular word requires a non-empty form"}
	}
	return &RegularWord{word: word, meanings: meaning}, nil
}

func (r *RegularWord) Headword() string  { return r.word }
func (r *RegularWord) Meanings() Meanings { return r.meanings }

func (r *RegularWord) Get(key EndingKey) (EndingValue, error) {
	if key != (EndingKey{}) {
		return nil, &NoEndingError{Key: key, Headword: r.word}
	}
	return EndingValue{r.word}, nil
}

func (r *RegularWord) FindKeys(form string) []EndingKey {
	if form == r.word {
		return []EndingKey{{}}
	}
	return nil
}

func (r *RegularWord) Forms(yield func(EndingKey, string) bool) {
	yield(EndingKey{}, r.word)
}

// DictionaryEntry renders the word's citation line.
func (r *RegularWord) DictionaryEntry() string {
	return r.meanings.Principal() + ": " + r.word
}
