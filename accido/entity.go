package accido

import "sort"

// Entity is the capability interface every word variant (Verb, Noun,
// Adjective, Adverb, Pronoun, RegularWord) satisfies. Dispatch across
// variants is exhaustive type-switching at the call site rather than a
// runtime-type registry, the way the teacher's validate/detect packages
// dispatch on closed IssueType/Severity enums rather than reflection.
type Entity interface {
	// Headword is the dictionary citation form.
	Headword() string
	// Meanings returns the entity's ordered English glosses.
	Meanings() Meanings
	// Get returns the surface forms at key, or a *NoEndingError if key is
	// not part of this entity's paradigm.
	Get(key EndingKey) (EndingValue, error)
	// FindKeys returns every key whose EndingValue contains form. A form
	// that appears at several syncretic cells returns all of them.
	FindKeys(form string) []EndingKey
	// Forms iterates every (key, form) pair in the paradigm, key-enum
	// order for determinism (spec.md §9 "Deterministic ordering").
	Forms(yield func(EndingKey, string) bool)
}

// EndingValue is the non-empty set of surface forms collapsed onto one
// EndingKey by syncretism (spec.md §3.2).
type EndingValue []string

// endings is the shared forward+reverse table every concrete entity type
// embeds. It keeps the forward map (key -> forms) and the reverse index
// (form -> keys) mechanically consistent (spec.md §3.2's P1/P2
// invariants), since both are derived together by add and never mutated
// elsewhere.
type endings struct {
	forward map[EndingKey]EndingValue
	reverse map[string][]EndingKey
}

func newEndings() endings {
	return endings{
		forward: make(map[EndingKey]EndingValue),
		reverse: make(map[string][]EndingKey),
	}
}

// add records form at key, deduplicating repeated calls with the same
// (key, form) pair (harmless syncretism re-derivation) and keeping the
// reverse index's key list sorted by Tags() for deterministic FindKeys
// output.
func (e *endings) add(key EndingKey, form string) {
	if form == "" {
		return
	}
	found := false
	for _, existing := range e.forward[key] {
		if existing == form {
			found = true
			break
		}
	}
	if !found {
		e.forward[key] = append(e.forward[key], form)
	}

	keys := e.reverse[form]
	for _, k := range keys {
		if k == key {
			return
		}
	}
	keys = append(keys, key)
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })
	e.reverse[form] = keys
}

func (e *endings) get(key EndingKey, headword string) (EndingValue, error) {
	v, ok := e.forward[key]
	if !ok || len(v) == 0 {
		return nil, &NoEndingError{Key: key, Headword: headword}
	}
	return v, nil
}

func (e *endings) findKeys(form string) []EndingKey {
	return e.reverse[form]
}

func (e *endings) forEach(yield func(EndingKey, string) bool) {
	keys := make([]EndingKey, 0, len(e.forward))
	for k := range e.forward {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		a, b := keys[i], keys[j]
		fields := [...][2]int{
			{int(a.Tense), int(b.Tense)}, {int(a.Voice), int(b.Voice)}, {int(a.Mood), int(b.Mood)},
			{int(a.Person), int(b.Person)}, {int(a.Case), int(b.Case)}, {int(a.Number), int(b.Number)},
			{int(a.Gender), int(b.Gender)}, {int(a.Degree), int(b.Degree)},
		}
		for _, f := range fields {
			if f[0] != f[1] {
				return f[0] < f[1]
			}
		}
		return false
	})
	for _, k := range keys {
		for _, form := range e.forward[k] {
			if !yield(k, form) {
				return
			}
		}
	}
}
