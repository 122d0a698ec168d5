package accido

import "strings"

// Meanings is the ordered set of English meanings a dictionary entry
// carries. The first element is the principal meaning used whenever a
// single representative English gloss is needed (e.g. as the dictionary
// headword's translation, or to seed Transfero.FindMainInflection).
//
// This corresponds to the {Meaning, MultipleMeanings} sum type of
// spec.md §3.1: a single-element Meanings is the Meaning case, anything
// longer is MultipleMeanings, and both are represented by the same slice
// type since Go has no sum types and the ordering invariant (principal
// meaning first) is identical in both cases.
type Meanings []string

// Principal returns the principal (first) meaning, or "" if there are none.
func (m Meanings) Principal() string {
	if len(m) == 0 {
		return ""
	}
	return m[0]
}

// ParseMeanings splits a Lego "/"-separated meaning field into an ordered
// Meanings value, trimming surrounding whitespace from each part.
func ParseMeanings(field string) Meanings {
	parts := strings.Split(field, "/")
	out := make(Meanings, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

// Equal reports whether two Meanings values are the same ordered sequence,
// used by Entity equality per spec.md §3.2 ("equality... never by object
// identity").
func (m Meanings) Equal(other Meanings) bool {
	if len(m) != len(other) {
		return false
	}
	for i := range m {
		if m[i] != other[i] {
			return false
		}
	}
	return true
}
