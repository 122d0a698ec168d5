// Package lego reads the line-oriented vocab-list text format into a
// VocabList of Accido entities, grounded on the teacher's morph/dict.go
// line-splitting idiom generalised to sectioned, stateful parsing (the
// current part-of-speech carried line to line, the way validate.Validate
// threads a shared result through its successive passes).
package lego

import (
	"github.com/rduo1009/vocab-tuister/accido"
	"github.com/rduo1009/vocab-tuister/transfero"
)

// Entry is one parsed vocab-list line: the constructed Accido entity plus
// enough side information for Transfero and Rogo to dispatch on it without
// type-asserting the Entity back apart.
type Entry struct {
	PartOfSpeech transfero.PartOfSpeech
	Entity       accido.Entity
	Deponent     bool
}

// VocabList is an ordered collection of parsed entries. Order matches
// (section order, entry order) in the source text, per spec.md §9's
// deterministic-iteration requirement for candidate pools.
type VocabList struct {
	Entries []Entry
}
