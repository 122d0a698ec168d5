package lego

import "fmt"

// InvalidVocabFileFormatError is raised by ReadList on any malformed vocab
// list text: an unrecognised section header, an entry with the wrong
// shape, or principal parts Accido rejects. It carries the offending line
// verbatim (for a bad section header, the header text after "@") so the
// client can locate the mistake.
type InvalidVocabFileFormatError struct {
	Line   string
	Reason string
}

func (e *InvalidVocabFileFormatError) Error() string {
	return fmt.Sprintf("%s: '%s'", e.Reason, e.Line)
}
