package rogo

import (
	"fmt"

	"github.com/rduo1009/vocab-tuister/accido"
	"github.com/rduo1009/vocab-tuister/lego"
)

// InvalidSettingsError reports a malformed /session settings object: a
// missing required key, an unrecognised key, or a value of the wrong
// type. Reason is pre-formatted to the exact wording spec.md §4.4
// requires; Error appends the "(InvalidSettingsError)" suffix the
// original protocol's error bodies always carried.
type InvalidSettingsError struct {
	Reason string
}

func (e *InvalidSettingsError) Error() string {
	return fmt.Sprintf("%s (InvalidSettingsError)", e.Reason)
}

// NoQuestionsError reports sampling exhaustion: no enabled question type
// had a compatible candidate after the retry budget was spent.
type NoQuestionsError struct{}

func (e *NoQuestionsError) Error() string {
	return "no enabled question type has a compatible candidate in the held vocab list (NoQuestionsError)"
}

// ErrorKind names the taxonomy entry (spec.md §7) of any error this
// service can produce, for rendering the wire format in server.go's
// "Bad request: 400 Bad Request: <ErrorKind>: <message>".
func ErrorKind(err error) string {
	switch err.(type) {
	case *accido.InvalidInputError:
		return "InvalidInputError"
	case *accido.NoEndingError:
		return "NoEndingError"
	case *lego.InvalidVocabFileFormatError:
		return "InvalidVocabFileFormatError"
	case *InvalidSettingsError:
		return "InvalidSettingsError"
	case *NoQuestionsError:
		return "NoQuestionsError"
	case *ErrNoVocab:
		return "InvalidSettingsError"
	default:
		return "Error"
	}
}

// StatusCode maps an error's kind to the HTTP status the boundary should
// return: internal-invariant violations (NoEndingError) are 500s; every
// other recognised kind is a 400, per spec.md §7's propagation policy.
func StatusCode(err error) int {
	if ErrorKind(err) == "NoEndingError" {
		return 500
	}
	return 400
}
