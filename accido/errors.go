package accido

import "fmt"

// InvalidInputError reports malformed principal parts or metadata at
// entity construction. It is local to Accido and fatal to the request;
// Lego wraps it with line context before it reaches the HTTP boundary.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("accido: invalid input: %s", e.Reason)
}

func (e *InvalidInputError) errorKind() string { return "InvalidInputError" }

// NoEndingError signals a programmer error: a paradigm lookup missed a key
// that should have been present in the entity's ending table. It is never
// returned over the wire; the HTTP layer maps it to a 500.
type NoEndingError struct {
	Key      EndingKey
	Headword string
}

func (e *NoEndingError) Error() string {
	return fmt.Sprintf("accido: no ending for %q at key %q", e.Headword, e.Key)
}

func (e *NoEndingError) errorKind() string { return "NoEndingError" }

// ErrorKind returns the taxonomy name used in the "<ErrorKind>: <message>"
// wire format of spec.md §6.1, for any error produced by this package.
func ErrorKind(err error) string {
	switch e := err.(type) {
	case *InvalidInputError:
		return e.errorKind()
	case *NoEndingError:
		return e.errorKind()
	default:
		return "Error"
	}
}
