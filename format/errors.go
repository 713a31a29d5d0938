package format

import (
	"errors"
	"fmt"

	"github.com/sigfmt/sigfmt/sig"
)

// ErrNilType is returned when a descriptor the formatter must walk is absent.
var ErrNilType = errors.New("format: nil type")

// UnknownKindError is returned for a descriptor of an unsupported kind.
type UnknownKindError struct {
	Kind sig.SignatureKind
}

func (e *UnknownKindError) Error() string {
	return fmt.Sprintf("format: unknown signature kind %d", int(e.Kind))
}
