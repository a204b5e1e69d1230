package enc

import (
	"bytes"
	"github.com/pkg/errors"
	"strings"
)

// Encoders lists all known encoders. The first one is the default.
var Encoders = []Encoder{
	&Base32Encoder{},
	Base91,
	Base128,
	Raw,
}

// Lookup finds the encoder either by its (case-insensitive) name or by its one-letter code.
// An empty string yields the default encoder.
func Lookup(nameOrCode string) (Encoder, error) {
	nameOrCode = strings.TrimSpace(nameOrCode)
	if nameOrCode == "" {
		return Encoders[0], nil
	}
	for _, e := range Encoders {
		if strings.EqualFold(e.Name(), nameOrCode) {
			return e, nil
		}
		if len(nameOrCode) == 1 && strings.EqualFold(string(e.Code()), nameOrCode) {
			return e, nil
		}
	}
	return nil, errors.Errorf("unknown encoder: %q", nameOrCode)
}

// SelfTest runs all test patterns of the encoder through an encode / decode cycle.
func SelfTest(e Encoder) error {
	for _, p := range e.TestPatterns() {
		decoded, err := e.Decode(e.Encode([]byte(p)))
		if err != nil {
			return errors.Wrapf(err, "%v failed to decode pattern %q", e.Name(), p)
		}
		if !bytes.Equal(decoded, []byte(p)) {
			return errors.Errorf("%v pattern %q came back as %q", e.Name(), p, decoded)
		}
	}
	return nil
}
