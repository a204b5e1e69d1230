package commands

import (
	"github.com/bokysan/base32ace/v2/internal/args"
	"github.com/bokysan/base32ace/v2/internal/util/enc"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
)

// ResolveEncoder finds the encoder requested on the command line, falling back to the general default.
// Padding only applies to Base32.
func ResolveEncoder(name string, padding bool) (enc.Encoder, error) {
	if name == "" {
		name = args.Encoder()
	}
	e, err := enc.Lookup(name)
	if err != nil {
		return nil, err
	}

	if _, ok := e.(*enc.Base32Encoder); ok {
		return &enc.Base32Encoder{Padding: padding}, nil
	}
	if padding {
		log.Warnf("Padding is not supported by %v, ignoring", e.Name())
	}
	return e, nil
}

// Streams holds the input and output of a command. Nil values mean stdin / stdout.
type Streams struct {
	In  io.Reader `no-flag:"true"`
	Out io.Writer `no-flag:"true"`
}

func (s *Streams) Stdin() io.Reader {
	if s.In == nil {
		return os.Stdin
	}
	return s.In
}

func (s *Streams) Stdout() io.Writer {
	if s.Out == nil {
		return os.Stdout
	}
	return s.Out
}
