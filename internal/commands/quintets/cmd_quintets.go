package quintets

import (
	"fmt"
	"github.com/bokysan/base32ace/v2/internal/commands"
	"github.com/bokysan/base32ace/v2/internal/logging"
	"github.com/bokysan/base32ace/v2/internal/util"
	"github.com/bokysan/base32ace/v2/internal/util/enc"
	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"strings"
)

// Command prints the 5-bit groups of the input, the way they are fed into the Base32 alphabet.
type Command struct {
	commands.Streams

	Symbols bool `yaml:"symbols" short:"s" long:"symbols" env:"SYMBOLS" description:"Print the Base32 symbol next to every quintet"`
}

func NewCommand() *Command {
	return &Command{}
}

func (s *Command) String() string {
	return "Quintets"
}

func (s *Command) Execute(args []string) error {
	logging.SetupLogging()
	return s.Run(args)
}

// Run does the actual work of Execute, without touching the global logging setup.
func (s *Command) Run(files []string) error {
	out := s.Stdout()
	return util.ReadInputs(files, s.Stdin(), func(name string, data []byte) error {
		quintets := enc.BytesToQuintets(data)

		if log.IsLevelEnabled(log.TraceLevel) {
			positions := make([]enc.OctetPosition, len(quintets))
			for i := range positions {
				positions[i] = enc.OctetsForQuintet(i)
			}
			log.Tracef("%v octet positions:\n%s", name, spew.Sdump(positions))
		}

		_, err := fmt.Fprintln(out, Format(quintets, s.Symbols))
		return errors.WithStack(err)
	})
}

// Format renders quintets as space separated binary numbers, optionally followed by their symbol.
func Format(quintets []byte, symbols bool) string {
	parts := make([]string, len(quintets))
	for i, q := range quintets {
		if symbols {
			parts[i] = fmt.Sprintf("%05b:%c", q, enc.ByteToBase32Char(q))
		} else {
			parts[i] = fmt.Sprintf("%05b", q)
		}
	}
	return strings.Join(parts, " ")
}
