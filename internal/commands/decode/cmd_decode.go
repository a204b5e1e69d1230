package decode

import (
	"github.com/bokysan/base32ace/v2/internal/commands"
	"github.com/bokysan/base32ace/v2/internal/logging"
	"github.com/bokysan/base32ace/v2/internal/util"
	"github.com/bokysan/base32ace/v2/internal/util/enc"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"strings"
)

// Command decodes text files (or stdin) and writes the raw bytes to the output.
type Command struct {
	commands.Streams

	Encoder  string `yaml:"encoder"  short:"e" long:"encoder"  env:"ENCODER"  description:"Encoder the input was encoded with (name or one-letter code). Defaults to the general default encoder."`
	Undotify bool   `yaml:"undotify"           long:"undotify" env:"UNDOTIFY" description:"Remove dots (DNS label separators) before decoding"`
}

func NewCommand() *Command {
	return &Command{}
}

func (s *Command) String() string {
	return "Decode"
}

func (s *Command) Execute(args []string) error {
	logging.SetupLogging()
	return s.Run(args)
}

// Run does the actual work of Execute, without touching the global logging setup.
func (s *Command) Run(files []string) error {
	e, err := commands.ResolveEncoder(s.Encoder, false)
	if err != nil {
		return err
	}
	log.Debugf("Decoding with %v", e)

	// Whitespace is data for transparent encoders: only the newline added by encode is dropped.
	trim := strings.TrimSpace
	if t, ok := e.(enc.Transparent); ok && t.Transparent() {
		trim = func(s string) string {
			return strings.TrimSuffix(s, "\n")
		}
	}

	out := s.Stdout()
	return util.ReadInputs(files, s.Stdin(), func(name string, data []byte) error {
		text := trim(string(data))
		if s.Undotify {
			text = util.Undotify(text)
		}
		res, err := e.Decode(text)
		if err != nil {
			return err
		}
		log.Tracef("%v: %d characters -> %d bytes", name, len(text), len(res))
		_, err = out.Write(res)
		return errors.WithStack(err)
	})
}
