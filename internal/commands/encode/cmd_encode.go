package encode

import (
	"fmt"
	"github.com/bokysan/base32ace/v2/internal/commands"
	"github.com/bokysan/base32ace/v2/internal/logging"
	"github.com/bokysan/base32ace/v2/internal/util"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command encodes files (or stdin) and prints the result, one line per input.
type Command struct {
	commands.Streams

	Padding bool   `yaml:"padding" short:"p" long:"padding" env:"PADDING" description:"Pad the output with '=' to a multiple of 8 characters (Base32 only)"`
	Encoder string `yaml:"encoder" short:"e" long:"encoder" env:"ENCODER" description:"Encoder to use (name or one-letter code). Defaults to the general default encoder."`
	Dotify  bool   `yaml:"dotify"            long:"dotify"  env:"DOTIFY"  description:"Split the output into DNS labels and verify it's a valid host name"`
}

func NewCommand() *Command {
	return &Command{}
}

func (s *Command) String() string {
	return "Encode"
}

func (s *Command) Execute(args []string) error {
	logging.SetupLogging()
	return s.Run(args)
}

// Run does the actual work of Execute, without touching the global logging setup.
func (s *Command) Run(files []string) error {
	e, err := commands.ResolveEncoder(s.Encoder, s.Padding)
	if err != nil {
		return err
	}
	log.Debugf("Encoding with %v", e)

	out := s.Stdout()
	return util.ReadInputs(files, s.Stdin(), func(name string, data []byte) error {
		text := e.Encode(data)
		if s.Dotify && text != "" {
			text = string(util.Dotify([]byte(text)))
			if err := util.ValidateHostname(text); err != nil {
				return err
			}
		}
		log.Tracef("%v: %d bytes -> %d characters", name, len(data), len(text))
		_, err := fmt.Fprintln(out, text)
		return errors.WithStack(err)
	})
}
