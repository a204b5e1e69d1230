package encoders

import (
	"fmt"
	"github.com/bokysan/base32ace/v2/internal/commands"
	"github.com/bokysan/base32ace/v2/internal/logging"
	"github.com/bokysan/base32ace/v2/internal/util/enc"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Command lists the available encoders and checks that each of them round-trips its test patterns.
type Command struct {
	commands.Streams
}

func NewCommand() *Command {
	return &Command{}
}

func (s *Command) String() string {
	return "Encoders"
}

func (s *Command) Execute(args []string) error {
	logging.SetupLogging()
	return s.Run(args)
}

// Run does the actual work of Execute, without touching the global logging setup.
func (s *Command) Run(args []string) error {
	out := s.Stdout()

	var errs error
	for _, e := range enc.Encoders {
		status := "ok"
		if err := enc.SelfTest(e); err != nil {
			status = "FAILED"
			errs = multierror.Append(errs, err)
		}
		if _, err := fmt.Fprintf(out, "%c  %-8s %5.3f  %s\n", e.Code(), e.Name(), e.Ratio(), status); err != nil {
			return errors.WithStack(err)
		}
	}
	return errs
}
