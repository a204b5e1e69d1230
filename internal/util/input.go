package util

import (
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"io/ioutil"
)

// StdinName is the file name which refers to the standard input
const StdinName = "-"

// InputHandler processes the contents of a single input
type InputHandler func(name string, data []byte) error

// ReadInputs reads every named file in turn and hands its contents over to the handler. The name "-"
// (or an empty list of files) reads from `stdin` instead. A failing input does not stop the
// processing; all errors are collected and returned together.
func ReadInputs(files []string, stdin io.Reader, handler InputHandler) error {
	if len(files) == 0 {
		files = []string{StdinName}
	}

	var errs error
	for _, name := range files {
		data, err := readInput(name, stdin)
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "could not read %v", name))
			continue
		}
		log.Debugf("Read %d bytes from %v", len(data), name)

		if err := handler(name, data); err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "could not process %v", name))
		}
	}
	return errs
}

func readInput(name string, stdin io.Reader) ([]byte, error) {
	if name == StdinName {
		data, err := ioutil.ReadAll(stdin)
		return data, errors.WithStack(err)
	}
	data, err := ioutil.ReadFile(name)
	return data, errors.WithStack(err)
}
