package util

import (
	"github.com/hashicorp/go-multierror"
	"github.com/jessevdk/go-flags"
	log "github.com/sirupsen/logrus"
	"os"
)

const (
	// ErrInput is returned when some of the inputs could not be processed
	ErrInput = 98
	// ErrGeneric is returned for all other errors
	ErrGeneric = 99
)

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with provided error code.
// Error code is unwrapped from `flags.Error` object. Aggregated errors (one per failed input) are
// logged one by one and exit with ErrInput. Any other kind of error exits with ErrGeneric.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	switch e := err.(type) {
	case *flags.Error:
		if e.Type == flags.ErrHelp {
			os.Exit(0)
		}

		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
		log.Exit(int(e.Type))
	case *multierror.Error:
		for _, single := range e.Errors {
			log.StandardLogger().WithError(single).Logf(log.FatalLevel, "Error: %v", single)
		}
		log.Exit(ErrInput)
	default:
		log.StandardLogger().WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
		log.Exit(ErrGeneric)
	}
}
