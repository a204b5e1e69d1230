package main

import (
	"fmt"
	"github.com/bokysan/base32ace/v2/internal/args"
	"github.com/bokysan/base32ace/v2/internal/commands/decode"
	"github.com/bokysan/base32ace/v2/internal/commands/encode"
	"github.com/bokysan/base32ace/v2/internal/commands/encoders"
	"github.com/bokysan/base32ace/v2/internal/commands/quintets"
	"github.com/bokysan/base32ace/v2/internal/commands/version"
	scFlags "github.com/bokysan/base32ace/v2/internal/flags"
	"github.com/bokysan/base32ace/v2/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"os"
	"path"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Base32Ace is the main executable
type Base32Ace struct {
	parser *flags.Parser
}

// NewBase32Ace will create a new instance of Base32Ace and initialize the parser
func NewBase32Ace() *Base32Ace {
	executablePath := path.Base(os.Args[0])

	b := &Base32Ace{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}

	b.setupGeneral()
	b.setupConfiguration()
	b.addCommand("version", "Print the version", "Print the application version and exit", &version.Command{})
	b.addCommand("encode", "Encode data", "Encode files (or stdin) and print one encoded line per input", encode.NewCommand())
	b.addCommand("decode", "Decode data", "Decode files (or stdin) and write the raw bytes to stdout", decode.NewCommand())
	b.addCommand("quintets", "Show 5-bit groups", "Print the 5-bit groups Base32 splits the input into", quintets.NewCommand())
	b.addCommand("encoders", "List encoders", "List all available encoders and run their self-test", encoders.NewCommand())

	return b
}

// setupGeneral will configure general options
func (b *Base32Ace) setupGeneral() {
	if _, err := b.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupConfiguration makes the `--config` option read the given yaml file into the parser's groups
func (b *Base32Ace) setupConfiguration() {
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		yamlParser := scFlags.NewYamlParser(b.parser)

		args.General.ConfigurationFilePath = file
		return yamlParser.ParseFile(file)
	}
}

func (b *Base32Ace) addCommand(name, short, long string, data interface{}) {
	_, err := b.parser.AddCommand(name, short, long, data)
	util.MustErrorNilOrExit(err)
}

// main starts base32ace and reads the configuration file
func main() {
	b := NewBase32Ace()
	_, err := b.parser.Parse()
	util.MustErrorNilOrExit(err)
}
