package flags

import (
	"fmt"
	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"io"
	"os"
	"path"
	"reflect"
	"strings"
	"unsafe"
)

// YamlParser is an argument parser for flags package but takes a YAML file instead of a standard INI.
type YamlParser struct {
	parser *flags.Parser
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser: p,
	}
}

// ParseFile parses flags from an yaml formatted file. The returned errors
// can be of the type flags.Error.
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)

	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	// Let the decoder know where the file is, so references to other files are resolved relative to it.
	return y.Parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// Parse takes an input stream and parses YAML documents one after another. Multiple documents may be
// stored in the same stream, separated by triple dashes (`---`).
func (y *YamlParser) Parse(config io.Reader, opts ...yaml.DecodeOption) error {
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode document at position %v", i)
		}

		if err = y.parseSegment(obj); err != nil {
			return errors.WithStack(err)
		}
	}
}

// findData returns the options structure registered for the given key. Keys are matched against command
// names first (e.g. "encode:") and then against group descriptions (e.g. "general:").
func (y *YamlParser) findData(name string) (reflect.Value, bool) {
	var group *flags.Group
	if command := y.parser.Find(name); command != nil {
		group = command.Group
	} else {
		for _, g := range y.parser.Groups() {
			if strings.EqualFold(g.ShortDescription, name) {
				group = g
				break
			}
		}
	}
	if group == nil {
		return reflect.Value{}, false
	}

	// The flags library does not expose the underlying data structure, so we dig it out with reflection.
	dataField := reflect.Indirect(reflect.ValueOf(group)).FieldByName("data")
	dataField = reflect.NewAt(dataField.Type(), unsafe.Pointer(dataField.UnsafeAddr())).Elem()
	return dataField.Elem(), true
}

// parseSegment matches every top level key of the document to a command or group and decodes
// the value into its options.
func (y *YamlParser) parseSegment(obj map[string]interface{}) error {
	for name, val := range obj {
		data, ok := y.findData(name)
		if !ok {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownGroup,
				Message: fmt.Sprintf("could not find command or group '%s'", name),
			})
		}

		if conv, err := yaml.Marshal(val); err != nil {
			return errors.WithStack(err)
		} else if err := yaml.Unmarshal(conv, data.Interface()); err != nil {
			return errors.WithStack(err)
		}
	}
	return nil
}
