package enc

import (
	"fmt"
	"github.com/pkg/errors"
)

// Transparent is implemented by encoders which may output any byte, whitespace included. Their
// output must not be trimmed before decoding.
type Transparent interface {
	Transparent() bool
}

// codec is an Encoder assembled from a pair of functions. Base32 has its own type as it carries the
// padding setting; the companions used for comparison are all codecs.
type codec struct {
	name        string
	code        byte
	ratio       float64
	transparent bool
	patterns    []string
	encode      func([]byte) string
	decode      func(string) ([]byte, error)
}

func (c *codec) Name() string {
	return c.name
}

func (c *codec) String() string {
	return fmt.Sprintf("%v(%v)", c.name, string(c.code))
}

func (c *codec) Code() byte {
	return c.code
}

func (c *codec) Encode(data []byte) string {
	return c.encode(data)
}

func (c *codec) Decode(data string) ([]byte, error) {
	res, err := c.decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "%v", c.name)
	}
	return res, nil
}

func (c *codec) TestPatterns() []string {
	return c.patterns
}

func (c *codec) Ratio() float64 {
	return c.ratio
}

func (c *codec) Transparent() bool {
	return c.transparent
}
