package enc

import (
	"github.com/mtraver/base91"
	"github.com/pkg/errors"
)

// cb91 is the basE91 alphabet with '-' in place of '.', so the output never splits a DNS label
const cb91 = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789!#$%&()*+,-/:;<=>?@[]^_`{|}~\""

var base91Encoding = base91.NewEncoding(cb91)

// Base91 converts each group of 13 bits into 2 radix-91 digits. At 16 characters per 13 bits it is
// the densest printable companion to Base32's 8 characters per 5 bytes.
var Base91 Encoder = &codec{
	name:     "Base91",
	code:     'X',
	ratio:    16.0 / 13.0,
	patterns: []string{cb91, cb32},
	encode:   base91Encoding.EncodeToString,
	decode: func(data string) ([]byte, error) {
		res, err := base91Encoding.DecodeString(data)
		return res, errors.WithStack(err)
	},
}
