package enc

import (
	"fmt"
	"github.com/pkg/errors"
	"strings"
)

const (
	// cb32 is the RFC 4648 base32 alphabet
	cb32 = "ABCDEFGHIJKLMNOPQRSTUVWXYZ234567"

	// PadChar is appended to the encoded output until its length is a multiple of 8
	PadChar = '='

	invalidSymbol = 0xFF
)

var (
	ErrInvalidCharacter = errors.New("invalid base32 character")
	ErrInvalidPadding   = errors.New("invalid base32 padding")
	ErrInvalidLength    = errors.New("invalid base32 length")
	ErrNonCanonical     = errors.New("non-zero trailing bits in base32 input")
)

var cb32Invert [256]byte

func init() {
	for i := range cb32Invert {
		cb32Invert[i] = invalidSymbol
	}
	for i, v := range []byte(cb32) {
		cb32Invert[v] = byte(i)
		if v >= 'A' && v <= 'Z' {
			cb32Invert[v+'a'-'A'] = byte(i)
		}
	}
}

// IntToBase32Char will covert the given number into a letter from the Base32 alphabet.
// If the number is larger than 31, it will "wrap over" and only use the lowest five bits.
func IntToBase32Char(in int) byte {
	return cb32[in&31]
}

func ByteToBase32Char(in byte) byte {
	return IntToBase32Char(int(in))
}

// Base32CharToInt is the reverse of IntToBase32Char. Letters are matched regardless of their case.
// It returns -1 for characters outside the alphabet.
func Base32CharToInt(in byte) int {
	v := cb32Invert[in]
	if v == invalidSymbol {
		return -1
	}
	return int(v)
}

// EncodedLen returns the length of the string produced by encoding n bytes.
func EncodedLen(n int, padding bool) int {
	l := QuintetCount(n)
	if padding {
		l = (l + 7) / 8 * 8
	}
	return l
}

// DecodedLen returns the number of bytes held by n (unpadded) base32 characters.
func DecodedLen(n int) int {
	return n * 5 / 8
}

// Encode converts data into its base32 representation. If padding is requested, the result is
// filled up with PadChar to a multiple of 8 characters.
func Encode(data []byte, padding bool) string {
	quintets := QuintetCount(len(data))
	res := make([]byte, EncodedLen(len(data), padding))
	for i := 0; i < quintets; i++ {
		res[i] = cb32[QuintetAt(data, i)]
	}
	for i := quintets; i < len(res); i++ {
		res[i] = PadChar
	}
	return string(res)
}

// Decode converts base32 text back into bytes. Both padded and unpadded input is accepted, but when
// padding is present, it must be complete. Trailing bits that do not form a whole byte must be zero.
func Decode(s string) ([]byte, error) {
	body := len(s)
	for body > 0 && s[body-1] == PadChar {
		body--
	}

	if pads := len(s) - body; pads > 0 {
		if len(s)%8 != 0 || pads > 6 {
			return nil, errors.Wrapf(ErrInvalidPadding, "%d padding characters at position %d", pads, body)
		}
	}

	if i := strings.IndexByte(s[:body], PadChar); i >= 0 {
		return nil, errors.Wrapf(ErrInvalidPadding, "padding at position %d", i)
	}

	switch body % 8 {
	case 1, 3, 6:
		return nil, errors.Wrapf(ErrInvalidLength, "%d characters", body)
	}

	dst := make([]byte, 0, DecodedLen(body))
	var acc uint16
	var bits uint
	for i := 0; i < body; i++ {
		v := cb32Invert[s[i]]
		if v == invalidSymbol {
			return nil, errors.Wrapf(ErrInvalidCharacter, "%q at position %d", s[i], i)
		}

		acc = acc<<5 | uint16(v)
		bits += 5
		if bits >= 8 {
			bits -= 8
			dst = append(dst, byte(acc>>bits))
			acc &= 1<<bits - 1
		}
	}

	if acc != 0 {
		return nil, errors.Wrapf(ErrNonCanonical, "at position %d", body-1)
	}

	return dst, nil
}

// Data is a byte buffer with a shortcut to its base32 form.
type Data []byte

// Base32String encodes the buffer. Padding is off unless explicitly requested.
func (d Data) Base32String(padded ...bool) string {
	return Encode(d, len(padded) > 0 && padded[0])
}

// -------------------------------------------------------

// Base32Encoder encodes 5 bytes to 8 characters. Good because it's not case-sensitive.
type Base32Encoder struct {
	Padding bool
}

func (b *Base32Encoder) Name() string {
	return "Base32"
}

func (b *Base32Encoder) String() string {
	return fmt.Sprintf("%v(%v)", b.Name(), string(b.Code()))
}

func (b *Base32Encoder) Code() byte {
	return 'T'
}

func (b *Base32Encoder) Encode(data []byte) string {
	return Encode(data, b.Padding)
}

func (b *Base32Encoder) Decode(data string) ([]byte, error) {
	res, err := Decode(data)
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base32Encoder) TestPatterns() []string {
	return []string{
		"aA" + cb32,
	}
}

func (b *Base32Encoder) Ratio() float64 {
	return 8.0 / 5.0
}
