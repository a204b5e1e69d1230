package enc

import (
	"encoding/base32"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"math/rand"
	"strings"
	"testing"
)

var encoderTest = []byte("\000\000\000\000\377\377\377\377\125\125\125\125\252\252\252\252" +
	"\201\143\310\322\307\174\262\027\137\117\316\311\111\055\122\041" +
	"\141\251\161\040\045\263\006\163\346\330\104\060\171\120\127\277")

var encoderTests = [][]byte{
	encoderTest,
	[]byte("Hello, world!"),
	[]byte(""),
	[]byte("z"),
	[]byte("1234567"),
	[]byte("Lorem ipsum dolor sit amet, consectetur adipiscing elit."),
}

func Test_EncodeHello(t *testing.T) {
	data := []byte("hello")
	require.Equal(t, "NBSWY3DP", Encode(data, false))
	require.Equal(t, "NBSWY3DP", Encode(data, true))
}

func Test_EncodeZ(t *testing.T) {
	data := []byte("Z")
	require.Equal(t, "LI", Encode(data, false))
	require.Equal(t, "LI======", Encode(data, true))
}

func Test_EncodeLongString(t *testing.T) {
	data := []byte("what the! GET OUT OF HERE & +")
	require.Equal(t, "O5UGC5BAORUGKIJAI5CVIICPKVKCAT2GEBEEKUSFEATCAKY", Encode(data, false))
	require.Equal(t, "O5UGC5BAORUGKIJAI5CVIICPKVKCAT2GEBEEKUSFEATCAKY=", Encode(data, true))
}

func Test_EncodeEmpty(t *testing.T) {
	require.Equal(t, "", Encode(nil, false))
	require.Equal(t, "", Encode([]byte{}, true))
}

func Test_EncodedLength(t *testing.T) {
	for n := 0; n < 100; n++ {
		data := make([]byte, n)
		unpadded := (8*n + 4) / 5
		padded := (unpadded + 7) / 8 * 8

		require.Lenf(t, Encode(data, false), unpadded, "unpadded length for %d bytes", n)
		require.Lenf(t, Encode(data, true), padded, "padded length for %d bytes", n)
		require.Equal(t, unpadded, EncodedLen(n, false))
		require.Equal(t, padded, EncodedLen(n, true))
	}
}

func Test_EncodeAlphabetAndPadding(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		data := make([]byte, r.Intn(40))
		r.Read(data)

		unpadded := Encode(data, false)
		padded := Encode(data, true)

		require.True(t, strings.HasPrefix(padded, unpadded), "unpadded output must be a prefix of the padded one")
		require.NotContains(t, unpadded, "=")
		for _, c := range []byte(unpadded) {
			require.Containsf(t, cb32, string(c), "character %q is not in the alphabet", c)
		}
		require.Equal(t, strings.Repeat("=", len(padded)-len(unpadded)), padded[len(unpadded):])
		require.Equal(t, padded, Encode(data, true), "encoding must be deterministic")
	}
}

func Test_EncodeMatchesStandardLibrary(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	raw := base32.StdEncoding.WithPadding(base32.NoPadding)
	for i := 0; i < 500; i++ {
		data := make([]byte, r.Intn(70))
		r.Read(data)

		require.Equal(t, base32.StdEncoding.EncodeToString(data), Encode(data, true))
		require.Equal(t, raw.EncodeToString(data), Encode(data, false))
	}
}

func Test_DataExtension(t *testing.T) {
	data := Data("Z")
	require.Equal(t, "LI", data.Base32String())
	require.Equal(t, "LI", data.Base32String(false))
	require.Equal(t, "LI======", data.Base32String(true))
}

func Test_Decode(t *testing.T) {
	res, err := Decode("NBSWY3DP")
	require.NoError(t, err)
	require.Equal(t, []byte("hello"), res)

	res, err = Decode("LI======")
	require.NoError(t, err)
	require.Equal(t, []byte("Z"), res)

	res, err = Decode("li")
	require.NoError(t, err)
	require.Equal(t, []byte("Z"), res)

	res, err = Decode("")
	require.NoError(t, err)
	require.Empty(t, res)
}

func Test_DecodeRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		data := make([]byte, r.Intn(70))
		r.Read(data)

		for _, padding := range []bool{false, true} {
			decoded, err := Decode(Encode(data, padding))
			require.NoError(t, err)
			require.Equal(t, len(data), len(decoded))
			if len(data) > 0 {
				require.Equal(t, data, decoded)
			}
		}
	}
}

func Test_DecodeErrors(t *testing.T) {
	tests := []struct {
		input string
		cause error
	}{
		{"NBSWY3D1", ErrInvalidCharacter},
		{"NBSW Y3D", ErrInvalidCharacter},
		{"LI=====", ErrInvalidPadding},
		{"L=======", ErrInvalidPadding},
		{"========", ErrInvalidPadding},
		{"LI==LI==", ErrInvalidPadding},
		{"N", ErrInvalidLength},
		{"NBS", ErrInvalidLength},
		{"NBSWY3", ErrInvalidLength},
		{"LJ", ErrNonCanonical},
		{"LJ======", ErrNonCanonical},
	}

	for _, tt := range tests {
		_, err := Decode(tt.input)
		require.Errorf(t, err, "expected %q to fail", tt.input)
		require.Equalf(t, tt.cause, errors.Cause(err), "wrong error for %q: %v", tt.input, err)
	}
}

func Test_DecodedLen(t *testing.T) {
	require.Equal(t, 0, DecodedLen(0))
	require.Equal(t, 1, DecodedLen(2))
	require.Equal(t, 2, DecodedLen(4))
	require.Equal(t, 3, DecodedLen(5))
	require.Equal(t, 4, DecodedLen(7))
	require.Equal(t, 5, DecodedLen(8))
}

func Test_Base32CharConversion(t *testing.T) {
	for i := 0; i < 32; i++ {
		c := IntToBase32Char(i)
		require.Equal(t, i, Base32CharToInt(c))
		require.Equal(t, c, ByteToBase32Char(byte(i)))
	}
	require.Equal(t, byte('A'), IntToBase32Char(32))
	require.Equal(t, 25, Base32CharToInt('z'))
	require.Equal(t, -1, Base32CharToInt('1'))
	require.Equal(t, -1, Base32CharToInt('='))
}

func Test_Base32Encoder(t *testing.T) {
	for _, encoderTest := range encoderTests {
		encoder := Base32Encoder{}
		encoded := encoder.Encode(encoderTest)
		require.NotContains(t, encoded, "=")
		require.NotContains(t, encoded, ".")
		decoded, err := encoder.Decode(encoded)
		require.NoError(t, err)
		require.Equal(t, len(encoderTest), len(decoded))
		if len(encoderTest) > 0 {
			require.Equal(t, encoderTest, decoded)
		}
	}
}

func Test_Base32EncoderPadded(t *testing.T) {
	encoder := Base32Encoder{Padding: true}
	require.Equal(t, "LI======", encoder.Encode([]byte("Z")))
	require.Equal(t, "Base32(T)", encoder.String())

	_, err := encoder.Decode("LI=")
	require.Error(t, err)
	require.Equal(t, ErrInvalidPadding, errors.Cause(err))
}
