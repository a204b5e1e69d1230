package enc

// Encoder is a binary-to-text transformation
type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represents the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// Decode is the reverse process of encoding
	Decode(string) ([]byte, error)

	// TestPatterns returns a list of inputs which must survive an encode / decode round trip
	TestPatterns() []string

	// Ratio is the (approximate) number of output characters per input byte
	Ratio() float64
}
