package enc

// Raw passes the data through as-is. Only usable where the output channel is 8-bit clean.
var Raw Encoder = &codec{
	name:        "Raw",
	code:        'R',
	ratio:       1.0,
	transparent: true,
	encode: func(data []byte) string {
		return string(data)
	},
	decode: func(data string) ([]byte, error) {
		return []byte(data), nil
	},
}
