package quintets

import (
	"bytes"
	"github.com/bokysan/base32ace/v2/internal/commands"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func Test_Format(t *testing.T) {
	require.Equal(t, "01110 10011 11011 10000", Format([]byte{0b01110, 0b10011, 0b11011, 0b10000}, false))
	require.Equal(t, "11111:7 11100:4", Format([]byte{0b11111, 0b11100}, true))
	require.Equal(t, "", Format(nil, false))
}

func Test_QuintetsCommand(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := NewCommand()
	cmd.Streams = commands.Streams{In: strings.NewReader("\x74\xf7"), Out: out}
	require.NoError(t, cmd.Run(nil))
	require.Equal(t, "01110 10011 11011 10000\n", out.String())
}
