package args

import (
	"github.com/stretchr/testify/require"
	"testing"
)

func Test_Fallbacks(t *testing.T) {
	saved := General
	defer func() { General = saved }()

	General.DefaultEncoder, General.LogFormat, General.LogColor = "", "", ""
	require.Equal(t, DefaultEncoder, Encoder())
	require.Equal(t, DefaultLogFormat, LogFormat())
	require.Equal(t, DefaultLogColor, LogColor())

	General.DefaultEncoder, General.LogFormat, General.LogColor = "X", "json", "no"
	require.Equal(t, "X", Encoder())
	require.Equal(t, "json", LogFormat())
	require.Equal(t, "no", LogColor())
}
