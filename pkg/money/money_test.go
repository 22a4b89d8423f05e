package money

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		cents int64
		want  string
	}{
		{0, "$0.00"},
		{5, "$0.05"},
		{1250, "$12.50"},
		{3750, "$37.50"},
		{123456, "$1,234.56"},
		{-675, "-$6.75"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, Format(tc.cents), "cents=%d", tc.cents)
	}
}

func TestToDecimal(t *testing.T) {
	require.Equal(t, "12.5", ToDecimal(1250).String())
	require.True(t, ToDecimal(1999).Equal(ToDecimal(1000).Add(ToDecimal(999))))
}
