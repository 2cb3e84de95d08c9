package common

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWipeByteArray(t *testing.T) {
	b := []byte("secret1")
	WipeByteArray(b)
	require.Equal(t, make([]byte, 7), b)
}

func TestWipeByteArrayNil(t *testing.T) {
	require.NotPanics(t, func() { WipeByteArray(nil) })
}
