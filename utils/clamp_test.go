package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClamp(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0.5, Clamp(0.5, 0, 1))
	require.Equal(t, 1.0, Clamp(3.7, 0, 1))
	require.Equal(t, -1.0, Clamp(-2.0, -1, 1))

	// swapped bounds still work
	require.Equal(t, 0.25, Clamp(0.25, 1, 0))
}

func TestClampUnit(t *testing.T) {
	t.Parallel()

	require.Equal(t, 0.0, ClampUnit(-0.01))
	require.Equal(t, 1.0, ClampUnit(1.01))
	require.Equal(t, 0.99, ClampUnit(0.99))
}

func TestClampBipolarUnit(t *testing.T) {
	t.Parallel()

	require.Equal(t, -1.0, ClampBipolarUnit(-1.5))
	require.Equal(t, 1.0, ClampBipolarUnit(255.0))
	require.Equal(t, -0.5, ClampBipolarUnit(-0.5))
}
