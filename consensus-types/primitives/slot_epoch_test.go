package primitives

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSlot_SubSlot_SaturatesAtZero(t *testing.T) {
	require.Equal(t, Slot(0), Slot(3).SubSlot(5))
	require.Equal(t, Slot(2), Slot(5).SubSlot(3))
}

func TestEpoch_SubEpoch_SaturatesAtZero(t *testing.T) {
	require.Equal(t, Epoch(0), Epoch(1).SubEpoch(2))
	require.Equal(t, Epoch(1), Epoch(2).SubEpoch(1))
}

func TestSlot_Add(t *testing.T) {
	require.Equal(t, Slot(10), Slot(7).Add(3))
}
