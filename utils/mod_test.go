package utils

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFindIndex(t *testing.T) {
	require.Equal(t, 1, FindIndex([]int{4, 5, 5}, 5), "Should return the first match")
	require.Equal(t, -1, FindIndex([]int{4, 5}, 6))
	require.Equal(t, -1, FindIndex([]string(nil), "a"))
}

func TestContains(t *testing.T) {
	a, b := new(int), new(int)
	require.True(t, Contains([]*int{a}, a))
	require.False(t, Contains([]*int{a}, b), "Pointers compare by identity")
}
