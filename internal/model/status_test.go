package model

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidStatus(t *testing.T) {
	for _, s := range Statuses() {
		require.True(t, ValidStatus(s), "status %s", s)
	}
	require.False(t, ValidStatus("LOST"))
	require.False(t, ValidStatus(""))
	require.False(t, ValidStatus("pending")) // case sensitive
}

func TestNotFoundError(t *testing.T) {
	err := NotFound(KindOrder, "o1")
	require.True(t, IsNotFound(err))
	require.EqualError(t, err, "order not found with id: o1")
}
