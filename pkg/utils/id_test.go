package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateID(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 100; i++ {
		id, err := GenerateID()
		require.NoError(t, err)

		assert.Len(t, id, runIDSize)
		for _, r := range id {
			assert.True(t, strings.ContainsRune(idAlphabet, r), "caractere inesperado %q", r)
		}

		assert.False(t, seen[id], "ID repetido %s", id)
		seen[id] = true
	}
}
