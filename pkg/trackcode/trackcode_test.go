package trackcode

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		code, err := Generate()
		require.NoError(t, err)
		require.Len(t, code, Length)
		for _, c := range code {
			assert.True(t, strings.ContainsRune(Alphabet, c), "unexpected character %q in code %s", c, code)
		}
		seen[code] = true
	}

	// 100 draws from a 36^6 space colliding down to a handful would mean the
	// generator is broken.
	assert.Greater(t, len(seen), 95)
}

func TestGenerate_UniformAlphabetCoverage(t *testing.T) {
	// Draw enough characters that every alphabet member must appear; a
	// generator skewed toward part of the alphabet starves the rest.
	// 6000 draws miss any single character with probability (35/36)^6000.
	counts := make(map[rune]int, len(Alphabet))
	for i := 0; i < 1000; i++ {
		code, err := Generate()
		require.NoError(t, err)
		require.Len(t, code, Length)
		for _, c := range code {
			counts[c]++
		}
	}

	require.Len(t, counts, len(Alphabet))
	for _, c := range Alphabet {
		assert.Positive(t, counts[c], "character %q never drawn", c)
	}
}
