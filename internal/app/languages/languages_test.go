package languages

import (
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func codes(langs []Language) []string {
	return lo.Map(langs, func(l Language, _ int) string { return l.Code })
}

func TestSupportedCodesAreUnique(t *testing.T) {
	assert.Len(t, lo.UniqBy(Supported, func(l Language) string { return l.Code }), len(Supported))
	assert.Equal(t, "en", Supported[0].Code)
}

func TestLookup(t *testing.T) {
	l, ok := Lookup("de")
	require.True(t, ok)
	assert.Equal(t, "German", l.Label)

	_, ok = Lookup("xx")
	assert.False(t, ok)
}

func TestSearch(t *testing.T) {
	tests := []struct {
		name  string
		query string
		limit int
		want  []string
	}{
		{"empty query returns first entries", "", 3, []string{"en", "en_au", "en_uk"}},
		{"exact code first", "de", 1, []string{"de"}},
		{"prefix before word prefix", "nor", 5, []string{"no", "nn"}},
		{"word prefix", "brit", 5, []string{"en_uk"}},
		{"case insensitive", "SPAN", 5, []string{"es"}},
		{"no match", "qqq", 5, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, codes(Search(tt.query, tt.limit)))
		})
	}
}

func TestSearchRanksPrefixAheadOfSubstring(t *testing.T) {
	got := codes(Search("ma", 20))

	require.NotEmpty(t, got)
	// Macedonian, Malagasy, Malay, Malayalam, Maltese, Maori, Marathi start with "ma".
	assert.Equal(t, []string{"mk", "mg", "ms", "ml", "mt", "mi", "mr"}, got[:7])
	assert.Contains(t, got, "so") // Somali
}

func TestSearchDefaultLimit(t *testing.T) {
	assert.Len(t, Search("a", 0), DefaultLimit)
}
