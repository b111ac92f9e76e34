// Package languages lists the supported transcription languages and ranks
// them against a user's partial query.
package languages

import (
	"sort"
	"strings"

	"github.com/samber/lo"
)

// DefaultLimit caps search results, matching the external select menu.
const DefaultLimit = 10

// Language is one selectable language
type Language struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

var byCode = lo.KeyBy(Supported, func(l Language) string { return l.Code })

// Lookup returns the language with the given code
func Lookup(code string) (Language, bool) {
	l, ok := byCode[code]
	return l, ok
}

// Match ranks, best first.
const (
	rankExactCode = iota
	rankPrefix
	rankWordPrefix
	rankSubstring
	rankSubsequence
	rankNone
)

// Search returns up to limit languages matching query, best match first.
// An empty query returns the first limit languages in table order.
func Search(query string, limit int) []Language {
	if limit <= 0 {
		limit = DefaultLimit
	}
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return lo.Slice(Supported, 0, limit)
	}

	type scored struct {
		Language
		rank  int
		index int
	}
	matches := lo.FilterMap(Supported, func(l Language, i int) (scored, bool) {
		r := rank(l, query)
		return scored{Language: l, rank: r, index: i}, r != rankNone
	})
	sort.SliceStable(matches, func(i, j int) bool {
		if matches[i].rank != matches[j].rank {
			return matches[i].rank < matches[j].rank
		}
		return matches[i].index < matches[j].index
	})

	return lo.Map(lo.Slice(matches, 0, limit), func(s scored, _ int) Language {
		return s.Language
	})
}

func rank(l Language, query string) int {
	label := strings.ToLower(l.Label)
	switch {
	case l.Code == query:
		return rankExactCode
	case strings.HasPrefix(label, query):
		return rankPrefix
	case lo.SomeBy(strings.FieldsFunc(label, isSeparator), func(w string) bool { return strings.HasPrefix(w, query) }):
		return rankWordPrefix
	case strings.Contains(label, query):
		return rankSubstring
	case isSubsequence(query, label):
		return rankSubsequence
	default:
		return rankNone
	}
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '(' || r == ')'
}

func isSubsequence(query, s string) bool {
	qr := []rune(query)
	i := 0
	for _, r := range s {
		if i < len(qr) && r == qr[i] {
			i++
		}
	}
	return i == len(qr)
}
