package store

import (
	"sort"
	"strings"

	"github.com/balkashynov/matwork/internal/models"
)

// Match ranks, best first
const (
	MatchExact = iota
	MatchPrefix
	MatchSuffix
	MatchContains
	matchNone
)

// SearchResult is a bank exercise with how well it matched.
type SearchResult struct {
	Exercise models.Exercise
	Rank     int
}

// SearchBank finds bank exercises by name, description or category. Matching
// is case insensitive; names rank by exact, prefix, suffix then substring,
// other fields only by substring. Ties keep bank order.
func (s *Store) SearchBank(query string) []SearchResult {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return nil
	}

	var results []SearchResult
	for _, e := range s.ListBankExercises() {
		rank := rankName(e.Key(), q)
		if rank == matchNone &&
			(strings.Contains(strings.ToLower(e.Description), q) ||
				strings.Contains(string(e.Category), q)) {
			rank = MatchContains
		}
		if rank != matchNone {
			results = append(results, SearchResult{Exercise: e, Rank: rank})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Rank < results[j].Rank
	})
	return results
}

func rankName(name, q string) int {
	switch {
	case name == q:
		return MatchExact
	case strings.HasPrefix(name, q):
		return MatchPrefix
	case strings.HasSuffix(name, q):
		return MatchSuffix
	case strings.Contains(name, q):
		return MatchContains
	default:
		return matchNone
	}
}
