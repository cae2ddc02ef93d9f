// Package query keeps the search queries of the running session and suggests them back.
//
// Nothing is written to disk; suggestions disappear when the process exits.
package query

import (
	"strings"
	"sync"

	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/streamflix-cli/streamflix/key"
	"golang.org/x/exp/slices"
)

type record struct {
	Query string
	Rank  int
}

// Session is an in-memory query history. The zero value is ready to use.
type Session struct {
	mu      sync.RWMutex
	records map[string]*record
}

// NewSession returns an empty history.
func NewSession() *Session {
	return &Session{}
}

// Remember records q or raises its rank by weight.
func (s *Session) Remember(q string, weight int) {
	q = sanitize(q)
	if q == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.records == nil {
		s.records = make(map[string]*record)
	}

	if r, ok := s.records[q]; ok {
		r.Rank += weight
		return
	}
	s.records[q] = &record{Query: q, Rank: weight}
}

// SuggestMany returns remembered queries fuzzily matching q.
// Higher rank comes first; ties are broken by edit distance to q.
func (s *Session) SuggestMany(q string) []string {
	if !viper.GetBool(key.SearchSuggestions) {
		return []string{}
	}

	q = sanitize(q)

	s.mu.RLock()
	matches := lo.Filter(lo.Values(s.records), func(r *record, _ int) bool {
		return fuzzy.Match(q, r.Query)
	})
	s.mu.RUnlock()

	slices.SortFunc(matches, func(a, b *record) int {
		if a.Rank != b.Rank {
			return b.Rank - a.Rank
		}
		if da, db := levenshtein.Distance(q, a.Query), levenshtein.Distance(q, b.Query); da != db {
			return da - db
		}
		return strings.Compare(a.Query, b.Query)
	})

	return lo.Map(matches, func(r *record, _ int) string {
		return r.Query
	})
}

// Suggest returns the best suggestion for q that extends it, if any.
func (s *Session) Suggest(q string) mo.Option[string] {
	normalized := sanitize(q)
	for _, candidate := range s.SuggestMany(q) {
		if candidate != normalized && strings.HasPrefix(candidate, normalized) {
			return mo.Some(candidate)
		}
	}
	return mo.None[string]()
}

var global = NewSession()

// Global returns the process-wide session.
func Global() *Session {
	return global
}

// Remember records q in the process-wide session.
func Remember(q string, weight int) {
	global.Remember(q, weight)
}

// SuggestMany queries the process-wide session.
func SuggestMany(q string) []string {
	return global.SuggestMany(q)
}

// Suggest queries the process-wide session.
func Suggest(q string) mo.Option[string] {
	return global.Suggest(q)
}

func sanitize(q string) string {
	return strings.TrimSpace(strings.ToLower(q))
}
