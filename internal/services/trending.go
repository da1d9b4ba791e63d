package services

import (
	"context"
	"encoding/json"
	"math"
	"sort"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/gonum/floats"

	"github.com/vistream/discovery/internal/catalog"
	"github.com/vistream/discovery/internal/config"
	"github.com/vistream/discovery/internal/storage"
	"github.com/vistream/discovery/pkg/models"
)

const (
	trendingStateKey = "discovery:trending_searches"
	historyStateKey  = "discovery:search_history"
)

// genreVocabulary is the static genre list matched by autocomplete and used
// to categorize trending queries.
var genreVocabulary = []string{
	"Action", "Adventure", "Comedy", "Drama", "Horror", "Mystery",
	"Romance", "Sci-Fi", "Thriller",
	"Classical", "Electronic", "Hip-Hop", "Jazz", "Pop", "Rock",
}

// TrendingService tracks issued search queries and surfaces autocomplete
// suggestions. Trending entries and the raw query history are the engine's
// only mutable shared state: loaded once at construction, mutated under a
// single lock, persisted synchronously on every mutation.
type TrendingService struct {
	store   storage.Store
	catalog catalog.Catalog
	config  *config.TrendingConfig
	logger  *logrus.Logger
	metrics *Metrics

	mu       sync.Mutex
	trending []models.TrendingEntry
	history  []string
}

func NewTrendingService(
	store storage.Store,
	cat catalog.Catalog,
	cfg *config.TrendingConfig,
	metrics *Metrics,
	logger *logrus.Logger,
) *TrendingService {
	s := &TrendingService{
		store:   store,
		catalog: cat,
		config:  cfg,
		logger:  logger,
		metrics: metrics,
	}
	s.load(context.Background())
	return s
}

// load restores persisted state. Missing or unparseable values mean empty
// state, never an error.
func (s *TrendingService) load(ctx context.Context) {
	if raw, ok, err := s.store.GetItem(ctx, trendingStateKey); err != nil {
		s.logger.WithError(err).Warn("Failed to read trending state, starting empty")
	} else if ok {
		if err := json.Unmarshal([]byte(raw), &s.trending); err != nil {
			s.logger.WithError(err).Warn("Malformed trending state, starting empty")
			s.trending = nil
		}
	}

	if raw, ok, err := s.store.GetItem(ctx, historyStateKey); err != nil {
		s.logger.WithError(err).Warn("Failed to read search history, starting empty")
	} else if ok {
		if err := json.Unmarshal([]byte(raw), &s.history); err != nil {
			s.logger.WithError(err).Warn("Malformed search history, starting empty")
			s.history = nil
		}
	}
}

// RecordQuery registers one issued search query: history push (most recent
// first), trending find-or-create and increment, re-sort, cap, persist.
func (s *TrendingService) RecordQuery(ctx context.Context, query string) {
	query = strings.TrimSpace(query)
	if query == "" {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = append([]string{query}, s.history...)
	if len(s.history) > s.config.MaxHistory {
		s.history = s.history[:s.config.MaxHistory]
	}

	idx := -1
	for i := range s.trending {
		if s.trending[i].Query == query {
			idx = i
			break
		}
	}
	if idx >= 0 {
		s.trending[idx].Count++
		s.trending[idx].Trend = models.TrendUp
	} else {
		s.trending = append(s.trending, models.TrendingEntry{
			Query:    query,
			Count:    1,
			Trend:    models.TrendUp,
			Category: categorizeQuery(query),
		})
	}

	sort.SliceStable(s.trending, func(i, j int) bool {
		return s.trending[i].Count > s.trending[j].Count
	})
	if len(s.trending) > s.config.MaxEntries {
		s.trending = s.trending[:s.config.MaxEntries]
	}

	s.persistLocked(ctx)
}

// GetPopularSearches returns trending entries by raw cumulative count.
func (s *TrendingService) GetPopularSearches(limit int) []models.TrendingEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.TrendingEntry, len(s.trending))
	copy(out, s.trending)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// GetTrendingSearches returns trending entries in recency-weighted order:
// each entry's count is damped by how far back its query last appeared in the
// history, so a burst of recent queries outranks a stale high count. Each
// returned entry carries its score normalized to the current peak.
func (s *TrendingService) GetTrendingSearches(limit int) []models.TrendingEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.trending) == 0 {
		return nil
	}

	entries := make([]models.TrendingEntry, len(s.trending))
	copy(entries, s.trending)

	scores := make([]float64, len(entries))
	for i, entry := range entries {
		scores[i] = float64(entry.Count) * s.recencyWeightLocked(entry.Query)
	}
	if peak := floats.Max(scores); peak > 0 {
		floats.Scale(1/peak, scores)
	}
	for i := range entries {
		entries[i].TrendScore = scores[i]
	}

	order := make([]int, len(entries))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return scores[order[i]] > scores[order[j]]
	})

	out := make([]models.TrendingEntry, 0, len(entries))
	for _, i := range order {
		out = append(out, entries[i])
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// recencyWeightLocked decays by the query's most recent position in the
// history, most-recent-first. Queries absent from the retained history get
// the full-depth decay.
func (s *TrendingService) recencyWeightLocked(query string) float64 {
	if len(s.history) == 0 {
		return 1.0
	}
	pos := len(s.history)
	for i, q := range s.history {
		if q == query {
			pos = i
			break
		}
	}
	return math.Exp(-float64(pos) / float64(len(s.history)))
}

// GetSearchSuggestions merges trending, live title and genre matches for an
// autocomplete prefix. Queries under 2 characters yield nothing.
func (s *TrendingService) GetSearchSuggestions(ctx context.Context, query string, limit int) []models.SearchSuggestion {
	if utf8.RuneCountInString(strings.TrimSpace(query)) < 2 {
		return nil
	}
	if s.metrics != nil {
		s.metrics.Suggestions.Inc()
	}

	q := strings.ToLower(strings.TrimSpace(query))
	var suggestions []models.SearchSuggestion

	s.mu.Lock()
	matched := 0
	for _, entry := range s.trending {
		if matched >= s.config.SuggestTrending {
			break
		}
		if strings.Contains(strings.ToLower(entry.Query), q) {
			suggestions = append(suggestions, models.SearchSuggestion{
				Text:       entry.Query,
				Source:     "trending",
				Popularity: float64(entry.Count),
			})
			matched++
		}
	}
	s.mu.Unlock()

	// Live title matches; a catalog failure costs suggestions, not the call.
	items, err := s.catalog.FetchByType(ctx, models.ContentTypeAll)
	if err != nil {
		s.logger.WithError(err).Warn("Catalog unavailable for suggestions")
	} else {
		matched = 0
		for _, item := range items {
			if matched >= s.config.SuggestTitles {
				break
			}
			if strings.Contains(strings.ToLower(item.Title), q) {
				suggestions = append(suggestions, models.SearchSuggestion{
					Text:       item.Title,
					Source:     "title",
					Popularity: item.PopularityScore,
				})
				matched++
			}
		}
	}

	for _, genre := range genreVocabulary {
		if strings.Contains(strings.ToLower(genre), q) {
			suggestions = append(suggestions, models.SearchSuggestion{
				Text:       genre,
				Source:     "genre",
				Popularity: 0.5,
			})
		}
	}

	sort.SliceStable(suggestions, func(i, j int) bool {
		return suggestions[i].Popularity > suggestions[j].Popularity
	})
	if limit > 0 && len(suggestions) > limit {
		suggestions = suggestions[:limit]
	}
	return suggestions
}

// ClearSearchHistory drops the stored query history. Trending counters
// survive a clear.
func (s *TrendingService) ClearSearchHistory(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.history = nil
	if err := s.store.RemoveItem(ctx, historyStateKey); err != nil {
		s.logger.WithError(err).Warn("Failed to remove persisted search history")
	}
}

// History returns the retained raw queries, most recent first.
func (s *TrendingService) History() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

func (s *TrendingService) persistLocked(ctx context.Context) {
	if data, err := json.Marshal(s.trending); err == nil {
		if err := s.store.SetItem(ctx, trendingStateKey, string(data)); err != nil {
			s.logger.WithError(err).Warn("Failed to persist trending state")
		}
	}
	if data, err := json.Marshal(s.history); err == nil {
		if err := s.store.SetItem(ctx, historyStateKey, string(data)); err != nil {
			s.logger.WithError(err).Warn("Failed to persist search history")
		}
	}
}

func categorizeQuery(query string) string {
	for _, genre := range genreVocabulary {
		if strings.EqualFold(genre, query) {
			return "genre"
		}
	}
	return "general"
}
