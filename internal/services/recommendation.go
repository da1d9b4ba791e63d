package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/vistream/discovery/internal/config"
	"github.com/vistream/discovery/pkg/models"
)

// Fixed context lookup tables. Contextual recommendations always draw from
// these genre sets.
var timeOfDayGenres = map[models.TimeOfDay][]string{
	models.TimeMorning:   {"Comedy", "Romance", "Pop"},
	models.TimeAfternoon: {"Action", "Adventure", "Rock"},
	models.TimeEvening:   {"Drama", "Thriller", "Jazz"},
	models.TimeNight:     {"Horror", "Mystery", "Electronic"},
}

var deviceGenres = map[models.DeviceType][]string{
	models.DeviceMobile:  {"Comedy", "Pop", "Hip-Hop"},
	models.DeviceTablet:  {"Action", "Drama", "Rock"},
	models.DeviceDesktop: {"Sci-Fi", "Thriller", "Classical"},
	models.DeviceTV:      {"Action", "Adventure", "Horror"},
}

// RecommendationService generates scored, reasoned candidates from three
// independent strategies and blends them. Strategies degrade to empty output
// when their required context is absent; none of them ever fails the call.
type RecommendationService struct {
	search   *SearchService
	trending *TrendingService
	metrics  *Metrics
	config   *config.DiscoveryConfig
	logger   *logrus.Logger
}

func NewRecommendationService(
	search *SearchService,
	trending *TrendingService,
	cfg *config.DiscoveryConfig,
	metrics *Metrics,
	logger *logrus.Logger,
) *RecommendationService {
	return &RecommendationService{
		search:   search,
		trending: trending,
		metrics:  metrics,
		config:   cfg,
		logger:   logger,
	}
}

// GetRecommendations runs all strategies concurrently, concatenates their
// output in fixed order (collaborative, similarity, contextual), dedupes by
// id keeping the first occurrence, sorts by confidence descending and caps
// the batch.
func (s *RecommendationService) GetRecommendations(ctx context.Context, rc models.RecommendationContext) []models.Recommendation {
	if s.metrics != nil {
		s.metrics.Recommendations.WithLabelValues("widget").Inc()
	}
	return s.recommend(ctx, rc)
}

// recommend is the strategy fan-out shared by the widget and feed surfaces.
// It carries no instrumentation; each surface counts itself.
func (s *RecommendationService) recommend(ctx context.Context, rc models.RecommendationContext) []models.Recommendation {
	var collected [3][]models.Recommendation
	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		collected[0] = s.collaborative(ctx, rc)
	}()
	go func() {
		defer wg.Done()
		collected[1] = s.similarity(ctx, rc.CurrentContent)
	}()
	go func() {
		defer wg.Done()
		collected[2] = s.contextual(ctx, rc)
	}()
	wg.Wait()

	merged := append(append(collected[0], collected[1]...), collected[2]...)
	return blend(merged, s.config.Recommendation.MaxResults)
}

// GetPersonalizedFeed is the coarser aggregation for a full feed: it
// re-invokes the primitives per source family, scales each family's
// confidence by its weight, then blends.
func (s *RecommendationService) GetPersonalizedFeed(ctx context.Context, rc models.RecommendationContext) []models.Recommendation {
	if s.metrics != nil {
		s.metrics.Recommendations.WithLabelValues("feed").Inc()
	}

	feedCfg := s.config.Feed

	var collected [3][]models.Recommendation
	var wg sync.WaitGroup

	wg.Add(3)
	go func() {
		defer wg.Done()
		collected[0] = scaleConfidence(s.trendingRecommendations(ctx), feedCfg.TrendingWeight)
	}()
	go func() {
		defer wg.Done()
		collected[1] = scaleConfidence(s.recommend(ctx, rc), feedCfg.PersonalizedWeight)
	}()
	go func() {
		defer wg.Done()
		collected[2] = scaleConfidence(s.recentlyWatchedRecommendations(ctx, rc), feedCfg.RecentlyWatchedWeight)
	}()
	wg.Wait()

	merged := append(append(collected[0], collected[1]...), collected[2]...)
	return blend(merged, feedCfg.MaxResults)
}

// collaborative recommends from the most frequent genres in the viewing
// history. Requires a non-empty history.
func (s *RecommendationService) collaborative(ctx context.Context, rc models.RecommendationContext) []models.Recommendation {
	if len(rc.ViewingHistory) == 0 {
		return nil
	}

	topGenres := topGenresFromHistory(rc.ViewingHistory, 3)
	if len(topGenres) == 0 {
		return nil
	}

	results := s.search.query(ctx, models.SearchFilters{
		Genres: topGenres,
		Limit:  s.config.Recommendation.CollaborativeFetchLimit,
	})

	reason := fmt.Sprintf("Because you watched %s content", strings.Join(topGenres, ", "))
	confidence := s.config.Recommendation.CollaborativeConfidence

	recs := make([]models.Recommendation, 0, len(results))
	for _, r := range results {
		rec := recommendationFromItem(r.CatalogItem, reason, confidence)
		rec.CollaborativeScore = &confidence
		recs = append(recs, rec)
	}
	return recs
}

// similarity recommends items sharing the reference item's genre and tags,
// excluding the reference itself. Requires a current-content reference.
func (s *RecommendationService) similarity(ctx context.Context, ref *models.ContentRef) []models.Recommendation {
	if ref == nil {
		return nil
	}

	filters := models.SearchFilters{
		Tags:  ref.Tags,
		Limit: s.config.Recommendation.SimilarityFetchLimit,
	}
	if ref.Genre != "" {
		filters.Genres = []string{ref.Genre}
	}

	results := s.search.query(ctx, filters)

	reason := fmt.Sprintf("Similar to %s", ref.ID)
	confidence := s.config.Recommendation.SimilarityConfidence

	recs := make([]models.Recommendation, 0, len(results))
	for _, r := range results {
		if r.ID == ref.ID {
			continue
		}
		rec := recommendationFromItem(r.CatalogItem, reason, confidence)
		rec.SimilarityScore = &confidence
		recs = append(recs, rec)
	}
	return recs
}

// contextual applies two independent, additive sub-rules: time-of-day genres
// and device genres. Either absent field simply skips its rule.
func (s *RecommendationService) contextual(ctx context.Context, rc models.RecommendationContext) []models.Recommendation {
	var recs []models.Recommendation

	if genres, ok := timeOfDayGenres[rc.TimeOfDay]; ok {
		results := s.search.query(ctx, models.SearchFilters{
			Genres: genres,
			Limit:  s.config.Recommendation.TimeContextFetchLimit,
		})
		reason := fmt.Sprintf("Perfect for %s", rc.TimeOfDay)
		confidence := s.config.Recommendation.TimeContextConfidence
		for _, r := range results {
			rec := recommendationFromItem(r.CatalogItem, reason, confidence)
			rec.ContextualScore = &confidence
			recs = append(recs, rec)
		}
	}

	if genres, ok := deviceGenres[rc.Device]; ok {
		results := s.search.query(ctx, models.SearchFilters{
			Genres: genres,
			Limit:  s.config.Recommendation.DeviceContextFetchLimit,
		})
		reason := fmt.Sprintf("Great for %s", rc.Device)
		confidence := s.config.Recommendation.DeviceContextConfidence
		for _, r := range results {
			rec := recommendationFromItem(r.CatalogItem, reason, confidence)
			rec.ContextualScore = &confidence
			recs = append(recs, rec)
		}
	}

	return recs
}

// trendingRecommendations derives feed candidates from the current trending
// queries, rerunning each through the search pipeline. Confidence is the
// item's static popularity damped by the query's normalized trend score, so
// items surfaced by a fading query rank below those from the current peak.
func (s *RecommendationService) trendingRecommendations(ctx context.Context) []models.Recommendation {
	if s.trending == nil {
		return nil
	}

	entries := s.trending.GetTrendingSearches(s.config.Feed.TrendingQueryCount)

	var recs []models.Recommendation
	for _, entry := range entries {
		results := s.search.query(ctx, models.SearchFilters{
			Query: entry.Query,
			Limit: s.config.Feed.TrendingFetchLimit,
		})
		reason := fmt.Sprintf("Trending: %s", entry.Query)
		for _, r := range results {
			recs = append(recs, recommendationFromItem(r.CatalogItem, reason, entry.TrendScore*r.PopularityScore))
		}
	}
	return recs
}

// recentlyWatchedRecommendations re-invokes the similarity primitive for the
// most recent history entries, fetched concurrently since they are read-only
// catalog lookups.
func (s *RecommendationService) recentlyWatchedRecommendations(ctx context.Context, rc models.RecommendationContext) []models.Recommendation {
	seedCount := s.config.Feed.RecentSeedCount
	if seedCount > len(rc.ViewingHistory) {
		seedCount = len(rc.ViewingHistory)
	}
	if seedCount == 0 {
		return nil
	}

	collected := make([][]models.Recommendation, seedCount)
	var wg sync.WaitGroup
	for i := 0; i < seedCount; i++ {
		entry := rc.ViewingHistory[i]
		wg.Add(1)
		go func(slot int, entry models.HistoryEntry) {
			defer wg.Done()
			collected[slot] = s.similarity(ctx, &models.ContentRef{
				ID:    entry.ID,
				Type:  entry.Type,
				Genre: entry.Genre,
			})
		}(i, entry)
	}
	wg.Wait()

	var recs []models.Recommendation
	for _, batch := range collected {
		recs = append(recs, batch...)
	}
	return recs
}

// blend dedupes by id keeping the first occurrence, sorts by confidence
// descending (stable, so earlier strategies win among equals) and truncates.
func blend(recs []models.Recommendation, limit int) []models.Recommendation {
	seen := make(map[string]struct{}, len(recs))
	unique := make([]models.Recommendation, 0, len(recs))
	for _, rec := range recs {
		if _, dup := seen[rec.ID]; dup {
			continue
		}
		seen[rec.ID] = struct{}{}
		unique = append(unique, rec)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Confidence > unique[j].Confidence
	})

	if limit > 0 && len(unique) > limit {
		unique = unique[:limit]
	}
	return unique
}

// scaleConfidence returns a copy with every confidence multiplied by weight.
func scaleConfidence(recs []models.Recommendation, weight float64) []models.Recommendation {
	out := make([]models.Recommendation, len(recs))
	for i, rec := range recs {
		rec.Confidence *= weight
		out[i] = rec
	}
	return out
}

// topGenresFromHistory counts genre occurrences and returns the n most
// frequent, ties broken by first-encountered order.
func topGenresFromHistory(history []models.HistoryEntry, n int) []string {
	counts := make(map[string]int)
	var order []string
	for _, entry := range history {
		if entry.Genre == "" {
			continue
		}
		if counts[entry.Genre] == 0 {
			order = append(order, entry.Genre)
		}
		counts[entry.Genre]++
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > n {
		order = order[:n]
	}
	return order
}

func recommendationFromItem(item models.CatalogItem, reason string, confidence float64) models.Recommendation {
	return models.Recommendation{
		ID:          item.ID,
		Title:       item.Title,
		Type:        item.Type,
		Genre:       item.Genre,
		Reason:      reason,
		Confidence:  confidence,
		Thumbnail:   item.Thumbnail,
		Description: item.Description,
	}
}
