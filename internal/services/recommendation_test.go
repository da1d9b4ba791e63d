package services

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vistream/discovery/internal/catalog"
	"github.com/vistream/discovery/internal/config"
	"github.com/vistream/discovery/internal/storage"
	"github.com/vistream/discovery/pkg/models"
)

func newTestRecommendation(t *testing.T) (*RecommendationService, *TrendingService) {
	t.Helper()
	return newRecommendationServices(t, config.Defaults(), nil)
}

func newRecommendationServices(t *testing.T, cfg *config.Config, metrics *Metrics) (*RecommendationService, *TrendingService) {
	t.Helper()

	cat := catalog.NewMemoryCatalog(catalog.SampleItems())
	logger := testLogger()

	trending := NewTrendingService(storage.NewMemoryStore(), cat, &cfg.Discovery.Trending, metrics, logger)
	search := NewSearchService(cat, trending, &cfg.Discovery, metrics, logger)
	return NewRecommendationService(search, trending, &cfg.Discovery, metrics, logger), trending
}

func actionHistory() []models.HistoryEntry {
	return []models.HistoryEntry{
		{ID: "the-dark-knight", Type: models.ContentTypeMovie, Genre: "Action", Completed: true, Timestamp: time.Now()},
		{ID: "mad-max-fury-road", Type: models.ContentTypeMovie, Genre: "Action", Completed: true, Timestamp: time.Now()},
		{ID: "inception", Type: models.ContentTypeMovie, Genre: "Sci-Fi", Completed: false, Timestamp: time.Now()},
	}
}

func TestRecommendations_Collaborative(t *testing.T) {
	svc, _ := newTestRecommendation(t)
	ctx := context.Background()

	recs := svc.GetRecommendations(ctx, models.RecommendationContext{
		ViewingHistory: actionHistory(),
	})
	require.NotEmpty(t, recs)

	for _, rec := range recs {
		require.NotNil(t, rec.CollaborativeScore)
		assert.InDelta(t, 0.8, *rec.CollaborativeScore, 1e-9)
		assert.InDelta(t, 0.8, rec.Confidence, 1e-9)
		assert.Contains(t, []string{"Action", "Sci-Fi"}, rec.Genre)

		// Genres appear in frequency order: two Action views, one Sci-Fi.
		assert.Equal(t, "Because you watched Action, Sci-Fi content", rec.Reason)
	}
}

func TestRecommendations_Similarity(t *testing.T) {
	svc, _ := newTestRecommendation(t)
	ctx := context.Background()

	recs := svc.GetRecommendations(ctx, models.RecommendationContext{
		CurrentContent: &models.ContentRef{
			ID:    "the-dark-knight",
			Type:  models.ContentTypeMovie,
			Genre: "Action",
		},
	})
	require.NotEmpty(t, recs)

	for _, rec := range recs {
		assert.NotEqual(t, "the-dark-knight", rec.ID, "reference item must be excluded")
		require.NotNil(t, rec.SimilarityScore)
		assert.InDelta(t, 0.7, *rec.SimilarityScore, 1e-9)
		assert.Equal(t, "Similar to the-dark-knight", rec.Reason)
		assert.Equal(t, "Action", rec.Genre)
	}
}

func TestRecommendations_Contextual(t *testing.T) {
	svc, _ := newTestRecommendation(t)
	ctx := context.Background()

	t.Run("time of day rule", func(t *testing.T) {
		recs := svc.GetRecommendations(ctx, models.RecommendationContext{
			TimeOfDay: models.TimeMorning,
		})
		require.NotEmpty(t, recs)
		for _, rec := range recs {
			require.NotNil(t, rec.ContextualScore)
			assert.InDelta(t, 0.6, rec.Confidence, 1e-9)
			assert.Contains(t, []string{"Comedy", "Romance", "Pop"}, rec.Genre)
			assert.Equal(t, "Perfect for morning", rec.Reason)
		}
	})

	t.Run("device rule", func(t *testing.T) {
		recs := svc.GetRecommendations(ctx, models.RecommendationContext{
			Device: models.DeviceTV,
		})
		require.NotEmpty(t, recs)
		for _, rec := range recs {
			assert.InDelta(t, 0.5, rec.Confidence, 1e-9)
			assert.Contains(t, []string{"Action", "Adventure", "Horror"}, rec.Genre)
			assert.Equal(t, "Great for tv", rec.Reason)
		}
	})

	t.Run("both rules are additive", func(t *testing.T) {
		recs := svc.GetRecommendations(ctx, models.RecommendationContext{
			TimeOfDay: models.TimeEvening,
			Device:    models.DeviceDesktop,
		})
		reasons := make(map[string]bool)
		for _, rec := range recs {
			reasons[rec.Reason] = true
		}
		assert.True(t, reasons["Perfect for evening"])
		assert.True(t, reasons["Great for desktop"])
	})
}

func TestRecommendations_EmptyContext(t *testing.T) {
	svc, _ := newTestRecommendation(t)

	recs := svc.GetRecommendations(context.Background(), models.RecommendationContext{})
	assert.Empty(t, recs)
}

func TestRecommendations_Blend(t *testing.T) {
	svc, _ := newTestRecommendation(t)
	ctx := context.Background()

	rc := models.RecommendationContext{
		ViewingHistory: actionHistory(),
		CurrentContent: &models.ContentRef{
			ID:    "mad-max-fury-road",
			Type:  models.ContentTypeMovie,
			Genre: "Action",
		},
		TimeOfDay: models.TimeAfternoon,
	}
	recs := svc.GetRecommendations(ctx, rc)
	require.NotEmpty(t, recs)

	t.Run("unique ids, first strategy wins", func(t *testing.T) {
		seen := make(map[string]bool)
		for _, rec := range recs {
			assert.False(t, seen[rec.ID], "duplicate id %s", rec.ID)
			seen[rec.ID] = true
		}

		// The Dark Knight surfaces from collaborative and similarity;
		// the collaborative copy must survive the dedupe.
		for _, rec := range recs {
			if rec.ID == "the-dark-knight" {
				require.NotNil(t, rec.CollaborativeScore)
				assert.Nil(t, rec.SimilarityScore)
			}
		}
	})

	t.Run("confidence descending", func(t *testing.T) {
		for i := 1; i < len(recs); i++ {
			assert.GreaterOrEqual(t, recs[i-1].Confidence, recs[i].Confidence)
		}
	})

	t.Run("capped at max results", func(t *testing.T) {
		assert.LessOrEqual(t, len(recs), 20)
	})
}

func TestPersonalizedFeed(t *testing.T) {
	svc, trending := newTestRecommendation(t)
	ctx := context.Background()

	t.Run("empty context yields empty feed", func(t *testing.T) {
		feed := svc.GetPersonalizedFeed(ctx, models.RecommendationContext{})
		assert.Empty(t, feed)
	})

	t.Run("personalized family confidence is weighted", func(t *testing.T) {
		feed := svc.GetPersonalizedFeed(ctx, models.RecommendationContext{
			ViewingHistory: actionHistory()[:2],
		})
		require.Len(t, feed, 2)

		// Both items surface first through the personalized family,
		// collaborative confidence 0.8 scaled by weight 0.5. The
		// recently watched copies lose the dedupe.
		for _, rec := range feed {
			assert.InDelta(t, 0.4, rec.Confidence, 1e-9)
		}
	})

	t.Run("trending family follows recorded queries", func(t *testing.T) {
		trending.RecordQuery(ctx, "inception")

		feed := svc.GetPersonalizedFeed(ctx, models.RecommendationContext{})
		require.NotEmpty(t, feed)
		assert.Equal(t, "Trending: inception", feed[0].Reason)
		assert.InDelta(t, 0.93*0.3, feed[0].Confidence, 1e-9)
	})

	t.Run("capped at feed max results", func(t *testing.T) {
		feed := svc.GetPersonalizedFeed(ctx, models.RecommendationContext{
			ViewingHistory: actionHistory(),
			TimeOfDay:      models.TimeNight,
			Device:         models.DeviceMobile,
		})
		assert.LessOrEqual(t, len(feed), 30)
	})
}

func TestTrendingRecommendations_FetchLimit(t *testing.T) {
	cfg := config.Defaults()
	cfg.Discovery.Feed.TrendingFetchLimit = 2
	svc, trending := newRecommendationServices(t, cfg, nil)
	ctx := context.Background()

	// "the" matches far more than two catalog items.
	trending.RecordQuery(ctx, "the")

	recs := svc.trendingRecommendations(ctx)
	require.Len(t, recs, 2)
	for _, rec := range recs {
		assert.Equal(t, "Trending: the", rec.Reason)
	}
}

func TestRecommendations_SurfaceMetrics(t *testing.T) {
	metrics := NewMetrics(prometheus.NewRegistry())
	svc, _ := newRecommendationServices(t, config.Defaults(), metrics)
	ctx := context.Background()

	rc := models.RecommendationContext{ViewingHistory: actionHistory()}

	svc.GetPersonalizedFeed(ctx, rc)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Recommendations.WithLabelValues("feed")))
	assert.Zero(t, testutil.ToFloat64(metrics.Recommendations.WithLabelValues("widget")),
		"a feed request must not count against the widget surface")

	svc.GetRecommendations(ctx, rc)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Recommendations.WithLabelValues("widget")))
}

func TestTopGenresFromHistory(t *testing.T) {
	history := []models.HistoryEntry{
		{Genre: "Drama"},
		{Genre: "Action"},
		{Genre: "Action"},
		{Genre: "Jazz"},
		{Genre: "Jazz"},
		{Genre: "Jazz"},
		{Genre: "Horror"},
		{Genre: ""},
	}

	top := topGenresFromHistory(history, 3)
	assert.Equal(t, []string{"Jazz", "Action", "Drama"}, top)
}

func TestBlend_FirstOccurrenceWins(t *testing.T) {
	a, b := 0.9, 0.4
	recs := []models.Recommendation{
		{ID: "x", Confidence: 0.5, SimilarityScore: &a},
		{ID: "x", Confidence: 0.9, CollaborativeScore: &b},
		{ID: "y", Confidence: 0.7},
	}

	out := blend(recs, 10)
	require.Len(t, out, 2)
	assert.Equal(t, "y", out[0].ID)
	assert.Equal(t, "x", out[1].ID)
	assert.NotNil(t, out[1].SimilarityScore)
	assert.Nil(t, out[1].CollaborativeScore)
}
