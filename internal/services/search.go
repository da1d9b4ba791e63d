package services

import (
	"context"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/text/unicode/norm"

	"github.com/vistream/discovery/internal/catalog"
	"github.com/vistream/discovery/internal/config"
	"github.com/vistream/discovery/pkg/models"
)

// Relevance points per query token by the field it matched.
const (
	titleMatchScore       = 3.0
	descriptionMatchScore = 2.0
	metadataMatchScore    = 1.0
)

// SearchService runs the discovery pipeline: candidate pool by content type,
// query matching, structured filters, relevance scoring, sort and pagination.
type SearchService struct {
	catalog  catalog.Catalog
	trending *TrendingService
	metrics  *Metrics
	config   *config.DiscoveryConfig
	logger   *logrus.Logger
}

func NewSearchService(
	cat catalog.Catalog,
	trending *TrendingService,
	cfg *config.DiscoveryConfig,
	metrics *Metrics,
	logger *logrus.Logger,
) *SearchService {
	return &SearchService{
		catalog:  cat,
		trending: trending,
		metrics:  metrics,
		config:   cfg,
		logger:   logger,
	}
}

// Search runs one search call and records the free-text query, if any, with
// the trending tracker. Search is fail-soft: a catalog failure is logged and
// yields an empty result set, never an error to the caller.
func (s *SearchService) Search(ctx context.Context, filters models.SearchFilters) []models.ScoredResult {
	if s.metrics != nil {
		s.metrics.Searches.Inc()
	}

	results := s.query(ctx, filters)

	if strings.TrimSpace(filters.Query) != "" && s.trending != nil {
		s.trending.RecordQuery(ctx, filters.Query)
	}

	return results
}

// query is the pipeline without the trending side effect. The recommendation
// strategies go through here so genre-scoped lookups never pollute trending
// counters.
func (s *SearchService) query(ctx context.Context, filters models.SearchFilters) []models.ScoredResult {
	candidates, err := s.catalog.FetchByType(ctx, filters.Type)
	if err != nil {
		s.logger.WithError(err).WithField("type", filters.Type).Error("Catalog unavailable, returning empty results")
		return []models.ScoredResult{}
	}

	tokens := tokenizeQuery(filters.Query)

	var surviving []models.CatalogItem
	for _, item := range candidates {
		if len(tokens) > 0 && !matchesQuery(item, tokens) {
			continue
		}
		if !matchesFilters(item, filters) {
			continue
		}
		surviving = append(surviving, item)
	}

	results := scoreResults(surviving, tokens)
	sortResults(results, filters.SortBy, filters.SortOrder)
	return s.paginate(results, filters.Offset, filters.Limit)
}

// tokenizeQuery splits the query on whitespace after case folding. An empty
// query produces no tokens.
func tokenizeQuery(query string) []string {
	return strings.Fields(normalizeText(query))
}

// normalizeText case-folds and NFKC-normalizes user and catalog text so the
// substring tests match across composed forms and width variants.
func normalizeText(text string) string {
	return strings.ToLower(norm.NFKC.String(text))
}

// searchableText concatenates the fields the query test runs against.
func searchableText(item models.CatalogItem) string {
	parts := make([]string, 0, 2+len(item.Actors)+len(item.Tags))
	parts = append(parts, item.Title, item.Description)
	parts = append(parts, item.Actors...)
	parts = append(parts, item.Tags...)
	return normalizeText(strings.Join(parts, " "))
}

// matchesQuery keeps a candidate if at least one token appears in its
// searchable text.
func matchesQuery(item models.CatalogItem, tokens []string) bool {
	text := searchableText(item)
	for _, token := range tokens {
		if strings.Contains(text, token) {
			return true
		}
	}
	return false
}

// matchesFilters applies the structured dimensions conjunctively: AND across
// dimensions, OR within a multi-value one. Numeric ranges are permissive on
// missing fields.
func matchesFilters(item models.CatalogItem, filters models.SearchFilters) bool {
	if len(filters.Genres) > 0 && !containsString(filters.Genres, item.Genre) {
		return false
	}
	if len(filters.Languages) > 0 && !containsString(filters.Languages, item.Language) {
		return false
	}
	if len(filters.Actors) > 0 && !anySubstringMatch(filters.Actors, item.Actors) {
		return false
	}
	if len(filters.Tags) > 0 && !anySubstringMatch(filters.Tags, item.Tags) {
		return false
	}
	if item.ReleaseYear != nil && !filters.Year.Contains(float64(*item.ReleaseYear)) {
		return false
	}
	if item.Duration != nil && !filters.Duration.Contains(*item.Duration) {
		return false
	}
	if item.Rating != nil && !filters.Rating.Contains(*item.Rating) {
		return false
	}
	return true
}

func containsString(values []string, target string) bool {
	for _, v := range values {
		if v == target {
			return true
		}
	}
	return false
}

// anySubstringMatch reports whether any wanted value is a case-insensitive
// substring of any candidate value.
func anySubstringMatch(wanted, candidates []string) bool {
	for _, w := range wanted {
		lw := strings.ToLower(w)
		for _, c := range candidates {
			if strings.Contains(strings.ToLower(c), lw) {
				return true
			}
		}
	}
	return false
}

// scoreResults computes per-item relevance from token matches, normalized by
// token count. Without a query, items pass through unscored. With a query, a
// zero score excludes the item.
func scoreResults(items []models.CatalogItem, tokens []string) []models.ScoredResult {
	results := make([]models.ScoredResult, 0, len(items))

	if len(tokens) == 0 {
		for _, item := range items {
			results = append(results, models.ScoredResult{CatalogItem: item})
		}
		return results
	}

	for _, item := range items {
		title := normalizeText(item.Title)
		description := normalizeText(item.Description)
		metadata := normalizeText(strings.Join(item.Actors, " ") + " " + strings.Join(item.Tags, " "))

		total := 0.0
		for _, token := range tokens {
			switch {
			case strings.Contains(title, token):
				total += titleMatchScore
			case strings.Contains(description, token):
				total += descriptionMatchScore
			case strings.Contains(metadata, token):
				total += metadataMatchScore
			}
		}

		score := total / float64(len(tokens))
		if score == 0 {
			continue
		}
		results = append(results, models.ScoredResult{CatalogItem: item, RelevanceScore: &score})
	}
	return results
}

// sortResults orders by the resolved sort key, descending unless asked for
// ascending. Unknown keys fall back to relevance; missing numeric fields
// compare as 0. Ties break on ascending ID so orderings reproduce across runs.
func sortResults(results []models.ScoredResult, sortBy, sortOrder string) {
	ascending := sortOrder == "asc"

	less := func(i, j int) bool {
		a, b := results[i], results[j]

		if sortBy == "title" {
			at, bt := strings.ToLower(a.Title), strings.ToLower(b.Title)
			if at != bt {
				if ascending {
					return at < bt
				}
				return at > bt
			}
			return a.ID < b.ID
		}

		av, bv := sortKeyValue(a, sortBy), sortKeyValue(b, sortBy)
		if av != bv {
			if ascending {
				return av < bv
			}
			return av > bv
		}
		return a.ID < b.ID
	}

	sort.Slice(results, less)
}

func sortKeyValue(r models.ScoredResult, sortBy string) float64 {
	switch sortBy {
	case "date":
		if r.ReleaseYear != nil {
			return float64(*r.ReleaseYear)
		}
	case "rating":
		if r.Rating != nil {
			return *r.Rating
		}
	case "popularity":
		return r.PopularityScore
	default: // relevance and unrecognized keys
		if r.RelevanceScore != nil {
			return *r.RelevanceScore
		}
	}
	return 0
}

// paginate applies offset then limit windowing. An offset past the end yields
// an empty page.
func (s *SearchService) paginate(results []models.ScoredResult, offset, limit int) []models.ScoredResult {
	if limit <= 0 {
		limit = s.config.Search.DefaultLimit
	}
	if offset < 0 {
		offset = 0
	}
	if offset >= len(results) {
		return []models.ScoredResult{}
	}
	end := offset + limit
	if end > len(results) {
		end = len(results)
	}
	return results[offset:end]
}
