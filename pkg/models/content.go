package models

// ContentType discriminates catalog items. Filter, score and sort logic is
// type-agnostic; only the catalog fetch step branches on it.
type ContentType string

const (
	ContentTypeMovie ContentType = "movie"
	ContentTypeMusic ContentType = "music"
	ContentTypeAll   ContentType = "all"
)

// CatalogItem is a normalized record from the external catalog. The engine
// treats it as read-only. Numeric metadata is optional; an absent field never
// disqualifies an item from a range filter.
type CatalogItem struct {
	ID              string      `json:"id" db:"id"`
	Title           string      `json:"title" db:"title"`
	Description     string      `json:"description" db:"description"`
	Type            ContentType `json:"type" db:"type"`
	Genre           string      `json:"genre" db:"genre"`
	Language        string      `json:"language" db:"language"`
	ReleaseYear     *int        `json:"release_year,omitempty" db:"release_year"`
	Duration        *float64    `json:"duration,omitempty" db:"duration"` // minutes
	Rating          *float64    `json:"rating,omitempty" db:"rating"`     // 0-10
	Actors          []string    `json:"actors,omitempty" db:"actors"`
	Tags            []string    `json:"tags,omitempty" db:"tags"`
	Thumbnail       string      `json:"thumbnail,omitempty" db:"thumbnail_url"`
	PopularityScore float64     `json:"popularity_score" db:"popularity_score"` // 0-1, static
}

// RangeFilter is an inclusive numeric range; a nil bound is unconstrained.
type RangeFilter struct {
	Min *float64 `json:"min,omitempty"`
	Max *float64 `json:"max,omitempty"`
}

// Contains reports whether v satisfies both bounds.
func (r *RangeFilter) Contains(v float64) bool {
	if r == nil {
		return true
	}
	if r.Min != nil && v < *r.Min {
		return false
	}
	if r.Max != nil && v > *r.Max {
		return false
	}
	return true
}

// SearchFilters is the immutable input to one search call. Multi-value
// dimensions use any-match semantics; dimensions combine conjunctively.
type SearchFilters struct {
	Query     string       `json:"query,omitempty"`
	Genres    []string     `json:"genres,omitempty"`
	Languages []string     `json:"languages,omitempty"`
	Actors    []string     `json:"actors,omitempty"`
	Tags      []string     `json:"tags,omitempty"`
	Year      *RangeFilter `json:"year,omitempty"`
	Duration  *RangeFilter `json:"duration,omitempty"`
	Rating    *RangeFilter `json:"rating,omitempty"`
	Type      ContentType  `json:"type,omitempty" binding:"omitempty,oneof=movie music all"`
	SortBy    string       `json:"sort_by,omitempty"`
	SortOrder string       `json:"sort_order,omitempty" binding:"omitempty,oneof=asc desc"`
	Offset    int          `json:"offset,omitempty" binding:"omitempty,min=0"`
	Limit     int          `json:"limit,omitempty" binding:"omitempty,min=1,max=100"`
}

// ScoredResult is a catalog item plus derived scores. Ephemeral: recomputed on
// every call, never persisted. RelevanceScore is nil when no query was given.
type ScoredResult struct {
	CatalogItem
	RelevanceScore *float64 `json:"relevance_score,omitempty"`
}

// SearchSuggestion is an autocomplete candidate surfaced by the trending
// tracker. Source is one of "trending", "title" or "genre".
type SearchSuggestion struct {
	Text       string  `json:"text"`
	Source     string  `json:"source"`
	Popularity float64 `json:"popularity"`
}
