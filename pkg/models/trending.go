package models

// TrendDirection labels a trending entry's movement. The tracker only ever
// produces TrendUp; the other states exist for downstream consumers that
// compare windows themselves.
type TrendDirection string

const (
	TrendUp     TrendDirection = "up"
	TrendDown   TrendDirection = "down"
	TrendStable TrendDirection = "stable"
)

// TrendingEntry is a counted, persisted record of a previously issued search
// query. The query text is the case-sensitive key as typed.
type TrendingEntry struct {
	Query    string         `json:"query"`
	Count    int            `json:"count"`
	Trend    TrendDirection `json:"trend"`
	Category string         `json:"category"`

	// TrendScore is the recency-weighted count normalized to the current
	// peak, in (0, 1]. Set on trending reads, never persisted.
	TrendScore float64 `json:"trend_score,omitempty"`
}
