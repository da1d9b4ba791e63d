package models

import "time"

// TimeOfDay buckets the viewing context for the contextual strategy.
type TimeOfDay string

const (
	TimeMorning   TimeOfDay = "morning"
	TimeAfternoon TimeOfDay = "afternoon"
	TimeEvening   TimeOfDay = "evening"
	TimeNight     TimeOfDay = "night"
)

// DeviceType identifies the device a recommendation is rendered on.
type DeviceType string

const (
	DeviceDesktop DeviceType = "desktop"
	DeviceMobile  DeviceType = "mobile"
	DeviceTablet  DeviceType = "tablet"
	DeviceTV      DeviceType = "tv"
)

// HistoryEntry is one item from the caller-supplied viewing history.
type HistoryEntry struct {
	ID        string      `json:"id"`
	Type      ContentType `json:"type"`
	Genre     string      `json:"genre"`
	Rating    *float64    `json:"rating,omitempty"`
	WatchTime float64     `json:"watch_time"` // minutes
	Completed bool        `json:"completed"`
	Timestamp time.Time   `json:"timestamp"`
}

// ContentRef identifies the item currently on screen, used as the similarity
// strategy's reference point.
type ContentRef struct {
	ID    string      `json:"id"`
	Type  ContentType `json:"type"`
	Genre string      `json:"genre"`
	Tags  []string    `json:"tags,omitempty"`
}

// UserPreferences carries aggregate taste signals supplied by the caller.
type UserPreferences struct {
	FavoriteGenres     []string `json:"favorite_genres,omitempty"`
	PreferredLanguages []string `json:"preferred_languages,omitempty"`
	AverageWatchTime   float64  `json:"average_watch_time,omitempty"`
	CompletionRate     float64  `json:"completion_rate,omitempty"`
}

// RecommendationContext is the input to one recommendation call. Every field
// is optional: a strategy whose required fields are absent yields an empty
// result set rather than an error.
type RecommendationContext struct {
	UserID         string           `json:"user_id,omitempty"`
	CurrentContent *ContentRef      `json:"current_content,omitempty"`
	TimeOfDay      TimeOfDay        `json:"time_of_day,omitempty" binding:"omitempty,timeofday"`
	Device         DeviceType       `json:"device,omitempty" binding:"omitempty,device"`
	ViewingHistory []HistoryEntry   `json:"viewing_history,omitempty"`
	Preferences    *UserPreferences `json:"preferences,omitempty"`
}

// Recommendation is a scored, reasoned candidate built fresh per call.
// Uniqueness within a batch is enforced by ID during blending.
type Recommendation struct {
	ID                 string      `json:"id"`
	Title              string      `json:"title"`
	Type               ContentType `json:"type"`
	Genre              string      `json:"genre"`
	Reason             string      `json:"reason"`
	Confidence         float64     `json:"confidence"`
	SimilarityScore    *float64    `json:"similarity_score,omitempty"`
	CollaborativeScore *float64    `json:"collaborative_score,omitempty"`
	ContextualScore    *float64    `json:"contextual_score,omitempty"`
	Thumbnail          string      `json:"thumbnail,omitempty"`
	Description        string      `json:"description,omitempty"`
}
