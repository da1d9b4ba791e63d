package app

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vistream/discovery/internal/config"
)

// TestHTTPAPI drives the full in-memory stack through the router. The app is
// built once: the services register on the default Prometheus registry.
func TestHTTPAPI(t *testing.T) {
	cfg := config.Defaults()
	application, err := New(cfg)
	require.NoError(t, err)
	router := application.Router()

	do := func(method, path, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		if body != "" {
			req.Header.Set("Content-Type", "application/json")
		}
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w
	}

	t.Run("health reports embedded backends", func(t *testing.T) {
		w := do(http.MethodGet, "/health", "")
		require.Equal(t, http.StatusOK, w.Code)

		var status struct {
			Status     string            `json:"status"`
			Components map[string]string `json:"components"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
		assert.Equal(t, "ok", status.Status)
		assert.Equal(t, "embedded", status.Components["catalog"])
		assert.Equal(t, "memory", status.Components["store"])
	})

	t.Run("metrics endpoint serves", func(t *testing.T) {
		w := do(http.MethodGet, "/metrics", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "discovery_searches_total")
	})

	t.Run("search returns scored results", func(t *testing.T) {
		w := do(http.MethodPost, "/api/v1/search", `{"query": "dark knight"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Results []struct {
				ID             string   `json:"id"`
				RelevanceScore *float64 `json:"relevance_score"`
			} `json:"results"`
			Count int `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotZero(t, resp.Count)
		assert.Equal(t, "the-dark-knight", resp.Results[0].ID)
		assert.NotNil(t, resp.Results[0].RelevanceScore)
	})

	t.Run("search rejects unknown fields", func(t *testing.T) {
		w := do(http.MethodPost, "/api/v1/search", `{"nonsense": true}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "INVALID_SEARCH_FILTERS")
	})

	t.Run("search with empty body lists the catalog", func(t *testing.T) {
		w := do(http.MethodPost, "/api/v1/search", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Count int `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.NotZero(t, resp.Count)
	})

	t.Run("suggestions", func(t *testing.T) {
		w := do(http.MethodGet, "/api/v1/search/suggestions?q=dark", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "The Dark Knight")
	})

	t.Run("trending and popular reflect recorded searches", func(t *testing.T) {
		w := do(http.MethodGet, "/api/v1/search/trending", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "dark knight")
		assert.Contains(t, w.Body.String(), `"trend_score"`)

		w = do(http.MethodGet, "/api/v1/search/popular", "")
		require.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "dark knight")
	})

	t.Run("clear history", func(t *testing.T) {
		w := do(http.MethodDelete, "/api/v1/search/history", "")
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("recommendations from viewing history", func(t *testing.T) {
		body := `{
			"viewing_history": [
				{"id": "the-dark-knight", "type": "movie", "genre": "Action"},
				{"id": "mad-max-fury-road", "type": "movie", "genre": "Action"}
			]
		}`
		w := do(http.MethodPost, "/api/v1/recommendations", body)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Recommendations []struct {
				ID         string  `json:"id"`
				Confidence float64 `json:"confidence"`
				Reason     string  `json:"reason"`
			} `json:"recommendations"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		require.NotEmpty(t, resp.Recommendations)
		assert.Contains(t, resp.Recommendations[0].Reason, "Because you watched")
	})

	t.Run("recommendations reject a bad time of day", func(t *testing.T) {
		w := do(http.MethodPost, "/api/v1/recommendations", `{"time_of_day": "midnightish"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("empty context yields an empty batch", func(t *testing.T) {
		w := do(http.MethodPost, "/api/v1/recommendations", "")
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Count int `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Zero(t, resp.Count)
	})

	t.Run("personalized feed", func(t *testing.T) {
		w := do(http.MethodPost, "/api/v1/feed", `{"time_of_day": "evening", "device": "tv"}`)
		require.Equal(t, http.StatusOK, w.Code)

		var resp struct {
			Feed  []json.RawMessage `json:"feed"`
			Count int               `json:"count"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, len(resp.Feed), resp.Count)
		assert.NotZero(t, resp.Count)
	})

	t.Run("click tracking", func(t *testing.T) {
		w := do(http.MethodPost, "/api/v1/track/recommendation", `{"item_id": "inception", "reason": "Similar to the-dark-knight"}`)
		assert.Equal(t, http.StatusAccepted, w.Code)

		w = do(http.MethodPost, "/api/v1/track/recommendation", `{}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = do(http.MethodPost, "/api/v1/track/search", `{"query": "dark knight", "item_id": "the-dark-knight"}`)
		assert.Equal(t, http.StatusAccepted, w.Code)
	})
}
