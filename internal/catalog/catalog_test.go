package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vistream/discovery/pkg/models"
)

var catalogTestColumns = []string{
	"id", "title", "description", "type", "genre", "language",
	"release_year", "duration", "rating", "actors", "tags", "thumbnail_url", "popularity_score",
}

func TestPostgresCatalog_FetchByType(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	t.Run("scoped fetch filters by type", func(t *testing.T) {
		mockDB, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockDB.Close()

		rows := pgxmock.NewRows(catalogTestColumns).
			AddRow("the-dark-knight", "The Dark Knight", "Batman faces the Joker.", "movie", "Action", "en",
				intPtr(2008), floatPtr(152), floatPtr(9.0),
				[]string{"Christian Bale"}, []string{"superhero"}, "/thumbs/tdk.jpg", 0.96)

		mockDB.ExpectQuery("SELECT(.+)FROM content_items WHERE active = true AND type = \\$1").
			WithArgs("movie").
			WillReturnRows(rows)

		cat := NewPostgresCatalog(mockDB, logger)
		items, err := cat.FetchByType(context.Background(), models.ContentTypeMovie)
		require.NoError(t, err)
		require.Len(t, items, 1)

		assert.Equal(t, "the-dark-knight", items[0].ID)
		assert.Equal(t, models.ContentTypeMovie, items[0].Type)
		require.NotNil(t, items[0].ReleaseYear)
		assert.Equal(t, 2008, *items[0].ReleaseYear)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("all types issues unscoped query", func(t *testing.T) {
		mockDB, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockDB.Close()

		rows := pgxmock.NewRows(catalogTestColumns)
		mockDB.ExpectQuery("SELECT(.+)FROM content_items WHERE active = true ORDER BY popularity_score DESC").
			WillReturnRows(rows)

		cat := NewPostgresCatalog(mockDB, logger)
		items, err := cat.FetchByType(context.Background(), models.ContentTypeAll)
		require.NoError(t, err)
		assert.Empty(t, items)
		assert.NoError(t, mockDB.ExpectationsWereMet())
	})

	t.Run("query error is surfaced", func(t *testing.T) {
		mockDB, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockDB.Close()

		mockDB.ExpectQuery("SELECT(.+)FROM content_items").
			WillReturnError(errors.New("connection refused"))

		cat := NewPostgresCatalog(mockDB, logger)
		_, err = cat.FetchByType(context.Background(), models.ContentTypeAll)
		assert.Error(t, err)
	})
}

func TestPostgresCatalog_FetchByID(t *testing.T) {
	logger := logrus.New()
	logger.SetLevel(logrus.PanicLevel)

	t.Run("found", func(t *testing.T) {
		mockDB, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockDB.Close()

		rows := pgxmock.NewRows(catalogTestColumns).
			AddRow("take-five", "Take Five", "Cool jazz standard.", "music", "Jazz", "en",
				intPtr(1959), floatPtr(5.4), floatPtr(8.9),
				[]string{"The Dave Brubeck Quartet"}, []string{"cool-jazz"}, "/thumbs/t5.jpg", 0.7)

		mockDB.ExpectQuery("SELECT(.+)FROM content_items WHERE active = true AND id = \\$1").
			WithArgs("take-five").
			WillReturnRows(rows)

		cat := NewPostgresCatalog(mockDB, logger)
		item, err := cat.FetchByID(context.Background(), models.ContentTypeAll, "take-five")
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, "Take Five", item.Title)
	})

	t.Run("missing id yields nil without error", func(t *testing.T) {
		mockDB, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockDB.Close()

		mockDB.ExpectQuery("SELECT(.+)FROM content_items").
			WithArgs("nope").
			WillReturnRows(pgxmock.NewRows(catalogTestColumns))

		cat := NewPostgresCatalog(mockDB, logger)
		item, err := cat.FetchByID(context.Background(), models.ContentTypeAll, "nope")
		require.NoError(t, err)
		assert.Nil(t, item)
	})
}

func TestMemoryCatalog(t *testing.T) {
	ctx := context.Background()
	cat := NewMemoryCatalog(SampleItems())

	t.Run("all returns every item", func(t *testing.T) {
		items, err := cat.FetchByType(ctx, models.ContentTypeAll)
		require.NoError(t, err)
		assert.Len(t, items, len(SampleItems()))
	})

	t.Run("type scoping", func(t *testing.T) {
		items, err := cat.FetchByType(ctx, models.ContentTypeMusic)
		require.NoError(t, err)
		require.NotEmpty(t, items)
		for _, item := range items {
			assert.Equal(t, models.ContentTypeMusic, item.Type)
		}
	})

	t.Run("returned slice is a copy", func(t *testing.T) {
		items, err := cat.FetchByType(ctx, models.ContentTypeAll)
		require.NoError(t, err)
		items[0].Title = "mutated"

		again, err := cat.FetchByType(ctx, models.ContentTypeAll)
		require.NoError(t, err)
		assert.NotEqual(t, "mutated", again[0].Title)
	})

	t.Run("fetch by id respects type scope", func(t *testing.T) {
		item, err := cat.FetchByID(ctx, models.ContentTypeMovie, "inception")
		require.NoError(t, err)
		require.NotNil(t, item)
		assert.Equal(t, "Inception", item.Title)

		item, err = cat.FetchByID(ctx, models.ContentTypeMusic, "inception")
		require.NoError(t, err)
		assert.Nil(t, item)
	})
}
