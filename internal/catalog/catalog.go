// Package catalog implements the accessor for the external content catalog.
// The discovery engine only ever reads from it.
package catalog

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/sirupsen/logrus"

	"github.com/vistream/discovery/pkg/models"
)

// Catalog fetches normalized records from the content store. FetchByType with
// models.ContentTypeAll returns movies and music together.
type Catalog interface {
	FetchByType(ctx context.Context, contentType models.ContentType) ([]models.CatalogItem, error)
	FetchByID(ctx context.Context, contentType models.ContentType, id string) (*models.CatalogItem, error)
}

// DatabaseQuerier interface for database operations
type DatabaseQuerier interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
}

// PostgresCatalog reads catalog records from the content_items table.
type PostgresCatalog struct {
	db     DatabaseQuerier
	logger *logrus.Logger
}

func NewPostgresCatalog(db DatabaseQuerier, logger *logrus.Logger) *PostgresCatalog {
	return &PostgresCatalog{db: db, logger: logger}
}

const catalogColumns = `
	id, title, description, type, genre, language,
	release_year, duration, rating, actors, tags, thumbnail_url, popularity_score`

func (c *PostgresCatalog) FetchByType(ctx context.Context, contentType models.ContentType) ([]models.CatalogItem, error) {
	query := "SELECT" + catalogColumns + " FROM content_items WHERE active = true"
	args := []interface{}{}

	if contentType != "" && contentType != models.ContentTypeAll {
		query += " AND type = $1"
		args = append(args, string(contentType))
	}
	query += " ORDER BY popularity_score DESC"

	rows, err := c.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch by type failed: %w", err)
	}
	defer rows.Close()

	return c.scanItems(rows)
}

func (c *PostgresCatalog) FetchByID(ctx context.Context, contentType models.ContentType, id string) (*models.CatalogItem, error) {
	query := "SELECT" + catalogColumns + " FROM content_items WHERE active = true AND id = $1"
	args := []interface{}{id}

	if contentType != "" && contentType != models.ContentTypeAll {
		query += " AND type = $2"
		args = append(args, string(contentType))
	}

	rows, err := c.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch by id failed: %w", err)
	}
	defer rows.Close()

	items, err := c.scanItems(rows)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, nil
	}
	return &items[0], nil
}

func (c *PostgresCatalog) scanItems(rows pgx.Rows) ([]models.CatalogItem, error) {
	var items []models.CatalogItem
	for rows.Next() {
		var item models.CatalogItem
		if err := rows.Scan(
			&item.ID, &item.Title, &item.Description, &item.Type, &item.Genre,
			&item.Language, &item.ReleaseYear, &item.Duration, &item.Rating,
			&item.Actors, &item.Tags, &item.Thumbnail, &item.PopularityScore,
		); err != nil {
			c.logger.WithError(err).Error("Failed to scan catalog item")
			continue
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("catalog row iteration failed: %w", err)
	}
	return items, nil
}
