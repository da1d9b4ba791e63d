package catalog

import (
	"context"

	"github.com/vistream/discovery/pkg/models"
)

// MemoryCatalog serves a fixed item set from memory. It backs the engine when
// no database is configured and is the standard test double.
type MemoryCatalog struct {
	items []models.CatalogItem
}

func NewMemoryCatalog(items []models.CatalogItem) *MemoryCatalog {
	return &MemoryCatalog{items: items}
}

func (c *MemoryCatalog) FetchByType(ctx context.Context, contentType models.ContentType) ([]models.CatalogItem, error) {
	if contentType == "" || contentType == models.ContentTypeAll {
		out := make([]models.CatalogItem, len(c.items))
		copy(out, c.items)
		return out, nil
	}

	var out []models.CatalogItem
	for _, item := range c.items {
		if item.Type == contentType {
			out = append(out, item)
		}
	}
	return out, nil
}

func (c *MemoryCatalog) FetchByID(ctx context.Context, contentType models.ContentType, id string) (*models.CatalogItem, error) {
	for _, item := range c.items {
		if item.ID != id {
			continue
		}
		if contentType != "" && contentType != models.ContentTypeAll && item.Type != contentType {
			continue
		}
		found := item
		return &found, nil
	}
	return nil, nil
}
