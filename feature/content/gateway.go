package content

import (
	"context"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Table names of the five remote content collections.
const (
	TableSettings = "site_settings"
	TableQuests   = "quests"
	TableGallery  = "gallery"
	TableReviews  = "reviews"
	TableOffers   = "offers"
)

// Row is a raw remote table row before decoding into the typed model.
type Row map[string]any

// Gateway is the narrow surface the content layer talks to the remote
// tables through. A nil Gateway means the remote store is unconfigured.
type Gateway interface {
	// SelectRows reads all rows of a collection, optionally ordered by
	// sort_order ascending and limited to the first rows.
	SelectRows(ctx context.Context, table string, orderBySortOrder bool, limit int) ([]Row, error)
	// SelectIDs reads the ids currently present in a collection.
	SelectIDs(ctx context.Context, table string) ([]string, error)
	// Upsert writes rows keyed by id, replacing existing rows on conflict.
	Upsert(ctx context.Context, table string, rows []Row) error
	// DeleteIDs removes the rows with the given ids.
	DeleteIDs(ctx context.Context, table string, ids []string) error
}

type dbGateway struct {
	db *gorm.DB
}

// NewGateway wraps a database connection in the Gateway interface.
// A nil connection yields a nil Gateway (unconfigured remote store).
func NewGateway(db *gorm.DB) Gateway {
	if db == nil {
		return nil
	}
	return &dbGateway{db: db}
}

func (g *dbGateway) SelectRows(ctx context.Context, table string, orderBySortOrder bool, limit int) ([]Row, error) {
	query := g.db.WithContext(ctx).Table(table)
	if orderBySortOrder {
		query = query.Order("sort_order asc")
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	var raw []map[string]any
	if err := query.Find(&raw).Error; err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", table, err)
	}

	rows := make([]Row, 0, len(raw))
	for _, r := range raw {
		rows = append(rows, Row(r))
	}
	return rows, nil
}

func (g *dbGateway) SelectIDs(ctx context.Context, table string) ([]string, error) {
	var ids []string
	if err := g.db.WithContext(ctx).Table(table).Pluck("id", &ids).Error; err != nil {
		return nil, fmt.Errorf("failed to read %s ids: %w", table, err)
	}
	return ids, nil
}

func (g *dbGateway) Upsert(ctx context.Context, table string, rows []Row) error {
	if len(rows) == 0 {
		return nil
	}

	payload := make([]map[string]any, 0, len(rows))
	for _, r := range rows {
		payload = append(payload, map[string]any(r))
	}

	err := g.db.WithContext(ctx).
		Table(table).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			UpdateAll: true,
		}).
		Create(&payload).Error
	if err != nil {
		return fmt.Errorf("failed to upsert into %s: %w", table, err)
	}
	return nil
}

func (g *dbGateway) DeleteIDs(ctx context.Context, table string, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	err := g.db.WithContext(ctx).
		Table(table).
		Where("id IN ?", ids).
		Delete(nil).Error
	if err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return nil
}
