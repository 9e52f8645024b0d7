package content

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"quest-zone/feature/content/fallback"
)

// stubGateway lets tests script each remote operation.
type stubGateway struct {
	selectRows func(ctx context.Context, table string, ordered bool, limit int) ([]Row, error)
	selectIDs  func(ctx context.Context, table string) ([]string, error)
	upsert     func(ctx context.Context, table string, rows []Row) error
	deleteIDs  func(ctx context.Context, table string, ids []string) error
}

func (s *stubGateway) SelectRows(ctx context.Context, table string, ordered bool, limit int) ([]Row, error) {
	if s.selectRows == nil {
		return nil, nil
	}
	return s.selectRows(ctx, table, ordered, limit)
}

func (s *stubGateway) SelectIDs(ctx context.Context, table string) ([]string, error) {
	if s.selectIDs == nil {
		return nil, nil
	}
	return s.selectIDs(ctx, table)
}

func (s *stubGateway) Upsert(ctx context.Context, table string, rows []Row) error {
	if s.upsert == nil {
		return nil
	}
	return s.upsert(ctx, table, rows)
}

func (s *stubGateway) DeleteIDs(ctx context.Context, table string, ids []string) error {
	if s.deleteIDs == nil {
		return nil
	}
	return s.deleteIDs(ctx, table, ids)
}

func TestReconcileNilGatewayServesFallback(t *testing.T) {
	snap := reconcile(context.Background(), nil)

	assert.Equal(t, SourceFallback, snap.Source)
	assert.Empty(t, snap.Err)
	assert.Equal(t, fallback.Clone(), snap.Content)
}

func TestReconcileEmptyTablesServeFallback(t *testing.T) {
	gw := &stubGateway{}

	snap := reconcile(context.Background(), gw)

	assert.Equal(t, SourceFallback, snap.Source)
	assert.Empty(t, snap.Err)
	assert.Equal(t, fallback.Clone(), snap.Content)
}

func TestReconcileMergesRemoteRows(t *testing.T) {
	gw := &stubGateway{
		selectRows: func(_ context.Context, table string, ordered bool, limit int) ([]Row, error) {
			switch table {
			case TableSettings:
				assert.Equal(t, 1, limit)
				assert.False(t, ordered)
				return []Row{{"id": "default", "phone": "+71112223344"}}, nil
			case TableQuests:
				assert.True(t, ordered)
				return []Row{
					{"id": "q9", "title": "X", "sort_order": int64(5)},
				}, nil
			default:
				return nil, nil
			}
		},
	}

	snap := reconcile(context.Background(), gw)

	assert.Equal(t, SourceRemote, snap.Source)
	assert.Empty(t, snap.Err)
	assert.Equal(t, "+71112223344", snap.Content.SiteSettings.Phone)

	fb := fallback.Clone()
	assert.Equal(t, fb.SiteSettings.Email, snap.Content.SiteSettings.Email)

	// A single sparse remote quest replaces the whole collection with its
	// sort order re-densified.
	if assert.Len(t, snap.Content.Quests, 1) {
		assert.Equal(t, "q9", snap.Content.Quests[0].ID)
		assert.Equal(t, "X", snap.Content.Quests[0].Title)
		assert.Equal(t, 1, snap.Content.Quests[0].SortOrder)
		assert.Equal(t, fb.Quests[0].Price, snap.Content.Quests[0].Price)
	}

	// Untouched collections remain the fallback ones.
	assert.Equal(t, fb.Gallery, snap.Content.Gallery)
	assert.Equal(t, fb.Offers, snap.Content.Offers)
}

func TestReconcileCollectsPerCollectionErrors(t *testing.T) {
	gw := &stubGateway{
		selectRows: func(_ context.Context, table string, _ bool, _ int) ([]Row, error) {
			switch table {
			case TableQuests:
				return nil, errors.New("connection refused")
			case TableReviews:
				return nil, errors.New("table missing")
			case TableGallery:
				return []Row{{"id": "g1", "url": "https://cdn/p.webp"}}, nil
			default:
				return nil, nil
			}
		},
	}

	snap := reconcile(context.Background(), gw)

	// Any non-empty remote collection marks the snapshot remote even when
	// other reads failed.
	assert.Equal(t, SourceRemote, snap.Source)
	assert.Equal(t, "quests: connection refused | reviews: table missing", snap.Err)

	fb := fallback.Clone()
	assert.Equal(t, fb.Quests, snap.Content.Quests)
	assert.Equal(t, fb.Reviews, snap.Content.Reviews)
	if assert.Len(t, snap.Content.Gallery, 1) {
		assert.Equal(t, "g1", snap.Content.Gallery[0].ID)
	}
}

func TestReconcileReadPanicBecomesCollectionError(t *testing.T) {
	gw := &stubGateway{
		selectRows: func(_ context.Context, table string, _ bool, _ int) ([]Row, error) {
			if table == TableOffers {
				panic("boom")
			}
			return nil, nil
		},
	}

	snap := reconcile(context.Background(), gw)

	assert.Equal(t, SourceFallback, snap.Source)
	assert.Equal(t, "offers: panic: boom", snap.Err)
	assert.Equal(t, fallback.Clone(), snap.Content)
}

func TestReconcileRemoteStandInsBeyondFallback(t *testing.T) {
	fb := fallback.Clone()
	rows := make([]Row, 0, len(fb.Offers)+1)
	for i := range fb.Offers {
		rows = append(rows, Row{"id": fb.Offers[i].ID, "sort_order": int64(i + 1)})
	}
	rows = append(rows, Row{"id": "offer_extra", "title": "Новая акция", "sort_order": int64(99)})

	gw := &stubGateway{
		selectRows: func(_ context.Context, table string, _ bool, _ int) ([]Row, error) {
			if table == TableOffers {
				return rows, nil
			}
			return nil, nil
		},
	}

	snap := reconcile(context.Background(), gw)

	if assert.Len(t, snap.Content.Offers, len(fb.Offers)+1) {
		extra := snap.Content.Offers[len(fb.Offers)]
		assert.Equal(t, "offer_extra", extra.ID)
		assert.Equal(t, "Новая акция", extra.Title)
		// Stand-in defaults are cloned from the first fallback offer.
		assert.Equal(t, fb.Offers[0].Price, extra.Price)
		assert.Equal(t, len(fb.Offers)+1, extra.SortOrder)
	}
}
