package content

import (
	"context"
	"strings"
	"testing"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"quest-zone/core/storage"
	"quest-zone/core/storage/mocks"
	"quest-zone/feature/content/fallback"
	"quest-zone/feature/content/models"
)

func newTestStore(gw Gateway) *Store {
	return NewStore(gw, nil, storage.Config{}, zap.NewNop())
}

func TestStoreServesFallbackBeforeFirstRefresh(t *testing.T) {
	store := newTestStore(nil)

	assert.Equal(t, SourceFallback, store.Source())
	assert.Empty(t, store.LastError())
	assert.False(t, store.Loading())
	assert.Equal(t, fallback.Clone(), store.Content())
}

func TestStoreContentReturnsIndependentCopy(t *testing.T) {
	store := newTestStore(nil)

	a := store.Content()
	a.SiteSettings.Phone = "mutated"
	a.Quests[0].Title = "mutated"

	b := store.Content()
	assert.NotEqual(t, "mutated", b.SiteSettings.Phone)
	assert.NotEqual(t, "mutated", b.Quests[0].Title)
}

func TestStoreRefreshInstallsSnapshot(t *testing.T) {
	gw := &stubGateway{
		selectRows: func(_ context.Context, table string, _ bool, _ int) ([]Row, error) {
			if table == TableSettings {
				return []Row{{"id": "default", "phone": "+70001112233"}}, nil
			}
			return nil, nil
		},
	}
	store := newTestStore(gw)

	snap := store.Refresh(context.Background())

	assert.Equal(t, SourceRemote, snap.Source)
	assert.Equal(t, SourceRemote, store.Source())
	assert.Equal(t, "+70001112233", store.Content().SiteSettings.Phone)
	assert.False(t, store.Loading())
}

func TestStoreMutationsRequireGateway(t *testing.T) {
	store := newTestStore(nil)
	ctx := context.Background()

	assert.ErrorIs(t, store.SaveSettings(ctx, models.SiteSettings{}), ErrNotConfigured)
	assert.ErrorIs(t, store.SaveQuests(ctx, nil), ErrNotConfigured)
	assert.ErrorIs(t, store.SaveGallery(ctx, nil), ErrNotConfigured)
	assert.ErrorIs(t, store.SaveReviews(ctx, nil), ErrNotConfigured)
	assert.ErrorIs(t, store.SaveOffers(ctx, nil), ErrNotConfigured)
}

func TestStoreSaveSettingsDefaultsID(t *testing.T) {
	var upserted []Row
	gw := &stubGateway{
		upsert: func(_ context.Context, table string, rows []Row) error {
			assert.Equal(t, TableSettings, table)
			upserted = rows
			return nil
		},
	}
	store := newTestStore(gw)

	settings := fallback.Clone().SiteSettings
	settings.ID = ""
	settings.Phone = "+75554443322"

	err := store.SaveSettings(context.Background(), settings)
	assert.NoError(t, err)

	if assert.Len(t, upserted, 1) {
		assert.Equal(t, models.DefaultSettingsID, upserted[0]["id"])
		assert.Equal(t, "+75554443322", upserted[0]["phone"])
	}

	assert.Equal(t, "+75554443322", store.Content().SiteSettings.Phone)
	assert.Equal(t, SourceRemote, store.Source())
	assert.Empty(t, store.LastError())
}

func TestStoreSaveQuestsSyncsAndDensifies(t *testing.T) {
	var deleted []string
	var upserted []Row
	gw := &stubGateway{
		selectIDs: func(_ context.Context, table string) ([]string, error) {
			assert.Equal(t, TableQuests, table)
			return []string{"q1", "stale_a", "stale_b"}, nil
		},
		deleteIDs: func(_ context.Context, table string, ids []string) error {
			assert.Equal(t, TableQuests, table)
			deleted = ids
			return nil
		},
		upsert: func(_ context.Context, table string, rows []Row) error {
			upserted = rows
			return nil
		},
	}
	store := newTestStore(gw)

	quests := []models.QuestItem{
		{ID: "q2", Title: "Второй", SortOrder: 77},
		{ID: "q1", Title: "Первый", SortOrder: 1},
	}

	err := store.SaveQuests(context.Background(), quests)
	assert.NoError(t, err)

	assert.ElementsMatch(t, []string{"stale_a", "stale_b"}, deleted)
	if assert.Len(t, upserted, 2) {
		// Caller order wins; sort orders are renumbered 1..N.
		assert.Equal(t, "q2", upserted[0]["id"])
		assert.Equal(t, 1, upserted[0]["sort_order"])
		assert.Equal(t, "q1", upserted[1]["id"])
		assert.Equal(t, 2, upserted[1]["sort_order"])
	}

	live := store.Content().Quests
	if assert.Len(t, live, 2) {
		assert.Equal(t, "q2", live[0].ID)
		assert.Equal(t, 1, live[0].SortOrder)
	}
	assert.Equal(t, SourceRemote, store.Source())
}

func TestStoreSaveGalleryFailedUpsertLeavesContent(t *testing.T) {
	gw := &stubGateway{
		upsert: func(_ context.Context, _ string, _ []Row) error {
			return assert.AnError
		},
	}
	store := newTestStore(gw)
	before := store.Content()

	err := store.SaveGallery(context.Background(), []models.GalleryItem{{ID: "g1"}})
	assert.Error(t, err)
	assert.Equal(t, before, store.Content())
	assert.Equal(t, SourceFallback, store.Source())
}

func TestStoreUploadGalleryImage(t *testing.T) {
	client := new(mocks.Client)
	cfg := storage.Config{
		Endpoint:      "storage.local:9000",
		AccessKey:     "key",
		SecretKey:     "secret",
		Bucket:        "gallery",
		PublicBaseURL: "https://cdn.example.com",
	}
	store := NewStore(nil, client, cfg, zap.NewNop())

	var objectName string
	client.On("StatObject", mock.Anything, "gallery", mock.Anything, mock.Anything).
		Return(minio.ObjectInfo{}, assert.AnError)
	client.On("PutObject", mock.Anything, "gallery", mock.Anything, mock.Anything, int64(4), mock.Anything).
		Run(func(args mock.Arguments) {
			objectName = args.String(2)
		}).
		Return(minio.UploadInfo{}, nil)

	url, err := store.UploadGalleryImage(context.Background(), "photo.PNG", 4, "image/png", strings.NewReader("data"))
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(objectName, "gallery/"))
	assert.True(t, strings.HasSuffix(objectName, ".png"))
	assert.Equal(t, "https://cdn.example.com/gallery/"+objectName, url)
	client.AssertExpectations(t)
}

func TestStoreUploadRefusesExistingKey(t *testing.T) {
	client := new(mocks.Client)
	cfg := storage.Config{Endpoint: "storage.local:9000", Bucket: "gallery"}
	store := NewStore(nil, client, cfg, zap.NewNop())

	client.On("StatObject", mock.Anything, "gallery", mock.Anything, mock.Anything).
		Return(minio.ObjectInfo{}, nil)

	_, err := store.UploadGalleryImage(context.Background(), "photo.png", 1, "image/png", strings.NewReader("x"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
	client.AssertNotCalled(t, "PutObject")
}

func TestStoreRefreshIsIdempotent(t *testing.T) {
	gw := &stubGateway{
		selectRows: func(_ context.Context, table string, _ bool, _ int) ([]Row, error) {
			if table == TableQuests {
				return []Row{
					{"id": "q1", "title": "A", "sort_order": int64(2)},
					{"id": "q2", "title": "B", "sort_order": int64(1)},
				}, nil
			}
			return nil, nil
		},
	}
	store := newTestStore(gw)

	first := store.Refresh(context.Background())
	second := store.Refresh(context.Background())

	assert.Equal(t, first.Content, second.Content)
	assert.Equal(t, first.Source, second.Source)
	assert.Equal(t, first.Err, second.Err)
}

func TestStoreUploadWithoutClient(t *testing.T) {
	store := newTestStore(nil)

	_, err := store.UploadGalleryImage(context.Background(), "photo.png", 1, "image/png", strings.NewReader("x"))
	assert.ErrorIs(t, err, ErrStorageNotConfigured)
}
