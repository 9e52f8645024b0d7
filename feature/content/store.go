package content

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"quest-zone/core/storage"
	"quest-zone/feature/content/fallback"
	"quest-zone/feature/content/models"
)

var (
	// ErrNotConfigured is returned by mutations when no remote store is wired.
	ErrNotConfigured = errors.New("remote content store is not configured")
	// ErrStorageNotConfigured is returned by uploads when no object storage is wired.
	ErrStorageNotConfigured = errors.New("image storage is not configured")
)

// Store is the content facade: it holds the latest reconciled snapshot,
// serves cloned reads, and pushes edits to the remote tables.
type Store struct {
	gw         Gateway
	client     storage.Client
	storageCfg storage.Config
	log        *zap.Logger

	sf singleflight.Group

	mu      sync.RWMutex
	content *models.SiteContent
	source  Source
	lastErr string
	loading bool
}

// NewStore builds a Store serving the bundled fallback content until the
// first Refresh completes. Gateway and client may be nil.
func NewStore(gw Gateway, client storage.Client, storageCfg storage.Config, log *zap.Logger) *Store {
	return &Store{
		gw:         gw,
		client:     client,
		storageCfg: storageCfg,
		log:        log,
		content:    fallback.Clone(),
		source:     SourceFallback,
	}
}

// Content returns an independent copy of the current site content.
func (s *Store) Content() *models.SiteContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.content.Clone()
}

// Source reports where the current content came from.
func (s *Store) Source() Source {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

// LastError returns the error summary of the latest reconcile pass.
func (s *Store) LastError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastErr
}

// Loading reports whether a reconcile pass is in flight.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// Refresh runs a reconcile pass against the remote tables and installs the
// result. Concurrent callers share a single pass.
func (s *Store) Refresh(ctx context.Context) Snapshot {
	result, _, _ := s.sf.Do("refresh", func() (any, error) {
		s.mu.Lock()
		s.loading = true
		s.mu.Unlock()

		snap := reconcile(ctx, s.gw)

		s.mu.Lock()
		s.content = snap.Content
		s.source = snap.Source
		s.lastErr = snap.Err
		s.loading = false
		s.mu.Unlock()

		if snap.Err != "" {
			s.log.Warn("content refresh completed with errors",
				zap.String("source", string(snap.Source)),
				zap.String("errors", snap.Err))
		} else {
			s.log.Info("content refreshed",
				zap.String("source", string(snap.Source)))
		}
		return snap, nil
	})
	return result.(Snapshot)
}

// SaveSettings upserts the settings singleton and updates the live content.
func (s *Store) SaveSettings(ctx context.Context, settings models.SiteSettings) error {
	if s.gw == nil {
		return ErrNotConfigured
	}
	if settings.ID == "" {
		settings.ID = models.DefaultSettingsID
	}

	if err := s.gw.Upsert(ctx, TableSettings, []Row{settingsRow(settings)}); err != nil {
		return err
	}

	s.mu.Lock()
	s.content.SiteSettings = settings.Clone()
	s.source = SourceRemote
	s.lastErr = ""
	s.mu.Unlock()
	return nil
}

// SaveQuests replaces the quests collection, preserving the caller's order.
func (s *Store) SaveQuests(ctx context.Context, quests []models.QuestItem) error {
	if s.gw == nil {
		return ErrNotConfigured
	}

	quests = densifyQuests(quests)
	rows := make([]Row, 0, len(quests))
	ids := make([]string, 0, len(quests))
	for _, q := range quests {
		rows = append(rows, questRow(q))
		ids = append(ids, q.ID)
	}

	if err := s.syncRows(ctx, TableQuests, ids, rows); err != nil {
		return err
	}

	s.mu.Lock()
	s.content.Quests = quests
	s.source = SourceRemote
	s.lastErr = ""
	s.mu.Unlock()
	return nil
}

// SaveGallery replaces the gallery collection, preserving the caller's order.
func (s *Store) SaveGallery(ctx context.Context, items []models.GalleryItem) error {
	if s.gw == nil {
		return ErrNotConfigured
	}

	items = densifyGallery(items)
	rows := make([]Row, 0, len(items))
	ids := make([]string, 0, len(items))
	for _, g := range items {
		rows = append(rows, galleryRow(g))
		ids = append(ids, g.ID)
	}

	if err := s.syncRows(ctx, TableGallery, ids, rows); err != nil {
		return err
	}

	s.mu.Lock()
	s.content.Gallery = items
	s.source = SourceRemote
	s.lastErr = ""
	s.mu.Unlock()
	return nil
}

// SaveReviews replaces the reviews collection, preserving the caller's order.
func (s *Store) SaveReviews(ctx context.Context, reviews []models.ReviewItem) error {
	if s.gw == nil {
		return ErrNotConfigured
	}

	reviews = densifyReviews(reviews)
	rows := make([]Row, 0, len(reviews))
	ids := make([]string, 0, len(reviews))
	for _, r := range reviews {
		rows = append(rows, reviewRow(r))
		ids = append(ids, r.ID)
	}

	if err := s.syncRows(ctx, TableReviews, ids, rows); err != nil {
		return err
	}

	s.mu.Lock()
	s.content.Reviews = reviews
	s.source = SourceRemote
	s.lastErr = ""
	s.mu.Unlock()
	return nil
}

// SaveOffers replaces the offers collection, preserving the caller's order.
func (s *Store) SaveOffers(ctx context.Context, offers []models.OfferItem) error {
	if s.gw == nil {
		return ErrNotConfigured
	}

	offers = densifyOffers(offers)
	rows := make([]Row, 0, len(offers))
	ids := make([]string, 0, len(offers))
	for _, o := range offers {
		rows = append(rows, offerRow(o))
		ids = append(ids, o.ID)
	}

	if err := s.syncRows(ctx, TableOffers, ids, rows); err != nil {
		return err
	}

	s.mu.Lock()
	s.content.Offers = offers
	s.source = SourceRemote
	s.lastErr = ""
	s.mu.Unlock()
	return nil
}

// syncRows makes a remote collection match the given rows: rows whose id is
// no longer present are deleted, then everything is upserted on id.
func (s *Store) syncRows(ctx context.Context, table string, keepIDs []string, rows []Row) error {
	existing, err := s.gw.SelectIDs(ctx, table)
	if err != nil {
		return err
	}

	keep := make(map[string]struct{}, len(keepIDs))
	for _, id := range keepIDs {
		keep[id] = struct{}{}
	}
	var stale []string
	for _, id := range existing {
		if _, ok := keep[id]; !ok {
			stale = append(stale, id)
		}
	}

	if err := s.gw.DeleteIDs(ctx, table, stale); err != nil {
		return err
	}
	return s.gw.Upsert(ctx, table, rows)
}

// UploadGalleryImage stores an image under a fresh key in the gallery bucket
// and returns its public URL.
func (s *Store) UploadGalleryImage(ctx context.Context, fileName string, size int64, contentType string, reader io.Reader) (string, error) {
	if s.client == nil {
		return "", ErrStorageNotConfigured
	}

	ext := strings.ToLower(strings.TrimPrefix(path.Ext(fileName), "."))
	if ext == "" {
		ext = "jpg"
	}
	objectName := fmt.Sprintf("gallery/%s.%s", uuid.NewString(), ext)

	// Random keys should never collide; refuse to overwrite if one does.
	if _, err := s.client.StatObject(ctx, s.storageCfg.Bucket, objectName, minio.StatObjectOptions{}); err == nil {
		return "", fmt.Errorf("object %s already exists", objectName)
	}

	opts := minio.PutObjectOptions{
		ContentType:  contentType,
		CacheControl: "public, max-age=31536000",
	}
	if _, err := s.client.PutObject(ctx, s.storageCfg.Bucket, objectName, reader, size, opts); err != nil {
		return "", fmt.Errorf("failed to upload gallery image: %w", err)
	}

	url := s.storageCfg.PublicURL(s.storageCfg.Bucket, objectName)
	if url == "" {
		return "", fmt.Errorf("no public url available for object %s", objectName)
	}

	s.log.Info("gallery image uploaded",
		zap.String("object", objectName),
		zap.Int64("size", size))
	return url, nil
}
