package content

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"quest-zone/feature/content/fallback"
	"quest-zone/feature/content/models"
)

// Source tells where the current content came from.
type Source string

const (
	SourceRemote   Source = "remote"
	SourceFallback Source = "fallback"
)

// Snapshot is one reconciled view of the site content. Err carries the
// collected read errors joined with " | "; an empty Err means a clean pass.
type Snapshot struct {
	Content *models.SiteContent
	Source  Source
	Err     string
}

func fallbackSnapshot(errMsg string) Snapshot {
	return Snapshot{
		Content: fallback.Clone(),
		Source:  SourceFallback,
		Err:     errMsg,
	}
}

type collectionResult struct {
	rows []Row
	err  error
}

// reconcile reads all remote collections and merges them over the bundled
// fallback content. Every remote field falls back independently, so a read
// failure or a sparse row never degrades the page below the bundled dataset.
func reconcile(ctx context.Context, gw Gateway) (snap Snapshot) {
	if gw == nil {
		return fallbackSnapshot("")
	}

	defer func() {
		if r := recover(); r != nil {
			snap = fallbackSnapshot(fmt.Sprintf("content reconcile panic: %v", r))
		}
	}()

	type read struct {
		table string
		limit int
	}
	reads := []read{
		{table: TableSettings, limit: 1},
		{table: TableQuests},
		{table: TableGallery},
		{table: TableReviews},
		{table: TableOffers},
	}

	results := make([]collectionResult, len(reads))
	var wg sync.WaitGroup
	for i, r := range reads {
		wg.Add(1)
		go func(i int, r read) {
			defer wg.Done()
			defer func() {
				if rec := recover(); rec != nil {
					results[i] = collectionResult{err: fmt.Errorf("panic: %v", rec)}
				}
			}()
			rows, err := gw.SelectRows(ctx, r.table, r.limit == 0, r.limit)
			results[i] = collectionResult{rows: rows, err: err}
		}(i, r)
	}
	wg.Wait()

	content := fallback.Clone()
	var errs []string
	remoteRows := false

	recordErr := func(table string, err error) {
		errs = append(errs, fmt.Sprintf("%s: %s", table, err.Error()))
	}

	if res := results[0]; res.err != nil {
		recordErr(TableSettings, res.err)
	} else if len(res.rows) > 0 {
		remoteRows = true
		content.SiteSettings = decodeSettings(res.rows[0], content.SiteSettings)
	}

	if res := results[1]; res.err != nil {
		recordErr(TableQuests, res.err)
	} else if len(res.rows) > 0 {
		remoteRows = true
		quests := make([]models.QuestItem, 0, len(res.rows))
		for i, row := range res.rows {
			quests = append(quests, decodeQuest(row, fallbackQuestAt(content.Quests, i)))
		}
		content.Quests = sortAndDensifyQuests(quests)
	}

	if res := results[2]; res.err != nil {
		recordErr(TableGallery, res.err)
	} else if len(res.rows) > 0 {
		remoteRows = true
		gallery := make([]models.GalleryItem, 0, len(res.rows))
		for i, row := range res.rows {
			gallery = append(gallery, decodeGalleryItem(row, fallbackGalleryAt(content.Gallery, i)))
		}
		content.Gallery = sortAndDensifyGallery(gallery)
	}

	if res := results[3]; res.err != nil {
		recordErr(TableReviews, res.err)
	} else if len(res.rows) > 0 {
		remoteRows = true
		reviews := make([]models.ReviewItem, 0, len(res.rows))
		for i, row := range res.rows {
			reviews = append(reviews, decodeReview(row, fallbackReviewAt(content.Reviews, i)))
		}
		content.Reviews = sortAndDensifyReviews(reviews)
	}

	if res := results[4]; res.err != nil {
		recordErr(TableOffers, res.err)
	} else if len(res.rows) > 0 {
		remoteRows = true
		offers := make([]models.OfferItem, 0, len(res.rows))
		for i, row := range res.rows {
			offers = append(offers, decodeOffer(row, fallbackOfferAt(content.Offers, i)))
		}
		content.Offers = sortAndDensifyOffers(offers)
	}

	source := SourceFallback
	if remoteRows {
		source = SourceRemote
	}

	return Snapshot{
		Content: content,
		Source:  source,
		Err:     strings.Join(errs, " | "),
	}
}
