package content

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"quest-zone/feature/content/fallback"
	"quest-zone/feature/content/models"
)

func TestDecodeSettingsSparseRowKeepsFallbackFields(t *testing.T) {
	fb := fallback.Clone().SiteSettings

	row := Row{
		"id":        "default",
		"phone":     "+79990000000",
		"open_hour": int64(10),
		"features":  `["Парковка"]`,
	}

	out := decodeSettings(row, fb)

	assert.Equal(t, "+79990000000", out.Phone)
	assert.Equal(t, 10, out.OpenHour)
	assert.Equal(t, []string{"Парковка"}, out.Features)
	// Untouched columns fall back.
	assert.Equal(t, fb.CloseHour, out.CloseHour)
	assert.Equal(t, fb.Email, out.Email)
	assert.Equal(t, fb.PaymentMethods, out.PaymentMethods)
}

func TestDecodeSettingsMalformedValuesFallBack(t *testing.T) {
	fb := fallback.Clone().SiteSettings

	row := Row{
		"open_hour":    "noon",
		"rating_value": "not-a-number",
		"features":     "{broken json",
	}

	out := decodeSettings(row, fb)

	assert.Equal(t, fb.OpenHour, out.OpenHour)
	assert.Equal(t, fb.RatingValue, out.RatingValue)
	assert.Equal(t, fb.Features, out.Features)
}

func TestDecodeQuestSparseRow(t *testing.T) {
	fb := fallback.Clone().Quests

	row := Row{"id": "q9", "title": "X", "sort_order": int64(5)}
	out := decodeQuest(row, fallbackQuestAt(fb, 0))

	assert.Equal(t, "q9", out.ID)
	assert.Equal(t, "X", out.Title)
	assert.Equal(t, 5, out.SortOrder)
	// Everything else comes from the paired fallback quest.
	assert.Equal(t, fb[0].Price, out.Price)
	assert.Equal(t, fb[0].Category, out.Category)
	assert.Equal(t, fb[0].Tags, out.Tags)
}

func TestDecodeQuestUnknownCategoryFallsBack(t *testing.T) {
	fb := fallback.Clone().Quests

	row := Row{"id": "q1", "category": "vr"}
	out := decodeQuest(row, fb[0])

	assert.Equal(t, fb[0].Category, out.Category)
}

func TestDecodeReviewReplyAndRatingClamp(t *testing.T) {
	fb := fallback.Clone().Reviews

	row := Row{
		"id":         "r1",
		"rating":     int64(9),
		"reply_text": "Спасибо!",
	}
	out := decodeReview(row, fb[0])

	assert.Equal(t, 5, out.Rating)
	if assert.NotNil(t, out.Reply) {
		assert.Equal(t, "Спасибо!", out.Reply.Text)
		assert.Equal(t, fb[0].Date, out.Reply.Date)
	}

	// Empty reply text clears any fallback reply.
	withReply := fb[2]
	assert.NotNil(t, withReply.Reply)
	out = decodeReview(Row{"id": "r3"}, withReply)
	assert.Nil(t, out.Reply)
}

func TestDecodeOfferUnknownIconFallsBack(t *testing.T) {
	fb := fallback.Clone().Offers

	out := decodeOffer(Row{"id": "o1", "icon_key": "sparkles"}, fb[0])
	assert.Equal(t, fb[0].IconKey, out.IconKey)
}

func TestFallbackStandInsPastEndOfList(t *testing.T) {
	fb := fallback.Clone()

	q := fallbackQuestAt(fb.Quests, len(fb.Quests))
	assert.Equal(t, "quest_remote_10", q.ID)
	assert.Equal(t, len(fb.Quests)+1, q.SortOrder)
	assert.Equal(t, fb.Quests[0].Title, q.Title)

	g := fallbackGalleryAt(fb.Gallery, len(fb.Gallery)+1)
	assert.Equal(t, "gallery_remote_8", g.ID)

	r := fallbackReviewAt(fb.Reviews, 2)
	assert.Equal(t, fb.Reviews[2].ID, r.ID)

	o := fallbackOfferAt(fb.Offers, 3)
	assert.Equal(t, "offer_remote_4", o.ID)
}

func TestSortAndDensifyQuests(t *testing.T) {
	items := []models.QuestItem{
		{ID: "a", SortOrder: 40},
		{ID: "b", SortOrder: 7},
		{ID: "c", SortOrder: 7},
	}

	out := sortAndDensifyQuests(items)

	assert.Equal(t, []string{"b", "c", "a"}, []string{out[0].ID, out[1].ID, out[2].ID})
	assert.Equal(t, []int{1, 2, 3}, []int{out[0].SortOrder, out[1].SortOrder, out[2].SortOrder})
	// Input is left untouched.
	assert.Equal(t, 40, items[0].SortOrder)
}

func TestDensifyPreservesInputOrder(t *testing.T) {
	items := []models.GalleryItem{
		{ID: "g2", SortOrder: 99},
		{ID: "g1", SortOrder: 1},
	}

	out := densifyGallery(items)

	assert.Equal(t, "g2", out[0].ID)
	assert.Equal(t, 1, out[0].SortOrder)
	assert.Equal(t, "g1", out[1].ID)
	assert.Equal(t, 2, out[1].SortOrder)
}

func TestReviewRowCarriesReplyColumns(t *testing.T) {
	r := models.ReviewItem{ID: "r1", Rating: 5, Reply: &models.ReviewReply{Text: "ok", Date: "вчера"}}
	row := reviewRow(r)
	assert.Equal(t, "ok", row["reply_text"])
	assert.Equal(t, "вчера", row["reply_date"])

	row = reviewRow(models.ReviewItem{ID: "r2", Rating: 4})
	assert.Nil(t, row["reply_text"])
	assert.Nil(t, row["reply_date"])
}

func TestSettingsRowEncodesListsAsJSON(t *testing.T) {
	s := models.SiteSettings{Features: []string{"a", "b"}}
	row := settingsRow(s)
	assert.Equal(t, models.DefaultSettingsID, row["id"])
	assert.Equal(t, `["a","b"]`, row["features"])
	assert.Equal(t, `[]`, row["payment_methods"])
}
