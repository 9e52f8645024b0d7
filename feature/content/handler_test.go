package content_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"quest-zone/core/storage"
	"quest-zone/feature/content"
	"quest-zone/feature/content/fallback"
	"quest-zone/feature/content/models"
)

func setupApp(t *testing.T) *fiber.App {
	store := content.NewStore(nil, nil, storage.Config{}, zap.NewNop())
	feature := content.NewFeature(store)

	assert.Equal(t, "content", feature.Name())
	assert.True(t, feature.IsEnabled())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
	return app
}

func getJSON(t *testing.T, app *fiber.App, path string, out any) {
	req := httptest.NewRequest("GET", path, nil)
	resp, err := app.Test(req, 2000)
	assert.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	body, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	assert.NoError(t, json.Unmarshal(body, out))
}

func TestHandleGetContent(t *testing.T) {
	app := setupApp(t)

	var got content.ContentResponse
	getJSON(t, app, "/content", &got)

	assert.Equal(t, "fallback", got.Source)
	assert.Empty(t, got.Error)
	fb := fallback.Clone()
	assert.Equal(t, fb.SiteSettings.Phone, got.Content.SiteSettings.Phone)
	assert.Len(t, got.Content.Quests, len(fb.Quests))
}

func TestHandleGetQuestsCategoryFilter(t *testing.T) {
	app := setupApp(t)

	var got content.QuestsPayload
	getJSON(t, app, "/content/quests?category=night", &got)

	assert.NotEmpty(t, got.Quests)
	for _, q := range got.Quests {
		assert.Equal(t, models.QuestCategoryNight, q.Category)
	}
	assert.Equal(t, got.Quests, got.NightGames)

	var unknown content.QuestsPayload
	getJSON(t, app, "/content/quests?category=vr", &unknown)
	assert.Empty(t, unknown.Quests)
	assert.NotEmpty(t, unknown.NightGames)
}

func TestHandleGetReviewsPinnedFirst(t *testing.T) {
	app := setupApp(t)

	var got content.ReviewsPayload
	getJSON(t, app, "/content/reviews", &got)

	assert.Len(t, got.Reviews, len(fallback.Clone().Reviews))
	seenUnpinned := false
	for _, r := range got.Reviews {
		if !r.Pinned {
			seenUnpinned = true
		} else {
			assert.False(t, seenUnpinned, "pinned review after an unpinned one")
		}
	}
	assert.NotZero(t, got.Summary.RatingValue)
}

func TestHandleGetContacts(t *testing.T) {
	app := setupApp(t)

	var got content.ContactsPayload
	getJSON(t, app, "/content/contacts", &got)

	fb := fallback.Clone().SiteSettings
	assert.Equal(t, fb.Phone, got.Phone)
	assert.Equal(t, "https://wa.me/"+fb.WhatsappNumber, got.WhatsappUrl)
	if got.IsOpen {
		assert.Equal(t, fb.OpenStatusText, got.StatusText)
	} else {
		assert.Equal(t, fb.ClosedStatusText, got.StatusText)
	}
}

func TestHandleGetBooking(t *testing.T) {
	app := setupApp(t)

	var got content.BookingPayload
	getJSON(t, app, "/content/booking", &got)

	fb := fallback.Clone()
	assert.Equal(t, fb.Booking.TimeSlots, got.TimeSlots)
	assert.Equal(t, fb.Booking.PlayerCounts, got.PlayerCounts)
	assert.NotEmpty(t, got.Faq)
	// Advanced quests are not bookable through the form.
	assert.Len(t, got.QuestOptions, 6)
}

func TestQuestOptionsLabels(t *testing.T) {
	c := &models.SiteContent{
		Quests: []models.QuestItem{
			{Category: models.QuestCategoryRegular, Title: "Бункер", Subtitle: "хоррор"},
			{Category: models.QuestCategoryNight, Title: "Мертвая тишина"},
			{Category: models.QuestCategoryAdvanced, Title: "Перформанс"},
		},
	}

	options := content.QuestOptions(c)
	assert.Equal(t, []string{"Бункер — хоррор", "Мертвая тишина"}, options)
}

func TestHandleGetNavigationAndFooter(t *testing.T) {
	app := setupApp(t)

	var nav models.Navigation
	getJSON(t, app, "/content/navigation", &nav)
	assert.NotEmpty(t, nav.Items)

	var footer models.Footer
	getJSON(t, app, "/content/footer", &footer)
	assert.NotEmpty(t, footer.LinkGroups)
}
