package content

import (
	"sort"
	"time"

	"github.com/gofiber/fiber/v2"

	"quest-zone/feature/content/models"
)

// Handler handles the public read-only content endpoints.
type Handler struct {
	store *Store
}

// NewHandler creates a new HTTP handler.
func NewHandler(store *Store) *Handler {
	return &Handler{store: store}
}

// RegisterRoutes registers the content routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/content")
	group.Get("/", h.HandleGetContent)
	group.Get("/hero", h.HandleGetHero)
	group.Get("/quests", h.HandleGetQuests)
	group.Get("/gallery", h.HandleGetGallery)
	group.Get("/reviews", h.HandleGetReviews)
	group.Get("/offers", h.HandleGetOffers)
	group.Get("/navigation", h.HandleGetNavigation)
	group.Get("/contacts", h.HandleGetContacts)
	group.Get("/booking", h.HandleGetBooking)
	group.Get("/footer", h.HandleGetFooter)
}

// ContentResponse is the full reconciled content plus its provenance.
type ContentResponse struct {
	Content *models.SiteContent `json:"content"`
	Source  string              `json:"source"`
	Error   string              `json:"error,omitempty"`
	Loading bool                `json:"loading"`
}

// HeroPayload feeds the landing hero section.
type HeroPayload struct {
	Subtitle         string  `json:"subtitle"`
	Description      string  `json:"description"`
	PrimaryCta       string  `json:"primaryCta"`
	SecondaryCta     string  `json:"secondaryCta"`
	RatingLabel      string  `json:"ratingLabel"`
	RatingValue      float64 `json:"ratingValue"`
	RatingVotesLabel string  `json:"ratingVotesLabel"`
	RatingVotes      int     `json:"ratingVotes"`
	ReviewsCount     int     `json:"reviewsCount"`
	QuestsCount      int     `json:"questsCount"`
}

// QuestsPayload groups quests for the catalog section.
type QuestsPayload struct {
	Quests     []models.QuestItem `json:"quests"`
	NightGames []models.QuestItem `json:"nightGames"`
}

// ReviewsPayload lists reviews with pinned ones first for the carousel.
type ReviewsPayload struct {
	Reviews []models.ReviewItem `json:"reviews"`
	Summary ReviewsSummary      `json:"summary"`
}

// ReviewsSummary carries the aggregate rating shown next to the carousel.
type ReviewsSummary struct {
	RatingValue  float64 `json:"ratingValue"`
	RatingVotes  int     `json:"ratingVotes"`
	ReviewsCount int     `json:"reviewsCount"`
	YandexOrgUrl string  `json:"yandexOrgUrl"`
}

// ContactsPayload feeds the contacts section, including live open status.
type ContactsPayload struct {
	Phone             string   `json:"phone"`
	PhoneDisplay      string   `json:"phoneDisplay"`
	WhatsappUrl       string   `json:"whatsappUrl"`
	Email             string   `json:"email"`
	City              string   `json:"city"`
	Address           string   `json:"address"`
	AddressShort      string   `json:"addressShort"`
	Floor             string   `json:"floor"`
	LandmarkPrimary   string   `json:"landmarkPrimary"`
	LandmarkSecondary string   `json:"landmarkSecondary"`
	WorkHoursLabel    string   `json:"workHoursLabel"`
	WorkHours         string   `json:"workHours"`
	IsOpen            bool     `json:"isOpen"`
	StatusText        string   `json:"statusText"`
	MapEmbedUrl       string   `json:"mapEmbedUrl"`
	Features          []string `json:"features"`
	PaymentMethods    []string `json:"paymentMethods"`
}

// BookingPayload feeds the booking form: slots, counts, faq, and quest options.
type BookingPayload struct {
	TimeSlots    []string         `json:"timeSlots"`
	PlayerCounts []string         `json:"playerCounts"`
	Faq          []models.FaqItem `json:"faq"`
	QuestOptions []string         `json:"questOptions"`
}

// HandleGetContent returns the full reconciled site content.
// @Summary Get Site Content
// @Description Get the full reconciled site content with its source and error state.
// @Tags content
// @Produce json
// @Success 200 {object} ContentResponse "Site Content"
// @Router /content [get]
func (h *Handler) HandleGetContent(c *fiber.Ctx) error {
	return c.JSON(ContentResponse{
		Content: h.store.Content(),
		Source:  string(h.store.Source()),
		Error:   h.store.LastError(),
		Loading: h.store.Loading(),
	})
}

// HandleGetHero returns the hero section payload.
// @Summary Get Hero Section
// @Description Get the landing hero payload with rating and quest counts.
// @Tags content
// @Produce json
// @Success 200 {object} HeroPayload "Hero Section"
// @Router /content/hero [get]
func (h *Handler) HandleGetHero(c *fiber.Ctx) error {
	content := h.store.Content()
	s := content.SiteSettings
	return c.JSON(HeroPayload{
		Subtitle:         s.HeroSubtitle,
		Description:      s.HeroDescription,
		PrimaryCta:       s.HeroPrimaryCta,
		SecondaryCta:     s.HeroSecondaryCta,
		RatingLabel:      s.RatingLabel,
		RatingValue:      s.RatingValue,
		RatingVotesLabel: s.RatingVotesLabel,
		RatingVotes:      s.RatingVotes,
		ReviewsCount:     s.ReviewsCount,
		QuestsCount:      len(content.Quests),
	})
}

// HandleGetQuests returns the quest catalog, optionally filtered by category.
// @Summary Get Quests
// @Description Get the quest catalog grouped into regular quests and night games.
// @Tags content
// @Produce json
// @Param category query string false "Quest category filter (regular, night, advanced)"
// @Success 200 {object} QuestsPayload "Quest Catalog"
// @Router /content/quests [get]
func (h *Handler) HandleGetQuests(c *fiber.Ctx) error {
	content := h.store.Content()

	quests := content.Quests
	if raw := c.Query("category"); raw != "" {
		category := models.ParseQuestCategory(raw, "")
		filtered := make([]models.QuestItem, 0, len(quests))
		for _, q := range quests {
			if q.Category == category {
				filtered = append(filtered, q)
			}
		}
		quests = filtered
	}

	night := make([]models.QuestItem, 0)
	for _, q := range content.Quests {
		if q.Category == models.QuestCategoryNight {
			night = append(night, q)
		}
	}

	return c.JSON(QuestsPayload{Quests: quests, NightGames: night})
}

// HandleGetGallery returns the gallery items in display order.
// @Summary Get Gallery
// @Description Get the gallery photos in display order.
// @Tags content
// @Produce json
// @Success 200 {array} models.GalleryItem "Gallery"
// @Router /content/gallery [get]
func (h *Handler) HandleGetGallery(c *fiber.Ctx) error {
	return c.JSON(h.store.Content().Gallery)
}

// HandleGetReviews returns the reviews with pinned ones first.
// @Summary Get Reviews
// @Description Get reviews ordered for the carousel (pinned first) with the rating summary.
// @Tags content
// @Produce json
// @Success 200 {object} ReviewsPayload "Reviews"
// @Router /content/reviews [get]
func (h *Handler) HandleGetReviews(c *fiber.Ctx) error {
	content := h.store.Content()

	reviews := append([]models.ReviewItem(nil), content.Reviews...)
	sort.SliceStable(reviews, func(i, j int) bool {
		return reviews[i].Pinned && !reviews[j].Pinned
	})

	s := content.SiteSettings
	return c.JSON(ReviewsPayload{
		Reviews: reviews,
		Summary: ReviewsSummary{
			RatingValue:  s.RatingValue,
			RatingVotes:  s.RatingVotes,
			ReviewsCount: s.ReviewsCount,
			YandexOrgUrl: s.YandexOrgUrl,
		},
	})
}

// HandleGetOffers returns the promotion cards in display order.
// @Summary Get Offers
// @Description Get the promotion cards in display order.
// @Tags content
// @Produce json
// @Success 200 {array} models.OfferItem "Offers"
// @Router /content/offers [get]
func (h *Handler) HandleGetOffers(c *fiber.Ctx) error {
	return c.JSON(h.store.Content().Offers)
}

// HandleGetNavigation returns the site navigation menu.
// @Summary Get Navigation
// @Description Get the site navigation menu.
// @Tags content
// @Produce json
// @Success 200 {object} models.Navigation "Navigation"
// @Router /content/navigation [get]
func (h *Handler) HandleGetNavigation(c *fiber.Ctx) error {
	return c.JSON(h.store.Content().Navigation)
}

// HandleGetContacts returns the contacts payload with live open status.
// @Summary Get Contacts
// @Description Get contact details with the open/closed status for the current hour.
// @Tags content
// @Produce json
// @Success 200 {object} ContactsPayload "Contacts"
// @Router /content/contacts [get]
func (h *Handler) HandleGetContacts(c *fiber.Ctx) error {
	s := h.store.Content().SiteSettings
	now := time.Now()
	return c.JSON(ContactsPayload{
		Phone:             s.Phone,
		PhoneDisplay:      s.PhoneDisplay,
		WhatsappUrl:       s.WhatsAppURL(),
		Email:             s.Email,
		City:              s.City,
		Address:           s.Address,
		AddressShort:      s.AddressShort,
		Floor:             s.Floor,
		LandmarkPrimary:   s.LandmarkPrimary,
		LandmarkSecondary: s.LandmarkSecondary,
		WorkHoursLabel:    s.WorkHoursLabel,
		WorkHours:         s.WorkHours,
		IsOpen:            s.IsOpenAt(now),
		StatusText:        s.StatusTextAt(now),
		MapEmbedUrl:       s.MapEmbedUrl,
		Features:          s.Features,
		PaymentMethods:    s.PaymentMethods,
	})
}

// HandleGetBooking returns the booking form configuration.
// @Summary Get Booking Config
// @Description Get time slots, player counts, faq, and bookable quest options.
// @Tags content
// @Produce json
// @Success 200 {object} BookingPayload "Booking Config"
// @Router /content/booking [get]
func (h *Handler) HandleGetBooking(c *fiber.Ctx) error {
	content := h.store.Content()
	return c.JSON(BookingPayload{
		TimeSlots:    content.Booking.TimeSlots,
		PlayerCounts: content.Booking.PlayerCounts,
		Faq:          content.Booking.Faq,
		QuestOptions: QuestOptions(content),
	})
}

// HandleGetFooter returns the footer link groups.
// @Summary Get Footer
// @Description Get the footer link columns.
// @Tags content
// @Produce json
// @Success 200 {object} models.Footer "Footer"
// @Router /content/footer [get]
func (h *Handler) HandleGetFooter(c *fiber.Ctx) error {
	return c.JSON(h.store.Content().Footer)
}

// QuestOptions lists the bookable quest labels: regular quests and night
// games, with the subtitle appended after an em dash when one exists.
func QuestOptions(content *models.SiteContent) []string {
	options := make([]string, 0, len(content.Quests))
	for _, q := range content.Quests {
		if q.Category != models.QuestCategoryRegular && q.Category != models.QuestCategoryNight {
			continue
		}
		label := q.Title
		if q.Subtitle != "" {
			label = q.Title + " — " + q.Subtitle
		}
		options = append(options, label)
	}
	return options
}
