package models

import "time"

// DefaultSettingsID is the well-known id of the site settings singleton row.
const DefaultSettingsID = "default"

// QuestCategory is the closed set of quest kinds.
type QuestCategory string

const (
	QuestCategoryRegular  QuestCategory = "regular"
	QuestCategoryNight    QuestCategory = "night"
	QuestCategoryAdvanced QuestCategory = "advanced"
)

// ParseQuestCategory maps a raw value onto the closed category set.
// Unrecognized values yield the fallback category.
func ParseQuestCategory(raw string, fallback QuestCategory) QuestCategory {
	switch QuestCategory(raw) {
	case QuestCategoryRegular, QuestCategoryNight, QuestCategoryAdvanced:
		return QuestCategory(raw)
	default:
		return fallback
	}
}

// OfferIcon is the closed set of icons an offer card can show.
type OfferIcon string

const (
	OfferIconGift  OfferIcon = "gift"
	OfferIconCake  OfferIcon = "cake"
	OfferIconUsers OfferIcon = "users"
)

// ParseOfferIcon maps a raw value onto the closed icon set.
// Unrecognized values yield the fallback icon.
func ParseOfferIcon(raw string, fallback OfferIcon) OfferIcon {
	switch OfferIcon(raw) {
	case OfferIconGift, OfferIconCake, OfferIconUsers:
		return OfferIcon(raw)
	default:
		return fallback
	}
}

// SiteSettings is the singleton carrying contact details, labels, and hours.
type SiteSettings struct {
	ID               string   `json:"id"`
	Phone            string   `json:"phone"`
	PhoneDisplay     string   `json:"phoneDisplay"`
	WhatsappNumber   string   `json:"whatsappNumber"`
	Email            string   `json:"email"`
	City             string   `json:"city"`
	Address          string   `json:"address"`
	AddressShort     string   `json:"addressShort"`
	Floor            string   `json:"floor"`
	OpenHour         int      `json:"openHour"`
	CloseHour        int      `json:"closeHour"`
	OpenStatusText   string   `json:"openStatusText"`
	ClosedStatusText string   `json:"closedStatusText"`
	WorkHoursLabel   string   `json:"workHoursLabel"`
	WorkHours        string   `json:"workHours"`
	LandmarkPrimary  string   `json:"landmarkPrimary"`
	LandmarkSecondary string  `json:"landmarkSecondary"`
	HeroSubtitle     string   `json:"heroSubtitle"`
	HeroDescription  string   `json:"heroDescription"`
	HeroPrimaryCta   string   `json:"heroPrimaryCta"`
	HeroSecondaryCta string   `json:"heroSecondaryCta"`
	RatingLabel      string   `json:"ratingLabel"`
	RatingValue      float64  `json:"ratingValue"`
	RatingVotesLabel string   `json:"ratingVotesLabel"`
	RatingVotes      int      `json:"ratingVotes"`
	ReviewsCount     int      `json:"reviewsCount"`
	GalleryCountLabel string  `json:"galleryCountLabel"`
	MapEmbedUrl      string   `json:"mapEmbedUrl"`
	YandexOrgUrl     string   `json:"yandexOrgUrl"`
	Features         []string `json:"features"`
	PaymentMethods   []string `json:"paymentMethods"`
}

// Clone returns an independent deep copy.
func (s SiteSettings) Clone() SiteSettings {
	out := s
	out.Features = append([]string(nil), s.Features...)
	out.PaymentMethods = append([]string(nil), s.PaymentMethods...)
	return out
}

// IsOpenAt reports whether the venue is open at the given local time.
func (s SiteSettings) IsOpenAt(t time.Time) bool {
	hour := t.Hour()
	return hour >= s.OpenHour && hour < s.CloseHour
}

// StatusTextAt returns the open or closed status label for the given time.
func (s SiteSettings) StatusTextAt(t time.Time) string {
	if s.IsOpenAt(t) {
		return s.OpenStatusText
	}
	return s.ClosedStatusText
}

// WhatsAppURL builds the venue's WhatsApp chat link.
func (s SiteSettings) WhatsAppURL() string {
	if s.WhatsappNumber == "" {
		return ""
	}
	return "https://wa.me/" + s.WhatsappNumber
}

// QuestItem is one escape-room quest card.
type QuestItem struct {
	ID          string        `json:"id"`
	Category    QuestCategory `json:"category"`
	Title       string        `json:"title"`
	Subtitle    string        `json:"subtitle"`
	Price       int           `json:"price"`
	Duration    string        `json:"duration"`
	Players     string        `json:"players"`
	Difficulty  int           `json:"difficulty"`
	Description string        `json:"description"`
	Image       string        `json:"image"`
	Tags        []string      `json:"tags"`
	SortOrder   int           `json:"sortOrder"`
}

// Clone returns an independent deep copy.
func (q QuestItem) Clone() QuestItem {
	out := q
	out.Tags = append([]string(nil), q.Tags...)
	return out
}

// GalleryItem is one photo in the gallery.
type GalleryItem struct {
	ID        string `json:"id"`
	Url       string `json:"url"`
	Alt       string `json:"alt"`
	Category  string `json:"category"`
	SortOrder int    `json:"sortOrder"`
}

// Clone returns an independent copy.
func (g GalleryItem) Clone() GalleryItem {
	return g
}

// ReviewReply is the venue's answer to a review.
type ReviewReply struct {
	Text string `json:"text"`
	Date string `json:"date"`
}

// ReviewItem is one visitor review.
type ReviewItem struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Date      string       `json:"date"`
	Rating    int          `json:"rating"`
	Text      string       `json:"text"`
	Quest     string       `json:"quest"`
	Pinned    bool         `json:"pinned"`
	Reply     *ReviewReply `json:"reply,omitempty"`
	SortOrder int          `json:"sortOrder"`
}

// Clone returns an independent deep copy.
func (r ReviewItem) Clone() ReviewItem {
	out := r
	if r.Reply != nil {
		reply := *r.Reply
		out.Reply = &reply
	}
	return out
}

// OfferItem is one promotion card.
type OfferItem struct {
	ID          string    `json:"id"`
	IconKey     OfferIcon `json:"iconKey"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       string    `json:"price"`
	Features    []string  `json:"features"`
	Popular     bool      `json:"popular"`
	SortOrder   int       `json:"sortOrder"`
}

// Clone returns an independent deep copy.
func (o OfferItem) Clone() OfferItem {
	out := o
	out.Features = append([]string(nil), o.Features...)
	return out
}

// NavItem is one navigation or footer link.
type NavItem struct {
	Label string `json:"label"`
	Href  string `json:"href"`
}

// Navigation holds the site menu.
type Navigation struct {
	Items []NavItem `json:"items"`
}

// FooterLinkGroup is one titled column of footer links.
type FooterLinkGroup struct {
	Title string    `json:"title"`
	Links []NavItem `json:"links"`
}

// Footer holds the footer link columns.
type Footer struct {
	LinkGroups []FooterLinkGroup `json:"linkGroups"`
}

// FaqItem is one question/answer pair on the booking section.
type FaqItem struct {
	Q string `json:"q"`
	A string `json:"a"`
}

// BookingConfig holds the static booking form options.
type BookingConfig struct {
	TimeSlots    []string  `json:"timeSlots"`
	PlayerCounts []string  `json:"playerCounts"`
	Faq          []FaqItem `json:"faq"`
}

// SiteContent is the aggregate root the whole site renders from.
type SiteContent struct {
	SiteSettings SiteSettings  `json:"siteSettings"`
	Navigation   Navigation    `json:"navigation"`
	Quests       []QuestItem   `json:"quests"`
	Gallery      []GalleryItem `json:"gallery"`
	Reviews      []ReviewItem  `json:"reviews"`
	Offers       []OfferItem   `json:"offers"`
	Booking      BookingConfig `json:"booking"`
	Footer       Footer        `json:"footer"`
}

// Clone returns an independent deep copy of the whole aggregate.
func (c *SiteContent) Clone() *SiteContent {
	out := &SiteContent{
		SiteSettings: c.SiteSettings.Clone(),
	}

	out.Navigation.Items = append([]NavItem(nil), c.Navigation.Items...)

	out.Quests = make([]QuestItem, 0, len(c.Quests))
	for _, q := range c.Quests {
		out.Quests = append(out.Quests, q.Clone())
	}

	out.Gallery = make([]GalleryItem, 0, len(c.Gallery))
	for _, g := range c.Gallery {
		out.Gallery = append(out.Gallery, g.Clone())
	}

	out.Reviews = make([]ReviewItem, 0, len(c.Reviews))
	for _, r := range c.Reviews {
		out.Reviews = append(out.Reviews, r.Clone())
	}

	out.Offers = make([]OfferItem, 0, len(c.Offers))
	for _, o := range c.Offers {
		out.Offers = append(out.Offers, o.Clone())
	}

	out.Booking.TimeSlots = append([]string(nil), c.Booking.TimeSlots...)
	out.Booking.PlayerCounts = append([]string(nil), c.Booking.PlayerCounts...)
	out.Booking.Faq = append([]FaqItem(nil), c.Booking.Faq...)

	out.Footer.LinkGroups = make([]FooterLinkGroup, 0, len(c.Footer.LinkGroups))
	for _, g := range c.Footer.LinkGroups {
		group := FooterLinkGroup{Title: g.Title}
		group.Links = append([]NavItem(nil), g.Links...)
		out.Footer.LinkGroups = append(out.Footer.LinkGroups, group)
	}

	return out
}
