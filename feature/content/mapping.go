package content

import (
	"encoding/json"
	"fmt"
	"sort"

	"quest-zone/core/utils"
	"quest-zone/feature/content/models"
)

// Positional fallback pairing. Remote row N borrows defaults from fallback
// entity N; past the end of the fallback list a stand-in is synthesized from
// the first fallback entity with a deterministic id.

func fallbackQuestAt(fb []models.QuestItem, index int) models.QuestItem {
	if index < len(fb) {
		return fb[index].Clone()
	}
	out := fb[0].Clone()
	out.ID = fmt.Sprintf("quest_remote_%d", index+1)
	out.SortOrder = index + 1
	return out
}

func fallbackGalleryAt(fb []models.GalleryItem, index int) models.GalleryItem {
	if index < len(fb) {
		return fb[index].Clone()
	}
	out := fb[0].Clone()
	out.ID = fmt.Sprintf("gallery_remote_%d", index+1)
	out.SortOrder = index + 1
	return out
}

func fallbackReviewAt(fb []models.ReviewItem, index int) models.ReviewItem {
	if index < len(fb) {
		return fb[index].Clone()
	}
	out := fb[0].Clone()
	out.ID = fmt.Sprintf("review_remote_%d", index+1)
	out.SortOrder = index + 1
	return out
}

func fallbackOfferAt(fb []models.OfferItem, index int) models.OfferItem {
	if index < len(fb) {
		return fb[index].Clone()
	}
	out := fb[0].Clone()
	out.ID = fmt.Sprintf("offer_remote_%d", index+1)
	out.SortOrder = index + 1
	return out
}

// Row decoding: every field falls back independently to the paired fallback
// entity, so a partially populated or malformed row still yields a complete
// entity.

func decodeSettings(row Row, fb models.SiteSettings) models.SiteSettings {
	out := fb.Clone()
	out.ID = utils.StringOr(row["id"], fb.ID)
	out.Phone = utils.StringOr(row["phone"], fb.Phone)
	out.PhoneDisplay = utils.StringOr(row["phone_display"], fb.PhoneDisplay)
	out.WhatsappNumber = utils.StringOr(row["whatsapp_number"], fb.WhatsappNumber)
	out.Email = utils.StringOr(row["email"], fb.Email)
	out.City = utils.StringOr(row["city"], fb.City)
	out.Address = utils.StringOr(row["address"], fb.Address)
	out.AddressShort = utils.StringOr(row["address_short"], fb.AddressShort)
	out.Floor = utils.StringOr(row["floor"], fb.Floor)
	out.OpenHour = utils.IntOr(row["open_hour"], fb.OpenHour)
	out.CloseHour = utils.IntOr(row["close_hour"], fb.CloseHour)
	out.OpenStatusText = utils.StringOr(row["open_status_text"], fb.OpenStatusText)
	out.ClosedStatusText = utils.StringOr(row["closed_status_text"], fb.ClosedStatusText)
	out.WorkHoursLabel = utils.StringOr(row["work_hours_label"], fb.WorkHoursLabel)
	out.WorkHours = utils.StringOr(row["work_hours"], fb.WorkHours)
	out.LandmarkPrimary = utils.StringOr(row["landmark_primary"], fb.LandmarkPrimary)
	out.LandmarkSecondary = utils.StringOr(row["landmark_secondary"], fb.LandmarkSecondary)
	out.HeroSubtitle = utils.StringOr(row["hero_subtitle"], fb.HeroSubtitle)
	out.HeroDescription = utils.StringOr(row["hero_description"], fb.HeroDescription)
	out.HeroPrimaryCta = utils.StringOr(row["hero_primary_cta"], fb.HeroPrimaryCta)
	out.HeroSecondaryCta = utils.StringOr(row["hero_secondary_cta"], fb.HeroSecondaryCta)
	out.RatingLabel = utils.StringOr(row["rating_label"], fb.RatingLabel)
	out.RatingValue = utils.FloatOr(row["rating_value"], fb.RatingValue)
	out.RatingVotesLabel = utils.StringOr(row["rating_votes_label"], fb.RatingVotesLabel)
	out.RatingVotes = utils.IntOr(row["rating_votes"], fb.RatingVotes)
	out.ReviewsCount = utils.IntOr(row["reviews_count"], fb.ReviewsCount)
	out.GalleryCountLabel = utils.StringOr(row["gallery_count_label"], fb.GalleryCountLabel)
	out.MapEmbedUrl = utils.StringOr(row["map_embed_url"], fb.MapEmbedUrl)
	out.YandexOrgUrl = utils.StringOr(row["yandex_org_url"], fb.YandexOrgUrl)
	out.Features = utils.StringSliceOr(row["features"], fb.Features)
	out.PaymentMethods = utils.StringSliceOr(row["payment_methods"], fb.PaymentMethods)
	return out
}

func decodeQuest(row Row, fb models.QuestItem) models.QuestItem {
	out := fb.Clone()
	out.ID = utils.StringOr(row["id"], fb.ID)
	out.Category = models.ParseQuestCategory(utils.StringOr(row["category"], string(fb.Category)), fb.Category)
	out.Title = utils.StringOr(row["title"], fb.Title)
	out.Subtitle = utils.StringOr(row["subtitle"], fb.Subtitle)
	out.Price = utils.IntOr(row["price"], fb.Price)
	out.Duration = utils.StringOr(row["duration"], fb.Duration)
	out.Players = utils.StringOr(row["players"], fb.Players)
	out.Difficulty = utils.IntOr(row["difficulty"], fb.Difficulty)
	out.Description = utils.StringOr(row["description"], fb.Description)
	out.Image = utils.StringOr(row["image"], fb.Image)
	out.Tags = utils.StringSliceOr(row["tags"], fb.Tags)
	out.SortOrder = utils.IntOr(row["sort_order"], fb.SortOrder)
	return out
}

func decodeGalleryItem(row Row, fb models.GalleryItem) models.GalleryItem {
	out := fb.Clone()
	out.ID = utils.StringOr(row["id"], fb.ID)
	out.Url = utils.StringOr(row["url"], fb.Url)
	out.Alt = utils.StringOr(row["alt"], fb.Alt)
	out.Category = utils.StringOr(row["category"], fb.Category)
	out.SortOrder = utils.IntOr(row["sort_order"], fb.SortOrder)
	return out
}

func decodeReview(row Row, fb models.ReviewItem) models.ReviewItem {
	out := fb.Clone()
	out.ID = utils.StringOr(row["id"], fb.ID)
	out.Name = utils.StringOr(row["name"], fb.Name)
	out.Date = utils.StringOr(row["date_label"], fb.Date)
	out.Rating = clampRating(utils.IntOr(row["rating"], fb.Rating))
	out.Text = utils.StringOr(row["text"], fb.Text)
	out.Quest = utils.StringOr(row["quest"], fb.Quest)
	out.Pinned = utils.BoolOr(row["pinned"], fb.Pinned)
	out.SortOrder = utils.IntOr(row["sort_order"], fb.SortOrder)

	// A reply exists only when the row carries non-empty reply text.
	replyText := utils.StringOr(row["reply_text"], "")
	if replyText != "" {
		replyDate := utils.StringOr(row["reply_date"], "")
		if replyDate == "" {
			if fb.Reply != nil {
				replyDate = fb.Reply.Date
			} else {
				replyDate = fb.Date
			}
		}
		out.Reply = &models.ReviewReply{Text: replyText, Date: replyDate}
	} else {
		out.Reply = nil
	}
	return out
}

func decodeOffer(row Row, fb models.OfferItem) models.OfferItem {
	out := fb.Clone()
	out.ID = utils.StringOr(row["id"], fb.ID)
	out.IconKey = models.ParseOfferIcon(utils.StringOr(row["icon_key"], string(fb.IconKey)), fb.IconKey)
	out.Title = utils.StringOr(row["title"], fb.Title)
	out.Description = utils.StringOr(row["description"], fb.Description)
	out.Price = utils.StringOr(row["price"], fb.Price)
	out.Features = utils.StringSliceOr(row["features"], fb.Features)
	out.Popular = utils.BoolOr(row["popular"], fb.Popular)
	out.SortOrder = utils.IntOr(row["sort_order"], fb.SortOrder)
	return out
}

func clampRating(rating int) int {
	if rating < 1 {
		return 1
	}
	if rating > 5 {
		return 5
	}
	return rating
}

// Row building: entities back into snake_case columns. List-valued fields are
// persisted as JSON text.

func settingsRow(s models.SiteSettings) Row {
	id := s.ID
	if id == "" {
		id = models.DefaultSettingsID
	}
	return Row{
		"id":                  id,
		"phone":               s.Phone,
		"phone_display":       s.PhoneDisplay,
		"whatsapp_number":     s.WhatsappNumber,
		"email":               s.Email,
		"city":                s.City,
		"address":             s.Address,
		"address_short":       s.AddressShort,
		"floor":               s.Floor,
		"open_hour":           s.OpenHour,
		"close_hour":          s.CloseHour,
		"open_status_text":    s.OpenStatusText,
		"closed_status_text":  s.ClosedStatusText,
		"work_hours_label":    s.WorkHoursLabel,
		"work_hours":          s.WorkHours,
		"landmark_primary":    s.LandmarkPrimary,
		"landmark_secondary":  s.LandmarkSecondary,
		"hero_subtitle":       s.HeroSubtitle,
		"hero_description":    s.HeroDescription,
		"hero_primary_cta":    s.HeroPrimaryCta,
		"hero_secondary_cta":  s.HeroSecondaryCta,
		"rating_label":        s.RatingLabel,
		"rating_value":        s.RatingValue,
		"rating_votes_label":  s.RatingVotesLabel,
		"rating_votes":        s.RatingVotes,
		"reviews_count":       s.ReviewsCount,
		"gallery_count_label": s.GalleryCountLabel,
		"map_embed_url":       s.MapEmbedUrl,
		"yandex_org_url":      s.YandexOrgUrl,
		"features":            encodeList(s.Features),
		"payment_methods":     encodeList(s.PaymentMethods),
	}
}

func questRow(q models.QuestItem) Row {
	return Row{
		"id":          q.ID,
		"category":    string(q.Category),
		"title":       q.Title,
		"subtitle":    q.Subtitle,
		"price":       q.Price,
		"duration":    q.Duration,
		"players":     q.Players,
		"difficulty":  q.Difficulty,
		"description": q.Description,
		"image":       q.Image,
		"tags":        encodeList(q.Tags),
		"sort_order":  q.SortOrder,
	}
}

func galleryRow(g models.GalleryItem) Row {
	return Row{
		"id":         g.ID,
		"url":        g.Url,
		"alt":        g.Alt,
		"category":   g.Category,
		"sort_order": g.SortOrder,
	}
}

func reviewRow(r models.ReviewItem) Row {
	row := Row{
		"id":         r.ID,
		"name":       r.Name,
		"date_label": r.Date,
		"rating":     r.Rating,
		"text":       r.Text,
		"quest":      r.Quest,
		"pinned":     r.Pinned,
		"reply_text": nil,
		"reply_date": nil,
		"sort_order": r.SortOrder,
	}
	if r.Reply != nil {
		row["reply_text"] = r.Reply.Text
		row["reply_date"] = r.Reply.Date
	}
	return row
}

func offerRow(o models.OfferItem) Row {
	return Row{
		"id":          o.ID,
		"icon_key":    string(o.IconKey),
		"title":       o.Title,
		"description": o.Description,
		"price":       o.Price,
		"features":    encodeList(o.Features),
		"popular":     o.Popular,
		"sort_order":  o.SortOrder,
	}
}

func encodeList(items []string) string {
	if items == nil {
		items = []string{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return "[]"
	}
	return string(data)
}

// Ordering normalization. The read path treats stored sort_order as a hint:
// sort by it, then re-densify to 1..N. The write path trusts the caller's
// order and only densifies.

func sortAndDensifyQuests(items []models.QuestItem) []models.QuestItem {
	out := cloneQuests(items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	for i := range out {
		out[i].SortOrder = i + 1
	}
	return out
}

func sortAndDensifyGallery(items []models.GalleryItem) []models.GalleryItem {
	out := cloneGallery(items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	for i := range out {
		out[i].SortOrder = i + 1
	}
	return out
}

func sortAndDensifyReviews(items []models.ReviewItem) []models.ReviewItem {
	out := cloneReviews(items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	for i := range out {
		out[i].SortOrder = i + 1
	}
	return out
}

func sortAndDensifyOffers(items []models.OfferItem) []models.OfferItem {
	out := cloneOffers(items)
	sort.SliceStable(out, func(i, j int) bool { return out[i].SortOrder < out[j].SortOrder })
	for i := range out {
		out[i].SortOrder = i + 1
	}
	return out
}

func densifyQuests(items []models.QuestItem) []models.QuestItem {
	out := cloneQuests(items)
	for i := range out {
		out[i].SortOrder = i + 1
	}
	return out
}

func densifyGallery(items []models.GalleryItem) []models.GalleryItem {
	out := cloneGallery(items)
	for i := range out {
		out[i].SortOrder = i + 1
	}
	return out
}

func densifyReviews(items []models.ReviewItem) []models.ReviewItem {
	out := cloneReviews(items)
	for i := range out {
		out[i].SortOrder = i + 1
	}
	return out
}

func densifyOffers(items []models.OfferItem) []models.OfferItem {
	out := cloneOffers(items)
	for i := range out {
		out[i].SortOrder = i + 1
	}
	return out
}

func cloneQuests(items []models.QuestItem) []models.QuestItem {
	out := make([]models.QuestItem, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}
	return out
}

func cloneGallery(items []models.GalleryItem) []models.GalleryItem {
	out := make([]models.GalleryItem, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}
	return out
}

func cloneReviews(items []models.ReviewItem) []models.ReviewItem {
	out := make([]models.ReviewItem, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}
	return out
}

func cloneOffers(items []models.OfferItem) []models.OfferItem {
	out := make([]models.OfferItem, 0, len(items))
	for _, item := range items {
		out = append(out, item.Clone())
	}
	return out
}
