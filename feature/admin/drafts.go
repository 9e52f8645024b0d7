package admin

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"quest-zone/feature/content/models"
)

// MaxPinnedReviews caps how many reviews fit in the pinned carousel slots.
const MaxPinnedReviews = 3

// SavePayload is the edit payload published from the admin panel. Nil
// sections are left untouched.
type SavePayload struct {
	Settings *models.SiteSettings `json:"settings,omitempty"`
	Quests   []models.QuestItem   `json:"quests,omitempty"`
	Gallery  []models.GalleryItem `json:"gallery,omitempty"`
	Reviews  []models.ReviewItem  `json:"reviews,omitempty"`
	Offers   []models.OfferItem   `json:"offers,omitempty"`
}

// Normalize cleans the payload in place: trims list entries, drops empty
// ones, clamps ratings, removes empty replies, and assigns ids to new items.
func (p *SavePayload) Normalize() {
	if p.Settings != nil {
		p.Settings.Features = cleanList(p.Settings.Features)
		p.Settings.PaymentMethods = cleanList(p.Settings.PaymentMethods)
	}

	for i := range p.Quests {
		q := &p.Quests[i]
		if q.ID == "" {
			q.ID = newItemID("quest")
		}
		q.Category = models.ParseQuestCategory(string(q.Category), models.QuestCategoryRegular)
		q.Tags = cleanList(q.Tags)
	}

	for i := range p.Gallery {
		if p.Gallery[i].ID == "" {
			p.Gallery[i].ID = newItemID("gallery")
		}
	}

	for i := range p.Reviews {
		r := &p.Reviews[i]
		if r.ID == "" {
			r.ID = newItemID("review")
		}
		if r.Rating < 1 {
			r.Rating = 1
		}
		if r.Rating > 5 {
			r.Rating = 5
		}
		if r.Reply != nil && strings.TrimSpace(r.Reply.Text) == "" {
			r.Reply = nil
		}
	}

	for i := range p.Offers {
		o := &p.Offers[i]
		if o.ID == "" {
			o.ID = newItemID("offer")
		}
		o.IconKey = models.ParseOfferIcon(string(o.IconKey), models.OfferIconGift)
		o.Features = cleanList(o.Features)
	}
}

// Validate rejects payloads that would break the public site.
func (p *SavePayload) Validate() error {
	pinned := 0
	for _, r := range p.Reviews {
		if r.Pinned {
			pinned++
		}
	}
	if pinned > MaxPinnedReviews {
		return fmt.Errorf("at most %d reviews can be pinned, got %d", MaxPinnedReviews, pinned)
	}

	for _, q := range p.Quests {
		if strings.TrimSpace(q.Title) == "" {
			return fmt.Errorf("quest %s has an empty title", q.ID)
		}
	}
	for _, g := range p.Gallery {
		if strings.TrimSpace(g.Url) == "" {
			return fmt.Errorf("gallery item %s has an empty url", g.ID)
		}
	}
	return nil
}

func cleanList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item != "" {
			out = append(out, item)
		}
	}
	return out
}

func newItemID(prefix string) string {
	return prefix + "_" + uuid.NewString()
}
