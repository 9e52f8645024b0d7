package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseQuestCategory(t *testing.T) {
	assert.Equal(t, QuestCategoryNight, ParseQuestCategory("night", QuestCategoryRegular))
	assert.Equal(t, QuestCategoryAdvanced, ParseQuestCategory("advanced", QuestCategoryRegular))
	assert.Equal(t, QuestCategoryRegular, ParseQuestCategory("invalid", QuestCategoryRegular))
	assert.Equal(t, QuestCategoryNight, ParseQuestCategory("", QuestCategoryNight))
}

func TestParseOfferIcon(t *testing.T) {
	assert.Equal(t, OfferIconCake, ParseOfferIcon("cake", OfferIconGift))
	assert.Equal(t, OfferIconGift, ParseOfferIcon("sparkles", OfferIconGift))
}

func TestSiteSettingsIsOpenAt(t *testing.T) {
	s := SiteSettings{OpenHour: 12, CloseHour: 23, OpenStatusText: "open", ClosedStatusText: "closed"}

	at := func(hour int) time.Time {
		return time.Date(2025, 9, 15, hour, 30, 0, 0, time.UTC)
	}

	assert.False(t, s.IsOpenAt(at(11)))
	assert.True(t, s.IsOpenAt(at(12)))
	assert.True(t, s.IsOpenAt(at(22)))
	assert.False(t, s.IsOpenAt(at(23)))

	assert.Equal(t, "open", s.StatusTextAt(at(15)))
	assert.Equal(t, "closed", s.StatusTextAt(at(3)))
}

func TestWhatsAppURL(t *testing.T) {
	assert.Equal(t, "https://wa.me/79898801694", SiteSettings{WhatsappNumber: "79898801694"}.WhatsAppURL())
	assert.Equal(t, "", SiteSettings{}.WhatsAppURL())
}

func TestSiteContentCloneIsIndependent(t *testing.T) {
	reply := &ReviewReply{Text: "thanks", Date: "1 мая 2025"}
	original := &SiteContent{
		SiteSettings: SiteSettings{ID: "default", Features: []string{"wifi"}},
		Quests:       []QuestItem{{ID: "q1", Tags: []string{"scary"}}},
		Gallery:      []GalleryItem{{ID: "g1"}},
		Reviews:      []ReviewItem{{ID: "r1", Reply: reply}},
		Offers:       []OfferItem{{ID: "o1", Features: []string{"a"}}},
	}

	clone := original.Clone()
	clone.SiteSettings.Features[0] = "changed"
	clone.Quests[0].Tags[0] = "changed"
	clone.Reviews[0].Reply.Text = "changed"
	clone.Offers[0].Features[0] = "changed"

	assert.Equal(t, "wifi", original.SiteSettings.Features[0])
	assert.Equal(t, "scary", original.Quests[0].Tags[0])
	assert.Equal(t, "thanks", original.Reviews[0].Reply.Text)
	assert.Equal(t, "a", original.Offers[0].Features[0])
}
