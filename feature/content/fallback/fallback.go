// Package fallback holds the bundled content snapshot the site renders from
// when the remote content store is unavailable or returns partial data.
//
// The snapshot is immutable: Clone returns an independent deep copy, so no
// caller can mutate the canonical dataset.
package fallback

import "quest-zone/feature/content/models"

var siteContent = models.SiteContent{
	SiteSettings: models.SiteSettings{
		ID:                models.DefaultSettingsID,
		Phone:             "+79898801694",
		PhoneDisplay:      "+7 (989) 880-16-94",
		WhatsappNumber:    "79898801694",
		Email:             "info@questzone.ru",
		City:              "Махачкала",
		Address:           "Махачкала, ул. Дахадаева, 4",
		AddressShort:      "ул. Дахадаева, 4",
		Floor:             "цокольный",
		OpenHour:          12,
		CloseHour:         23,
		OpenStatusText:    "Открыто",
		ClosedStatusText:  "Закрыто до 12:00",
		WorkHoursLabel:    "Ежедневно",
		WorkHours:         "12:00 — 23:00",
		LandmarkPrimary:   "Кумыкский театр — 104 м",
		LandmarkSecondary: "Такси от 80 ₽",
		HeroSubtitle:      "Квесты с актёрами в Махачкале",
		HeroDescription:   "Погрузитесь в мир кинематографического хоррора. Три уникальные локации. Максимальное напряжение.",
		HeroPrimaryCta:    "Выбрать квест",
		HeroSecondaryCta:  "Позвонить",
		RatingLabel:       "Рейтинг",
		RatingValue:       4.6,
		RatingVotesLabel:  "оценка",
		RatingVotes:       101,
		ReviewsCount:      40,
		GalleryCountLabel: "38 фото",
		MapEmbedUrl:       "https://yandex.ru/map-widget/v1/?ll=47.5047%2C42.9823&z=16&pt=47.5047%2C42.9823%2Cpm2rdl",
		YandexOrgUrl:      "https://yandex.ru/maps/org/quest_zone/...",
		Features: []string{
			"Оплата картой",
			"Парковка (бесплатная)",
			"Wi-Fi",
			"Предварительная запись",
			"Детский санузел",
			"Подарочный сертификат",
			"Для детей",
		},
		PaymentMethods: []string{"СБП", "QR-код", "Предоплата", "Наличные", "Банковский перевод", "Карта"},
	},
	Navigation: models.Navigation{
		Items: []models.NavItem{
			{Label: "Главная", Href: "#home"},
			{Label: "Квесты", Href: "#quests"},
			{Label: "Ночные игры", Href: "#night-games"},
			{Label: "Отзывы", Href: "#reviews"},
			{Label: "Акции", Href: "#offers"},
			{Label: "Контакты", Href: "#contacts"},
		},
	},
	Quests: []models.QuestItem{
		{
			ID:          "quest_regular_1",
			Category:    models.QuestCategoryRegular,
			Title:       "Пятница 13",
			Subtitle:    "Логово маньяка",
			Price:       4000,
			Duration:    "1 час",
			Players:     "2-6 чел",
			Difficulty:  4,
			Description: "Вы в логове маньяка Джейсона Вурхиза. Нужно добраться до последней комнаты и спасти жертву. Времени мало — он уже идёт за вами.",
			Image:       "https://images.unsplash.com/photo-1509248961158-e54f6934749c?w=800&q=80",
			Tags:        []string{"С актёром", "По фильму", "18+"},
			SortOrder:   1,
		},
		{
			ID:          "quest_regular_2",
			Category:    models.QuestCategoryRegular,
			Title:       "Корпус \"С\"",
			Subtitle:    "Психиатрическая больница",
			Price:       4000,
			Duration:    "1 час",
			Players:     "2-6 чел",
			Difficulty:  5,
			Description: "Команда репортёров под видом пациентов. Цель — найти доказательства жестоких экспериментов. Но всё сложнее, чем кажется.",
			Image:       "https://images.unsplash.com/photo-1519494026892-80bbd2d6fd0d?w=800&q=80",
			Tags:        []string{"С актёром", "Психологический", "16+"},
			SortOrder:   2,
		},
		{
			ID:          "quest_regular_3",
			Category:    models.QuestCategoryRegular,
			Title:       "Паразиты",
			Subtitle:    "Квартира 666",
			Price:       4000,
			Duration:    "1 час",
			Players:     "2-5 чел",
			Difficulty:  3,
			Description: "Заброшенная квартира. Алекс и дочь Мия. Нужно найти 3 газовых вентиля и установить правильно, чтобы прекратить страдания.",
			Image:       "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800&q=80",
			Tags:        []string{"Для новичков", "Загадки", "14+"},
			SortOrder:   3,
		},
		{
			ID:          "quest_night_1",
			Category:    models.QuestCategoryNight,
			Title:       "Пятница 13",
			Subtitle:    "Ночная игра",
			Price:       5000,
			Duration:    "1 час",
			Players:     "2-6 чел",
			Difficulty:  4,
			Description: "Ночью страх многократно усиливается. Тишина, темнота, и Джейсон совсем рядом.",
			Image:       "https://images.unsplash.com/photo-1519074069444-1ba4fff66d16?w=800&q=80",
			Tags:        []string{"Night Mode"},
			SortOrder:   4,
		},
		{
			ID:          "quest_night_2",
			Category:    models.QuestCategoryNight,
			Title:       "Корпус \"С\"",
			Subtitle:    "Ночная игра",
			Price:       5000,
			Duration:    "1 час",
			Players:     "2-6 чел",
			Difficulty:  5,
			Description: "Психиатрическая больница после заката. Звуки становятся громче, тени — длиннее.",
			Image:       "https://images.unsplash.com/photo-1499364615650-ec38552f4f34?w=800&q=80",
			Tags:        []string{"Night Mode"},
			SortOrder:   5,
		},
		{
			ID:          "quest_night_3",
			Category:    models.QuestCategoryNight,
			Title:       "Паразиты",
			Subtitle:    "Ночная игра",
			Price:       5000,
			Duration:    "1 час",
			Players:     "2-5 чел",
			Difficulty:  3,
			Description: "Квартира 666 в ночи. Газовые вентили скрываются в темноте, как и другие тайны.",
			Image:       "https://images.unsplash.com/photo-1505506874110-6a7a69069a08?w=800&q=80",
			Tags:        []string{"Night Mode"},
			SortOrder:   6,
		},
		{
			ID:          "quest_advanced_1",
			Category:    models.QuestCategoryAdvanced,
			Title:       "Пятница 13",
			Subtitle:    "Продвинутая версия",
			Price:       6000,
			Duration:    "1ч 30м",
			Players:     "2-6 чел",
			Difficulty:  5,
			Description: "Для тех, кто хочет максимального погружения: расширенная локация и более плотный сюжет.",
			Image:       "https://images.unsplash.com/photo-1509248961158-e54f6934749c?w=800&q=80",
			Tags:        []string{"Продвинутая"},
			SortOrder:   7,
		},
		{
			ID:          "quest_advanced_2",
			Category:    models.QuestCategoryAdvanced,
			Title:       "Корпус \"С\"",
			Subtitle:    "Продвинутая версия",
			Price:       6000,
			Duration:    "1ч 30м",
			Players:     "2-6 чел",
			Difficulty:  5,
			Description: "Больше загадок и дополнительные сцены для команд, готовых к более сложному прохождению.",
			Image:       "https://images.unsplash.com/photo-1519494026892-80bbd2d6fd0d?w=800&q=80",
			Tags:        []string{"Продвинутая"},
			SortOrder:   8,
		},
		{
			ID:          "quest_advanced_3",
			Category:    models.QuestCategoryAdvanced,
			Title:       "Паразиты",
			Subtitle:    "Продвинутая версия",
			Price:       6000,
			Duration:    "1ч 30м",
			Players:     "2-5 чел",
			Difficulty:  4,
			Description: "Усложнённые механики и дополнительная часть истории для более опытных игроков.",
			Image:       "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=800&q=80",
			Tags:        []string{"Продвинутая"},
			SortOrder:   9,
		},
	},
	Gallery: []models.GalleryItem{
		{
			ID:        "gallery_1",
			Url:       "https://images.unsplash.com/photo-1509248961158-e54f6934749c?w=1200&q=80",
			Alt:       "Интерьер квеста Пятница 13",
			Category:  "Интерьер",
			SortOrder: 1,
		},
		{
			ID:        "gallery_2",
			Url:       "https://images.unsplash.com/photo-1519494026892-80bbd2d6fd0d?w=1200&q=80",
			Alt:       "Коридор психиатрической больницы",
			Category:  "Корпус С",
			SortOrder: 2,
		},
		{
			ID:        "gallery_3",
			Url:       "https://images.unsplash.com/photo-1558618666-fcd25c85cd64?w=1200&q=80",
			Alt:       "Заброшенная квартира",
			Category:  "Паразиты",
			SortOrder: 3,
		},
		{
			ID:        "gallery_4",
			Url:       "https://images.unsplash.com/photo-1519074069444-1ba4fff66d16?w=1200&q=80",
			Alt:       "Атмосфера ночной игры",
			Category:  "Ночные игры",
			SortOrder: 4,
		},
		{
			ID:        "gallery_5",
			Url:       "https://images.unsplash.com/photo-1499364615650-ec38552f4f34?w=1200&q=80",
			Alt:       "Детали реквизита",
			Category:  "Реквизит",
			SortOrder: 5,
		},
		{
			ID:        "gallery_6",
			Url:       "https://images.unsplash.com/photo-1505506874110-6a7a69069a08?w=1200&q=80",
			Alt:       "Комната загадок",
			Category:  "Интерьер",
			SortOrder: 6,
		},
	},
	Reviews: []models.ReviewItem{
		{
			ID:        "review_1",
			Name:      "Магомед Магомедов",
			Date:      "15 сентября 2025",
			Rating:    5,
			Text:      "Выбрали \"Пятница 13\", взрослые и дети 13/12/8 — очень атмосферно, полное погружение, время пролетело, хотят вернуться на сложнее.",
			Quest:     "Пятница 13",
			Pinned:    true,
			SortOrder: 1,
		},
		{
			ID:        "review_2",
			Name:      "Гамид Г.",
			Date:      "12 мая 2025",
			Rating:    5,
			Text:      "Квест с Джейсоном Вурхизом — \"бомба\", актёр на уровне, держали в сюжете, попали на акцию +20 минут, но не успели спасти жертву.",
			Quest:     "Пятница 13",
			Pinned:    true,
			SortOrder: 2,
		},
		{
			ID:     "review_3",
			Name:   "Rustam D.",
			Date:   "8 мая 2025",
			Rating: 5,
			Text:   "День рождения сына, дети в восторге, актёры поздравили, устроили праздник. Спасибо за внимание к детям!",
			Quest:  "Паразиты",
			Pinned: true,
			Reply: &models.ReviewReply{
				Text: "Спасибо, важно чтобы юным гостям было безопасно, ждём снова!",
				Date: "24 мая 2025",
			},
			SortOrder: 3,
		},
		{
			ID:        "review_4",
			Name:      "Анна К.",
			Date:      "3 мая 2025",
			Rating:    5,
			Text:      "Отличный квест, очень атмосферно!",
			Quest:     "Корпус \"С\"",
			Pinned:    false,
			SortOrder: 4,
		},
		{
			ID:        "review_5",
			Name:      "Иbrahim M.",
			Date:      "28 апреля 2025",
			Rating:    4,
			Text:      "Хорошо, но хотелось бы больше загадок",
			Quest:     "Паразиты",
			Pinned:    false,
			SortOrder: 5,
		},
		{
			ID:        "review_6",
			Name:      "Семья Петровых",
			Date:      "20 апреля 2025",
			Rating:    5,
			Text:      "Прошли все три квеста, каждый уникален",
			Quest:     "Все квесты",
			Pinned:    false,
			SortOrder: 6,
		},
		{
			ID:        "review_7",
			Name:      "Команда \"Барс\"",
			Date:      "15 апреля 2025",
			Rating:    5,
			Text:      "Корпоратив прошёл на ура!",
			Quest:     "Пятница 13",
			Pinned:    false,
			SortOrder: 7,
		},
	},
	Offers: []models.OfferItem{
		{
			ID:          "offer_1",
			IconKey:     models.OfferIconGift,
			Title:       "Подарочный сертификат",
			Description: "Идеальный подарок для любителей острых ощущений. Сертификат на любую сумму или конкретный квест.",
			Price:       "от 2 000 ₽",
			Features:    []string{"Срок действия — 6 месяцев", "Можно использовать на любой квест", "Именной сертификат"},
			Popular:     false,
			SortOrder:   1,
		},
		{
			ID:          "offer_2",
			IconKey:     models.OfferIconCake,
			Title:       "День рождения в Quest Zone",
			Description: "Отпразднуйте день рождения незабываемо! Специальные условия для именинников.",
			Price:       "от 3 500 ₽",
			Features:    []string{"Скидка 10% имениннику", "Фото на память", "Поздравление от актёров", "Чай/кофе для компании"},
			Popular:     true,
			SortOrder:   2,
		},
		{
			ID:          "offer_3",
			IconKey:     models.OfferIconUsers,
			Title:       "Корпоративный квест",
			Description: "Командообразование через страх. Идеально для сплочения коллектива.",
			Price:       "от 15 000 ₽",
			Features:    []string{"До 20 участников", "Несколько квестов параллельно", "Фото/видео отчёт", "Переговорная для дебрифинга"},
			Popular:     false,
			SortOrder:   3,
		},
	},
	Booking: models.BookingConfig{
		TimeSlots:    []string{"12:00", "13:30", "15:00", "16:30", "18:00", "19:30", "21:00", "22:30"},
		PlayerCounts: []string{"2", "3", "4", "5", "6"},
		Faq: []models.FaqItem{
			{
				Q: "Можно ли с детьми?",
				A: "Да, у нас есть квесты для детей от 8 лет. Дети младше 14 лет должны быть в сопровождении взрослых.",
			},
			{
				Q: "Нужна ли предварительная запись?",
				A: "Да, обязательно. Запись принимается минимум за 2 часа до начала игры.",
			},
			{
				Q: "Какие способы оплаты?",
				A: "Принимаем наличные, карты, СБП, QR-коды и банковские переводы.",
			},
			{
				Q: "Можно ли с животными?",
				A: "К сожалению, нет. Посещение с животными запрещено.",
			},
			{
				Q: "Где вход?",
				A: "Вход находится на цокольном этаже. Ориентир — Кумыкский театр (104 м).",
			},
			{
				Q: "Есть ли парковка?",
				A: "Да, бесплатная парковка доступна для наших гостей.",
			},
		},
	},
	Footer: models.Footer{
		LinkGroups: []models.FooterLinkGroup{
			{
				Title: "Квесты",
				Links: []models.NavItem{
					{Label: "Пятница 13", Href: "#quests"},
					{Label: "Корпус \"С\"", Href: "#quests"},
					{Label: "Паразиты", Href: "#quests"},
					{Label: "Ночные игры", Href: "#night-games"},
				},
			},
			{
				Title: "Информация",
				Links: []models.NavItem{
					{Label: "Правила", Href: "#"},
					{Label: "FAQ", Href: "#booking"},
					{Label: "Подарочные сертификаты", Href: "#offers"},
					{Label: "Корпоративы", Href: "#offers"},
				},
			},
		},
	},
}

// Clone returns an independent deep copy of the bundled content snapshot.
func Clone() *models.SiteContent {
	return siteContent.Clone()
}
