// Package dataset holds the embedded Sikkim monastery corpus: fifteen curated
// records plus a deterministic generated extension to one hundred entries.
// It seeds the in-memory repositories and provides fixtures for tests.
package dataset

import (
	"time"

	"github.com/monastery360/api/internal/domain"
	"github.com/monastery360/api/internal/platform/textutil"
)

// seededAt is the fixed creation timestamp stamped on every generated record
// so repeated loads produce identical data.
var seededAt = time.Date(2024, time.January, 15, 6, 0, 0, 0, time.UTC)

// Curated returns the fifteen hand-maintained monastery records.
func Curated() []domain.Monastery {
	records := curatedMonasteries()
	for i := range records {
		finalize(&records[i])
	}
	return records
}

// All returns the complete corpus of one hundred monasteries: the curated
// records followed by the generated extension. The result is freshly
// allocated on each call so callers may mutate it.
func All() []domain.Monastery {
	records := Curated()
	records = append(records, generated(len(records)+1, 100)...)
	return records
}

func finalize(m *domain.Monastery) {
	if m.Slug == "" {
		m.Slug = textutil.Slugify(m.Name)
	}
	m.AudioGuide = textutil.NormalizeStringMap(m.AudioGuide)
	if m.CreatedAt.IsZero() {
		m.CreatedAt = seededAt
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = seededAt
	}
}

func curatedMonasteries() []domain.Monastery {
	return []domain.Monastery{
		{
			ID:          1,
			Name:        "Rumtek Monastery",
			Sect:        domain.SectKagyu,
			District:    "East Sikkim",
			Location:    "Rumtek, Gangtok",
			Established: "1966",
			Coordinates: domain.Coordinates{Lat: 27.3019, Lng: 88.6019},
			Description: "Rumtek Monastery, also known as the Dharmachakra Centre, is one of the most important monasteries in Sikkim. It serves as the seat of the Karmapa, the head of the Karma Kagyu school of Tibetan Buddhism.",
			History:     "Originally built in the 16th century, the monastery was rebuilt in 1966 by the 16th Karmapa, Rangjung Rigpe Dorje, after he fled Tibet. The monastery houses many precious artifacts and serves as a major center for Buddhist learning.",
			PrayerHall: domain.PrayerHall{
				Capacity:   200,
				Features:   []string{"Golden stupa", "Ancient thangkas", "Sacred relics", "Prayer wheels"},
				Dimensions: "40m x 30m",
			},
			Festivals: []domain.Festival{
				{Name: "Losar", Date: "February/March", Description: "Tibetan New Year celebration with traditional dances and prayers"},
				{Name: "Saga Dawa", Date: "May/June", Description: "Commemoration of Buddha's birth, enlightenment, and parinirvana"},
				{Name: "Guru Rinpoche Day", Date: "July", Description: "Celebration of Padmasambhava's birth"},
			},
			AudioGuide: map[string]string{
				"english": "Welcome to Rumtek Monastery, the spiritual heart of Sikkim's Kagyu tradition...",
				"hindi":   "रुमटेक मठ में आपका स्वागत है, सिक्किम की काग्यू परंपरा का आध्यात्मिक केंद्र...",
				"nepali":  "रुमटेक मठमा स्वागत छ, सिक्किमको काग्यू परंपराको आध्यात्मिक केन्द्र...",
			},
			Images: []string{
				"https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1587474260584-136574528ed5?w=800&h=600&fit=crop",
			},
			SpecialFeatures: []string{"Golden stupa", "Ancient manuscripts", "Sacred relics", "Monastic school"},
			VisitingHours:   "6:00 AM - 6:00 PM",
			EntryFee:        "Free",
			Featured:        true,
		},
		{
			ID:          2,
			Name:        "Pemayangtse Monastery",
			Sect:        domain.SectNyingma,
			District:    "West Sikkim",
			Location:    "Pemayangtse, Pelling",
			Established: "1705",
			Coordinates: domain.Coordinates{Lat: 27.3019, Lng: 88.2381},
			Description: "Pemayangtse Monastery is one of the oldest and most important monasteries of the Nyingma sect in Sikkim. It offers breathtaking views of the Kanchenjunga range.",
			History:     "Founded by Lhatsun Chenpo in 1705, this monastery was the seat of the Chogyal (king) of Sikkim. It has been a center of learning and spirituality for over 300 years.",
			PrayerHall: domain.PrayerHall{
				Capacity:   150,
				Features:   []string{"Seven-tiered wooden structure", "Ancient murals", "Sacred texts", "Prayer flags"},
				Dimensions: "35m x 25m",
			},
			Festivals: []domain.Festival{
				{Name: "Cham Dance Festival", Date: "February", Description: "Traditional masked dance performance by monks"},
				{Name: "Guru Padmasambhava Day", Date: "July", Description: "Celebration of the great master's teachings"},
			},
			AudioGuide: map[string]string{
				"english": "Pemayangtse Monastery stands as a testament to Sikkim's rich Buddhist heritage...",
				"hindi":   "पेमायंगत्से मठ सिक्किम की समृद्ध बौद्ध विरासत का प्रमाण है...",
				"nepali":  "पेमायंगत्से मठ सिक्किमको समृद्ध बौद्ध विरासतको प्रमाण हो...",
			},
			Images: []string{
				"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1587474260584-136574528ed5?w=800&h=600&fit=crop",
			},
			SpecialFeatures: []string{"Kanchenjunga view", "Ancient architecture", "Sacred texts", "Monastic education"},
			VisitingHours:   "6:00 AM - 6:00 PM",
			EntryFee:        "₹20",
			Featured:        true,
		},
		{
			ID:          3,
			Name:        "Tashiding Monastery",
			Sect:        domain.SectNyingma,
			District:    "West Sikkim",
			Location:    "Tashiding, Yuksom",
			Established: "1641",
			Coordinates: domain.Coordinates{Lat: 27.3667, Lng: 88.2167},
			Description: "Tashiding Monastery is considered one of the most sacred monasteries in Sikkim, known for its annual Bumchu festival where the sacred water is distributed to devotees.",
			History:     "Founded by Ngadak Sempa Chempo Phunshok Rigzing, this monastery is believed to be blessed by Guru Padmasambhava himself. It's considered the 'Heart of Sikkim'.",
			PrayerHall: domain.PrayerHall{
				Capacity:   100,
				Features:   []string{"Sacred Bumchu vessel", "Ancient thangkas", "Prayer wheels", "Sacred relics"},
				Dimensions: "30m x 20m",
			},
			Festivals: []domain.Festival{
				{Name: "Bumchu Festival", Date: "January/February", Description: "Sacred water ceremony where the level of water predicts the year's fortune"},
				{Name: "Guru Rinpoche Day", Date: "July", Description: "Celebration of Padmasambhava's teachings and blessings"},
			},
			AudioGuide: map[string]string{
				"english": "Tashiding Monastery holds the sacred Bumchu vessel, a treasure of Sikkim...",
				"hindi":   "ताशिडिंग मठ में पवित्र बुमचू पात्र है, जो सिक्किम का खजाना है...",
				"nepali":  "ताशिडिंग मठमा पवित्र बुमचू पात्र छ, जुन सिक्किमको खजाना हो...",
			},
			Images: []string{
				"https://images.unsplash.com/photo-1587474260584-136574528ed5?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=600&fit=crop",
			},
			SpecialFeatures: []string{"Sacred Bumchu", "Heart of Sikkim", "Ancient blessings", "Pilgrimage site"},
			VisitingHours:   "6:00 AM - 6:00 PM",
			EntryFee:        "Free",
			Featured:        true,
		},
		{
			ID:          4,
			Name:        "Enchey Monastery",
			Sect:        domain.SectNyingma,
			District:    "East Sikkim",
			Location:    "Enchey, Gangtok",
			Established: "1909",
			Coordinates: domain.Coordinates{Lat: 27.3333, Lng: 88.6167},
			Description: "Enchey Monastery is a beautiful monastery located on a hilltop in Gangtok, known for its annual Chaam dance festival and stunning architecture.",
			History:     "Built in 1909 by Lama Drupthob Karpo, this monastery is believed to be blessed by the flying lama. The name 'Enchey' means 'solitary temple'.",
			PrayerHall: domain.PrayerHall{
				Capacity:   120,
				Features:   []string{"Traditional architecture", "Sacred murals", "Prayer wheels", "Monastic quarters"},
				Dimensions: "32m x 22m",
			},
			Festivals: []domain.Festival{
				{Name: "Chaam Dance Festival", Date: "December/January", Description: "Traditional masked dance performance with elaborate costumes"},
				{Name: "Losar", Date: "February/March", Description: "Tibetan New Year celebration"},
			},
			AudioGuide: map[string]string{
				"english": "Enchey Monastery offers a peaceful retreat in the heart of Gangtok...",
				"hindi":   "एंचे मठ गंगटोक के केंद्र में एक शांतिपूर्ण आश्रय प्रदान करता है...",
				"nepali":  "एंचे मठ गंगटोकको केन्द्रमा शान्तिपूर्ण आश्रय प्रदान गर्छ...",
			},
			Images: []string{
				"https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1587474260584-136574528ed5?w=800&h=600&fit=crop",
			},
			SpecialFeatures: []string{"Hilltop location", "Chaam dance", "Traditional architecture", "City views"},
			VisitingHours:   "6:00 AM - 6:00 PM",
			EntryFee:        "Free",
			Featured:        true,
		},
		{
			ID:          5,
			Name:        "Phodong Monastery",
			Sect:        domain.SectKagyu,
			District:    "North Sikkim",
			Location:    "Phodong, Mangan",
			Established: "1740",
			Coordinates: domain.Coordinates{Lat: 27.5167, Lng: 88.5333},
			Description: "Phodong Monastery is one of the six major monasteries of Sikkim, known for its beautiful murals and traditional Kagyu teachings.",
			History:     "Founded in 1740 by Chogyal Gyurmed Namgyal, this monastery has been a center of Kagyu teachings and practices for centuries.",
			PrayerHall: domain.PrayerHall{
				Capacity:   80,
				Features:   []string{"Ancient murals", "Sacred texts", "Prayer wheels", "Monastic school"},
				Dimensions: "28m x 18m",
			},
			Festivals: []domain.Festival{
				{Name: "Losar", Date: "February/March", Description: "Tibetan New Year celebration"},
				{Name: "Guru Rinpoche Day", Date: "July", Description: "Celebration of Padmasambhava"},
			},
			AudioGuide: map[string]string{
				"english": "Phodong Monastery preserves the ancient Kagyu traditions of Sikkim...",
				"hindi":   "फोडोंग मठ सिक्किम की प्राचीन काग्यू परंपराओं को संरक्षित करता है...",
				"nepali":  "फोडोंग मठ सिक्किमको प्राचीन काग्यू परंपराहरू संरक्षित गर्छ...",
			},
			Images: []string{
				"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1587474260584-136574528ed5?w=800&h=600&fit=crop",
			},
			SpecialFeatures: []string{"Ancient murals", "Kagyu teachings", "Traditional architecture", "Monastic education"},
			VisitingHours:   "6:00 AM - 6:00 PM",
			EntryFee:        "Free",
		},
		{
			ID:          6,
			Name:        "Labrang Monastery",
			Sect:        domain.SectGelug,
			District:    "East Sikkim",
			Location:    "Labrang, Gangtok",
			Established: "1950",
			Coordinates: domain.Coordinates{Lat: 27.3167, Lng: 88.6},
			Description: "Labrang Monastery is a Gelug sect monastery known for its strict monastic discipline and scholarly traditions.",
			History:     "Established in 1950, this monastery follows the Gelug tradition and is known for its emphasis on philosophical studies and meditation practices.",
			PrayerHall: domain.PrayerHall{
				Capacity:   60,
				Features:   []string{"Scholarly texts", "Meditation hall", "Prayer wheels", "Study rooms"},
				Dimensions: "25m x 15m",
			},
			Festivals: []domain.Festival{
				{Name: "Monlam Chenmo", Date: "January/February", Description: "Great Prayer Festival with extensive prayers and teachings"},
				{Name: "Losar", Date: "February/March", Description: "Tibetan New Year celebration"},
			},
			AudioGuide: map[string]string{
				"english": "Labrang Monastery is a center of Gelug scholarship and meditation...",
				"hindi":   "लाबरंग मठ गेलुग विद्वता और ध्यान का केंद्र है...",
				"nepali":  "लाबरंग मठ गेलुग विद्वता र ध्यानको केन्द्र हो...",
			},
			Images: []string{
				"https://images.unsplash.com/photo-1587474260584-136574528ed5?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=600&fit=crop",
			},
			SpecialFeatures: []string{"Gelug tradition", "Scholarly focus", "Meditation practices", "Philosophical studies"},
			VisitingHours:   "6:00 AM - 6:00 PM",
			EntryFee:        "Free",
		},
		{
			ID:          7,
			Name:        "Ralang Monastery",
			Sect:        domain.SectKagyu,
			District:    "South Sikkim",
			Location:    "Ralang, Ravangla",
			Established: "1768",
			Coordinates: domain.Coordinates{Lat: 27.3167, Lng: 88.35},
			Description: "Ralang Monastery is a beautiful Kagyu monastery known for its annual Pang Lhabsol festival and stunning mountain views.",
			History:     "Founded in 1768, this monastery has been a center of Kagyu teachings and is known for its beautiful architecture and peaceful surroundings.",
			PrayerHall: domain.PrayerHall{
				Capacity:   100,
				Features:   []string{"Mountain views", "Traditional architecture", "Sacred texts", "Prayer wheels"},
				Dimensions: "30m x 20m",
			},
			Festivals: []domain.Festival{
				{Name: "Pang Lhabsol", Date: "August/September", Description: "Festival honoring Mount Kanchenjunga as the guardian deity"},
				{Name: "Losar", Date: "February/March", Description: "Tibetan New Year celebration"},
			},
			AudioGuide: map[string]string{
				"english": "Ralang Monastery offers breathtaking views and spiritual tranquility...",
				"hindi":   "रालंग मठ मनोरम दृश्य और आध्यात्मिक शांति प्रदान करता है...",
				"nepali":  "रालंग मठ मनोरम दृश्य र आध्यात्मिक शान्ति प्रदान गर्छ...",
			},
			Images: []string{
				"https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1587474260584-136574528ed5?w=800&h=600&fit=crop",
			},
			SpecialFeatures: []string{"Mountain views", "Pang Lhabsol festival", "Peaceful setting", "Traditional architecture"},
			VisitingHours:   "6:00 AM - 6:00 PM",
			EntryFee:        "Free",
			Featured:        true,
		},
		{
			ID:          8,
			Name:        "Dubdi Monastery",
			Sect:        domain.SectNyingma,
			District:    "West Sikkim",
			Location:    "Dubdi, Yuksom",
			Established: "1701",
			Coordinates: domain.Coordinates{Lat: 27.3667, Lng: 88.2167},
			Description: "Dubdi Monastery is the oldest monastery in Sikkim, established by Lhatsun Chenpo. It's located on a hilltop and offers panoramic views.",
			History:     "Built in 1701, this monastery was the first to be established in Sikkim and holds great historical significance. It's also known as the 'Hermit's Cell'.",
			PrayerHall: domain.PrayerHall{
				Capacity:   40,
				Features:   []string{"Historical significance", "Hilltop location", "Ancient texts", "Sacred relics"},
				Dimensions: "20m x 15m",
			},
			Festivals: []domain.Festival{
				{Name: "Foundation Day", Date: "March", Description: "Celebration of the monastery's establishment"},
				{Name: "Guru Rinpoche Day", Date: "July", Description: "Honoring Padmasambhava's teachings"},
			},
			AudioGuide: map[string]string{
				"english": "Dubdi Monastery stands as the first spiritual foundation of Sikkim...",
				"hindi":   "दुबडी मठ सिक्किम की पहली आध्यात्मिक नींव के रूप में खड़ा है...",
				"nepali":  "दुबडी मठ सिक्किमको पहिलो आध्यात्मिक नींवको रूपमा खडा छ...",
			},
			Images: []string{
				"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1587474260584-136574528ed5?w=800&h=600&fit=crop",
			},
			SpecialFeatures: []string{"Oldest monastery", "Historical significance", "Hilltop views", "Hermit's cell"},
			VisitingHours:   "6:00 AM - 6:00 PM",
			EntryFee:        "Free",
			Featured:        true,
		},
		{
			ID:          9,
			Name:        "Sanga Choeling Monastery",
			Sect:        domain.SectNyingma,
			District:    "West Sikkim",
			Location:    "Sanga Choeling, Pelling",
			Established: "1697",
			Coordinates: domain.Coordinates{Lat: 27.2833, Lng: 88.2167},
			Description: "Sanga Choeling Monastery is one of the oldest monasteries in Sikkim, known for its beautiful location and traditional architecture.",
			History:     "Founded in 1697 by Lhatsun Chenpo, this monastery has been a center of Nyingma teachings and practices for over 300 years.",
			PrayerHall: domain.PrayerHall{
				Capacity:   70,
				Features:   []string{"Traditional architecture", "Ancient murals", "Sacred texts", "Prayer wheels"},
				Dimensions: "26m x 16m",
			},
			Festivals: []domain.Festival{
				{Name: "Losar", Date: "February/March", Description: "Tibetan New Year celebration"},
				{Name: "Guru Padmasambhava Day", Date: "July", Description: "Celebration of the great master"},
			},
			AudioGuide: map[string]string{
				"english": "Sanga Choeling Monastery preserves centuries of Buddhist wisdom...",
				"hindi":   "संगा चोलिंग मठ सदियों की बौद्ध ज्ञान को संरक्षित करता है...",
				"nepali":  "संगा चोलिंग मठ सदियोंको बौद्ध ज्ञान संरक्षित गर्छ...",
			},
			Images: []string{
				"https://images.unsplash.com/photo-1587474260584-136574528ed5?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=600&fit=crop",
			},
			SpecialFeatures: []string{"Ancient architecture", "Traditional murals", "Sacred texts", "Peaceful setting"},
			VisitingHours:   "6:00 AM - 6:00 PM",
			EntryFee:        "Free",
		},
		{
			ID:          10,
			Name:        "Karma Kagyu Monastery",
			Sect:        domain.SectKagyu,
			District:    "East Sikkim",
			Location:    "Karma Kagyu, Gangtok",
			Established: "1960",
			Coordinates: domain.Coordinates{Lat: 27.3333, Lng: 88.6167},
			Description: "Karma Kagyu Monastery is a modern monastery following the Karma Kagyu tradition, known for its active community involvement.",
			History:     "Established in 1960, this monastery has been actively involved in community service and Buddhist education programs.",
			PrayerHall: domain.PrayerHall{
				Capacity:   90,
				Features:   []string{"Modern facilities", "Community programs", "Educational center", "Prayer wheels"},
				Dimensions: "28m x 18m",
			},
			Festivals: []domain.Festival{
				{Name: "Kagyu Monlam", Date: "December/January", Description: "Great prayer festival of the Kagyu tradition"},
				{Name: "Losar", Date: "February/March", Description: "Tibetan New Year celebration"},
			},
			AudioGuide: map[string]string{
				"english": "Karma Kagyu Monastery bridges tradition with modern community service...",
				"hindi":   "कर्म काग्यू मठ परंपरा को आधुनिक समुदाय सेवा के साथ जोड़ता है...",
				"nepali":  "कर्म काग्यू मठ परंपरालाई आधुनिक समुदाय सेवासँग जोड्छ...",
			},
			Images: []string{
				"https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1587474260584-136574528ed5?w=800&h=600&fit=crop",
			},
			SpecialFeatures: []string{"Modern facilities", "Community service", "Educational programs", "Active involvement"},
			VisitingHours:   "6:00 AM - 6:00 PM",
			EntryFee:        "Free",
		},
		{
			ID:          11,
			Name:        "Lingdum Monastery",
			Sect:        domain.SectKagyu,
			District:    "East Sikkim",
			Location:    "Lingdum, Gangtok",
			Established: "1990",
			Coordinates: domain.Coordinates{Lat: 27.35, Lng: 88.65},
			Description: "A modern monastery with beautiful architecture and peaceful surroundings.",
			History:     "Built in 1990, this monastery serves as a center for Buddhist education and meditation.",
			PrayerHall: domain.PrayerHall{
				Capacity:   80,
				Features:   []string{"Modern architecture", "Meditation hall", "Library"},
				Dimensions: "25m x 15m",
			},
			Festivals: []domain.Festival{
				{Name: "Losar", Date: "February/March", Description: "Tibetan New Year"},
			},
			AudioGuide: map[string]string{
				"english": "Lingdum Monastery offers modern facilities for spiritual practice.",
				"hindi":   "लिंगडम मठ आध्यात्मिक अभ्यास के लिए आधुनिक सुविधाएं प्रदान करता है।",
				"nepali":  "लिंगडम मठ आध्यात्मिक अभ्यासका लागि आधुनिक सुविधाहरू प्रदान गर्छ।",
			},
			Images: []string{
				"https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?w=800&h=600&fit=crop",
			},
			SpecialFeatures: []string{"Modern architecture", "Meditation center", "Educational programs"},
			VisitingHours:   "6:00 AM - 6:00 PM",
			EntryFee:        "Free",
		},
		{
			ID:          12,
			Name:        "Tendong Monastery",
			Sect:        domain.SectNyingma,
			District:    "South Sikkim",
			Location:    "Tendong, Namchi",
			Established: "1721",
			Coordinates: domain.Coordinates{Lat: 27.1667, Lng: 88.35},
			Description: "A historic monastery known for its traditional architecture and spiritual significance.",
			History:     "Established in 1721, this monastery has been a center of Nyingma teachings.",
			PrayerHall: domain.PrayerHall{
				Capacity:   60,
				Features:   []string{"Traditional architecture", "Ancient texts"},
				Dimensions: "22m x 14m",
			},
			Festivals: []domain.Festival{
				{Name: "Guru Rinpoche Day", Date: "July", Description: "Celebration of Padmasambhava"},
			},
			AudioGuide: map[string]string{
				"english": "Tendong Monastery preserves ancient Buddhist traditions.",
				"hindi":   "टेंडोंग मठ प्राचीन बौद्ध परंपराओं को संरक्षित करता है।",
				"nepali":  "टेंडोंग मठ प्राचीन बौद्ध परंपराहरू संरक्षित गर्छ।",
			},
			Images: []string{
				"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=600&fit=crop",
			},
			SpecialFeatures: []string{"Traditional architecture", "Ancient texts", "Spiritual significance"},
			VisitingHours:   "6:00 AM - 6:00 PM",
			EntryFee:        "Free",
		},
		{
			ID:          13,
			Name:        "Rinchenpong Monastery",
			Sect:        domain.SectKagyu,
			District:    "West Sikkim",
			Location:    "Rinchenpong, Geyzing",
			Established: "1730",
			Coordinates: domain.Coordinates{Lat: 27.2833, Lng: 88.2667},
			Description: "A beautiful monastery with stunning mountain views and traditional architecture.",
			History:     "Founded in 1730, this monastery has been a center of Kagyu teachings.",
			PrayerHall: domain.PrayerHall{
				Capacity:   70,
				Features:   []string{"Mountain views", "Traditional architecture"},
				Dimensions: "24m x 16m",
			},
			Festivals: []domain.Festival{
				{Name: "Losar", Date: "February/March", Description: "Tibetan New Year"},
			},
			AudioGuide: map[string]string{
				"english": "Rinchenpong Monastery offers breathtaking mountain views.",
				"hindi":   "रिंचेनपोंग मठ मनोरम पहाड़ी दृश्य प्रदान करता है।",
				"nepali":  "रिंचेनपोंग मठ मनोरम पहाडी दृश्य प्रदान गर्छ।",
			},
			Images: []string{
				"https://images.unsplash.com/photo-1587474260584-136574528ed5?w=800&h=600&fit=crop",
			},
			SpecialFeatures: []string{"Mountain views", "Traditional architecture", "Peaceful setting"},
			VisitingHours:   "6:00 AM - 6:00 PM",
			EntryFee:        "Free",
		},
		{
			ID:          14,
			Name:        "Khecheopalri Monastery",
			Sect:        domain.SectNyingma,
			District:    "West Sikkim",
			Location:    "Khecheopalri, Yuksom",
			Established: "1700",
			Coordinates: domain.Coordinates{Lat: 27.3667, Lng: 88.2167},
			Description: "A sacred monastery near the holy Khecheopalri Lake, known for its spiritual significance.",
			History:     "Established in 1700, this monastery is closely associated with the sacred Khecheopalri Lake.",
			PrayerHall: domain.PrayerHall{
				Capacity:   50,
				Features:   []string{"Sacred lake proximity", "Traditional architecture"},
				Dimensions: "20m x 12m",
			},
			Festivals: []domain.Festival{
				{Name: "Lake Festival", Date: "March", Description: "Celebration of the sacred lake"},
			},
			AudioGuide: map[string]string{
				"english": "Khecheopalri Monastery is blessed by the sacred lake.",
				"hindi":   "खेचोपालरी मठ पवित्र झील से आशीर्वादित है।",
				"nepali":  "खेचोपालरी मठ पवित्र तालबाट आशीर्वादित छ।",
			},
			Images: []string{
				"https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?w=800&h=600&fit=crop",
			},
			SpecialFeatures: []string{"Sacred lake", "Traditional architecture", "Spiritual significance"},
			VisitingHours:   "6:00 AM - 6:00 PM",
			EntryFee:        "Free",
		},
		{
			ID:          15,
			Name:        "Namchi Monastery",
			Sect:        domain.SectGelug,
			District:    "South Sikkim",
			Location:    "Namchi, Namchi",
			Established: "1950",
			Coordinates: domain.Coordinates{Lat: 27.1667, Lng: 88.35},
			Description: "A modern Gelug monastery known for its educational programs and community service.",
			History:     "Established in 1950, this monastery focuses on Gelug teachings and community development.",
			PrayerHall: domain.PrayerHall{
				Capacity:   80,
				Features:   []string{"Educational programs", "Community service"},
				Dimensions: "26m x 16m",
			},
			Festivals: []domain.Festival{
				{Name: "Monlam Chenmo", Date: "January/February", Description: "Great Prayer Festival"},
			},
			AudioGuide: map[string]string{
				"english": "Namchi Monastery serves the community through education and service.",
				"hindi":   "नामची मठ शिक्षा और सेवा के माध्यम से समुदाय की सेवा करता है।",
				"nepali":  "नामची मठ शिक्षा र सेवाको माध्यमबाट समुदायको सेवा गर्छ।",
			},
			Images: []string{
				"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=600&fit=crop",
			},
			SpecialFeatures: []string{"Educational programs", "Community service", "Gelug tradition"},
			VisitingHours:   "6:00 AM - 6:00 PM",
			EntryFee:        "Free",
		},
	}
}
