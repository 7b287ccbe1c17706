package dataset

import (
	"fmt"
	"math/rand"
	"strconv"

	"github.com/monastery360/api/internal/domain"
	"github.com/monastery360/api/internal/platform/textutil"
)

// generationSeed pins the pseudo-random extension so every process sees the
// same one hundred records.
const generationSeed = 1697

var generatedSects = []domain.Sect{
	domain.SectNyingma,
	domain.SectKagyu,
	domain.SectSakya,
	domain.SectGelug,
	domain.SectBon,
}

var generatedDistricts = []string{
	"East Sikkim", "West Sikkim", "North Sikkim", "South Sikkim",
}

var generatedTowns = []string{
	"Gangtok", "Pelling", "Yuksom", "Mangan", "Namchi", "Ravangla", "Geyzing",
	"Singtam", "Rangpo", "Jorethang", "Soreng", "Chungthang", "Lachen", "Lachung",
}

var generatedNames = []string{
	"Tashi Choling", "Drukpa Kagyu", "Sakya Tharpa", "Gelug Tharpa", "Bon Tharpa",
	"Karma Kagyu", "Drikung Kagyu", "Dzogchen", "Mindrolling", "Palpung",
	"Shechen", "Dzongsar", "Tsurphu", "Drepung", "Ganden", "Sera", "Tashilhunpo",
	"Samye", "Guru Lhakhang", "Pema Yangtse", "Rinchen Terdzo", "Khandro Sang",
	"Dakini Lhakhang", "Guru Rinpoche", "Padmasambhava", "Avalokiteshvara",
	"Manjushri", "Vajrapani", "Tara", "Medicine Buddha", "Amitabha", "Vajrasattva",
	"Vajradhara", "Samantabhadra", "Kshitigarbha", "Akashagarbha", "Sarvanivarana",
	"Ratnasambhava", "Amoghasiddhi", "Vairochana", "Akshobhya", "Bhaisajyaguru",
	"Maitreya", "Shakyamuni", "Dipankara", "Krakucchanda", "Kanakamuni", "Kashyapa",
}

// districtBounds jitters coordinates around each district's center so every
// generated point stays inside Sikkim.
var districtBounds = map[string]struct {
	lat, lng float64
}{
	"East Sikkim":  {lat: 27.3, lng: 88.6},
	"West Sikkim":  {lat: 27.3, lng: 88.2},
	"North Sikkim": {lat: 27.5, lng: 88.5},
	"South Sikkim": {lat: 27.2, lng: 88.3},
}

// generated produces the records with IDs firstID..lastID inclusive.
func generated(firstID, lastID int) []domain.Monastery {
	rng := rand.New(rand.NewSource(generationSeed))
	records := make([]domain.Monastery, 0, lastID-firstID+1)
	for id := firstID; id <= lastID; id++ {
		sect := generatedSects[rng.Intn(len(generatedSects))]
		district := generatedDistricts[rng.Intn(len(generatedDistricts))]
		town := generatedTowns[rng.Intn(len(generatedTowns))]
		name := fmt.Sprintf("%s %d", generatedNames[rng.Intn(len(generatedNames))], id)
		center := districtBounds[district]
		established := 1700 + rng.Intn(300)

		entryFee := "Free"
		if rng.Float64() > 0.7 {
			entryFee = "₹20"
		}

		m := domain.Monastery{
			ID:          id,
			Name:        name,
			Slug:        textutil.Slugify(name),
			Sect:        sect,
			District:    district,
			Location:    fmt.Sprintf("%s, %s", town, district),
			Established: strconv.Itoa(established),
			Coordinates: domain.Coordinates{
				Lat: center.lat + (rng.Float64()-0.5)*0.2,
				Lng: center.lng + (rng.Float64()-0.5)*0.1,
			},
			Description: fmt.Sprintf("A beautiful %s monastery in %s, known for its spiritual significance and traditional architecture.", sect, district),
			History:     fmt.Sprintf("Founded in %d, this monastery has been a center of %s teachings and practices.", established, sect),
			PrayerHall: domain.PrayerHall{
				Capacity:   40 + rng.Intn(100),
				Features:   []string{"Traditional architecture", "Sacred texts", "Prayer wheels", "Meditation hall"},
				Dimensions: fmt.Sprintf("%dm x %dm", 20+rng.Intn(20), 12+rng.Intn(12)),
			},
			Festivals: []domain.Festival{
				{Name: "Losar", Date: "February/March", Description: "Tibetan New Year celebration"},
				{Name: "Guru Rinpoche Day", Date: "July", Description: "Celebration of Padmasambhava's teachings"},
			},
			AudioGuide: map[string]string{
				"english": fmt.Sprintf("Welcome to %s, a sacred %s monastery in %s.", name, sect, district),
				"hindi":   fmt.Sprintf("%s में आपका स्वागत है, %s का एक पवित्र %s मठ।", name, district, sect),
				"nepali":  fmt.Sprintf("%sमा स्वागत छ, %sको एक पवित्र %s मठ।", name, district, sect),
			},
			Images: []string{
				"https://images.unsplash.com/photo-1544966503-7cc5ac882d5f?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1578662996442-48f60103fc96?w=800&h=600&fit=crop",
				"https://images.unsplash.com/photo-1587474260584-136574528ed5?w=800&h=600&fit=crop",
			},
			SpecialFeatures: []string{"Traditional architecture", "Sacred texts", "Peaceful setting", "Spiritual significance"},
			VisitingHours:   "6:00 AM - 6:00 PM",
			EntryFee:        entryFee,
			CreatedAt:       seededAt,
			UpdatedAt:       seededAt,
		}
		records = append(records, m)
	}
	return records
}
