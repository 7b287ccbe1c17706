package domain

import (
	"strings"
	"time"
)

// Sect enumerates the Buddhist traditions represented across Sikkim's monasteries.
type Sect string

const (
	// SectNyingma is the oldest of the major schools.
	SectNyingma Sect = "Nyingma"
	// SectKagyu covers the Karma Kagyu lineage seats such as Rumtek.
	SectKagyu Sect = "Kagyu"
	// SectSakya denotes the Sakya school.
	SectSakya Sect = "Sakya"
	// SectGelug denotes the Gelug school.
	SectGelug Sect = "Gelug"
	// SectBon covers pre-Buddhist Bon establishments.
	SectBon Sect = "Bon"
)

// Sects lists every recognised sect in canonical order.
func Sects() []Sect {
	return []Sect{SectNyingma, SectKagyu, SectSakya, SectGelug, SectBon}
}

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64
	Lng float64
}

// PrayerHall describes the main assembly hall of a monastery.
type PrayerHall struct {
	Capacity   int
	Features   []string
	Dimensions string
}

// Festival is one celebration on a monastery's calendar. All three fields
// are required on every entry.
type Festival struct {
	Name        string
	Date        string
	Description string
}

// Monastery is the central heritage record. IDs are small positive integers
// assigned by the curated dataset; slugs are derived from the name.
// Established is kept as a string because historical years are often
// approximate ("1700s") or span a range.
type Monastery struct {
	ID              int
	Slug            string
	Name            string
	Sect            Sect
	Location        string
	District        string
	Established     string
	Description     string
	History         string
	VisitingHours   string
	EntryFee        string
	Coordinates     Coordinates
	PrayerHall      PrayerHall
	Images          []string
	SpecialFeatures []string
	Featured        bool
	Festivals       []Festival
	AudioGuide      map[string]string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// HasFestival reports whether any festival name contains the fragment,
// compared case-insensitively.
func (m Monastery) HasFestival(fragment string) bool {
	fragment = strings.ToLower(fragment)
	for _, f := range m.Festivals {
		if strings.Contains(strings.ToLower(f.Name), fragment) {
			return true
		}
	}
	return false
}

// Artifact is a documented object held by a monastery.
type Artifact struct {
	ID          string
	MonasteryID int
	Name        string
	Category    string
	Description string
	Age         string
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Ritual is a recurring ceremony or practice tied to a monastery.
type Ritual struct {
	ID          string
	MonasteryID int
	Name        string
	Type        string
	Description string
	Timing      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// HistoricalRecord is an archival document associated with a monastery.
type HistoricalRecord struct {
	ID          string
	MonasteryID int
	Title       string
	Type        string
	Language    string
	Year        int
	Summary     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MediaObject describes an uploaded file served back through the media routes.
type MediaObject struct {
	Filename     string
	OriginalName string
	ContentType  string
	Size         int64
	URL          string
	UploadedBy   string
	UploadedAt   time.Time
}

// Role separates ordinary visitors from curators who may mutate records.
type Role string

const (
	// RoleUser is the default role granted at registration.
	RoleUser Role = "user"
	// RoleAdmin may create, update, and delete heritage records and media.
	RoleAdmin Role = "admin"
)

// User is a registered account. PasswordHash is a bcrypt digest and never
// leaves the repository/service layers.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// MonasteryFilter captures the composable list filters. Zero values mean
// "no constraint"; Featured uses a pointer so an explicit false still filters.
type MonasteryFilter struct {
	Search   string
	Sect     string
	District string
	Featured *bool
}

// ArtifactFilter narrows artifact listings.
type ArtifactFilter struct {
	MonasteryID int
	Category    string
	Search      string
}

// RitualFilter narrows ritual listings.
type RitualFilter struct {
	MonasteryID int
	Type        string
	Search      string
}

// HistoricalRecordFilter narrows record listings.
type HistoricalRecordFilter struct {
	MonasteryID int
	Type        string
	Language    string
	Search      string
}
