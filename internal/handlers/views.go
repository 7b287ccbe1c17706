package handlers

import (
	"time"

	"github.com/monastery360/api/internal/domain"
	"github.com/monastery360/api/internal/services"
)

// View models decouple the wire format from the domain structs. Field names
// follow the camelCase convention of the public API.

type coordinatesView struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type prayerHallView struct {
	Capacity   int      `json:"capacity"`
	Features   []string `json:"features,omitempty"`
	Dimensions string   `json:"dimensions,omitempty"`
}

type festivalView struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Description string `json:"description"`
}

type monasteryView struct {
	ID              int               `json:"id"`
	Slug            string            `json:"slug"`
	Name            string            `json:"name"`
	Sect            string            `json:"sect"`
	Location        string            `json:"location"`
	District        string            `json:"district"`
	Established     string            `json:"established"`
	Description     string            `json:"description"`
	History         string            `json:"history,omitempty"`
	VisitingHours   string            `json:"visitingHours,omitempty"`
	EntryFee        string            `json:"entryFee,omitempty"`
	Coordinates     coordinatesView   `json:"coordinates"`
	PrayerHall      prayerHallView    `json:"prayerHall"`
	Images          []string          `json:"images,omitempty"`
	SpecialFeatures []string          `json:"specialFeatures,omitempty"`
	Featured        bool              `json:"featured"`
	Festivals       []festivalView    `json:"festivals,omitempty"`
	AudioGuide      map[string]string `json:"audioGuide,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

func newMonasteryView(m domain.Monastery) monasteryView {
	festivals := make([]festivalView, 0, len(m.Festivals))
	for _, f := range m.Festivals {
		festivals = append(festivals, festivalView{Name: f.Name, Date: f.Date, Description: f.Description})
	}
	return monasteryView{
		ID:            m.ID,
		Slug:          m.Slug,
		Name:          m.Name,
		Sect:          string(m.Sect),
		Location:      m.Location,
		District:      m.District,
		Established:   m.Established,
		Description:   m.Description,
		History:       m.History,
		VisitingHours: m.VisitingHours,
		EntryFee:      m.EntryFee,
		Coordinates:   coordinatesView{Lat: m.Coordinates.Lat, Lng: m.Coordinates.Lng},
		PrayerHall: prayerHallView{
			Capacity:   m.PrayerHall.Capacity,
			Features:   m.PrayerHall.Features,
			Dimensions: m.PrayerHall.Dimensions,
		},
		Images:          m.Images,
		SpecialFeatures: m.SpecialFeatures,
		Featured:        m.Featured,
		Festivals:       festivals,
		AudioGuide:      m.AudioGuide,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func newMonasteryViews(items []domain.Monastery) []monasteryView {
	views := make([]monasteryView, 0, len(items))
	for _, m := range items {
		views = append(views, newMonasteryView(m))
	}
	return views
}

type monasteryDetailView struct {
	monasteryView
	Documentation services.DocumentationCounts `json:"documentation"`
}

func newMonasteryDetailView(d services.MonasteryDetail) monasteryDetailView {
	return monasteryDetailView{
		monasteryView: newMonasteryView(d.Monastery),
		Documentation: d.Counts,
	}
}

type artifactView struct {
	ID          string    `json:"id"`
	MonasteryID int       `json:"monasteryId"`
	Name        string    `json:"name"`
	Category    string    `json:"category"`
	Description string    `json:"description,omitempty"`
	Age         string    `json:"age,omitempty"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newArtifactView(a domain.Artifact) artifactView {
	return artifactView{
		ID:          a.ID,
		MonasteryID: a.MonasteryID,
		Name:        a.Name,
		Category:    a.Category,
		Description: a.Description,
		Age:         a.Age,
		ImageURL:    a.ImageURL,
		CreatedAt:   a.CreatedAt,
		UpdatedAt:   a.UpdatedAt,
	}
}

func newArtifactViews(items []domain.Artifact) []artifactView {
	views := make([]artifactView, 0, len(items))
	for _, a := range items {
		views = append(views, newArtifactView(a))
	}
	return views
}

type ritualView struct {
	ID          string    `json:"id"`
	MonasteryID int       `json:"monasteryId"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Description string    `json:"description,omitempty"`
	Timing      string    `json:"timing,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newRitualView(r domain.Ritual) ritualView {
	return ritualView{
		ID:          r.ID,
		MonasteryID: r.MonasteryID,
		Name:        r.Name,
		Type:        r.Type,
		Description: r.Description,
		Timing:      r.Timing,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func newRitualViews(items []domain.Ritual) []ritualView {
	views := make([]ritualView, 0, len(items))
	for _, r := range items {
		views = append(views, newRitualView(r))
	}
	return views
}

type historicalRecordView struct {
	ID          string    `json:"id"`
	MonasteryID int       `json:"monasteryId"`
	Title       string    `json:"title"`
	Type        string    `json:"type"`
	Language    string    `json:"language,omitempty"`
	Year        int       `json:"year,omitempty"`
	Summary     string    `json:"summary,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func newHistoricalRecordView(r domain.HistoricalRecord) historicalRecordView {
	return historicalRecordView{
		ID:          r.ID,
		MonasteryID: r.MonasteryID,
		Title:       r.Title,
		Type:        r.Type,
		Language:    r.Language,
		Year:        r.Year,
		Summary:     r.Summary,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func newHistoricalRecordViews(items []domain.HistoricalRecord) []historicalRecordView {
	views := make([]historicalRecordView, 0, len(items))
	for _, r := range items {
		views = append(views, newHistoricalRecordView(r))
	}
	return views
}

type userView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func newUserView(u domain.User) userView {
	return userView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
	}
}

type sessionView struct {
	User         userView  `json:"user"`
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

func newSessionView(s services.AuthSession) sessionView {
	return sessionView{
		User:         newUserView(s.User),
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		ExpiresAt:    s.ExpiresAt,
	}
}

type mediaObjectView struct {
	Filename     string    `json:"filename"`
	OriginalName string    `json:"originalName"`
	ContentType  string    `json:"contentType"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	UploadedAt   time.Time `json:"uploadedAt"`
}

func newMediaObjectView(m domain.MediaObject) mediaObjectView {
	return mediaObjectView{
		Filename:     m.Filename,
		OriginalName: m.OriginalName,
		ContentType:  m.ContentType,
		Size:         m.Size,
		URL:          m.URL,
		UploadedAt:   m.UploadedAt,
	}
}

func newMediaObjectViews(items []domain.MediaObject) []mediaObjectView {
	views := make([]mediaObjectView, 0, len(items))
	for _, m := range items {
		views = append(views, newMediaObjectView(m))
	}
	return views
}
