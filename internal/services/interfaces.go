// Package services holds the application layer: validation, authorisation
// rules, and the visitor-facing features (search, chat, map, audio guide)
// on top of the repository and platform packages.
package services

import (
	"context"
	"time"

	"github.com/monastery360/api/internal/domain"
	"github.com/monastery360/api/internal/platform/pagination"
)

// MonasteryList bundles a page of monasteries with the total match count.
type MonasteryList struct {
	Items []domain.Monastery
	Total int
}

// MonasteryDetail is a monastery together with its documentation counts.
type MonasteryDetail struct {
	Monastery domain.Monastery
	Counts    DocumentationCounts
}

// DocumentationCounts summarises the documentation attached to a monastery.
type DocumentationCounts struct {
	Artifacts         int `json:"artifacts"`
	Rituals           int `json:"rituals"`
	HistoricalRecords int `json:"historicalRecords"`
}

// PrayerHallInput carries the writable prayer hall fields.
type PrayerHallInput struct {
	Capacity   int
	Features   []string
	Dimensions string
}

// FestivalInput carries one festival entry; name, date, and description are
// all required.
type FestivalInput struct {
	Name        string
	Date        string
	Description string
}

// MonasteryInput carries the writable monastery fields for create and update.
// Nil pointer and slice fields leave the existing value untouched on update.
type MonasteryInput struct {
	Name            string
	Sect            string
	Location        string
	District        string
	Established     string
	Description     string
	History         string
	VisitingHours   string
	EntryFee        string
	Latitude        *float64
	Longitude       *float64
	PrayerHall      *PrayerHallInput
	Images          []string
	SpecialFeatures []string
	Featured        *bool
	Festivals       []FestivalInput
	AudioGuide      map[string]string
}

// MonasteryService exposes monastery listing, lookup, and admin CRUD.
type MonasteryService interface {
	List(ctx context.Context, filter domain.MonasteryFilter, page pagination.Params) (MonasteryList, error)
	Get(ctx context.Context, id int) (MonasteryDetail, error)
	GetBySlug(ctx context.Context, slug string) (MonasteryDetail, error)
	Featured(ctx context.Context) ([]domain.Monastery, error)
	Search(ctx context.Context, query string, limit int) ([]domain.Monastery, error)
	Create(ctx context.Context, input MonasteryInput) (domain.Monastery, error)
	Update(ctx context.Context, id int, input MonasteryInput) (domain.Monastery, error)
	Delete(ctx context.Context, id int) error
}

// MonasteryDocumentation groups everything documented for one monastery.
type MonasteryDocumentation struct {
	Artifacts         []domain.Artifact
	Rituals           []domain.Ritual
	HistoricalRecords []domain.HistoricalRecord
}

// DocumentationService exposes the artifact, ritual, and historical record archives.
type DocumentationService interface {
	ListArtifacts(ctx context.Context, filter domain.ArtifactFilter, page pagination.Params) ([]domain.Artifact, int, error)
	GetArtifact(ctx context.Context, id string) (domain.Artifact, error)
	ArtifactCategories(ctx context.Context) ([]string, error)
	ListRituals(ctx context.Context, filter domain.RitualFilter, page pagination.Params) ([]domain.Ritual, int, error)
	GetRitual(ctx context.Context, id string) (domain.Ritual, error)
	RitualTypes(ctx context.Context) ([]string, error)
	ListHistoricalRecords(ctx context.Context, filter domain.HistoricalRecordFilter, page pagination.Params) ([]domain.HistoricalRecord, int, error)
	GetHistoricalRecord(ctx context.Context, id string) (domain.HistoricalRecord, error)
	HistoricalRecordTypes(ctx context.Context) ([]string, error)
	ForMonastery(ctx context.Context, monasteryID int) (MonasteryDocumentation, error)
}

// AuthSession is the token pair returned by register, login, and refresh.
type AuthSession struct {
	User         domain.User
	AccessToken  string
	RefreshToken string
	ExpiresAt    time.Time
}

// RegisterInput carries the sign-up fields.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// UserService exposes the first-party email and password auth flow.
type UserService interface {
	Register(ctx context.Context, input RegisterInput) (AuthSession, error)
	Login(ctx context.Context, email, password string) (AuthSession, error)
	Refresh(ctx context.Context, refreshToken string) (AuthSession, error)
	Me(ctx context.Context, userID string) (domain.User, error)
}

// Media event names published to Pub/Sub.
const (
	MediaEventUploaded = "media.uploaded"
	MediaEventDeleted  = "media.deleted"
)

// MediaEventMessage is the payload published for media lifecycle events.
type MediaEventMessage struct {
	Event       string    `json:"event"`
	Filename    string    `json:"filename"`
	URL         string    `json:"url"`
	ContentType string    `json:"contentType"`
	SizeBytes   int64     `json:"sizeBytes"`
	UploadedBy  string    `json:"uploadedBy,omitempty"`
	OccurredAt  time.Time `json:"occurredAt"`
}

// MediaEventPublisher pushes media lifecycle events to interested consumers.
// Implementations must tolerate being absent; services treat a nil publisher
// as a no-op.
type MediaEventPublisher interface {
	PublishMediaEvent(ctx context.Context, message MediaEventMessage) (string, error)
}

// MediaService stores and serves uploaded files.
type MediaService interface {
	Upload(ctx context.Context, upload MediaUpload) (domain.MediaObject, error)
	UploadMany(ctx context.Context, uploads []MediaUpload) ([]domain.MediaObject, error)
	Open(ctx context.Context, filename string) (MediaStream, error)
	Delete(ctx context.Context, filename string) error
}

// ChatService answers visitor questions about monasteries.
type ChatService interface {
	Reply(ctx context.Context, message string) (ChatReply, error)
	Greeting(language string) string
}

// MapService projects monasteries onto the interactive map.
type MapService interface {
	Markers(ctx context.Context, filter domain.MonasteryFilter) ([]MapMarker, error)
	Clusters(ctx context.Context, zoom int, filter domain.MonasteryFilter) ([]MapCluster, error)
	Focus(ctx context.Context, monasteryID int) (MapFocus, error)
}
