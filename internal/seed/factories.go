// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"anondo/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// SeedOptions tunes how factories generate and persist data.
type SeedOptions struct {
	// DryRun logs what would be created without touching the database.
	DryRun bool
	// SkipBcrypt stores a plain-text password. Faster for large dev seeds.
	SkipBcrypt bool
	// MaxDays bounds how far in the past generated created_at values go.
	MaxDays int
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by the seeder and tests.
type Factory struct {
	db   *gorm.DB
	opts SeedOptions
	// synthetic ID counter when running in DryRun mode
	nextID uint
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts SeedOptions) *Factory {
	// seed gofakeit for richer content
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, opts: opts, nextID: 1000}
}

// CreateUser constructs and persists a sample `models.User`.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateUser(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Name:         gofakeit.Name(),
		Email:        fmt.Sprintf("%d.%s", gofakeit.Number(100, 999), gofakeit.Email()),
		Bio:          gofakeit.Sentence(10),
		Location:     gofakeit.City(),
		ProfileImage: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
	}

	// Password handling: allow skipping bcrypt in dev fast mode
	if f.opts.SkipBcrypt {
		user.Password = "password123"
	} else {
		hashedPassword, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
		user.Password = string(hashedPassword)
	}

	for _, override := range overrides {
		override(user)
	}

	if f.opts.DryRun {
		f.nextID++
		user.ID = f.nextID
		log.Printf("[dry-run] CreateUser: %s <%s>", user.Name, user.Email)
		return user, nil
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// BuildEvent constructs an event struct for the given creator but does not
// persist it. Useful for batching.
func (f *Factory) BuildEvent(creator *models.User, overrides ...func(*models.Event)) *models.Event {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	event := &models.Event{
		Title:       gofakeit.Sentence(4),
		Description: gofakeit.Paragraph(1, 3, 8, "\n"),
		Location:    gofakeit.Company(),
		Address:     gofakeit.Street(),
		City:        gofakeit.City(),
		Area:        gofakeit.StreetName(),
		Status:      models.EventStatusActive,
		IsPublic:    true,
		CreatorID:   creator.ID,
	}

	// spread start dates over the coming weeks
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 45
	}
	daysAhead := r.Intn(maxDays) + 1
	hour := 8 + r.Intn(12)
	event.StartDate = time.Now().UTC().Truncate(time.Hour).
		Add(time.Duration(daysAhead)*24*time.Hour + time.Duration(hour)*time.Hour)
	if r.Float32() < 0.6 {
		end := event.StartDate.Add(time.Duration(1+r.Intn(5)) * time.Hour)
		event.EndDate = &end
	}

	if r.Float32() < 0.5 {
		capacity := 5 + r.Intn(95)
		event.MaxParticipants = &capacity
	}
	if r.Float32() < 0.2 {
		event.IsPublic = false
	}
	if r.Float32() < 0.7 {
		lat := gofakeit.Latitude()
		lng := gofakeit.Longitude()
		event.Latitude = &lat
		event.Longitude = &lng
	}

	for _, override := range overrides {
		override(event)
	}
	return event
}

// CreateEvent constructs and persists a sample `models.Event` for the
// given creator.
func (f *Factory) CreateEvent(creator *models.User, overrides ...func(*models.Event)) (*models.Event, error) {
	event := f.BuildEvent(creator, overrides...)

	if f.opts.DryRun {
		f.nextID++
		event.ID = f.nextID
		log.Printf("[dry-run] CreateEvent: creator=%d title=%q", event.CreatorID, event.Title)
		return event, nil
	}

	if err := f.db.Create(event).Error; err != nil {
		return nil, err
	}
	return event, nil
}

// CreateEventImage appends an image to the event's gallery at the next
// free position.
func (f *Factory) CreateEventImage(event *models.Event, position int) (*models.EventImage, error) {
	image := &models.EventImage{
		EventID:  event.ID,
		URL:      fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
		AltText:  gofakeit.Sentence(5),
		Position: position,
	}
	if err := f.db.Create(image).Error; err != nil {
		return nil, err
	}
	return image, nil
}

// CreateComment constructs and persists a sample `models.Comment` on the
// provided event authored by the provided user.
func (f *Factory) CreateComment(user *models.User, event *models.Event, overrides ...func(*models.Comment)) (*models.Comment, error) {
	comment := &models.Comment{
		Content: gofakeit.Sentence(8),
		UserID:  user.ID,
		EventID: event.ID,
	}

	for _, override := range overrides {
		override(comment)
	}

	if err := f.db.Create(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

// CreateCommentLike persists a like from `user` on `comment`.
func (f *Factory) CreateCommentLike(user *models.User, comment *models.Comment) error {
	like := &models.CommentLike{
		UserID:    user.ID,
		CommentID: comment.ID,
	}
	return f.db.Create(like).Error
}

// CreateFollow persists a follow edge from follower to followed.
func (f *Factory) CreateFollow(follower, followed *models.User) error {
	follow := &models.Follow{
		FollowerID:  follower.ID,
		FollowingID: followed.ID,
	}
	return f.db.Create(follow).Error
}

// JoinEvent persists a JOINED participation for the user on the event.
func (f *Factory) JoinEvent(user *models.User, event *models.Event) error {
	participant := &models.EventParticipant{
		EventID:  event.ID,
		UserID:   user.ID,
		Status:   models.ParticipationJoined,
		JoinedAt: time.Now().UTC(),
	}
	return f.db.Create(participant).Error
}
