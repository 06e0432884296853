package seed

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"anondo/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumUsers    int
	NumEvents   int
	ShouldClean bool
	SkipBcrypt  bool
}

var tagPool = []string{
	"outdoor", "indoor", "free", "beginner-friendly", "weekly", "weekend",
	"networking", "workshop", "meetup", "tournament", "potluck", "open-mic",
	"family", "volunteering", "music", "coding", "football", "cricket",
	"board-games", "book-club", "photography", "hiking",
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("🌱 Starting database seeding with %d users and %d events...", opts.NumUsers, opts.NumEvents)

	// Clear existing data to avoid conflicts if requested
	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("⚠️  Warning: Could not clear all existing data, but continuing anyway...")
		}
	}

	if err := Categories(db); err != nil {
		return fmt.Errorf("failed to seed categories: %w", err)
	}
	var categories []models.Category
	if err := db.Find(&categories).Error; err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	log.Printf("✓ %d categories available", len(categories))

	factory := NewFactory(db, SeedOptions{SkipBcrypt: opts.SkipBcrypt})

	users, err := createUsers(factory, opts.NumUsers)
	if err != nil {
		return fmt.Errorf("failed to create users: %w", err)
	}
	log.Printf("✓ %d test users created", len(users))

	events, err := createEvents(db, factory, users, categories, opts.NumEvents)
	if err != nil {
		return fmt.Errorf("failed to create events: %w", err)
	}
	log.Printf("✓ %d events created", len(events))

	if err := createFollowMesh(factory, users); err != nil {
		return fmt.Errorf("failed to create follow graph: %w", err)
	}
	log.Println("✓ follow graph created")

	if err := createParticipations(factory, users, events); err != nil {
		return fmt.Errorf("failed to create participations: %w", err)
	}
	log.Println("✓ participations created")

	if err := createComments(factory, users, events); err != nil {
		return fmt.Errorf("failed to create comments: %w", err)
	}
	log.Println("✓ comments created")

	log.Println("🎉 Database seeding completed successfully!")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("🗑️  Clearing existing data...")
	sql := `TRUNCATE TABLE comment_likes, comments, event_images, event_participants,
		event_categories, event_tags, follows, events, tags, categories, users
		RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}

func createUsers(factory *Factory, count int) ([]*models.User, error) {
	users := make([]*models.User, 0, count)

	// Always include some specific users for consistency if cleaning
	if count >= 3 {
		baseUsers := []string{"anik", "mitu", "test"}
		for _, name := range baseUsers {
			user, err := factory.CreateUser(func(u *models.User) {
				u.Name = name
				u.Email = fmt.Sprintf("%s@example.com", name)
				u.Bio = "One of the OGs."
			})
			if err == nil {
				users = append(users, user)
			}
		}
	}

	for i := len(users); i < count; i++ {
		user, err := factory.CreateUser()
		if err != nil {
			log.Printf("Failed to create user %d: %v", i, err)
			continue
		}
		users = append(users, user)

		if i%100 == 0 && i > 0 {
			log.Printf("Created %d users...", i)
		}
	}

	return users, nil
}

func createEvents(db *gorm.DB, factory *Factory, users []*models.User, categories []models.Category, count int) ([]*models.Event, error) {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	events := make([]*models.Event, 0, count)

	for i := 0; i < count; i++ {
		creator := users[r.Intn(len(users))]

		event, err := factory.CreateEvent(creator)
		if err != nil {
			return nil, err
		}

		if len(categories) > 0 {
			picked := categories[r.Intn(len(categories))]
			if err := db.Model(event).Association("Categories").Append(&picked); err != nil {
				return nil, err
			}
		}

		for t := 0; t < r.Intn(4); t++ {
			tag := models.Tag{Name: tagPool[r.Intn(len(tagPool))]}
			if err := db.Where(models.Tag{Name: tag.Name}).FirstOrCreate(&tag).Error; err != nil {
				return nil, err
			}
			if err := db.Model(event).Association("Tags").Append(&tag); err != nil {
				return nil, err
			}
		}

		for pos := 0; pos < r.Intn(4); pos++ {
			if _, err := factory.CreateEventImage(event, pos); err != nil {
				return nil, err
			}
		}

		events = append(events, event)

		if i%100 == 0 && i > 0 {
			log.Printf("Created %d events...", i)
		}
	}

	return events, nil
}

func createFollowMesh(factory *Factory, users []*models.User) error {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, follower := range users {
		outgoing := r.Intn(6)
		for f := 0; f < outgoing; f++ {
			target := users[r.Intn(len(users))]
			if target.ID == follower.ID {
				continue
			}
			// unique index rejects duplicate edges; skip and move on
			_ = factory.CreateFollow(follower, target)
		}
	}
	return nil
}

func createParticipations(factory *Factory, users []*models.User, events []*models.Event) error {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, event := range events {
		joiners := r.Intn(8)
		if event.MaxParticipants != nil && joiners > *event.MaxParticipants {
			joiners = *event.MaxParticipants
		}
		seen := map[uint]bool{event.CreatorID: true}
		for j := 0; j < joiners; j++ {
			user := users[r.Intn(len(users))]
			if seen[user.ID] {
				continue
			}
			seen[user.ID] = true
			if err := factory.JoinEvent(user, event); err != nil {
				return err
			}
		}
	}
	return nil
}

func createComments(factory *Factory, users []*models.User, events []*models.Event) error {
	//nolint:gosec // Weak random number generator is fine for seeding
	r := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, event := range events {
		if !event.IsPublic {
			continue
		}
		for c := 0; c < r.Intn(5); c++ {
			author := users[r.Intn(len(users))]
			comment, err := factory.CreateComment(author, event, func(cm *models.Comment) {
				cm.Content = gofakeit.Sentence(6 + r.Intn(10))
			})
			if err != nil {
				return err
			}
			likers := r.Intn(3)
			for l := 0; l < likers; l++ {
				fan := users[r.Intn(len(users))]
				// unique index rejects duplicate likes; skip and move on
				_ = factory.CreateCommentLike(fan, comment)
			}
		}
	}
	return nil
}
