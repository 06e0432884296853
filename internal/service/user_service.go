package service

import (
	"context"
	"strings"

	"anondo/internal/models"
	"anondo/internal/repository"
	"anondo/internal/validation"
)

// UserService provides profile, search and feed business logic.
type UserService struct {
	userRepo   repository.UserRepository
	followRepo repository.FollowRepository
	eventRepo  repository.EventRepository
}

type UpdateProfileInput struct {
	UserID       uint
	Name         *string
	Bio          *string
	Location     *string
	ProfileImage *string
}

// SearchResult carries one page of user search hits.
type SearchResult struct {
	Users   []models.User `json:"users"`
	HasMore bool          `json:"has_more"`
}

// NewUserService returns a new UserService.
func NewUserService(userRepo repository.UserRepository, followRepo repository.FollowRepository, eventRepo repository.EventRepository) *UserService {
	return &UserService{
		userRepo:   userRepo,
		followRepo: followRepo,
		eventRepo:  eventRepo,
	}
}

func (s *UserService) GetUserByID(ctx context.Context, id uint, currentUserID uint) (*models.User, error) {
	return s.userRepo.GetByID(ctx, id, currentUserID)
}

func (s *UserService) UpdateProfile(ctx context.Context, in UpdateProfileInput) (*models.User, error) {
	user, err := s.userRepo.GetByID(ctx, in.UserID, in.UserID)
	if err != nil {
		return nil, err
	}

	const maxBioLen = 500

	if in.Name != nil {
		if err := validation.ValidateName(*in.Name); err != nil {
			return nil, models.NewValidationError(err.Error())
		}
		user.Name = strings.TrimSpace(*in.Name)
	}
	if in.Bio != nil {
		if len(*in.Bio) > maxBioLen {
			return nil, models.NewValidationError("Bio too long (max 500 characters)")
		}
		user.Bio = *in.Bio
	}
	if in.Location != nil {
		user.Location = *in.Location
	}
	if in.ProfileImage != nil {
		user.ProfileImage = *in.ProfileImage
	}

	if err := s.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return s.userRepo.GetByID(ctx, in.UserID, in.UserID)
}

// SearchUsers finds users whose name or email matches the query. Queries
// shorter than two characters return an empty page rather than everyone.
func (s *UserService) SearchUsers(ctx context.Context, query string, limit, offset int, currentUserID uint) (*SearchResult, error) {
	query = strings.TrimSpace(query)
	if len(query) < 2 {
		return nil, models.NewValidationError("Search query must be at least 2 characters")
	}

	users, err := s.userRepo.Search(ctx, query, limit, offset, currentUserID)
	if err != nil {
		return nil, err
	}

	return &SearchResult{
		Users:   users,
		HasMore: len(users) == limit,
	}, nil
}

// FollowingFeed returns events created by users the viewer follows, plus the
// viewer's own, ordered by start date.
func (s *UserService) FollowingFeed(ctx context.Context, userID uint, limit, offset int) ([]*models.Event, int64, error) {
	ids, err := s.followRepo.FollowingIDs(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	// The viewer's own events belong in their feed too.
	ids = append(ids, userID)
	return s.eventRepo.ListByCreators(ctx, ids, limit, offset, userID)
}
