package service

import (
	"context"
	"time"

	"anondo/internal/models"
	"anondo/internal/repository"
)

// FollowStatus reports whether a follow edge exists and when it was created.
type FollowStatus struct {
	IsFollowing bool       `json:"is_following"`
	FollowedAt  *time.Time `json:"followed_at,omitempty"`
}

// FollowService provides follow graph business logic.
type FollowService struct {
	followRepo repository.FollowRepository
	userRepo   repository.UserRepository
}

// NewFollowService returns a new FollowService.
func NewFollowService(followRepo repository.FollowRepository, userRepo repository.UserRepository) *FollowService {
	return &FollowService{
		followRepo: followRepo,
		userRepo:   userRepo,
	}
}

// Follow creates a follow edge from userID to targetUserID.
func (s *FollowService) Follow(ctx context.Context, userID, targetUserID uint) (*models.User, error) {
	if userID == targetUserID {
		return nil, models.NewBusinessRuleError(models.CodeSelfFollow, "Cannot follow yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, targetUserID, userID); err != nil {
		return nil, err
	}

	created, err := s.followRepo.Follow(ctx, userID, targetUserID)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, models.NewBusinessRuleError(models.CodeAlreadyFollowing, "Already following this user")
	}

	return s.userRepo.GetByID(ctx, targetUserID, userID)
}

// Unfollow removes the follow edge from userID to targetUserID.
func (s *FollowService) Unfollow(ctx context.Context, userID, targetUserID uint) (*models.User, error) {
	if userID == targetUserID {
		return nil, models.NewBusinessRuleError(models.CodeSelfFollow, "Cannot unfollow yourself")
	}

	if _, err := s.userRepo.GetByID(ctx, targetUserID, userID); err != nil {
		return nil, err
	}

	removed, err := s.followRepo.Unfollow(ctx, userID, targetUserID)
	if err != nil {
		return nil, err
	}
	if !removed {
		return nil, models.NewBusinessRuleError(models.CodeNotFollowing, "Not following this user")
	}

	return s.userRepo.GetByID(ctx, targetUserID, userID)
}

// Status reports whether userID follows targetUserID.
func (s *FollowService) Status(ctx context.Context, userID, targetUserID uint) (*FollowStatus, error) {
	if _, err := s.userRepo.GetByID(ctx, targetUserID, userID); err != nil {
		return nil, err
	}

	edge, err := s.followRepo.GetEdge(ctx, userID, targetUserID)
	if err != nil {
		return nil, err
	}
	if edge == nil {
		return &FollowStatus{}, nil
	}
	followedAt := edge.CreatedAt
	return &FollowStatus{IsFollowing: true, FollowedAt: &followedAt}, nil
}

// Followers lists users following the given user.
func (s *FollowService) Followers(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID, currentUserID); err != nil {
		return nil, err
	}
	return s.followRepo.Followers(ctx, userID, limit, offset, currentUserID)
}

// Following lists users the given user follows.
func (s *FollowService) Following(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]models.User, error) {
	if _, err := s.userRepo.GetByID(ctx, userID, currentUserID); err != nil {
		return nil, err
	}
	return s.followRepo.Following(ctx, userID, limit, offset, currentUserID)
}
