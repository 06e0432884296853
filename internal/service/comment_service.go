package service

import (
	"context"

	"anondo/internal/models"
	"anondo/internal/observability"
	"anondo/internal/repository"
	"anondo/internal/validation"
)

// CommentService provides comment and like business logic.
type CommentService struct {
	commentRepo repository.CommentRepository
	eventRepo   repository.EventRepository
}

type CreateCommentInput struct {
	UserID  uint
	EventID uint
	Content string
}

type UpdateCommentInput struct {
	UserID    uint
	CommentID uint
	Content   string
}

// NewCommentService returns a new CommentService.
func NewCommentService(commentRepo repository.CommentRepository, eventRepo repository.EventRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		eventRepo:   eventRepo,
	}
}

func (s *CommentService) CreateComment(ctx context.Context, in CreateCommentInput) (*models.Comment, error) {
	event, err := s.eventRepo.GetByID(ctx, in.EventID, in.UserID)
	if err != nil {
		return nil, err
	}
	if err := authorizeEventView(ctx, s.eventRepo, event, in.UserID); err != nil {
		return nil, err
	}

	if err := validation.ValidateCommentContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	comment := &models.Comment{
		Content: in.Content,
		UserID:  in.UserID,
		EventID: in.EventID,
	}
	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, err
	}

	observability.CommentsPostedTotal.Inc()

	return s.commentRepo.GetByID(ctx, comment.ID, in.UserID)
}

func (s *CommentService) ListComments(ctx context.Context, eventID uint, limit, offset int, currentUserID uint) ([]*models.Comment, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID, currentUserID)
	if err != nil {
		return nil, err
	}
	if err := authorizeEventView(ctx, s.eventRepo, event, currentUserID); err != nil {
		return nil, err
	}
	return s.commentRepo.ListByEvent(ctx, eventID, limit, offset, currentUserID)
}

func (s *CommentService) UpdateComment(ctx context.Context, in UpdateCommentInput) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, in.CommentID, in.UserID)
	if err != nil {
		return nil, err
	}
	if comment.UserID != in.UserID {
		return nil, models.NewUnauthorizedError("You can only update your own comments")
	}
	if err := validation.ValidateCommentContent(in.Content); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	comment.Content = in.Content
	if err := s.commentRepo.Update(ctx, comment); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, comment.ID, in.UserID)
}

// DeleteComment removes a comment. The comment author and the event creator
// may both delete it.
func (s *CommentService) DeleteComment(ctx context.Context, commentID, userID uint) error {
	comment, err := s.commentRepo.GetByID(ctx, commentID, userID)
	if err != nil {
		return err
	}

	if comment.UserID != userID {
		event, err := s.eventRepo.GetByID(ctx, comment.EventID, userID)
		if err != nil {
			return err
		}
		if event.CreatorID != userID {
			return models.NewUnauthorizedError("You can only delete your own comments")
		}
	}

	return s.commentRepo.Delete(ctx, commentID)
}

// ToggleLike flips the user's like on a comment and returns the comment with
// its refreshed like count and liked flag.
func (s *CommentService) ToggleLike(ctx context.Context, commentID, userID uint) (*models.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID, userID)
	if err != nil {
		return nil, err
	}
	event, err := s.eventRepo.GetByID(ctx, comment.EventID, userID)
	if err != nil {
		return nil, err
	}
	if err := authorizeEventView(ctx, s.eventRepo, event, userID); err != nil {
		return nil, err
	}

	if _, err := s.commentRepo.ToggleLike(ctx, userID, commentID); err != nil {
		return nil, err
	}

	return s.commentRepo.GetByID(ctx, commentID, userID)
}
