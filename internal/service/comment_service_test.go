package service

import (
	"context"
	"strings"
	"testing"

	"anondo/internal/models"
)

func TestCommentServiceCreateRequiresContent(t *testing.T) {
	svc := NewCommentService(noopCommentRepo(), noopEventRepo())
	_, err := svc.CreateComment(context.Background(), CreateCommentInput{UserID: 1, EventID: 1, Content: "   "})
	expectAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestCommentServiceCreateRejectsOversizedContent(t *testing.T) {
	svc := NewCommentService(noopCommentRepo(), noopEventRepo())
	_, err := svc.CreateComment(context.Background(), CreateCommentInput{
		UserID:  1,
		EventID: 1,
		Content: strings.Repeat("x", 2001),
	})
	expectAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestCommentServiceCreateOnPrivateEvent(t *testing.T) {
	eventRepo := noopEventRepo()
	eventRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Event, error) {
		return &models.Event{ID: id, CreatorID: 10, IsPublic: false}, nil
	}

	svc := NewCommentService(noopCommentRepo(), eventRepo)
	_, err := svc.CreateComment(context.Background(), CreateCommentInput{UserID: 99, EventID: 1, Content: "hi"})
	expectAppErrorCode(t, err, "UNAUTHORIZED")
}

func TestCommentServiceUpdateRequiresAuthor(t *testing.T) {
	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Comment, error) {
		return &models.Comment{ID: id, UserID: 5, EventID: 1}, nil
	}

	svc := NewCommentService(commentRepo, noopEventRepo())
	_, err := svc.UpdateComment(context.Background(), UpdateCommentInput{UserID: 6, CommentID: 1, Content: "edited"})
	expectAppErrorCode(t, err, "UNAUTHORIZED")
}

func TestCommentServiceDeleteByEventCreator(t *testing.T) {
	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Comment, error) {
		return &models.Comment{ID: id, UserID: 5, EventID: 3}, nil
	}
	deleted := false
	commentRepo.deleteFn = func(context.Context, uint) error {
		deleted = true
		return nil
	}

	eventRepo := noopEventRepo()
	eventRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Event, error) {
		return &models.Event{ID: id, CreatorID: 10, IsPublic: true}, nil
	}

	svc := NewCommentService(commentRepo, eventRepo)
	if err := svc.DeleteComment(context.Background(), 1, 10); err != nil {
		t.Fatalf("expected event creator to delete comment, got %v", err)
	}
	if !deleted {
		t.Fatal("expected delete to reach the repository")
	}
}

func TestCommentServiceDeleteByStranger(t *testing.T) {
	commentRepo := noopCommentRepo()
	commentRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Comment, error) {
		return &models.Comment{ID: id, UserID: 5, EventID: 3}, nil
	}

	eventRepo := noopEventRepo()
	eventRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Event, error) {
		return &models.Event{ID: id, CreatorID: 10, IsPublic: true}, nil
	}

	svc := NewCommentService(commentRepo, eventRepo)
	err := svc.DeleteComment(context.Background(), 1, 11)
	expectAppErrorCode(t, err, "UNAUTHORIZED")
}

func TestCommentServiceToggleLikeReturnsRefreshedComment(t *testing.T) {
	commentRepo := noopCommentRepo()
	toggled := false
	commentRepo.toggleLikeFn = func(context.Context, uint, uint) (bool, error) {
		toggled = true
		return true, nil
	}
	commentRepo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Comment, error) {
		comment := &models.Comment{ID: id, UserID: 5, EventID: 1}
		if toggled {
			comment.LikesCount = 1
			comment.Liked = true
		}
		return comment, nil
	}

	svc := NewCommentService(commentRepo, noopEventRepo())
	comment, err := svc.ToggleLike(context.Background(), 1, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !comment.Liked || comment.LikesCount != 1 {
		t.Fatalf("expected refreshed like state, got %#v", comment)
	}
}
