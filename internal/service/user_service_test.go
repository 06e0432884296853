package service

import (
	"context"
	"strings"
	"testing"

	"anondo/internal/models"
)

func TestUserServiceSearchShortQuery(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.searchFn = func(context.Context, string, int, int, uint) ([]models.User, error) {
		t.Fatal("short queries must not hit the database")
		return nil, nil
	}

	svc := NewUserService(userRepo, noopFollowRepo(), noopEventRepo())
	_, err := svc.SearchUsers(context.Background(), " a ", 20, 0, 0)
	expectAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestUserServiceSearchHasMore(t *testing.T) {
	userRepo := noopUserRepo()
	userRepo.searchFn = func(_ context.Context, _ string, limit, _ int, _ uint) ([]models.User, error) {
		users := make([]models.User, limit)
		return users, nil
	}

	svc := NewUserService(userRepo, noopFollowRepo(), noopEventRepo())
	result, err := svc.SearchUsers(context.Background(), "an", 5, 0, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !result.HasMore {
		t.Fatal("expected has_more when a full page comes back")
	}
}

func TestUserServiceUpdateProfileValidatesName(t *testing.T) {
	svc := NewUserService(noopUserRepo(), noopFollowRepo(), noopEventRepo())
	short := "x"
	_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{UserID: 1, Name: &short})
	expectAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestUserServiceUpdateProfileRejectsLongBio(t *testing.T) {
	svc := NewUserService(noopUserRepo(), noopFollowRepo(), noopEventRepo())
	bio := strings.Repeat("b", 501)
	_, err := svc.UpdateProfile(context.Background(), UpdateProfileInput{UserID: 1, Bio: &bio})
	expectAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestUserServiceFeedWithoutFollows(t *testing.T) {
	eventRepo := noopEventRepo()
	var queried []uint
	eventRepo.listByCreatorsFn = func(_ context.Context, ids []uint, _, _ int, _ uint) ([]*models.Event, int64, error) {
		queried = ids
		return []*models.Event{}, 0, nil
	}

	svc := NewUserService(noopUserRepo(), noopFollowRepo(), eventRepo)
	// A viewer who follows nobody still sees their own events.
	_, _, err := svc.FollowingFeed(context.Background(), 1, 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(queried) != 1 || queried[0] != 1 {
		t.Fatalf("expected feed over the viewer's own id, got %v", queried)
	}
}

func TestUserServiceFeedQueriesFollowedCreatorsAndSelf(t *testing.T) {
	followRepo := noopFollowRepo()
	followRepo.followingIDsFn = func(context.Context, uint) ([]uint, error) { return []uint{4, 9}, nil }

	eventRepo := noopEventRepo()
	var queried []uint
	eventRepo.listByCreatorsFn = func(_ context.Context, ids []uint, _, _ int, _ uint) ([]*models.Event, int64, error) {
		queried = ids
		return []*models.Event{{ID: 1}}, 1, nil
	}

	svc := NewUserService(noopUserRepo(), followRepo, eventRepo)
	events, total, err := svc.FollowingFeed(context.Background(), 1, 20, 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(queried) != 3 || queried[2] != 1 || total != 1 || len(events) != 1 {
		t.Fatalf("expected feed over followed creators plus the viewer, got ids %v", queried)
	}
}
