package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"anondo/internal/models"
)

func expectAppErrorCode(t *testing.T, err error, code string) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", code)
	}
	var appErr *models.AppError
	if !errors.As(err, &appErr) || appErr.Code != code {
		t.Fatalf("expected %s app error, got %#v", code, err)
	}
}

func TestEventServiceCreateValidatesTitle(t *testing.T) {
	svc := NewEventService(noopEventRepo(), noopCategoryRepo(), noopTagRepo())
	_, err := svc.CreateEvent(context.Background(), CreateEventInput{
		CreatorID:   1,
		Title:       "ab",
		Description: "hello",
		StartDate:   time.Now().Add(24 * time.Hour),
	})
	expectAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestEventServiceCreateRejectsBadDates(t *testing.T) {
	svc := NewEventService(noopEventRepo(), noopCategoryRepo(), noopTagRepo())
	start := time.Now().Add(48 * time.Hour)
	end := start.Add(-time.Hour)
	_, err := svc.CreateEvent(context.Background(), CreateEventInput{
		CreatorID:   1,
		Title:       "Evening meetup",
		Description: "hello",
		StartDate:   start,
		EndDate:     &end,
	})
	expectAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestEventServiceCreateDefaultsToPublicActive(t *testing.T) {
	repo := noopEventRepo()
	var created *models.Event
	repo.createFn = func(_ context.Context, event *models.Event) error {
		event.ID = 7
		created = event
		return nil
	}

	svc := NewEventService(repo, noopCategoryRepo(), noopTagRepo())
	_, err := svc.CreateEvent(context.Background(), CreateEventInput{
		CreatorID:   1,
		Title:       "Evening meetup",
		Description: "hello",
		StartDate:   time.Now().Add(24 * time.Hour),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created == nil || !created.IsPublic || created.Status != models.EventStatusActive {
		t.Fatalf("expected public active event, got %#v", created)
	}
}

func TestEventServicePrivateEventAnonymousViewer(t *testing.T) {
	repo := noopEventRepo()
	repo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Event, error) {
		return &models.Event{ID: id, CreatorID: 10, IsPublic: false}, nil
	}

	svc := NewEventService(repo, noopCategoryRepo(), noopTagRepo())
	_, err := svc.GetEvent(context.Background(), 1, 0)
	expectAppErrorCode(t, err, "AUTH_REQUIRED")
}

func TestEventServicePrivateEventNonParticipant(t *testing.T) {
	repo := noopEventRepo()
	repo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Event, error) {
		return &models.Event{ID: id, CreatorID: 10, IsPublic: false}, nil
	}

	svc := NewEventService(repo, noopCategoryRepo(), noopTagRepo())
	_, err := svc.GetEvent(context.Background(), 1, 99)
	expectAppErrorCode(t, err, "UNAUTHORIZED")
}

func TestEventServicePrivateEventVisibleToParticipant(t *testing.T) {
	repo := noopEventRepo()
	repo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Event, error) {
		return &models.Event{ID: id, CreatorID: 10, IsPublic: false}, nil
	}
	repo.isJoinedFn = func(context.Context, uint, uint) (bool, error) { return true, nil }

	svc := NewEventService(repo, noopCategoryRepo(), noopTagRepo())
	if _, err := svc.GetEvent(context.Background(), 1, 99); err != nil {
		t.Fatalf("expected participant to see private event, got %v", err)
	}
}

func TestEventServicePrivateEventVisibleToCreator(t *testing.T) {
	repo := noopEventRepo()
	repo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Event, error) {
		return &models.Event{ID: id, CreatorID: 10, IsPublic: false}, nil
	}
	repo.isJoinedFn = func(context.Context, uint, uint) (bool, error) {
		t.Fatal("creator visibility must not hit the participation table")
		return false, nil
	}

	svc := NewEventService(repo, noopCategoryRepo(), noopTagRepo())
	if _, err := svc.GetEvent(context.Background(), 1, 10); err != nil {
		t.Fatalf("expected creator to see private event, got %v", err)
	}
}

func TestEventServiceUpdateByNonCreatorReadsAsNotFound(t *testing.T) {
	repo := noopEventRepo()
	repo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Event, error) {
		return &models.Event{ID: id, CreatorID: 10, IsPublic: true, Status: models.EventStatusActive}, nil
	}

	svc := NewEventService(repo, noopCategoryRepo(), noopTagRepo())
	title := "New title"
	_, err := svc.UpdateEvent(context.Background(), UpdateEventInput{UserID: 11, EventID: 1, Title: &title})
	expectAppErrorCode(t, err, "NOT_FOUND")
}

func TestEventServiceUpdateRejectsUnknownStatus(t *testing.T) {
	repo := noopEventRepo()
	repo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Event, error) {
		return &models.Event{
			ID:        id,
			CreatorID: 10,
			IsPublic:  true,
			Status:    models.EventStatusActive,
			StartDate: time.Now().Add(24 * time.Hour),
		}, nil
	}

	svc := NewEventService(repo, noopCategoryRepo(), noopTagRepo())
	bogus := models.EventStatus("PAUSED")
	_, err := svc.UpdateEvent(context.Background(), UpdateEventInput{UserID: 10, EventID: 1, Status: &bogus})
	expectAppErrorCode(t, err, "VALIDATION_ERROR")
}

func TestEventServiceDeleteByNonCreatorReadsAsNotFound(t *testing.T) {
	repo := noopEventRepo()
	repo.getByIDFn = func(_ context.Context, id, _ uint) (*models.Event, error) {
		return &models.Event{ID: id, CreatorID: 10, IsPublic: true}, nil
	}

	svc := NewEventService(repo, noopCategoryRepo(), noopTagRepo())
	err := svc.DeleteEvent(context.Background(), 1, 11)
	expectAppErrorCode(t, err, "NOT_FOUND")
}

func TestEventServiceJoinPassesThroughBusinessErrors(t *testing.T) {
	repo := noopEventRepo()
	repo.joinFn = func(context.Context, uint, uint) error {
		return models.NewBusinessRuleError(models.CodeEventFull, "Event is at full capacity")
	}

	svc := NewEventService(repo, noopCategoryRepo(), noopTagRepo())
	err := svc.JoinEvent(context.Background(), 1, 2)
	expectAppErrorCode(t, err, models.CodeEventFull)
}

func TestEventServiceListCreatedByHidesPrivateFromOthers(t *testing.T) {
	repo := noopEventRepo()
	repo.listByCreatorFn = func(context.Context, uint, int, int, uint) ([]*models.Event, error) {
		return []*models.Event{
			{ID: 1, CreatorID: 10, IsPublic: true},
			{ID: 2, CreatorID: 10, IsPublic: false},
		}, nil
	}

	svc := NewEventService(repo, noopCategoryRepo(), noopTagRepo())

	asOther, err := svc.ListCreatedBy(context.Background(), 10, 20, 0, 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(asOther) != 1 || asOther[0].ID != 1 {
		t.Fatalf("expected only the public event, got %#v", asOther)
	}

	asCreator, err := svc.ListCreatedBy(context.Background(), 10, 20, 0, 10)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(asCreator) != 2 {
		t.Fatalf("expected creator to see both events, got %d", len(asCreator))
	}
}

func TestJoinOutcomeLabels(t *testing.T) {
	cases := []struct {
		err  error
		want string
	}{
		{nil, "joined"},
		{models.NewBusinessRuleError(models.CodeEventFull, "full"), "event_full"},
		{models.NewBusinessRuleError(models.CodeAlreadyJoined, "dup"), "already_joined"},
		{models.NewNotFoundError("Event", 1), "not_found"},
		{models.NewInternalError(errors.New("boom")), "error"},
	}
	for _, tc := range cases {
		if got := joinOutcome(tc.err); got != tc.want {
			t.Errorf("joinOutcome(%v) = %q, want %q", tc.err, got, tc.want)
		}
	}
}
