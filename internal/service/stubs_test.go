package service

import (
	"context"

	"anondo/internal/models"
	"anondo/internal/repository"
)

type eventRepoStub struct {
	createFn            func(context.Context, *models.Event) error
	getByIDFn           func(context.Context, uint, uint) (*models.Event, error)
	listFn              func(context.Context, repository.EventFilter, int, int, uint) ([]*models.Event, int64, error)
	listByCreatorFn     func(context.Context, uint, int, int, uint) ([]*models.Event, error)
	listByCreatorsFn    func(context.Context, []uint, int, int, uint) ([]*models.Event, int64, error)
	listJoinedByUserFn  func(context.Context, uint, int, int) ([]*models.Event, error)
	updateFn            func(context.Context, *models.Event) error
	deleteFn            func(context.Context, uint) error
	joinFn              func(context.Context, uint, uint) error
	leaveFn             func(context.Context, uint, uint) error
	participantsFn      func(context.Context, uint, int, int) ([]models.EventParticipant, error)
	isJoinedFn          func(context.Context, uint, uint) (bool, error)
	replaceCategoriesFn func(context.Context, *models.Event, []models.Category) error
	replaceTagsFn       func(context.Context, *models.Event, []models.Tag) error
}

func (s *eventRepoStub) Create(ctx context.Context, event *models.Event) error {
	return s.createFn(ctx, event)
}
func (s *eventRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Event, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *eventRepoStub) List(ctx context.Context, filter repository.EventFilter, limit, offset int, currentUserID uint) ([]*models.Event, int64, error) {
	return s.listFn(ctx, filter, limit, offset, currentUserID)
}
func (s *eventRepoStub) ListByCreator(ctx context.Context, creatorID uint, limit, offset int, currentUserID uint) ([]*models.Event, error) {
	return s.listByCreatorFn(ctx, creatorID, limit, offset, currentUserID)
}
func (s *eventRepoStub) ListByCreators(ctx context.Context, creatorIDs []uint, limit, offset int, currentUserID uint) ([]*models.Event, int64, error) {
	return s.listByCreatorsFn(ctx, creatorIDs, limit, offset, currentUserID)
}
func (s *eventRepoStub) ListJoinedByUser(ctx context.Context, userID uint, limit, offset int) ([]*models.Event, error) {
	return s.listJoinedByUserFn(ctx, userID, limit, offset)
}
func (s *eventRepoStub) Update(ctx context.Context, event *models.Event) error {
	return s.updateFn(ctx, event)
}
func (s *eventRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *eventRepoStub) Join(ctx context.Context, eventID, userID uint) error {
	return s.joinFn(ctx, eventID, userID)
}
func (s *eventRepoStub) Leave(ctx context.Context, eventID, userID uint) error {
	return s.leaveFn(ctx, eventID, userID)
}
func (s *eventRepoStub) Participants(ctx context.Context, eventID uint, limit, offset int) ([]models.EventParticipant, error) {
	return s.participantsFn(ctx, eventID, limit, offset)
}
func (s *eventRepoStub) IsJoined(ctx context.Context, eventID, userID uint) (bool, error) {
	return s.isJoinedFn(ctx, eventID, userID)
}
func (s *eventRepoStub) ReplaceCategories(ctx context.Context, event *models.Event, categories []models.Category) error {
	return s.replaceCategoriesFn(ctx, event, categories)
}
func (s *eventRepoStub) ReplaceTags(ctx context.Context, event *models.Event, tags []models.Tag) error {
	return s.replaceTagsFn(ctx, event, tags)
}

func noopEventRepo() *eventRepoStub {
	return &eventRepoStub{
		createFn: func(_ context.Context, event *models.Event) error {
			event.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Event, error) {
			return &models.Event{ID: id, IsPublic: true, Status: models.EventStatusActive}, nil
		},
		listFn: func(context.Context, repository.EventFilter, int, int, uint) ([]*models.Event, int64, error) {
			return nil, 0, nil
		},
		listByCreatorFn: func(context.Context, uint, int, int, uint) ([]*models.Event, error) {
			return nil, nil
		},
		listByCreatorsFn: func(context.Context, []uint, int, int, uint) ([]*models.Event, int64, error) {
			return nil, 0, nil
		},
		listJoinedByUserFn:  func(context.Context, uint, int, int) ([]*models.Event, error) { return nil, nil },
		updateFn:            func(context.Context, *models.Event) error { return nil },
		deleteFn:            func(context.Context, uint) error { return nil },
		joinFn:              func(context.Context, uint, uint) error { return nil },
		leaveFn:             func(context.Context, uint, uint) error { return nil },
		participantsFn:      func(context.Context, uint, int, int) ([]models.EventParticipant, error) { return nil, nil },
		isJoinedFn:          func(context.Context, uint, uint) (bool, error) { return false, nil },
		replaceCategoriesFn: func(context.Context, *models.Event, []models.Category) error { return nil },
		replaceTagsFn:       func(context.Context, *models.Event, []models.Tag) error { return nil },
	}
}

type userRepoStub struct {
	getByIDFn    func(context.Context, uint, uint) (*models.User, error)
	getByEmailFn func(context.Context, string) (*models.User, error)
	createFn     func(context.Context, *models.User) error
	updateFn     func(context.Context, *models.User) error
	deleteFn     func(context.Context, uint) error
	searchFn     func(context.Context, string, int, int, uint) ([]models.User, error)
}

func (s *userRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.User, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *userRepoStub) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.getByEmailFn(ctx, email)
}
func (s *userRepoStub) Create(ctx context.Context, user *models.User) error {
	return s.createFn(ctx, user)
}
func (s *userRepoStub) Update(ctx context.Context, user *models.User) error {
	return s.updateFn(ctx, user)
}
func (s *userRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *userRepoStub) Search(ctx context.Context, q string, limit, offset int, currentUserID uint) ([]models.User, error) {
	return s.searchFn(ctx, q, limit, offset, currentUserID)
}

func noopUserRepo() *userRepoStub {
	return &userRepoStub{
		getByIDFn: func(_ context.Context, id, _ uint) (*models.User, error) {
			return &models.User{ID: id}, nil
		},
		getByEmailFn: func(context.Context, string) (*models.User, error) { return nil, nil },
		createFn:     func(context.Context, *models.User) error { return nil },
		updateFn:     func(context.Context, *models.User) error { return nil },
		deleteFn:     func(context.Context, uint) error { return nil },
		searchFn:     func(context.Context, string, int, int, uint) ([]models.User, error) { return nil, nil },
	}
}

type followRepoStub struct {
	followFn       func(context.Context, uint, uint) (bool, error)
	unfollowFn     func(context.Context, uint, uint) (bool, error)
	isFollowingFn  func(context.Context, uint, uint) (bool, error)
	getEdgeFn      func(context.Context, uint, uint) (*models.Follow, error)
	followersFn    func(context.Context, uint, int, int, uint) ([]models.User, error)
	followingFn    func(context.Context, uint, int, int, uint) ([]models.User, error)
	followingIDsFn func(context.Context, uint) ([]uint, error)
}

func (s *followRepoStub) Follow(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.followFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Unfollow(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.unfollowFn(ctx, followerID, followingID)
}
func (s *followRepoStub) IsFollowing(ctx context.Context, followerID, followingID uint) (bool, error) {
	return s.isFollowingFn(ctx, followerID, followingID)
}
func (s *followRepoStub) GetEdge(ctx context.Context, followerID, followingID uint) (*models.Follow, error) {
	return s.getEdgeFn(ctx, followerID, followingID)
}
func (s *followRepoStub) Followers(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]models.User, error) {
	return s.followersFn(ctx, userID, limit, offset, currentUserID)
}
func (s *followRepoStub) Following(ctx context.Context, userID uint, limit, offset int, currentUserID uint) ([]models.User, error) {
	return s.followingFn(ctx, userID, limit, offset, currentUserID)
}
func (s *followRepoStub) FollowingIDs(ctx context.Context, userID uint) ([]uint, error) {
	return s.followingIDsFn(ctx, userID)
}

func noopFollowRepo() *followRepoStub {
	return &followRepoStub{
		followFn:       func(context.Context, uint, uint) (bool, error) { return true, nil },
		unfollowFn:     func(context.Context, uint, uint) (bool, error) { return true, nil },
		isFollowingFn:  func(context.Context, uint, uint) (bool, error) { return false, nil },
		getEdgeFn:      func(context.Context, uint, uint) (*models.Follow, error) { return nil, nil },
		followersFn:    func(context.Context, uint, int, int, uint) ([]models.User, error) { return nil, nil },
		followingFn:    func(context.Context, uint, int, int, uint) ([]models.User, error) { return nil, nil },
		followingIDsFn: func(context.Context, uint) ([]uint, error) { return nil, nil },
	}
}

type commentRepoStub struct {
	createFn      func(context.Context, *models.Comment) error
	getByIDFn     func(context.Context, uint, uint) (*models.Comment, error)
	listByEventFn func(context.Context, uint, int, int, uint) ([]*models.Comment, error)
	updateFn      func(context.Context, *models.Comment) error
	deleteFn      func(context.Context, uint) error
	toggleLikeFn  func(context.Context, uint, uint) (bool, error)
	likesCountFn  func(context.Context, uint) (int64, error)
}

func (s *commentRepoStub) Create(ctx context.Context, comment *models.Comment) error {
	return s.createFn(ctx, comment)
}
func (s *commentRepoStub) GetByID(ctx context.Context, id, currentUserID uint) (*models.Comment, error) {
	return s.getByIDFn(ctx, id, currentUserID)
}
func (s *commentRepoStub) ListByEvent(ctx context.Context, eventID uint, limit, offset int, currentUserID uint) ([]*models.Comment, error) {
	return s.listByEventFn(ctx, eventID, limit, offset, currentUserID)
}
func (s *commentRepoStub) Update(ctx context.Context, comment *models.Comment) error {
	return s.updateFn(ctx, comment)
}
func (s *commentRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}
func (s *commentRepoStub) ToggleLike(ctx context.Context, userID, commentID uint) (bool, error) {
	return s.toggleLikeFn(ctx, userID, commentID)
}
func (s *commentRepoStub) LikesCount(ctx context.Context, commentID uint) (int64, error) {
	return s.likesCountFn(ctx, commentID)
}

func noopCommentRepo() *commentRepoStub {
	return &commentRepoStub{
		createFn: func(_ context.Context, comment *models.Comment) error {
			comment.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id, _ uint) (*models.Comment, error) {
			return &models.Comment{ID: id}, nil
		},
		listByEventFn: func(context.Context, uint, int, int, uint) ([]*models.Comment, error) { return nil, nil },
		updateFn:      func(context.Context, *models.Comment) error { return nil },
		deleteFn:      func(context.Context, uint) error { return nil },
		toggleLikeFn:  func(context.Context, uint, uint) (bool, error) { return true, nil },
		likesCountFn:  func(context.Context, uint) (int64, error) { return 0, nil },
	}
}

type imageRepoStub struct {
	addFn           func(context.Context, *models.EventImage) error
	getByIDFn       func(context.Context, uint) (*models.EventImage, error)
	listByEventFn   func(context.Context, uint) ([]models.EventImage, error)
	updateDetailsFn func(context.Context, uint, *string, *string) error
	moveFn          func(context.Context, uint, int) (*models.EventImage, error)
	deleteFn        func(context.Context, uint) error
}

func (s *imageRepoStub) Add(ctx context.Context, image *models.EventImage) error {
	return s.addFn(ctx, image)
}
func (s *imageRepoStub) GetByID(ctx context.Context, id uint) (*models.EventImage, error) {
	return s.getByIDFn(ctx, id)
}
func (s *imageRepoStub) ListByEvent(ctx context.Context, eventID uint) ([]models.EventImage, error) {
	return s.listByEventFn(ctx, eventID)
}
func (s *imageRepoStub) UpdateDetails(ctx context.Context, id uint, altText, caption *string) error {
	return s.updateDetailsFn(ctx, id, altText, caption)
}
func (s *imageRepoStub) Move(ctx context.Context, id uint, newPosition int) (*models.EventImage, error) {
	return s.moveFn(ctx, id, newPosition)
}
func (s *imageRepoStub) Delete(ctx context.Context, id uint) error {
	return s.deleteFn(ctx, id)
}

func noopImageRepo() *imageRepoStub {
	return &imageRepoStub{
		addFn: func(_ context.Context, image *models.EventImage) error {
			image.ID = 1
			return nil
		},
		getByIDFn: func(_ context.Context, id uint) (*models.EventImage, error) {
			return &models.EventImage{ID: id, EventID: 1}, nil
		},
		listByEventFn:   func(context.Context, uint) ([]models.EventImage, error) { return nil, nil },
		updateDetailsFn: func(context.Context, uint, *string, *string) error { return nil },
		moveFn:          func(context.Context, uint, int) (*models.EventImage, error) { return &models.EventImage{}, nil },
		deleteFn:        func(context.Context, uint) error { return nil },
	}
}

type categoryRepoStub struct {
	listFn     func(context.Context) ([]models.Category, error)
	getByIDsFn func(context.Context, []uint) ([]models.Category, error)
	createFn   func(context.Context, *models.Category) error
}

func (s *categoryRepoStub) List(ctx context.Context) ([]models.Category, error) {
	return s.listFn(ctx)
}
func (s *categoryRepoStub) GetByIDs(ctx context.Context, ids []uint) ([]models.Category, error) {
	return s.getByIDsFn(ctx, ids)
}
func (s *categoryRepoStub) Create(ctx context.Context, category *models.Category) error {
	return s.createFn(ctx, category)
}

func noopCategoryRepo() *categoryRepoStub {
	return &categoryRepoStub{
		listFn:     func(context.Context) ([]models.Category, error) { return nil, nil },
		getByIDsFn: func(context.Context, []uint) ([]models.Category, error) { return nil, nil },
		createFn:   func(context.Context, *models.Category) error { return nil },
	}
}

type tagRepoStub struct {
	getOrCreateByNamesFn func(context.Context, []string) ([]models.Tag, error)
}

func (s *tagRepoStub) GetOrCreateByNames(ctx context.Context, names []string) ([]models.Tag, error) {
	return s.getOrCreateByNamesFn(ctx, names)
}

func noopTagRepo() *tagRepoStub {
	return &tagRepoStub{
		getOrCreateByNamesFn: func(context.Context, []string) ([]models.Tag, error) { return nil, nil },
	}
}
