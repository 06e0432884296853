package cache

import (
	"context"
	"fmt"
	"time"
)

const (
	UserKeyPrefix       = "user:%d"
	EventKeyPrefix      = "event:%d"
	EventListKeyPrefix  = "events:p%d:l%d"
	CategoriesKey       = "categories"
	EventImagesPrefix   = "event:%d:images"
	EventCommentsPrefix = "event:%d:comments"
)

const (
	UserTTL       = 5 * time.Minute
	EventTTL      = 2 * time.Minute
	EventListTTL  = 30 * time.Second
	CategoriesTTL = 1 * time.Hour
)

func UserKey(userID uint) string {
	return fmt.Sprintf(UserKeyPrefix, userID)
}

func EventKey(eventID uint) string {
	return fmt.Sprintf(EventKeyPrefix, eventID)
}

func EventListKey(page, limit int) string {
	return fmt.Sprintf(EventListKeyPrefix, page, limit)
}

func EventImagesKey(eventID uint) string {
	return fmt.Sprintf(EventImagesPrefix, eventID)
}

func EventCommentsKey(eventID uint) string {
	return fmt.Sprintf(EventCommentsPrefix, eventID)
}

func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateUser(ctx context.Context, userID uint) {
	Invalidate(ctx, UserKey(userID))
}

// InvalidateEvent drops the event detail plus its dependent caches.
func InvalidateEvent(ctx context.Context, eventID uint) {
	Invalidate(ctx, EventKey(eventID))
	Invalidate(ctx, EventImagesKey(eventID))
	Invalidate(ctx, EventCommentsKey(eventID))
}

// InvalidateCategories drops the cached category list.
func InvalidateCategories(ctx context.Context) {
	Invalidate(ctx, CategoriesKey)
}
