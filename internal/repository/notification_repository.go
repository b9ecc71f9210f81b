package repository

import (
	"classroom_backend/internal/model"
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const unreadCacheTTL = 5 * time.Minute

type NotificationRepository struct {
	DB  *gorm.DB
	RDB *redis.Client
}

func NewNotificationRepository(db *gorm.DB, rdb *redis.Client) *NotificationRepository {
	return &NotificationRepository{DB: db, RDB: rdb}
}

func unreadCacheKey(userID uint) string {
	return fmt.Sprintf("notifications:unread:%d", userID)
}

// CreateWithRecipients writes the broadcast row and its per-user fanout
// in one transaction.
func (r *NotificationRepository) CreateWithRecipients(n *model.Notification, userIDs []uint) error {
	err := r.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(n).Error; err != nil {
			return err
		}
		for _, uid := range userIDs {
			link := &model.NotificationUser{
				NotificationID: n.ID,
				UserID:         uid,
			}
			if err := tx.Create(link).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	ctx := context.Background()
	for _, uid := range userIDs {
		r.RDB.Del(ctx, unreadCacheKey(uid))
	}
	return nil
}

func (r *NotificationRepository) ListForUser(userID uint, onlyUnread bool) ([]model.NotificationUser, error) {
	var ns []model.NotificationUser
	query := r.DB.Preload("Notification").Where("user_id = ?", userID)
	if onlyUnread {
		query = query.Where("is_read = false")
	}
	err := query.Order("created_at desc").Find(&ns).Error
	return ns, err
}

func (r *NotificationRepository) FindUserNotification(id, userID uint) (*model.NotificationUser, error) {
	var n model.NotificationUser
	err := r.DB.Preload("Notification").
		Where("id = ? AND user_id = ?", id, userID).
		First(&n).Error
	return &n, err
}

func (r *NotificationRepository) Save(n *model.NotificationUser) error {
	if err := r.DB.Save(n).Error; err != nil {
		return err
	}
	r.RDB.Del(context.Background(), unreadCacheKey(n.UserID))
	return nil
}

// UnreadCount serves from redis when warm, falling back to a count query.
func (r *NotificationRepository) UnreadCount(userID uint) (int64, error) {
	ctx := context.Background()
	key := unreadCacheKey(userID)

	if cached, err := r.RDB.Get(ctx, key).Result(); err == nil {
		if count, err := strconv.ParseInt(cached, 10, 64); err == nil {
			return count, nil
		}
	}

	var count int64
	err := r.DB.Model(&model.NotificationUser{}).
		Where("user_id = ? AND is_read = false", userID).
		Count(&count).Error
	if err != nil {
		return 0, err
	}

	r.RDB.Set(ctx, key, count, unreadCacheTTL)
	return count, nil
}
