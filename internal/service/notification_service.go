package service

import (
	"classroom_backend/internal/model"
	"classroom_backend/internal/repository"
	"classroom_backend/internal/util"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

type NotificationService struct {
	NotificationRepo *repository.NotificationRepository
}

func NewNotificationService(notificationRepo *repository.NotificationRepository) *NotificationService {
	return &NotificationService{NotificationRepo: notificationRepo}
}

// Broadcast writes one notification and fans it out to every recipient.
func (s *NotificationService) Broadcast(title, description string, metadata json.RawMessage, userIDs []uint) error {
	if len(userIDs) == 0 {
		return nil
	}

	n := &model.Notification{
		Title:       title,
		Description: description,
		Metadata:    metadata,
	}
	return s.NotificationRepo.CreateWithRecipients(n, userIDs)
}

func (s *NotificationService) ListMine(user *model.User, onlyUnread bool) ([]model.NotificationUser, error) {
	return s.NotificationRepo.ListForUser(user.ID, onlyUnread)
}

func (s *NotificationService) UnreadCount(user *model.User) (int64, error) {
	return s.NotificationRepo.UnreadCount(user.ID)
}

func (s *NotificationService) MarkAsRead(user *model.User, id uint) (*model.NotificationUser, error) {
	n, err := s.NotificationRepo.FindUserNotification(id, user.ID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, util.ErrSubjectNotFound
	}
	if err != nil {
		return nil, err
	}

	n.MarkAsRead(time.Now())
	if err := s.NotificationRepo.Save(n); err != nil {
		return nil, err
	}
	return n, nil
}
