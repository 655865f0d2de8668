package usecase

import (
	"context"
	"errors"
	"fmt"

	"caregiver-marketplace/internal/converter"
	"caregiver-marketplace/internal/delivery/dto"
	"caregiver-marketplace/internal/domain/entity"
	"caregiver-marketplace/internal/domain/navigation"
	"caregiver-marketplace/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

var (
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotificationNotOwned = errors.New("notification does not belong to you")
	ErrMarkReadFailed       = errors.New("could not mark notification as read")
)

type NotificationUsecase interface {
	GetMyNotifications(ctx context.Context, userID uuid.UUID) (*dto.NotificationListResponse, error)
	MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) error
	OpenNotification(ctx context.Context, userID, notificationID uuid.UUID) (*dto.RouteResponse, error)
}

type notificationUsecase struct {
	db               *gorm.DB
	log              *logrus.Logger
	notificationRepo repository.NotificationRepository
}

func NewNotificationUsecase(
	db *gorm.DB,
	log *logrus.Logger,
	notificationRepo repository.NotificationRepository,
) NotificationUsecase {
	return &notificationUsecase{
		db:               db,
		log:              log,
		notificationRepo: notificationRepo,
	}
}

// GetMyNotifications returns the user's notifications, newest first
func (u *notificationUsecase) GetMyNotifications(ctx context.Context, userID uuid.UUID) (*dto.NotificationListResponse, error) {
	notifications, err := u.notificationRepo.FindByUserID(u.db.WithContext(ctx), userID)
	if err != nil {
		u.log.Warnf("Failed to find notifications for user %s: %+v", userID, err)
		return nil, err
	}

	unread := 0
	for i := range notifications {
		if !notifications[i].IsRead {
			unread++
		}
	}

	return &dto.NotificationListResponse{
		Notifications: converter.NotificationsToResponses(notifications),
		Total:         len(notifications),
		Unread:        unread,
	}, nil
}

// MarkAsRead is idempotent
func (u *notificationUsecase) MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	if _, err := u.findOwned(ctx, userID, notificationID); err != nil {
		return err
	}

	if err := u.notificationRepo.MarkRead(u.db.WithContext(ctx), notificationID); err != nil {
		u.log.Warnf("Failed to mark notification %s as read: %+v", notificationID, err)
		return fmt.Errorf("%w: %v", ErrMarkReadFailed, err)
	}
	return nil
}

// OpenNotification marks the notification read and decides which screen it opens.
// When marking fails the notifications list is returned along with an error
// wrapping ErrMarkReadFailed, so the caller can still navigate somewhere.
func (u *notificationUsecase) OpenNotification(ctx context.Context, userID, notificationID uuid.UUID) (*dto.RouteResponse, error) {
	notification, err := u.findOwned(ctx, userID, notificationID)
	if err != nil {
		return nil, err
	}

	if err := u.notificationRepo.MarkRead(u.db.WithContext(ctx), notification.ID); err != nil {
		u.log.Warnf("Failed to mark notification %s as read: %+v", notification.ID, err)
		return converter.RouteToResponse(navigation.Fallback()), fmt.Errorf("%w: %v", ErrMarkReadFailed, err)
	}

	route := navigation.Resolve(notification)
	u.log.Debugf("Notification %s resolved to %s", notification.ID, route.Screen)
	return converter.RouteToResponse(route), nil
}

func (u *notificationUsecase) findOwned(ctx context.Context, userID, notificationID uuid.UUID) (*entity.Notification, error) {
	notification, err := u.notificationRepo.FindByID(u.db.WithContext(ctx), notificationID)
	if err != nil {
		u.log.Warnf("Failed to find notification %s: %+v", notificationID, err)
		return nil, err
	}
	if notification == nil {
		return nil, ErrNotificationNotFound
	}
	if notification.UserID != userID {
		return nil, ErrNotificationNotOwned
	}
	return notification, nil
}
