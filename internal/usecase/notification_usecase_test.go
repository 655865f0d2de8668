package usecase

import (
	"context"
	"errors"
	"testing"

	"caregiver-marketplace/internal/domain/entity"
	"caregiver-marketplace/internal/domain/navigation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNotificationUsecase_OpenNotification(t *testing.T) {
	userID := uuid.New()
	bookingID := uuid.New()
	orderID := uuid.New()

	tests := []struct {
		name         string
		notification *entity.Notification
		markErr      error
		wantScreen   navigation.Screen
		wantEntity   string
		wantPath     string
	}{
		{
			name: "pending booking opens caregiver request",
			notification: &entity.Notification{
				UserID:    userID,
				BookingID: &bookingID,
				Booking: &entity.Booking{
					ID:            bookingID,
					Status:        entity.BookingStatusPending,
					PaymentStatus: entity.PaymentStatusPendingAdvance,
				},
			},
			wantScreen: navigation.ScreenPendingCaregiverRequest,
			wantEntity: bookingID.String(),
			wantPath:   "/pendingCaregiverRequest/" + bookingID.String(),
		},
		{
			name: "order ready for pickup opens medicine payment",
			notification: &entity.Notification{
				UserID:          userID,
				MedicineOrderID: &orderID,
				MedicineOrder: &entity.MedicineOrder{
					ID:     orderID,
					Status: entity.MedicineOrderStatusReadyForPickup,
				},
			},
			wantScreen: navigation.ScreenMedicinePayment,
			wantEntity: orderID.String(),
			wantPath:   "/medicinePayment/" + orderID.String(),
		},
		{
			name:         "plain notification opens the list",
			notification: &entity.Notification{UserID: userID},
			wantScreen:   navigation.ScreenNotifications,
			wantPath:     "/(tabs)/notifications",
		},
		{
			name: "mark read failure falls back to the list",
			notification: &entity.Notification{
				UserID:    userID,
				BookingID: &bookingID,
				Booking: &entity.Booking{
					ID:            bookingID,
					Status:        entity.BookingStatusPending,
					PaymentStatus: entity.PaymentStatusPendingAdvance,
				},
			},
			markErr:    errors.New("connection reset"),
			wantScreen: navigation.ScreenNotifications,
			wantPath:   "/(tabs)/notifications",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _ := newTestDB(t)
			repo := new(mockNotificationRepository)
			uc := NewNotificationUsecase(db, newTestLogger(), repo)

			id := uuid.New()
			tt.notification.ID = id
			repo.On("FindByID", mock.Anything, id).Return(tt.notification, nil)
			repo.On("MarkRead", mock.Anything, id).Return(tt.markErr)

			route, err := uc.OpenNotification(context.Background(), userID, id)

			if tt.markErr != nil {
				assert.ErrorIs(t, err, ErrMarkReadFailed)
			} else {
				assert.NoError(t, err)
			}
			require.NotNil(t, route)
			assert.Equal(t, tt.wantScreen, route.Screen)
			assert.Equal(t, tt.wantEntity, route.EntityID)
			assert.Equal(t, tt.wantPath, route.Path)
			repo.AssertExpectations(t)
		})
	}
}

func TestNotificationUsecase_OpenNotification_Ownership(t *testing.T) {
	userID := uuid.New()
	id := uuid.New()

	tests := []struct {
		name         string
		notification *entity.Notification
		wantErr      error
	}{
		{name: "not found", notification: nil, wantErr: ErrNotificationNotFound},
		{name: "other user", notification: &entity.Notification{ID: id, UserID: uuid.New()}, wantErr: ErrNotificationNotOwned},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, _ := newTestDB(t)
			repo := new(mockNotificationRepository)
			uc := NewNotificationUsecase(db, newTestLogger(), repo)

			repo.On("FindByID", mock.Anything, id).Return(tt.notification, nil)

			route, err := uc.OpenNotification(context.Background(), userID, id)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Nil(t, route)
			repo.AssertNotCalled(t, "MarkRead", mock.Anything, mock.Anything)
		})
	}
}

func TestNotificationUsecase_GetMyNotifications_CountsUnread(t *testing.T) {
	db, _ := newTestDB(t)
	repo := new(mockNotificationRepository)
	uc := NewNotificationUsecase(db, newTestLogger(), repo)

	userID := uuid.New()
	repo.On("FindByUserID", mock.Anything, userID).Return([]entity.Notification{
		{ID: uuid.New(), UserID: userID, Message: "a", IsRead: false},
		{ID: uuid.New(), UserID: userID, Message: "b", IsRead: true},
		{ID: uuid.New(), UserID: userID, Message: "c", IsRead: false},
	}, nil)

	list, err := uc.GetMyNotifications(context.Background(), userID)

	require.NoError(t, err)
	assert.Equal(t, 3, list.Total)
	assert.Equal(t, 2, list.Unread)
	assert.Len(t, list.Notifications, 3)
	assert.Equal(t, "a", list.Notifications[0].Message)
}

func TestNotificationUsecase_MarkAsRead(t *testing.T) {
	db, _ := newTestDB(t)
	repo := new(mockNotificationRepository)
	uc := NewNotificationUsecase(db, newTestLogger(), repo)

	userID := uuid.New()
	id := uuid.New()
	repo.On("FindByID", mock.Anything, id).Return(&entity.Notification{ID: id, UserID: userID, IsRead: true}, nil)
	repo.On("MarkRead", mock.Anything, id).Return(nil)

	require.NoError(t, uc.MarkAsRead(context.Background(), userID, id))
	repo.AssertNumberOfCalls(t, "MarkRead", 1)
}
