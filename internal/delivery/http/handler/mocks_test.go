package handler

import (
	"context"
	"net/http"

	"caregiver-marketplace/internal/delivery/dto"
	"caregiver-marketplace/internal/delivery/http/middleware"
	"caregiver-marketplace/internal/domain/availability"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

func withUser(r *http.Request, userID uuid.UUID) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), middleware.UserIDKey, userID))
}

type mockNotificationUsecase struct {
	mock.Mock
}

func (m *mockNotificationUsecase) GetMyNotifications(ctx context.Context, userID uuid.UUID) (*dto.NotificationListResponse, error) {
	args := m.Called(ctx, userID)
	if r, ok := args.Get(0).(*dto.NotificationListResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockNotificationUsecase) MarkAsRead(ctx context.Context, userID, notificationID uuid.UUID) error {
	return m.Called(ctx, userID, notificationID).Error(0)
}

func (m *mockNotificationUsecase) OpenNotification(ctx context.Context, userID, notificationID uuid.UUID) (*dto.RouteResponse, error) {
	args := m.Called(ctx, userID, notificationID)
	if r, ok := args.Get(0).(*dto.RouteResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockCaregiverUsecase struct {
	mock.Mock
}

func (m *mockCaregiverUsecase) SearchCaregivers(ctx context.Context, criteria availability.Criteria) (*dto.CaregiverListResponse, error) {
	args := m.Called(ctx, criteria)
	if r, ok := args.Get(0).(*dto.CaregiverListResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCaregiverUsecase) GetCaregiver(ctx context.Context, id uuid.UUID) (*dto.CaregiverResponse, error) {
	args := m.Called(ctx, id)
	if r, ok := args.Get(0).(*dto.CaregiverResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockCaregiverUsecase) CreateCaregiver(ctx context.Context, adminID uuid.UUID, req *dto.CreateCaregiverRequest) (*dto.CaregiverResponse, error) {
	args := m.Called(ctx, adminID, req)
	if r, ok := args.Get(0).(*dto.CaregiverResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockBookingUsecase struct {
	mock.Mock
}

func (m *mockBookingUsecase) booking(args mock.Arguments) (*dto.BookingResponse, error) {
	if r, ok := args.Get(0).(*dto.BookingResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingUsecase) QuoteBooking(ctx context.Context, req *dto.QuoteRequest) (*dto.QuoteResponse, error) {
	args := m.Called(ctx, req)
	if r, ok := args.Get(0).(*dto.QuoteResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingUsecase) CreateBooking(ctx context.Context, userID uuid.UUID, req *dto.CreateBookingRequest) (*dto.BookingResponse, error) {
	return m.booking(m.Called(ctx, userID, req))
}

func (m *mockBookingUsecase) GetMyBookings(ctx context.Context, userID uuid.UUID) (*dto.BookingListResponse, error) {
	args := m.Called(ctx, userID)
	if r, ok := args.Get(0).(*dto.BookingListResponse); ok {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockBookingUsecase) GetBooking(ctx context.Context, userID, bookingID uuid.UUID) (*dto.BookingResponse, error) {
	return m.booking(m.Called(ctx, userID, bookingID))
}

func (m *mockBookingUsecase) UpdateBooking(ctx context.Context, userID, bookingID uuid.UUID, req *dto.UpdateBookingRequest) (*dto.BookingResponse, error) {
	return m.booking(m.Called(ctx, userID, bookingID, req))
}

func (m *mockBookingUsecase) SubmitAdvance(ctx context.Context, userID, bookingID uuid.UUID, req *dto.SubmitAdvanceRequest) (*dto.BookingResponse, error) {
	return m.booking(m.Called(ctx, userID, bookingID, req))
}

func (m *mockBookingUsecase) SubmitFinalPayment(ctx context.Context, userID, bookingID uuid.UUID, req *dto.SubmitFinalPaymentRequest) (*dto.BookingResponse, error) {
	return m.booking(m.Called(ctx, userID, bookingID, req))
}

func (m *mockBookingUsecase) UpdateBookingStatus(ctx context.Context, adminID, bookingID uuid.UUID, req *dto.UpdateBookingStatusRequest) (*dto.BookingResponse, error) {
	return m.booking(m.Called(ctx, adminID, bookingID, req))
}
