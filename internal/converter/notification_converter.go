package converter

import (
	"caregiver-marketplace/internal/delivery/dto"
	"caregiver-marketplace/internal/domain/entity"
	"caregiver-marketplace/internal/domain/navigation"
)

// NotificationToResponse converts a Notification entity to NotificationResponse DTO,
// summarising whichever entity it references
func NotificationToResponse(n *entity.Notification) *dto.NotificationResponse {
	if n == nil {
		return nil
	}

	response := &dto.NotificationResponse{
		ID:        n.ID,
		Message:   n.Message,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}

	if n.Booking != nil {
		response.Booking = &dto.NotificationBookingSummary{
			ID:            n.Booking.ID,
			Status:        string(n.Booking.Status),
			PaymentStatus: string(n.Booking.PaymentStatus),
		}
	}
	if n.MedicineRequest != nil {
		response.MedicineRequest = &dto.NotificationEntitySummary{
			ID:     n.MedicineRequest.ID,
			Status: string(n.MedicineRequest.Status),
		}
	}
	if n.MedicineOrder != nil {
		response.MedicineOrder = &dto.NotificationEntitySummary{
			ID:     n.MedicineOrder.ID,
			Status: string(n.MedicineOrder.Status),
		}
	}

	return response
}

// NotificationsToResponses converts a slice of Notification entities to slice of NotificationResponse DTOs
func NotificationsToResponses(notifications []entity.Notification) []dto.NotificationResponse {
	responses := make([]dto.NotificationResponse, len(notifications))
	for i := range notifications {
		responses[i] = *NotificationToResponse(&notifications[i])
	}
	return responses
}

func RouteToResponse(route navigation.Route) *dto.RouteResponse {
	return &dto.RouteResponse{Route: route, Path: route.Path()}
}
