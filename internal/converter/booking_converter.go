package converter

import (
	"time"

	"caregiver-marketplace/internal/delivery/dto"
	"caregiver-marketplace/internal/domain/entity"
	"caregiver-marketplace/internal/domain/pricing"
)

// BookingToResponse converts a Booking entity to BookingResponse DTO
func BookingToResponse(booking *entity.Booking) *dto.BookingResponse {
	if booking == nil {
		return nil
	}

	return &dto.BookingResponse{
		ID:                 booking.ID,
		CaregiverID:        booking.CaregiverID,
		CaregiverName:      booking.Caregiver.Name,
		PatientName:        booking.PatientName,
		GuardianName:       booking.GuardianName,
		GuardianContact:    booking.GuardianContact,
		CareType:           string(booking.CareType),
		DayType:            string(booking.DayType),
		PackageName:        booking.PackageName,
		SingleDate:         formatDate(booking.SingleDate),
		StartDate:          formatDate(booking.StartDate),
		EndDate:            formatDate(booking.EndDate),
		Address:            booking.Address,
		HospitalName:       booking.HospitalName,
		WardNumber:         booking.WardNumber,
		TotalPrice:         booking.TotalPrice,
		AdvancePaid:        booking.AdvancePaid,
		Balance:            booking.Balance(),
		MinimumAdvance:     pricing.MinimumAdvance(booking.TotalPrice),
		Status:             string(booking.Status),
		PaymentStatus:      string(booking.PaymentStatus),
		FinalPaymentMethod: string(booking.FinalMethod),
		CreatedAt:          booking.CreatedAt,
		UpdatedAt:          booking.UpdatedAt,
	}
}

// BookingsToResponses converts a slice of Booking entities to slice of BookingResponse DTOs
func BookingsToResponses(bookings []entity.Booking) []dto.BookingResponse {
	responses := make([]dto.BookingResponse, len(bookings))
	for i := range bookings {
		responses[i] = *BookingToResponse(&bookings[i])
	}
	return responses
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(pricing.DateLayout)
}
