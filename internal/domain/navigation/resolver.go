package navigation

import (
	"strings"

	"caregiver-marketplace/internal/domain/entity"
)

// Resolve maps a notification to the screen it should open. Booking references
// take precedence over medicine requests, which take precedence over orders.
// The first matching rule wins.
func Resolve(n *entity.Notification) Route {
	if n == nil {
		return Fallback()
	}

	switch {
	case n.Booking != nil:
		return forBooking(n.Booking, n.Message)
	case n.MedicineRequest != nil:
		return forMedicineRequest(n.MedicineRequest)
	case n.MedicineOrder != nil:
		return forMedicineOrder(n.MedicineOrder)
	default:
		return Fallback()
	}
}

func forBooking(b *entity.Booking, message string) Route {
	id := b.ID.String()

	switch {
	case b.Status == entity.BookingStatusPending:
		return Route{Screen: ScreenPendingCaregiverRequest, EntityID: id}
	case b.PaymentStatus == entity.PaymentStatusPendingAdvance:
		return Route{Screen: ScreenAdvancePayment, EntityID: id}
	case b.PaymentStatus == entity.PaymentStatusPendingVerification:
		if strings.Contains(strings.ToLower(message), "advance") {
			return Route{Screen: ScreenPaymentPending, Type: PaymentAdvance}
		}
		return Route{Screen: ScreenPaymentPending, Type: PaymentFinal}
	case b.PaymentStatus == entity.PaymentStatusAdvancePaid && b.Status == entity.BookingStatusConfirmed:
		return Route{Screen: ScreenPaymentSuccess, EntityID: id, Type: PaymentAdvance}
	case b.PaymentStatus == entity.PaymentStatusAdvancePaid && b.Status == entity.BookingStatusInProgress:
		return Route{Screen: ScreenFinalPayment, EntityID: id}
	case b.PaymentStatus == entity.PaymentStatusFullyPaid && b.Status == entity.BookingStatusCompleted:
		return Route{Screen: ScreenPaymentSuccess, EntityID: id, Type: PaymentFinal}
	default:
		return Route{Screen: ScreenEditBooking, EntityID: id}
	}
}

func forMedicineRequest(r *entity.MedicineRequest) Route {
	id := r.ID.String()

	if r.Status == entity.MedicineRequestStatusPending {
		return Route{Screen: ScreenMedicineRequestPending, EntityID: id}
	}
	return Route{Screen: ScreenMedicineQuotes, EntityID: id}
}

func forMedicineOrder(o *entity.MedicineOrder) Route {
	id := o.ID.String()

	switch o.Status {
	case entity.MedicineOrderStatusPendingConfirmation:
		return Route{Screen: ScreenMedicineOrderSuccess}
	case entity.MedicineOrderStatusReadyForPickup:
		return Route{Screen: ScreenMedicinePayment, EntityID: id}
	case entity.MedicineOrderStatusPaymentPendingVerification:
		return Route{Screen: ScreenPaymentPending, Type: PaymentFinal}
	case entity.MedicineOrderStatusCompleted:
		return Route{Screen: ScreenPaymentSuccess, EntityID: id, Type: PaymentFinal}
	default:
		return Fallback()
	}
}
