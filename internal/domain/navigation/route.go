// Package navigation decides which client screen a notification opens.
package navigation

import (
	"net/url"
)

// Screen identifies a destination in the mobile client
type Screen string

const (
	ScreenPendingCaregiverRequest Screen = "pending-caregiver-request"
	ScreenAdvancePayment          Screen = "advance-payment"
	ScreenPaymentPending          Screen = "payment-pending"
	ScreenPaymentSuccess          Screen = "payment-success"
	ScreenFinalPayment            Screen = "final-payment"
	ScreenEditBooking             Screen = "edit-booking"
	ScreenMedicineRequestPending  Screen = "medicine-request-pending"
	ScreenMedicineQuotes          Screen = "medicine-quotes"
	ScreenMedicineOrderSuccess    Screen = "medicine-order-success"
	ScreenMedicinePayment         Screen = "medicine-payment"
	ScreenNotifications           Screen = "notifications"
)

// PaymentType distinguishes the advance and final legs of a payment flow
type PaymentType string

const (
	PaymentAdvance PaymentType = "advance"
	PaymentFinal   PaymentType = "final"
)

// Route is a destination screen plus its parameters
type Route struct {
	Screen   Screen      `json:"screen"`
	EntityID string      `json:"entity_id,omitempty"`
	Type     PaymentType `json:"type,omitempty"`
}

// screenPaths maps screens to client paths. Screens whose entity travels in the
// path end with a slash; the rest receive it as a query parameter.
var screenPaths = map[Screen]string{
	ScreenPendingCaregiverRequest: "/pendingCaregiverRequest/",
	ScreenAdvancePayment:          "/payment/",
	ScreenPaymentPending:          "/paymentPending",
	ScreenPaymentSuccess:          "/paymentSuccess",
	ScreenFinalPayment:            "/finalPayment/",
	ScreenEditBooking:             "/editBooking/",
	ScreenMedicineRequestPending:  "/medicineRequestPending/",
	ScreenMedicineQuotes:          "/medicineQuotes/",
	ScreenMedicineOrderSuccess:    "/medicineOrderSuccess",
	ScreenMedicinePayment:         "/medicinePayment/",
	ScreenNotifications:           "/(tabs)/notifications",
}

// Path renders the route as a client deep link, e.g. "/paymentSuccess?id=...&type=final"
func (r Route) Path() string {
	base, ok := screenPaths[r.Screen]
	if !ok {
		base = screenPaths[ScreenNotifications]
	}

	query := url.Values{}
	if base[len(base)-1] == '/' {
		base += url.PathEscape(r.EntityID)
	} else if r.EntityID != "" {
		query.Set("id", r.EntityID)
	}
	if r.Type != "" {
		query.Set("type", string(r.Type))
	}

	if len(query) == 0 {
		return base
	}
	return base + "?" + query.Encode()
}

// Fallback is the notifications list, used whenever nothing more specific applies
func Fallback() Route {
	return Route{Screen: ScreenNotifications}
}
