package http

import (
	"net/http"

	"caregiver-marketplace/internal/delivery/http/handler"
	"caregiver-marketplace/internal/delivery/http/middleware"
	"caregiver-marketplace/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	authHandler         *handler.AuthHandler
	caregiverHandler    *handler.CaregiverHandler
	bookingHandler      *handler.BookingHandler
	notificationHandler *handler.NotificationHandler
	medicineHandler     *handler.MedicineHandler
	auditLogHandler     *handler.AuditLogHandler
	authMiddleware      *middleware.AuthMiddleware
	corsMiddleware      *middleware.CORSMiddleware
	authRateLimit       func(http.Handler) http.Handler
}

func NewRouter(
	authHandler *handler.AuthHandler,
	caregiverHandler *handler.CaregiverHandler,
	bookingHandler *handler.BookingHandler,
	notificationHandler *handler.NotificationHandler,
	medicineHandler *handler.MedicineHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	authRateLimit func(http.Handler) http.Handler,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		authHandler:         authHandler,
		caregiverHandler:    caregiverHandler,
		bookingHandler:      bookingHandler,
		notificationHandler: notificationHandler,
		medicineHandler:     medicineHandler,
		auditLogHandler:     auditLogHandler,
		authMiddleware:      authMiddleware,
		corsMiddleware:      corsMiddleware,
		authRateLimit:       authRateLimit,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public, rate limited per IP)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.Use(r.authRateLimit)
	auth.HandleFunc("/register", r.authHandler.Register).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Admin routes (protected - admin only)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)
	admin.Use(middleware.RequireAdmin)

	admin.HandleFunc("/caregivers", r.caregiverHandler.CreateCaregiver).Methods(http.MethodPost)
	admin.HandleFunc("/bookings/{id}/status", r.bookingHandler.UpdateBookingStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/medicine-requests/{id}/status", r.medicineHandler.UpdateMedicineRequestStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/medicine-orders/{id}/status", r.medicineHandler.UpdateMedicineOrderStatus).Methods(http.MethodPatch)
	admin.HandleFunc("/audit-logs", r.auditLogHandler.ListAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	// Authenticated routes. Registered last since the subrouter has no path prefix.
	protected := api.NewRoute().Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	protected.HandleFunc("/auth/logout", r.authHandler.Logout).Methods(http.MethodPost)
	protected.HandleFunc("/auth/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Caregivers
	protected.HandleFunc("/caregivers", r.caregiverHandler.SearchCaregivers).Methods(http.MethodGet)
	protected.HandleFunc("/caregivers/{id}", r.caregiverHandler.GetCaregiver).Methods(http.MethodGet)

	// Bookings
	protected.HandleFunc("/bookings/quote", r.bookingHandler.QuoteBooking).Methods(http.MethodPost)
	protected.HandleFunc("/bookings/request", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", r.bookingHandler.GetMyBookings).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}", r.bookingHandler.GetBooking).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{id}", r.bookingHandler.UpdateBooking).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{id}/submit-advance", r.bookingHandler.SubmitAdvance).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{id}/submit-final-payment", r.bookingHandler.SubmitFinalPayment).Methods(http.MethodPut)

	// Notifications
	protected.HandleFunc("/notifications", r.notificationHandler.GetMyNotifications).Methods(http.MethodGet)
	protected.HandleFunc("/notifications/{id}/read", r.notificationHandler.MarkAsRead).Methods(http.MethodPut)
	protected.HandleFunc("/notifications/{id}/open", r.notificationHandler.OpenNotification).Methods(http.MethodPost)

	// Medicine
	protected.HandleFunc("/medicine-requests/add", r.medicineHandler.CreateMedicineRequest).Methods(http.MethodPost)
	protected.HandleFunc("/medicine-requests/{id}", r.medicineHandler.GetMedicineRequest).Methods(http.MethodGet)
	protected.HandleFunc("/medicine-orders", r.medicineHandler.CreateMedicineOrder).Methods(http.MethodPost)
	protected.HandleFunc("/medicine-orders/{id}", r.medicineHandler.GetMedicineOrder).Methods(http.MethodGet)
	protected.HandleFunc("/medicine-orders/{id}/submit-payment", r.medicineHandler.SubmitMedicinePayment).Methods(http.MethodPut)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
