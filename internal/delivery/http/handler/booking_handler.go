package handler

import (
	"errors"
	"net/http"

	"caregiver-marketplace/internal/delivery/dto"
	"caregiver-marketplace/internal/domain/pricing"
	"caregiver-marketplace/internal/usecase"
	"caregiver-marketplace/pkg/response"
	"caregiver-marketplace/pkg/validator"

	"github.com/goccy/go-json"
)

// Form rule violations reported back to the user as 400
var draftErrors = []error{
	pricing.ErrMissingPartyDetails,
	pricing.ErrPackageRequired,
	pricing.ErrDateRequired,
	pricing.ErrDateRangeRequired,
	pricing.ErrInvalidDate,
	pricing.ErrInvalidDayType,
	pricing.ErrInvalidCareType,
	pricing.ErrNonPositiveTotal,
	pricing.ErrAddressRequired,
	pricing.ErrHospitalRequired,
	usecase.ErrCareTypeNotOffered,
	usecase.ErrPackageNotFound,
}

func isDraftError(err error) bool {
	for _, target := range draftErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

type BookingHandler struct {
	bookingUsecase usecase.BookingUsecase
	validator      *validator.CustomValidator
}

func NewBookingHandler(bookingUsecase usecase.BookingUsecase, validator *validator.CustomValidator) *BookingHandler {
	return &BookingHandler{
		bookingUsecase: bookingUsecase,
		validator:      validator,
	}
}

// QuoteBooking prices a booking form without saving it
// @Summary Quote a booking
// @Tags Bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Quote Request"
// @Success 200 {object} response.Response
// @Router /bookings/quote [post]
func (h *BookingHandler) QuoteBooking(w http.ResponseWriter, r *http.Request) {
	var req dto.QuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	quote, err := h.bookingUsecase.QuoteBooking(r.Context(), &req)
	if err != nil {
		switch err {
		case usecase.ErrCaregiverNotFound:
			response.NotFound(w, "Caregiver not found")
		default:
			response.InternalServerError(w, "Failed to quote booking")
		}
		return
	}

	response.Success(w, http.StatusOK, "Quote calculated successfully", quote)
}

// CreateBooking sends a booking request to a caregiver
// @Summary Request a caregiver booking
// @Tags Bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Booking Request"
// @Success 201 {object} response.Response
// @Failure 400 {object} response.Response
// @Router /bookings/request [post]
func (h *BookingHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	var req dto.CreateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.CreateBooking(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, usecase.ErrCaregiverNotFound):
			response.NotFound(w, "Caregiver not found")
		case isDraftError(err):
			response.BadRequest(w, err.Error())
		default:
			response.InternalServerError(w, "Failed to create booking")
		}
		return
	}

	response.Success(w, http.StatusCreated, "Booking request sent successfully", booking)
}

func (h *BookingHandler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}

	bookings, err := h.bookingUsecase.GetMyBookings(r.Context(), userID)
	if err != nil {
		response.InternalServerError(w, "Failed to get bookings")
		return
	}

	response.Success(w, http.StatusOK, "Bookings retrieved successfully", bookings)
}

func (h *BookingHandler) GetBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	bookingID, ok := pathUUID(w, r, "booking")
	if !ok {
		return
	}

	booking, err := h.bookingUsecase.GetBooking(r.Context(), userID, bookingID)
	if err != nil {
		h.writeBookingError(w, err, "Failed to get booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking retrieved successfully", booking)
}

// UpdateBooking edits a booking that is still pending
// @Summary Edit a pending booking
// @Tags Bookings
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.UpdateBookingRequest true "Booking details"
// @Success 200 {object} response.Response
// @Failure 409 {object} response.Response
// @Router /bookings/{id} [put]
func (h *BookingHandler) UpdateBooking(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	bookingID, ok := pathUUID(w, r, "booking")
	if !ok {
		return
	}

	var req dto.UpdateBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.UpdateBooking(r.Context(), userID, bookingID, &req)
	if err != nil {
		h.writeBookingError(w, err, "Failed to update booking")
		return
	}

	response.Success(w, http.StatusOK, "Booking updated successfully", booking)
}

func (h *BookingHandler) SubmitAdvance(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	bookingID, ok := pathUUID(w, r, "booking")
	if !ok {
		return
	}

	var req dto.SubmitAdvanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.SubmitAdvance(r.Context(), userID, bookingID, &req)
	if err != nil {
		h.writeBookingError(w, err, "Failed to submit advance payment")
		return
	}

	response.Success(w, http.StatusOK, "Advance payment submitted successfully", booking)
}

func (h *BookingHandler) SubmitFinalPayment(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	bookingID, ok := pathUUID(w, r, "booking")
	if !ok {
		return
	}

	var req dto.SubmitFinalPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.SubmitFinalPayment(r.Context(), userID, bookingID, &req)
	if err != nil {
		h.writeBookingError(w, err, "Failed to submit final payment")
		return
	}

	response.Success(w, http.StatusOK, "Final payment submitted successfully", booking)
}

// UpdateBookingStatus moves a booking through its lifecycle (admin only)
func (h *BookingHandler) UpdateBookingStatus(w http.ResponseWriter, r *http.Request) {
	adminID, ok := currentUserID(w, r)
	if !ok {
		return
	}
	bookingID, ok := pathUUID(w, r, "booking")
	if !ok {
		return
	}

	var req dto.UpdateBookingStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.Error(w, http.StatusBadRequest, "Invalid request body", nil)
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		response.ValidationError(w, h.validator.FormatValidationErrors(err))
		return
	}

	booking, err := h.bookingUsecase.UpdateBookingStatus(r.Context(), adminID, bookingID, &req)
	if err != nil {
		h.writeBookingError(w, err, "Failed to update booking status")
		return
	}

	response.Success(w, http.StatusOK, "Booking status updated successfully", booking)
}

func (h *BookingHandler) writeBookingError(w http.ResponseWriter, err error, fallback string) {
	switch {
	case errors.Is(err, usecase.ErrBookingNotFound):
		response.NotFound(w, "Booking not found")
	case errors.Is(err, usecase.ErrBookingNotOwned):
		response.Forbidden(w, err.Error())
	case errors.Is(err, usecase.ErrBookingNotEditable), errors.Is(err, usecase.ErrPaymentNotDue):
		response.Conflict(w, err.Error())
	case errors.Is(err, usecase.ErrAdvanceTooLow), errors.Is(err, usecase.ErrAdvanceTooHigh),
		errors.Is(err, usecase.ErrInvalidStatus), isDraftError(err):
		response.BadRequest(w, err.Error())
	default:
		response.InternalServerError(w, fallback)
	}
}
